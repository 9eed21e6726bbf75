package command

import (
	"fmt"
	"os"
	"runtime/pprof"
	"strings"

	"github.com/viniciusth/stringology"
	"github.com/viniciusth/stringology/internal/bench"
	"github.com/viniciusth/stringology/internal/textio"
	"github.com/viniciusth/stringology/internal/word"

	"github.com/nuclio/errors"
	"github.com/spf13/cobra"
)

type benchCommandeer struct {
	cmd            *cobra.Command
	rootCommandeer *RootCommandeer
	variantName    string
	wordName       string
	wordIndex      int
	patternLength  int
	queries        int
	runs           int
	noHeader       bool
	cpuProfilePath string
}

func newBenchCommandeer(rootCommandeer *RootCommandeer) *benchCommandeer {
	commandeer := &benchCommandeer{
		rootCommandeer: rootCommandeer,
	}

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Measure index construction and pattern counting, printing CSV",
		Long: `Measure index construction and pattern counting, printing CSV.

The text is the input, or a generated word when --word is given. Patterns are substrings
sampled from the text.`,
		RunE: func(cmd *cobra.Command, args []string) error {

			// initialize root
			if err := rootCommandeer.initialize(); err != nil {
				return errors.Wrap(err, "Failed to initialize root")
			}

			variant, found := bench.Variants[commandeer.variantName]
			if !found {
				return errors.Errorf("Unknown variant %q, expected one of %s",
					commandeer.variantName, strings.Join(bench.VariantNames(), ", "))
			}

			runner, err := bench.NewRunner(rootCommandeer.loggerInstance, bench.Config{
				Variant:       variant,
				PatternLength: commandeer.patternLength,
				Queries:       commandeer.queries,
				Runs:          commandeer.runs,
			})
			if err != nil {
				return errors.Wrap(err, "Failed to create runner")
			}

			text, err := commandeer.readText(cmd)
			if err != nil {
				return err
			}

			terminated, err := textio.AppendSentinel(text, stringology.Sentinel)
			if err != nil {
				return errors.Wrap(err, "Failed to terminate input")
			}

			if commandeer.cpuProfilePath != "" {
				stopProfile, err := startCPUProfile(commandeer.cpuProfilePath)
				if err != nil {
					return err
				}
				defer stopProfile()
			}

			measurements, err := runner.Run(terminated)
			if err != nil {
				return errors.Wrap(err, "Failed to run benchmark")
			}

			if !commandeer.noHeader {
				fmt.Fprintln(cmd.OutOrStdout(), bench.Header) // nolint: errcheck
			}
			for _, measurement := range measurements {
				runner.WriteCSV(cmd.OutOrStdout(), measurement)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&commandeer.variantName, "variant", "full",
		fmt.Sprintf("Index variant (%s)", strings.Join(bench.VariantNames(), ", ")))
	cmd.Flags().StringVar(&commandeer.wordName, "word", "", "Benchmark a generated word of this family instead of the input")
	cmd.Flags().IntVarP(&commandeer.wordIndex, "index", "k", 20, "Index of the generated word in its family")
	cmd.Flags().IntVar(&commandeer.patternLength, "pattern-length", 8, "Length of the sampled patterns")
	cmd.Flags().IntVarP(&commandeer.queries, "queries", "q", 1000, "Number of patterns per run")
	cmd.Flags().IntVar(&commandeer.runs, "runs", 3, "Number of runs")
	cmd.Flags().BoolVar(&commandeer.noHeader, "no-header", false, "Do not print the CSV header")
	cmd.Flags().StringVar(&commandeer.cpuProfilePath, "cpuprofile", "", "Write a CPU profile to this file")

	commandeer.cmd = cmd

	return commandeer
}

func (bc *benchCommandeer) readText(cmd *cobra.Command) ([]byte, error) {
	if bc.wordName == "" {
		return bc.rootCommandeer.readText(cmd)
	}

	text, err := word.ByName(bc.wordName, bc.wordIndex)
	if err != nil {
		return nil, errors.Wrap(err, "Failed to generate word")
	}
	if prefixLength := bc.rootCommandeer.inputOptions.PrefixLength; prefixLength > 0 && prefixLength < len(text) {
		text = text[:prefixLength]
	}
	return text, nil
}

func startCPUProfile(path string) (func(), error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrap(err, "Could not create CPU profile")
	}
	if err := pprof.StartCPUProfile(file); err != nil {
		file.Close() // nolint: errcheck
		return nil, errors.Wrap(err, "Could not start CPU profile")
	}
	return func() {
		pprof.StopCPUProfile()
		file.Close() // nolint: errcheck
	}, nil
}
