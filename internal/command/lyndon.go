package command

import (
	"bufio"
	"fmt"
	"slices"
	"time"

	"github.com/viniciusth/stringology"
	"github.com/viniciusth/stringology/internal/textio"

	"github.com/nuclio/errors"
	"github.com/spf13/cobra"
)

type lyndonCommandeer struct {
	cmd            *cobra.Command
	rootCommandeer *RootCommandeer
	outputPath     string
	check          bool
}

func newLyndonCommandeer(rootCommandeer *RootCommandeer) *lyndonCommandeer {
	commandeer := &lyndonCommandeer{
		rootCommandeer: rootCommandeer,
	}

	cmd := &cobra.Command{
		Use:   "lyndon",
		Short: "Compute the Lyndon factorization of the input",
		RunE: func(cmd *cobra.Command, args []string) error {

			// initialize root
			if err := rootCommandeer.initialize(); err != nil {
				return errors.Wrap(err, "Failed to initialize root")
			}

			text, err := rootCommandeer.readText(cmd)
			if err != nil {
				return err
			}

			start := time.Now()
			ends := stringology.Duval(text)
			elapsed := time.Since(start)

			if commandeer.check {
				if err := commandeer.checkFactorization(text, ends); err != nil {
					return err
				}
			}

			rootCommandeer.writeResult(cmd.OutOrStdout(), len(text), elapsed, "algo", "duval", "factors", len(ends))

			if commandeer.outputPath != "" {
				return commandeer.writeFactors(text, ends)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&commandeer.outputPath, "output", "o", "", "Write the factors to this file, one record per factor")
	cmd.Flags().BoolVar(&commandeer.check, "check", false, "Compare against the factorization derived from the inverse suffix array")

	commandeer.cmd = cmd

	return commandeer
}

func (lc *lyndonCommandeer) checkFactorization(text []byte, ends []int) error {
	sa, err := stringology.BuildSuffixArray(text)
	if err != nil {
		return errors.Wrap(err, "Failed to build suffix array")
	}

	fromISA := stringology.ISALyndonFactorization(stringology.InversePermutation(sa))
	if !slices.Equal(ends, fromISA) {
		return errors.Errorf("Factorizations differ: %d factors by Duval, %d by the inverse suffix array",
			len(ends), len(fromISA))
	}

	lc.rootCommandeer.loggerInstance.DebugWith("Checked factorization", "factors", len(ends))
	return nil
}

func (lc *lyndonCommandeer) writeFactors(text []byte, ends []int) error {
	output, closeOutput, err := textio.Create(lc.outputPath, lc.cmd.OutOrStdout())
	if err != nil {
		return err
	}

	writer := bufio.NewWriter(output)
	begin := 0
	for i, factor := range stringology.LyndonFactors(text, ends) {
		fmt.Fprintf(writer, ">Factor %d : %d -> %d\n", i+1, begin, ends[i]+1) // nolint: errcheck
		writer.Write(factor)                                                  // nolint: errcheck
		writer.WriteByte('\n')                                                // nolint: errcheck
		begin = ends[i] + 1
	}

	if err := writer.Flush(); err != nil {
		closeOutput() // nolint: errcheck
		return errors.Wrap(err, "Failed to write factors")
	}
	return closeOutput()
}
