package command

import (
	"time"

	"github.com/viniciusth/stringology"
	"github.com/viniciusth/stringology/internal/textio"

	"github.com/nuclio/errors"
	"github.com/spf13/cobra"
)

type bwtCommandeer struct {
	cmd            *cobra.Command
	rootCommandeer *RootCommandeer
	bijective      bool
	useMatrix      bool
	noDollar       bool
	outputPath     string
}

func newBWTCommandeer(rootCommandeer *RootCommandeer) *bwtCommandeer {
	commandeer := &bwtCommandeer{
		rootCommandeer: rootCommandeer,
	}

	cmd := &cobra.Command{
		Use:   "bwt",
		Short: "Compute a Burrows-Wheeler transform of the input and count its runs",
		Long: `Compute a Burrows-Wheeler transform of the input and count its runs.

By default the input is terminated with a 0x00 sentinel and transformed through its suffix array.
--matrix sorts rotations instead of suffixes, which only differs once --no-dollar drops the sentinel.
--bijective sorts the rotations of the Lyndon factors of the input.`,
		RunE: func(cmd *cobra.Command, args []string) error {

			// initialize root
			if err := rootCommandeer.initialize(); err != nil {
				return errors.Wrap(err, "Failed to initialize root")
			}

			if commandeer.bijective && (commandeer.noDollar || commandeer.useMatrix) {
				return errors.New("--bijective cannot be combined with --matrix or --no-dollar")
			}

			text, err := rootCommandeer.readText(cmd)
			if err != nil {
				return err
			}

			start := time.Now()
			transform, err := commandeer.transform(text)
			if err != nil {
				return err
			}
			elapsed := time.Since(start)

			algo := "bwt"
			if commandeer.bijective {
				algo = "bbwt"
			}
			rootCommandeer.writeResult(cmd.OutOrStdout(), len(text), elapsed,
				"algo", algo,
				"runs", stringology.Runs(transform),
				"no_dollar", commandeer.noDollar,
				"use_matrix", commandeer.useMatrix)

			if commandeer.outputPath != "" {
				return commandeer.writeTransform(transform)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&commandeer.bijective, "bijective", "b", false, "Compute the bijective BWT")
	cmd.Flags().BoolVarP(&commandeer.useMatrix, "matrix", "m", false, "Sort the rotations of the text instead of its suffixes")
	cmd.Flags().BoolVarP(&commandeer.noDollar, "no-dollar", "n", false, "Do not terminate the input with a 0x00 sentinel")
	cmd.Flags().StringVarP(&commandeer.outputPath, "output", "o", "", "Write the transform to this file")

	commandeer.cmd = cmd

	return commandeer
}

func (bc *bwtCommandeer) transform(text []byte) ([]byte, error) {
	switch {
	case bc.bijective:
		return stringology.BijectiveBWT(text), nil

	// with the sentinel, sorting rotations and sorting suffixes agree
	case !bc.noDollar:
		index, err := bc.rootCommandeer.buildIndex(text, true)
		if err != nil {
			return nil, err
		}
		return index.BWT(), nil

	case bc.useMatrix:
		transform, err := stringology.ConjugateBWT(text)
		if err != nil {
			return nil, errors.Wrap(err, "Failed to transform input")
		}
		return transform, nil

	default:
		sa, err := stringology.BuildSuffixArray(text)
		if err != nil {
			return nil, errors.Wrap(err, "Failed to build suffix array")
		}
		return stringology.BWT(text, sa), nil
	}
}

func (bc *bwtCommandeer) writeTransform(transform []byte) error {
	output, closeOutput, err := textio.Create(bc.outputPath, bc.cmd.OutOrStdout())
	if err != nil {
		return err
	}

	if _, err := output.Write(transform); err != nil {
		closeOutput() // nolint: errcheck
		return errors.Wrap(err, "Failed to write transform")
	}
	return closeOutput()
}
