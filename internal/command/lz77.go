package command

import (
	"bytes"
	"fmt"
	"time"

	"github.com/viniciusth/stringology"

	"github.com/nuclio/errors"
	"github.com/spf13/cobra"
)

type lz77Commandeer struct {
	cmd            *cobra.Command
	rootCommandeer *RootCommandeer
	check          bool
	printFactors   bool
}

func newLZ77Commandeer(rootCommandeer *RootCommandeer) *lz77Commandeer {
	commandeer := &lz77Commandeer{
		rootCommandeer: rootCommandeer,
	}

	cmd := &cobra.Command{
		Use:   "lz77",
		Short: "Count the LZ77 factors of the input",
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
			index, err := rootCommandeer.buildIndex(text, false)
			if err != nil {
				return err
			}

			factors, err := index.LZ77()
			if err != nil {
				return errors.Wrap(err, "Failed to factorize")
			}
			elapsed := time.Since(start)

			if commandeer.check {
				decoded, err := stringology.DecodeLZ77(factors)
				if err != nil {
					return errors.Wrap(err, "Failed to decode factorization")
				}
				if !bytes.Equal(decoded, text) {
					return errors.New("Decoded factorization differs from the input")
				}
				rootCommandeer.loggerInstance.DebugWith("Checked factorization", "factors", len(factors))
			}

			if commandeer.printFactors {
				for _, factor := range factors {
					if factor.IsLiteral() {
						fmt.Fprintf(cmd.OutOrStdout(), "(%q)\n", rune(factor.Pos)) // nolint: errcheck
					} else {
						fmt.Fprintf(cmd.OutOrStdout(), "(%d,%d)\n", factor.Pos, factor.Len) // nolint: errcheck
					}
				}
			}

			rootCommandeer.writeResult(cmd.OutOrStdout(), len(text), elapsed, "algo", "lz77", "factors", len(factors))
			return nil
		},
	}

	cmd.Flags().BoolVar(&commandeer.check, "check", false, "Decode the factorization and compare it to the input")
	cmd.Flags().BoolVar(&commandeer.printFactors, "print", false, "Print every factor")

	commandeer.cmd = cmd

	return commandeer
}
