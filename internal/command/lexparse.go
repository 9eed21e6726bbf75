package command

import (
	"bufio"
	"bytes"
	"fmt"
	"time"

	"github.com/viniciusth/stringology"
	"github.com/viniciusth/stringology/internal/textio"

	"github.com/nuclio/errors"
	"github.com/spf13/cobra"
)

type lexParseCommandeer struct {
	cmd            *cobra.Command
	rootCommandeer *RootCommandeer
	check          bool
	outputPath     string
}

func newLexParseCommandeer(rootCommandeer *RootCommandeer) *lexParseCommandeer {
	commandeer := &lexParseCommandeer{
		rootCommandeer: rootCommandeer,
	}

	cmd := &cobra.Command{
		Use:   "lexparse",
		Short: "Count the lex-parse factors of the input",
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
			index, err := rootCommandeer.buildIndex(text, true)
			if err != nil {
				return err
			}
			factors := index.LexParse()
			elapsed := time.Since(start)

			if commandeer.check {
				decoded, err := stringology.DecodeLexParse(factors)
				if err != nil {
					return errors.Wrap(err, "Failed to decode lex-parse")
				}
				if !bytes.Equal(decoded, text) {
					return errors.New("Decoded lex-parse differs from the input")
				}
				rootCommandeer.loggerInstance.DebugWith("Checked lex-parse", "factors", len(factors))
			}

			rootCommandeer.writeResult(cmd.OutOrStdout(), len(text), elapsed, "algo", "lexparse", "factors", len(factors))

			if commandeer.outputPath != "" {
				return commandeer.writeFactors(factors)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&commandeer.check, "check", false, "Decode the lex-parse and compare it to the input")
	cmd.Flags().StringVarP(&commandeer.outputPath, "output", "o", "", "Write the factors to this file as (pos,len) pairs")

	commandeer.cmd = cmd

	return commandeer
}

func (lc *lexParseCommandeer) writeFactors(factors []stringology.LexFactor) error {
	output, closeOutput, err := textio.Create(lc.outputPath, lc.cmd.OutOrStdout())
	if err != nil {
		return err
	}

	writer := bufio.NewWriter(output)
	for _, factor := range factors {
		fmt.Fprintf(writer, "(%d,%d)\n", factor.Pos, factor.Len) // nolint: errcheck
	}

	if err := writer.Flush(); err != nil {
		closeOutput() // nolint: errcheck
		return errors.Wrap(err, "Failed to write factors")
	}
	return closeOutput()
}
