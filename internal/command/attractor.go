package command

import (
	"fmt"
	"time"

	"github.com/nuclio/errors"
	"github.com/spf13/cobra"
)

type attractorCommandeer struct {
	cmd            *cobra.Command
	rootCommandeer *RootCommandeer
	positions      []int
}

func newAttractorCommandeer(rootCommandeer *RootCommandeer) *attractorCommandeer {
	commandeer := &attractorCommandeer{
		rootCommandeer: rootCommandeer,
	}

	cmd := &cobra.Command{
		Use:   "attractor",
		Short: "Check whether a set of positions is a string attractor of the input",
		Example: `  stringology attractor -i fib.txt -a 3,4
  stringology attractor -i fib.txt -a 3 -a 4`,
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
			report, err := index.VerifyAttractor(commandeer.positions)
			if err != nil {
				return errors.Wrap(err, "Failed to verify attractor")
			}
			elapsed := time.Since(start)

			if report.Valid {
				fmt.Fprintln(cmd.OutOrStdout(), "valid attractor") // nolint: errcheck
			}
			for _, uncovered := range report.Uncovered {
				substring := text[uncovered.Pos : uncovered.Pos+uncovered.Len]
				fmt.Fprintf(cmd.OutOrStdout(), "substring '%s' not covered!\n", substring) // nolint: errcheck
			}

			rootCommandeer.writeResult(cmd.OutOrStdout(), len(text), elapsed,
				"algo", "attractor",
				"positions", len(commandeer.positions),
				"valid", report.Valid)
			return nil
		},
	}

	cmd.Flags().IntSliceVarP(&commandeer.positions, "attractor", "a", nil, "Attractor positions, 0-based")

	commandeer.cmd = cmd

	return commandeer
}
