package command

import (
	"fmt"
	"time"

	"github.com/nuclio/errors"
	"github.com/spf13/cobra"
)

type musCommandeer struct {
	cmd            *cobra.Command
	rootCommandeer *RootCommandeer
	quiet          bool
}

func newMUSCommandeer(rootCommandeer *RootCommandeer) *musCommandeer {
	commandeer := &musCommandeer{
		rootCommandeer: rootCommandeer,
	}

	cmd := &cobra.Command{
		Use:   "mus",
		Short: "List the minimal unique substrings of the input",
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
			muss := index.MinimalUniqueSubstrings()
			elapsed := time.Since(start)

			if !commandeer.quiet {
				for _, mus := range muss {
					fmt.Fprintf(cmd.OutOrStdout(), "(%d,%d)\n", mus.Pos, mus.Len) // nolint: errcheck
				}
			}

			rootCommandeer.writeResult(cmd.OutOrStdout(), len(text), elapsed, "algo", "mus", "count", len(muss))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&commandeer.quiet, "quiet", "q", false, "Only print the result line")

	commandeer.cmd = cmd

	return commandeer
}
