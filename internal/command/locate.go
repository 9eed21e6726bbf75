package command

import (
	"fmt"
	"strings"
	"time"

	"github.com/nuclio/errors"
	"github.com/spf13/cobra"
)

type locateCommandeer struct {
	cmd            *cobra.Command
	rootCommandeer *RootCommandeer
	limit          int
}

func newLocateCommandeer(rootCommandeer *RootCommandeer) *locateCommandeer {
	commandeer := &locateCommandeer{
		rootCommandeer: rootCommandeer,
	}

	cmd := &cobra.Command{
		Use:   "locate pattern",
		Short: "Find the occurrences of a pattern in the input",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {

			// initialize root
			if err := rootCommandeer.initialize(); err != nil {
				return errors.Wrap(err, "Failed to initialize root")
			}

			text, err := rootCommandeer.readText(cmd)
			if err != nil {
				return err
			}

			index, err := rootCommandeer.buildIndex(text, true)
			if err != nil {
				return err
			}

			start := time.Now()
			occurrences := index.Occurrences([]byte(args[0]))
			elapsed := time.Since(start)

			shown := occurrences
			if commandeer.limit > 0 && len(shown) > commandeer.limit {
				shown = shown[:commandeer.limit]
			}
			if len(shown) > 0 {
				positions := make([]string, len(shown))
				for i, position := range shown {
					positions[i] = fmt.Sprint(position)
				}
				fmt.Fprintln(cmd.OutOrStdout(), strings.Join(positions, " ")) // nolint: errcheck
			}

			rootCommandeer.writeResult(cmd.OutOrStdout(), len(text), elapsed, "algo", "locate", "count", len(occurrences))
			return nil
		},
	}

	cmd.Flags().IntVarP(&commandeer.limit, "limit", "l", 0, "Print at most this many positions (0 for all)")

	commandeer.cmd = cmd

	return commandeer
}
