package command

import (
	"context"
	"os"
	"os/signal"
	"runtime"

	"github.com/viniciusth/stringology/internal/experiment"
	"github.com/viniciusth/stringology/internal/renderer"

	"github.com/nuclio/errors"
	"github.com/spf13/cobra"
)

type searchCommandeer struct {
	cmd            *cobra.Command
	rootCommandeer *RootCommandeer
	minBits        int
	maxBits        int
	workers        int
	format         string
}

func newSearchCommandeer(rootCommandeer *RootCommandeer) *searchCommandeer {
	commandeer := &searchCommandeer{
		rootCommandeer: rootCommandeer,
	}

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Compare the runs of the BWT and the bijective BWT over all binary words",
		RunE: func(cmd *cobra.Command, args []string) error {

			// initialize root
			if err := rootCommandeer.initialize(); err != nil {
				return errors.Wrap(err, "Failed to initialize root")
			}

			if commandeer.format != "table" && commandeer.format != "json" {
				return errors.Errorf("Unknown output format %q", commandeer.format)
			}

			searcher, err := experiment.NewSearcher(rootCommandeer.loggerInstance, commandeer.workers)
			if err != nil {
				return errors.Wrap(err, "Failed to create searcher")
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			results, err := searcher.Run(ctx, commandeer.minBits, commandeer.maxBits)
			if err != nil {
				return errors.Wrap(err, "Failed to search")
			}

			return commandeer.render(cmd, results)
		},
	}

	cmd.Flags().IntVar(&commandeer.minBits, "min-bits", 1, "Shortest word length")
	cmd.Flags().IntVar(&commandeer.maxBits, "max-bits", 16, "Longest word length")
	cmd.Flags().IntVarP(&commandeer.workers, "workers", "w", runtime.NumCPU(), "Number of concurrent workers")
	cmd.Flags().StringVarP(&commandeer.format, "format", "f", "table", "Output format (table, json)")

	commandeer.cmd = cmd

	return commandeer
}

func (sc *searchCommandeer) render(cmd *cobra.Command, results []experiment.Stats) error {
	resultRenderer := renderer.NewRenderer(cmd.OutOrStdout())

	if sc.format == "json" {
		return resultRenderer.RenderJSON(results)
	}

	header := []interface{}{"Bits", "Words", "Non primitive", "BWT wins", "BBWT wins", "Ties", "Score", "Best", "BWT runs", "BBWT runs"}
	var records [][]interface{}
	for _, stats := range results {
		records = append(records, []interface{}{
			stats.Bits,
			stats.Words,
			stats.NonPrimitive,
			stats.BWTWins,
			stats.BBWTWins,
			stats.Ties,
			stats.Score,
			stats.BestText,
			stats.BestBWTRuns,
			stats.BestBBWTRuns,
		})
	}
	resultRenderer.RenderTable(header, records)
	return nil
}
