package command

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/viniciusth/stringology/internal/textio"
	"github.com/viniciusth/stringology/internal/word"

	"github.com/nuclio/errors"
	"github.com/spf13/cobra"
)

type wordCommandeer struct {
	cmd            *cobra.Command
	rootCommandeer *RootCommandeer
	name           string
	k              int
	outputPath     string
}

func newWordCommandeer(rootCommandeer *RootCommandeer) *wordCommandeer {
	commandeer := &wordCommandeer{
		rootCommandeer: rootCommandeer,
	}

	cmd := &cobra.Command{
		Use:   "word",
		Short: "Generate a word of a morphic family",
		RunE: func(cmd *cobra.Command, args []string) error {

			// initialize root
			if err := rootCommandeer.initialize(); err != nil {
				return errors.Wrap(err, "Failed to initialize root")
			}

			text, err := word.ByName(commandeer.name, commandeer.k)
			if err != nil {
				return errors.Wrap(err, "Failed to generate word")
			}

			rootCommandeer.loggerInstance.DebugWith("Generated word",
				"name", commandeer.name,
				"k", commandeer.k,
				"length", len(text))

			output, closeOutput, err := textio.Create(commandeer.outputPath, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			if _, err := output.Write(text); err != nil {
				closeOutput() // nolint: errcheck
				return errors.Wrap(err, "Failed to write word")
			}
			return closeOutput()
		},
	}

	cmd.Flags().StringVarP(&commandeer.name, "name", "n", "fibonacci",
		fmt.Sprintf("Word family (%s)", strings.Join(word.Names, ", ")))
	cmd.Flags().IntVarP(&commandeer.k, "index", "k", 10, "Index of the word in its family")
	cmd.Flags().StringVarP(&commandeer.outputPath, "output", "o", "", "Write the word to this file")

	commandeer.cmd = cmd

	return commandeer
}

type lyndonWordsCommandeer struct {
	cmd            *cobra.Command
	rootCommandeer *RootCommandeer
	maxLength      int
	sigma          int
	outputPath     string
}

func newLyndonWordsCommandeer(rootCommandeer *RootCommandeer) *lyndonWordsCommandeer {
	commandeer := &lyndonWordsCommandeer{
		rootCommandeer: rootCommandeer,
	}

	cmd := &cobra.Command{
		Use:   "lyndon-words",
		Short: "Enumerate the Lyndon words up to a length, in lexicographic order",
		RunE: func(cmd *cobra.Command, args []string) error {

			// initialize root
			if err := rootCommandeer.initialize(); err != nil {
				return errors.Wrap(err, "Failed to initialize root")
			}

			if commandeer.maxLength < 1 {
				return errors.Errorf("Length must be positive, got %d", commandeer.maxLength)
			}
			if commandeer.sigma < 1 || commandeer.sigma > 26 {
				return errors.Errorf("Alphabet size must lie within [1, 26], got %d", commandeer.sigma)
			}

			output, closeOutput, err := textio.Create(commandeer.outputPath, cmd.OutOrStdout())
			if err != nil {
				return err
			}

			writer := bufio.NewWriter(output)
			count := 0
			for w := range word.LyndonWords(commandeer.maxLength, commandeer.sigma) {
				for _, c := range w {
					writer.WriteByte(c + 'a') // nolint: errcheck
				}
				writer.WriteByte('\n') // nolint: errcheck
				count++
			}

			if err := writer.Flush(); err != nil {
				closeOutput() // nolint: errcheck
				return errors.Wrap(err, "Failed to write words")
			}

			rootCommandeer.loggerInstance.DebugWith("Enumerated Lyndon words",
				"maxLength", commandeer.maxLength,
				"sigma", commandeer.sigma,
				"count", count)

			return closeOutput()
		},
	}

	cmd.Flags().IntVarP(&commandeer.maxLength, "length", "l", 5, "Maximum word length")
	cmd.Flags().IntVarP(&commandeer.sigma, "sigma", "s", 2, "Alphabet size, letters start at 'a'")
	cmd.Flags().StringVarP(&commandeer.outputPath, "output", "o", "", "Write the words to this file")

	commandeer.cmd = cmd

	return commandeer
}
