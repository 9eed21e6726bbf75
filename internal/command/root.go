// Package command implements the stringology command line interface.
package command

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/viniciusth/stringology"
	"github.com/viniciusth/stringology/internal/textio"

	"github.com/nuclio/errors"
	"github.com/nuclio/logger"
	nucliozap "github.com/nuclio/zap"
	"github.com/spf13/cobra"
)

type RootCommandeer struct {
	loggerInstance logger.Logger
	cmd            *cobra.Command
	verbose        bool
	inputOptions   textio.Options
}

func NewRootCommandeer() *RootCommandeer {
	commandeer := &RootCommandeer{}

	cmd := &cobra.Command{
		Use:           "stringology [command]",
		Short:         "Suffix array based text indexing toolkit",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&commandeer.verbose, "verbose", "v", false, "Verbose output")
	cmd.PersistentFlags().StringVarP(&commandeer.inputOptions.Path, "input", "i", "", "Input file to read (stdin if empty)")
	cmd.PersistentFlags().IntVarP(&commandeer.inputOptions.PrefixLength, "prefix", "p", 0, "Only process this many bytes of the input (0 for all)")
	cmd.PersistentFlags().BoolVar(&commandeer.inputOptions.Normalize, "normalize", false, "Apply Unicode NFC normalization to the input")
	cmd.PersistentFlags().BoolVar(&commandeer.inputOptions.FoldCase, "fold-case", false, "Apply Unicode case folding to the input")

	// add children
	cmd.AddCommand(
		newLZ77Commandeer(commandeer).cmd,
		newLexParseCommandeer(commandeer).cmd,
		newLyndonCommandeer(commandeer).cmd,
		newBWTCommandeer(commandeer).cmd,
		newMUSCommandeer(commandeer).cmd,
		newAttractorCommandeer(commandeer).cmd,
		newLocateCommandeer(commandeer).cmd,
		newWordCommandeer(commandeer).cmd,
		newLyndonWordsCommandeer(commandeer).cmd,
		newSearchCommandeer(commandeer).cmd,
		newBenchCommandeer(commandeer).cmd,
	)

	commandeer.cmd = cmd

	return commandeer
}

// Execute uses os.Args to execute the command
func (rc *RootCommandeer) Execute() error {
	return rc.cmd.Execute()
}

// GetCmd returns the underlying cobra command
func (rc *RootCommandeer) GetCmd() *cobra.Command {
	return rc.cmd
}

func (rc *RootCommandeer) initialize() error {
	var err error

	rc.loggerInstance, err = rc.createLogger()
	if err != nil {
		return errors.Wrap(err, "Failed to create logger")
	}

	return nil
}

func (rc *RootCommandeer) createLogger() (logger.Logger, error) {
	var loggerLevel nucliozap.Level

	if rc.verbose {
		loggerLevel = nucliozap.DebugLevel
	} else {
		loggerLevel = nucliozap.InfoLevel
	}

	loggerInstance, err := nucliozap.NewNuclioZapCmd("stringology", loggerLevel, nucliozap.NewRedactor(os.Stderr))
	if err != nil {
		return nil, errors.Wrap(err, "Failed to create logger")
	}

	return loggerInstance, nil
}

// readText reads the input selected by the persistent flags
func (rc *RootCommandeer) readText(cmd *cobra.Command) ([]byte, error) {
	text, err := textio.Read(&rc.inputOptions, cmd.InOrStdin())
	if err != nil {
		return nil, errors.Wrap(err, "Failed to read input")
	}

	rc.loggerInstance.DebugWith("Read input",
		"file", textio.DisplayName(rc.inputOptions.Path),
		"length", len(text),
		"prefixLength", rc.inputOptions.PrefixLength)

	return text, nil
}

// buildIndex terminates text with the 0x00 sentinel and indexes it
func (rc *RootCommandeer) buildIndex(text []byte, skipNearestSmaller bool) (*stringology.Index, error) {
	start := time.Now()

	terminated, err := textio.AppendSentinel(text, stringology.Sentinel)
	if err != nil {
		return nil, errors.Wrap(err, "Failed to terminate input")
	}

	builder := stringology.NewBuilder(terminated)
	if skipNearestSmaller {
		builder.SkipNearestSmaller()
	}

	index, err := builder.Build()
	if err != nil {
		return nil, errors.Wrap(err, "Failed to build index")
	}

	rc.loggerInstance.DebugWith("Built index",
		"length", index.Len(),
		"duration", time.Since(start).String())

	return index, nil
}

// writeResult prints a RESULT line prefixed by the input name and length, followed by the given pairs
func (rc *RootCommandeer) writeResult(output io.Writer, length int, elapsed time.Duration, pairs ...interface{}) {
	line := fmt.Sprintf("RESULT file=%s length=%d", textio.DisplayName(rc.inputOptions.Path), length)
	for i := 0; i+1 < len(pairs); i += 2 {
		line += fmt.Sprintf(" %v=%v", pairs[i], pairs[i+1])
	}
	line += fmt.Sprintf(" time_ms=%d", elapsed.Milliseconds())
	fmt.Fprintln(output, line) // nolint: errcheck
}
