// Package textio reads the byte texts the commands work on and writes their results.
package textio

import (
	"bytes"
	"io"
	"os"

	"github.com/nuclio/errors"
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Options control how an input text is read.
type Options struct {

	// Path of the input file; empty or "-" reads from the fallback reader
	Path string

	// Keep only the first PrefixLength bytes, 0 keeps everything
	PrefixLength int

	// Apply Unicode NFC normalization before truncation
	Normalize bool

	// Apply Unicode case folding before truncation
	FoldCase bool
}

// Read loads the text described by options, reading stdin when no path is given.
func Read(options *Options, stdin io.Reader) ([]byte, error) {
	var reader io.Reader
	if options.Path == "" || options.Path == "-" {
		reader = stdin
	} else {
		file, err := os.Open(options.Path)
		if err != nil {
			return nil, errors.Wrapf(err, "Failed to open input file %s", options.Path)
		}
		defer file.Close() // nolint: errcheck
		reader = file
	}

	// without transforms only the prefix needs to be read
	if options.PrefixLength > 0 && !options.Normalize && !options.FoldCase {
		reader = io.LimitReader(reader, int64(options.PrefixLength))
	}

	text, err := io.ReadAll(reader)
	if err != nil {
		return nil, errors.Wrap(err, "Failed to read input")
	}

	text = Transform(text, options.Normalize, options.FoldCase)
	if options.PrefixLength > 0 && len(text) > options.PrefixLength {
		text = text[:options.PrefixLength]
	}
	return text, nil
}

// Transform applies case folding and NFC normalization, returning text itself when neither is requested.
func Transform(text []byte, normalize bool, foldCase bool) []byte {
	if foldCase {
		text = cases.Fold().Bytes(text)
	}
	if normalize {
		text = norm.NFC.Bytes(text)
	}
	return text
}

// AppendSentinel returns a copy of text terminated by sentinel, failing if sentinel already occurs.
func AppendSentinel(text []byte, sentinel byte) ([]byte, error) {
	if i := bytes.IndexByte(text, sentinel); i >= 0 {
		return nil, errors.Errorf("Input contains the sentinel byte %#x at position %d", sentinel, i)
	}
	terminated := make([]byte, 0, len(text)+1)
	terminated = append(terminated, text...)
	return append(terminated, sentinel), nil
}

// Create opens path for writing, or returns fallback when path is empty or "-".
// The returned close function is a no-op for the fallback writer.
func Create(path string, fallback io.Writer) (io.Writer, func() error, error) {
	if path == "" || path == "-" {
		return fallback, func() error { return nil }, nil
	}
	file, err := os.Create(path)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "Failed to create output file %s", path)
	}
	return file, file.Close, nil
}

// DisplayName names the input in result lines.
func DisplayName(path string) string {
	if path == "" || path == "-" {
		return "stdin"
	}
	return path
}
