package stringology

import (
	"math"

	"github.com/nuclio/errors"
)

var (
	ErrEmptyText           = errors.New("stringology: empty text")
	ErrTextTooLarge        = errors.New("stringology: text length exceeds the int32 range")
	ErrMissingSentinel     = errors.New("stringology: text must end with a unique byte smaller than every other byte")
	ErrSentinelInText      = errors.New("stringology: text contains the reserved sentinel byte 0x00")
	ErrInvalidSuffixArray  = errors.New("stringology: suffix array is not a permutation of the text positions")
	ErrAttractorOutOfRange = errors.New("stringology: attractor position out of range")
	ErrNearestSmallerSkip  = errors.New("stringology: index was built without PSV/NSV arrays")
	ErrInvalidFactor       = errors.New("stringology: factor references data outside the decoded prefix")
)

// Sentinel is the byte appended by the operations that terminate a text themselves.
const Sentinel = 0x00

// ValidateText checks that text is non-empty, addressable with int32 and ends with a
// sentinel strictly smaller than every other byte, so that no suffix is a prefix of another.
func ValidateText(text []byte) error {
	if len(text) == 0 {
		return ErrEmptyText
	}
	if int64(len(text)) > math.MaxInt32 {
		return errors.Wrapf(ErrTextTooLarge, "length %d", len(text))
	}
	last := len(text) - 1
	sentinel := text[last]
	for i := 0; i < last; i++ {
		if text[i] <= sentinel {
			return errors.Wrapf(ErrMissingSentinel, "byte %#x at position %d is not larger than the sentinel %#x",
				text[i], i, sentinel)
		}
	}
	return nil
}

// ValidateSuffixArray checks that sa is a permutation of [0, n).
// It does not verify the lexicographic order of the suffixes.
func ValidateSuffixArray(sa []int32, n int) error {
	if len(sa) != n {
		return errors.Wrapf(ErrInvalidSuffixArray, "length %d, text length %d", len(sa), n)
	}
	seen := make([]bool, n)
	for i, p := range sa {
		if p < 0 || int(p) >= n {
			return errors.Wrapf(ErrInvalidSuffixArray, "entry %d at rank %d out of range", p, i)
		}
		if seen[p] {
			return errors.Wrapf(ErrInvalidSuffixArray, "position %d occurs twice", p)
		}
		seen[p] = true
	}
	return nil
}

func checkNoSentinel(text []byte) error {
	for i, c := range text {
		if c == Sentinel {
			return errors.Wrapf(ErrSentinelInText, "position %d", i)
		}
	}
	return nil
}
