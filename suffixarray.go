package stringology

import (
	"math"

	"github.com/jgallagher/gosaca"
	"github.com/nuclio/errors"
)

// BuildSuffixArray sorts the suffixes of text with SA-IS and returns the suffix array.
// The text does not need to be sentinel terminated.
func BuildSuffixArray(text []byte) ([]int32, error) {
	if int64(len(text)) > math.MaxInt32 {
		return nil, errors.Wrapf(ErrTextTooLarge, "length %d", len(text))
	}
	switch len(text) {
	case 0:
		return []int32{}, nil
	case 1:
		return []int32{0}, nil
	}

	sa := make([]int, len(text))
	ws := &gosaca.WorkSpace{}
	ws.ComputeSuffixArray(text, sa)

	sa32 := make([]int32, len(sa))
	for i, p := range sa {
		sa32[i] = int32(p)
	}
	return sa32, nil
}
