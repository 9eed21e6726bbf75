package stringology

import (
	"bytes"
	"slices"

	"github.com/nuclio/errors"
)

// BWT returns the Burrows-Wheeler transform of a sentinel terminated text given its suffix array.
func BWT(text []byte, sa []int32) []byte {
	n := len(text)
	bwt := make([]byte, n)
	for i, p := range sa {
		bwt[i] = text[(int(p)-1+n)%n]
	}
	return bwt
}

// SmallestRotation returns the start of the lexicographically smallest rotation of text.
// Among equal rotations of a periodic text the first one is returned.
func SmallestRotation(text []byte) int {
	n := len(text)
	if n == 0 {
		return 0
	}
	doubled := make([]byte, 0, 2*n)
	doubled = append(doubled, text...)
	doubled = append(doubled, text...)

	// the factor of text+text covering position n starts the smallest rotation,
	// and its length is the period of the text
	start := 0
	for _, end := range Duval(doubled) {
		if start <= n && n <= end {
			return start % (end - start + 1)
		}
		start = end + 1
	}
	return 0
}

// ConjugateBWT returns the last column of the sorted rotations of text, without a sentinel.
// The text is rotated to its smallest conjugate, whose suffix order matches its rotation order.
func ConjugateBWT(text []byte) ([]byte, error) {
	if len(text) == 0 {
		return nil, ErrEmptyText
	}
	if err := checkNoSentinel(text); err != nil {
		return nil, err
	}

	n := len(text)
	k := SmallestRotation(text)
	rotated := make([]byte, 0, n+1)
	rotated = append(rotated, text[k:]...)
	rotated = append(rotated, text[:k]...)
	rotated = append(rotated, Sentinel)

	sa, err := BuildSuffixArray(rotated)
	if err != nil {
		return nil, errors.Wrap(err, "Failed to build suffix array of the smallest rotation")
	}

	bwt := BWT(rotated, sa)
	out := make([]byte, 0, n)
	for _, c := range bwt {
		if c != Sentinel {
			out = append(out, c)
		}
	}
	return out, nil
}

// NaiveConjugateBWT sorts all rotations explicitly. Quadratic, meant for tests and small inputs.
func NaiveConjugateBWT(text []byte) []byte {
	n := len(text)
	rotations := make([][]byte, n)
	for i := range rotations {
		rotations[i] = append(slices.Clone(text[i:]), text[:i]...)
	}
	slices.SortStableFunc(rotations, bytes.Compare)
	out := make([]byte, n)
	for i, r := range rotations {
		out[i] = r[n-1]
	}
	return out
}

// Runs counts the maximal blocks of equal adjacent characters.
func Runs(s []byte) int {
	if len(s) == 0 {
		return 0
	}
	runs := 1
	for i := 1; i < len(s); i++ {
		if s[i] != s[i-1] {
			runs++
		}
	}
	return runs
}

// BWT returns the transform of the indexed text, sentinel included.
func (x *Index) BWT() []byte {
	return BWT(x.text, x.sa)
}
