package stringology

import (
	"golang.org/x/exp/constraints"
)

// Duval returns the Lyndon factorization of text as the inclusive end position of every factor.
// The factors are non-increasing, and an empty text has no factors.
func Duval[T constraints.Ordered](text []T) []int {
	n := len(text)
	var ends []int
	for k := 0; k < n; {
		i, j := k, k+1
		for j < n && text[i] <= text[j] {
			if text[i] < text[j] {
				i = k
			} else {
				i++
			}
			j++
		}
		for k <= i {
			k += j - i
			ends = append(ends, k-1)
		}
	}
	return ends
}

// ISALyndonFactorization derives the same factorization from the inverse suffix array:
// a new factor starts wherever the rank drops below every rank seen so far.
func ISALyndonFactorization[T constraints.Integer](isa []T) []int {
	n := len(isa)
	if n == 0 {
		return nil
	}
	var ends []int
	smallest := isa[0]
	for k := 1; k < n; k++ {
		if isa[k] < smallest {
			ends = append(ends, k-1)
			smallest = isa[k]
		}
	}
	return append(ends, n-1)
}

// LyndonFactors slices text at the given inclusive end positions.
func LyndonFactors[T any](text []T, ends []int) [][]T {
	factors := make([][]T, 0, len(ends))
	start := 0
	for _, e := range ends {
		factors = append(factors, text[start:e+1])
		start = e + 1
	}
	return factors
}

// IsLyndon reports whether word is strictly smaller than each of its proper rotations.
func IsLyndon[T constraints.Ordered](word []T) bool {
	ends := Duval(word)
	return len(ends) == 1
}

// LyndonFactorization returns the Lyndon factorization of the indexed text, sentinel included.
// The sentinel always forms the last factor.
func (x *Index) LyndonFactorization() []int {
	return ISALyndonFactorization(x.isa)
}
