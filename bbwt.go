package stringology

import (
	"slices"
)

type conjugate struct {
	start  int
	length int
	shift  int
}

func (c conjugate) at(text []byte, off int) byte {
	return text[c.start+(c.shift+off)%c.length]
}

// compareOmega orders two conjugates by their infinite periodic repetitions.
// Two periodic words that agree on la*lb characters are equal forever.
func compareOmega(text []byte, a, b conjugate) int {
	limit := a.length * b.length
	for off := 0; off < limit; off++ {
		ca, cb := a.at(text, off), b.at(text, off)
		if ca != cb {
			if ca < cb {
				return -1
			}
			return 1
		}
	}
	return 0
}

// BijectiveBWT returns the bijective Burrows-Wheeler transform of text: every rotation of every
// Lyndon factor, sorted by infinite periodic order, contributes its last character.
// The comparison is quadratic in the factor lengths.
func BijectiveBWT(text []byte) []byte {
	n := len(text)
	if n == 0 {
		return []byte{}
	}

	conjugates := make([]conjugate, 0, n)
	start := 0
	for _, end := range Duval(text) {
		length := end - start + 1
		for shift := 0; shift < length; shift++ {
			conjugates = append(conjugates, conjugate{start: start, length: length, shift: shift})
		}
		start = end + 1
	}

	slices.SortStableFunc(conjugates, func(a, b conjugate) int {
		return compareOmega(text, a, b)
	})

	out := make([]byte, n)
	for i, c := range conjugates {
		out[i] = c.at(text, c.length-1)
	}
	return out
}
