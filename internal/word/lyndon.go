package word

import (
	"iter"
)

// LyndonWords iterates over every Lyndon word of length at most maxLength over the alphabet
// {0, ..., sigma-1} in lexicographic order.
// The yielded slice is reused between iterations.
func LyndonWords(maxLength, sigma int) iter.Seq[[]byte] {
	return func(yield func([]byte) bool) {
		if maxLength <= 0 || sigma <= 0 || sigma > 256 {
			return
		}
		nextLyndonWords(maxLength, byte(sigma-1), yield)
	}
}

// nextLyndonWords runs Duval's successor algorithm starting from the single letter 0.
func nextLyndonWords(maxLength int, last byte, yield func([]byte) bool) {
	w := []byte{0}
	for len(w) > 0 {
		if !yield(w) {
			return
		}

		// repeat w up to maxLength, drop trailing maximal letters and increment the last one
		m := len(w)
		for len(w) < maxLength {
			w = append(w, w[len(w)-m])
		}
		for len(w) > 0 && w[len(w)-1] == last {
			w = w[:len(w)-1]
		}
		if len(w) > 0 {
			w[len(w)-1]++
		}
	}
}

// CollectLyndonWords returns all Lyndon words of LyndonWords as independent slices.
func CollectLyndonWords(maxLength, sigma int) [][]byte {
	var words [][]byte
	for w := range LyndonWords(maxLength, sigma) {
		words = append(words, append([]byte(nil), w...))
	}
	return words
}
