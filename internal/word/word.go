// Package word generates the classic binary morphic words over the alphabet {a, b}
// and enumerates Lyndon words.
package word

import (
	"github.com/nuclio/errors"
)

const (
	a = 'a'
	b = 'b'
)

var (
	// ErrUnknownName is returned by ByName for unsupported generators.
	ErrUnknownName = errors.New("word: unknown word name")

	// ErrIndexOutOfRange is returned by ByName when the word would not be addressable with int32.
	ErrIndexOutOfRange = errors.New("word: index out of range")
)

// Largest indices whose words fit in int32 lengths.
const (
	MaxFibonacciIndex      = 45
	MaxPeriodDoublingIndex = 31
	MaxThueMorseIndex      = 30
)

// FibonacciNumber returns the length of FibonacciWord(k): 1, 1, 2, 3, 5, 8, ...
func FibonacciNumber(k int) int {
	prev, cur := 0, 1
	for i := 0; i < k; i++ {
		prev, cur = cur, prev+cur
	}
	return cur
}

// Fibonacci returns the k-th Fibonacci word, the prefix of length FibonacciNumber(k) of the
// fixed point of a -> ab, b -> a.
// Since the image of a starts with a, the word is extended by appending ba for every a and
// a for every b read behind the write position.
func Fibonacci(k int) []byte {
	n := FibonacciNumber(k)
	text := make([]byte, 1, n+1)
	text[0] = a
	for source := 0; len(text) < n; source++ {
		if text[source] == a {
			text = append(text, b, a)
		} else {
			text = append(text, a)
		}
	}
	return text[:n]
}

// PeriodDoubling returns the prefix of length 2^(k-1) of the fixed point of a -> ab, b -> aa.
// For k <= 1 it returns "a".
func PeriodDoubling(k int) []byte {
	return iterateMorphism(k, func(c byte) []byte {
		if c == a {
			return []byte{a, b}
		}
		return []byte{a, a}
	})
}

func iterateMorphism(rounds int, morphism func(byte) []byte) []byte {
	if rounds <= 1 {
		return []byte{a}
	}
	n := 1 << (rounds - 1)
	text := make([]byte, 0, n)
	text = append(text, a)
	for source := 0; len(text) < n; source++ {
		image := morphism(text[source])
		if source == 0 {
			// the image of the first letter starts with itself
			image = image[1:]
		}
		for _, c := range image {
			if len(text) == n {
				break
			}
			text = append(text, c)
		}
	}
	return text
}

// ThueMorse returns the Thue-Morse word of length 2^i, built by appending the complement
// of the current prefix i times.
func ThueMorse(i int) []byte {
	if i < 0 {
		return nil
	}
	text := make([]byte, 1, 1<<i)
	text[0] = a
	for j := 0; j < i; j++ {
		for _, c := range text[:1<<j] {
			if c == a {
				text = append(text, b)
			} else {
				text = append(text, a)
			}
		}
	}
	return text
}

// Names lists the generators accepted by ByName.
var Names = []string{"fibonacci", "period-doubling", "thue-morse"}

// ByName returns the k-th word of the named family, for k in [0, Max<Family>Index].
func ByName(name string, k int) ([]byte, error) {
	var generate func(int) []byte
	var maxIndex int
	switch name {
	case "fibonacci":
		generate, maxIndex = Fibonacci, MaxFibonacciIndex
	case "period-doubling":
		generate, maxIndex = PeriodDoubling, MaxPeriodDoublingIndex
	case "thue-morse":
		generate, maxIndex = ThueMorse, MaxThueMorseIndex
	default:
		return nil, errors.Wrapf(ErrUnknownName, "%q, expected one of %v", name, Names)
	}

	if k < 0 || k > maxIndex {
		return nil, errors.Wrapf(ErrIndexOutOfRange, "%s index %d, expected [0, %d]", name, k, maxIndex)
	}
	return generate(k), nil
}
