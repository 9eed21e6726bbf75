package stringology

import (
	"bytes"
	"math/rand"
	"slices"
	"testing"
)

func naiveOccurrences(text, pattern []byte) []int {
	var res []int
	for i := 0; i < len(text) && i+len(pattern) <= len(text); i++ {
		if bytes.Equal(text[i:i+len(pattern)], pattern) {
			res = append(res, i)
		}
	}
	return res
}

func checkOccurrences(t *testing.T, index *Index, pattern []byte) {
	t.Helper()
	expected := naiveOccurrences(index.Text(), pattern)
	got := index.Occurrences(pattern)
	if !slices.Equal(got, expected) {
		t.Errorf("occurrences of %q: got %v, want %v", pattern, got, expected)
	}
	if c := index.Count(pattern); c != len(expected) {
		t.Errorf("count of %q: got %d, want %d", pattern, c, len(expected))
	}

	l, r := index.Locate(pattern)
	if len(expected) == 0 {
		if l != -1 || r != -1 {
			t.Errorf("locate %q: got [%d, %d], want no match", pattern, l, r)
		}
		return
	}
	for i := l; i <= r; i++ {
		if !bytes.HasPrefix(index.Text()[index.SuffixArray()[i]:], pattern) {
			t.Errorf("locate %q: rank %d is not prefixed by the pattern", pattern, i)
		}
	}
}

func TestLocateBasic(t *testing.T) {
	index := mustBuild(t, terminate("apple banana app pineapple bandana"))

	tests := []string{"app", "an", "pine", "xyz", "", "a", "banana", "bandana ", "e", "apple banana app pineapple bandana"}
	for _, pattern := range tests {
		t.Run(pattern, func(t *testing.T) {
			checkOccurrences(t, index, []byte(pattern))
		})
	}
}

func TestLocateSentinel(t *testing.T) {
	index := mustBuild(t, terminate("banana"))
	l, r := index.Locate([]byte{Sentinel})
	if l != 0 || r != 0 {
		t.Errorf("sentinel should be the smallest suffix, got [%d, %d]", l, r)
	}
	if got := index.Occurrences([]byte("na\x00")); !slices.Equal(got, []int{4}) {
		t.Errorf("got %v, want [4]", got)
	}
	if l, r := index.Locate([]byte("banana\x00\x00")); l != -1 || r != -1 {
		t.Errorf("pattern longer than the text matched [%d, %d]", l, r)
	}
}

func TestLocateRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for iter := 0; iter < 50; iter++ {
		text := randomText(rng, 1+rng.Intn(200), "abc")
		index := mustBuild(t, append(text, Sentinel))
		for q := 0; q < 30; q++ {
			var pattern []byte
			if rng.Intn(2) == 0 {
				start := rng.Intn(len(text))
				end := start + rng.Intn(len(text)-start+1)
				pattern = text[start:end]
			} else {
				pattern = randomText(rng, 1+rng.Intn(6), "abc")
			}
			checkOccurrences(t, index, pattern)
		}
	}
}

func FuzzLocate(f *testing.F) {
	f.Add([]byte("apple banana app pineapple bandana"), []byte("app"))
	f.Add([]byte("aaaaaaaaaaaaaaa"), []byte("aaa"))
	f.Add([]byte("😂🙈🙉🙊😂"), []byte("😂"))

	f.Fuzz(func(t *testing.T, data []byte, pattern []byte) {
		if len(data) > 1000 || len(pattern) > 100 || bytes.IndexByte(data, Sentinel) >= 0 {
			return
		}
		index := mustBuild(t, append(slices.Clone(data), Sentinel))
		checkOccurrences(t, index, pattern)
	})
}
