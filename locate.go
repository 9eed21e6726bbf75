package stringology

import (
	"bytes"
	"slices"
	"sort"
)

// Locate returns the suffix array range [begin, end] of the suffixes that start with pattern,
// or (-1, -1) if pattern does not occur.
// It runs in O(|P| + log |T|) character comparisons, using the LCP RMQ to skip known matches.
func (x *Index) Locate(pattern []byte) (int, int) {
	n := len(x.sa)
	bestIdx, best := -1, 0

	// extends the match of pattern against the suffix with rank i, reports pattern <= suffix
	expandBest := func(i int) bool {
		p := int(x.sa[i])
		for best < len(pattern) && p+best < n && pattern[best] == x.text[p+best] {
			best++
		}
		bestIdx = i
		if best == len(pattern) {
			return true
		} else if p+best == n {
			return false
		}
		return pattern[best] < x.text[p+best]
	}

	// find first index where pattern is a prefix
	l := sort.Search(n, func(i int) bool {
		if bestIdx == -1 {
			return expandBest(i)
		}
		if lcp := x.RankLCP(bestIdx, i); lcp < best {
			// the suffix leaves the matched prefix before best characters, its side decides
			return i > bestIdx
		}
		return expandBest(i)
	})

	if l == n || !bytes.HasPrefix(x.text[x.sa[l]:], pattern) {
		return -1, -1
	}

	// T T T F F F -> first F where the prefix no longer matches
	r := sort.Search(n-l, func(k int) bool {
		if k == 0 {
			return false
		}
		return x.RankLCP(l, l+k) < len(pattern)
	})

	return l, l + r - 1
}

// Count returns the number of occurrences of pattern in the text, sentinel included.
func (x *Index) Count(pattern []byte) int {
	l, r := x.Locate(pattern)
	if l == -1 {
		return 0
	}
	return r - l + 1
}

// Occurrences returns the sorted starting positions of pattern.
func (x *Index) Occurrences(pattern []byte) []int {
	l, r := x.Locate(pattern)
	if l == -1 {
		return nil
	}
	positions := make([]int, 0, r-l+1)
	for i := l; i <= r; i++ {
		positions = append(positions, int(x.sa[i]))
	}
	slices.Sort(positions)
	return positions
}
