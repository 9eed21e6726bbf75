package stringology

// MUS is a minimal unique substring T[Pos:Pos+Len]: it occurs exactly once in the text
// while both its longest proper prefix and its longest proper suffix occur at least twice.
type MUS struct {
	Pos int
	Len int
}

// MinimalUniqueSubstrings lists the MUSs of a sentinel terminated text in increasing position.
// None of them contains the sentinel.
//
// The shortest unique substring starting at i has length ell(i)+1, where ell(i) is the larger LCP
// with the rank neighbours of suffix i. It is minimal iff it does not contain the shortest unique
// substring starting at i+1, i.e. iff ell(i) <= ell(i+1).
func MinimalUniqueSubstrings(sa, isa, lcp []int32) []MUS {
	n := len(sa) - 1

	longestRepeat := func(i int) int {
		r := int(isa[i])
		if r+1 == len(sa) {
			return int(lcp[r])
		}
		return int(max(lcp[r], lcp[r+1]))
	}

	var mus []MUS
	for i := 0; i < n; i++ {
		ell := longestRepeat(i)
		if ell+i >= n {
			continue
		}
		if ell <= longestRepeat(i+1) {
			mus = append(mus, MUS{Pos: i, Len: ell + 1})
		}
	}
	return mus
}

func (x *Index) MinimalUniqueSubstrings() []MUS {
	return MinimalUniqueSubstrings(x.sa, x.isa, x.lcp)
}
