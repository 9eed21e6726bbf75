package stringology

import "golang.org/x/exp/constraints"

// InversePermutation returns inv with inv[perm[i]] = i.
// Applied to a suffix array it yields the inverse suffix array.
func InversePermutation[T constraints.Integer](perm []T) []T {
	inv := make([]T, len(perm))
	for i, p := range perm {
		inv[p] = T(i)
	}
	return inv
}

// ComputePhi returns Phi with Phi[SA[i]] = SA[i-1], wrapping around to SA[n-1] for i = 0.
func ComputePhi[T constraints.Integer](sa []T) []T {
	phi := make([]T, len(sa))
	if len(sa) == 0 {
		return phi
	}
	for i := 1; i < len(sa); i++ {
		phi[sa[i]] = sa[i-1]
	}
	phi[sa[0]] = sa[len(sa)-1]
	return phi
}

// ComputePLCP computes the permuted LCP array in text order in O(n) time.
// PLCP[p] is the length of the longest common prefix of the suffixes starting at p and Phi[p].
// Since PLCP[p] >= PLCP[p-1]-1, the match length carries over between consecutive positions.
func ComputePLCP[T constraints.Integer](text []byte, phi []T) []T {
	n := len(text)
	plcp := make([]T, n)
	l := 0
	for b := 0; b < n; b++ {
		a := int(phi[b])
		// the bounds only matter for texts without a unique sentinel
		for a+l < n && b+l < n && text[a+l] == text[b+l] {
			l++
		}
		plcp[b] = T(l)
		if l > 0 {
			l--
		}
	}
	return plcp
}

// ComputeLCP reorders PLCP into rank order: LCP[i] = PLCP[SA[i]].
// LCP[0] compares the smallest suffix with the largest one; for a sentinel terminated text it is 0.
func ComputeLCP[T constraints.Integer](plcp, sa []T) []T {
	lcp := make([]T, len(sa))
	for i, p := range sa {
		lcp[i] = plcp[p]
	}
	return lcp
}
