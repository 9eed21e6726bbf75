package stringology

import (
	"github.com/nuclio/errors"
)

type IndexBuilder struct {
	text          []byte
	suffixArray   []int32
	nearestValues bool
}

// NewBuilder prepares an index over text, which must end with a unique smallest sentinel byte.
func NewBuilder(text []byte) *IndexBuilder {
	return &IndexBuilder{
		text:          text,
		nearestValues: true,
	}
}

// Uses a precomputed suffix array instead of sorting the suffixes again.
// The array is checked to be a permutation, its order is trusted.
func (b *IndexBuilder) WithSuffixArray(sa []int32) *IndexBuilder {
	b.suffixArray = sa
	return b
}

// Skips the PSV/NSV arrays over the suffix array.
// Saves 2*|T| int32s; LZ77 factorization is unavailable on the resulting index.
func (b *IndexBuilder) SkipNearestSmaller() *IndexBuilder {
	b.nearestValues = false
	return b
}

func (b *IndexBuilder) Build() (*Index, error) {
	if err := ValidateText(b.text); err != nil {
		return nil, err
	}

	sa := b.suffixArray
	if sa == nil {
		var err error
		sa, err = BuildSuffixArray(b.text)
		if err != nil {
			return nil, errors.Wrap(err, "Failed to build suffix array")
		}
	} else if err := ValidateSuffixArray(sa, len(b.text)); err != nil {
		return nil, err
	}

	phi := ComputePhi(sa)
	plcp := ComputePLCP(b.text, phi)
	lcp := ComputeLCP(plcp, sa)

	var psv, nsv []int32
	if b.nearestValues {
		psv = ComputePSV(sa)
		nsv = ComputeNSV(sa)
	}

	return &Index{
		text:   b.text,
		sa:     sa,
		isa:    InversePermutation(sa),
		phi:    phi,
		plcp:   plcp,
		lcp:    lcp,
		lcpRMQ: NewRangeMinimum(lcp),
		psv:    psv,
		nsv:    nsv,
	}, nil
}

// Index bundles a sentinel terminated text with its suffix array and the arrays derived from it.
// It is immutable after Build.
type Index struct {
	text   []byte
	sa     []int32
	isa    []int32
	phi    []int32
	plcp   []int32
	lcp    []int32
	lcpRMQ *RangeMinimum
	psv    []int32
	nsv    []int32
}

func (x *Index) Len() int { return len(x.text) }
func (x *Index) Text() []byte { return x.text }
func (x *Index) SuffixArray() []int32 { return x.sa }
func (x *Index) InverseSuffixArray() []int32 { return x.isa }
func (x *Index) Phi() []int32 { return x.phi }
func (x *Index) PLCP() []int32 { return x.plcp }
func (x *Index) LCP() []int32 { return x.lcp }

// PSV returns the previous smaller values of the suffix array, nil if skipped.
func (x *Index) PSV() []int32 { return x.psv }

// NSV returns the next smaller values of the suffix array, nil if skipped.
func (x *Index) NSV() []int32 { return x.nsv }

// RankLCP returns the length of the longest common prefix of the suffixes with ranks a and b.
func (x *Index) RankLCP(a, b int) int {
	if a == b {
		return len(x.text) - int(x.sa[a])
	}
	if a > b {
		a, b = b, a
	}
	return int(x.lcpRMQ.Min(a+1, b))
}
