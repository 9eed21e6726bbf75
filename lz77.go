package stringology

import (
	"github.com/nuclio/errors"
)

// Factor is one LZ77 phrase. A literal has Len 0 and carries the character in Pos;
// a copy repeats Len characters starting Pos positions back.
type Factor struct {
	Pos int
	Len int
}

func (f Factor) IsLiteral() bool {
	return f.Len == 0
}

// LZ77 computes the greedy LZ77 parsing of the text without its sentinel.
// The longest previous factor at i is found among the two suffixes nearest in rank that start
// before i, which are exactly PSV and NSV over the suffix array.
func (x *Index) LZ77() ([]Factor, error) {
	if x.psv == nil || x.nsv == nil {
		return nil, ErrNearestSmallerSkip
	}

	n := len(x.text)
	var factors []Factor
	for i := 0; i < n-1; {
		r := int(x.isa[i])

		prevLCP, nextLCP := 0, 0
		if x.psv[r] != Invalid {
			prevLCP = x.RankLCP(int(x.psv[r]), r)
		}
		if x.nsv[r] != Invalid {
			nextLCP = x.RankLCP(r, int(x.nsv[r]))
		}

		if prevLCP == 0 && nextLCP == 0 {
			factors = append(factors, Factor{Pos: int(x.text[i]), Len: 0})
			i++
			continue
		}

		var length, source int
		if prevLCP < nextLCP {
			length, source = nextLCP, int(x.sa[x.nsv[r]])
		} else {
			length, source = prevLCP, int(x.sa[x.psv[r]])
		}
		factors = append(factors, Factor{Pos: i - source, Len: length})
		i += length
	}
	return factors, nil
}

// DecodeLZ77 expands a factorization back into the text it was computed from.
// Copies may overlap the characters they produce.
func DecodeLZ77(factors []Factor) ([]byte, error) {
	var out []byte
	for idx, f := range factors {
		if f.IsLiteral() {
			if f.Pos < 0 || f.Pos > 0xff {
				return nil, errors.Wrapf(ErrInvalidFactor, "Literal %d at factor %d is not a byte", f.Pos, idx)
			}
			out = append(out, byte(f.Pos))
			continue
		}
		if f.Len < 0 || f.Pos <= 0 || f.Pos > len(out) {
			return nil, errors.Wrapf(ErrInvalidFactor,
				"Factor %d copies %d characters from %d back with %d decoded", idx, f.Len, f.Pos, len(out))
		}
		start := len(out) - f.Pos
		for k := 0; k < f.Len; k++ {
			out = append(out, out[start+k])
		}
	}
	return out, nil
}

// NaiveLZ77 computes the greedy parsing by scanning every earlier start position.
// Sources may differ from LZ77 when several are equally long; phrase lengths do not.
func NaiveLZ77(text []byte) []Factor {
	var factors []Factor
	n := len(text)
	for i := 0; i < n; {
		length, source := 0, -1
		for j := 0; j < i; j++ {
			l := 0
			for i+l < n && text[j+l] == text[i+l] {
				l++
			}
			if l > length {
				length, source = l, j
			}
		}
		if length == 0 {
			factors = append(factors, Factor{Pos: int(text[i]), Len: 0})
			i++
			continue
		}
		factors = append(factors, Factor{Pos: i - source, Len: length})
		i += length
	}
	return factors
}
