package stringology

import (
	"github.com/nuclio/errors"
)

// LexFactor is one phrase of the lex-parse. A literal has Len 0 and carries the character in Pos;
// a copy repeats Len characters from the absolute text position Pos, which may lie after the phrase.
type LexFactor struct {
	Pos int
	Len int
}

func (f LexFactor) IsLiteral() bool {
	return f.Len == 0
}

// LexParse computes the lex-parse of the text without its sentinel: the phrase at i copies from
// Phi[i], the suffix just before i in rank order, for PLCP[i] characters, or is a literal if PLCP[i] = 0.
func (x *Index) LexParse() []LexFactor {
	n := len(x.text)
	var factors []LexFactor
	for i := 0; i < n-1; {
		l := int(x.plcp[i])
		if l == 0 {
			factors = append(factors, LexFactor{Pos: int(x.text[i]), Len: 0})
			i++
			continue
		}
		factors = append(factors, LexFactor{Pos: int(x.phi[i]), Len: l})
		i += l
	}
	return factors
}

// DecodeLexParse expands a lex-parse back into its text.
// Sources may point forward, so every position is resolved by following copies until a literal;
// a chain that returns to itself is rejected.
func DecodeLexParse(factors []LexFactor) ([]byte, error) {
	n := 0
	for idx, f := range factors {
		if f.Len < 0 {
			return nil, errors.Wrapf(ErrInvalidFactor, "Factor %d has negative length %d", idx, f.Len)
		}
		n += max(f.Len, 1)
	}

	const (
		unresolved = iota
		resolving
		resolved
	)
	out := make([]byte, n)
	source := make([]int, n)
	state := make([]byte, n)

	i := 0
	for idx, f := range factors {
		if f.IsLiteral() {
			if f.Pos < 0 || f.Pos > 0xff {
				return nil, errors.Wrapf(ErrInvalidFactor, "Literal %d at factor %d is not a byte", f.Pos, idx)
			}
			out[i] = byte(f.Pos)
			state[i] = resolved
			i++
			continue
		}
		if f.Pos < 0 || f.Pos+f.Len > n {
			return nil, errors.Wrapf(ErrInvalidFactor,
				"Factor %d copies %d characters from %d of a %d character text", idx, f.Len, f.Pos, n)
		}
		for k := 0; k < f.Len; k++ {
			source[i+k] = f.Pos + k
		}
		i += f.Len
	}

	var chain []int
	for start := range out {
		p := start
		for state[p] == unresolved {
			state[p] = resolving
			chain = append(chain, p)
			p = source[p]
		}
		if state[p] == resolving {
			return nil, errors.Wrapf(ErrInvalidFactor, "Position %d copies from itself", p)
		}
		for _, q := range chain {
			out[q] = out[p]
			state[q] = resolved
		}
		chain = chain[:0]
	}
	return out, nil
}
