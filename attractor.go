package stringology

import (
	"github.com/RoaringBitmap/roaring/v2"
	"github.com/nuclio/errors"
)

// UncoveredSubstring is the shortest substring T[Pos:Pos+Len] of a suffix tree edge
// that none of its occurrences crosses an attractor position with.
type UncoveredSubstring struct {
	Pos int
	Len int
}

type AttractorReport struct {
	Valid     bool
	Uncovered []UncoveredSubstring

	// Distances holds, per suffix array rank, the distance from the start of the suffix to the
	// nearest attractor position at or after it, or the text length if there is none.
	Distances []int32
}

// VerifyAttractor checks whether positions form a string attractor of text, i.e. whether every
// substring of text has an occurrence that contains one of the positions.
// The text is taken without sentinel; one is appended before indexing.
func VerifyAttractor(text []byte, positions []int) (*AttractorReport, error) {
	if len(text) == 0 {
		return nil, ErrEmptyText
	}
	if err := checkNoSentinel(text); err != nil {
		return nil, err
	}

	for _, p := range positions {
		if p < 0 || p >= len(text) {
			return nil, errors.Wrapf(ErrAttractorOutOfRange, "position %d, text length %d", p, len(text))
		}
	}

	terminated := make([]byte, 0, len(text)+1)
	terminated = append(terminated, text...)
	terminated = append(terminated, Sentinel)

	index, err := NewBuilder(terminated).SkipNearestSmaller().Build()
	if err != nil {
		return nil, errors.Wrap(err, "Failed to index text")
	}
	return index.VerifyAttractor(positions)
}

// VerifyAttractor checks positions against the indexed text. Positions lie in [0, n) where n counts
// the sentinel; the sentinel position covers nothing the check reports and is ignored.
//
// A substring of length l occurring at ranks [b, e] is covered iff the distance of some rank in
// [b, e] is below l. All substrings spelled along one suffix tree edge share their occurrences,
// so checking the shortest one, of length parent depth + 1, decides the whole edge.
func (x *Index) VerifyAttractor(positions []int) (*AttractorReport, error) {
	n := len(x.text)
	attractor := roaring.New()
	for _, p := range positions {
		if p < 0 || p >= n {
			return nil, errors.Wrapf(ErrAttractorOutOfRange, "position %d, indexed length %d", p, n)
		}
		if p == n-1 {
			continue
		}
		attractor.Add(uint32(p))
	}

	distances := make([]int32, n)
	for rank, p := range x.sa {
		distances[rank] = attractorDistance(attractor, uint32(p), n)
	}
	distanceRMQ := NewRangeMinimum(distances)

	report := &AttractorReport{
		Valid:     true,
		Distances: distances,
	}

	tree := x.LCPIntervals()
	for _, edge := range tree.Edges {
		parent := tree.Intervals[edge.Parent]
		child := tree.Intervals[edge.Child]

		start := int(x.sa[child.Begin])
		if start+parent.Depth == n-1 {
			continue
		}

		length := parent.Depth + 1
		if int(distanceRMQ.Min(child.Begin, child.End)) < length {
			continue
		}
		report.Valid = false
		report.Uncovered = append(report.Uncovered, UncoveredSubstring{Pos: start, Len: length})
	}
	return report, nil
}

func attractorDistance(attractor *roaring.Bitmap, p uint32, n int) int32 {
	if attractor.Contains(p) {
		return 0
	}
	// Rank counts the positions <= p, which is the 0-based index of the next one
	next, err := attractor.Select(uint32(attractor.Rank(p)))
	if err != nil {
		return int32(n)
	}
	return int32(next - p)
}
