package stringology

import "github.com/viniciusth/rmq"

// RangeMinimum answers range minimum queries over a static int32 array.
type RangeMinimum struct {
	values []int32
	rmq    *rmq.RMQHybridNaive[int32]
}

func NewRangeMinimum(values []int32) *RangeMinimum {
	r := &RangeMinimum{values: values}
	if len(values) > 0 {
		r.rmq = rmq.NewRMQHybridNaive(values)
	}
	return r
}

func (r *RangeMinimum) Len() int {
	return len(r.values)
}

// ArgMin returns the index of a minimum in values[i..j], both ends inclusive.
func (r *RangeMinimum) ArgMin(i, j int) int {
	if i < 0 || j >= len(r.values) || i > j {
		panic("stringology: range minimum query out of bounds")
	}
	if i == j {
		return i
	}
	return r.rmq.Query(i, j)
}

// Min returns the minimum of values[i..j], both ends inclusive.
func (r *RangeMinimum) Min(i, j int) int32 {
	return r.values[r.ArgMin(i, j)]
}
