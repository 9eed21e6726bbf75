package stringology

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Invalid marks a missing previous or next smaller value.
const Invalid int32 = math.MaxInt32

// ComputePSV returns for every index i the nearest j < i with values[j] < values[i], or Invalid.
func ComputePSV[T constraints.Ordered](values []T) []int32 {
	psv := make([]int32, len(values))
	stack := make([]int32, 0, 64)
	for i := range values {
		for len(stack) > 0 && values[stack[len(stack)-1]] >= values[i] {
			stack = stack[:len(stack)-1]
		}
		if len(stack) == 0 {
			psv[i] = Invalid
		} else {
			psv[i] = stack[len(stack)-1]
		}
		stack = append(stack, int32(i))
	}
	return psv
}

// ComputeNSV returns for every index i the nearest j > i with values[j] < values[i], or Invalid.
func ComputeNSV[T constraints.Ordered](values []T) []int32 {
	nsv := make([]int32, len(values))
	stack := make([]int32, 0, 64)
	for i := len(values) - 1; i >= 0; i-- {
		for len(stack) > 0 && values[stack[len(stack)-1]] >= values[i] {
			stack = stack[:len(stack)-1]
		}
		if len(stack) == 0 {
			nsv[i] = Invalid
		} else {
			nsv[i] = stack[len(stack)-1]
		}
		stack = append(stack, int32(i))
	}
	return nsv
}
