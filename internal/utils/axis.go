package utils

import "github.com/pkg/errors"

// AdjustAxisToRank normalizes axis to a value in [0, rank), accepting the usual
// negative-axis convention (axis+rank) as an alias for counting from the end.
//
// It returns an error if axis, once adjusted, still falls outside [0, rank).
func AdjustAxisToRank(axis, rank int) (int, error) {
	if axis < -rank || axis >= rank {
		return -1, errors.Errorf("axis %d is out of range for rank %d", axis, rank)
	}
	if axis < 0 {
		axis += rank
	}
	return axis, nil
}

// RowMajorStrides returns the C-order (row-major) strides for the given
// shape: stride[i] = product of dimensions[j] for j > i. The last axis is
// contiguous (stride 1).
func RowMajorStrides(dimensions []int) []int {
	strides := make([]int, len(dimensions))
	acc := 1
	for i := len(dimensions) - 1; i >= 0; i-- {
		strides[i] = acc
		acc *= dimensions[i]
	}
	return strides
}

// Product returns the product of the given dimensions (1 for an empty list,
// matching the convention that a rank-0 shape holds exactly one element).
func Product(dimensions []int) int {
	p := 1
	for _, d := range dimensions {
		p *= d
	}
	return p
}
