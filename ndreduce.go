// Package ndreduce reduces a dense, strided, row-major n-dimensional
// tensor along a caller-chosen set of axes using one of a closed family of
// associative-commutative operators: Max, Min, Sum, Prod, ProdNZ, And, Or,
// Xor, Any, All, ArgMax, ArgMin, MaxAndArgMax and MinAndArgMin.
//
// Every entry point below is a thin façade: it selects the operator's
// internal/kinds.Kind and destination arity, then hands everything off to
// kernel.Reduce, which does the actual planning and folding. None of them
// contain reduction logic of their own.
package ndreduce

import (
	"github.com/gomlx/ndreduce/internal/kinds"
	"github.com/gomlx/ndreduce/kernel"
	"github.com/gomlx/ndreduce/types/tensor"
)

// Max writes, for each retained coordinate, the greatest element across the
// reduced axes into dst.
func Max(src *tensor.Tensor, axes []int, dst *tensor.Tensor) error {
	return kernel.Reduce(kinds.Max, src, axes, dst, nil)
}

// Min writes, for each retained coordinate, the least element across the
// reduced axes into dst.
func Min(src *tensor.Tensor, axes []int, dst *tensor.Tensor) error {
	return kernel.Reduce(kinds.Min, src, axes, dst, nil)
}

// Sum writes the sum of the reduced axes into dst.
func Sum(src *tensor.Tensor, axes []int, dst *tensor.Tensor) error {
	return kernel.Reduce(kinds.Sum, src, axes, dst, nil)
}

// Prod writes the product of the reduced axes into dst.
func Prod(src *tensor.Tensor, axes []int, dst *tensor.Tensor) error {
	return kernel.Reduce(kinds.Prod, src, axes, dst, nil)
}

// ProdNZ writes the product of the non-zero elements across the reduced
// axes into dst, treating zero elements as absent from the product.
func ProdNZ(src *tensor.Tensor, axes []int, dst *tensor.Tensor) error {
	return kernel.Reduce(kinds.ProdNZ, src, axes, dst, nil)
}

// And writes the bitwise AND of the reduced axes into dst.
func And(src *tensor.Tensor, axes []int, dst *tensor.Tensor) error {
	return kernel.Reduce(kinds.And, src, axes, dst, nil)
}

// Or writes the bitwise OR of the reduced axes into dst.
func Or(src *tensor.Tensor, axes []int, dst *tensor.Tensor) error {
	return kernel.Reduce(kinds.Or, src, axes, dst, nil)
}

// Xor writes the bitwise XOR of the reduced axes into dst.
func Xor(src *tensor.Tensor, axes []int, dst *tensor.Tensor) error {
	return kernel.Reduce(kinds.Xor, src, axes, dst, nil)
}

// Any writes 1 into dst wherever any element across the reduced axes is
// non-zero, and 0 otherwise.
func Any(src *tensor.Tensor, axes []int, dst *tensor.Tensor) error {
	return kernel.Reduce(kinds.Any, src, axes, dst, nil)
}

// All writes 1 into dst wherever every element across the reduced axes is
// non-zero, and 0 otherwise.
func All(src *tensor.Tensor, axes []int, dst *tensor.Tensor) error {
	return kernel.Reduce(kinds.All, src, axes, dst, nil)
}

// ArgMax writes, for each retained coordinate, the flattened index (in the
// caller's axes order) of the greatest element across the reduced axes
// into dstIndex. Ties resolve to the earliest index.
func ArgMax(src *tensor.Tensor, axes []int, dstIndex *tensor.Tensor) error {
	return kernel.Reduce(kinds.ArgMax, src, axes, nil, dstIndex)
}

// ArgMin writes, for each retained coordinate, the flattened index (in the
// caller's axes order) of the least element across the reduced axes into
// dstIndex. Ties resolve to the earliest index.
func ArgMin(src *tensor.Tensor, axes []int, dstIndex *tensor.Tensor) error {
	return kernel.Reduce(kinds.ArgMin, src, axes, nil, dstIndex)
}

// MaxAndArgMax is Max and ArgMax fused into a single pass over src.
func MaxAndArgMax(src *tensor.Tensor, axes []int, dstValue, dstIndex *tensor.Tensor) error {
	return kernel.Reduce(kinds.MaxAndArgMax, src, axes, dstValue, dstIndex)
}

// MinAndArgMin is Min and ArgMin fused into a single pass over src.
func MinAndArgMin(src *tensor.Tensor, axes []int, dstValue, dstIndex *tensor.Tensor) error {
	return kernel.Reduce(kinds.MinAndArgMin, src, axes, dstValue, dstIndex)
}
