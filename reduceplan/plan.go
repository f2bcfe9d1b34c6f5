// Package reduceplan implements the Axis Plan, Iterator and Validation
// components of the reduction engine (spec §4.A, §4.C, §4.F): it turns a
// source shape and a caller-ordered axis list into retained axes, the
// output shape, the reduction-coordinate flattening rule, and an iterator
// over the source offsets a given output cell must fold.
//
// Axis order is never normalised to ascending — doing so would silently
// break arg-flattening for every caller supplying an unsorted axis list
// (spec §9). ReductionAxes always preserves the caller's order.
package reduceplan

import (
	"iter"

	"github.com/gomlx/ndreduce/internal/utils"
	"github.com/gomlx/ndreduce/types/dtype"
	"github.com/gomlx/ndreduce/types/tensor"
	"github.com/pkg/errors"
)

// Plan is the normalized description of one reduction: which axes are
// reduced (in the caller's order), which are retained (ascending), the
// resulting output dimensions, and the stride tables needed to walk the
// source buffer and flatten reduction coordinates.
type Plan struct {
	// ReductionAxes are the normalized (non-negative, in-range) source axes
	// to reduce, in the caller's original order. Never sorted.
	ReductionAxes []int

	// Retained are the source axes not in ReductionAxes, ascending.
	Retained []int

	// OutputDims are the output tensor's dimensions: S.shape[k] for k in
	// Retained, in order.
	OutputDims []int

	// ReductionDims are S.shape[r] for r in ReductionAxes, in R's order
	// (not ascending).
	ReductionDims []int

	sourceStrides    []int
	outputStrides    []int
	reductionStrides []int
}

// NewPlan builds the Axis Plan for reducing src's axes (normalized from
// the caller-supplied axes) along axes. It returns *Error with code
// InvalidAxis for any malformed axis list (out of range, duplicate, or
// empty).
func NewPlan(src tensor.Shape, axes []int) (*Plan, error) {
	rank := src.Rank()
	if len(axes) == 0 {
		return nil, newError(InvalidAxis, errors.New("reduction axis list must not be empty"))
	}
	if len(axes) > rank {
		return nil, newError(InvalidAxis, errors.Errorf("got %d reduction axes for a rank-%d source", len(axes), rank))
	}

	normalized := make([]int, len(axes))
	seen := utils.MakeSet[int](len(axes))
	for i, axis := range axes {
		adjusted, err := utils.AdjustAxisToRank(axis, rank)
		if err != nil {
			return nil, newError(InvalidAxis, errors.WithMessagef(err, "invalid axes[%d]=%d for source shape %s", i, axis, src))
		}
		if seen.Has(adjusted) {
			return nil, newError(InvalidAxis, errors.Errorf("duplicate axis %d in reduction axis list %v", adjusted, axes))
		}
		seen.Insert(adjusted)
		normalized[i] = adjusted
	}

	retained := make([]int, 0, rank-len(normalized))
	for ax := 0; ax < rank; ax++ {
		if !seen.Has(ax) {
			retained = append(retained, ax)
		}
	}

	sourceStrides := src.Strides()

	outputDims := make([]int, len(retained))
	for i, ax := range retained {
		outputDims[i] = src.Dimensions[ax]
	}

	reductionDims := make([]int, len(normalized))
	for i, ax := range normalized {
		reductionDims[i] = src.Dimensions[ax]
	}

	return &Plan{
		ReductionAxes:    normalized,
		Retained:         retained,
		OutputDims:       outputDims,
		ReductionDims:    reductionDims,
		sourceStrides:    sourceStrides,
		outputStrides:    utils.RowMajorStrides(outputDims),
		reductionStrides: utils.RowMajorStrides(reductionDims),
	}, nil
}

// OutputShape returns the output Shape for this plan with the given dtype.
func (p *Plan) OutputShape(dt dtype.DType) tensor.Shape {
	return tensor.Make(dt, p.OutputDims...)
}

// OutputVolume returns the number of output cells (1 for an all-dims
// reduction, whose output is rank-0).
func (p *Plan) OutputVolume() int {
	return utils.Product(p.OutputDims)
}

// ReductionVolume returns the number of source elements folded into each
// output cell.
func (p *Plan) ReductionVolume() int {
	return utils.Product(p.ReductionDims)
}

// BaseSourceOffset returns the flat source-buffer offset contributed by the
// retained axes for the output cell at flat output index outIdx (every
// reduction axis still at coordinate 0). Sweep adds the reduction axes'
// contribution on top of this.
func (p *Plan) BaseSourceOffset(outIdx int) int {
	offset := 0
	rem := outIdx
	for ri, ax := range p.Retained {
		stride := p.outputStrides[ri]
		digit := rem / stride
		rem %= stride
		offset += digit * p.sourceStrides[ax]
	}
	return offset
}

// Sweep enumerates, for the output cell whose retained-axis contribution is
// baseOffset (see BaseSourceOffset), every source element that folds into
// it: it yields (flatArgIndex, sourceOffset) pairs in ascending
// flatArgIndex order, with the first reduction axis (ReductionAxes[0])
// slowest-varying -- exactly the order spec §4.A's flattening formula
// assumes, so ties in arg-operators resolve to the smallest flatArgIndex by
// construction (the first candidate considered, never overwritten by a
// later equal one unless the combine function chooses to).
//
// flatArgIndex is simply the position of the coordinate tuple in that
// lexicographic enumeration: because the flattening formula in spec §4.A is
// itself a row-major linearization over ReductionDims (in R's order), the
// n-th coordinate visited here and the formula's flat index for that
// coordinate coincide.
func (p *Plan) Sweep(baseOffset int) iter.Seq2[int, int] {
	total := p.ReductionVolume()
	return func(yield func(int, int) bool) {
		for flat := 0; flat < total; flat++ {
			offset := baseOffset
			rem := flat
			for i, ax := range p.ReductionAxes {
				stride := p.reductionStrides[i]
				digit := rem / stride
				rem %= stride
				offset += digit * p.sourceStrides[ax]
			}
			if !yield(flat, offset) {
				return
			}
		}
	}
}

// OutputIndices enumerates every flat output index in ascending order --
// which, since the output tensor is itself row-major over Retained (in
// source-ascending order), is the same order output cells are visited in.
func (p *Plan) OutputIndices() iter.Seq[int] {
	total := p.OutputVolume()
	return func(yield func(int) bool) {
		for i := 0; i < total; i++ {
			if !yield(i) {
				return
			}
		}
	}
}
