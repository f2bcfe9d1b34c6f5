package reduceplan

import (
	"github.com/gomlx/ndreduce/internal/kinds"
	"github.com/gomlx/ndreduce/types/dtype"
	"github.com/gomlx/ndreduce/types/tensor"
	"github.com/pkg/errors"
)

// ValueDTypeRule returns the expected dtype of the value destination for
// the given (kind, source dtype) pair, and whether the pair is supported at
// all. Per spec §4.B: every kind's value output shares the input's dtype,
// except ArgMax/ArgMin, which have no value destination at all.
func ValueDTypeRule(k kinds.Kind, srcDType dtype.DType) (dtype.DType, bool) {
	if !k.HasValueOutput() {
		return dtype.Invalid, true
	}
	if k.IsBitwise() {
		if !srcDType.IsInteger() {
			return dtype.Invalid, false
		}
	} else if !srcDType.IsFloat() {
		return dtype.Invalid, false
	}
	return srcDType, true
}

// IndexDTypeRule returns the expected dtype of the index destination
// (always Size, per spec §3 invariant 2) for arg-tracking kinds.
func IndexDTypeRule() dtype.DType {
	return dtype.Size
}

// Build validates a reduction request end to end and returns its Axis Plan.
// It is the single entry point combining components A (Axis Plan) and F
// (Validation): axis normalization happens first (so shape comparisons
// below operate on a well-formed plan), then destination rank, shape and
// dtype are checked against what the plan and the operator's dtype rule
// require.
//
// dstValue may be nil only for ArgMax/ArgMin (which have no value
// destination); dstIndex may be nil only for kinds that don't track an arg
// index. Violations are returned as *Error with the taxonomy from spec §7.
func Build(k kinds.Kind, src tensor.Shape, axes []int, dstValue, dstIndex *tensor.Shape) (*Plan, error) {
	if src.DType == dtype.Invalid {
		return nil, newError(InvalidAxis, errors.New("source tensor is required"))
	}
	if err := src.ValidateRank(); err != nil {
		return nil, newError(InvalidAxis, err)
	}

	plan, err := NewPlan(src, axes)
	if err != nil {
		return nil, err
	}

	wantValueDType, supported := ValueDTypeRule(k, src.DType)
	if !supported {
		return nil, newError(Unsupported, errors.Errorf("operator %s does not support dtype %s", k, src.DType))
	}

	if k.HasValueOutput() {
		if dstValue == nil {
			return nil, newError(ShapeMismatch, errors.Errorf("operator %s requires a value destination", k))
		}
		if err := checkDestination("value", plan, *dstValue, wantValueDType); err != nil {
			return nil, err
		}
	} else if dstValue != nil {
		return nil, newError(ShapeMismatch, errors.Errorf("operator %s has no value destination, but one was given", k))
	}

	if k.TracksArg() {
		if dstIndex == nil {
			return nil, newError(ShapeMismatch, errors.Errorf("operator %s requires an index destination", k))
		}
		if err := checkDestination("index", plan, *dstIndex, IndexDTypeRule()); err != nil {
			return nil, err
		}
	} else if dstIndex != nil {
		return nil, newError(ShapeMismatch, errors.Errorf("operator %s has no index destination, but one was given", k))
	}

	return plan, nil
}

func checkDestination(name string, plan *Plan, dst tensor.Shape, wantDType dtype.DType) error {
	if dst.DType != wantDType {
		return newError(DTypeMismatch, errors.Errorf("%s destination has dtype %s, want %s", name, dst.DType, wantDType))
	}
	if dst.Rank() != len(plan.OutputDims) {
		return newError(ShapeMismatch, errors.Errorf("%s destination has rank %d, want %d", name, dst.Rank(), len(plan.OutputDims)))
	}
	for i, want := range plan.OutputDims {
		if dst.Dimensions[i] != want {
			return newError(ShapeMismatch, errors.Errorf("%s destination shape %v does not match expected output shape %v", name, dst.Dimensions, plan.OutputDims))
		}
	}
	return nil
}
