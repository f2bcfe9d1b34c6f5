package reduceplan

import (
	"testing"

	"github.com/gomlx/ndreduce/internal/kinds"
	"github.com/gomlx/ndreduce/types/dtype"
	"github.com/gomlx/ndreduce/types/tensor"
	"github.com/stretchr/testify/require"
)

func TestNewPlanBasic(t *testing.T) {
	src := tensor.Make(dtype.Float32, 32, 50, 79)
	plan, err := NewPlan(src, []int{0, 2})
	require.NoError(t, err)
	require.Equal(t, []int{0, 2}, plan.ReductionAxes)
	require.Equal(t, []int{1}, plan.Retained)
	require.Equal(t, []int{50}, plan.OutputDims)
	require.Equal(t, []int{32, 79}, plan.ReductionDims)
	require.Equal(t, 50, plan.OutputVolume())
	require.Equal(t, 32*79, plan.ReductionVolume())
}

func TestNewPlanPreservesCallerAxisOrder(t *testing.T) {
	src := tensor.Make(dtype.Float32, 32, 50, 79)
	plan, err := NewPlan(src, []int{2, 0})
	require.NoError(t, err)
	require.Equal(t, []int{2, 0}, plan.ReductionAxes, "axis order must never be sorted")
	require.Equal(t, []int{79, 32}, plan.ReductionDims)
}

func TestNewPlanAllDimsReduced(t *testing.T) {
	src := tensor.Make(dtype.Float32, 32, 50, 79)
	plan, err := NewPlan(src, []int{0, 1, 2})
	require.NoError(t, err)
	require.Empty(t, plan.Retained)
	require.Empty(t, plan.OutputDims)
	require.Equal(t, 1, plan.OutputVolume())
}

func TestNewPlanErrors(t *testing.T) {
	src := tensor.Make(dtype.Float32, 4, 5)
	_, err := NewPlan(src, nil)
	require.Error(t, err)
	require.Equal(t, InvalidAxis, err.(*Error).Code)

	_, err = NewPlan(src, []int{2})
	require.Error(t, err)
	require.Equal(t, InvalidAxis, err.(*Error).Code)

	_, err = NewPlan(src, []int{0, 0})
	require.Error(t, err)
	require.Equal(t, InvalidAxis, err.(*Error).Code)

	_, err = NewPlan(src, []int{0, 1, 0})
	require.Error(t, err)
}

func TestNewPlanNegativeAxis(t *testing.T) {
	src := tensor.Make(dtype.Float32, 4, 5, 6)
	plan, err := NewPlan(src, []int{-1})
	require.NoError(t, err)
	require.Equal(t, []int{2}, plan.ReductionAxes)
}

func TestSweepFlattening(t *testing.T) {
	// Matches the "idxtranspose" style scenario: reducing {0,2} of a
	// [2,3,4] tensor, checking the flat index enumerates in row-major
	// order over the reduction dims (2,4), r0=axis0 slowest.
	src := tensor.Make(dtype.Float32, 2, 3, 4)
	plan, err := NewPlan(src, []int{0, 2})
	require.NoError(t, err)

	var flats []int
	for flat := range plan.Sweep(plan.BaseSourceOffset(0)) {
		flats = append(flats, flat)
	}
	require.Len(t, flats, 2*4)
	for i, f := range flats {
		require.Equal(t, i, f)
	}
}

func TestBaseSourceOffsetMatchesRowMajor(t *testing.T) {
	src := tensor.Make(dtype.Float32, 2, 3, 4)
	plan, err := NewPlan(src, []int{0, 2})
	require.NoError(t, err)
	// Retained axis is 1 (size 3); output flat index 1 means j=1.
	offset := plan.BaseSourceOffset(1)
	// Row-major offset contribution of j=1 alone (i=0,k=0) is 1*4=4.
	require.Equal(t, 4, offset)
}

func TestOutputIndices(t *testing.T) {
	src := tensor.Make(dtype.Float32, 2, 3)
	plan, err := NewPlan(src, []int{0})
	require.NoError(t, err)
	var got []int
	for i := range plan.OutputIndices() {
		got = append(got, i)
	}
	require.Equal(t, []int{0, 1, 2}, got)
}

func TestBuildValidatesDestinations(t *testing.T) {
	src := tensor.Make(dtype.Float32, 32, 50, 79)
	value := tensor.Make(dtype.Float32, 50)
	index := tensor.Make(dtype.Size, 50)

	_, err := Build(kinds.MaxAndArgMax, src, []int{0, 2}, &value, &index)
	require.NoError(t, err)

	_, err = Build(kinds.MaxAndArgMax, src, []int{0, 2}, &value, nil)
	require.Error(t, err)

	badShape := tensor.Make(dtype.Float32, 51)
	_, err = Build(kinds.Sum, src, []int{0, 2}, &badShape, nil)
	require.Error(t, err)
	require.Equal(t, ShapeMismatch, err.(*Error).Code)

	badDType := tensor.Make(dtype.Uint32, 50)
	_, err = Build(kinds.Sum, src, []int{0, 2}, &badDType, nil)
	require.Error(t, err)
	require.Equal(t, DTypeMismatch, err.(*Error).Code)

	_, err = Build(kinds.And, src, []int{0, 2}, &value, nil)
	require.Error(t, err)
	require.Equal(t, Unsupported, err.(*Error).Code)
}
