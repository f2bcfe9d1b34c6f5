// Package kernel implements the Reducer (spec §4.D): it composes the Axis
// Plan and Iterator from package reduceplan with the Operator Table (this
// package's floatOp/bitwiseOp) to fold a source Tensor's elements into a
// destination Tensor (and, for arg-tracking kinds, a flattened index
// Tensor).
package kernel

import (
	"runtime"

	"github.com/gomlx/ndreduce/internal/kinds"
	"github.com/gomlx/ndreduce/reduceplan"
	"github.com/gomlx/ndreduce/types/dtype"
	"github.com/gomlx/ndreduce/types/tensor"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// parallelThreshold is the output volume above which Reduce tiles the
// output-coordinate space across goroutines (spec §5). Below it, the
// goroutine and errgroup bookkeeping would cost more than it saves.
const parallelThreshold = 4096

// Reduce is the single composition point for components A (Axis Plan), B
// (Operator Table), C (Iterator) and D (Reducer fold) described in spec
// §4.D: validate, plan, iterate, reduce, write. It reads only from src and
// writes only to dstValue/dstIndex -- their contents are undefined if this
// returns a non-nil error (spec §4.D "Failure semantics").
func Reduce(k kinds.Kind, src *tensor.Tensor, axes []int, dstValue, dstIndex *tensor.Tensor) error {
	var valueShape, indexShape *tensor.Shape
	if dstValue != nil {
		s := dstValue.Shape()
		valueShape = &s
	}
	if dstIndex != nil {
		s := dstIndex.Shape()
		indexShape = &s
	}

	plan, err := reduceplan.Build(k, src.Shape(), axes, valueShape, indexShape)
	if err != nil {
		return err
	}

	switch src.Shape().DType {
	case dtype.Float32, dtype.Float16:
		return reduceFloatKind(k, plan, src, dstValue, dstIndex)
	case dtype.Uint32:
		return reduceBitwiseKind(k, plan, src, dstValue)
	case dtype.Size:
		return reduceBitwiseSizeKind(k, plan, src, dstValue)
	default:
		return newUnsupported(k, src.Shape().DType)
	}
}

func floatAccessors(t *tensor.Tensor) (read func(int) float32, write func(int, float32)) {
	switch t.Shape().DType {
	case dtype.Float32:
		return t.Float32At, t.SetFloat32At
	case dtype.Float16:
		return func(i int) float32 { return dtype.Float16ToFloat32(t.Float16At(i)) },
			func(i int, v float32) { t.SetFloat16At(i, dtype.Float32ToFloat16(v)) }
	default:
		return nil, nil
	}
}

func reduceFloatKind(k kinds.Kind, plan *reduceplan.Plan, src, dstValue, dstIndex *tensor.Tensor) error {
	op, ok := floatOps[k]
	if !ok {
		return newUnsupported(k, src.Shape().DType)
	}
	read, _ := floatAccessors(src)
	if read == nil {
		return newUnsupported(k, src.Shape().DType)
	}

	var writeValue func(int, float32)
	if dstValue != nil {
		_, writeValue = floatAccessors(dstValue)
	}
	var writeIndex func(int, uint64)
	if dstIndex != nil {
		writeIndex = dstIndex.SetSizeAt
	}

	return runTiled(plan.OutputVolume(), func(lo, hi int) error {
		for oi := lo; oi < hi; oi++ {
			base := plan.BaseSourceOffset(oi)
			acc := op.Init
			var argIdx uint64
			if op.TracksArg {
				for flat, offset := range plan.Sweep(base) {
					x := read(offset)
					if op.Better(x, acc) {
						acc = x
						argIdx = uint64(flat)
					}
				}
			} else {
				for _, offset := range plan.Sweep(base) {
					acc = op.Combine(acc, read(offset))
				}
			}
			if writeValue != nil {
				writeValue(oi, acc)
			}
			if writeIndex != nil {
				writeIndex(oi, argIdx)
			}
		}
		return nil
	})
}

func reduceBitwiseKind(k kinds.Kind, plan *reduceplan.Plan, src, dstValue *tensor.Tensor) error {
	op, ok := bitwiseOpFor[uint32](k)
	if !ok {
		return newUnsupported(k, src.Shape().DType)
	}
	return runTiled(plan.OutputVolume(), func(lo, hi int) error {
		for oi := lo; oi < hi; oi++ {
			base := plan.BaseSourceOffset(oi)
			acc := op.Init
			for _, offset := range plan.Sweep(base) {
				acc = op.Combine(acc, src.Uint32At(offset))
			}
			dstValue.SetUint32At(oi, acc)
		}
		return nil
	})
}

func reduceBitwiseSizeKind(k kinds.Kind, plan *reduceplan.Plan, src, dstValue *tensor.Tensor) error {
	op, ok := bitwiseOpFor[uint64](k)
	if !ok {
		return newUnsupported(k, src.Shape().DType)
	}
	return runTiled(plan.OutputVolume(), func(lo, hi int) error {
		for oi := lo; oi < hi; oi++ {
			base := plan.BaseSourceOffset(oi)
			acc := op.Init
			for _, offset := range plan.Sweep(base) {
				acc = op.Combine(acc, src.SizeAt(offset))
			}
			dstValue.SetSizeAt(oi, acc)
		}
		return nil
	})
}

func newUnsupported(k kinds.Kind, dt dtype.DType) error {
	return reduceplan.NewError(reduceplan.Unsupported, errors.Errorf("operator %s does not support dtype %s", k, dt))
}

// runTiled splits [0, n) into contiguous, disjoint ranges and runs work on
// each, fanning out across goroutines when n is large enough to be worth
// it (spec §5: "each output cell is the exclusive write-target of exactly
// one worker"). Disjoint ranges make that invariant automatic -- no
// destination-side locking is needed.
func runTiled(n int, work func(lo, hi int) error) error {
	if n <= parallelThreshold {
		return work(0, n)
	}

	workers := runtime.GOMAXPROCS(0)
	if workers > n {
		workers = n
	}
	chunk := (n + workers - 1) / workers

	var g errgroup.Group
	for lo := 0; lo < n; lo += chunk {
		hi := min(lo+chunk, n)
		g.Go(func() error {
			return work(lo, hi)
		})
	}
	return g.Wait()
}
