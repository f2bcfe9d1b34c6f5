package kernel

import (
	"math"

	"github.com/gomlx/ndreduce/internal/kinds"
)

// floatOp is one row of the Operator Table (spec §4.B) for the
// floating-point kinds: Max, Min, Sum, Prod, ProdNZ and their
// argmax/argmin counterparts. All nine of these kinds share the same
// "carry a running accumulator, fold one element at a time" shape, so one
// struct serves all of them; only the arg-tracking kinds set Better.
//
// NaN policy (spec §9 Open Question): Init and Combine use Go's native
// float32 ordering, which treats NaN as incomparable -- a NaN element can
// neither become nor displace the running best. Untested territory per
// spec §8's own admission; documented here rather than silently chosen.
type floatOp struct {
	// Init is the accumulator's starting value before any element is
	// folded in.
	Init float32

	// Combine folds one more source element into the accumulator. Used by
	// the value-only kinds (Max, Min, Sum, Prod, ProdNZ).
	Combine func(acc, x float32) float32

	// TracksArg is true for ArgMax, ArgMin, MaxAndArgMax, MinAndArgMin.
	TracksArg bool

	// Better reports whether x should replace the current best (strict
	// inequality per spec §4.B's tie-break rule: equal values never
	// displace an earlier one).
	Better func(x, best float32) bool
}

var floatOps = map[kinds.Kind]floatOp{
	kinds.Max: {
		Init: float32(math.Inf(-1)),
		Combine: func(acc, x float32) float32 {
			if x > acc {
				return x
			}
			return acc
		},
	},
	kinds.Min: {
		Init: float32(math.Inf(1)),
		Combine: func(acc, x float32) float32 {
			if x < acc {
				return x
			}
			return acc
		},
	},
	kinds.Sum: {
		Init:    0,
		Combine: func(acc, x float32) float32 { return acc + x },
	},
	kinds.Prod: {
		Init:    1,
		Combine: func(acc, x float32) float32 { return acc * x },
	},
	kinds.ProdNZ: {
		Init: 1,
		Combine: func(acc, x float32) float32 {
			if x == 0 {
				return acc
			}
			return acc * x
		},
	},
	kinds.ArgMax: {
		Init:      float32(math.Inf(-1)),
		TracksArg: true,
		Better:    func(x, best float32) bool { return x > best },
	},
	kinds.ArgMin: {
		Init:      float32(math.Inf(1)),
		TracksArg: true,
		Better:    func(x, best float32) bool { return x < best },
	},
	kinds.MaxAndArgMax: {
		Init:      float32(math.Inf(-1)),
		TracksArg: true,
		Better:    func(x, best float32) bool { return x > best },
	},
	kinds.MinAndArgMin: {
		Init:      float32(math.Inf(1)),
		TracksArg: true,
		Better:    func(x, best float32) bool { return x < best },
	},
}
