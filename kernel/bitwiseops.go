package kernel

import "github.com/gomlx/ndreduce/internal/kinds"

// unsignedWord is the constraint satisfied by the two integer dtypes this
// engine reduces over: Uint32 and Size (modeled as uint64). Parameterizing
// bitwiseOp over this, rather than writing the Uint32 and Size paths twice,
// mirrors the teacher's own use of generics for small, width-independent
// helpers (e.g. internal/utils.Set[T]).
type unsignedWord interface {
	~uint32 | ~uint64
}

// bitwiseOp is the Operator Table row (spec §4.B) for the bitwise/logical
// kinds: And, Or, Xor, Any, All. These never track an arg index.
type bitwiseOp[T unsignedWord] struct {
	Init    T
	Combine func(acc, x T) T
}

func bitwiseOpFor[T unsignedWord](k kinds.Kind) (bitwiseOp[T], bool) {
	switch k {
	case kinds.And:
		return bitwiseOp[T]{Init: ^T(0), Combine: func(acc, x T) T { return acc & x }}, true
	case kinds.Or:
		return bitwiseOp[T]{Init: 0, Combine: func(acc, x T) T { return acc | x }}, true
	case kinds.Xor:
		return bitwiseOp[T]{Init: 0, Combine: func(acc, x T) T { return acc ^ x }}, true
	case kinds.Any:
		return bitwiseOp[T]{Init: 0, Combine: func(acc, x T) T {
			if acc != 0 || x != 0 {
				return 1
			}
			return 0
		}}, true
	case kinds.All:
		return bitwiseOp[T]{Init: 1, Combine: func(acc, x T) T {
			if acc != 0 && x != 0 {
				return 1
			}
			return 0
		}}, true
	default:
		return bitwiseOp[T]{}, false
	}
}
