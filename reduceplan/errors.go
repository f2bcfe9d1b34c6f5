package reduceplan

import "fmt"

// Code is the closed error taxonomy from spec §7. Unlike kinds.Kind and
// dtype.DType, this enum is small and never round-trips through a name
// string at runtime, so it gets a hand-written String() instead of an
// enumer-generated one.
type Code int

const (
	// OK is never actually returned as an error (a nil error is OK) but is
	// kept here to give the zero-valued Code a name and to spell out the
	// full taxonomy from spec §7 in one place.
	OK Code = iota
	InvalidAxis
	ShapeMismatch
	DTypeMismatch
	Unsupported
	Resource
)

func (c Code) String() string {
	switch c {
	case OK:
		return "OK"
	case InvalidAxis:
		return "INVALID_AXIS"
	case ShapeMismatch:
		return "SHAPE_MISMATCH"
	case DTypeMismatch:
		return "DTYPE_MISMATCH"
	case Unsupported:
		return "UNSUPPORTED"
	case Resource:
		return "RESOURCE"
	default:
		return fmt.Sprintf("Code(%d)", int(c))
	}
}

// Error is the error type returned by Build and NewPlan: it carries a
// stable Code a caller can switch on, plus the underlying pkg/errors chain
// for humans.
type Error struct {
	Code Code
	err  error
}

func newError(code Code, err error) *Error {
	return &Error{Code: code, err: err}
}

// NewError builds an *Error with the given code, wrapping err. Exported so
// packages downstream of reduceplan (notably kernel, which detects
// dtype/operator combinations reduceplan's own Build never sees,
// such as a destination's dtype matching but the source dtype itself being
// unsupported) can report the same taxonomy instead of inventing their own.
func NewError(code Code, err error) *Error {
	return newError(code, err)
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.err)
}

// Unwrap allows errors.Is/errors.As (standard library or pkg/errors) to see
// through to the underlying error.
func (e *Error) Unwrap() error {
	return e.err
}
