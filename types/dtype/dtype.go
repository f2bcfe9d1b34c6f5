// Package dtype defines the closed element-type enumeration consumed by
// types/tensor and kernel, per spec §3/§6: a 32-bit float kind, a 32-bit
// unsigned-integer kind, and a platform-width unsigned-size kind.
package dtype

import "github.com/x448/float16"

//go:generate go tool enumer -type=DType -output=gen_dtype_enumer.go dtype.go

// DType is the element type of a Tensor.
type DType int

const (
	Invalid DType = iota

	// Float32 is a 32-bit IEEE float.
	Float32

	// Uint32 is a 32-bit unsigned integer.
	Uint32

	// Size is the platform unsigned index width. Modeled as 64 bits so
	// flattened arg-indices never truncate, independent of GOARCH.
	Size

	// Float16 is a 16-bit IEEE float, accumulated in Float32 precision and
	// rounded back down on write (see kernel.Reduce). Not required by the
	// spec, but an "additional type" the spec explicitly allows.
	Float16
)

// ByteWidth returns the size in bytes of one element of this dtype.
func (d DType) ByteWidth() int {
	switch d {
	case Float32, Uint32:
		return 4
	case Size:
		return 8
	case Float16:
		return 2
	default:
		return 0
	}
}

// IsInteger reports whether the dtype is one of the integer/bitwise-capable
// kinds (Uint32 or Size).
func (d DType) IsInteger() bool {
	return d == Uint32 || d == Size
}

// IsFloat reports whether the dtype is one of the floating-point kinds.
func (d DType) IsFloat() bool {
	return d == Float32 || d == Float16
}

// Float16ToFloat32 and Float32ToFloat16 convert between the wire
// representation used by Float16 tensors (a raw uint16 bit pattern) and the
// float32 precision the kernel accumulates in.
func Float16ToFloat32(bits uint16) float32 {
	return float16.Float16(bits).Float32()
}

func Float32ToFloat16(v float32) uint16 {
	return uint16(float16.Fromfloat32(v))
}
