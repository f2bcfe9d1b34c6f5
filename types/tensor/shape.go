// Package tensor implements the concrete tensor container consumed by the
// reduction engine: the §6 interface (Empty/Write/Read/Memset/Clear) made
// real enough to allocate, populate and inspect, but never backed by a
// device — device/context management is explicitly out of scope (spec §1).
package tensor

import (
	"fmt"
	"slices"

	"github.com/gomlx/ndreduce/internal/utils"
	"github.com/gomlx/ndreduce/types/dtype"
	"github.com/pkg/errors"
)

// MaxRank is the fixed rank cap the engine supports. The spec requires at
// least 8; this implementation supports exactly that floor, matching the
// rank exercised by every "veryhighrank" scenario in the reference tests.
const MaxRank = 8

// Shape describes the element type and dimensions of a Tensor. A rank-0
// Shape (empty Dimensions) holds a single scalar.
type Shape struct {
	DType      dtype.DType
	Dimensions []int
}

// Make creates a Shape from the given dtype and dimensions.
func Make(dt dtype.DType, dimensions ...int) Shape {
	return Shape{DType: dt, Dimensions: slices.Clone(dimensions)}
}

// Rank returns the number of axes of the shape.
func (s Shape) Rank() int {
	return len(s.Dimensions)
}

// Size returns the total number of elements (1 for a rank-0 shape).
func (s Shape) Size() int {
	return utils.Product(s.Dimensions)
}

// IsScalar reports whether the shape is rank-0.
func (s Shape) IsScalar() bool {
	return s.Rank() == 0
}

// Ok reports whether the shape is well-formed: a valid dtype, rank within
// [0, MaxRank], and every dimension (when rank ≥ 1) at least 1.
func (s Shape) Ok() bool {
	if s.DType == dtype.Invalid {
		return false
	}
	if s.Rank() < 0 || s.Rank() > MaxRank {
		return false
	}
	for _, d := range s.Dimensions {
		if d < 1 {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of the shape.
func (s Shape) Clone() Shape {
	return Shape{DType: s.DType, Dimensions: slices.Clone(s.Dimensions)}
}

// Equal reports whether s and other have the same dtype and dimensions.
func (s Shape) Equal(other Shape) bool {
	return s.DType == other.DType && slices.Equal(s.Dimensions, other.Dimensions)
}

// Strides returns the row-major ("C-order") strides for the shape.
func (s Shape) Strides() []int {
	return utils.RowMajorStrides(s.Dimensions)
}

// String implements fmt.Stringer.
func (s Shape) String() string {
	return fmt.Sprintf("%s%v", s.DType, s.Dimensions)
}

// ValidateRank returns an error if the shape's rank exceeds MaxRank.
func (s Shape) ValidateRank() error {
	if s.Rank() > MaxRank {
		return errors.Errorf("rank %d exceeds the maximum supported rank %d", s.Rank(), MaxRank)
	}
	return nil
}
