package tensor

import (
	"fmt"
	"reflect"

	"github.com/gomlx/ndreduce/types/dtype"
)

// FromValue infers a Tensor's shape from a (possibly nested) Go slice and
// populates it with the slice's values. Multidimensional slices must be
// dense (every sub-slice at a given depth must have the same length).
//
// This reuses the teacher library's recursive-descent-over-slices algorithm
// for shape inference (github.com/gomlx/stablehlo/types/shapes.FromValue),
// retargeted here to also populate a concrete backing buffer instead of
// only inferring a shape.
func FromValue(v any) (*Tensor, error) {
	var dims []int
	if err := shapeForValueRecursive(&dims, reflect.ValueOf(v), reflect.TypeOf(v)); err != nil {
		return nil, err
	}
	dt, err := goTypeToDType(leafType(reflect.TypeOf(v)))
	if err != nil {
		return nil, err
	}
	t, err := Empty(Make(dt, dims...))
	if err != nil {
		return nil, err
	}
	i := 0
	if err := writeValueRecursive(t, &i, reflect.ValueOf(v)); err != nil {
		return nil, err
	}
	return t, nil
}

func leafType(t reflect.Type) reflect.Type {
	for t.Kind() == reflect.Slice {
		t = t.Elem()
	}
	return t
}

func goTypeToDType(t reflect.Type) (dtype.DType, error) {
	switch t.Kind() {
	case reflect.Float32:
		return dtype.Float32, nil
	case reflect.Uint32:
		return dtype.Uint32, nil
	case reflect.Uint64, reflect.Uint:
		return dtype.Size, nil
	default:
		return dtype.Invalid, fmt.Errorf("cannot convert Go type %s to a Tensor dtype", t)
	}
}

// shapeForValueRecursive mirrors the teacher's shapeForValueRecursive: it
// recurses into nested slices, checking every sub-slice at a given depth
// has the same length, and accumulates the inferred dimensions.
func shapeForValueRecursive(dims *[]int, v reflect.Value, t reflect.Type) error {
	if t.Kind() != reflect.Slice {
		return nil
	}
	elem := t.Elem()
	*dims = append(*dims, v.Len())
	if v.Len() == 0 {
		return fmt.Errorf("value with empty slice not valid for Tensor conversion: %s -- rank-0 tensors can't be represented by a Go slice, use Empty instead", t)
	}
	prefix := append([]int(nil), *dims...)
	if err := shapeForValueRecursive(dims, v.Index(0), elem); err != nil {
		return err
	}
	for i := 1; i < v.Len(); i++ {
		testDims := append([]int(nil), prefix...)
		if err := shapeForValueRecursive(&testDims, v.Index(i), elem); err != nil {
			return err
		}
		if !equalInts(*dims, testDims) {
			return fmt.Errorf("sub-slices have irregular shapes, found dimensions %v and %v", *dims, testDims)
		}
	}
	return nil
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// writeValueRecursive walks v in the same order as shapeForValueRecursive
// and writes each leaf scalar into t's flat buffer at *i, advancing it.
func writeValueRecursive(t *Tensor, i *int, v reflect.Value) error {
	if v.Kind() == reflect.Slice {
		for j := 0; j < v.Len(); j++ {
			if err := writeValueRecursive(t, i, v.Index(j)); err != nil {
				return err
			}
		}
		return nil
	}
	switch t.Shape().DType {
	case dtype.Float32:
		t.SetFloat32At(*i, float32(v.Float()))
	case dtype.Uint32:
		t.SetUint32At(*i, uint32(v.Uint()))
	case dtype.Size:
		t.SetSizeAt(*i, v.Uint())
	default:
		return fmt.Errorf("unsupported dtype %s for FromValue", t.Shape().DType)
	}
	*i++
	return nil
}
