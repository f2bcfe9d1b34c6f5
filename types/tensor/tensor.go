package tensor

import (
	"encoding/binary"
	"math"

	"github.com/gomlx/ndreduce/types/dtype"
	"github.com/pkg/errors"
)

// Tensor is a host-memory, row-major buffer of one of the dtype.DType
// kinds. It implements the §6 container interface: Empty, Write, Read,
// Memset, Clear. The engine (kernel.Reduce) only ever reads from a source
// Tensor and writes to destination Tensors; it never allocates or frees one
// itself — lifecycles are caller-owned, per spec §3.
type Tensor struct {
	shape Shape
	data  []byte
}

// Empty allocates an uninitialized Tensor of the given shape. The backing
// buffer is zeroed by Go's allocator, but callers should not rely on that —
// use Memset or Write to establish a known state.
func Empty(shape Shape) (*Tensor, error) {
	if !shape.Ok() {
		return nil, errors.Errorf("cannot allocate tensor with invalid shape %s", shape)
	}
	return &Tensor{
		shape: shape,
		data:  make([]byte, shape.Size()*shape.DType.ByteWidth()),
	}, nil
}

// Shape returns the tensor's shape.
func (t *Tensor) Shape() Shape {
	return t.shape
}

// Bytes exposes the raw backing buffer without copying; callers needing
// their own copy of the bytes should prefer Read.
func (t *Tensor) Bytes() []byte {
	return t.data
}

// Write bulk-copies hostBytes into the tensor's buffer. len(hostBytes) must
// equal the tensor's byte size.
func (t *Tensor) Write(hostBytes []byte) error {
	if len(hostBytes) != len(t.data) {
		return errors.Errorf("Write: host buffer has %d bytes, tensor expects %d", len(hostBytes), len(t.data))
	}
	copy(t.data, hostBytes)
	return nil
}

// Read bulk-copies the tensor's buffer into a freshly allocated byte slice.
func (t *Tensor) Read() []byte {
	out := make([]byte, len(t.data))
	copy(out, t.data)
	return out
}

// Memset fills every byte of the buffer with the given value. Used by
// callers to poison destinations before a reduction, so a buggy
// implementation that leaves a cell unwritten is caught by comparison
// against the poison value rather than silently passing (spec §9's
// "memset(-1) -> qNaN" canary).
func (t *Tensor) Memset(b byte) {
	for i := range t.data {
		t.data[i] = b
	}
}

// Clear releases the tensor's backing buffer.
func (t *Tensor) Clear() {
	t.data = nil
}

// elemWidth is a shorthand for t.shape.DType.ByteWidth().
func (t *Tensor) elemWidth() int {
	return t.shape.DType.ByteWidth()
}

// Float32At returns the Float32 element at the given flat index.
func (t *Tensor) Float32At(i int) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(t.data[i*4 : i*4+4]))
}

// SetFloat32At writes the Float32 element at the given flat index.
func (t *Tensor) SetFloat32At(i int, v float32) {
	binary.LittleEndian.PutUint32(t.data[i*4:i*4+4], math.Float32bits(v))
}

// Float16At returns the raw bit pattern of the Float16 element at the given
// flat index; convert with dtype.Float16ToFloat32.
func (t *Tensor) Float16At(i int) uint16 {
	return binary.LittleEndian.Uint16(t.data[i*2 : i*2+2])
}

// SetFloat16At writes the raw bit pattern of the Float16 element at the
// given flat index; convert with dtype.Float32ToFloat16.
func (t *Tensor) SetFloat16At(i int, bits uint16) {
	binary.LittleEndian.PutUint16(t.data[i*2:i*2+2], bits)
}

// Uint32At returns the Uint32 element at the given flat index.
func (t *Tensor) Uint32At(i int) uint32 {
	return binary.LittleEndian.Uint32(t.data[i*4 : i*4+4])
}

// SetUint32At writes the Uint32 element at the given flat index.
func (t *Tensor) SetUint32At(i int, v uint32) {
	binary.LittleEndian.PutUint32(t.data[i*4:i*4+4], v)
}

// SizeAt returns the Size element at the given flat index.
func (t *Tensor) SizeAt(i int) uint64 {
	return binary.LittleEndian.Uint64(t.data[i*8 : i*8+8])
}

// SetSizeAt writes the Size element at the given flat index.
func (t *Tensor) SetSizeAt(i int, v uint64) {
	binary.LittleEndian.PutUint64(t.data[i*8:i*8+8], v)
}

// WriteFloat32s is a typed convenience wrapper over Write for Float32
// tensors, used pervasively by tests to load generated data.
func (t *Tensor) WriteFloat32s(values []float32) error {
	if t.shape.DType != dtype.Float32 {
		return errors.Errorf("WriteFloat32s: tensor dtype is %s, not Float32", t.shape.DType)
	}
	if len(values) != t.shape.Size() {
		return errors.Errorf("WriteFloat32s: got %d values, tensor has %d elements", len(values), t.shape.Size())
	}
	for i, v := range values {
		t.SetFloat32At(i, v)
	}
	return nil
}

// WriteUint32s is a typed convenience wrapper over Write for Uint32
// tensors.
func (t *Tensor) WriteUint32s(values []uint32) error {
	if t.shape.DType != dtype.Uint32 {
		return errors.Errorf("WriteUint32s: tensor dtype is %s, not Uint32", t.shape.DType)
	}
	if len(values) != t.shape.Size() {
		return errors.Errorf("WriteUint32s: got %d values, tensor has %d elements", len(values), t.shape.Size())
	}
	for i, v := range values {
		t.SetUint32At(i, v)
	}
	return nil
}

// ReadFloat32s is a typed convenience wrapper over Read for Float32
// tensors.
func (t *Tensor) ReadFloat32s() []float32 {
	out := make([]float32, t.shape.Size())
	for i := range out {
		out[i] = t.Float32At(i)
	}
	return out
}

// ReadUint32s is a typed convenience wrapper over Read for Uint32 tensors.
func (t *Tensor) ReadUint32s() []uint32 {
	out := make([]uint32, t.shape.Size())
	for i := range out {
		out[i] = t.Uint32At(i)
	}
	return out
}

// ReadSizes is a typed convenience wrapper over Read for Size tensors.
func (t *Tensor) ReadSizes() []uint64 {
	out := make([]uint64, t.shape.Size())
	for i := range out {
		out[i] = t.SizeAt(i)
	}
	return out
}
