package tensor

import (
	"fmt"
	"sync/atomic"
	"unsafe"

	"github.com/born-ml/dispatch/internal/scalar"
)

// buffer is a reference-counted byte buffer shared between clones.
type buffer struct {
	data []byte
	refs atomic.Int32
}

func newBuffer(size int) *buffer {
	b := &buffer{data: make([]byte, size)}
	b.refs.Store(1)
	return b
}

// RawTensor is a contiguous, row-major tensor whose element type is known
// only at runtime.
type RawTensor struct {
	buf    *buffer
	shape  Shape
	stride []int
	dtype  scalar.ScalarType
}

// NewRaw allocates a zeroed tensor.
func NewRaw(shape Shape, dtype scalar.ScalarType) (*RawTensor, error) {
	if !dtype.Valid() {
		return nil, fmt.Errorf("invalid scalar type %s", dtype)
	}
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	return &RawTensor{
		buf:    newBuffer(shape.NumElements() * dtype.Size()),
		shape:  shape.Clone(),
		stride: shape.Strides(),
		dtype:  dtype,
	}, nil
}

// FromSlice copies data into a new tensor of the scalar type represented by T.
func FromSlice[T scalar.Scalar](shape Shape, data []T) (*RawTensor, error) {
	if n := shape.NumElements(); n != len(data) {
		return nil, fmt.Errorf("shape %v holds %d elements, got %d", shape, n, len(data))
	}
	r, err := NewRaw(shape, scalar.TagOf[T]())
	if err != nil {
		return nil, err
	}
	copy(viewOf[T](r.buf.data), data)
	return r, nil
}

// Shape returns the tensor's shape.
func (r *RawTensor) Shape() Shape { return r.shape }

// Strides returns the tensor's strides in elements.
func (r *RawTensor) Strides() []int { return r.stride }

// ScalarType returns the element type tag.
func (r *RawTensor) ScalarType() scalar.ScalarType { return r.dtype }

// NumElements returns the total number of elements.
func (r *RawTensor) NumElements() int { return r.shape.NumElements() }

// ByteSize returns the size of the element data in bytes.
func (r *RawTensor) ByteSize() int { return len(r.buf.data) }

// Data returns the raw element bytes.
// WARNING: Direct access to underlying memory. Use with caution.
func (r *RawTensor) Data() []byte { return r.buf.data }

// Empty returns a zeroed tensor with the same shape as r and element type dtype.
func (r *RawTensor) Empty(dtype scalar.ScalarType) (*RawTensor, error) {
	return NewRaw(r.shape, dtype)
}

// Clone returns a tensor sharing r's buffer.
func (r *RawTensor) Clone() *RawTensor {
	r.buf.refs.Add(1)
	return &RawTensor{
		buf:    r.buf,
		shape:  r.shape.Clone(),
		stride: append([]int(nil), r.stride...),
		dtype:  r.dtype,
	}
}

// Copy returns a tensor with its own copy of r's data.
func (r *RawTensor) Copy() *RawTensor {
	c, _ := NewRaw(r.shape, r.dtype)
	copy(c.buf.data, r.buf.data)
	return c
}

// Release drops one reference to the buffer.
func (r *RawTensor) Release() {
	if r.buf.refs.Add(-1) == 0 {
		r.buf.data = nil
	}
}

// IsUnique reports whether r is the only reference to its buffer.
func (r *RawTensor) IsUnique() bool {
	return r.buf.refs.Load() == 1
}

// String implements fmt.Stringer.
func (r *RawTensor) String() string {
	return fmt.Sprintf("RawTensor(%s, %v)", r.dtype, []int(r.shape))
}

// View returns r's elements as []T without copying.
// It fails if T does not represent r's scalar type.
func View[T scalar.Scalar](r *RawTensor) ([]T, error) {
	if tag := scalar.TagOf[T](); tag != r.dtype {
		return nil, fmt.Errorf("tensor scalar type is %s, not %s", r.dtype, tag)
	}
	return viewOf[T](r.buf.data), nil
}

// MustView is like View but panics on mismatch.
func MustView[T scalar.Scalar](r *RawTensor) []T {
	v, err := View[T](r)
	if err != nil {
		panic(err)
	}
	return v
}

func viewOf[T scalar.Scalar](data []byte) []T {
	var zero T
	n := len(data) / int(unsafe.Sizeof(zero))
	if n == 0 {
		return nil
	}
	//nolint:gosec // unsafe.Slice for zero-copy performance, length derived from len(data)
	return unsafe.Slice((*T)(unsafe.Pointer(&data[0])), n)
}

// SameShape returns an error unless a and b have equal shapes.
func SameShape(a, b *RawTensor) error {
	if !a.shape.Equal(b.shape) {
		return fmt.Errorf("shape mismatch: %v vs %v", a.shape, b.shape)
	}
	return nil
}
