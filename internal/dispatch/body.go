package dispatch

import (
	"fmt"
	"unsafe"

	"github.com/born-ml/dispatch/internal/scalar"
)

// Binding is what a body instantiation receives: the dispatched scalar type
// and its representation. T is the representation type.
type Binding[T scalar.Scalar] struct {
	Tag  scalar.ScalarType
	Repr scalar.Representation
}

// View reinterprets data as a slice of T without copying. Trailing bytes
// that do not fill a whole element are ignored.
func (b Binding[T]) View(data []byte) []T {
	return view[T](data)
}

// Make allocates n zeroed elements of T.
func (b Binding[T]) Make(n int) []T {
	return make([]T, n)
}

func view[T scalar.Scalar](data []byte) []T {
	var zero T
	n := len(data) / int(unsafe.Sizeof(zero))
	if n == 0 {
		return nil
	}
	//nolint:gosec // unsafe.Slice for zero-copy views, length derived from len(data)
	return unsafe.Slice((*T)(unsafe.Pointer(&data[0])), n)
}

// Instantiation is one specialization of a generic body.
type Instantiation[A, R any] struct {
	tag  scalar.ScalarType
	call func(scalar.Representation, A) R
}

// Tag returns the scalar type the instantiation handles.
func (in Instantiation[A, R]) Tag() scalar.ScalarType { return in.tag }

// Case wraps fn, a generic body instantiated at T, for the scalar type whose
// representation is T:
//
//	func sum[T scalar.Real](b dispatch.Binding[T], data []byte) float64 { ... }
//
//	var sumBody = dispatch.NewBody(
//	    dispatch.Case(sum[float32]),
//	    dispatch.Case(sum[float64]),
//	)
func Case[T scalar.Scalar, A, R any](fn func(Binding[T], A) R) Instantiation[A, R] {
	tag := scalar.TagOf[T]()
	return Instantiation[A, R]{
		tag: tag,
		call: func(rep scalar.Representation, arg A) R {
			return fn(Binding[T]{Tag: tag, Repr: rep}, arg)
		},
	}
}

// Body is a generic operation body: a closed table of its instantiations
// indexed by scalar type ordinal. A is the argument type, R the result type.
type Body[A, R any] struct {
	cases [scalar.NumTypes]func(scalar.Representation, A) R
	set   Set
}

// NewBody builds a body from instantiations. It panics if two
// instantiations handle the same scalar type; bodies are meant to be
// declared once at package level.
func NewBody[A, R any](cases ...Instantiation[A, R]) *Body[A, R] {
	b := &Body[A, R]{}
	for _, c := range cases {
		if b.set.Has(c.tag) {
			panic(fmt.Sprintf("dispatch: body has two instantiations for %s", c.tag))
		}
		b.cases[c.tag] = c.call
		b.set = b.set.With(c.tag)
	}
	return b
}

// Has reports whether the body has an instantiation for t.
func (b *Body[A, R]) Has(t scalar.ScalarType) bool {
	return b.set.Has(t)
}

// Set returns the instantiated scalar types.
func (b *Body[A, R]) Set() Set { return b.set }

// Covers checks that the body has an instantiation for every tag bound by p.
func (b *Body[A, R]) Covers(p *Profile) error {
	for _, t := range p.Tags() {
		if !b.set.Has(t) {
			return &ProfileError{Profile: p.name, Tag: t, Err: ErrMissingInstantiation}
		}
	}
	return nil
}
