package dispatch

import (
	"fmt"

	"github.com/born-ml/dispatch/internal/capability"
	"github.com/born-ml/dispatch/internal/scalar"
)

// QuantizedBinding is what a quantized body instantiation receives: the
// logical quantized type and the integer type it is stored as.
type QuantizedBinding[Q scalar.QuantizedInt[U], U scalar.Integer] struct {
	Tag            scalar.ScalarType
	Repr           scalar.Representation
	UnderlyingTag  scalar.ScalarType
	UnderlyingRepr scalar.Representation
}

// View reinterprets data as quantized values without copying.
func (b QuantizedBinding[Q, U]) View(data []byte) []Q {
	return view[Q](data)
}

// Storage reinterprets data as raw storage values without copying.
func (b QuantizedBinding[Q, U]) Storage(data []byte) []U {
	return view[U](data)
}

// QuantizedPair is one binding of a quantized profile.
type QuantizedPair struct {
	Quantized  scalar.Representation
	Underlying scalar.Representation
}

// QuantizedProfile binds the quantized scalar types. It takes no extra tags.
type QuantizedProfile struct {
	name  string
	pairs []QuantizedPair
	set   Set
}

// QuantizedTypes returns the profile over QInt8, QUInt8 and QInt32.
func QuantizedTypes() *QuantizedProfile {
	p := &QuantizedProfile{name: "QIntTypes"}
	for _, t := range []scalar.ScalarType{scalar.QInt8, scalar.QUInt8, scalar.QInt32} {
		u, _ := scalar.UnderlyingOf(t)
		p.pairs = append(p.pairs, QuantizedPair{
			Quantized:  scalar.RepresentationOf(t),
			Underlying: scalar.RepresentationOf(u),
		})
		p.set = p.set.With(t)
	}
	return p
}

// QuantizedTypesProfile is the quantized profile.
var QuantizedTypesProfile = QuantizedTypes()

// Name returns the profile name.
func (p *QuantizedProfile) Name() string { return p.name }

// String implements fmt.Stringer.
func (p *QuantizedProfile) String() string { return p.name }

// Pairs returns the bindings in case order.
func (p *QuantizedProfile) Pairs() []QuantizedPair {
	return append([]QuantizedPair(nil), p.pairs...)
}

// Contains reports whether t is bound.
func (p *QuantizedProfile) Contains(t scalar.ScalarType) bool { return p.set.Has(t) }

// Lookup returns the binding for t.
func (p *QuantizedProfile) Lookup(t scalar.ScalarType) (QuantizedPair, bool) {
	if !p.set.Has(t) {
		return QuantizedPair{}, false
	}
	u, _ := scalar.UnderlyingOf(t)
	return QuantizedPair{Quantized: scalar.RepresentationOf(t), Underlying: scalar.RepresentationOf(u)}, true
}

// QuantizedInstantiation is one specialization of a quantized body.
type QuantizedInstantiation[A, R any] struct {
	tag  scalar.ScalarType
	call func(A) R
}

// QCase wraps fn, a generic quantized body instantiated at Q and its
// storage type U.
func QCase[Q scalar.QuantizedInt[U], U scalar.Integer, A, R any](fn func(QuantizedBinding[Q, U], A) R) QuantizedInstantiation[A, R] {
	tag, utag := scalar.TagOf[Q](), scalar.TagOf[U]()
	if u, _ := scalar.UnderlyingOf(tag); u != utag {
		panic(fmt.Sprintf("dispatch: %s is stored as %s, not %s", tag, u, utag))
	}
	b := QuantizedBinding[Q, U]{
		Tag:            tag,
		Repr:           scalar.RepresentationOf(tag),
		UnderlyingTag:  utag,
		UnderlyingRepr: scalar.RepresentationOf(utag),
	}
	return QuantizedInstantiation[A, R]{
		tag:  tag,
		call: func(arg A) R { return fn(b, arg) },
	}
}

// QuantizedBody is a generic quantized operation body.
type QuantizedBody[A, R any] struct {
	cases [scalar.NumTypes]func(A) R
	set   Set
}

// NewQuantizedBody builds a quantized body. It panics on duplicate tags.
func NewQuantizedBody[A, R any](cases ...QuantizedInstantiation[A, R]) *QuantizedBody[A, R] {
	b := &QuantizedBody[A, R]{}
	for _, c := range cases {
		if b.set.Has(c.tag) {
			panic(fmt.Sprintf("dispatch: quantized body has two instantiations for %s", c.tag))
		}
		b.cases[c.tag] = c.call
		b.set = b.set.With(c.tag)
	}
	return b
}

// Covers checks that the body instantiates every tag of p.
func (b *QuantizedBody[A, R]) Covers(p *QuantizedProfile) error {
	for _, pair := range p.pairs {
		if !b.set.Has(pair.Quantized.Tag) {
			return &ProfileError{Profile: p.name, Tag: pair.Quantized.Tag, Err: ErrMissingInstantiation}
		}
	}
	return nil
}

// DispatchQuantized runs the instantiation of body bound to tag in p.
// Failure modes match Dispatch.
func DispatchQuantized[A, R any](tag scalar.ScalarType, op string, p *QuantizedProfile, body *QuantizedBody[A, R], arg A) (R, error) {
	return DispatchQuantizedOn(capability.Default(), tag, op, p, body, arg)
}

// DispatchQuantizedOn is DispatchQuantized with an explicit platform.
func DispatchQuantizedOn[A, R any](plat capability.Platform, tag scalar.ScalarType, op string, p *QuantizedProfile, body *QuantizedBody[A, R], arg A) (R, error) {
	var zero R
	if !p.set.Has(tag) || !plat.Supports(tag) {
		return zero, reportTag(op, tag)
	}
	call := body.cases[tag]
	if call == nil {
		panic(fmt.Sprintf("%s: %v: %s in %s", op, ErrMissingInstantiation, tag, p.name))
	}
	return call(arg), nil
}
