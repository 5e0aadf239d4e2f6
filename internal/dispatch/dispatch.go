package dispatch

import (
	"fmt"

	"github.com/born-ml/dispatch/internal/capability"
	"github.com/born-ml/dispatch/internal/scalar"
)

// Typed is implemented by values that carry a scalar type, such as tensors.
type Typed interface {
	ScalarType() scalar.ScalarType
}

// Dispatch runs the instantiation of body bound to tag in p and returns its
// result unchanged. If p does not bind tag, or the default platform cannot
// run it, Dispatch returns an *UnsupportedTypeError naming op and the type;
// body is not invoked.
//
// Dispatch panics if p binds tag but body has no instantiation for it; use
// Bind to check a body against a profile once.
func Dispatch[A, R any](tag scalar.ScalarType, op string, p *Profile, body *Body[A, R], arg A) (R, error) {
	return DispatchOn(capability.Default(), tag, op, p, body, arg)
}

// DispatchOn is Dispatch with an explicit platform.
func DispatchOn[A, R any](plat capability.Platform, tag scalar.ScalarType, op string, p *Profile, body *Body[A, R], arg A) (R, error) {
	var zero R

	rep, ok := p.Lookup(tag)
	if !ok {
		return zero, reportTag(op, tag)
	}
	if !plat.Supports(tag) {
		return zero, reportTag(op, tag)
	}

	call := body.cases[tag]
	if call == nil {
		panic(fmt.Sprintf("%s: %v: %s in %s", op, ErrMissingInstantiation, tag, p.name))
	}
	return call(rep, arg), nil
}

// On dispatches on the scalar type of src, which is read exactly once.
func On[A, R any](src Typed, op string, p *Profile, body *Body[A, R], arg A) (R, error) {
	return Dispatch(src.ScalarType(), op, p, body, arg)
}

// Bound is a body checked against a profile, ready to dispatch repeatedly.
type Bound[A, R any] struct {
	op       string
	profile  *Profile
	body     *Body[A, R]
	platform capability.Platform
}

// Bind checks that body instantiates every tag of p and returns the pair
// bound to the default platform.
func Bind[A, R any](op string, p *Profile, body *Body[A, R]) (*Bound[A, R], error) {
	if err := body.Covers(p); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &Bound[A, R]{op: op, profile: p, body: body, platform: capability.Default()}, nil
}

// MustBind is like Bind but panics on error.
func MustBind[A, R any](op string, p *Profile, body *Body[A, R]) *Bound[A, R] {
	b, err := Bind(op, p, body)
	if err != nil {
		panic("dispatch: " + err.Error())
	}
	return b
}

// WithPlatform returns a copy of b that checks capabilities against plat.
func (b *Bound[A, R]) WithPlatform(plat capability.Platform) *Bound[A, R] {
	c := *b
	c.platform = plat
	return &c
}

// Op returns the operation name used in errors.
func (b *Bound[A, R]) Op() string { return b.op }

// Profile returns the bound profile.
func (b *Bound[A, R]) Profile() *Profile { return b.profile }

// Dispatch runs the instantiation for tag.
func (b *Bound[A, R]) Dispatch(tag scalar.ScalarType, arg A) (R, error) {
	return DispatchOn(b.platform, tag, b.op, b.profile, b.body, arg)
}

// On dispatches on the scalar type of src, which is read exactly once.
func (b *Bound[A, R]) On(src Typed, arg A) (R, error) {
	return b.Dispatch(src.ScalarType(), arg)
}
