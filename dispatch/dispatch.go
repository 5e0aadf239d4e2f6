// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package dispatch

import (
	"github.com/born-ml/dispatch/internal/capability"
	"github.com/born-ml/dispatch/internal/dispatch"
	"github.com/born-ml/dispatch/scalar"
)

// Type aliases for public API

// Typed is implemented by values that carry a scalar type.
type Typed = dispatch.Typed

// Set is a bitmask over scalar types.
type Set = dispatch.Set

// Base is a named base set of scalar types.
type Base = dispatch.Base

// Profile is an ordered, duplicate-free set of scalar type bindings.
type Profile = dispatch.Profile

// Binding is what a body instantiation receives.
type Binding[T scalar.Scalar] = dispatch.Binding[T]

// Instantiation is one specialization of a generic body.
type Instantiation[A, R any] = dispatch.Instantiation[A, R]

// Body is a generic operation body.
type Body[A, R any] = dispatch.Body[A, R]

// Bound is a body checked against a profile.
type Bound[A, R any] = dispatch.Bound[A, R]

// Platform is a set of platform capabilities.
type Platform = capability.Platform

// Errors.
type (
	UnsupportedTypeError = dispatch.UnsupportedTypeError
	ProfileError         = dispatch.ProfileError
)

// Error sentinels.
var (
	ErrUnsupportedType       = dispatch.ErrUnsupportedType
	ErrDuplicateTag          = dispatch.ErrDuplicateTag
	ErrTooManyTags           = dispatch.ErrTooManyTags
	ErrInvalidTag            = dispatch.ErrInvalidTag
	ErrUnknownProfile        = dispatch.ErrUnknownProfile
	ErrMissingInstantiation  = dispatch.ErrMissingInstantiation
	ErrUnsupportedExtensions = dispatch.ErrUnsupportedExtensions
)

// MaxExtraTags is the number of scalar types a profile may add to its base.
const MaxExtraTags = dispatch.MaxExtraTags

// Base sets.
var (
	BaseFloating           = dispatch.BaseFloating
	BaseFloatingAndHalf    = dispatch.BaseFloatingAndHalf
	BaseIntegral           = dispatch.BaseIntegral
	BaseAll                = dispatch.BaseAll
	BaseComplex            = dispatch.BaseComplex
	BaseFloatingAndComplex = dispatch.BaseFloatingAndComplex
	BaseAllAndComplex      = dispatch.BaseAllAndComplex
)

// Unextended profiles.
var (
	FloatingTypesProfile           = dispatch.FloatingTypesProfile
	FloatingTypesAndHalfProfile    = dispatch.FloatingTypesAndHalfProfile
	IntegralTypesProfile           = dispatch.IntegralTypesProfile
	AllTypesProfile                = dispatch.AllTypesProfile
	ComplexTypesProfile            = dispatch.ComplexTypesProfile
	FloatingAndComplexTypesProfile = dispatch.FloatingAndComplexTypesProfile
	AllTypesAndComplexProfile      = dispatch.AllTypesAndComplexProfile
)

// Build returns base extended with extra scalar types.
func Build(base *Base, extra ...scalar.ScalarType) (*Profile, error) {
	return dispatch.Build(base, extra...)
}

// MustBuild is like Build but panics on error.
func MustBuild(base *Base, extra ...scalar.ScalarType) *Profile {
	return dispatch.MustBuild(base, extra...)
}

// BuildNamed builds a profile from a base set name or a legacy profile name.
func BuildNamed(name string, extra ...scalar.ScalarType) (*Profile, error) {
	return dispatch.BuildNamed(name, extra...)
}

// Bases returns every base set in declaration order.
func Bases() []*Base {
	return dispatch.Bases()
}

// FloatingTypes returns Double and Float plus extra.
func FloatingTypes(extra ...scalar.ScalarType) (*Profile, error) {
	return dispatch.FloatingTypes(extra...)
}

// FloatingTypesAndHalf returns Double, Float and Half plus extra.
func FloatingTypesAndHalf(extra ...scalar.ScalarType) (*Profile, error) {
	return dispatch.FloatingTypesAndHalf(extra...)
}

// IntegralTypes returns Byte, Char, Int, Long and Short plus extra.
func IntegralTypes(extra ...scalar.ScalarType) (*Profile, error) {
	return dispatch.IntegralTypes(extra...)
}

// AllTypes returns the integral and floating types plus extra.
func AllTypes(extra ...scalar.ScalarType) (*Profile, error) {
	return dispatch.AllTypes(extra...)
}

// ComplexTypes returns ComplexFloat and ComplexDouble plus extra.
func ComplexTypes(extra ...scalar.ScalarType) (*Profile, error) {
	return dispatch.ComplexTypes(extra...)
}

// FloatingAndComplexTypes returns the floating and complex types plus extra.
func FloatingAndComplexTypes(extra ...scalar.ScalarType) (*Profile, error) {
	return dispatch.FloatingAndComplexTypes(extra...)
}

// AllTypesAndComplex returns AllTypes and the complex types plus extra.
func AllTypesAndComplex(extra ...scalar.ScalarType) (*Profile, error) {
	return dispatch.AllTypesAndComplex(extra...)
}

// Case wraps fn, a generic body instantiated at T.
func Case[T scalar.Scalar, A, R any](fn func(Binding[T], A) R) Instantiation[A, R] {
	return dispatch.Case(fn)
}

// NewBody builds a body from instantiations.
func NewBody[A, R any](cases ...Instantiation[A, R]) *Body[A, R] {
	return dispatch.NewBody(cases...)
}

// Bind checks body against p.
func Bind[A, R any](op string, p *Profile, body *Body[A, R]) (*Bound[A, R], error) {
	return dispatch.Bind(op, p, body)
}

// MustBind is like Bind but panics on error.
func MustBind[A, R any](op string, p *Profile, body *Body[A, R]) *Bound[A, R] {
	return dispatch.MustBind(op, p, body)
}

// Dispatch runs the instantiation of body bound to tag in p.
func Dispatch[A, R any](tag scalar.ScalarType, op string, p *Profile, body *Body[A, R], arg A) (R, error) {
	return dispatch.Dispatch(tag, op, p, body, arg)
}

// On dispatches on the scalar type of src.
func On[A, R any](src Typed, op string, p *Profile, body *Body[A, R], arg A) (R, error) {
	return dispatch.On(src, op, p, body, arg)
}

// Report builds the error for a rejected scalar type.
func Report(op, typeName string) error {
	return dispatch.Report(op, typeName)
}

// DefaultPlatform returns the platform detected on first use.
func DefaultPlatform() Platform {
	return capability.Default()
}
