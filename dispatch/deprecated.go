// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package dispatch

import (
	"github.com/born-ml/dispatch/internal/dispatch"
	"github.com/born-ml/dispatch/scalar"
)

// AllTypesAndHalf returns AllTypes plus Half.
//
// Deprecated: use AllTypes(scalar.Half).
func AllTypesAndHalf() (*Profile, error) {
	return dispatch.AllTypesAndHalf() //nolint:staticcheck // forwarding the deprecated name
}

// AllTypesAndHalfAndComplex returns AllTypesAndComplex plus Half.
//
// Deprecated: use AllTypesAndComplex(scalar.Half).
func AllTypesAndHalfAndComplex() (*Profile, error) {
	return dispatch.AllTypesAndHalfAndComplex() //nolint:staticcheck // forwarding the deprecated name
}

// TypeProperties pairs a backend name with a scalar type.
//
// Deprecated: pass a scalar.ScalarType to Dispatch instead.
type TypeProperties = dispatch.TypeProperties //nolint:staticcheck // forwarding the deprecated name

// ScalarTypeOf unwraps legacy type properties.
//
// Deprecated: pass a scalar.ScalarType to Dispatch instead.
func ScalarTypeOf(p TypeProperties) scalar.ScalarType {
	return dispatch.ScalarTypeOf(p) //nolint:staticcheck // forwarding the deprecated name
}

// Legacy returns the replacement for a legacy profile name, ignoring case.
func Legacy(name string) (replacement string, ok bool) {
	return dispatch.Legacy(name)
}
