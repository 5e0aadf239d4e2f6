// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package dispatch

import (
	"github.com/born-ml/dispatch/internal/dispatch"
	"github.com/born-ml/dispatch/scalar"
)

// QuantizedBinding is what a quantized body instantiation receives.
type QuantizedBinding[Q scalar.QuantizedInt[U], U scalar.Integer] = dispatch.QuantizedBinding[Q, U]

// QuantizedProfile binds the quantized scalar types.
type QuantizedProfile = dispatch.QuantizedProfile

// QuantizedInstantiation is one specialization of a quantized body.
type QuantizedInstantiation[A, R any] = dispatch.QuantizedInstantiation[A, R]

// QuantizedBody is a generic quantized operation body.
type QuantizedBody[A, R any] = dispatch.QuantizedBody[A, R]

// QuantizedTypesProfile binds QInt8, QUInt8 and QInt32.
var QuantizedTypesProfile = dispatch.QuantizedTypesProfile

// QCase wraps fn, a quantized body instantiated at Q and its storage type U.
func QCase[Q scalar.QuantizedInt[U], U scalar.Integer, A, R any](fn func(QuantizedBinding[Q, U], A) R) QuantizedInstantiation[A, R] {
	return dispatch.QCase(fn)
}

// NewQuantizedBody builds a quantized body.
func NewQuantizedBody[A, R any](cases ...QuantizedInstantiation[A, R]) *QuantizedBody[A, R] {
	return dispatch.NewQuantizedBody(cases...)
}

// DispatchQuantized runs the instantiation of body bound to tag in p.
func DispatchQuantized[A, R any](tag scalar.ScalarType, op string, p *QuantizedProfile, body *QuantizedBody[A, R], arg A) (R, error) {
	return dispatch.DispatchQuantized(tag, op, p, body, arg)
}
