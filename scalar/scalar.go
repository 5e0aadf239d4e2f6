// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package scalar provides the closed set of tensor element types.
//
// Every ScalarType has a fixed Go representation:
//
//	Byte uint8          Half Float16          ComplexHalf Complex32
//	Char int8           Float float32         ComplexFloat complex64
//	Short int16         Double float64        ComplexDouble complex128
//	Int int32           BFloat16 BrainFloat16 Bool bool
//	Long int64          QInt8 Qint8           QUInt8 Quint8
//	QInt32 Qint32
//
// Quantized types are stored as their underlying integer type: QInt8 as
// Char, QUInt8 as Byte and QInt32 as Int.
package scalar

import (
	"github.com/born-ml/dispatch/internal/scalar"
)

// ScalarType identifies the element type of a tensor at runtime.
type ScalarType = scalar.ScalarType

// Scalar types.
const (
	Byte          = scalar.Byte
	Char          = scalar.Char
	Short         = scalar.Short
	Int           = scalar.Int
	Long          = scalar.Long
	Half          = scalar.Half
	Float         = scalar.Float
	Double        = scalar.Double
	ComplexHalf   = scalar.ComplexHalf
	ComplexFloat  = scalar.ComplexFloat
	ComplexDouble = scalar.ComplexDouble
	Bool          = scalar.Bool
	QInt8         = scalar.QInt8
	QUInt8        = scalar.QUInt8
	QInt32        = scalar.QInt32
	BFloat16      = scalar.BFloat16

	NumTypes = scalar.NumTypes
)

// Category groups scalar types by arithmetic kind.
type Category = scalar.Category

// Categories.
const (
	SignedInt   = scalar.SignedInt
	UnsignedInt = scalar.UnsignedInt
	Floating    = scalar.Floating
	Complex     = scalar.Complex
	Quantized   = scalar.Quantized
	Boolean     = scalar.Boolean
)

// Representation describes the in-memory form of a scalar type.
type Representation = scalar.Representation

// Representation types without a native Go equivalent.
type (
	Float16      = scalar.Float16
	BrainFloat16 = scalar.BrainFloat16
	Complex32    = scalar.Complex32
	Qint8        = scalar.Qint8
	Quint8       = scalar.Quint8
	Qint32       = scalar.Qint32
)

// Type constraints.
type (
	Scalar        = scalar.Scalar
	Integer       = scalar.Integer
	FloatingPoint = scalar.FloatingPoint
	Real          = scalar.Real
	Numeric       = scalar.Numeric
	HalfPrecision = scalar.HalfPrecision
)

// QuantizedInt is satisfied by quantized representations stored as U.
type QuantizedInt[U Integer] = scalar.QuantizedInt[U]

// TagOf returns the scalar type whose representation is T.
func TagOf[T Scalar]() ScalarType {
	return scalar.TagOf[T]()
}

// All returns every scalar type in ordinal order.
func All() []ScalarType {
	return scalar.All()
}

// RepresentationOf returns the representation of t.
func RepresentationOf(t ScalarType) Representation {
	return scalar.RepresentationOf(t)
}

// DisplayName returns the name used for t in diagnostics.
func DisplayName(t ScalarType) string {
	return scalar.DisplayName(t)
}

// UnderlyingOf returns the storage type of a quantized type.
func UnderlyingOf(t ScalarType) (ScalarType, bool) {
	return scalar.UnderlyingOf(t)
}

// Parse returns the scalar type with the given display name, ignoring case.
func Parse(name string) (ScalarType, error) {
	return scalar.Parse(name)
}

// HalfFromFloat32 rounds f to the nearest Float16.
func HalfFromFloat32(f float32) Float16 {
	return scalar.HalfFromFloat32(f)
}

// BFloat16FromFloat32 rounds f to the nearest BrainFloat16.
func BFloat16FromFloat32(f float32) BrainFloat16 {
	return scalar.BFloat16FromFloat32(f)
}
