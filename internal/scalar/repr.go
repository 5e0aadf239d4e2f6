package scalar

import (
	"math"

	"github.com/x448/float16"
)

// Float16 is the representation of Half: IEEE 754 binary16.
type Float16 = float16.Float16

// HalfFromFloat32 rounds f to the nearest binary16 value.
func HalfFromFloat32(f float32) Float16 {
	return float16.Fromfloat32(f)
}

// BrainFloat16 is the representation of BFloat16: the upper 16 bits of an
// IEEE 754 binary32 value.
type BrainFloat16 uint16

// BFloat16FromFloat32 rounds f to the nearest bfloat16 value, ties to even.
func BFloat16FromFloat32(f float32) BrainFloat16 {
	bits := math.Float32bits(f)
	if f != f {
		// Keep NaN quiet; plain truncation could turn it into Inf.
		return BrainFloat16(bits>>16 | 0x0040)
	}
	rounding := uint32(0x7fff) + (bits>>16)&1
	return BrainFloat16((bits + rounding) >> 16)
}

// Float32 widens b to binary32. The conversion is exact.
func (b BrainFloat16) Float32() float32 {
	return math.Float32frombits(uint32(b) << 16)
}

// Complex32 is the representation of ComplexHalf: two binary16 halves.
type Complex32 struct {
	Real Float16
	Imag Float16
}

// Complex32FromComplex64 rounds both parts of c to binary16.
func Complex32FromComplex64(c complex64) Complex32 {
	return Complex32{Real: HalfFromFloat32(real(c)), Imag: HalfFromFloat32(imag(c))}
}

// Complex64 widens c to complex64.
func (c Complex32) Complex64() complex64 {
	return complex(c.Real.Float32(), c.Imag.Float32())
}

// Qint8 is the representation of QInt8, stored as int8.
type Qint8 int8

// Underlying returns the raw storage value.
func (q Qint8) Underlying() int8 { return int8(q) }

// Quint8 is the representation of QUInt8, stored as uint8.
type Quint8 uint8

// Underlying returns the raw storage value.
func (q Quint8) Underlying() uint8 { return uint8(q) }

// Qint32 is the representation of QInt32, stored as int32.
type Qint32 int32

// Underlying returns the raw storage value.
func (q Qint32) Underlying() int32 { return int32(q) }

// Scalar is satisfied by every representation type.
type Scalar interface {
	uint8 | int8 | int16 | int32 | int64 |
		Float16 | float32 | float64 |
		Complex32 | complex64 | complex128 |
		bool |
		Qint8 | Quint8 | Qint32 |
		BrainFloat16
}

// Integer is satisfied by the integral representations.
type Integer interface {
	uint8 | int8 | int16 | int32 | int64
}

// FloatingPoint is satisfied by the native floating representations.
type FloatingPoint interface {
	float32 | float64
}

// Real is satisfied by representations with native Go arithmetic and ordering.
type Real interface {
	Integer | FloatingPoint
}

// Numeric is satisfied by representations with native Go arithmetic.
type Numeric interface {
	Real | complex64 | complex128
}

// HalfPrecision is satisfied by the 16-bit floating representations, which
// compute through float32.
type HalfPrecision interface {
	Float16 | BrainFloat16
	Float32() float32
}

// QuantizedInt is satisfied by quantized representations whose storage type is U.
type QuantizedInt[U Integer] interface {
	Qint8 | Quint8 | Qint32
	Underlying() U
}

// TagOf returns the scalar type whose representation is T.
func TagOf[T Scalar]() ScalarType {
	var zero T
	switch any(zero).(type) {
	case uint8:
		return Byte
	case int8:
		return Char
	case int16:
		return Short
	case int32:
		return Int
	case int64:
		return Long
	case Float16:
		return Half
	case float32:
		return Float
	case float64:
		return Double
	case Complex32:
		return ComplexHalf
	case complex64:
		return ComplexFloat
	case complex128:
		return ComplexDouble
	case bool:
		return Bool
	case Qint8:
		return QInt8
	case Quint8:
		return QUInt8
	case Qint32:
		return QInt32
	case BrainFloat16:
		return BFloat16
	default:
		panic("scalar: unreachable representation type")
	}
}
