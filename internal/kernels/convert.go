package kernels

import (
	"fmt"

	"github.com/born-ml/dispatch/internal/scalar"
)

// toFloat64 returns the conversion from T to float64. Complex values yield
// their real part and Bool yields 0 or 1.
func toFloat64[T scalar.Scalar]() func(T) float64 {
	var f any
	switch any(*new(T)).(type) {
	case uint8:
		f = func(v uint8) float64 { return float64(v) }
	case int8:
		f = func(v int8) float64 { return float64(v) }
	case int16:
		f = func(v int16) float64 { return float64(v) }
	case int32:
		f = func(v int32) float64 { return float64(v) }
	case int64:
		f = func(v int64) float64 { return float64(v) }
	case float32:
		f = func(v float32) float64 { return float64(v) }
	case float64:
		f = func(v float64) float64 { return v }
	case scalar.Float16:
		f = func(v scalar.Float16) float64 { return float64(v.Float32()) }
	case scalar.BrainFloat16:
		f = func(v scalar.BrainFloat16) float64 { return float64(v.Float32()) }
	case scalar.Complex32:
		f = func(v scalar.Complex32) float64 { return float64(v.Real.Float32()) }
	case complex64:
		f = func(v complex64) float64 { return float64(real(v)) }
	case complex128:
		f = func(v complex128) float64 { return real(v) }
	case bool:
		f = func(v bool) float64 {
			if v {
				return 1
			}
			return 0
		}
	case scalar.Qint8:
		f = func(v scalar.Qint8) float64 { return float64(v) }
	case scalar.Quint8:
		f = func(v scalar.Quint8) float64 { return float64(v) }
	case scalar.Qint32:
		f = func(v scalar.Qint32) float64 { return float64(v) }
	}
	return f.(func(T) float64)
}

// fromFloat64 returns the conversion from float64 to T. Integers truncate
// toward zero and saturate at the range of T, with NaN mapping to 0. The
// 16-bit floats round to nearest even and Bool is v != 0.
func fromFloat64[T scalar.Scalar]() func(float64) T {
	var f any
	switch any(*new(T)).(type) {
	case uint8:
		f = saturate[uint8]
	case int8:
		f = saturate[int8]
	case int16:
		f = saturate[int16]
	case int32:
		f = saturate[int32]
	case int64:
		f = saturate[int64]
	case float32:
		f = func(v float64) float32 { return float32(v) }
	case float64:
		f = func(v float64) float64 { return v }
	case scalar.Float16:
		f = func(v float64) scalar.Float16 { return scalar.HalfFromFloat32(float32(v)) }
	case scalar.BrainFloat16:
		f = func(v float64) scalar.BrainFloat16 { return scalar.BFloat16FromFloat32(float32(v)) }
	case scalar.Complex32:
		f = func(v float64) scalar.Complex32 { return scalar.Complex32FromComplex64(complex(float32(v), 0)) }
	case complex64:
		f = func(v float64) complex64 { return complex(float32(v), 0) }
	case complex128:
		f = func(v float64) complex128 { return complex(v, 0) }
	case bool:
		f = func(v float64) bool { return v != 0 }
	default:
		panic(fmt.Sprintf("kernels: no float64 conversion to %s", scalar.TagOf[T]()))
	}
	return f.(func(float64) T)
}

// toInt64 returns the exact conversion from T to int64 for integral T and
// Bool, or nil for every other type.
func toInt64[T scalar.Scalar]() func(T) int64 {
	var f any
	switch any(*new(T)).(type) {
	case uint8:
		f = func(v uint8) int64 { return int64(v) }
	case int8:
		f = func(v int8) int64 { return int64(v) }
	case int16:
		f = func(v int16) int64 { return int64(v) }
	case int32:
		f = func(v int32) int64 { return int64(v) }
	case int64:
		f = func(v int64) int64 { return v }
	case bool:
		f = func(v bool) int64 {
			if v {
				return 1
			}
			return 0
		}
	default:
		return nil
	}
	return f.(func(T) int64)
}

// fromInt64 is the inverse of toInt64. Integers wrap as Go conversions do.
func fromInt64[T scalar.Scalar]() func(int64) T {
	var f any
	switch any(*new(T)).(type) {
	case uint8:
		f = func(v int64) uint8 { return uint8(v) }
	case int8:
		f = func(v int64) int8 { return int8(v) }
	case int16:
		f = func(v int64) int16 { return int16(v) }
	case int32:
		f = func(v int64) int32 { return int32(v) }
	case int64:
		f = func(v int64) int64 { return v }
	case bool:
		f = func(v int64) bool { return v != 0 }
	default:
		return nil
	}
	return f.(func(int64) T)
}

// fromFloat32 narrows a float32 result to a 16-bit float.
func fromFloat32[T scalar.HalfPrecision](v float32) T {
	var out any
	switch any(*new(T)).(type) {
	case scalar.Float16:
		out = scalar.HalfFromFloat32(v)
	case scalar.BrainFloat16:
		out = scalar.BFloat16FromFloat32(v)
	}
	return out.(T)
}

// saturate truncates v toward zero and clamps it to the range of I.
// NaN maps to 0.
func saturate[I scalar.Integer](v float64) I {
	lo, hi := limits[I]()
	switch {
	case v != v:
		return 0
	case v <= float64(lo):
		return I(lo)
	case v >= float64(hi):
		// float64(hi) rounds up to 2^63 for int64, so compare with >=.
		return I(hi)
	}
	return I(v)
}
