package kernels

import (
	"errors"
	"fmt"
	"math"
	"unsafe"

	"github.com/born-ml/dispatch/internal/dispatch"
	"github.com/born-ml/dispatch/internal/parallel"
	"github.com/born-ml/dispatch/internal/scalar"
	"github.com/born-ml/dispatch/internal/tensor"
)

// ErrInvalidScale is returned for a non-positive or non-finite quantization scale.
var ErrInvalidScale = errors.New("quantization scale must be positive and finite")

// affine holds the parameters of an affine quantization.
type affine struct {
	x         *tensor.RawTensor
	scale     float64
	zeroPoint int64
	par       parallel.Config
}

var quantizeBody = dispatch.NewQuantizedBody(
	dispatch.QCase(quantize[scalar.Qint8, int8]),
	dispatch.QCase(quantize[scalar.Quint8, uint8]),
	dispatch.QCase(quantize[scalar.Qint32, int32]),
)

var dequantizeBody = dispatch.NewQuantizedBody(
	dispatch.QCase(dequantize[scalar.Qint8, int8]),
	dispatch.QCase(dequantize[scalar.Quint8, uint8]),
	dispatch.QCase(dequantize[scalar.Qint32, int32]),
)

func init() {
	for _, err := range []error{
		quantizeBody.Covers(dispatch.QuantizedTypesProfile),
		dequantizeBody.Covers(dispatch.QuantizedTypesProfile),
	} {
		if err != nil {
			panic("kernels: " + err.Error())
		}
	}
}

// Quantize maps a Float tensor to quantized type to with
// q = clamp(round(x/scale) + zeroPoint), rounding half to even. Values
// beyond the storage range, including infinities, saturate; NaN maps to
// zeroPoint.
func (k *CPU) Quantize(x *tensor.RawTensor, to scalar.ScalarType, scale float64, zeroPoint int64) (*tensor.RawTensor, error) {
	if x.ScalarType() != scalar.Float {
		return nil, dispatch.Report("quantize_per_tensor", scalar.DisplayName(x.ScalarType()))
	}
	if err := checkScale(scale); err != nil {
		return nil, fmt.Errorf("quantize_per_tensor: %w", err)
	}
	return dispatch.DispatchQuantizedOn(k.platform, to, "quantize_per_tensor", dispatch.QuantizedTypesProfile, quantizeBody,
		affine{x: x, scale: scale, zeroPoint: zeroPoint, par: k.par})
}

// Dequantize maps a quantized tensor back to Float with x = (q - zeroPoint) * scale.
func (k *CPU) Dequantize(q *tensor.RawTensor, scale float64, zeroPoint int64) (*tensor.RawTensor, error) {
	if err := checkScale(scale); err != nil {
		return nil, fmt.Errorf("dequantize: %w", err)
	}
	return dispatch.DispatchQuantizedOn(k.platform, q.ScalarType(), "dequantize", dispatch.QuantizedTypesProfile, dequantizeBody,
		affine{x: q, scale: scale, zeroPoint: zeroPoint, par: k.par})
}

func checkScale(scale float64) error {
	if scale <= 0 || math.IsInf(scale, 0) || math.IsNaN(scale) {
		return fmt.Errorf("%w: %v", ErrInvalidScale, scale)
	}
	return nil
}

// limits returns the value range of the storage type U.
func limits[U scalar.Integer]() (lo, hi int64) {
	var zero U
	bits := int64(unsafe.Sizeof(zero)) * 8
	if ^U(0) < 0 {
		return -1 << (bits - 1), 1<<(bits-1) - 1
	}
	return 0, 1<<bits - 1
}

func quantize[Q scalar.QuantizedInt[U], U scalar.Integer](qb dispatch.QuantizedBinding[Q, U], in affine) *tensor.RawTensor {
	out := empty(in.x, qb.Tag)
	dst, src := qb.Storage(out.Data()), tensor.MustView[float32](in.x)
	parallel.Range(len(dst), in.par, func(from, to int) {
		for i := from; i < to; i++ {
			v := math.RoundToEven(float64(src[i])/in.scale) + float64(in.zeroPoint)
			if v != v {
				v = float64(in.zeroPoint)
			}
			dst[i] = saturate[U](v)
		}
	})
	return out
}

func dequantize[Q scalar.QuantizedInt[U], U scalar.Integer](qb dispatch.QuantizedBinding[Q, U], in affine) *tensor.RawTensor {
	out := empty(in.x, scalar.Float)
	dst, src := tensor.MustView[float32](out), qb.View(in.x.Data())
	parallel.Range(len(dst), in.par, func(from, to int) {
		for i := from; i < to; i++ {
			dst[i] = float32(float64(int64(src[i].Underlying())-in.zeroPoint) * in.scale)
		}
	})
	return out
}
