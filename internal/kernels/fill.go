package kernels

import (
	"github.com/born-ml/dispatch/internal/dispatch"
	"github.com/born-ml/dispatch/internal/parallel"
	"github.com/born-ml/dispatch/internal/scalar"
	"github.com/born-ml/dispatch/internal/tensor"
)

var fillOp = dispatch.MustBind("fill_",
	dispatch.MustBuild(dispatch.BaseAllAndComplex, scalar.Bool, scalar.Half, scalar.BFloat16),
	dispatch.NewBody(
		dispatch.Case(fill[uint8]),
		dispatch.Case(fill[int8]),
		dispatch.Case(fill[int16]),
		dispatch.Case(fill[int32]),
		dispatch.Case(fill[int64]),
		dispatch.Case(fill[float32]),
		dispatch.Case(fill[float64]),
		dispatch.Case(fill[complex64]),
		dispatch.Case(fill[complex128]),
		dispatch.Case(fill[bool]),
		dispatch.Case(fill[scalar.Float16]),
		dispatch.Case(fill[scalar.BrainFloat16]),
	),
)

// Fill sets every element of x to v converted to x's scalar type, in place.
func (k *CPU) Fill(x *tensor.RawTensor, v float64) error {
	_, err := fillOp.WithPlatform(k.platform).On(x, scaled{x: x, v: v, par: k.par})
	return err
}

func fill[T scalar.Scalar](bd dispatch.Binding[T], in scaled) struct{} {
	c := fromFloat64[T]()(in.v)
	dst := bd.View(in.x.Data())
	parallel.Range(len(dst), in.par, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			dst[i] = c
		}
	})
	return struct{}{}
}

var mulScalarOp = dispatch.MustBind("mul",
	dispatch.MustBuild(dispatch.BaseFloating, scalar.Half),
	dispatch.NewBody(
		dispatch.Case(mulScalar[float32]),
		dispatch.Case(mulScalar[float64]),
		dispatch.Case(mulScalarHalf),
	),
)

// MulScalar returns x * s.
func (k *CPU) MulScalar(x *tensor.RawTensor, s float64) (*tensor.RawTensor, error) {
	return mulScalarOp.WithPlatform(k.platform).On(x, scaled{x: x, v: s, par: k.par})
}

func mulScalar[T scalar.FloatingPoint](bd dispatch.Binding[T], in scaled) *tensor.RawTensor {
	out := empty(in.x, bd.Tag)
	dst, src, s := bd.View(out.Data()), bd.View(in.x.Data()), T(in.v)
	parallel.Range(len(dst), in.par, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			dst[i] = src[i] * s
		}
	})
	return out
}

func mulScalarHalf(bd dispatch.Binding[scalar.Float16], in scaled) *tensor.RawTensor {
	out := empty(in.x, bd.Tag)
	dst, src, s := bd.View(out.Data()), bd.View(in.x.Data()), float32(in.v)
	parallel.Range(len(dst), in.par, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			dst[i] = scalar.HalfFromFloat32(src[i].Float32() * s)
		}
	})
	return out
}
