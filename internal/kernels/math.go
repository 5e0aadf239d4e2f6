package kernels

import (
	"math"
	"math/cmplx"

	"github.com/born-ml/dispatch/internal/dispatch"
	"github.com/born-ml/dispatch/internal/parallel"
	"github.com/born-ml/dispatch/internal/scalar"
	"github.com/born-ml/dispatch/internal/tensor"
)

var absOp = dispatch.MustBind("abs",
	dispatch.FloatingAndComplexTypesProfile,
	dispatch.NewBody(
		dispatch.Case(absReal[float32]),
		dispatch.Case(absReal[float64]),
		dispatch.Case(absComplex[complex64, float32]),
		dispatch.Case(absComplex[complex128, float64]),
	),
)

// Abs returns |x|. Complex inputs yield their magnitudes as a Float or
// Double tensor.
func (k *CPU) Abs(x *tensor.RawTensor) (*tensor.RawTensor, error) {
	return absOp.WithPlatform(k.platform).On(x, unary{x: x, par: k.par})
}

func absReal[T scalar.FloatingPoint](bd dispatch.Binding[T], in unary) *tensor.RawTensor {
	out := empty(in.x, bd.Tag)
	dst, src := bd.View(out.Data()), bd.View(in.x.Data())
	parallel.Range(len(dst), in.par, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			dst[i] = T(math.Abs(float64(src[i])))
		}
	})
	return out
}

func absComplex[C complex64 | complex128, F float32 | float64](bd dispatch.Binding[C], in unary) *tensor.RawTensor {
	out := empty(in.x, scalar.TagOf[F]())
	dst, src := tensor.MustView[F](out), bd.View(in.x.Data())
	parallel.Range(len(dst), in.par, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			dst[i] = F(cmplx.Abs(complex128(src[i])))
		}
	})
	return out
}

var bitwiseNotOp = dispatch.MustBind("bitwise_not",
	dispatch.MustBuild(dispatch.BaseIntegral, scalar.Bool),
	dispatch.NewBody(
		dispatch.Case(bitwiseNot[uint8]),
		dispatch.Case(bitwiseNot[int8]),
		dispatch.Case(bitwiseNot[int16]),
		dispatch.Case(bitwiseNot[int32]),
		dispatch.Case(bitwiseNot[int64]),
		dispatch.Case(logicalNot),
	),
)

// BitwiseNot returns ^x for integral tensors and !x for Bool tensors.
func (k *CPU) BitwiseNot(x *tensor.RawTensor) (*tensor.RawTensor, error) {
	return bitwiseNotOp.WithPlatform(k.platform).On(x, unary{x: x, par: k.par})
}

func bitwiseNot[T scalar.Integer](bd dispatch.Binding[T], in unary) *tensor.RawTensor {
	out := empty(in.x, bd.Tag)
	dst, src := bd.View(out.Data()), bd.View(in.x.Data())
	parallel.Range(len(dst), in.par, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			dst[i] = ^src[i]
		}
	})
	return out
}

func logicalNot(bd dispatch.Binding[bool], in unary) *tensor.RawTensor {
	out := empty(in.x, bd.Tag)
	dst, src := bd.View(out.Data()), bd.View(in.x.Data())
	for i, v := range src {
		dst[i] = !v
	}
	return out
}
