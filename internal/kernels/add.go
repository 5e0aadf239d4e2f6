package kernels

import (
	"fmt"

	"github.com/born-ml/dispatch/internal/dispatch"
	"github.com/born-ml/dispatch/internal/parallel"
	"github.com/born-ml/dispatch/internal/scalar"
	"github.com/born-ml/dispatch/internal/tensor"
)

var addOp = dispatch.MustBind("add",
	dispatch.MustBuild(dispatch.BaseAllAndComplex, scalar.Half, scalar.BFloat16),
	dispatch.NewBody(
		dispatch.Case(addNative[uint8]),
		dispatch.Case(addNative[int8]),
		dispatch.Case(addNative[int16]),
		dispatch.Case(addNative[int32]),
		dispatch.Case(addNative[int64]),
		dispatch.Case(addNative[float32]),
		dispatch.Case(addNative[float64]),
		dispatch.Case(addNative[complex64]),
		dispatch.Case(addNative[complex128]),
		dispatch.Case(addHalf[scalar.Float16]),
		dispatch.Case(addHalf[scalar.BrainFloat16]),
	),
)

// Add returns a + b element-wise. Both tensors must have the same shape and
// scalar type.
func (k *CPU) Add(a, b *tensor.RawTensor) (*tensor.RawTensor, error) {
	if a.ScalarType() != b.ScalarType() {
		return nil, fmt.Errorf("add: scalar type mismatch: %s vs %s", a.ScalarType(), b.ScalarType())
	}
	if err := tensor.SameShape(a, b); err != nil {
		return nil, fmt.Errorf("add: %w", err)
	}
	return addOp.WithPlatform(k.platform).On(a, binary{a: a, b: b, par: k.par})
}

func addNative[T scalar.Numeric](bd dispatch.Binding[T], in binary) *tensor.RawTensor {
	out := empty(in.a, bd.Tag)
	dst, x, y := bd.View(out.Data()), bd.View(in.a.Data()), bd.View(in.b.Data())
	parallel.Range(len(dst), in.par, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			dst[i] = x[i] + y[i]
		}
	})
	return out
}

// addHalf computes in float32 and rounds the result once.
func addHalf[T scalar.HalfPrecision](bd dispatch.Binding[T], in binary) *tensor.RawTensor {
	out := empty(in.a, bd.Tag)
	dst, x, y := bd.View(out.Data()), bd.View(in.a.Data()), bd.View(in.b.Data())
	parallel.Range(len(dst), in.par, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			dst[i] = fromFloat32[T](x[i].Float32() + y[i].Float32())
		}
	})
	return out
}
