package kernels

import (
	"github.com/born-ml/dispatch/internal/dispatch"
	"github.com/born-ml/dispatch/internal/scalar"
	"github.com/born-ml/dispatch/internal/tensor"
	"github.com/d4l3k/go-bfloat16"
)

var sumOp = dispatch.MustBind("sum",
	dispatch.MustBuild(dispatch.BaseAll, scalar.Half, scalar.BFloat16, scalar.Bool),
	dispatch.NewBody(
		dispatch.Case(sumReal[uint8]),
		dispatch.Case(sumReal[int8]),
		dispatch.Case(sumReal[int16]),
		dispatch.Case(sumReal[int32]),
		dispatch.Case(sumReal[int64]),
		dispatch.Case(sumReal[float32]),
		dispatch.Case(sumReal[float64]),
		dispatch.Case(sumHalf),
		dispatch.Case(sumBFloat16),
		dispatch.Case(sumBool),
	),
)

// Sum returns the sum of all elements accumulated in float64, in index order.
// Bool tensors count their true elements.
func (k *CPU) Sum(x *tensor.RawTensor) (float64, error) {
	return sumOp.WithPlatform(k.platform).On(x, unary{x: x, par: k.par})
}

func sumReal[T scalar.Real](bd dispatch.Binding[T], in unary) float64 {
	var acc float64
	for _, v := range bd.View(in.x.Data()) {
		acc += float64(v)
	}
	return acc
}

func sumHalf(bd dispatch.Binding[scalar.Float16], in unary) float64 {
	var acc float64
	for _, v := range bd.View(in.x.Data()) {
		acc += float64(v.Float32())
	}
	return acc
}

// sumBFloat16 widens the whole buffer at once; bfloat16 is the high half of
// a float32, so decoding is exact.
func sumBFloat16(_ dispatch.Binding[scalar.BrainFloat16], in unary) float64 {
	var acc float64
	for _, v := range bfloat16.DecodeFloat32(in.x.Data()) {
		acc += float64(v)
	}
	return acc
}

func sumBool(bd dispatch.Binding[bool], in unary) float64 {
	var n int
	for _, v := range bd.View(in.x.Data()) {
		if v {
			n++
		}
	}
	return float64(n)
}
