package kernels

import (
	"github.com/born-ml/dispatch/internal/dispatch"
	"github.com/born-ml/dispatch/internal/parallel"
	"github.com/born-ml/dispatch/internal/scalar"
	"github.com/born-ml/dispatch/internal/tensor"
	"github.com/d4l3k/go-bfloat16"
)

var castProfile = dispatch.MustBuild(dispatch.BaseAll, scalar.Bool, scalar.Half, scalar.BFloat16)

// castArgs is the argument of the outer dispatch, over the source type.
type castArgs struct {
	x  *tensor.RawTensor
	to scalar.ScalarType
	k  *CPU
}

// castSource is the argument of the inner dispatch, over the target type.
// intAt is set only when the source is integral or Bool.
type castSource struct {
	x       *tensor.RawTensor
	n       int
	floatAt func(i int) float64
	intAt   func(i int) int64
	par     parallel.Config
}

type castResult struct {
	out *tensor.RawTensor
	err error
}

var castFromOp = dispatch.MustBind("cast", castProfile, dispatch.NewBody(
	dispatch.Case(castFrom[uint8]),
	dispatch.Case(castFrom[int8]),
	dispatch.Case(castFrom[int16]),
	dispatch.Case(castFrom[int32]),
	dispatch.Case(castFrom[int64]),
	dispatch.Case(castFrom[float32]),
	dispatch.Case(castFrom[float64]),
	dispatch.Case(castFrom[bool]),
	dispatch.Case(castFrom[scalar.Float16]),
	dispatch.Case(castFromBFloat16),
))

var castToOp = dispatch.MustBind("cast", castProfile, dispatch.NewBody(
	dispatch.Case(castTo[uint8]),
	dispatch.Case(castTo[int8]),
	dispatch.Case(castTo[int16]),
	dispatch.Case(castTo[int32]),
	dispatch.Case(castTo[int64]),
	dispatch.Case(castTo[float32]),
	dispatch.Case(castTo[float64]),
	dispatch.Case(castTo[bool]),
	dispatch.Case(castTo[scalar.Float16]),
	dispatch.Case(castTo[scalar.BrainFloat16]),
))

// Cast converts x to scalar type to. Casting to x's own type returns a copy.
// Integral to integral casts are exact up to Go wrap-around; every other
// pair goes through float64.
func (k *CPU) Cast(x *tensor.RawTensor, to scalar.ScalarType) (*tensor.RawTensor, error) {
	res, err := castFromOp.WithPlatform(k.platform).On(x, castArgs{x: x, to: to, k: k})
	if err != nil {
		return nil, err
	}
	return res.out, res.err
}

func castFrom[S scalar.Scalar](bd dispatch.Binding[S], in castArgs) castResult {
	src := bd.View(in.x.Data())
	conv := toFloat64[S]()
	cs := castSource{
		x:       in.x,
		n:       len(src),
		floatAt: func(i int) float64 { return conv(src[i]) },
		par:     in.k.par,
	}
	if toInt := toInt64[S](); toInt != nil {
		cs.intAt = func(i int) int64 { return toInt(src[i]) }
	}
	return castInto(in, cs)
}

func castFromBFloat16(_ dispatch.Binding[scalar.BrainFloat16], in castArgs) castResult {
	src := bfloat16.DecodeFloat32(in.x.Data())
	return castInto(in, castSource{
		x:       in.x,
		n:       len(src),
		floatAt: func(i int) float64 { return float64(src[i]) },
		par:     in.k.par,
	})
}

func castInto(in castArgs, cs castSource) castResult {
	if in.to == in.x.ScalarType() {
		return castResult{out: in.x.Copy()}
	}
	out, err := castToOp.WithPlatform(in.k.platform).Dispatch(in.to, cs)
	return castResult{out: out, err: err}
}

func castTo[D scalar.Scalar](bd dispatch.Binding[D], cs castSource) *tensor.RawTensor {
	out := empty(cs.x, bd.Tag)
	dst := bd.View(out.Data())
	if fromInt := fromInt64[D](); fromInt != nil && cs.intAt != nil {
		parallel.Range(cs.n, cs.par, func(lo, hi int) {
			for i := lo; i < hi; i++ {
				dst[i] = fromInt(cs.intAt(i))
			}
		})
		return out
	}
	conv := fromFloat64[D]()
	parallel.Range(cs.n, cs.par, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			dst[i] = conv(cs.floatAt(i))
		}
	})
	return out
}
