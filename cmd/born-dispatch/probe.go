package main

import (
	"fmt"

	"github.com/born-ml/dispatch/internal/dispatch"
	"github.com/born-ml/dispatch/internal/scalar"
)

type probeResult struct {
	tag    scalar.ScalarType
	goType string
	size   int
	stored string
}

func (r probeResult) String() string {
	s := fmt.Sprintf("%s -> %s (%d bytes)", r.tag, r.goType, r.size)
	if r.stored != "" {
		s += ", stored as " + r.stored
	}
	return s
}

func probe[T scalar.Scalar](b dispatch.Binding[T], _ struct{}) probeResult {
	var zero T
	return probeResult{tag: b.Tag, goType: fmt.Sprintf("%T", zero), size: b.Repr.Size}
}

func quantizedProbe[Q scalar.QuantizedInt[U], U scalar.Integer](b dispatch.QuantizedBinding[Q, U], _ struct{}) probeResult {
	var zero Q
	return probeResult{
		tag:    b.Tag,
		goType: fmt.Sprintf("%T", zero),
		size:   b.Repr.Size,
		stored: b.UnderlyingTag.String(),
	}
}

var probeBody = dispatch.NewBody(
	dispatch.Case(probe[uint8]),
	dispatch.Case(probe[int8]),
	dispatch.Case(probe[int16]),
	dispatch.Case(probe[int32]),
	dispatch.Case(probe[int64]),
	dispatch.Case(probe[scalar.Float16]),
	dispatch.Case(probe[float32]),
	dispatch.Case(probe[float64]),
	dispatch.Case(probe[scalar.Complex32]),
	dispatch.Case(probe[complex64]),
	dispatch.Case(probe[complex128]),
	dispatch.Case(probe[bool]),
	dispatch.Case(probe[scalar.Qint8]),
	dispatch.Case(probe[scalar.Quint8]),
	dispatch.Case(probe[scalar.Qint32]),
	dispatch.Case(probe[scalar.BrainFloat16]),
)

var quantizedProbeBody = dispatch.NewQuantizedBody(
	dispatch.QCase(quantizedProbe[scalar.Qint8, int8]),
	dispatch.QCase(quantizedProbe[scalar.Quint8, uint8]),
	dispatch.QCase(quantizedProbe[scalar.Qint32, int32]),
)
