// Package kernels implements reference CPU kernels on top of scalar type
// dispatch. Each kernel is a single generic body bound to a profile.
package kernels

import (
	"github.com/born-ml/dispatch/internal/capability"
	"github.com/born-ml/dispatch/internal/parallel"
	"github.com/born-ml/dispatch/internal/scalar"
	"github.com/born-ml/dispatch/internal/tensor"
)

// CPU runs kernels on the host.
type CPU struct {
	platform capability.Platform
	par      parallel.Config
}

// New returns kernels bound to the detected platform and the parallel
// configuration from the environment.
func New() *CPU {
	return NewWith(capability.Default(), parallel.DefaultConfig())
}

// NewWith returns kernels bound to an explicit platform and parallel configuration.
func NewWith(plat capability.Platform, par parallel.Config) *CPU {
	return &CPU{platform: plat, par: par}
}

// Platform returns the platform capabilities the kernels check against.
func (k *CPU) Platform() capability.Platform { return k.platform }

// unary is the argument of single-input bodies.
type unary struct {
	x   *tensor.RawTensor
	par parallel.Config
}

// binary is the argument of two-input bodies.
type binary struct {
	a, b *tensor.RawTensor
	par  parallel.Config
}

// scaled is the argument of bodies taking a tensor and a scalar operand.
type scaled struct {
	x   *tensor.RawTensor
	v   float64
	par parallel.Config
}

// empty returns a zeroed tensor shaped like like. The shape of an existing
// tensor is always valid, so NewRaw cannot fail here.
func empty(like *tensor.RawTensor, dtype scalar.ScalarType) *tensor.RawTensor {
	out, err := like.Empty(dtype)
	if err != nil {
		panic(err)
	}
	return out
}
