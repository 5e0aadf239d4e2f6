// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package cpu

import (
	"github.com/born-ml/dispatch/internal/kernels"
	"github.com/born-ml/dispatch/internal/parallel"
	"github.com/born-ml/dispatch/dispatch"
)

// Backend runs the reference kernels on the host.
type Backend = kernels.CPU

// New creates a CPU backend bound to the detected platform.
//
// Example:
//
//	import (
//	    "github.com/born-ml/dispatch/backend/cpu"
//	    "github.com/born-ml/dispatch/scalar"
//	    "github.com/born-ml/dispatch/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//	    x, _ := tensor.FromSlice(tensor.Shape{2}, []float32{1, 2})
//	    y, err := backend.Cast(x, scalar.Half)
//	}
func New() *Backend {
	return kernels.New()
}

// NewWithPlatform creates a CPU backend that checks scalar types against plat.
func NewWithPlatform(plat dispatch.Platform) *Backend {
	return kernels.NewWith(plat, parallel.DefaultConfig())
}

// ErrInvalidScale is returned for a non-positive or non-finite quantization scale.
var ErrInvalidScale = kernels.ErrInvalidScale
