// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the raw tensor type consumed by the CPU kernels.
//
// Example:
//
//	x, err := tensor.FromSlice(tensor.Shape{2, 2}, []float64{1, 2, 3, 4})
//	values, err := tensor.View[float64](x)
package tensor

import (
	"github.com/born-ml/dispatch/internal/tensor"
	"github.com/born-ml/dispatch/scalar"
)

// Type aliases for public API

// Shape represents the dimensions of a tensor.
type Shape = tensor.Shape

// RawTensor is a contiguous tensor whose element type is known at runtime.
type RawTensor = tensor.RawTensor

// NewRaw allocates a zeroed tensor.
func NewRaw(shape Shape, dtype scalar.ScalarType) (*RawTensor, error) {
	return tensor.NewRaw(shape, dtype)
}

// FromSlice copies data into a new tensor.
func FromSlice[T scalar.Scalar](shape Shape, data []T) (*RawTensor, error) {
	return tensor.FromSlice(shape, data)
}

// View returns r's elements as []T without copying.
func View[T scalar.Scalar](r *RawTensor) ([]T, error) {
	return tensor.View[T](r)
}
