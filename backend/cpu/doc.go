// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides reference CPU kernels built on scalar type dispatch.
//
// Each kernel accepts a fixed set of scalar types and fails with
// "<op> not implemented for '<type>'" for any other:
//
//	Add         AllTypesAndComplex + Half, BFloat16
//	Sum         AllTypes + Half, BFloat16, Bool
//	Fill        AllTypesAndComplex + Bool, Half, BFloat16
//	MulScalar   FloatingTypes + Half
//	Abs         FloatingAndComplexTypes
//	BitwiseNot  IntegralTypes + Bool
//	Cast        AllTypes + Bool, Half, BFloat16, on both sides
//	Quantize    QIntTypes
//	Dequantize  QIntTypes
//
// Kernels split work across goroutines according to BORN_NUM_THREADS and
// BORN_PARALLEL_MIN.
package cpu
