// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package dispatch selects the specialization of a generic kernel body for a
// runtime scalar type.
//
// # Overview
//
// A kernel is written once as a generic function over its element type and
// instantiated for each scalar type it accepts. A Profile names the accepted
// types; Dispatch maps a runtime tag to the matching instantiation:
//
//	func sum[T scalar.Real](b dispatch.Binding[T], data []byte) float64 {
//	    var acc float64
//	    for _, v := range b.View(data) {
//	        acc += float64(v)
//	    }
//	    return acc
//	}
//
//	var sumOp = dispatch.MustBind("sum", dispatch.FloatingTypesProfile, dispatch.NewBody(
//	    dispatch.Case(sum[float64]),
//	    dispatch.Case(sum[float32]),
//	))
//
//	total, err := sumOp.Dispatch(x.ScalarType(), x.Data())
//
// A tag outside the profile yields an error whose message is
// "<op> not implemented for '<type>'"; the body is not run.
//
// # Profiles
//
// Base sets are extended with up to three extra scalar types:
//
//	p, err := dispatch.AllTypes(scalar.Half, scalar.Bool)
//
// A duplicate extra fails when the profile is built, never at dispatch time.
//
// # Platform Capabilities
//
// BFloat16 additionally requires platform support, detected on first use.
// Set BORN_BFLOAT16=1 or BORN_BFLOAT16=0 to override detection.
package dispatch
