// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package dispatch_test

import (
	"fmt"

	"github.com/born-ml/dispatch/dispatch"
	"github.com/born-ml/dispatch/scalar"
)

func describe[T scalar.Scalar](b dispatch.Binding[T], _ struct{}) string {
	var zero T
	return fmt.Sprintf("%s as %T", b.Tag, zero)
}

func Example() {
	p := dispatch.MustBuild(dispatch.BaseFloating, scalar.Half)
	body := dispatch.NewBody(
		dispatch.Case(describe[float64]),
		dispatch.Case(describe[float32]),
		dispatch.Case(describe[scalar.Float16]),
	)
	op := dispatch.MustBind("describe", p, body)

	for _, t := range []scalar.ScalarType{scalar.Double, scalar.Half, scalar.Long} {
		s, err := op.Dispatch(t, struct{}{})
		if err != nil {
			fmt.Println(err)
			continue
		}
		fmt.Println(s)
	}
	// Output:
	// Double as float64
	// Half as float16.Float16
	// describe not implemented for 'Long'
}

func ExampleAllTypes() {
	p, err := dispatch.AllTypes(scalar.Half, scalar.Bool)
	if err != nil {
		panic(err)
	}
	fmt.Println(p.Name(), p.Len())

	_, err = dispatch.AllTypes(scalar.Float)
	fmt.Println(err)
	// Output:
	// AllTypesAnd2(Half, Bool) 9
	// profile AllTypes: scalar type already in profile: Float
}

func ExampleReport() {
	fmt.Println(dispatch.Report("index_select", "ComplexHalf"))
	// Output: index_select not implemented for 'ComplexHalf'
}
