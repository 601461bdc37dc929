// SPDX-License-Identifier: MIT
package amplitude_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/kmatrix/amplitude"
	"github.com/katalvlaran/kmatrix/dataset"
	"go-hep.org/x/hep/fmom"
)

// ExampleKMatrix shows the precalculate-once, calculate-often lifecycle.
func ExampleKMatrix() {
	// One event whose first two daughters have s = 1 GeV².
	ds := dataset.New([]dataset.Event{{
		Daughters: []fmom.PxPyPzE{
			fmom.NewPxPyPzE(0, 0, 0.3, 0.5),
			fmom.NewPxPyPzE(0, 0, -0.3, 0.5),
		},
	}})

	node, err := amplitude.NewA0(0, amplitude.WithWorkers(2))
	if err != nil {
		panic(err)
	}
	if err := node.Precalculate(context.Background(), ds); err != nil {
		panic(err)
	}
	fmt.Println(node.Parameters())

	amp, err := node.Calculate([]float64{1, 0, 0, 0}, &ds.Events[0])
	if err != nil {
		panic(err)
	}
	fmt.Printf("%.6f\n", amp)
	// Output:
	// [a0_980 re a0_980 im a0_1450 re a0_1450 im]
	// (0.483746+3.131694i)
}
