// SPDX-License-Identifier: MIT
package amplitude_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/katalvlaran/kmatrix/amplitude"
)

// sink to defeat dead-code elimination
var sinkAmp complex128

func BenchmarkPrecalculate_F0(b *testing.B) {
	ds := makeDataset(4096, 1)
	for _, w := range []int{1, 4} {
		b.Run(fmt.Sprintf("workers=%d", w), func(b *testing.B) {
			k, err := amplitude.NewF0(0, amplitude.WithWorkers(w))
			if err != nil {
				b.Fatalf("NewF0 failed: %v", err)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err := k.Precalculate(context.Background(), ds); err != nil {
					b.Fatalf("Precalculate failed: %v", err)
				}
			}
		})
	}
}

func BenchmarkCalculate_F0(b *testing.B) {
	ds := makeDataset(1024, 2)
	k, err := amplitude.NewF0(0)
	if err != nil {
		b.Fatalf("NewF0 failed: %v", err)
	}
	if err := k.Precalculate(context.Background(), ds); err != nil {
		b.Fatalf("Precalculate failed: %v", err)
	}
	params := randomParams(10, 3)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		amp, err := k.Calculate(params, &ds.Events[i%ds.Len()])
		if err != nil {
			b.Fatalf("Calculate failed: %v", err)
		}
		sinkAmp = amp
	}
}
