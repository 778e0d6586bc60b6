package kernel_test

import (
	"testing"

	"github.com/katalvlaran/alara/kernel"
)

var sinkF float64

func BenchmarkBateman(b *testing.B) {
	d := []float64{7e-4, 2e-4, 9e-3, 4e-2, 1e-1}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkF, _ = kernel.Bateman(4, 0, d, 5)
	}
}

func BenchmarkLaplaceInverseDegenerate(b *testing.B) {
	d := []float64{2e-2, 2e-2, 2e-2, 5e-3}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkF, _ = kernel.LaplaceInverse(3, 0, d, 40)
	}
}

func BenchmarkLaplaceExpansion(b *testing.B) {
	d := []float64{2e-3, 5e-4, 1e-4}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkF, _ = kernel.LaplaceExpansion(2, 0, d, 10)
	}
}
