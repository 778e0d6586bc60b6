package trimat_test

import (
	"testing"

	"github.com/katalvlaran/alara/trimat"
)

func benchMatrix(n int) *trimat.Tri {
	m := trimat.Identity(n)
	for i := 0; i < n; i++ {
		for j := 0; j <= i; j++ {
			m.SetElem(i, j, 1.0/float64(i+j+1))
		}
	}
	return m
}

func BenchmarkMul(b *testing.B) {
	m := benchMatrix(25)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := m.Mul(m); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkPow(b *testing.B) {
	m := benchMatrix(25)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := m.Pow(1000); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRowSum(b *testing.B) {
	m := benchMatrix(25)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m.RowSum(24)
	}
}
