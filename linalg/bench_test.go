// SPDX-License-Identifier: MIT
// Benchmarks for the Dense kernels and the Matrix facade, using a
// deterministic random fill.

package linalg_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/econlab/linalg"
)

// benchSizes are the matrix sizes to benchmark.
var benchSizes = []int{16, 64, 128}

// sinks to defeat dead-code elimination
var (
	sinkD *linalg.Dense
	sinkM linalg.Matrix
	sinkV linalg.Vector
)

func randMatrix(n int, seed int64) linalg.Matrix {
	rng := rand.New(rand.NewSource(seed))
	m := make(linalg.Matrix, n)
	for i := range m {
		m[i] = make(linalg.Vector, n)
		for j := range m[i] {
			m[i][j] = rng.Float64()*2 - 1 // [-1,1]
		}
	}

	return m
}

func mustBenchDense(b *testing.B, n int, seed int64) *linalg.Dense {
	d, err := linalg.DenseOf(randMatrix(n, seed))
	if err != nil {
		b.Fatalf("DenseOf(%d): %v", n, err)
	}

	return d
}

func BenchmarkAdd(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x := mustBenchDense(b, n, 1337)
			y := mustBenchDense(b, n, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				d, err := linalg.Add(x, y)
				if err != nil {
					b.Fatal(err)
				}
				sinkD = d
			}
		})
	}
}

func BenchmarkMul(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x := mustBenchDense(b, n, 11)
			y := mustBenchDense(b, n, 22)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				d, err := linalg.Mul(x, y)
				if err != nil {
					b.Fatal(err)
				}
				sinkD = d
			}
		})
	}
}

func BenchmarkTranspose(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x := mustBenchDense(b, n, 7)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				d, err := linalg.Transpose(x)
				if err != nil {
					b.Fatal(err)
				}
				sinkD = d
			}
		})
	}
}

func BenchmarkMatVec(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x := mustBenchDense(b, n, 99)
			v := linalg.Ones(n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				y, err := linalg.MatVec(x, v)
				if err != nil {
					b.Fatal(err)
				}
				sinkV = y
			}
		})
	}
}

// BenchmarkMatrixMul measures the row-form facade, conversions included.
func BenchmarkMatrixMul(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x, y := randMatrix(n, 5), randMatrix(n, 6)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := x.Mul(y)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}
