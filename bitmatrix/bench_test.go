// Package bitmatrix_test provides benchmarks comparing the standard product
// with the Four Russians product, using deterministic random fill.
package bitmatrix_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/boolmat/bitmatrix"
)

// benchSizes are the matrix sizes to benchmark.
var benchSizes = []int{64, 256, 1024}

// sinkM defeats dead-code elimination.
var sinkM *bitmatrix.BitMatrix

func benchPair(b *testing.B, n int) (*bitmatrix.BitMatrix, *bitmatrix.BitMatrix) {
	b.Helper()
	rng := rand.New(rand.NewSource(int64(n)))
	return RandomMatrix(b, rng, n, n, 0.5), RandomMatrix(b, rng, n, n, 0.5)
}

func BenchmarkMul(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x, y := benchPair(b, n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := bitmatrix.Mul(x, y)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkMulFourRussians(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x, y := benchPair(b, n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := bitmatrix.MulFourRussians(x, y)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkAdd(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x, y := benchPair(b, n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := bitmatrix.Add(x, y)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}
