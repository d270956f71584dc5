// SPDX-License-Identifier: MIT

package tensor_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvalg/tensor"
)

var sinkT *tensor.Tensor[float64]

func randTensor(b *testing.B, rank, dim int, seed int64) *tensor.Tensor[float64] {
	b.Helper()
	t, err := tensor.New[float64](f64, rank, dim)
	if err != nil {
		b.Fatal(err)
	}
	rng := rand.New(rand.NewSource(seed))
	raw := t.Storage().Raw()
	for i := range raw {
		raw[i] = rng.Float64()*2 - 1
	}
	return t
}

func BenchmarkContract(b *testing.B) {
	b.ReportAllocs()
	for _, dim := range []int{4, 8, 16} {
		b.Run(fmt.Sprintf("rank=3/dim=%d", dim), func(b *testing.B) {
			a := randTensor(b, 3, dim, 1337)
			out := tensor.Empty[float64](f64)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err := tensor.Contract(0, 2, a, out); err != nil {
					b.Fatal(err)
				}
			}
			sinkT = out
		})
	}
}

func BenchmarkOuterProduct(b *testing.B) {
	b.ReportAllocs()
	for _, dim := range []int{8, 32} {
		b.Run(fmt.Sprintf("dim=%d", dim), func(b *testing.B) {
			x := randTensor(b, 2, dim, 1)
			y := randTensor(b, 1, dim, 2)
			out := tensor.Empty[float64](f64)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err := tensor.OuterProduct(x, y, out); err != nil {
					b.Fatal(err)
				}
			}
			sinkT = out
		})
	}
}
