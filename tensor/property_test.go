// SPDX-License-Identifier: MIT

package tensor_test

import (
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/katalvlaran/lvalg/tensor"
)

type bigRat = big.Rat

// genTensor draws a Cartesian tensor with small integer entries so every
// identity below holds exactly in float64.
func genTensor(rank, dim int) gopter.Gen {
	n := 1
	for i := 0; i < rank; i++ {
		n *= dim
	}
	return gen.SliceOfN(n, gen.IntRange(-9, 9)).Map(func(v []int) *tensor.Tensor[float64] {
		data := make([]float64, len(v))
		for i, x := range v {
			data[i] = float64(x)
		}
		t, _ := tensor.FromSlice[float64](f64, rank, dim, data)
		return t
	})
}

func TestTensorLaws(t *testing.T) {
	params := gopter.DefaultTestParameters()
	params.MinSuccessfulTests = 100
	properties := gopter.NewProperties(params)

	properties.Property("element-wise results keep the operand shape", prop.ForAll(
		func(a, b *tensor.Tensor[float64]) bool {
			c := out()
			if err := tensor.Add(a, b, c); err != nil {
				return false
			}
			return c.Rank() == a.Rank() && c.Dim() == a.Dim() && c.Len() == a.Len()
		},
		genTensor(2, 3), genTensor(2, 3),
	))

	properties.Property("outer product adds ranks, contraction removes two", prop.ForAll(
		func(a, b *tensor.Tensor[float64]) bool {
			o, c := out(), out()
			if tensor.OuterProduct(a, b, o) != nil || o.Rank() != a.Rank()+b.Rank() {
				return false
			}
			if tensor.Contract(0, 2, o, c) != nil {
				return false
			}
			return c.Rank() == o.Rank()-2
		},
		genTensor(2, 2), genTensor(1, 2),
	))

	properties.Property("inner product equals contracted outer product", prop.ForAll(
		func(a, b *tensor.Tensor[float64], i, j int) bool {
			inner, o, manual := out(), out(), out()
			if tensor.InnerProduct(i, j, a, b, inner) != nil {
				return false
			}
			if tensor.OuterProduct(a, b, o) != nil || tensor.Contract(i, a.Rank()+j, o, manual) != nil {
				return false
			}
			return inner.Equal(manual)
		},
		genTensor(2, 3), genTensor(2, 3), gen.IntRange(0, 1), gen.IntRange(0, 1),
	))

	properties.Property("power(n) has rank n·rank(a)", prop.ForAll(
		func(a *tensor.Tensor[float64], n int) bool {
			p := out()
			if tensor.Power(n, a, p) != nil {
				return false
			}
			return p.Rank() == n*a.Rank()
		},
		genTensor(1, 2), gen.IntRange(0, 4),
	))

	properties.Property("transpose twice is identity", prop.ForAll(
		func(a *tensor.Tensor[float64]) bool {
			b := out()
			if tensor.Transpose(0, 2, a, b) != nil || tensor.Transpose(0, 2, b, b) != nil {
				return false
			}
			return b.Equal(a)
		},
		genTensor(3, 2),
	))

	properties.TestingRun(t)
}
