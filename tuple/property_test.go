// SPDX-License-Identifier: MIT

package tuple_test

import (
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/katalvlaran/lvalg/tuple"
)

// genTriple draws a rational 3-tuple with small integer components.
func genTriple() gopter.Gen {
	return gen.SliceOfN(3, gen.Int64Range(-9, 9)).Map(func(v []int64) *tuple.Tuple[*big.Rat] {
		c := make([]*big.Rat, len(v))
		for i, x := range v {
			c[i] = big.NewRat(x, 1)
		}
		return tuple.FromSlice[*big.Rat](rat, c)
	})
}

func TestTupleAlgebraLaws(t *testing.T) {
	alg, err := tuple.NewAlgebra[*big.Rat](rat, 3)
	if err != nil {
		t.Fatal(err)
	}
	properties := gopter.NewProperties(gopter.DefaultTestParameters())

	properties.Property("addition commutes", prop.ForAll(
		func(a, b *tuple.Tuple[*big.Rat]) bool {
			return alg.Equal(alg.Add(a, b), alg.Add(b, a))
		},
		genTriple(), genTriple(),
	))

	properties.Property("multiplication distributes over addition", prop.ForAll(
		func(a, b, c *tuple.Tuple[*big.Rat]) bool {
			lhs := alg.Mul(a, alg.Add(b, c))
			rhs := alg.Add(alg.Mul(a, b), alg.Mul(a, c))
			return alg.Equal(lhs, rhs)
		},
		genTriple(), genTriple(), genTriple(),
	))

	properties.Property("a − b + b = a", prop.ForAll(
		func(a, b *tuple.Tuple[*big.Rat]) bool {
			return alg.Equal(alg.Add(alg.Sub(a, b), b), a)
		},
		genTriple(), genTriple(),
	))

	properties.Property("free Add agrees with the algebra", prop.ForAll(
		func(a, b *tuple.Tuple[*big.Rat]) bool {
			out := tuple.Empty[*big.Rat](rat)
			return tuple.Add(a, b, out) == nil && tuple.Equal(out, alg.Add(a, b))
		},
		genTriple(), genTriple(),
	))

	properties.TestingRun(t)
}
