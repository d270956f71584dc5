// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/katalvlaran/lvalg/matrix"
)

// genRat draws an n×n rational matrix with small integer entries.
func genRat(n int) gopter.Gen {
	return gen.SliceOfN(n*n, gen.Int64Range(-6, 6)).Map(func(v []int64) *matrix.Dense[*big.Rat] {
		data := make([]*big.Rat, len(v))
		for i, x := range v {
			data[i] = big.NewRat(x, 1)
		}
		m, _ := matrix.FromSlice[*big.Rat](rat, n, n, data)
		return m
	})
}

func TestMatrixLaws(t *testing.T) {
	params := gopter.DefaultTestParameters()
	params.MinSuccessfulTests = 100
	properties := gopter.NewProperties(params)

	properties.Property("transpose is an involution", prop.ForAll(
		func(a *matrix.Dense[*big.Rat]) bool {
			once, twice := OutRat(), OutRat()
			return matrix.Transpose(a, once) == nil &&
				matrix.Transpose(once, twice) == nil &&
				matrix.Equal(a, twice)
		},
		genRat(3),
	))

	properties.Property("(ab)ᵀ = bᵀaᵀ", prop.ForAll(
		func(a, b *matrix.Dense[*big.Rat]) bool {
			ab, abT, aT, bT, rhs := OutRat(), OutRat(), OutRat(), OutRat(), OutRat()
			if matrix.Mul(a, b, ab) != nil || matrix.Transpose(ab, abT) != nil {
				return false
			}
			if matrix.Transpose(a, aT) != nil || matrix.Transpose(b, bT) != nil || matrix.Mul(bT, aT, rhs) != nil {
				return false
			}
			return matrix.Equal(abT, rhs)
		},
		genRat(3), genRat(3),
	))

	properties.Property("det(ab) = det(a)·det(b)", prop.ForAll(
		func(a, b *matrix.Dense[*big.Rat]) bool {
			ab := OutRat()
			if matrix.Mul(a, b, ab) != nil {
				return false
			}
			da, err1 := matrix.Determinant(a)
			db, err2 := matrix.Determinant(b)
			dab, err3 := matrix.Determinant(ab)
			if err1 != nil || err2 != nil || err3 != nil {
				return false
			}
			return new(big.Rat).Mul(da, db).Cmp(dab) == 0
		},
		genRat(3), genRat(3),
	))

	properties.Property("a·a⁻¹ = I exactly whenever det(a) ≠ 0", prop.ForAll(
		func(a *matrix.Dense[*big.Rat]) bool {
			det, err := matrix.Determinant(a)
			if err != nil {
				return false
			}
			inv := OutRat()
			err = matrix.Invert(a, inv)
			if det.Sign() == 0 {
				return err != nil
			}
			prod := OutRat()
			if err != nil || matrix.Mul(a, inv, prod) != nil {
				return false
			}
			id, _ := matrix.NewIdentity[*big.Rat](rat, 3)
			return matrix.Equal(id, prod)
		},
		genRat(3),
	))

	properties.Property("power(m+n) = power(m)·power(n)", prop.ForAll(
		func(a *matrix.Dense[*big.Rat], m, n int) bool {
			pm, pn, pmn, prod := OutRat(), OutRat(), OutRat(), OutRat()
			if matrix.Power(m, a, pm) != nil || matrix.Power(n, a, pn) != nil || matrix.Power(m+n, a, pmn) != nil {
				return false
			}
			return matrix.Mul(pm, pn, prod) == nil && matrix.Equal(pmn, prod)
		},
		genRat(2), gen.IntRange(0, 4), gen.IntRange(0, 4),
	))

	properties.TestingRun(t)
}
