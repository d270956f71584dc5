// SPDX-License-Identifier: MIT

package scalar_test

import (
	"math/big"
	"strings"
	"testing"

	"github.com/cockroachdb/apd/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvalg"
	"github.com/katalvlaran/lvalg/scalar"
)

type bigRat = big.Rat

func rat(t *testing.T, s string) *big.Rat {
	t.Helper()
	r, err := scalar.Rational{}.Parse(s)
	require.NoError(t, err)
	return r
}

func TestRational_ExactArithmetic(t *testing.T) {
	q := scalar.Rational{}

	sum := q.Add(rat(t, "1/3"), rat(t, "1/6"))
	assert.Equal(t, "1/2", q.Format(sum))
	assert.Equal(t, "3", q.Format(q.Mul(rat(t, "3/2"), rat(t, "2"))))
	assert.Equal(t, "1/4", q.Format(rat(t, "0.25")))
	assert.True(t, q.Less(rat(t, "-1/2"), rat(t, "1/3")))
}

func TestRational_OperandsAreNotMutated(t *testing.T) {
	q := scalar.Rational{}
	a, b := rat(t, "2/3"), rat(t, "5/7")

	_ = q.Add(a, b)
	_ = q.Mul(a, b)
	_ = q.Neg(a)
	assert.Equal(t, "2/3", a.RatString())
	assert.Equal(t, "5/7", b.RatString())
}

func TestRational_Rounding(t *testing.T) {
	q := scalar.Rational{}
	cases := []struct {
		in                        string
		floor, ceil, round, trunc string
	}{
		{"7/2", "3", "4", "4", "3"},
		{"-7/2", "-4", "-3", "-4", "-3"},
		{"-5/3", "-2", "-1", "-2", "-1"},
		{"4", "4", "4", "4", "4"},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			x := rat(t, tc.in)
			assert.Equal(t, tc.floor, q.Format(q.Floor(x)))
			assert.Equal(t, tc.ceil, q.Format(q.Ceil(x)))
			assert.Equal(t, tc.round, q.Format(q.Round(x)))
			assert.Equal(t, tc.trunc, q.Format(q.Trunc(x)))
		})
	}
}

func TestRational_SqrtAndPanics(t *testing.T) {
	q := scalar.Rational{}
	assert.Equal(t, "3/2", q.Format(q.Sqrt(rat(t, "9/4"))))
	assert.InDelta(t, 1.41421356, q.Magnitude(q.Sqrt(rat(t, "2"))), 1e-8)

	assert.Panics(t, func() { q.Div(q.One(), q.Zero()) })
	assert.Panics(t, func() { q.Sqrt(rat(t, "-1")) })

	_, err := q.Parse("1/0x")
	assert.ErrorIs(t, err, lvalg.ErrParse)
}

func TestDecimal_PrecisionAndSpecialValues(t *testing.T) {
	d := scalar.NewDecimal(50)
	third := d.Div(d.One(), d.FromInt64(3))

	assert.Equal(t, uint32(50), d.Precision())
	assert.Equal(t, 50, strings.Count(d.Format(third), "3"))

	assert.True(t, d.IsInf(d.Div(d.One(), d.Zero())))
	assert.True(t, d.IsNaN(d.Div(d.Zero(), d.Zero())))
	assert.True(t, d.IsNaN(d.Sqrt(d.FromInt64(-1))))
	assert.True(t, d.IsNaN(d.Pow(d.Zero(), d.Zero())))
	assert.False(t, d.Equal(d.Div(d.Zero(), d.Zero()), d.Zero()))
}

func TestDecimal_Transcendentals(t *testing.T) {
	d := scalar.NewDecimal(40)
	x, err := d.Parse("1.25")
	require.NoError(t, err)

	assert.True(t, d.Close(x, d.Exp(d.Log(x)), 1e-30))
	assert.True(t, d.Close(d.One(), d.Sub(d.Mul(d.Cosh(x), d.Cosh(x)), d.Mul(d.Sinh(x), d.Sinh(x))), 1e-30))
	assert.True(t, d.Equal(d.FromInt64(2), d.Sqrt(d.FromInt64(4))))

	half := mustDec(t, "-1.5")
	assert.True(t, d.Equal(d.FromInt64(-2), d.Floor(half)))
	assert.True(t, d.Equal(d.FromInt64(-1), d.Ceil(half)))
	assert.True(t, d.Equal(d.FromInt64(-2), d.Round(half)))
	assert.True(t, d.Equal(d.FromInt64(-1), d.Trunc(half)))
	assert.Equal(t, "-1.5", half.String(), "operands stay untouched")

	pi := d.Constants().Pi
	assert.True(t, strings.HasPrefix(d.Format(pi), "3.14159265358979323846"))
}

func mustDec(t *testing.T, s string) *apd.Decimal {
	t.Helper()
	v, _, err := apd.NewFromString(s)
	require.NoError(t, err)
	return v
}
