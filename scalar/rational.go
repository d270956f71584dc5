// SPDX-License-Identifier: MIT

package scalar

import (
	"math"
	"math/big"
)

// Rational is the exact rational field over *big.Rat. Every operation
// allocates its result; operands are never modified.
//
// Rationals cannot represent NaN or Infinity: Div by zero panics exactly as
// big.Rat.Quo does, and FromFloat64 panics on a non-finite input. Kernels
// check IsZero on pivots before dividing, so a singular matrix surfaces as
// lvalg.ErrSingular rather than a panic.
type Rational struct{}

var (
	_ Algebra[*big.Rat]    = Rational{}
	_ Ordered[*big.Rat]    = Rational{}
	_ Rounding[*big.Rat]   = Rational{}
	_ Constanter[*big.Rat] = Rational{}
)

const panicRationalNonFinite = "scalar.Rational: cannot represent NaN or Inf"
const panicRationalNegativeSqrt = "scalar.Rational: square root of a negative value"

func (Rational) Zero() *big.Rat        { return new(big.Rat) }
func (Rational) One() *big.Rat         { return big.NewRat(1, 1) }
func (Rational) Add(a, b *big.Rat) *big.Rat { return new(big.Rat).Add(a, b) }
func (Rational) Sub(a, b *big.Rat) *big.Rat { return new(big.Rat).Sub(a, b) }
func (Rational) Mul(a, b *big.Rat) *big.Rat { return new(big.Rat).Mul(a, b) }
func (Rational) Div(a, b *big.Rat) *big.Rat { return new(big.Rat).Quo(a, b) }
func (Rational) Neg(a *big.Rat) *big.Rat    { return new(big.Rat).Neg(a) }
func (Rational) Conj(a *big.Rat) *big.Rat   { return new(big.Rat).Set(a) }
func (Rational) IsZero(a *big.Rat) bool     { return a.Sign() == 0 }
func (Rational) Equal(a, b *big.Rat) bool   { return a.Cmp(b) == 0 }
func (Rational) Abs(a *big.Rat) *big.Rat    { return new(big.Rat).Abs(a) }
func (Rational) Less(a, b *big.Rat) bool    { return a.Cmp(b) < 0 }
func (Rational) IsNaN(*big.Rat) bool        { return false }
func (Rational) IsInf(*big.Rat) bool        { return false }
func (Rational) FromInt64(n int64) *big.Rat { return new(big.Rat).SetInt64(n) }

func (Rational) Magnitude(a *big.Rat) float64 {
	f, _ := a.Float64()
	return math.Abs(f)
}

func (Rational) FromFloat64(f float64) *big.Rat {
	r := new(big.Rat).SetFloat64(f)
	if r == nil {
		panic(panicRationalNonFinite)
	}
	return r
}

// Sqrt is exact when numerator and denominator are perfect squares and
// falls back to the nearest float64 root otherwise.
func (q Rational) Sqrt(a *big.Rat) *big.Rat {
	switch a.Sign() {
	case 0:
		return new(big.Rat)
	case -1:
		panic(panicRationalNegativeSqrt)
	}
	num := new(big.Int).Sqrt(a.Num())
	den := new(big.Int).Sqrt(a.Denom())
	if new(big.Int).Mul(num, num).Cmp(a.Num()) == 0 && new(big.Int).Mul(den, den).Cmp(a.Denom()) == 0 {
		return new(big.Rat).SetFrac(num, den)
	}
	f, _ := a.Float64()
	return q.FromFloat64(math.Sqrt(f))
}

func (q Rational) Close(a, b *big.Rat, tol float64) bool { return closeTo[*big.Rat](q, a, b, tol) }

// Parse accepts "p/q", integers and finite decimals ("0.25", "1e-3").
func (Rational) Parse(s string) (*big.Rat, error) {
	r, ok := new(big.Rat).SetString(trimToken(s))
	if !ok {
		return new(big.Rat), parseErrorf("Rational.Parse", s, nil)
	}
	return r, nil
}

// Format renders "p/q", or "p" for integers.
func (Rational) Format(a *big.Rat) string { return a.RatString() }

func (Rational) Floor(a *big.Rat) *big.Rat {
	// Denom is always positive, so Euclidean Div rounds toward -inf.
	return new(big.Rat).SetInt(new(big.Int).Div(a.Num(), a.Denom()))
}

func (q Rational) Ceil(a *big.Rat) *big.Rat {
	return q.Neg(q.Floor(q.Neg(a)))
}

func (Rational) Trunc(a *big.Rat) *big.Rat {
	return new(big.Rat).SetInt(new(big.Int).Quo(a.Num(), a.Denom()))
}

// Round rounds half away from zero.
func (q Rational) Round(a *big.Rat) *big.Rat {
	half := big.NewRat(1, 2)
	if a.Sign() < 0 {
		return q.Neg(q.Floor(q.Add(q.Neg(a), half)))
	}
	return q.Floor(q.Add(a, half))
}

func (Rational) Constants() Constants[*big.Rat] {
	parse := func(s string) *big.Rat {
		r, _ := new(big.Rat).SetString(s[:40])
		return r
	}
	return Constants[*big.Rat]{Pi: parse(piDigits), E: parse(eDigits), Gamma: parse(gammaDigits)}
}
