// SPDX-License-Identifier: MIT

package scalar

import (
	"math"

	"github.com/cockroachdb/apd/v3"
)

// DefaultDecimalPrecision is the number of significant digits used when
// NewDecimal is given zero.
const DefaultDecimalPrecision = 34

// Decimal is the arbitrary-precision decimal algebra over *apd.Decimal.
//
// The context has no traps: x/0 is ±Infinity, 0/0 and √(−1) are NaN, and
// conditions are never turned into errors. Every operation allocates its
// result.
type Decimal struct {
	ctx *apd.Context
}

var (
	_ Algebra[*apd.Decimal]     = Decimal{}
	_ Ordered[*apd.Decimal]     = Decimal{}
	_ Rounding[*apd.Decimal]    = Decimal{}
	_ Exponential[*apd.Decimal] = Decimal{}
	_ Hyperbolic[*apd.Decimal]  = Decimal{}
)

// NewDecimal returns a decimal algebra rounding to precision significant
// digits (DefaultDecimalPrecision when zero).
func NewDecimal(precision uint32) Decimal {
	if precision == 0 {
		precision = DefaultDecimalPrecision
	}
	ctx := apd.BaseContext.WithPrecision(precision)
	ctx.Traps = 0

	return Decimal{ctx: ctx}
}

// Precision reports the configured significant digits.
func (d Decimal) Precision() uint32 { return d.context().Precision }

func (d Decimal) context() *apd.Context {
	if d.ctx == nil {
		// zero value: fall back to the default precision
		return NewDecimal(0).ctx
	}
	return d.ctx
}

func (d Decimal) unary(op func(r, x *apd.Decimal) (apd.Condition, error), a *apd.Decimal) *apd.Decimal {
	r := new(apd.Decimal)
	_, _ = op(r, a)
	return r
}

func (d Decimal) binary(op func(r, x, y *apd.Decimal) (apd.Condition, error), a, b *apd.Decimal) *apd.Decimal {
	r := new(apd.Decimal)
	_, _ = op(r, a, b)
	return r
}

func decimalNaN() *apd.Decimal { return &apd.Decimal{Form: apd.NaN} }

func (Decimal) Zero() *apd.Decimal { return apd.New(0, 0) }
func (Decimal) One() *apd.Decimal  { return apd.New(1, 0) }

func (d Decimal) Add(a, b *apd.Decimal) *apd.Decimal { return d.binary(d.context().Add, a, b) }
func (d Decimal) Sub(a, b *apd.Decimal) *apd.Decimal { return d.binary(d.context().Sub, a, b) }
func (d Decimal) Mul(a, b *apd.Decimal) *apd.Decimal { return d.binary(d.context().Mul, a, b) }
func (d Decimal) Div(a, b *apd.Decimal) *apd.Decimal { return d.binary(d.context().Quo, a, b) }
func (d Decimal) Neg(a *apd.Decimal) *apd.Decimal    { return d.unary(d.context().Neg, a) }
func (d Decimal) Abs(a *apd.Decimal) *apd.Decimal    { return d.unary(d.context().Abs, a) }
func (d Decimal) Sqrt(a *apd.Decimal) *apd.Decimal   { return d.unary(d.context().Sqrt, a) }

func (Decimal) Conj(a *apd.Decimal) *apd.Decimal { return new(apd.Decimal).Set(a) }

func (d Decimal) IsNaN(a *apd.Decimal) bool {
	return a.Form == apd.NaN || a.Form == apd.NaNSignaling
}

func (Decimal) IsInf(a *apd.Decimal) bool { return a.Form == apd.Infinite }
func (Decimal) IsZero(a *apd.Decimal) bool {
	return a.Form == apd.Finite && a.IsZero()
}

// Equal compares numerically (1.0 == 1.00); NaN is unequal to everything.
func (d Decimal) Equal(a, b *apd.Decimal) bool {
	if d.IsNaN(a) || d.IsNaN(b) {
		return false
	}
	return a.Cmp(b) == 0
}

func (d Decimal) Less(a, b *apd.Decimal) bool {
	if d.IsNaN(a) || d.IsNaN(b) {
		return false
	}
	return a.Cmp(b) < 0
}

func (Decimal) Magnitude(a *apd.Decimal) float64 {
	f, err := a.Float64()
	if err != nil {
		return math.NaN()
	}
	return math.Abs(f)
}

func (Decimal) FromInt64(n int64) *apd.Decimal { return apd.New(n, 0) }

func (Decimal) FromFloat64(f float64) *apd.Decimal {
	r, err := new(apd.Decimal).SetFloat64(f)
	if err != nil {
		return decimalNaN()
	}
	return r
}

func (d Decimal) Close(a, b *apd.Decimal, tol float64) bool {
	return closeTo[*apd.Decimal](d, a, b, tol)
}

func (d Decimal) Parse(s string) (*apd.Decimal, error) {
	r, _, err := apd.NewFromString(trimToken(s))
	if err != nil {
		return d.Zero(), parseErrorf("Decimal.Parse", s, err)
	}
	return r, nil
}

func (Decimal) Format(a *apd.Decimal) string { return a.String() }

// ---------- Rounding ----------

func (d Decimal) Floor(a *apd.Decimal) *apd.Decimal { return d.unary(d.context().Floor, a) }
func (d Decimal) Ceil(a *apd.Decimal) *apd.Decimal  { return d.unary(d.context().Ceil, a) }

func (d Decimal) roundWith(mode apd.Rounder, a *apd.Decimal) *apd.Decimal {
	ctx := *d.context()
	ctx.Rounding = mode
	return d.unary(ctx.RoundToIntegralValue, a)
}

// Round rounds half away from zero.
func (d Decimal) Round(a *apd.Decimal) *apd.Decimal { return d.roundWith(apd.RoundHalfUp, a) }
func (d Decimal) Trunc(a *apd.Decimal) *apd.Decimal { return d.roundWith(apd.RoundDown, a) }

// ---------- Exponential / Hyperbolic ----------

func (d Decimal) Exp(a *apd.Decimal) *apd.Decimal { return d.unary(d.context().Exp, a) }
func (d Decimal) Log(a *apd.Decimal) *apd.Decimal { return d.unary(d.context().Ln, a) }

// Pow returns a^b; 0^0 is NaN.
func (d Decimal) Pow(a, b *apd.Decimal) *apd.Decimal {
	if d.IsZero(a) && d.IsZero(b) {
		return decimalNaN()
	}
	return d.binary(d.context().Pow, a, b)
}

func (d Decimal) Sinh(a *apd.Decimal) *apd.Decimal {
	ep, en := d.Exp(a), d.Exp(d.Neg(a))
	return d.Div(d.Sub(ep, en), apd.New(2, 0))
}

func (d Decimal) Cosh(a *apd.Decimal) *apd.Decimal {
	ep, en := d.Exp(a), d.Exp(d.Neg(a))
	return d.Div(d.Add(ep, en), apd.New(2, 0))
}

func (d Decimal) Tanh(a *apd.Decimal) *apd.Decimal {
	ep, en := d.Exp(a), d.Exp(d.Neg(a))
	return d.Div(d.Sub(ep, en), d.Add(ep, en))
}

// Constants rounds the stored expansions to the context precision.
func (d Decimal) Constants() Constants[*apd.Decimal] {
	round := func(s string) *apd.Decimal {
		x, _, _ := apd.NewFromString(s)
		return d.unary(d.context().Round, x)
	}
	return Constants[*apd.Decimal]{Pi: round(piDigits), E: round(eDigits), Gamma: round(gammaDigits)}
}
