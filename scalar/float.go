// SPDX-License-Identifier: MIT

package scalar

import (
	"math"
	"strconv"
	"unsafe"

	"github.com/cockroachdb/errors"
	"golang.org/x/exp/constraints"
)

// Float is the IEEE-754 algebra over float32 or float64. The zero value is
// ready to use.
type Float[F constraints.Float] struct{}

// Float32 is the single-precision algebra.
type Float32 = Float[float32]

// Float64 is the double-precision algebra.
type Float64 = Float[float64]

var (
	_ Real[float64]       = Float64{}
	_ Real[float32]       = Float32{}
	_ Constanter[float64] = Float64{}
)

func (Float[F]) bitSize() int {
	var z F
	return int(unsafe.Sizeof(z)) * 8
}

func (Float[F]) Zero() F         { return 0 }
func (Float[F]) One() F          { return 1 }
func (Float[F]) Add(a, b F) F    { return a + b }
func (Float[F]) Sub(a, b F) F    { return a - b }
func (Float[F]) Mul(a, b F) F    { return a * b }
func (Float[F]) Div(a, b F) F    { return a / b }
func (Float[F]) Neg(a F) F       { return -a }
func (Float[F]) Conj(a F) F      { return a }
func (Float[F]) IsZero(a F) bool { return a == 0 }

// Equal is IEEE equality: NaN is unequal to itself.
func (Float[F]) Equal(a, b F) bool { return a == b }

func (Float[F]) Abs(a F) F               { return F(math.Abs(float64(a))) }
func (Float[F]) Magnitude(a F) float64   { return math.Abs(float64(a)) }
func (Float[F]) Sqrt(a F) F              { return F(math.Sqrt(float64(a))) }
func (Float[F]) FromInt64(n int64) F     { return F(n) }
func (Float[F]) FromFloat64(f float64) F { return F(f) }
func (Float[F]) Float64(a F) float64     { return float64(a) }
func (Float[F]) IsNaN(a F) bool          { return a != a }
func (Float[F]) IsInf(a F) bool          { return math.IsInf(float64(a), 0) }

func (f Float[F]) Close(a, b F, tol float64) bool { return closeTo[F](f, a, b, tol) }

// Parse accepts anything strconv.ParseFloat does, including "NaN" and "Inf".
func (f Float[F]) Parse(s string) (F, error) {
	tok := trimToken(s)
	v, err := strconv.ParseFloat(tok, f.bitSize())
	if err != nil {
		// overflow still yields ±Inf
		if errors.Is(err, strconv.ErrRange) {
			return F(v), nil
		}
		return 0, parseErrorf("Float.Parse", s, err)
	}

	return F(v), nil
}

func (f Float[F]) Format(a F) string {
	return strconv.FormatFloat(float64(a), 'g', -1, f.bitSize())
}

// Ordered / Rounding

func (Float[F]) Less(a, b F) bool { return a < b }
func (Float[F]) Floor(a F) F      { return F(math.Floor(float64(a))) }
func (Float[F]) Ceil(a F) F       { return F(math.Ceil(float64(a))) }
func (Float[F]) Round(a F) F      { return F(math.Round(float64(a))) }
func (Float[F]) Trunc(a F) F      { return F(math.Trunc(float64(a))) }

// Elementary

func (Float[F]) Exp(a F) F { return F(math.Exp(float64(a))) }
func (Float[F]) Log(a F) F { return F(math.Log(float64(a))) }

// Pow returns a^b; 0^0 is NaN.
func (Float[F]) Pow(a, b F) F {
	if a == 0 && b == 0 {
		return F(math.NaN())
	}
	return F(math.Pow(float64(a), float64(b)))
}

func (Float[F]) Sin(a F) F         { return F(math.Sin(float64(a))) }
func (Float[F]) Cos(a F) F         { return F(math.Cos(float64(a))) }
func (Float[F]) Tan(a F) F         { return F(math.Tan(float64(a))) }
func (Float[F]) Sinh(a F) F        { return F(math.Sinh(float64(a))) }
func (Float[F]) Cosh(a F) F        { return F(math.Cosh(float64(a))) }
func (Float[F]) Tanh(a F) F        { return F(math.Tanh(float64(a))) }
func (Float[F]) Atan2(y, x F) F    { return F(math.Atan2(float64(y), float64(x))) }
func (Float[F]) Hypot(a, b F) F    { return F(math.Hypot(float64(a), float64(b))) }
func (Float[F]) Constants() Constants[F] {
	return Constants[F]{Pi: F(math.Pi), E: F(math.E), Gamma: F(EulerGamma)}
}
