// SPDX-License-Identifier: MIT

package scalar

import (
	"math"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/x448/float16"
)

// Half is the IEEE-754 binary16 algebra. Every operation is evaluated in
// float32 and rounded back to the nearest half (round-to-nearest-even), so
// overflow past 65504 saturates to ±Inf and NaN propagates.
type Half struct{}

var (
	_ Real[float16.Float16]       = Half{}
	_ Constanter[float16.Float16] = Half{}
)

func h(x float32) float16.Float16   { return float16.Fromfloat32(x) }
func hf(x float64) float16.Float16  { return float16.Fromfloat32(float32(x)) }
func f32(a float16.Float16) float32 { return a.Float32() }
func f64(a float16.Float16) float64 { return float64(a.Float32()) }

func (Half) Zero() float16.Float16                       { return h(0) }
func (Half) One() float16.Float16                        { return h(1) }
func (Half) Add(a, b float16.Float16) float16.Float16    { return h(f32(a) + f32(b)) }
func (Half) Sub(a, b float16.Float16) float16.Float16    { return h(f32(a) - f32(b)) }
func (Half) Mul(a, b float16.Float16) float16.Float16    { return h(f32(a) * f32(b)) }
func (Half) Div(a, b float16.Float16) float16.Float16    { return h(f32(a) / f32(b)) }
func (Half) Neg(a float16.Float16) float16.Float16       { return h(-f32(a)) }
func (Half) Conj(a float16.Float16) float16.Float16      { return a }
func (Half) IsZero(a float16.Float16) bool               { return f32(a) == 0 }
func (Half) Equal(a, b float16.Float16) bool             { return f32(a) == f32(b) }
func (Half) Abs(a float16.Float16) float16.Float16       { return hf(math.Abs(f64(a))) }
func (Half) Magnitude(a float16.Float16) float64         { return math.Abs(f64(a)) }
func (Half) Sqrt(a float16.Float16) float16.Float16      { return hf(math.Sqrt(f64(a))) }
func (Half) FromInt64(n int64) float16.Float16           { return h(float32(n)) }
func (Half) FromFloat64(f float64) float16.Float16       { return hf(f) }
func (Half) Float64(a float16.Float16) float64           { return f64(a) }
func (Half) IsNaN(a float16.Float16) bool                { return a.IsNaN() }
func (Half) IsInf(a float16.Float16) bool                { return a.IsInf(0) }
func (Half) Less(a, b float16.Float16) bool              { return f32(a) < f32(b) }
func (Half) Floor(a float16.Float16) float16.Float16     { return hf(math.Floor(f64(a))) }
func (Half) Ceil(a float16.Float16) float16.Float16      { return hf(math.Ceil(f64(a))) }
func (Half) Round(a float16.Float16) float16.Float16     { return hf(math.Round(f64(a))) }
func (Half) Trunc(a float16.Float16) float16.Float16     { return hf(math.Trunc(f64(a))) }
func (Half) Exp(a float16.Float16) float16.Float16       { return hf(math.Exp(f64(a))) }
func (Half) Log(a float16.Float16) float16.Float16       { return hf(math.Log(f64(a))) }
func (Half) Sin(a float16.Float16) float16.Float16       { return hf(math.Sin(f64(a))) }
func (Half) Cos(a float16.Float16) float16.Float16       { return hf(math.Cos(f64(a))) }
func (Half) Tan(a float16.Float16) float16.Float16       { return hf(math.Tan(f64(a))) }
func (Half) Sinh(a float16.Float16) float16.Float16      { return hf(math.Sinh(f64(a))) }
func (Half) Cosh(a float16.Float16) float16.Float16      { return hf(math.Cosh(f64(a))) }
func (Half) Tanh(a float16.Float16) float16.Float16      { return hf(math.Tanh(f64(a))) }
func (Half) Atan2(y, x float16.Float16) float16.Float16  { return hf(math.Atan2(f64(y), f64(x))) }
func (Half) Hypot(a, b float16.Float16) float16.Float16  { return hf(math.Hypot(f64(a), f64(b))) }

// Pow returns a^b; 0^0 is NaN.
func (Half) Pow(a, b float16.Float16) float16.Float16 {
	if f32(a) == 0 && f32(b) == 0 {
		return float16.NaN()
	}
	return hf(math.Pow(f64(a), f64(b)))
}

func (x Half) Close(a, b float16.Float16, tol float64) bool {
	return closeTo[float16.Float16](x, a, b, tol)
}

func (Half) Parse(s string) (float16.Float16, error) {
	v, err := strconv.ParseFloat(trimToken(s), 32)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return hf(v), nil
		}
		return h(0), parseErrorf("Half.Parse", s, err)
	}

	return hf(v), nil
}

func (Half) Format(a float16.Float16) string {
	return strconv.FormatFloat(f64(a), 'g', -1, 32)
}

func (Half) Constants() Constants[float16.Float16] {
	return Constants[float16.Float16]{Pi: hf(math.Pi), E: hf(math.E), Gamma: hf(EulerGamma)}
}
