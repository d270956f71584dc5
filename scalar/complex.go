// SPDX-License-Identifier: MIT

package scalar

import (
	"strings"
)

// Complex is a complex number over the real element type R.
type Complex[R any] struct {
	Re, Im R
}

// ComplexAlgebra is the complex field over any Real algebra. Build it with
// NewComplex; the zero value is unusable.
type ComplexAlgebra[R any] struct {
	r Real[R]
}

// NewComplex returns the complex algebra over r, e.g.
// NewComplex[float64](Float64{}) or NewComplex[float16.Float16](Half{}).
func NewComplex[R any](r Real[R]) ComplexAlgebra[R] {
	return ComplexAlgebra[R]{r: r}
}

var (
	_ Algebra[Complex[float64]]    = ComplexAlgebra[float64]{}
	_ Elementary[Complex[float64]] = ComplexAlgebra[float64]{}
)

// Real returns the underlying real algebra.
func (c ComplexAlgebra[R]) Real() Real[R] { return c.r }

// New builds re + im·i.
func (c ComplexAlgebra[R]) New(re, im R) Complex[R] { return Complex[R]{Re: re, Im: im} }

func (c ComplexAlgebra[R]) Zero() Complex[R] { return Complex[R]{c.r.Zero(), c.r.Zero()} }
func (c ComplexAlgebra[R]) One() Complex[R]  { return Complex[R]{c.r.One(), c.r.Zero()} }

func (c ComplexAlgebra[R]) Add(a, b Complex[R]) Complex[R] {
	return Complex[R]{c.r.Add(a.Re, b.Re), c.r.Add(a.Im, b.Im)}
}

func (c ComplexAlgebra[R]) Sub(a, b Complex[R]) Complex[R] {
	return Complex[R]{c.r.Sub(a.Re, b.Re), c.r.Sub(a.Im, b.Im)}
}

func (c ComplexAlgebra[R]) Neg(a Complex[R]) Complex[R] {
	return Complex[R]{c.r.Neg(a.Re), c.r.Neg(a.Im)}
}

func (c ComplexAlgebra[R]) Conj(a Complex[R]) Complex[R] {
	return Complex[R]{a.Re, c.r.Neg(a.Im)}
}

// maxAbs returns max(|Re|, |Im|).
func (c ComplexAlgebra[R]) maxAbs(a Complex[R]) R {
	x, y := c.r.Abs(a.Re), c.r.Abs(a.Im)
	if c.r.Less(x, y) {
		return y
	}
	return x
}

// usableScale reports whether s can serve as a rescaling factor.
func (c ComplexAlgebra[R]) usableScale(s R) bool {
	return !c.r.IsZero(s) && !c.r.IsNaN(s) && !c.r.IsInf(s)
}

func (c ComplexAlgebra[R]) scaleDown(a Complex[R], s R) Complex[R] {
	return Complex[R]{c.r.Div(a.Re, s), c.r.Div(a.Im, s)}
}

func (c ComplexAlgebra[R]) mulPlain(a, b Complex[R]) Complex[R] {
	return Complex[R]{
		Re: c.r.Sub(c.r.Mul(a.Re, b.Re), c.r.Mul(a.Im, b.Im)),
		Im: c.r.Add(c.r.Mul(a.Re, b.Im), c.r.Mul(a.Im, b.Re)),
	}
}

// Mul scales both operands into [-1, 1] by their largest component, multiplies,
// then applies the two scales one after the other. Intermediate products
// therefore cannot overflow unless the true result does.
func (c ComplexAlgebra[R]) Mul(a, b Complex[R]) Complex[R] {
	sa, sb := c.maxAbs(a), c.maxAbs(b)
	if !c.usableScale(sa) || !c.usableScale(sb) {
		return c.mulPlain(a, b)
	}
	p := c.mulPlain(c.scaleDown(a, sa), c.scaleDown(b, sb))
	if k := c.r.Mul(sa, sb); c.usableScale(k) {
		return c.scaleBy(p, k)
	}
	re := c.r.Mul(c.r.Mul(p.Re, sa), sb)
	im := c.r.Mul(c.r.Mul(p.Im, sa), sb)

	return Complex[R]{re, im}
}

func (c ComplexAlgebra[R]) scaleBy(a Complex[R], k R) Complex[R] {
	return Complex[R]{c.r.Mul(a.Re, k), c.r.Mul(a.Im, k)}
}

// smith divides a by d with Smith's algorithm.
func (c ComplexAlgebra[R]) smith(a, d Complex[R]) Complex[R] {
	if !c.r.Less(c.r.Abs(d.Re), c.r.Abs(d.Im)) {
		ratio := c.r.Div(d.Im, d.Re)
		den := c.r.Add(d.Re, c.r.Mul(d.Im, ratio))
		return Complex[R]{
			Re: c.r.Div(c.r.Add(a.Re, c.r.Mul(a.Im, ratio)), den),
			Im: c.r.Div(c.r.Sub(a.Im, c.r.Mul(a.Re, ratio)), den),
		}
	}
	ratio := c.r.Div(d.Re, d.Im)
	den := c.r.Add(d.Im, c.r.Mul(d.Re, ratio))

	return Complex[R]{
		Re: c.r.Div(c.r.Add(c.r.Mul(a.Re, ratio), a.Im), den),
		Im: c.r.Div(c.r.Sub(c.r.Mul(a.Im, ratio), a.Re), den),
	}
}

// Div computes a/b with the same scaling as Mul and Smith's algorithm on
// the scaled operands. Division by zero yields Inf/NaN components.
func (c ComplexAlgebra[R]) Div(a, b Complex[R]) Complex[R] {
	if c.IsZero(b) {
		z := c.r.Zero()
		return Complex[R]{c.r.Div(a.Re, z), c.r.Div(a.Im, z)}
	}
	sa, sb := c.maxAbs(a), c.maxAbs(b)
	if !c.usableScale(sa) || !c.usableScale(sb) {
		return c.smith(a, b)
	}
	// |q| <= sqrt(2) here, so one ratio overflows only with the true result
	q := c.smith(c.scaleDown(a, sa), c.scaleDown(b, sb))
	if k := c.r.Div(sa, sb); c.usableScale(k) {
		return c.scaleBy(q, k)
	}
	re := c.r.Div(c.r.Mul(q.Re, sa), sb)
	im := c.r.Div(c.r.Mul(q.Im, sa), sb)

	return Complex[R]{re, im}
}

func (c ComplexAlgebra[R]) IsZero(a Complex[R]) bool {
	return c.r.IsZero(a.Re) && c.r.IsZero(a.Im)
}

func (c ComplexAlgebra[R]) Equal(a, b Complex[R]) bool {
	return c.r.Equal(a.Re, b.Re) && c.r.Equal(a.Im, b.Im)
}

func (c ComplexAlgebra[R]) modulus(a Complex[R]) R { return c.r.Hypot(a.Re, a.Im) }

func (c ComplexAlgebra[R]) Abs(a Complex[R]) Complex[R] {
	return Complex[R]{c.modulus(a), c.r.Zero()}
}

func (c ComplexAlgebra[R]) Magnitude(a Complex[R]) float64 {
	return c.r.Float64(c.modulus(a))
}

// Sqrt returns the principal root (non-negative real part).
func (c ComplexAlgebra[R]) Sqrt(a Complex[R]) Complex[R] {
	if c.IsZero(a) {
		return c.Zero()
	}
	m := c.modulus(a)
	two := c.r.FromInt64(2)
	re := c.r.Sqrt(c.r.Div(c.r.Add(m, a.Re), two))
	im := c.r.Sqrt(c.r.Div(c.r.Sub(m, a.Re), two))
	if c.r.Less(a.Im, c.r.Zero()) {
		im = c.r.Neg(im)
	}

	return Complex[R]{re, im}
}

func (c ComplexAlgebra[R]) FromInt64(n int64) Complex[R] {
	return Complex[R]{c.r.FromInt64(n), c.r.Zero()}
}

func (c ComplexAlgebra[R]) FromFloat64(f float64) Complex[R] {
	return Complex[R]{c.r.FromFloat64(f), c.r.Zero()}
}

func (c ComplexAlgebra[R]) IsNaN(a Complex[R]) bool { return c.r.IsNaN(a.Re) || c.r.IsNaN(a.Im) }
func (c ComplexAlgebra[R]) IsInf(a Complex[R]) bool { return c.r.IsInf(a.Re) || c.r.IsInf(a.Im) }

func (c ComplexAlgebra[R]) Close(a, b Complex[R], tol float64) bool {
	return closeTo[Complex[R]](c, a, b, tol)
}

// Parse accepts "re+imi", "re-imi", "re", "imi", "i" and "(re,im)".
func (c ComplexAlgebra[R]) Parse(s string) (Complex[R], error) {
	tok := trimToken(s)
	if strings.HasPrefix(tok, "(") && strings.HasSuffix(tok, ")") {
		parts := strings.Split(tok[1:len(tok)-1], ",")
		if len(parts) != 2 {
			return c.Zero(), parseErrorf("Complex.Parse", s, nil)
		}
		re, err := c.r.Parse(parts[0])
		if err != nil {
			return c.Zero(), parseErrorf("Complex.Parse", s, err)
		}
		im, err := c.r.Parse(parts[1])
		if err != nil {
			return c.Zero(), parseErrorf("Complex.Parse", s, err)
		}
		return Complex[R]{re, im}, nil
	}
	if !strings.HasSuffix(tok, "i") {
		re, err := c.r.Parse(tok)
		if err != nil {
			return c.Zero(), parseErrorf("Complex.Parse", s, err)
		}
		return Complex[R]{re, c.r.Zero()}, nil
	}

	body := tok[:len(tok)-1]
	split := -1
	for i := len(body) - 1; i > 0; i-- {
		if (body[i] == '+' || body[i] == '-') && body[i-1] != 'e' && body[i-1] != 'E' {
			split = i
			break
		}
	}
	reTok, imTok := "", body
	if split > 0 {
		reTok, imTok = body[:split], body[split:]
	}
	switch imTok {
	case "", "+":
		imTok = "1"
	case "-":
		imTok = "-1"
	}

	re := c.r.Zero()
	if reTok != "" {
		var err error
		if re, err = c.r.Parse(reTok); err != nil {
			return c.Zero(), parseErrorf("Complex.Parse", s, err)
		}
	}
	im, err := c.r.Parse(imTok)
	if err != nil {
		return c.Zero(), parseErrorf("Complex.Parse", s, err)
	}

	return Complex[R]{re, im}, nil
}

// Format renders "re+imi" / "re-imi".
func (c ComplexAlgebra[R]) Format(a Complex[R]) string {
	sign, im := "+", a.Im
	if c.r.Less(im, c.r.Zero()) {
		sign, im = "-", c.r.Neg(im)
	}
	return c.r.Format(a.Re) + sign + strings.TrimPrefix(c.r.Format(im), "+") + "i"
}

// ---------- Elementary ----------

// Exp: e^x·(cos y + i sin y).
func (c ComplexAlgebra[R]) Exp(a Complex[R]) Complex[R] {
	ex := c.r.Exp(a.Re)
	return Complex[R]{c.r.Mul(ex, c.r.Cos(a.Im)), c.r.Mul(ex, c.r.Sin(a.Im))}
}

// Log is the principal branch: ln|z| + i·arg z.
func (c ComplexAlgebra[R]) Log(a Complex[R]) Complex[R] {
	return Complex[R]{c.r.Log(c.modulus(a)), c.r.Atan2(a.Im, a.Re)}
}

// Pow returns exp(b·log a); 0^0 is NaN and 0^b is 0 otherwise.
func (c ComplexAlgebra[R]) Pow(a, b Complex[R]) Complex[R] {
	if c.IsZero(a) {
		if c.IsZero(b) {
			nan := c.r.Div(c.r.Zero(), c.r.Zero())
			return Complex[R]{nan, nan}
		}
		return c.Zero()
	}
	return c.Exp(c.Mul(b, c.Log(a)))
}

func (c ComplexAlgebra[R]) Sin(a Complex[R]) Complex[R] {
	return Complex[R]{
		c.r.Mul(c.r.Sin(a.Re), c.r.Cosh(a.Im)),
		c.r.Mul(c.r.Cos(a.Re), c.r.Sinh(a.Im)),
	}
}

func (c ComplexAlgebra[R]) Cos(a Complex[R]) Complex[R] {
	return Complex[R]{
		c.r.Mul(c.r.Cos(a.Re), c.r.Cosh(a.Im)),
		c.r.Neg(c.r.Mul(c.r.Sin(a.Re), c.r.Sinh(a.Im))),
	}
}

func (c ComplexAlgebra[R]) Tan(a Complex[R]) Complex[R] { return c.Div(c.Sin(a), c.Cos(a)) }

func (c ComplexAlgebra[R]) Sinh(a Complex[R]) Complex[R] {
	return Complex[R]{
		c.r.Mul(c.r.Sinh(a.Re), c.r.Cos(a.Im)),
		c.r.Mul(c.r.Cosh(a.Re), c.r.Sin(a.Im)),
	}
}

func (c ComplexAlgebra[R]) Cosh(a Complex[R]) Complex[R] {
	return Complex[R]{
		c.r.Mul(c.r.Cosh(a.Re), c.r.Cos(a.Im)),
		c.r.Mul(c.r.Sinh(a.Re), c.r.Sin(a.Im)),
	}
}

func (c ComplexAlgebra[R]) Tanh(a Complex[R]) Complex[R] { return c.Div(c.Sinh(a), c.Cosh(a)) }

func (c ComplexAlgebra[R]) Constants() Constants[Complex[R]] {
	rc, ok := c.r.(Constanter[R])
	if !ok {
		return Constants[Complex[R]]{}
	}
	k := rc.Constants()
	z := c.r.Zero()

	return Constants[Complex[R]]{Pi: Complex[R]{k.Pi, z}, E: Complex[R]{k.E, z}, Gamma: Complex[R]{k.Gamma, z}}
}
