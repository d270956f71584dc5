// SPDX-License-Identifier: MIT

package scalar

import (
	"strings"
)

// Octonion is e0 + e1·i1 + ... + e7·i7 over the real element type R.
type Octonion[R any] struct {
	E [8]R
}

// OctonionAlgebra is the (non-associative) octonion division algebra over
// any Real algebra, built by the Cayley–Dickson construction on quaternion
// halves: (a, b)(c, d) = (ac − d*b, da + bc*).
type OctonionAlgebra[R any] struct {
	r Real[R]
}

// NewOctonion returns the octonion algebra over r.
func NewOctonion[R any](r Real[R]) OctonionAlgebra[R] {
	return OctonionAlgebra[R]{r: r}
}

var (
	_ Algebra[Octonion[float64]]     = OctonionAlgebra[float64]{}
	_ Exponential[Octonion[float64]] = OctonionAlgebra[float64]{}
)

type quat[R any] [4]R

func (o OctonionAlgebra[R]) qmul(a, b quat[R]) quat[R] {
	r := o.r
	sum := func(x, y, z, w R) R { return r.Add(r.Add(x, y), r.Add(z, w)) }

	return quat[R]{
		sum(r.Mul(a[0], b[0]), r.Neg(r.Mul(a[1], b[1])), r.Neg(r.Mul(a[2], b[2])), r.Neg(r.Mul(a[3], b[3]))),
		sum(r.Mul(a[0], b[1]), r.Mul(a[1], b[0]), r.Mul(a[2], b[3]), r.Neg(r.Mul(a[3], b[2]))),
		sum(r.Mul(a[0], b[2]), r.Neg(r.Mul(a[1], b[3])), r.Mul(a[2], b[0]), r.Mul(a[3], b[1])),
		sum(r.Mul(a[0], b[3]), r.Mul(a[1], b[2]), r.Neg(r.Mul(a[2], b[1])), r.Mul(a[3], b[0])),
	}
}

func (o OctonionAlgebra[R]) qconj(a quat[R]) quat[R] {
	return quat[R]{a[0], o.r.Neg(a[1]), o.r.Neg(a[2]), o.r.Neg(a[3])}
}

func (o OctonionAlgebra[R]) qsub(a, b quat[R]) quat[R] {
	var out quat[R]
	for i := range out {
		out[i] = o.r.Sub(a[i], b[i])
	}
	return out
}

func (o OctonionAlgebra[R]) qadd(a, b quat[R]) quat[R] {
	var out quat[R]
	for i := range out {
		out[i] = o.r.Add(a[i], b[i])
	}
	return out
}

func halves[R any](a Octonion[R]) (quat[R], quat[R]) {
	var p, q quat[R]
	copy(p[:], a.E[:4])
	copy(q[:], a.E[4:])
	return p, q
}

func join[R any](p, q quat[R]) Octonion[R] {
	var out Octonion[R]
	copy(out.E[:4], p[:])
	copy(out.E[4:], q[:])
	return out
}

func (o OctonionAlgebra[R]) each(a Octonion[R], f func(R) R) Octonion[R] {
	var out Octonion[R]
	for i := range out.E {
		out.E[i] = f(a.E[i])
	}
	return out
}

func (o OctonionAlgebra[R]) Zero() Octonion[R] {
	var out Octonion[R]
	for i := range out.E {
		out.E[i] = o.r.Zero()
	}
	return out
}

func (o OctonionAlgebra[R]) One() Octonion[R] {
	out := o.Zero()
	out.E[0] = o.r.One()
	return out
}

// Real builds the octonion with e0 = x and zero imaginary parts.
func (o OctonionAlgebra[R]) Real(x R) Octonion[R] {
	out := o.Zero()
	out.E[0] = x
	return out
}

// Unit returns the k-th basis element (k = 0 is One).
func (o OctonionAlgebra[R]) Unit(k int) Octonion[R] {
	out := o.Zero()
	out.E[k] = o.r.One()
	return out
}

func (o OctonionAlgebra[R]) Add(a, b Octonion[R]) Octonion[R] {
	var out Octonion[R]
	for i := range out.E {
		out.E[i] = o.r.Add(a.E[i], b.E[i])
	}
	return out
}

func (o OctonionAlgebra[R]) Sub(a, b Octonion[R]) Octonion[R] {
	var out Octonion[R]
	for i := range out.E {
		out.E[i] = o.r.Sub(a.E[i], b.E[i])
	}
	return out
}

func (o OctonionAlgebra[R]) Neg(a Octonion[R]) Octonion[R] { return o.each(a, o.r.Neg) }

func (o OctonionAlgebra[R]) Conj(a Octonion[R]) Octonion[R] {
	out := o.each(a, o.r.Neg)
	out.E[0] = a.E[0]
	return out
}

func (o OctonionAlgebra[R]) maxAbs(a Octonion[R]) R {
	m := o.r.Abs(a.E[0])
	for _, e := range a.E[1:] {
		if x := o.r.Abs(e); o.r.Less(m, x) {
			m = x
		}
	}
	return m
}

func (o OctonionAlgebra[R]) usableScale(s R) bool {
	return !o.r.IsZero(s) && !o.r.IsNaN(s) && !o.r.IsInf(s)
}

func (o OctonionAlgebra[R]) mulPlain(x, y Octonion[R]) Octonion[R] {
	a, b := halves(x)
	c, d := halves(y)
	left := o.qsub(o.qmul(a, c), o.qmul(o.qconj(d), b))
	right := o.qadd(o.qmul(d, a), o.qmul(b, o.qconj(c)))

	return join(left, right)
}

// Mul is the Cayley–Dickson product with the same scale-by-max treatment
// as complex multiplication.
func (o OctonionAlgebra[R]) Mul(a, b Octonion[R]) Octonion[R] {
	sa, sb := o.maxAbs(a), o.maxAbs(b)
	if !o.usableScale(sa) || !o.usableScale(sb) {
		return o.mulPlain(a, b)
	}
	down := func(x Octonion[R], s R) Octonion[R] {
		return o.each(x, func(e R) R { return o.r.Div(e, s) })
	}
	p := o.mulPlain(down(a, sa), down(b, sb))

	return o.each(p, func(e R) R { return o.r.Mul(o.r.Mul(e, sa), sb) })
}

// normSq is Σ e_k².
func (o OctonionAlgebra[R]) normSq(a Octonion[R]) R {
	acc := o.r.Zero()
	for _, e := range a.E {
		acc = o.r.Add(acc, o.r.Mul(e, e))
	}
	return acc
}

// Div returns a·b⁻¹ with b⁻¹ = conj(b)/|b|². Both operands are scaled by
// their largest component first. b = 0 yields NaN components.
func (o OctonionAlgebra[R]) Div(a, b Octonion[R]) Octonion[R] {
	sa, sb := o.maxAbs(a), o.maxAbs(b)
	if !o.usableScale(sa) || !o.usableScale(sb) {
		n := o.normSq(b)
		return o.each(o.mulPlain(a, o.Conj(b)), func(e R) R { return o.r.Div(e, n) })
	}
	down := func(x Octonion[R], s R) Octonion[R] {
		return o.each(x, func(e R) R { return o.r.Div(e, s) })
	}
	an, bn := down(a, sa), down(b, sb)
	n := o.normSq(bn)
	q := o.each(o.mulPlain(an, o.Conj(bn)), func(e R) R { return o.r.Div(e, n) })

	return o.each(q, func(e R) R { return o.r.Div(o.r.Mul(e, sa), sb) })
}

func (o OctonionAlgebra[R]) IsZero(a Octonion[R]) bool {
	for _, e := range a.E {
		if !o.r.IsZero(e) {
			return false
		}
	}
	return true
}

func (o OctonionAlgebra[R]) Equal(a, b Octonion[R]) bool {
	for i := range a.E {
		if !o.r.Equal(a.E[i], b.E[i]) {
			return false
		}
	}
	return true
}

// modulus accumulates with Hypot to avoid overflow in the squares.
func (o OctonionAlgebra[R]) modulus(a Octonion[R]) R {
	acc := o.r.Zero()
	for _, e := range a.E {
		acc = o.r.Hypot(acc, e)
	}
	return acc
}

// vecNorm is the modulus of the imaginary part.
func (o OctonionAlgebra[R]) vecNorm(a Octonion[R]) R {
	acc := o.r.Zero()
	for _, e := range a.E[1:] {
		acc = o.r.Hypot(acc, e)
	}
	return acc
}

func (o OctonionAlgebra[R]) Abs(a Octonion[R]) Octonion[R] { return o.Real(o.modulus(a)) }

func (o OctonionAlgebra[R]) Magnitude(a Octonion[R]) float64 { return o.r.Float64(o.modulus(a)) }

// Sqrt returns the principal root. A negative real maps to √|x|·i1.
func (o OctonionAlgebra[R]) Sqrt(a Octonion[R]) Octonion[R] {
	if o.IsZero(a) {
		return o.Zero()
	}
	v := o.vecNorm(a)
	if o.r.IsZero(v) {
		if o.r.Less(a.E[0], o.r.Zero()) {
			out := o.Zero()
			out.E[1] = o.r.Sqrt(o.r.Neg(a.E[0]))
			return out
		}
		return o.Real(o.r.Sqrt(a.E[0]))
	}
	m := o.modulus(a)
	two := o.r.FromInt64(2)
	re := o.r.Sqrt(o.r.Div(o.r.Add(m, a.E[0]), two))
	imScale := o.r.Div(o.r.Sqrt(o.r.Div(o.r.Sub(m, a.E[0]), two)), v)
	out := o.each(a, func(e R) R { return o.r.Mul(e, imScale) })
	out.E[0] = re

	return out
}

func (o OctonionAlgebra[R]) FromInt64(n int64) Octonion[R]     { return o.Real(o.r.FromInt64(n)) }
func (o OctonionAlgebra[R]) FromFloat64(f float64) Octonion[R] { return o.Real(o.r.FromFloat64(f)) }

func (o OctonionAlgebra[R]) IsNaN(a Octonion[R]) bool {
	for _, e := range a.E {
		if o.r.IsNaN(e) {
			return true
		}
	}
	return false
}

func (o OctonionAlgebra[R]) IsInf(a Octonion[R]) bool {
	for _, e := range a.E {
		if o.r.IsInf(e) {
			return true
		}
	}
	return false
}

func (o OctonionAlgebra[R]) Close(a, b Octonion[R], tol float64) bool {
	return closeTo[Octonion[R]](o, a, b, tol)
}

// Parse accepts "(e0,e1,...,e7)" or a single real component.
func (o OctonionAlgebra[R]) Parse(s string) (Octonion[R], error) {
	tok := trimToken(s)
	if !strings.HasPrefix(tok, "(") || !strings.HasSuffix(tok, ")") {
		x, err := o.r.Parse(tok)
		if err != nil {
			return o.Zero(), parseErrorf("Octonion.Parse", s, err)
		}
		return o.Real(x), nil
	}
	parts := strings.Split(tok[1:len(tok)-1], ",")
	if len(parts) != 8 {
		return o.Zero(), parseErrorf("Octonion.Parse", s, nil)
	}
	var out Octonion[R]
	for i, p := range parts {
		x, err := o.r.Parse(p)
		if err != nil {
			return o.Zero(), parseErrorf("Octonion.Parse", s, err)
		}
		out.E[i] = x
	}

	return out, nil
}

func (o OctonionAlgebra[R]) Format(a Octonion[R]) string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, e := range a.E {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(o.r.Format(e))
	}
	sb.WriteByte(')')

	return sb.String()
}

// ---------- Exponential ----------

// Exp: e^a0·(cos|v| + v/|v|·sin|v|).
func (o OctonionAlgebra[R]) Exp(a Octonion[R]) Octonion[R] {
	ea := o.r.Exp(a.E[0])
	v := o.vecNorm(a)
	if o.r.IsZero(v) {
		return o.Real(ea)
	}
	k := o.r.Div(o.r.Mul(ea, o.r.Sin(v)), v)
	out := o.each(a, func(e R) R { return o.r.Mul(e, k) })
	out.E[0] = o.r.Mul(ea, o.r.Cos(v))

	return out
}

// Log: ln|a| + v/|v|·atan2(|v|, a0). A negative real maps onto i1.
func (o OctonionAlgebra[R]) Log(a Octonion[R]) Octonion[R] {
	m := o.modulus(a)
	v := o.vecNorm(a)
	out := o.Zero()
	out.E[0] = o.r.Log(m)
	theta := o.r.Atan2(v, a.E[0])
	if o.r.IsZero(v) {
		out.E[1] = theta
		return out
	}
	k := o.r.Div(theta, v)
	for i := 1; i < len(out.E); i++ {
		out.E[i] = o.r.Mul(a.E[i], k)
	}

	return out
}

// Pow returns exp(b·log a); 0^0 is NaN and 0^b is 0 otherwise.
func (o OctonionAlgebra[R]) Pow(a, b Octonion[R]) Octonion[R] {
	if o.IsZero(a) {
		if o.IsZero(b) {
			nan := o.r.Div(o.r.Zero(), o.r.Zero())
			return o.each(a, func(R) R { return nan })
		}
		return o.Zero()
	}
	return o.Exp(o.Mul(b, o.Log(a)))
}
