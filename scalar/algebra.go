// SPDX-License-Identifier: MIT

// Package scalar defines the capability bundle every structure-level kernel
// is parameterized over, and the concrete algebras the library ships with.
//
// An Algebra[T] is stateless (or holds only immutable configuration such as
// a decimal precision) and never mutates its operands: for pointer-valued
// element types (*big.Rat, *apd.Decimal) every operation allocates a fresh
// result. Kernels rely on this to share element values between deep-copied
// storages without aliasing bugs.
//
// Capabilities beyond field arithmetic are optional interfaces (Ordered,
// Rounding, Exponential, Trigonometric, Hyperbolic); kernels discover them
// with a type assertion and report lvalg.ErrUnsupported when missing.
package scalar

import (
	"math"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/lvalg"
)

// Algebra is the field-like capability bundle over element type T.
//
// Associativity/commutativity are NOT enforced by the type system: the
// octonion algebra is non-associative and kernels that rely on
// associativity (matrix powers, determinants) simply inherit that.
type Algebra[T any] interface {
	// Zero returns the additive identity.
	Zero() T
	// One returns the multiplicative identity.
	One() T

	Add(a, b T) T
	Sub(a, b T) T
	Mul(a, b T) T
	// Div returns a/b. Division by zero follows the algebra's NaN/Inf
	// convention and never returns an error.
	Div(a, b T) T
	Neg(a T) T
	// Conj returns the conjugate (identity for real algebras).
	Conj(a T) T

	IsZero(a T) bool
	Equal(a, b T) bool

	// Abs returns |a| embedded as an element of T (imaginary parts zero).
	Abs(a T) T
	// Magnitude returns |a| as float64; used for pivot ranking and tolerances.
	Magnitude(a T) float64
	// Sqrt returns the principal square root.
	Sqrt(a T) T

	FromInt64(n int64) T
	FromFloat64(f float64) T

	IsNaN(a T) bool
	IsInf(a T) bool

	// Close reports |a-b| ≤ tol·max(1, |a|, |b|). NaN is never close.
	Close(a, b T, tol float64) bool

	Parse(s string) (T, error)
	Format(a T) string
}

// Ordered is implemented by algebras with a total order (the reals).
type Ordered[T any] interface {
	Less(a, b T) bool
}

// Rounding is implemented by algebras with integer rounding.
type Rounding[T any] interface {
	Floor(a T) T
	Ceil(a T) T
	Round(a T) T // half away from zero
	Trunc(a T) T
}

// Exponential is implemented by algebras with exp/log.
// Pow(0, 0) is NaN by library convention.
type Exponential[T any] interface {
	Exp(a T) T
	Log(a T) T
	Pow(a, b T) T
}

// Trigonometric is implemented by algebras with circular functions.
type Trigonometric[T any] interface {
	Sin(a T) T
	Cos(a T) T
	Tan(a T) T
}

// Hyperbolic is implemented by algebras with hyperbolic functions.
type Hyperbolic[T any] interface {
	Sinh(a T) T
	Cosh(a T) T
	Tanh(a T) T
}

// Elementary bundles every transcendental capability.
type Elementary[T any] interface {
	Exponential[T]
	Trigonometric[T]
	Hyperbolic[T]
}

// Real is the full capability set of an ordered real algebra. Complex and
// octonion algebras are built on top of any Real.
type Real[T any] interface {
	Algebra[T]
	Ordered[T]
	Rounding[T]
	Elementary[T]

	Atan2(y, x T) T
	Hypot(a, b T) T
	Float64(a T) float64
}

// closeTo implements the shared Close contract for any algebra.
func closeTo[T any](alg Algebra[T], a, b T, tol float64) bool {
	if alg.IsNaN(a) || alg.IsNaN(b) {
		return false
	}
	if alg.Equal(a, b) {
		return true
	}
	if alg.IsInf(a) || alg.IsInf(b) {
		return false
	}
	diff := alg.Magnitude(alg.Sub(a, b))
	scale := math.Max(1, math.Max(alg.Magnitude(a), alg.Magnitude(b)))

	return diff <= tol*scale
}

// parseErrorf marks a token parse failure with lvalg.ErrParse.
func parseErrorf(kind, token string, cause error) error {
	if cause == nil {
		return lvalg.WithCategory(errors.Newf("scalar.%s: cannot parse %q", kind, token), lvalg.ErrParse)
	}
	return lvalg.WithCategory(errors.Wrapf(cause, "scalar.%s: cannot parse %q", kind, token), lvalg.ErrParse)
}

// trimToken normalizes a textual scalar before parsing.
func trimToken(s string) string {
	return strings.TrimSpace(s)
}

// ---------- generic helpers over any Algebra ----------

// PowInt returns x^n for integer n by repeated squaring. n < 0 inverts.
// PowInt(0, 0) is One: integer powers are the empty product.
func PowInt[T any](alg Algebra[T], x T, n int) T {
	if n < 0 {
		x = alg.Div(alg.One(), x)
		n = -n
	}
	result := alg.One()
	for n > 0 {
		if n&1 == 1 {
			result = alg.Mul(result, x)
		}
		n >>= 1
		if n > 0 {
			x = alg.Mul(x, x)
		}
	}

	return result
}

// Sum folds Add over vals starting at Zero.
func Sum[T any](alg Algebra[T], vals ...T) T {
	acc := alg.Zero()
	for _, v := range vals {
		acc = alg.Add(acc, v)
	}

	return acc
}

// AbsSq returns conj(a)·a, the squared modulus embedded in T.
func AbsSq[T any](alg Algebra[T], a T) T {
	return alg.Mul(alg.Conj(a), a)
}

// AsElementary reports whether alg carries every transcendental capability.
func AsElementary[T any](alg Algebra[T]) (Elementary[T], bool) {
	e, ok := any(alg).(Elementary[T])
	return e, ok
}

// AsExponential reports whether alg implements Exp/Log/Pow.
func AsExponential[T any](alg Algebra[T]) (Exponential[T], bool) {
	e, ok := any(alg).(Exponential[T])
	return e, ok
}

// AsTrigonometric reports whether alg implements Sin/Cos/Tan.
func AsTrigonometric[T any](alg Algebra[T]) (Trigonometric[T], bool) {
	e, ok := any(alg).(Trigonometric[T])
	return e, ok
}

// AsHyperbolic reports whether alg implements Sinh/Cosh/Tanh.
func AsHyperbolic[T any](alg Algebra[T]) (Hyperbolic[T], bool) {
	e, ok := any(alg).(Hyperbolic[T])
	return e, ok
}

// AsOrdered reports whether alg has a total order.
func AsOrdered[T any](alg Algebra[T]) (Ordered[T], bool) {
	o, ok := any(alg).(Ordered[T])
	return o, ok
}

// AsRounding reports whether alg implements integer rounding.
func AsRounding[T any](alg Algebra[T]) (Rounding[T], bool) {
	r, ok := any(alg).(Rounding[T])
	return r, ok
}
