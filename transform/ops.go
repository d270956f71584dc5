// SPDX-License-Identifier: MIT

package transform

import (
	"github.com/katalvlaran/lvalg/scalar"
)

// Ops bundles the element-wise kernels of one algebra so every structure
// shares a single implementation of add, scale, negate and friends.
type Ops[T any] struct {
	Alg scalar.Algebra[T]
}

// NewOps returns the bundle for alg.
func NewOps[T any](alg scalar.Algebra[T]) Ops[T] { return Ops[T]{Alg: alg} }

func (o Ops[T]) Add(dst, a, b []T) ([]T, error) { return Binary(dst, a, b, o.Alg.Add) }
func (o Ops[T]) Sub(dst, a, b []T) ([]T, error) { return Binary(dst, a, b, o.Alg.Sub) }

// Mul is the Hadamard (element-wise) product.
func (o Ops[T]) Mul(dst, a, b []T) ([]T, error) { return Binary(dst, a, b, o.Alg.Mul) }
func (o Ops[T]) Div(dst, a, b []T) ([]T, error) { return Binary(dst, a, b, o.Alg.Div) }

func (o Ops[T]) Neg(dst, src []T) []T  { return Unary(dst, src, o.Alg.Neg) }
func (o Ops[T]) Conj(dst, src []T) []T { return Unary(dst, src, o.Alg.Conj) }
func (o Ops[T]) Abs(dst, src []T) []T  { return Unary(dst, src, o.Alg.Abs) }

func (o Ops[T]) AddScalar(dst, src []T, c T) []T { return Fixed(dst, src, c, o.Alg.Add) }
func (o Ops[T]) SubScalar(dst, src []T, c T) []T { return Fixed(dst, src, c, o.Alg.Sub) }
func (o Ops[T]) MulScalar(dst, src []T, c T) []T { return Fixed(dst, src, c, o.Alg.Mul) }
func (o Ops[T]) DivScalar(dst, src []T, c T) []T { return Fixed(dst, src, c, o.Alg.Div) }

// ScalarSub computes c - src[i].
func (o Ops[T]) ScalarSub(dst []T, c T, src []T) []T { return FixedLeft(dst, c, src, o.Alg.Sub) }

// ScalarDiv computes c / src[i].
func (o Ops[T]) ScalarDiv(dst []T, c T, src []T) []T { return FixedLeft(dst, c, src, o.Alg.Div) }

// Sum adds every element.
func (o Ops[T]) Sum(src []T) T { return Reduce(src, o.Alg.Zero(), o.Alg.Add) }

// SumSquares returns Σ conj(x)·x.
func (o Ops[T]) SumSquares(src []T) T {
	return Reduce(src, o.Alg.Zero(), func(acc, x T) T { return o.Alg.Add(acc, scalar.AbsSq(o.Alg, x)) })
}

// Norm2 returns sqrt(Σ |x|²).
func (o Ops[T]) Norm2(src []T) T { return o.Alg.Sqrt(o.SumSquares(src)) }

// MaxAbs returns the element of largest magnitude as |x| (Zero when empty).
func (o Ops[T]) MaxAbs(src []T) T {
	best, bestMag := o.Alg.Zero(), -1.0
	for _, v := range src {
		if m := o.Alg.Magnitude(v); m > bestMag {
			best, bestMag = v, m
		}
	}
	return o.Alg.Abs(best)
}

func (o Ops[T]) HasNaN(src []T) bool { return Any(src, o.Alg.IsNaN) }
func (o Ops[T]) HasInf(src []T) bool { return Any(src, o.Alg.IsInf) }

// Equal compares element-wise with the algebra's Equal.
func (o Ops[T]) Equal(a, b []T) bool { return All(a, b, o.Alg.Equal) }

// Close compares element-wise with the algebra's Close.
func (o Ops[T]) Close(a, b []T, tol float64) bool {
	return All(a, b, func(x, y T) bool { return o.Alg.Close(x, y, tol) })
}
