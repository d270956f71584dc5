// SPDX-License-Identifier: MIT

package tensor

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/lvalg"
	"github.com/katalvlaran/lvalg/shape"
	"github.com/katalvlaran/lvalg/transform"
)

// matchShapes enforces equal rank, dimension and index positions.
func matchShapes[T any](a, b *Tensor[T]) error {
	if err := shape.Match(a.Shape(), b.Shape()); err != nil {
		return err
	}
	if !sameVariance(a.vars, b.vars) {
		return errors.Wrapf(lvalg.ErrShapeMismatch, "tensor: variances %v vs %v", a.variances(), b.variances())
	}
	return nil
}

func binary[T any](op string, a, b, out *Tensor[T], f func(o transform.Ops[T], dst, x, y []T) ([]T, error)) error {
	if err := prepare(op, out, a, b); err != nil {
		return err
	}
	if err := matchShapes(a, b); err != nil {
		return tensorErrorf(op, err)
	}
	ops := transform.NewOps(a.alg)
	x, y := a.data.Raw(), b.data.Raw()
	if out != a && out != b {
		out.reshape(a)
	}
	res, err := f(ops, out.data.Raw(), x, y)
	if err != nil {
		return tensorErrorf(op, err)
	}
	out.data.Replace(res)

	return nil
}

func unary[T any](op string, a, out *Tensor[T], f func(dst, src []T) []T) error {
	if err := prepare(op, out, a); err != nil {
		return err
	}
	src := a.data.Raw()
	if out != a {
		out.reshape(a)
	}
	out.data.Replace(f(out.data.Raw(), src))

	return nil
}

// Add sets out = a + b.
func Add[T any](a, b, out *Tensor[T]) error {
	return binary(opAdd, a, b, out, transform.Ops[T].Add)
}

// Sub sets out = a - b.
func Sub[T any](a, b, out *Tensor[T]) error {
	return binary(opSub, a, b, out, transform.Ops[T].Sub)
}

// Hadamard sets out to the element-wise product of a and b.
func Hadamard[T any](a, b, out *Tensor[T]) error {
	return binary(opHadamard, a, b, out, transform.Ops[T].Mul)
}

// Neg sets out = -a.
func Neg[T any](a, out *Tensor[T]) error {
	return unary("Neg", a, out, transform.NewOps(a.alg).Neg)
}

// Conj sets out to the element-wise conjugate of a.
func Conj[T any](a, out *Tensor[T]) error {
	return unary("Conj", a, out, transform.NewOps(a.alg).Conj)
}

// Scale sets out = c·a (element-wise a[i]·c).
func Scale[T any](a *Tensor[T], c T, out *Tensor[T]) error {
	return unary("Scale", a, out, func(dst, src []T) []T { return transform.NewOps(a.alg).MulScalar(dst, src, c) })
}

// AddScalar sets out[i] = a[i] + c.
func AddScalar[T any](a *Tensor[T], c T, out *Tensor[T]) error {
	return unary("AddScalar", a, out, func(dst, src []T) []T { return transform.NewOps(a.alg).AddScalar(dst, src, c) })
}

// SubScalar sets out[i] = a[i] - c.
func SubScalar[T any](a *Tensor[T], c T, out *Tensor[T]) error {
	return unary("SubScalar", a, out, func(dst, src []T) []T { return transform.NewOps(a.alg).SubScalar(dst, src, c) })
}

// DivScalar sets out[i] = a[i] / c.
func DivScalar[T any](a *Tensor[T], c T, out *Tensor[T]) error {
	return unary("DivScalar", a, out, func(dst, src []T) []T { return transform.NewOps(a.alg).DivScalar(dst, src, c) })
}

// Apply sets out[i] = f(a[i]).
func Apply[T any](f func(T) T, a, out *Tensor[T]) error {
	return unary(opApply, a, out, func(dst, src []T) []T { return transform.Unary(dst, src, f) })
}

// FrobeniusNorm returns sqrt(Σ |a_i|²).
func FrobeniusNorm[T any](a *Tensor[T]) T { return transform.NewOps(a.alg).Norm2(a.data.Raw()) }

// MaxAbs returns the largest element magnitude as an element.
func MaxAbs[T any](a *Tensor[T]) T { return transform.NewOps(a.alg).MaxAbs(a.data.Raw()) }

// Sum adds every element.
func Sum[T any](a *Tensor[T]) T { return transform.NewOps(a.alg).Sum(a.data.Raw()) }

// HasNaN reports whether any element is NaN.
func HasNaN[T any](a *Tensor[T]) bool { return transform.NewOps(a.alg).HasNaN(a.data.Raw()) }

// HasInf reports whether any element is infinite.
func HasInf[T any](a *Tensor[T]) bool { return transform.NewOps(a.alg).HasInf(a.data.Raw()) }
