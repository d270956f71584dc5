// SPDX-License-Identifier: MIT
// Package matrix: element-wise kernels.
//
// Purpose:
//   - Add, Sub and Hadamard over equal shapes, and the constant-broadcast
//     forms (scalar on either side) driven by package transform.
//
// Contract:
//   - Inputs are never mutated; out is resized to the operand shape and may
//     alias an operand.
//   - Numeric edge cases (division by zero, overflow) propagate through the
//     algebra's NaN/Inf convention and never error.

package matrix

import (
	"github.com/katalvlaran/lvalg/transform"
)

// binary runs an equal-shape element-wise kernel into out.
func binary[T any](tag string, a, b, out *Dense[T], f func(o transform.Ops[T], dst, x, y []T) ([]T, error)) error {
	if err := validateNotNil(a, b); err != nil {
		return matrixErrorf(tag, err)
	}
	if err := validateOutput(out); err != nil {
		return matrixErrorf(tag, err)
	}
	if err := validateSameShape(a, b); err != nil {
		return matrixErrorf(tag, err)
	}
	x, y := a.data.Raw(), b.data.Raw()
	alg, r, c := a.alg, a.r, a.c
	// out may alias a or b: Binary reads index i before writing it.
	out.reshape(a)
	dst, err := f(transform.NewOps(alg), out.data.Raw(), x, y)
	if err != nil {
		return matrixErrorf(tag, err)
	}
	out.install(alg, r, c, dst)

	return nil
}

// unary runs a per-element kernel into out.
func unary[T any](tag string, a, out *Dense[T], f func(dst, src []T) []T) error {
	if err := validateNotNil(a); err != nil {
		return matrixErrorf(tag, err)
	}
	if err := validateOutput(out); err != nil {
		return matrixErrorf(tag, err)
	}
	src := a.data.Raw()
	out.reshape(a)
	out.data.Replace(f(out.data.Raw(), src))

	return nil
}

// Add computes the element-wise sum out = a + b.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (different shapes).
//
// Complexity:
//   - Time O(r*c), Space O(1) beyond out.
func Add[T any](a, b, out *Dense[T]) error {
	return binary(opAdd, a, b, out, func(o transform.Ops[T], dst, x, y []T) ([]T, error) { return o.Add(dst, x, y) })
}

// Sub computes the element-wise difference out = a − b.
func Sub[T any](a, b, out *Dense[T]) error {
	return binary(opSub, a, b, out, func(o transform.Ops[T], dst, x, y []T) ([]T, error) { return o.Sub(dst, x, y) })
}

// Hadamard computes the element-wise product out = a ⊙ b.
func Hadamard[T any](a, b, out *Dense[T]) error {
	return binary(opHadamard, a, b, out, func(o transform.Ops[T], dst, x, y []T) ([]T, error) { return o.Mul(dst, x, y) })
}

// Scale computes out = k·a.
func Scale[T any](a *Dense[T], k T, out *Dense[T]) error {
	if a == nil {
		return matrixErrorf(opElementwise, ErrNilMatrix)
	}
	o := transform.NewOps(a.alg)
	return unary(opElementwise, a, out, func(dst, src []T) []T { return o.MulScalar(dst, src, k) })
}

// MulScalar is Scale under the element-wise naming.
func MulScalar[T any](a *Dense[T], k T, out *Dense[T]) error { return Scale(a, k, out) }

// AddScalar computes out = a + k element-wise.
func AddScalar[T any](a *Dense[T], k T, out *Dense[T]) error {
	if a == nil {
		return matrixErrorf(opElementwise, ErrNilMatrix)
	}
	o := transform.NewOps(a.alg)
	return unary(opElementwise, a, out, func(dst, src []T) []T { return o.AddScalar(dst, src, k) })
}

// SubScalar computes out = a − k element-wise.
func SubScalar[T any](a *Dense[T], k T, out *Dense[T]) error {
	if a == nil {
		return matrixErrorf(opElementwise, ErrNilMatrix)
	}
	o := transform.NewOps(a.alg)
	return unary(opElementwise, a, out, func(dst, src []T) []T { return o.SubScalar(dst, src, k) })
}

// DivScalar computes out = a / k element-wise.
func DivScalar[T any](a *Dense[T], k T, out *Dense[T]) error {
	if a == nil {
		return matrixErrorf(opElementwise, ErrNilMatrix)
	}
	o := transform.NewOps(a.alg)
	return unary(opElementwise, a, out, func(dst, src []T) []T { return o.DivScalar(dst, src, k) })
}

// ScalarSub computes out = k − a element-wise.
func ScalarSub[T any](k T, a, out *Dense[T]) error {
	if a == nil {
		return matrixErrorf(opElementwise, ErrNilMatrix)
	}
	o := transform.NewOps(a.alg)
	return unary(opElementwise, a, out, func(dst, src []T) []T { return o.ScalarSub(dst, k, src) })
}

// ScalarDiv computes out = k / a element-wise.
func ScalarDiv[T any](k T, a, out *Dense[T]) error {
	if a == nil {
		return matrixErrorf(opElementwise, ErrNilMatrix)
	}
	o := transform.NewOps(a.alg)
	return unary(opElementwise, a, out, func(dst, src []T) []T { return o.ScalarDiv(dst, k, src) })
}

// Neg computes out = −a.
func Neg[T any](a, out *Dense[T]) error {
	if a == nil {
		return matrixErrorf(opElementwise, ErrNilMatrix)
	}
	o := transform.NewOps(a.alg)
	return unary(opElementwise, a, out, o.Neg)
}

// Conj conjugates every element (a copy for real algebras).
func Conj[T any](a, out *Dense[T]) error {
	if a == nil {
		return matrixErrorf(opElementwise, ErrNilMatrix)
	}
	o := transform.NewOps(a.alg)
	return unary(opElementwise, a, out, o.Conj)
}

// Apply sets out[i,j] = f(a[i,j]).
func Apply[T any](f func(T) T, a, out *Dense[T]) error {
	return unary(opElementwise, a, out, func(dst, src []T) []T { return transform.Unary(dst, src, f) })
}
