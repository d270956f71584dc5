// SPDX-License-Identifier: MIT

package vector

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/lvalg"
	"github.com/katalvlaran/lvalg/tensor"
	"github.com/katalvlaran/lvalg/transform"
)

// Add sets c = a + b.
func Add[T any](a, b, c *Vector[T]) error {
	if err := check("Add", a, b, c); err != nil {
		return err
	}
	if err := sameLen("Add", a, b); err != nil {
		return err
	}
	return vectorErrorf("Add", tensor.Add(a.t, b.t, c.t))
}

// Sub sets c = a − b.
func Sub[T any](a, b, c *Vector[T]) error {
	if err := check("Sub", a, b, c); err != nil {
		return err
	}
	if err := sameLen("Sub", a, b); err != nil {
		return err
	}
	return vectorErrorf("Sub", tensor.Sub(a.t, b.t, c.t))
}

// Scale sets b = k·a.
func Scale[T any](a *Vector[T], k T, b *Vector[T]) error {
	if err := check("Scale", a, b); err != nil {
		return err
	}
	return vectorErrorf("Scale", tensor.Scale(a.t, k, b.t))
}

// Dot returns Σ aᵢ·bᵢ, the bilinear inner product. No component is
// conjugated; see InnerHermitian for complex vectors.
func Dot[T any](a, b *Vector[T]) (T, error) {
	var zero T
	if err := check("Dot", a, b); err != nil {
		return zero, err
	}
	if err := sameLen("Dot", a, b); err != nil {
		return zero, err
	}
	out := tensor.Empty(a.Algebra())
	if err := tensor.InnerProduct(0, 0, a.t, b.t, out); err != nil {
		return zero, vectorErrorf("Dot", err)
	}
	return out.At()
}

// InnerHermitian returns Σ conj(aᵢ)·bᵢ. For real algebras it equals Dot.
func InnerHermitian[T any](a, b *Vector[T]) (T, error) {
	var zero T
	if err := check("InnerHermitian", a, b); err != nil {
		return zero, err
	}
	if err := sameLen("InnerHermitian", a, b); err != nil {
		return zero, err
	}
	alg := a.Algebra()
	x, y := a.t.Storage().Raw(), b.t.Storage().Raw()
	acc := alg.Zero()
	for i := range x {
		acc = alg.Add(acc, alg.Mul(alg.Conj(x[i]), y[i]))
	}
	return acc, nil
}

// Cross sets c = a × b for three-component vectors, evaluated as
//
//	cᵢ = ε_ijk a_j b_k
//
// by two inner products with the Levi-Civita symbol. Other lengths fail
// with lvalg.ErrShapeMismatch.
func Cross[T any](a, b, c *Vector[T]) error {
	if err := check("Cross", a, b, c); err != nil {
		return err
	}
	if a.Len() != 3 || b.Len() != 3 {
		return vectorErrorf("Cross", errors.Wrapf(lvalg.ErrShapeMismatch, "lengths %d and %d, need 3", a.Len(), b.Len()))
	}
	alg := a.Algebra()
	eps, err := tensor.LeviCivita(alg, 3)
	if err != nil {
		return vectorErrorf("Cross", err)
	}
	epsA := tensor.Empty(alg)
	if err := tensor.InnerProduct(1, 0, eps, a.t, epsA); err != nil {
		return vectorErrorf("Cross", err)
	}
	return vectorErrorf("Cross", tensor.InnerProduct(1, 0, epsA, b.t, c.t))
}

// Norm returns the Euclidean norm sqrt(Σ |aᵢ|²).
func Norm[T any](a *Vector[T]) T { return tensor.FrobeniusNorm(a.t) }

// Normalize sets b = a / ‖a‖. A zero vector divides by zero and follows the
// algebra: NaN components for floating algebras.
func Normalize[T any](a, b *Vector[T]) error {
	if err := check("Normalize", a, b); err != nil {
		return err
	}
	return vectorErrorf("Normalize", tensor.DivScalar(a.t, Norm(a), b.t))
}

// MaxAbs returns the component of largest magnitude as |aᵢ|.
func MaxAbs[T any](a *Vector[T]) T {
	return transform.NewOps(a.Algebra()).MaxAbs(a.t.Storage().Raw())
}
