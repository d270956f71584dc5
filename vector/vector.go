// SPDX-License-Identifier: MIT

// Package vector treats a rank-1 tensor as a vector and adds the products a
// rank-1 view makes natural: dot, Hermitian inner product, cross product
// and norms.
//
// Purpose:
//   - Keep vector code readable without giving up the tensor kernel: every
//     operation here delegates to package tensor, so a Vector is a thin
//     handle and never a second implementation.
//
// Handles follow the tensor convention: results go into an output handle
// (create one with Empty), inputs are never mutated and the output may be
// one of the inputs.
package vector

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/lvalg"
	"github.com/katalvlaran/lvalg/scalar"
	"github.com/katalvlaran/lvalg/tensor"
)

// ErrNilVector reports a nil operand or output handle.
var ErrNilVector = lvalg.Mark("vector: nil vector", lvalg.ErrInvalidArgument)

// ErrNotRankOne reports wrapping or parsing a tensor whose rank is not 1.
var ErrNotRankOne = lvalg.Mark("vector: tensor is not rank 1", lvalg.ErrShapeMismatch)

func vectorErrorf(op string, err error) error {
	return errors.Wrapf(err, "vector.%s", op)
}

// Vector is a rank-1 tensor handle.
type Vector[T any] struct {
	t *tensor.Tensor[T]
}

// New returns the zero vector of length n.
func New[T any](alg scalar.Algebra[T], n int) (*Vector[T], error) {
	t, err := tensor.New(alg, 1, n)
	if err != nil {
		return nil, vectorErrorf("New", err)
	}
	return &Vector[T]{t: t}, nil
}

// Empty returns a length-0 vector, typically used as an output handle.
func Empty[T any](alg scalar.Algebra[T]) *Vector[T] {
	v, _ := New(alg, 0)
	return v
}

// FromSlice copies data into a new vector.
func FromSlice[T any](alg scalar.Algebra[T], data []T) (*Vector[T], error) {
	t, err := tensor.FromSlice(alg, 1, len(data), data)
	if err != nil {
		return nil, vectorErrorf("FromSlice", err)
	}
	return &Vector[T]{t: t}, nil
}

// Parse reads "[a,b,c]".
func Parse[T any](alg scalar.Algebra[T], s string) (*Vector[T], error) {
	t, err := tensor.Parse(alg, s)
	if err != nil {
		return nil, vectorErrorf("Parse", err)
	}
	return FromTensor(t)
}

// FromTensor wraps a deep copy of the rank-1 tensor t.
func FromTensor[T any](t *tensor.Tensor[T]) (*Vector[T], error) {
	if t == nil {
		return nil, vectorErrorf("FromTensor", ErrNilVector)
	}
	if t.Rank() != 1 {
		return nil, vectorErrorf("FromTensor", errors.Wrapf(ErrNotRankOne, "rank %d", t.Rank()))
	}
	return &Vector[T]{t: t.Clone()}, nil
}

// Tensor returns the underlying tensor. Writes through it are visible in v.
func (v *Vector[T]) Tensor() *tensor.Tensor[T] { return v.t }

func (v *Vector[T]) Algebra() scalar.Algebra[T] { return v.t.Algebra() }
func (v *Vector[T]) Len() int                   { return v.t.Dim() }

func (v *Vector[T]) At(i int) (T, error)  { return v.t.At(i) }
func (v *Vector[T]) Set(x T, i int) error { return v.t.Set(x, i) }

// Data returns a copy of the components.
func (v *Vector[T]) Data() []T { return v.t.Data() }

func (v *Vector[T]) Clone() *Vector[T] { return &Vector[T]{t: v.t.Clone()} }

func (v *Vector[T]) String() string { return v.t.String() }

// Equal reports identical length and components.
func (v *Vector[T]) Equal(o *Vector[T]) bool { return v.t.Equal(o.t) }

// Close reports component-wise closeness within tol.
func (v *Vector[T]) Close(o *Vector[T], tol float64) bool { return v.t.Close(o.t, tol) }

func check[T any](op string, vs ...*Vector[T]) error {
	for _, v := range vs {
		if v == nil || v.t == nil {
			return vectorErrorf(op, ErrNilVector)
		}
	}
	return nil
}

// sameLen rejects operands of different length. A length mismatch reaches
// the tensor kernel as a dimension mismatch too, but the message here names
// vector lengths.
func sameLen[T any](op string, a, b *Vector[T]) error {
	if a.Len() != b.Len() {
		return vectorErrorf(op, errors.Wrapf(lvalg.ErrShapeMismatch, "lengths %d and %d", a.Len(), b.Len()))
	}
	return nil
}
