// SPDX-License-Identifier: MIT

package tensor

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/lvalg"
	"github.com/katalvlaran/lvalg/scalar"
)

// Field samples a tensor field at the coordinate x. Every sample of one
// field must have the same rank, dimension and index positions.
type Field[T any] func(x []T) (*Tensor[T], error)

// sampleShifted evaluates f at x ± h·e_axis.
func sampleShifted[T any](f Field[T], x []T, axis int, h T, alg scalar.Algebra[T]) (*Tensor[T], *Tensor[T], error) {
	shifted := make([]T, len(x))
	copy(shifted, x)

	shifted[axis] = alg.Add(x[axis], h)
	plus, err := f(shifted)
	if err != nil {
		return nil, nil, err
	}
	shifted[axis] = alg.Sub(x[axis], h)
	minus, err := f(shifted)
	if err != nil {
		return nil, nil, err
	}
	if plus == nil || minus == nil {
		return nil, nil, ErrNilTensor
	}
	return plus, minus, nil
}

// PartialDerivative sets out to the central difference
//
//	∂f/∂x_axis ≈ (f(x + h·e_axis) − f(x − h·e_axis)) / 2h
//
// The coordinate dimension is len(x); axis outside it fails with
// lvalg.ErrIndexOutOfBounds. Truncation error is O(h²).
func PartialDerivative[T any](axis int, f Field[T], x []T, h T, out *Tensor[T]) error {
	if out == nil || f == nil {
		return tensorErrorf(opPartial, ErrNilTensor)
	}
	if err := out.data.CheckOwner(); err != nil {
		return tensorErrorf(opPartial, err)
	}
	if axis < 0 || axis >= len(x) {
		return tensorErrorf(opPartial, errors.Wrapf(lvalg.ErrIndexOutOfBounds, "axis %d of %d coordinates", axis, len(x)))
	}
	alg := out.alg
	plus, minus, err := sampleShifted(f, x, axis, h, alg)
	if err != nil {
		return tensorErrorf(opPartial, err)
	}
	diff := Empty(plus.alg)
	if err := Sub(plus, minus, diff); err != nil {
		return tensorErrorf(opPartial, err)
	}
	twoH := plus.alg.Add(h, h)
	if err := DivScalar(diff, twoH, out); err != nil {
		return tensorErrorf(opPartial, err)
	}
	return nil
}

// CommaDerivative sets out to f_{,k}: the partials along every coordinate,
// stacked as a new trailing lower index. For a rank-r field sampled at a
// point of dimension n the result has rank r+1; the field's own dimension
// must be n unless r = 0.
func CommaDerivative[T any](f Field[T], x []T, h T, out *Tensor[T]) error {
	if out == nil || f == nil {
		return tensorErrorf(opComma, ErrNilTensor)
	}
	if err := out.data.CheckOwner(); err != nil {
		return tensorErrorf(opComma, err)
	}
	n := len(x)
	if n == 0 {
		return tensorErrorf(opComma, errors.Wrap(lvalg.ErrInvalidArgument, "no coordinates"))
	}
	partials := make([]*Tensor[T], n)
	for k := 0; k < n; k++ {
		partials[k] = Empty(out.alg)
		if err := PartialDerivative(k, f, x, h, partials[k]); err != nil {
			return tensorErrorf(opComma, err)
		}
	}

	first := partials[0]
	if first.rank > 0 && first.dim != n {
		return tensorErrorf(opComma,
			errors.Wrapf(lvalg.ErrShapeMismatch, "field dimension %d at a point of dimension %d", first.dim, n))
	}
	per := first.data.Len()
	data := make([]T, per*n)
	for k, p := range partials {
		src := p.data.Raw()
		for i := 0; i < per; i++ {
			data[i*n+k] = src[i]
		}
	}
	var vars []Variance
	if first.vars != nil {
		vars = append(first.variances(), Lower)
	}
	out.install(first.alg, first.rank+1, n, vars, data)

	return nil
}

// SemicolonDerivative sets out to the covariant derivative f_{;k}. In
// Cartesian coordinates the connection coefficients vanish and the result
// equals CommaDerivative. Fields with index positions would need connection
// coefficients, which are not available, and fail with lvalg.ErrInvalidArgument.
func SemicolonDerivative[T any](f Field[T], x []T, h T, out *Tensor[T]) error {
	if out == nil || f == nil {
		return tensorErrorf(opSemicolon, ErrNilTensor)
	}
	at, err := f(x)
	if err != nil {
		return tensorErrorf(opSemicolon, err)
	}
	if at != nil && !at.IsCartesian() {
		return tensorErrorf(opSemicolon, errors.Wrap(ErrNoMetric, "covariant derivative of a non-Cartesian field"))
	}
	if err := CommaDerivative(f, x, h, out); err != nil {
		return tensorErrorf(opSemicolon, err)
	}
	return nil
}
