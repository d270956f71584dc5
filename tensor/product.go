// SPDX-License-Identifier: MIT

package tensor

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/lvalg"
	"github.com/katalvlaran/lvalg/shape"
)

func axisOutOfRange(axis, rank int) error {
	return errors.Wrapf(lvalg.ErrIndexOutOfBounds, "axis %d of rank %d", axis, rank)
}

// joinVariances concatenates index positions; nil when both are Cartesian.
func joinVariances[T any](a, b *Tensor[T]) []Variance {
	if a.vars == nil && b.vars == nil {
		return nil
	}
	return append(a.variances(), b.variances()...)
}

// OuterProduct sets c = a ⊗ b: c[i..., j...] = a[i...]·b[j...].
//
// c.rank = a.rank + b.rank and a's indices come first. Both tensors must
// share a dimension unless one of them has rank 0. Index positions are
// concatenated.
//
// Complexity: O(len(a)·len(b)).
func OuterProduct[T any](a, b, c *Tensor[T]) error {
	if err := prepare(opOuter, c, a, b); err != nil {
		return err
	}
	dim := a.dim
	switch {
	case a.rank == 0:
		dim = b.dim
	case b.rank == 0:
	case a.dim != b.dim:
		return tensorErrorf(opOuter, errors.Wrapf(lvalg.ErrShapeMismatch, "dimensions %d and %d", a.dim, b.dim))
	}

	alg := a.alg
	x, y := a.data.Raw(), b.data.Raw()
	out := make([]T, len(x)*len(y))
	for i, av := range x {
		row := out[i*len(y) : (i+1)*len(y)]
		for j, bv := range y {
			row[j] = alg.Mul(av, bv)
		}
	}
	c.install(alg, a.rank+b.rank, dim, joinVariances(a, b), out)

	return nil
}

// Contract sets b to a with indices i and j summed against each other:
//
//	b[rest...] = Σ_k a[..., k (at i), ..., k (at j), ...]
//
// b.rank = a.rank - 2; a rank-2 tensor contracts to its rank-0 trace.
//
// Errors:
//   - i or j outside [0, a.rank): lvalg.ErrIndexOutOfBounds
//   - i == j: ErrSameAxis
//   - non-Cartesian a with equal variance at i and j: ErrSameVariance
//
// Complexity: O(dim^(rank-1)).
func Contract[T any](i, j int, a, b *Tensor[T]) error {
	if err := prepare(opContract, b, a); err != nil {
		return err
	}
	if i < 0 || i >= a.rank {
		return tensorErrorf(opContract, axisOutOfRange(i, a.rank))
	}
	if j < 0 || j >= a.rank {
		return tensorErrorf(opContract, axisOutOfRange(j, a.rank))
	}
	if i == j {
		return tensorErrorf(opContract, errors.Wrapf(ErrSameAxis, "axis %d", i))
	}
	if a.vars != nil && a.vars[i] == a.vars[j] {
		return tensorErrorf(opContract, errors.Wrapf(ErrSameVariance, "axes %d and %d are both %s", i, j, a.vars[i]))
	}

	alg := a.alg
	src := a.data.Raw()
	mult := shape.Multipliers(a.Shape())
	diag := mult[i] + mult[j]

	// remaining axes, in order, with their source strides
	keep := make([]int, 0, a.rank-2)
	for k := 0; k < a.rank; k++ {
		if k != i && k != j {
			keep = append(keep, k)
		}
	}
	var vars []Variance
	if a.vars != nil {
		vars = make([]Variance, 0, len(keep))
		for _, k := range keep {
			vars = append(vars, a.vars[k])
		}
	}

	rest := shape.Cartesian(len(keep), a.dim)
	out := make([]T, rest.NumElements())
	it := shape.NewIterator(rest)
	for it.Next() {
		base := 0
		for n, k := range keep {
			base += it.Index()[n] * mult[k]
		}
		acc := alg.Zero()
		for k := 0; k < a.dim; k++ {
			acc = alg.Add(acc, src[base+k*diag])
		}
		out[it.Offset()] = acc
	}
	b.install(alg, len(keep), a.dim, vars, out)

	return nil
}

// InnerProduct sets c = Contract(i, a.rank+j, a ⊗ b): index i of a is
// summed against index j of b. It is always evaluated as that composition.
func InnerProduct[T any](i, j int, a, b, c *Tensor[T]) error {
	if err := prepare(opInner, c, a, b); err != nil {
		return err
	}
	if i < 0 || i >= a.rank {
		return tensorErrorf(opInner, axisOutOfRange(i, a.rank))
	}
	if j < 0 || j >= b.rank {
		return tensorErrorf(opInner, axisOutOfRange(j, b.rank))
	}
	outer := Empty(a.alg)
	if err := OuterProduct(a, b, outer); err != nil {
		return tensorErrorf(opInner, err)
	}
	if err := Contract(i, a.rank+j, outer, c); err != nil {
		return tensorErrorf(opInner, err)
	}
	return nil
}

// Power sets b to the n-fold outer product a ⊗ a ⊗ ... ⊗ a.
// n = 0 yields the rank-0 unity; n < 0 fails with ErrNegativePower.
func Power[T any](n int, a, b *Tensor[T]) error {
	if err := prepare(opPower, b, a); err != nil {
		return err
	}
	if n < 0 {
		return tensorErrorf(opPower, errors.Wrapf(ErrNegativePower, "n=%d", n))
	}
	if n == 0 {
		b.install(a.alg, 0, a.dim, nil, []T{a.alg.One()})
		return nil
	}
	acc := a.Clone()
	for k := 1; k < n; k++ {
		if err := OuterProduct(acc, a, acc); err != nil {
			return tensorErrorf(opPower, err)
		}
	}
	b.Assign(acc)

	return nil
}

// Transpose sets b to a with axes i and j swapped.
func Transpose[T any](i, j int, a, b *Tensor[T]) error {
	if err := prepare(opTranspose, b, a); err != nil {
		return err
	}
	if i < 0 || i >= a.rank {
		return tensorErrorf(opTranspose, axisOutOfRange(i, a.rank))
	}
	if j < 0 || j >= a.rank {
		return tensorErrorf(opTranspose, axisOutOfRange(j, a.rank))
	}

	src := a.data.Raw()
	dims := a.Shape()
	mult := shape.Multipliers(dims)
	out := make([]T, len(src))
	it := shape.NewIterator(dims)
	for it.Next() {
		idx := it.Index()
		off := it.Offset() - idx[i]*mult[i] - idx[j]*mult[j] + idx[j]*mult[i] + idx[i]*mult[j]
		out[off] = src[it.Offset()]
	}
	vars := a.variancesOrNil()
	if vars != nil {
		vars[i], vars[j] = vars[j], vars[i]
	}
	b.install(a.alg, a.rank, a.dim, vars, out)

	return nil
}

func moveIndex[T any](op string, axis int, a, b *Tensor[T]) error {
	if err := prepare(op, b, a); err != nil {
		return err
	}
	if axis < 0 || axis >= a.rank {
		return tensorErrorf(op, axisOutOfRange(axis, a.rank))
	}
	if a.vars != nil {
		return tensorErrorf(op, errors.Wrapf(ErrNoMetric, "axis %d", axis))
	}
	b.Assign(a)

	return nil
}

// RaiseIndex raises index axis. Cartesian tensors do not distinguish index
// positions, so the result is a copy of a. Non-Cartesian tensors fail with
// ErrNoMetric.
func RaiseIndex[T any](axis int, a, b *Tensor[T]) error { return moveIndex(opRaise, axis, a, b) }

// LowerIndex lowers index axis; see RaiseIndex.
func LowerIndex[T any](axis int, a, b *Tensor[T]) error { return moveIndex(opLower, axis, a, b) }

// BroadcastTo sets b to a stretched to the Cartesian shape (rank, dim)
// under NumPy rules. A rank-0 tensor fills every slot.
func BroadcastTo[T any](a *Tensor[T], rank, dim int, b *Tensor[T]) error {
	if err := prepare(opBroadcast, b, a); err != nil {
		return err
	}
	if rank < 0 || dim < 0 {
		return tensorErrorf(opBroadcast, errors.Wrapf(ErrBadShape, "rank=%d dim=%d", rank, dim))
	}
	target := shape.Cartesian(rank, dim)
	got, _, err := shape.Broadcast(a.Shape(), target)
	if err != nil {
		return tensorErrorf(opBroadcast, err)
	}
	if !got.Equal(target) {
		return tensorErrorf(opBroadcast, errors.Wrapf(lvalg.ErrShapeMismatch, "%v does not stretch to %v", a.Shape(), target))
	}

	src, srcShape := a.data.Raw(), a.Shape()
	out := make([]T, target.NumElements())
	it := shape.NewIterator(target)
	for it.Next() {
		off, err := shape.ToLinear(srcShape, shape.BroadcastIndex(srcShape, it.Index()))
		if err != nil {
			return tensorErrorf(opBroadcast, err)
		}
		out[it.Offset()] = src[off]
	}
	b.install(a.alg, rank, dim, nil, out)

	return nil
}
