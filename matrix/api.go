// SPDX-License-Identifier: MIT
// Package matrix: convenience facades.
//
// Purpose:
//   - Small compositions over the core kernels (shape-alike constructors,
//     symmetrization, row/column sums, sanitization, sub-matrix selection).
//   - No new numeric loops beyond simple visitors.

package matrix

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/lvalg"
	"github.com/katalvlaran/lvalg/scalar"
	"github.com/katalvlaran/lvalg/transform"
)

const (
	opSymmetrize    = "Symmetrize"
	opRowSums       = "RowSums"
	opColSums       = "ColSums"
	opClip          = "Clip"
	opReplaceInfNaN = "ReplaceInfNaN"
	opInduced       = "Induced"
)

// ZerosLike returns a Zero matrix with the shape and algebra of m.
func ZerosLike[T any](m *Dense[T]) (*Dense[T], error) {
	if err := validateNotNil(m); err != nil {
		return nil, matrixErrorf(opNew, err)
	}

	return NewDense(m.alg, m.r, m.c)
}

// IdentityLike returns the identity of the same order as the square m.
func IdentityLike[T any](m *Dense[T]) (*Dense[T], error) {
	if err := validateNotNil(m); err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}
	if err := validateSquare(m); err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}

	return NewIdentity(m.alg, m.r)
}

// Symmetrize sets out = (m + mᴴ)/2. Composition: ConjTranspose → Add →
// DivScalar.
// Complexity: O(n²).
//
// AI-Hints: Repairs asymmetry drift before EigenSym.
func Symmetrize[T any](m, out *Dense[T]) error {
	if err := validateNotNil(m); err != nil {
		return matrixErrorf(opSymmetrize, err)
	}
	if err := validateSquare(m); err != nil {
		return matrixErrorf(opSymmetrize, err)
	}
	mh := Empty(m.alg)
	if err := ConjTranspose(m, mh); err != nil {
		return matrixErrorf(opSymmetrize, err)
	}
	if err := Add(m, mh, mh); err != nil {
		return matrixErrorf(opSymmetrize, err)
	}

	return matrixErrorf(opSymmetrize, DivScalar(mh, m.alg.FromInt64(2), out))
}

// onesMul returns a·1 for a (r×c) as a fresh slice of length r.
func onesMul[T any](alg scalar.Algebra[T], a []T, r, c int) []T {
	ones := make([]T, c)
	for j := range ones {
		ones[j] = alg.One()
	}

	return mulRaw(alg, a, r, c, ones, 1)
}

// RowSums returns r where r[i] = Σ_j m[i,j].
// Complexity: O(rc).
func RowSums[T any](m *Dense[T]) ([]T, error) {
	if err := validateNotNil(m); err != nil {
		return nil, matrixErrorf(opRowSums, err)
	}

	return onesMul(m.alg, m.data.Raw(), m.r, m.c), nil
}

// ColSums returns c where c[j] = Σ_i m[i,j].
// Implementation: Transpose, then multiply by ones(rows).
func ColSums[T any](m *Dense[T]) ([]T, error) {
	if err := validateNotNil(m); err != nil {
		return nil, matrixErrorf(opColSums, err)
	}
	mt := Empty(m.alg)
	if err := Transpose(m, mt); err != nil {
		return nil, matrixErrorf(opColSums, err)
	}

	return onesMul(m.alg, mt.data.Raw(), mt.r, mt.c), nil
}

// Clip sets out[i,j] = min(max(m[i,j], lo), hi).
//
// Policy:
//   - lo > hi is normalized by swapping the bounds.
//   - NaN elements stay NaN.
//
// Errors:
//   - ErrNilMatrix, lvalg.ErrUnsupported (unordered algebra).
func Clip[T any](m *Dense[T], lo, hi T, out *Dense[T]) error {
	if err := validateNotNil(m); err != nil {
		return matrixErrorf(opClip, err)
	}
	ord, ok := scalar.AsOrdered(m.alg)
	if !ok {
		return unsupportedf(opClip, "Ordered")
	}
	if ord.Less(hi, lo) {
		lo, hi = hi, lo
	}

	return unary(opClip, m, out, func(dst, src []T) []T {
		return transform.Unary(dst, src, func(v T) T {
			switch {
			case ord.Less(v, lo):
				return lo
			case ord.Less(hi, v):
				return hi
			}
			return v
		})
	})
}

// ReplaceInfNaN sets out to m with every NaN or ±Inf element replaced by val.
//
// Errors:
//   - ErrNilMatrix, lvalg.ErrInvalidArgument (val itself is NaN or Inf).
//
// AI-Hints:
//   - Run before Covariance/Correlation to stop NaN propagation.
func ReplaceInfNaN[T any](m *Dense[T], val T, out *Dense[T]) error {
	if err := validateNotNil(m); err != nil {
		return matrixErrorf(opReplaceInfNaN, err)
	}
	alg := m.alg
	if alg.IsNaN(val) || alg.IsInf(val) {
		return matrixErrorf(opReplaceInfNaN, errors.Wrapf(lvalg.ErrInvalidArgument, "replacement %s is not finite", alg.Format(val)))
	}

	return Apply(func(v T) T {
		if alg.IsNaN(v) || alg.IsInf(v) {
			return val
		}
		return v
	}, m, out)
}

// Induced returns an independent copy of the sub-matrix selecting rowsIdx
// and colsIdx, in the given order.
//
// Behavior highlights:
//   - Duplicate indices repeat rows or columns.
//   - Empty index sets give a legal zero-area matrix.
//
// Errors:
//   - lvalg.ErrIndexOutOfBounds.
//
// Complexity:
//   - Time O(rp*cp), Space O(rp*cp).
func (m *Dense[T]) Induced(rowsIdx, colsIdx []int) (*Dense[T], error) {
	rp, cp := len(rowsIdx), len(colsIdx)
	raw := m.data.Raw()
	data := make([]T, 0, rp*cp)
	for _, ri := range rowsIdx {
		if ri < 0 || ri >= m.r {
			return nil, matrixErrorf(opInduced, errors.Wrapf(lvalg.ErrIndexOutOfBounds, "row index %d", ri))
		}
		for _, cj := range colsIdx {
			if cj < 0 || cj >= m.c {
				return nil, matrixErrorf(opInduced, errors.Wrapf(lvalg.ErrIndexOutOfBounds, "column index %d", cj))
			}
			data = append(data, raw[ri*m.c+cj])
		}
	}

	return FromSlice(m.alg, rp, cp, data)
}

// Do visits each element in row-major order and stops early when f
// returns false.
// Complexity: O(r*c), no allocations.
func (m *Dense[T]) Do(f func(i, j int, v T) bool) {
	raw := m.data.Raw()
	for i := 0; i < m.r; i++ {
		base := i * m.c
		for j := 0; j < m.c; j++ {
			if !f(i, j, raw[base+j]) {
				return
			}
		}
	}
}
