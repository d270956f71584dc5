// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating shape/nil/symmetry checks here.
//  - Return sentinel errors tagged with the validator name so call sites
//    can wrap uniformly with matrixErrorf.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - Symmetry check runs O(n²) on the upper triangle only.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Shape).
//  - Output handles are validated like operands, plus their goroutine binding.

package matrix

import (
	"github.com/cockroachdb/errors"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return errors.Wrapf(err, "%s", tag)
}

// validateNotNil ensures every handle is non-nil.
// Complexity: O(len(ms)).
func validateNotNil[T any](ms ...*Dense[T]) error {
	for _, m := range ms {
		if m == nil || m.data == nil {
			return validatorErrorf("ValidateNotNil", ErrNilMatrix)
		}
	}

	return nil
}

// validateOutput ensures out is non-nil and may be written by the calling
// goroutine.
func validateOutput[T any](out *Dense[T]) error {
	if err := validateNotNil(out); err != nil {
		return err
	}
	if err := out.data.CheckOwner(); err != nil {
		return validatorErrorf("ValidateOutput", err)
	}

	return nil
}

// validateSameShape ensures a and b have equal dimensions. Assumes non-nil.
func validateSameShape[T any](a, b *Dense[T]) error {
	if a.r != b.r || a.c != b.c {
		return validatorErrorf("ValidateSameShape", errors.Wrapf(ErrDimensionMismatch, "%dx%d vs %dx%d", a.r, a.c, b.r, b.c))
	}

	return nil
}

// validateSquare checks that m is square (Rows == Cols). Assumes non-nil.
func validateSquare[T any](m *Dense[T]) error {
	if m.r != m.c {
		return validatorErrorf("ValidateSquare", errors.Wrapf(ErrNonSquare, "%dx%d", m.r, m.c))
	}

	return nil
}

// validateMulCompatible ensures a.Cols == b.Rows. Assumes non-nil.
func validateMulCompatible[T any](a, b *Dense[T]) error {
	if a.c != b.r {
		return validatorErrorf("ValidateMulCompatible", errors.Wrapf(ErrDimensionMismatch, "%dx%d × %dx%d", a.r, a.c, b.r, b.c))
	}

	return nil
}

// validateVecLen ensures len(x) == n.
func validateVecLen[T any](x []T, n int) error {
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", errors.Wrapf(ErrDimensionMismatch, "vector length %d, want %d", len(x), n))
	}

	return nil
}

// validateSymmetric checks |A[i,j] − conj(A[j,i])| ≤ tol for all i<j, i.e.
// Hermitian symmetry (plain symmetry for real algebras).
// Complexity: O(n²) where n = Rows(A). Space: O(1).
func validateSymmetric[T any](m *Dense[T], tol float64) error {
	if err := validateSquare(m); err != nil {
		return err
	}
	n, raw, alg := m.r, m.data.Raw(), m.alg
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if diff := alg.Magnitude(alg.Sub(raw[i*n+j], alg.Conj(raw[j*n+i]))); diff > tol {
				return validatorErrorf("ValidateSymmetric", errors.Wrapf(ErrAsymmetry, "|A[%d,%d]-A[%d,%d]| = %g", i, j, j, i, diff))
			}
		}
	}

	return nil
}

// maxOffDiagonal returns max_{i<j} |A[i,j]| with its position, scanning in
// fixed i→j order so ties resolve to the first pair.
func maxOffDiagonal[T any](m *Dense[T]) (maxOff float64, p, q int) {
	n, raw := m.r, m.data.Raw()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if off := m.alg.Magnitude(raw[i*n+j]); off > maxOff {
				maxOff, p, q = off, i, j
			}
		}
	}

	return maxOff, p, q
}
