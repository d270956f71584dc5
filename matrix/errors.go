// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Every sentinel is marked with its lvalg taxonomy error, so callers
// may match either one with errors.Is. No kernel panics on user-triggered
// conditions; panics are reserved for nonsensical Option values.

package matrix

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/lvalg"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Kernels wrap with matrixErrorf(tag, err) so the
// rendered error reads "matrix.<Op>: <cause>" and keeps a stack trace.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil handle -> shape/index -> capability -> structural violations
// (non-square, asymmetry) -> numeric outcome (singular, not converged).

var (
	// ErrNilMatrix indicates that a nil *Dense (operand or output) was used.
	ErrNilMatrix = lvalg.Mark("matrix: nil matrix", lvalg.ErrInvalidArgument)

	// ErrBadShape is returned when a requested shape is negative.
	ErrBadShape = lvalg.Mark("matrix: invalid shape", lvalg.ErrInvalidArgument)

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Add on different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = lvalg.Mark("matrix: dimension mismatch", lvalg.ErrShapeMismatch)

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = lvalg.Mark("matrix: matrix is not square", lvalg.ErrInvalidArgument)

	// ErrAsymmetry signals that a matrix expected to be symmetric violated
	// symmetry within the configured epsilon.
	ErrAsymmetry = lvalg.Mark("matrix: matrix is not symmetric within eps", lvalg.ErrInvalidArgument)

	// ErrSingular is returned when no nonzero pivot exists during
	// inversion, factorization or solving.
	ErrSingular = lvalg.Mark("matrix: singular matrix", lvalg.ErrSingular)

	// ErrEigenFailed indicates that the Jacobi routine did not reach the
	// configured epsilon within its rotation budget.
	ErrEigenFailed = lvalg.Mark("matrix: eigen decomposition failed", lvalg.ErrNotConverged)
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opNew           = "NewDense"
	opIdentity      = "NewIdentity"
	opFromRows      = "FromRows"
	opFromSlice     = "FromSlice"
	opParse         = "Parse"
	opFromTensor    = "FromTensor"
	opToTensor      = "ToTensor"
	opAt            = "At"
	opSet           = "Set"
	opRow           = "Row"
	opCol           = "Col"
	opAdd           = "Add"
	opSub           = "Sub"
	opHadamard      = "Hadamard"
	opElementwise   = "Elementwise"
	opMul           = "Mul"
	opMatVec        = "MatVec"
	opTranspose     = "Transpose"
	opConjTranspose = "ConjTranspose"
	opTrace         = "Trace"
	opDeterminant   = "Determinant"
	opInvert        = "Invert"
	opLU            = "LU"
	opSolve         = "Solve"
	opQR            = "QR"
	opEigen         = "EigenSym"
	opPower         = "Power"
	opSpectralNorm  = "SpectralNorm"
	opSqrt          = "Sqrt"
)

// matrixErrorf wraps err with an operation tag, preserving the original
// error for errors.Is/As. A nil err yields nil, so kernels may return
// matrixErrorf(tag, call()) directly.
func matrixErrorf(tag string, err error) error {
	return errors.Wrapf(err, "matrix.%s", tag)
}

// unsupportedf reports a missing scalar capability.
func unsupportedf(tag, capability string) error {
	return errors.Wrapf(lvalg.ErrUnsupported, "matrix.%s: algebra lacks %s", tag, capability)
}
