// SPDX-License-Identifier: MIT

// Package matrix offers dense row-major matrices over any scalar algebra
// and the linear-algebra kernels that act on them.
//
// The matrix package provides:
//
//   - Dense[T] with constructors from rows, flat slices, bracket text
//     ("[[1,2],[3,4]]") and rank-2 tensors.
//   - Element-wise kernels (Add, Sub, Hadamard, scalar broadcasts) driven by
//     package transform.
//   - Products and structure: Mul, MatVec, Transpose, ConjTranspose, Trace,
//     Power.
//   - Elimination and factorizations: Determinant, Invert, LU, Solve, QR.
//   - Spectral kernels: EigenSym (Jacobi) and SpectralNorm (power
//     iteration).
//   - Matrix functions: Exp, Log, Sin, Cos, Tan, Sinh, Cosh, Tanh as
//     fixed-order Taylor series and Sqrt by Denman–Beavers iteration.
//   - Column statistics: CenterColumns, Covariance, Correlation.
//
// Every kernel is written once against scalar.Algebra[T], so the same code
// runs on float32/float64, float16, complex numbers, exact rationals and
// arbitrary-precision decimals. Kernels that need more than field
// operations (ordering for EigenSym and Clip) fail with lvalg.ErrUnsupported
// when the algebra lacks the capability.
//
// Kernels write into a caller-supplied output handle (matrix.Empty works)
// and never mutate their inputs; the output may alias an input. Iterative
// kernels accept Options (WithEpsilon, WithTaylorTerms, WithPowerIterations,
// WithJacobiRotations, WithPivoting, WithLogger).
//
// See the examples in this package for usage patterns.
package matrix
