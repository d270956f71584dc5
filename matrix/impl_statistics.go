// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Column statistics (centering, covariance, correlation) and row
//     normalization as compositions over Mul/ConjTranspose/Scale, so every
//     algebra gets them for free (rationals exactly).
//
// Exposed API:
//   - CenterColumns(X, out) -> means   // subtract per-column mean
//   - CenterRows(X, out)    -> means   // subtract per-row mean
//   - NormalizeRowsL2(X, out) -> norms // degenerate rows unchanged
//   - Covariance(X, out)    -> means   // (Xcᴴ Xc)/(r-1)
//   - Correlation(X, out)   -> stds    // Pearson; std = 0 → zero column
//
// Determinism:
//   - Fixed i→j traversal for all explicit loops.

package matrix

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/lvalg/scalar"
)

const (
	opCenterColumns   = "CenterColumns"
	opCenterRows      = "CenterRows"
	opNormalizeRowsL2 = "NormalizeRowsL2"
	opCovariance      = "Covariance"
	opCorrelation     = "Correlation"
)

func zeros[T any](alg scalar.Algebra[T], n int) []T {
	out := make([]T, n)
	for i := range out {
		out[i] = alg.Zero()
	}

	return out
}

// columnMeans returns Σ_i X[i,j]/r and the centered copy of raw.
func columnMeans[T any](alg scalar.Algebra[T], raw []T, r, c int) (means, centered []T) {
	means = zeros(alg, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			means[j] = alg.Add(means[j], raw[i*c+j])
		}
	}
	if r == 0 {
		return means, nil
	}
	n := alg.FromInt64(int64(r))
	for j := range means {
		means[j] = alg.Div(means[j], n)
	}
	centered = make([]T, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			centered[i*c+j] = alg.Sub(raw[i*c+j], means[j])
		}
	}

	return means, centered
}

// CenterColumns sets out = X with each column's mean subtracted and returns
// the means (len = cols).
//
// Behavior highlights:
//   - Zero rows: means are Zero and out becomes a copy of X.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// AI-Hints:
//   - Keep the means to un-center later with AddScalar per column.
func CenterColumns[T any](x, out *Dense[T]) ([]T, error) {
	if err := validateNotNil(x); err != nil {
		return nil, matrixErrorf(opCenterColumns, err)
	}
	if err := validateOutput(out); err != nil {
		return nil, matrixErrorf(opCenterColumns, err)
	}
	means, centered := columnMeans(x.alg, x.data.Raw(), x.r, x.c)
	if centered == nil {
		centered = x.Data()
	}
	out.install(x.alg, x.r, x.c, centered)

	return means, nil
}

// CenterRows sets out = X with each row's mean subtracted and returns the
// means (len = rows).
func CenterRows[T any](x, out *Dense[T]) ([]T, error) {
	if err := validateNotNil(x); err != nil {
		return nil, matrixErrorf(opCenterRows, err)
	}
	if err := validateOutput(out); err != nil {
		return nil, matrixErrorf(opCenterRows, err)
	}
	alg, r, c, raw := x.alg, x.r, x.c, x.data.Raw()
	means := zeros(alg, r)
	res := x.Data()
	if c > 0 {
		n := alg.FromInt64(int64(c))
		for i := 0; i < r; i++ {
			for j := 0; j < c; j++ {
				means[i] = alg.Add(means[i], raw[i*c+j])
			}
			means[i] = alg.Div(means[i], n)
			for j := 0; j < c; j++ {
				res[i*c+j] = alg.Sub(raw[i*c+j], means[i])
			}
		}
	}
	out.install(alg, r, c, res)

	return means, nil
}

// NormalizeRowsL2 divides every row by its Euclidean norm and returns the
// norms. Rows with zero norm are left unchanged.
func NormalizeRowsL2[T any](x, out *Dense[T]) ([]T, error) {
	if err := validateNotNil(x); err != nil {
		return nil, matrixErrorf(opNormalizeRowsL2, err)
	}
	if err := validateOutput(out); err != nil {
		return nil, matrixErrorf(opNormalizeRowsL2, err)
	}
	alg, r, c := x.alg, x.r, x.c
	res := x.Data()
	norms := make([]T, r)
	for i := 0; i < r; i++ {
		acc := alg.Zero()
		for j := 0; j < c; j++ {
			acc = alg.Add(acc, scalar.AbsSq(alg, res[i*c+j]))
		}
		norms[i] = alg.Sqrt(acc)
		if alg.IsZero(norms[i]) {
			continue // degenerate row
		}
		for j := 0; j < c; j++ {
			res[i*c+j] = alg.Div(res[i*c+j], norms[i])
		}
	}
	out.install(alg, r, c, res)

	return norms, nil
}

// gram returns (Yᴴ Y)/(r-1) for the r×c row-major y.
func gram[T any](alg scalar.Algebra[T], y []T, r, c int) []T {
	yh := make([]T, c*r)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			yh[j*r+i] = alg.Conj(y[i*c+j])
		}
	}
	g := mulRaw(alg, yh, c, r, y, c)
	d := alg.FromInt64(int64(r - 1))
	for i := range g {
		g[i] = alg.Div(g[i], d)
	}

	return g
}

// Covariance sets out to the sample covariance of the columns of X,
// (Xcᴴ Xc)/(r-1), and returns the column means.
//
// Behavior highlights:
//   - No columns: out is 0×0.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (fewer than two rows when c > 0).
//
// Complexity:
//   - Time O(r*c²), Space O(c² + r*c).
func Covariance[T any](x, out *Dense[T]) ([]T, error) {
	if err := validateNotNil(x); err != nil {
		return nil, matrixErrorf(opCovariance, err)
	}
	if err := validateOutput(out); err != nil {
		return nil, matrixErrorf(opCovariance, err)
	}
	alg, r, c := x.alg, x.r, x.c
	if c == 0 {
		out.install(alg, 0, 0, nil)
		return nil, nil
	}
	if r < 2 {
		return nil, matrixErrorf(opCovariance, errors.Wrapf(ErrDimensionMismatch, "%d observations, need 2", r))
	}
	means, centered := columnMeans(alg, x.data.Raw(), r, c)
	out.install(alg, c, c, gram(alg, centered, r, c))

	return means, nil
}

// Correlation sets out to the Pearson correlation of the columns of X and
// returns the sample standard deviations.
// Implementation:
//   - Stage 1: Center columns.
//   - Stage 2: std[j] = sqrt(Σ_i |Xc[i,j]|²/(r-1)); Z = Xc·diag(1/std).
//   - Stage 3: Corr = (Zᴴ Z)/(r-1).
//
// Behavior highlights:
//   - A constant column (std = 0) becomes a zero row and column in out.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (fewer than two rows when c > 0).
func Correlation[T any](x, out *Dense[T]) ([]T, error) {
	if err := validateNotNil(x); err != nil {
		return nil, matrixErrorf(opCorrelation, err)
	}
	if err := validateOutput(out); err != nil {
		return nil, matrixErrorf(opCorrelation, err)
	}
	alg, r, c := x.alg, x.r, x.c
	if c == 0 {
		out.install(alg, 0, 0, nil)
		return nil, nil
	}
	if r < 2 {
		return nil, matrixErrorf(opCorrelation, errors.Wrapf(ErrDimensionMismatch, "%d observations, need 2", r))
	}
	_, z := columnMeans(alg, x.data.Raw(), r, c)

	d := alg.FromInt64(int64(r - 1))
	stds := zeros(alg, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			stds[j] = alg.Add(stds[j], scalar.AbsSq(alg, z[i*c+j]))
		}
	}
	for j := range stds {
		stds[j] = alg.Sqrt(alg.Div(stds[j], d))
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if alg.IsZero(stds[j]) {
				z[i*c+j] = alg.Zero()
				continue
			}
			z[i*c+j] = alg.Div(z[i*c+j], stds[j])
		}
	}
	out.install(alg, c, c, gram(alg, z, r, c))

	return stds, nil
}
