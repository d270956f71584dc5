// SPDX-License-Identifier: MIT
// Package matrix_test: shared helpers for the matrix tests and benchmarks.

package matrix_test

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvalg/matrix"
	"github.com/katalvlaran/lvalg/scalar"
)

var (
	f64 = scalar.Float64{}
	rat = scalar.Rational{}
)

type cx = scalar.Complex[float64]

func cplx() scalar.ComplexAlgebra[float64] { return scalar.NewComplex[float64](f64) }

// OutRat returns an empty rational output handle.
func OutRat() *matrix.Dense[*big.Rat] { return matrix.Empty[*big.Rat](rat) }

// MustParse builds a float64 matrix from "[[..],[..]]" or fails the test.
func MustParse(t testing.TB, s string) *matrix.Dense[float64] {
	t.Helper()
	m, err := matrix.Parse[float64](f64, s)
	require.NoError(t, err)

	return m
}

// MustParseRat builds an exact rational matrix.
func MustParseRat(t testing.TB, s string) *matrix.Dense[*big.Rat] {
	t.Helper()
	m, err := matrix.Parse[*big.Rat](rat, s)
	require.NoError(t, err)

	return m
}

// Out returns an empty float64 output handle.
func Out() *matrix.Dense[float64] { return matrix.Empty[float64](f64) }

// MustIdentity returns the n×n float64 identity.
func MustIdentity(t testing.TB, n int) *matrix.Dense[float64] {
	t.Helper()
	id, err := matrix.NewIdentity[float64](f64, n)
	require.NoError(t, err)

	return id
}

// RandDense fills an r×c matrix from a fixed seed with values in [-1, 1).
func RandDense(t testing.TB, r, c int, seed int64) *matrix.Dense[float64] {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	data := make([]float64, r*c)
	for i := range data {
		data[i] = 2*rng.Float64() - 1
	}
	m, err := matrix.FromSlice[float64](f64, r, c, data)
	require.NoError(t, err)

	return m
}

// RequireClose fails unless got and want agree element-wise within tol.
func RequireClose(t testing.TB, want, got *matrix.Dense[float64], tol float64) {
	t.Helper()
	require.Truef(t, matrix.AllClose(want, got, tol), "want %s\ngot  %s", want, got)
}
