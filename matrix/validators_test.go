// SPDX-License-Identifier: MIT
// Package matrix contains white-box tests for the validators.
package matrix

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvalg"
	"github.com/katalvlaran/lvalg/scalar"
)

func dense(t *testing.T, r, c int) *Dense[float64] {
	t.Helper()
	m, err := NewDense[float64](scalar.Float64{}, r, c)
	require.NoError(t, err)
	return m
}

// TestValidateSameShape covers nil inputs, matching and mismatched dimensions.
func TestValidateSameShape(t *testing.T) {
	tests := []struct {
		name    string
		a, b    *Dense[float64]
		wantErr error
	}{
		{"equal 2x3", dense(t, 2, 3), dense(t, 2, 3), nil},
		{"row mismatch", dense(t, 2, 3), dense(t, 3, 3), ErrDimensionMismatch},
		{"col mismatch", dense(t, 2, 3), dense(t, 2, 4), ErrDimensionMismatch},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := validateSameShape(tc.a, tc.b)
			if tc.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestValidateNotNilAndOutput(t *testing.T) {
	require.ErrorIs(t, validateNotNil[float64](nil), ErrNilMatrix)
	require.ErrorIs(t, validateNotNil(dense(t, 1, 1), nil), ErrNilMatrix)
	require.NoError(t, validateNotNil(dense(t, 1, 1), dense(t, 0, 0)))

	out := dense(t, 1, 1)
	require.NoError(t, validateOutput(out))

	// An output claimed by another goroutine is rejected.
	done := make(chan struct{})
	go func() {
		out.Storage().BindToCurrentGoroutine()
		close(done)
	}()
	<-done
	require.ErrorIs(t, validateOutput(out), lvalg.ErrForeignGoroutine)
	out.Storage().Unbind()
	require.NoError(t, validateOutput(out))
}

// TestValidateSquare covers square and non-square cases.
func TestValidateSquare(t *testing.T) {
	require.NoError(t, validateSquare(dense(t, 3, 3)))
	require.NoError(t, validateSquare(dense(t, 0, 0)))
	err := validateSquare(dense(t, 2, 3))
	require.ErrorIs(t, err, ErrNonSquare)
	require.ErrorIs(t, err, lvalg.ErrInvalidArgument)
}

func TestValidateMulCompatibleAndVecLen(t *testing.T) {
	require.NoError(t, validateMulCompatible(dense(t, 2, 3), dense(t, 3, 4)))
	require.ErrorIs(t, validateMulCompatible(dense(t, 2, 3), dense(t, 2, 3)), ErrDimensionMismatch)
	require.NoError(t, validateVecLen([]float64{1, 2}, 2))
	require.ErrorIs(t, validateVecLen([]float64{1}, 2), ErrDimensionMismatch)
}

func TestValidateSymmetricAndMaxOff(t *testing.T) {
	m, err := FromRows[float64](scalar.Float64{}, [][]float64{{1, 2, 0}, {2, 1, -5}, {0, -5, 3}})
	require.NoError(t, err)
	require.NoError(t, validateSymmetric(m, 0))

	off, p, q := maxOffDiagonal(m)
	require.Equal(t, 5.0, off)
	require.Equal(t, 1, p)
	require.Equal(t, 2, q)

	require.NoError(t, m.Set(0, 1, 2.5))
	require.ErrorIs(t, validateSymmetric(m, 0.1), ErrAsymmetry)
	require.NoError(t, validateSymmetric(m, 1))
	require.ErrorIs(t, validateSymmetric(dense(t, 1, 2), 1), ErrNonSquare)
}
