// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the universal linear-algebra
// kernels (products, elimination, factorizations, spectral).
package matrix_test

import (
	"math/big"
	"sort"
	"testing"

	"github.com/go-logr/logr/testr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvalg"
	"github.com/katalvlaran/lvalg/matrix"
	"github.com/katalvlaran/lvalg/vector"
)

func TestMul(t *testing.T) {
	tests := []struct {
		name, a, b, want string
	}{
		{"square", "[[1,2],[3,4]]", "[[5,6],[7,8]]", "[[19,22],[43,50]]"},
		{"rectangular", "[[1,2,3],[4,5,6]]", "[[7,8],[9,10],[11,12]]", "[[58,64],[139,154]]"},
		{"row times column", "[[1,2,3]]", "[[4],[5],[6]]", "[[32]]"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out := Out()
			require.NoError(t, matrix.Mul(MustParse(t, tc.a), MustParse(t, tc.b), out))
			assert.Equal(t, tc.want, out.String())
		})
	}

	err := matrix.Mul(MustParse(t, "[[1,2]]"), MustParse(t, "[[1,2]]"), Out())
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	assert.ErrorIs(t, err, lvalg.ErrShapeMismatch)

	a := MustParse(t, "[[1,2],[3,4]]")
	require.NoError(t, matrix.Mul(a, a, a))
	assert.Equal(t, "[[7,10],[15,22]]", a.String(), "aliased output")
}

func TestMatVec(t *testing.T) {
	a := MustParse(t, "[[1,2],[3,4],[5,6]]")
	x, err := vector.Parse[float64](f64, "[1,-1]")
	require.NoError(t, err)
	y := vector.Empty[float64](f64)
	require.NoError(t, matrix.MatVec(a, x, y))
	assert.Equal(t, "[-1,-1,-1]", y.String())

	short, _ := vector.Parse[float64](f64, "[1]")
	assert.ErrorIs(t, matrix.MatVec(a, short, y), matrix.ErrDimensionMismatch)
	assert.ErrorIs(t, matrix.MatVec(a, nil, y), matrix.ErrNilMatrix)

	// y bound here, MatVec run elsewhere
	y.Tensor().Storage().BindToCurrentGoroutine()
	defer y.Tensor().Storage().Unbind()
	errc := make(chan error)
	go func() { errc <- matrix.MatVec(a, x, y) }()
	assert.ErrorIs(t, <-errc, lvalg.ErrForeignGoroutine)
	assert.Equal(t, "[-1,-1,-1]", y.String(), "rejected output is untouched")
	require.NoError(t, matrix.MatVec(a, x, y))
}

func TestTransposeAndTrace(t *testing.T) {
	a := MustParse(t, "[[1,2,3],[4,5,6]]")
	out := Out()
	require.NoError(t, matrix.Transpose(a, out))
	assert.Equal(t, "[[1,4],[2,5],[3,6]]", out.String())

	require.NoError(t, matrix.Transpose(a, a))
	assert.Equal(t, "[[1,4],[2,5],[3,6]]", a.String(), "aliased output")

	c := cplx()
	z, err := matrix.Parse[cx](c, "[[1+1i,2],[3-2i,4]]")
	require.NoError(t, err)
	zh := matrix.Empty[cx](c)
	require.NoError(t, matrix.ConjTranspose(z, zh))
	want, _ := matrix.Parse[cx](c, "[[1-1i,3+2i],[2,4]]")
	assert.True(t, matrix.Equal(want, zh), "got %s", zh)

	tr, err := matrix.Trace(MustParse(t, "[[1,2],[3,4]]"))
	require.NoError(t, err)
	assert.Equal(t, 5.0, tr)
	_, err = matrix.Trace(MustParse(t, "[[1,2,3]]"))
	assert.ErrorIs(t, err, matrix.ErrNonSquare)
	assert.ErrorIs(t, err, lvalg.ErrInvalidArgument)
}

func TestDeterminant(t *testing.T) {
	tests := []struct {
		name, in, want string
	}{
		{"2x2", "[[1,2],[3,4]]", "-2"},
		{"3x3", "[[2,0,1],[1,3,2],[1,1,2]]", "6"},
		{"needs swap", "[[0,1],[1,0]]", "-1"},
		{"singular", "[[1,2],[2,4]]", "0"},
		{"empty", "[]", "1"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			det, err := matrix.Determinant(MustParseRat(t, tc.in))
			require.NoError(t, err)
			assert.Equal(t, tc.want, det.RatString())
		})
	}

	det, err := matrix.Determinant(MustParse(t, "[[1,2],[3,4]]"))
	require.NoError(t, err)
	assert.InDelta(t, -2.0, det, 1e-12)

	_, err = matrix.Determinant(MustParse(t, "[[1,2,3],[4,5,6]]"))
	assert.ErrorIs(t, err, matrix.ErrNonSquare)
}

func TestInvert(t *testing.T) {
	inv := OutRat()
	require.NoError(t, matrix.Invert(MustParseRat(t, "[[4,7],[2,6]]"), inv))
	assert.Equal(t, "[[3/5,-7/10],[-1/5,2/5]]", inv.String())

	err := matrix.Invert(MustParseRat(t, "[[1,2],[2,4]]"), inv)
	assert.ErrorIs(t, err, matrix.ErrSingular)
	assert.ErrorIs(t, err, lvalg.ErrSingular)

	perm := MustParse(t, "[[0,1],[1,0]]")
	out := Out()
	require.NoError(t, matrix.Invert(perm, out))
	assert.Equal(t, "[[0,1],[1,0]]", out.String())
	assert.ErrorIs(t, matrix.Invert(perm, out, matrix.WithPivoting(false)), matrix.ErrSingular)

	assert.ErrorIs(t, matrix.Invert(MustParse(t, "[[1,2]]"), out), matrix.ErrNonSquare)
}

func TestInvert_MulIsIdentity(t *testing.T) {
	for _, seed := range []int64{1, 7, 42} {
		a := RandDense(t, 5, 5, seed)
		inv, prod := Out(), Out()
		require.NoError(t, matrix.Invert(a, inv, matrix.WithLogger(testr.New(t))))
		require.NoError(t, matrix.Mul(a, inv, prod))
		RequireClose(t, MustIdentity(t, 5), prod, 1e-9)
	}
}

// permute returns P·A for the row permutation perm.
func permute(t *testing.T, a *matrix.Dense[*big.Rat], perm []int) *matrix.Dense[*big.Rat] {
	t.Helper()
	rows := make([][]*big.Rat, len(perm))
	for i, p := range perm {
		row, err := a.Row(p)
		require.NoError(t, err)
		rows[i] = row
	}
	pa, err := matrix.FromRows[*big.Rat](rat, rows)
	require.NoError(t, err)

	return pa
}

func TestLU(t *testing.T) {
	a := MustParseRat(t, "[[1,2],[3,4]]")
	l, u, perm, err := matrix.LU(a)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0}, perm)
	assert.Equal(t, "[[1,0],[1/3,1]]", l.String())
	assert.Equal(t, "[[3,4],[0,2/3]]", u.String())

	b := MustParseRat(t, "[[2,0,1],[1,3,2],[1,1,2]]")
	l, u, perm, err = matrix.LU(b)
	require.NoError(t, err)
	lu := OutRat()
	require.NoError(t, matrix.Mul(l, u, lu))
	assert.True(t, matrix.Equal(permute(t, b, perm), lu), "P·A = %s, L·U = %s", permute(t, b, perm), lu)

	_, _, _, err = matrix.LU(MustParseRat(t, "[[0,1],[1,0]]"), matrix.WithPivoting(false))
	assert.ErrorIs(t, err, matrix.ErrSingular)
	_, _, _, err = matrix.LU(MustParseRat(t, "[[1,2],[2,4]]"))
	assert.ErrorIs(t, err, matrix.ErrSingular)
}

func TestSolve(t *testing.T) {
	a := MustParseRat(t, "[[2,1],[1,3]]")
	x := OutRat()
	require.NoError(t, matrix.Solve(a, MustParseRat(t, "[[3],[5]]"), x))
	assert.Equal(t, "[[4/5],[7/5]]", x.String())

	require.NoError(t, matrix.Solve(a, MustParseRat(t, "[[3,1],[5,0]]"), x))
	assert.Equal(t, "[[4/5,3/5],[7/5,-1/5]]", x.String())

	err := matrix.Solve(a, MustParseRat(t, "[[1],[2],[3]]"), x)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	err = matrix.Solve(MustParseRat(t, "[[1,1],[1,1]]"), MustParseRat(t, "[[1],[2]]"), x)
	assert.ErrorIs(t, err, matrix.ErrSingular)

	f := RandDense(t, 4, 4, 3)
	rhs := RandDense(t, 4, 2, 4)
	sol, back := Out(), Out()
	require.NoError(t, matrix.Solve(f, rhs, sol))
	require.NoError(t, matrix.Mul(f, sol, back))
	RequireClose(t, rhs, back, 1e-9)
}

func TestQR(t *testing.T) {
	a := RandDense(t, 5, 3, 11)
	q, r, err := matrix.QR(a)
	require.NoError(t, err)
	assert.Equal(t, 5, q.Rows())
	assert.Equal(t, 3, q.Cols())

	qr := Out()
	require.NoError(t, matrix.Mul(q, r, qr))
	RequireClose(t, a, qr, 1e-12)

	qt, qtq := Out(), Out()
	require.NoError(t, matrix.Transpose(q, qt))
	require.NoError(t, matrix.Mul(qt, q, qtq))
	RequireClose(t, MustIdentity(t, 3), qtq, 1e-12)

	rv, _ := r.At(2, 0)
	assert.Zero(t, rv, "R must be upper triangular")

	_, _, err = matrix.QR(MustParse(t, "[[1,2,3]]"))
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestEigenSym(t *testing.T) {
	a := MustParse(t, "[[2,1],[1,2]]")
	vals, vecs, err := matrix.EigenSym(a, matrix.WithLogger(testr.NewWithOptions(t, testr.Options{Verbosity: 1})))
	require.NoError(t, err)
	sorted := append([]float64(nil), vals...)
	sort.Float64s(sorted)
	assert.InDeltaSlice(t, []float64{1, 3}, sorted, 1e-12)

	// A·v = λ·v for every eigenpair.
	av := Out()
	require.NoError(t, matrix.Mul(a, vecs, av))
	for j, lambda := range vals {
		for i := 0; i < 2; i++ {
			got, _ := av.At(i, j)
			v, _ := vecs.At(i, j)
			assert.InDelta(t, lambda*v, got, 1e-12)
		}
	}

	b := MustParse(t, "[[4,1,2],[1,3,1],[2,1,5]]")
	vals, _, err = matrix.EigenSym(b)
	require.NoError(t, err)
	sum := 0.0
	for _, v := range vals {
		sum += v
	}
	assert.InDelta(t, 12.0, sum, 1e-10, "trace is preserved")

	_, _, err = matrix.EigenSym(b, matrix.WithJacobiRotations(1))
	assert.ErrorIs(t, err, matrix.ErrEigenFailed)
	assert.ErrorIs(t, err, lvalg.ErrNotConverged)

	_, _, err = matrix.EigenSym(MustParse(t, "[[1,2],[3,4]]"))
	assert.ErrorIs(t, err, matrix.ErrAsymmetry)
	_, _, err = matrix.EigenSym(MustParse(t, "[[1,2,3]]"))
	assert.ErrorIs(t, err, matrix.ErrNonSquare)

	z, _ := matrix.Parse[cx](cplx(), "[[1,0],[0,1]]")
	_, _, err = matrix.EigenSym(z)
	assert.ErrorIs(t, err, lvalg.ErrUnsupported)
}

func TestPower(t *testing.T) {
	a := MustParseRat(t, "[[1,1],[0,1]]")
	out := OutRat()

	tests := []struct {
		n    int
		want string
	}{
		{0, "[[1,0],[0,1]]"},
		{1, "[[1,1],[0,1]]"},
		{3, "[[1,3],[0,1]]"},
		{-1, "[[1,-1],[0,1]]"},
		{-2, "[[1,-2],[0,1]]"},
	}
	for _, tc := range tests {
		require.NoError(t, matrix.Power(tc.n, a, out))
		assert.Equal(t, tc.want, out.String(), "n=%d", tc.n)
	}

	f := RandDense(t, 3, 3, 5)
	sq, p2 := Out(), Out()
	require.NoError(t, matrix.Mul(f, f, sq))
	require.NoError(t, matrix.Power(2, f, p2))
	RequireClose(t, sq, p2, 1e-12)

	err := matrix.Power(-1, MustParseRat(t, "[[1,2],[2,4]]"), out)
	assert.ErrorIs(t, err, matrix.ErrSingular)
	assert.ErrorIs(t, matrix.Power(2, MustParseRat(t, "[[1,2]]"), out), matrix.ErrNonSquare)
}
