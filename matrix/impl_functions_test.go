// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"strings"
	"testing"

	"github.com/go-logr/logr/funcr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvalg/matrix"
)

// diag builds a float64 diagonal matrix.
func diag(t *testing.T, vals ...float64) *matrix.Dense[float64] {
	t.Helper()
	m, err := matrix.NewDense[float64](f64, len(vals), len(vals))
	require.NoError(t, err)
	for i, v := range vals {
		require.NoError(t, m.Set(i, i, v))
	}

	return m
}

func TestTaylorFunctions_Diagonal(t *testing.T) {
	type fn = func(a, out *matrix.Dense[float64], opts ...matrix.Option) error
	tests := []struct {
		name string
		f    fn
		ref  func(float64) float64
		in   []float64
	}{
		{"Exp", matrix.Exp[float64], math.Exp, []float64{0, 1, 2}},
		{"Sin", matrix.Sin[float64], math.Sin, []float64{0.5, 1, -2}},
		{"Cos", matrix.Cos[float64], math.Cos, []float64{0.5, 1, -2}},
		{"Tan", matrix.Tan[float64], math.Tan, []float64{0.3, -0.7}},
		{"Sinh", matrix.Sinh[float64], math.Sinh, []float64{0.5, 1.5}},
		{"Cosh", matrix.Cosh[float64], math.Cosh, []float64{0.5, 1.5}},
		{"Tanh", matrix.Tanh[float64], math.Tanh, []float64{0.5, -1}},
		{"Log", matrix.Log[float64], math.Log, []float64{1, 1.1, 0.9}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			want := make([]float64, len(tc.in))
			for i, x := range tc.in {
				want[i] = tc.ref(x)
			}
			out := Out()
			require.NoError(t, tc.f(diag(t, tc.in...), out))
			RequireClose(t, diag(t, want...), out, 1e-10)

			assert.ErrorIs(t, tc.f(MustParse(t, "[[1,2,3]]"), out), matrix.ErrNonSquare)
			assert.ErrorIs(t, tc.f(nil, out), matrix.ErrNilMatrix)
		})
	}
}

func TestExp_ZeroAndNilpotent(t *testing.T) {
	out := Out()
	require.NoError(t, matrix.Exp(diag(t, 0, 0, 0), out))
	assert.True(t, matrix.Equal(MustIdentity(t, 3), out))

	// exp([[0,1],[0,0]]) = I + N exactly, also over the rationals.
	q := OutRat()
	require.NoError(t, matrix.Exp(MustParseRat(t, "[[0,1],[0,0]]"), q))
	assert.Equal(t, "[[1,1],[0,1]]", q.String())
}

func TestTrigIdentities(t *testing.T) {
	a := RandDense(t, 3, 3, 9)
	require.NoError(t, matrix.Scale(a, 0.5, a))

	s, c, s2, c2, sum := Out(), Out(), Out(), Out(), Out()
	require.NoError(t, matrix.Sin(a, s))
	require.NoError(t, matrix.Cos(a, c))
	require.NoError(t, matrix.Mul(s, s, s2))
	require.NoError(t, matrix.Mul(c, c, c2))
	require.NoError(t, matrix.Add(s2, c2, sum))
	RequireClose(t, MustIdentity(t, 3), sum, 1e-10)

	sh, ch, diff := Out(), Out(), Out()
	require.NoError(t, matrix.Sinh(a, sh))
	require.NoError(t, matrix.Cosh(a, ch))
	require.NoError(t, matrix.Mul(sh, sh, s2))
	require.NoError(t, matrix.Mul(ch, ch, c2))
	require.NoError(t, matrix.Sub(c2, s2, diff))
	RequireClose(t, MustIdentity(t, 3), diff, 1e-10)
}

func TestTaylorTermsOption(t *testing.T) {
	a := MustParse(t, "[[1,2],[3,4]]")
	out := Out()

	require.NoError(t, matrix.Exp(a, out, matrix.WithTaylorTerms(1)))
	assert.True(t, matrix.Equal(MustIdentity(t, 2), out))

	require.NoError(t, matrix.Sin(a, out, matrix.WithTaylorTerms(1)))
	assert.True(t, matrix.Equal(a, out))

	require.NoError(t, matrix.Exp(a, out, matrix.WithTaylorTerms(2)))
	assert.Equal(t, "[[2,2],[3,5]]", out.String())
}

func TestTaylorLogsAtV1(t *testing.T) {
	var lines []string
	logger := funcr.New(func(prefix, args string) { lines = append(lines, args) }, funcr.Options{Verbosity: 1})

	require.NoError(t, matrix.Cosh(diag(t, 1), Out(), matrix.WithLogger(logger), matrix.WithTaylorTerms(5)))
	require.Len(t, lines, 1)
	assert.True(t, strings.Contains(lines[0], `"function"="Cosh"`), lines[0])
	assert.True(t, strings.Contains(lines[0], `"terms"=5`), lines[0])
}

func TestSqrt(t *testing.T) {
	out := Out()
	require.NoError(t, matrix.Sqrt(diag(t, 4, 9), out))
	RequireClose(t, diag(t, 2, 3), out, 1e-12)

	spd := MustParse(t, "[[5,2],[2,3]]")
	root, sq := Out(), Out()
	require.NoError(t, matrix.Sqrt(spd, root, matrix.WithLogger(funcr.New(func(string, string) {}, funcr.Options{}))))
	require.NoError(t, matrix.Mul(root, root, sq))
	RequireClose(t, spd, sq, 1e-10)

	assert.ErrorIs(t, matrix.Sqrt(diag(t, 0, 0), out), matrix.ErrSingular)
	assert.ErrorIs(t, matrix.Sqrt(MustParse(t, "[[1,2]]"), out), matrix.ErrNonSquare)
}
