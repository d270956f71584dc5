// SPDX-License-Identifier: MIT

package lvalg_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	crerrors "github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvalg"
	"github.com/katalvlaran/lvalg/matrix"
	"github.com/katalvlaran/lvalg/notation"
	"github.com/katalvlaran/lvalg/scalar"
	"github.com/katalvlaran/lvalg/tensor"
	"github.com/katalvlaran/lvalg/tuple"
)

func TestMark_StandardLibraryIs(t *testing.T) {
	narrow := lvalg.Mark("pkg: narrow", lvalg.ErrShapeMismatch)
	wrapped := fmt.Errorf("op: %w", crerrors.Wrap(narrow, "ctx"))

	assert.Equal(t, "pkg: narrow", narrow.Error())
	assert.True(t, stderrors.Is(wrapped, narrow))
	assert.True(t, stderrors.Is(wrapped, lvalg.ErrShapeMismatch))
	assert.False(t, stderrors.Is(wrapped, lvalg.ErrInvalidArgument))
	assert.True(t, crerrors.Is(wrapped, lvalg.ErrShapeMismatch))
}

func TestMark_SecondaryParents(t *testing.T) {
	both := lvalg.Mark("pkg: both", lvalg.ErrParse, lvalg.ErrInvalidArgument)
	err := crerrors.Wrap(both, "ctx")

	assert.True(t, stderrors.Is(err, lvalg.ErrParse))
	assert.True(t, stderrors.Is(err, lvalg.ErrInvalidArgument))
	assert.False(t, stderrors.Is(err, lvalg.ErrSingular))
}

func TestWithCategory(t *testing.T) {
	cause := stderrors.New("bad digit")
	err := lvalg.WithCategory(cause, lvalg.ErrParse)

	assert.Equal(t, "bad digit", err.Error())
	assert.True(t, stderrors.Is(err, cause))
	assert.True(t, stderrors.Is(err, lvalg.ErrParse))
	assert.NoError(t, lvalg.WithCategory(nil, lvalg.ErrParse))
}

// Kernel errors match both their narrow sentinel and the shared category
// through the standard library.
func TestKernelErrors_StandardLibraryIs(t *testing.T) {
	f64 := scalar.Float64{}

	a, err := tensor.New[float64](f64, 2, 2)
	require.NoError(t, err)
	err = tensor.Contract(0, 0, a, tensor.Empty[float64](f64))
	assert.True(t, stderrors.Is(err, tensor.ErrSameAxis))
	assert.True(t, stderrors.Is(err, lvalg.ErrInvalidArgument))

	x, _ := matrix.NewDense[float64](f64, 2, 3)
	y, _ := matrix.NewDense[float64](f64, 2, 3)
	err = matrix.Mul(x, y, matrix.Empty[float64](f64))
	assert.True(t, stderrors.Is(err, lvalg.ErrShapeMismatch))

	_, _, err = notation.ParseNested("[[1,2],[3]]")
	assert.True(t, stderrors.Is(err, notation.ErrRagged))
	assert.True(t, stderrors.Is(err, lvalg.ErrParse))
	assert.True(t, stderrors.Is(err, lvalg.ErrInvalidArgument))

	_, err = f64.Parse("1.2.3")
	assert.True(t, stderrors.Is(err, lvalg.ErrParse))

	pairs, err := tuple.NewAlgebra[float64](f64, 2)
	require.NoError(t, err)
	_, err = pairs.Parse("1:2:3")
	assert.True(t, stderrors.Is(err, lvalg.ErrParse))

	err = tuple.Add(tuple.FromSlice[float64](f64, []float64{1}), tuple.FromSlice[float64](f64, []float64{1, 2}), tuple.Empty[float64](f64))
	assert.True(t, stderrors.Is(err, tuple.ErrLengthMismatch))
	assert.True(t, stderrors.Is(err, lvalg.ErrShapeMismatch))
}
