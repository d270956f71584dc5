// SPDX-License-Identifier: MIT

package notation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvalg"
	"github.com/katalvlaran/lvalg/notation"
	"github.com/katalvlaran/lvalg/shape"
)

func TestParseNested(t *testing.T) {
	cases := []struct {
		in     string
		dims   shape.Shape
		tokens []string
	}{
		{"[[1,2],[3,4]]", shape.Shape{2, 2}, []string{"1", "2", "3", "4"}},
		{" [ 1 , 2 , 3 ] ", shape.Shape{3}, []string{"1", "2", "3"}},
		{"42", shape.Shape{}, []string{"42"}},
		{"[]", shape.Shape{0}, nil},
		{"[(1,2),(3,-4)]", shape.Shape{2}, []string{"(1,2)", "(3,-4)"}},
		{"[[[1],[2]],[[3],[4]]]", shape.Shape{2, 2, 1}, []string{"1", "2", "3", "4"}},
		{"[1+2i,3-1i]", shape.Shape{2}, []string{"1+2i", "3-1i"}},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			dims, tokens, err := notation.ParseNested(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.dims, dims)
			assert.Equal(t, tc.tokens, tokens)
		})
	}
}

func TestParseNested_Errors(t *testing.T) {
	cases := []struct {
		in     string
		ragged bool
	}{
		{"[[1,2],[3]]", true},
		{"[[1,2],3]", true},
		{"[1,2", false},
		{"[1,,2]", false},
		{"[1,2]x", false},
		{"[(1,2]", false},
		{"", false},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			_, _, err := notation.ParseNested(tc.in)
			require.Error(t, err)
			assert.ErrorIs(t, err, lvalg.ErrParse)
			if tc.ragged {
				assert.ErrorIs(t, err, notation.ErrRagged)
				assert.ErrorIs(t, err, lvalg.ErrInvalidArgument)
			}
		})
	}
}

func TestFormatNested_RoundTrip(t *testing.T) {
	for _, s := range []string{"[[1,2],[3,4]]", "7", "[]", "[[[a]],[[b]]]"} {
		dims, tokens, err := notation.ParseNested(s)
		require.NoError(t, err)
		assert.Equal(t, s, notation.FormatNested(dims, tokens))
	}
	assert.Panics(t, func() { notation.FormatNested(shape.Shape{2}, []string{"1"}) })
}

func TestTuple(t *testing.T) {
	parts, err := notation.ParseTuple("1 : 2.5:-3")
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2.5", "-3"}, parts)
	assert.Equal(t, "1:2.5:-3", notation.FormatTuple(parts))

	_, err = notation.ParseTuple("1::2")
	assert.ErrorIs(t, err, lvalg.ErrParse)
}
