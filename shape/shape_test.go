// SPDX-License-Identifier: MIT

package shape_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvalg"
	"github.com/katalvlaran/lvalg/shape"
)

func TestMultipliers_RowMajor(t *testing.T) {
	assert.Equal(t, []int{12, 4, 1}, shape.Multipliers(shape.Shape{2, 3, 4}))
	assert.Equal(t, []int{}, shape.Multipliers(shape.Shape{}))

	off, err := shape.ToLinear(shape.Shape{2, 3, 4}, []int{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, 1*12+2*4+3, off)
}

func TestToLinear_Errors(t *testing.T) {
	_, err := shape.ToLinear(shape.Shape{2, 2}, []int{0, 2})
	assert.ErrorIs(t, err, lvalg.ErrIndexOutOfBounds)

	_, err = shape.ToLinear(shape.Shape{2, 2}, []int{0})
	assert.ErrorIs(t, err, lvalg.ErrShapeMismatch)

	_, err = shape.FromLinear(shape.Shape{2, 2}, 4)
	assert.ErrorIs(t, err, lvalg.ErrIndexOutOfBounds)
}

func TestRankZero(t *testing.T) {
	s := shape.Shape{}
	assert.Equal(t, 1, s.NumElements())

	off, err := shape.ToLinear(s, nil)
	require.NoError(t, err)
	assert.Zero(t, off)

	it := shape.NewIterator(s)
	assert.True(t, it.Next())
	assert.False(t, it.Next())
}

func TestMatchAndCartesian(t *testing.T) {
	require.NoError(t, shape.Match(shape.Shape{3, 3}, shape.Cartesian(2, 3)))
	assert.ErrorIs(t, shape.Match(shape.Shape{3, 3}, shape.Shape{3}), lvalg.ErrShapeMismatch)
	assert.ErrorIs(t, shape.Match(shape.Shape{3, 2}, shape.Shape{2, 3}), lvalg.ErrShapeMismatch)

	d, ok := shape.Shape{4, 4, 4}.CartesianDim()
	assert.True(t, ok)
	assert.Equal(t, 4, d)
	_, ok = shape.Shape{4, 3}.CartesianDim()
	assert.False(t, ok)

	assert.ErrorIs(t, shape.Shape{2, -1}.Validate(), lvalg.ErrInvalidArgument)
	assert.Equal(t, "(2,3)", shape.Shape{2, 3}.String())
}

func TestIterator_Order(t *testing.T) {
	it := shape.NewIterator(shape.Shape{2, 2})
	var seen [][]int
	for it.Next() {
		seen = append(seen, append([]int(nil), it.Index()...))
		assert.Equal(t, len(seen)-1, it.Offset())
	}
	assert.Equal(t, [][]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}}, seen)

	it.Reset()
	require.True(t, it.Next())
	assert.Equal(t, []int{0, 0}, it.Index())

	empty := shape.NewIterator(shape.Shape{3, 0})
	assert.False(t, empty.Next())
}

func TestBroadcast(t *testing.T) {
	cases := []struct {
		a, b    shape.Shape
		want    shape.Shape
		stretch bool
		err     bool
	}{
		{shape.Shape{3, 1}, shape.Shape{3, 5}, shape.Shape{3, 5}, true, false},
		{shape.Shape{3, 5}, shape.Shape{3, 5}, shape.Shape{3, 5}, false, false},
		{shape.Shape{5}, shape.Shape{2, 5}, shape.Shape{2, 5}, true, false},
		{shape.Shape{3, 4}, shape.Shape{3, 5}, nil, false, true},
	}
	for _, tc := range cases {
		t.Run(tc.a.String()+"+"+tc.b.String(), func(t *testing.T) {
			got, stretched, err := shape.Broadcast(tc.a, tc.b)
			if tc.err {
				assert.ErrorIs(t, err, lvalg.ErrShapeMismatch)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.stretch, stretched)
		})
	}

	assert.Equal(t, []int{0, 4}, shape.BroadcastIndex(shape.Shape{1, 5}, []int{2, 4}))
}

func TestLinearIndexBijection(t *testing.T) {
	params := gopter.DefaultTestParameters()
	params.MinSuccessfulTests = 200
	properties := gopter.NewProperties(params)

	dimsGen := gen.SliceOfN(3, gen.IntRange(1, 5))

	properties.Property("FromLinear(ToLinear(idx)) == idx", prop.ForAll(
		func(dims []int, seed int) bool {
			s := shape.Shape(dims)
			off := seed % s.NumElements()
			idx, err := shape.FromLinear(s, off)
			if err != nil {
				return false
			}
			back, err := shape.ToLinear(s, idx)
			return err == nil && back == off
		},
		dimsGen, gen.IntRange(0, 1000),
	))

	properties.Property("offsets agree with multipliers", prop.ForAll(
		func(dims []int, seed int) bool {
			s := shape.Shape(dims)
			idx, _ := shape.FromLinear(s, seed%s.NumElements())
			mult := shape.Multipliers(s)
			sum := 0
			for k := range idx {
				sum += idx[k] * mult[k]
			}
			off, _ := shape.ToLinear(s, idx)
			return sum == off
		},
		dimsGen, gen.IntRange(0, 1000),
	))

	properties.TestingRun(t)
}
