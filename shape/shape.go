// SPDX-License-Identifier: MIT

// Package shape maps between multi-indices and linear offsets.
//
// Layout is row-major: the last axis varies fastest and
//
//	offset = Σ idx[k] · mult[k],   mult[n-1] = 1,   mult[k] = mult[k+1] · dims[k+1]
//
// ToLinear and FromLinear are mutually inverse bijections between the valid
// multi-indices of a shape and [0, NumElements).
package shape

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/lvalg"
)

// Shape is the dimension vector of a structure. Rank 0 (empty) describes a
// scalar with one element.
type Shape []int

// Rank returns the number of axes.
func (s Shape) Rank() int { return len(s) }

// NumElements returns the product of the dimensions (1 for rank 0).
func (s Shape) NumElements() int {
	n := 1
	for _, d := range s {
		n *= d
	}
	return n
}

// Validate rejects negative dimensions.
func (s Shape) Validate() error {
	for i, d := range s {
		if d < 0 {
			return errors.Wrapf(lvalg.ErrInvalidArgument, "shape: dimension %d of %v is negative", i, s)
		}
	}
	return nil
}

// Equal reports identical rank and dimensions.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy.
func (s Shape) Clone() Shape {
	out := make(Shape, len(s))
	copy(out, s)
	return out
}

// String renders "(2,3,4)"; rank 0 renders "()".
func (s Shape) String() string {
	parts := make([]string, len(s))
	for i, d := range s {
		parts[i] = strconv.Itoa(d)
	}
	return "(" + strings.Join(parts, ",") + ")"
}

// Cartesian returns the shape of a rank-r tensor with every axis of size dim.
func Cartesian(rank, dim int) Shape {
	out := make(Shape, rank)
	for i := range out {
		out[i] = dim
	}
	return out
}

// CartesianDim returns the common dimension when every axis has the same
// size. Rank 0 reports (0, true).
func (s Shape) CartesianDim() (int, bool) {
	if len(s) == 0 {
		return 0, true
	}
	for _, d := range s[1:] {
		if d != s[0] {
			return 0, false
		}
	}
	return s[0], true
}

// Multipliers returns the row-major strides of dims.
func Multipliers(dims Shape) []int {
	mult := make([]int, len(dims))
	if len(dims) == 0 {
		return mult
	}
	mult[len(dims)-1] = 1
	for k := len(dims) - 2; k >= 0; k-- {
		mult[k] = mult[k+1] * dims[k+1]
	}
	return mult
}

// Match returns nil iff a and b have equal rank and dimensions.
func Match(a, b Shape) error {
	if a.Equal(b) {
		return nil
	}
	return errors.Wrapf(lvalg.ErrShapeMismatch, "shape: %v vs %v", a, b)
}

// ToLinear maps a multi-index to its row-major offset.
func ToLinear(dims Shape, idx []int) (int, error) {
	if len(idx) != len(dims) {
		return 0, errors.Wrapf(lvalg.ErrShapeMismatch, "shape: index of length %d for rank %d", len(idx), len(dims))
	}
	off, mult := 0, 1
	for k := len(dims) - 1; k >= 0; k-- {
		if idx[k] < 0 || idx[k] >= dims[k] {
			return 0, errors.Wrapf(lvalg.ErrIndexOutOfBounds, "shape: index %v outside %v at axis %d", idx, dims, k)
		}
		off += idx[k] * mult
		mult *= dims[k]
	}
	return off, nil
}

// FromLinear maps a row-major offset back to its multi-index.
func FromLinear(dims Shape, off int) ([]int, error) {
	if off < 0 || off >= dims.NumElements() {
		return nil, errors.Wrapf(lvalg.ErrIndexOutOfBounds, "shape: offset %d outside [0,%d)", off, dims.NumElements())
	}
	idx := make([]int, len(dims))
	for k := len(dims) - 1; k >= 0; k-- {
		idx[k] = off % dims[k]
		off /= dims[k]
	}
	return idx, nil
}

// Broadcast applies NumPy rules: shapes are aligned on the right, missing
// axes count as 1, and a 1 stretches to the other side's size. The bool
// reports whether any stretching happened.
//
//	(3,1) + (3,5) → (3,5), true
//	(3,5) + (3,5) → (3,5), false
//	(3,4) + (3,5) → ErrShapeMismatch
func Broadcast(a, b Shape) (Shape, bool, error) {
	n := max(len(a), len(b))
	out := make(Shape, n)
	stretched := false

	for i := 0; i < n; i++ {
		ad, bd := 1, 1
		if k := len(a) - 1 - i; k >= 0 {
			ad = a[k]
		}
		if k := len(b) - 1 - i; k >= 0 {
			bd = b[k]
		}

		switch {
		case ad == bd:
			out[n-1-i] = ad
		case ad == 1:
			out[n-1-i] = bd
			stretched = true
		case bd == 1:
			out[n-1-i] = ad
			stretched = true
		default:
			return nil, false, errors.Wrapf(lvalg.ErrShapeMismatch,
				"shape: cannot broadcast %v with %v (axis %d: %d vs %d)", a, b, n-1-i, ad, bd)
		}
	}
	if len(a) != len(b) {
		stretched = true
	}

	return out, stretched, nil
}

// BroadcastIndex projects an index of the broadcast shape onto src.
func BroadcastIndex(src Shape, idx []int) []int {
	out := make([]int, len(src))
	shift := len(idx) - len(src)
	for k := range src {
		if src[k] != 1 {
			out[k] = idx[k+shift]
		}
	}
	return out
}
