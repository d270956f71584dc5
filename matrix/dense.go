// SPDX-License-Identifier: MIT

// Package matrix: the Dense handle.
// Dense is a row-major r×c matrix over any scalar algebra, storing elements
// in a flat storage.Linear for cache friendliness.

package matrix

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/lvalg"
	"github.com/katalvlaran/lvalg/notation"
	"github.com/katalvlaran/lvalg/scalar"
	"github.com/katalvlaran/lvalg/shape"
	"github.com/katalvlaran/lvalg/storage"
	"github.com/katalvlaran/lvalg/tensor"
)

// Dense is a row-major matrix of T values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense[T any] struct {
	alg  scalar.Algebra[T]
	r, c int                // number of rows and columns
	data *storage.Linear[T] // flat backing storage, length == r*c
}

// NewDense creates an r×c Dense matrix initialized to Zero.
// Empty shapes (r == 0 or c == 0) are allowed; negative ones are not.
// Complexity: O(r*c) time and memory.
func NewDense[T any](alg scalar.Algebra[T], rows, cols int) (*Dense[T], error) {
	if rows < 0 || cols < 0 {
		return nil, matrixErrorf(opNew, errors.Wrapf(ErrBadShape, "%dx%d", rows, cols))
	}

	return &Dense[T]{alg: alg, r: rows, c: cols, data: storage.New(rows*cols, alg.Zero())}, nil
}

// Empty returns a 0×0 matrix, typically used as an output handle.
func Empty[T any](alg scalar.Algebra[T]) *Dense[T] {
	return &Dense[T]{alg: alg, data: storage.New(0, alg.Zero())}
}

// NewIdentity returns the n×n identity.
func NewIdentity[T any](alg scalar.Algebra[T], n int) (*Dense[T], error) {
	m, err := NewDense(alg, n, n)
	if err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}
	raw := m.data.Raw()
	for i := 0; i < n; i++ {
		raw[i*n+i] = alg.One()
	}

	return m, nil
}

// FromRows copies a rectangular [][]T. Rows of different length fail with
// ErrDimensionMismatch.
func FromRows[T any](alg scalar.Algebra[T], rows [][]T) (*Dense[T], error) {
	r := len(rows)
	c := 0
	if r > 0 {
		c = len(rows[0])
	}
	data := make([]T, 0, r*c)
	for i, row := range rows {
		if len(row) != c {
			return nil, matrixErrorf(opFromRows, errors.Wrapf(ErrDimensionMismatch, "row %d has %d columns, want %d", i, len(row), c))
		}
		data = append(data, row...)
	}

	return &Dense[T]{alg: alg, r: r, c: c, data: storage.FromSlice(data)}, nil
}

// FromSlice copies row-major data into an r×c matrix.
func FromSlice[T any](alg scalar.Algebra[T], rows, cols int, data []T) (*Dense[T], error) {
	if rows < 0 || cols < 0 {
		return nil, matrixErrorf(opFromSlice, errors.Wrapf(ErrBadShape, "%dx%d", rows, cols))
	}
	if len(data) != rows*cols {
		return nil, matrixErrorf(opFromSlice, errors.Wrapf(ErrDimensionMismatch, "%d values for %dx%d", len(data), rows, cols))
	}

	return &Dense[T]{alg: alg, r: rows, c: cols, data: storage.FromSlice(data)}, nil
}

// Parse reads "[[1,2],[3,4]]". "[]" is the 0×0 matrix, since bracket text
// cannot carry the column count of a matrix with no rows; any other rank
// fails with ErrDimensionMismatch.
func Parse[T any](alg scalar.Algebra[T], s string) (*Dense[T], error) {
	dims, tokens, err := notation.ParseNested(s)
	if err != nil {
		return nil, matrixErrorf(opParse, err)
	}
	var r, c int
	switch {
	case dims.Rank() == 2:
		r, c = dims[0], dims[1]
	case dims.Rank() == 1 && dims[0] == 0:
	default:
		return nil, matrixErrorf(opParse, errors.Wrapf(ErrDimensionMismatch, "shape %v is not a matrix", dims))
	}
	vals := make([]T, len(tokens))
	for i, tok := range tokens {
		if vals[i], err = alg.Parse(tok); err != nil {
			return nil, matrixErrorf(opParse, err)
		}
	}

	return &Dense[T]{alg: alg, r: r, c: c, data: storage.FromSlice(vals)}, nil
}

// FromTensor copies a rank-2 tensor into a square matrix.
func FromTensor[T any](t *tensor.Tensor[T]) (*Dense[T], error) {
	if t == nil {
		return nil, matrixErrorf(opFromTensor, ErrNilMatrix)
	}
	if t.Rank() != 2 {
		return nil, matrixErrorf(opFromTensor, errors.Wrapf(ErrDimensionMismatch, "tensor rank %d", t.Rank()))
	}

	return &Dense[T]{alg: t.Algebra(), r: t.Dim(), c: t.Dim(), data: storage.FromSlice(t.Storage().Raw())}, nil
}

// ToTensor copies a square matrix into a Cartesian rank-2 tensor.
// Non-square matrices fail with ErrNonSquare.
func (m *Dense[T]) ToTensor() (*tensor.Tensor[T], error) {
	if m.r != m.c {
		return nil, matrixErrorf(opToTensor, errors.Wrapf(ErrNonSquare, "%dx%d", m.r, m.c))
	}
	t, err := tensor.FromSlice(m.alg, 2, m.r, m.data.Raw())

	return t, matrixErrorf(opToTensor, err)
}

// ---------- accessors ----------

// Algebra returns the element algebra.
func (m *Dense[T]) Algebra() scalar.Algebra[T] { return m.alg }

// Rows returns the number of rows in the matrix.
// Complexity: O(1).
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the number of columns in the matrix.
// Complexity: O(1).
func (m *Dense[T]) Cols() int { return m.c }

// Shape returns (rows, cols).
func (m *Dense[T]) Shape() shape.Shape { return shape.Shape{m.r, m.c} }

// IsSquare reports Rows == Cols.
func (m *Dense[T]) IsSquare() bool { return m.r == m.c }

// Storage exposes the backing storage, e.g. to bind it to a goroutine.
func (m *Dense[T]) Storage() *storage.Linear[T] { return m.data }

// indexOf computes the flat index for (row, col) or returns
// lvalg.ErrIndexOutOfBounds.
// Complexity: O(1).
func (m *Dense[T]) indexOf(tag string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, matrixErrorf(tag, errors.Wrapf(lvalg.ErrIndexOutOfBounds, "(%d,%d) outside %dx%d", row, col, m.r, m.c))
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	idx, err := m.indexOf(opAt, row, col)
	if err != nil {
		var zero T
		return zero, err
	}

	return m.data.Raw()[idx], nil
}

// Set assigns value v at (row, col).
// Complexity: O(1).
func (m *Dense[T]) Set(row, col int, v T) error {
	idx, err := m.indexOf(opSet, row, col)
	if err != nil {
		return err
	}
	m.data.Raw()[idx] = v

	return nil
}

// Row returns a copy of row i.
func (m *Dense[T]) Row(i int) ([]T, error) {
	if i < 0 || i >= m.r {
		return nil, matrixErrorf(opRow, errors.Wrapf(lvalg.ErrIndexOutOfBounds, "row %d of %d", i, m.r))
	}
	out := make([]T, m.c)
	copy(out, m.data.Raw()[i*m.c:(i+1)*m.c])

	return out, nil
}

// Col returns a copy of column j.
func (m *Dense[T]) Col(j int) ([]T, error) {
	if j < 0 || j >= m.c {
		return nil, matrixErrorf(opCol, errors.Wrapf(lvalg.ErrIndexOutOfBounds, "column %d of %d", j, m.c))
	}
	raw := m.data.Raw()
	out := make([]T, m.r)
	for i := range out {
		out[i] = raw[i*m.c+j]
	}

	return out, nil
}

// Data returns a row-major copy of the elements.
func (m *Dense[T]) Data() []T { return m.data.Data() }

// Clone returns a deep copy of the matrix.
// Complexity: O(r*c) time and memory for copy.
func (m *Dense[T]) Clone() *Dense[T] {
	return &Dense[T]{alg: m.alg, r: m.r, c: m.c, data: m.data.Clone()}
}

// Assign deep-copies src into m.
func (m *Dense[T]) Assign(src *Dense[T]) {
	if m == src {
		return
	}
	m.alg, m.r, m.c = src.alg, src.r, src.c
	m.data.CopyFrom(src.data)
}

// String renders the nested-bracket form, e.g. "[[1,2],[3,4]]". Every 0×c
// matrix renders as "[]" and so parses back as 0×0; r×0 with r > 0 keeps
// its row count as "[[],...]".
// Complexity: O(r*c) for string construction.
func (m *Dense[T]) String() string {
	raw := m.data.Raw()
	tokens := make([]string, len(raw))
	for i, v := range raw {
		tokens[i] = m.alg.Format(v)
	}
	if m.r == 0 {
		return notation.FormatNested(shape.Shape{0}, tokens)
	}

	return notation.FormatNested(m.Shape(), tokens)
}

// ---------- output handle plumbing ----------

// install makes m an r×c matrix holding data, which it takes over.
func (m *Dense[T]) install(alg scalar.Algebra[T], rows, cols int, data []T) {
	m.alg, m.r, m.c = alg, rows, cols
	m.data.Replace(data)
}

// reshape sizes m like `like`, reusing storage when possible.
func (m *Dense[T]) reshape(like *Dense[T]) {
	m.alg, m.r, m.c = like.alg, like.r, like.c
	m.data.Resize(like.r*like.c, like.alg.Zero())
}
