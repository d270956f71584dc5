// SPDX-License-Identifier: MIT

// Package tensor implements tensors of arbitrary rank over any scalar
// algebra.
//
// Purpose:
//   - Provide the structure-level kernel: element-wise arithmetic, outer
//     product, contraction, inner product, tensor powers, index
//     raising/lowering and numeric derivatives of tensor fields.
//   - Stay independent of the element type: every kernel is written once
//     against scalar.Algebra[T].
//
// Model:
//   - A Cartesian tensor of rank r and dimension d has d^r elements stored
//     row-major (see package shape). Its indices are all lower and their
//     position carries no meaning.
//   - NewMixed builds a non-Cartesian tensor that records a Variance per
//     axis. Contraction then requires one upper and one lower index, and
//     raising or lowering fails for lack of a metric.
//
// Handles:
//   - Kernels write into an output handle and return only an error. The
//     output's storage is reallocated when its shape differs from the
//     result; inputs are never modified; the output may be one of the
//     inputs.
//   - Assign and Clone deep-copy, so two handles never share elements.
package tensor

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/lvalg"
	"github.com/katalvlaran/lvalg/notation"
	"github.com/katalvlaran/lvalg/scalar"
	"github.com/katalvlaran/lvalg/shape"
	"github.com/katalvlaran/lvalg/storage"
	"github.com/katalvlaran/lvalg/transform"
)

// Variance is the position of a tensor index.
type Variance uint8

const (
	// Lower marks a covariant (subscript) index.
	Lower Variance = iota
	// Upper marks a contravariant (superscript) index.
	Upper
)

func (v Variance) String() string {
	if v == Upper {
		return "upper"
	}
	return "lower"
}

// Tensor is a rank-r, dimension-d array of elements of one algebra.
type Tensor[T any] struct {
	alg  scalar.Algebra[T]
	rank int
	dim  int
	vars []Variance // nil for Cartesian tensors
	data *storage.Linear[T]
}

func intPow(d, r int) int {
	n := 1
	for i := 0; i < r; i++ {
		n *= d
	}
	return n
}

func newTensor[T any](alg scalar.Algebra[T], rank, dim int, vars []Variance) *Tensor[T] {
	if rank == 0 {
		dim = 0
	}
	return &Tensor[T]{
		alg:  alg,
		rank: rank,
		dim:  dim,
		vars: vars,
		data: storage.New(intPow(dim, rank), alg.Zero()),
	}
}

// New returns a zero-filled Cartesian tensor.
func New[T any](alg scalar.Algebra[T], rank, dim int) (*Tensor[T], error) {
	if rank < 0 || dim < 0 {
		return nil, tensorErrorf(opNew, errors.Wrapf(ErrBadShape, "rank=%d dim=%d", rank, dim))
	}
	return newTensor(alg, rank, dim, nil), nil
}

// NewMixed returns a zero-filled non-Cartesian tensor with one variance per
// axis.
func NewMixed[T any](alg scalar.Algebra[T], dim int, variances ...Variance) (*Tensor[T], error) {
	if dim < 0 {
		return nil, tensorErrorf(opNew, errors.Wrapf(ErrBadShape, "dim=%d", dim))
	}
	vars := make([]Variance, len(variances))
	copy(vars, variances)

	return newTensor(alg, len(vars), dim, vars), nil
}

// Empty returns a rank-0 handle meant to be passed as an output.
func Empty[T any](alg scalar.Algebra[T]) *Tensor[T] {
	return newTensor(alg, 0, 0, nil)
}

// Scalar returns the rank-0 tensor holding v.
func Scalar[T any](alg scalar.Algebra[T], v T) *Tensor[T] {
	t := newTensor(alg, 0, 0, nil)
	t.data.Raw()[0] = v
	return t
}

// Unity returns the rank-0 multiplicative identity.
func Unity[T any](alg scalar.Algebra[T]) *Tensor[T] { return Scalar(alg, alg.One()) }

// FromSlice returns a Cartesian tensor holding a copy of data in row-major
// order. len(data) must be dim^rank.
func FromSlice[T any](alg scalar.Algebra[T], rank, dim int, data []T) (*Tensor[T], error) {
	if rank < 0 || dim < 0 {
		return nil, tensorErrorf(opFromSlice, errors.Wrapf(ErrBadShape, "rank=%d dim=%d", rank, dim))
	}
	if want := intPow(dim, rank); len(data) != want {
		return nil, tensorErrorf(opFromSlice,
			errors.Wrapf(lvalg.ErrShapeMismatch, "got %d elements, rank %d dim %d needs %d", len(data), rank, dim, want))
	}
	if rank == 0 {
		dim = 0
	}
	return &Tensor[T]{alg: alg, rank: rank, dim: dim, data: storage.FromSlice(data)}, nil
}

// Parse reads nested-bracket text such as "[[1,2],[3,4]]". Every axis must
// have the same length.
func Parse[T any](alg scalar.Algebra[T], s string) (*Tensor[T], error) {
	dims, tokens, err := notation.ParseNested(s)
	if err != nil {
		return nil, tensorErrorf(opParse, err)
	}
	dim, ok := dims.CartesianDim()
	if !ok {
		return nil, tensorErrorf(opParse, errors.Wrapf(ErrNotCartesian, "shape %v", dims))
	}
	vals := make([]T, len(tokens))
	for i, tok := range tokens {
		if vals[i], err = alg.Parse(tok); err != nil {
			return nil, tensorErrorf(opParse, err)
		}
	}
	return &Tensor[T]{alg: alg, rank: len(dims), dim: dim, data: storage.FromSlice(vals)}, nil
}

// ---------- accessors ----------

// Algebra returns the element algebra.
func (t *Tensor[T]) Algebra() scalar.Algebra[T] { return t.alg }

func (t *Tensor[T]) Rank() int { return t.rank }
func (t *Tensor[T]) Dim() int  { return t.dim }

// Len returns the element count, dim^rank.
func (t *Tensor[T]) Len() int { return t.data.Len() }

// Shape returns the dimension vector.
func (t *Tensor[T]) Shape() shape.Shape { return shape.Cartesian(t.rank, t.dim) }

// IsCartesian reports whether index positions are irrelevant.
func (t *Tensor[T]) IsCartesian() bool { return t.vars == nil }

// Variance returns the position of the given index.
func (t *Tensor[T]) Variance(axis int) (Variance, error) {
	if axis < 0 || axis >= t.rank {
		return Lower, errors.Wrapf(lvalg.ErrIndexOutOfBounds, "tensor: axis %d of rank %d", axis, t.rank)
	}
	if t.vars == nil {
		return Lower, nil
	}
	return t.vars[axis], nil
}

// variances returns the per-axis positions, materializing Lower for
// Cartesian tensors.
func (t *Tensor[T]) variances() []Variance {
	out := make([]Variance, t.rank)
	copy(out, t.vars)
	return out
}

// Storage exposes the backing storage, e.g. to bind it to a goroutine.
func (t *Tensor[T]) Storage() *storage.Linear[T] { return t.data }

// At returns the element at the multi-index idx.
func (t *Tensor[T]) At(idx ...int) (T, error) {
	off, err := shape.ToLinear(t.Shape(), idx)
	if err != nil {
		var zero T
		return zero, tensorErrorf(opAt, err)
	}
	return t.data.At(off)
}

// Set writes v at the multi-index idx.
func (t *Tensor[T]) Set(v T, idx ...int) error {
	off, err := shape.ToLinear(t.Shape(), idx)
	if err != nil {
		return tensorErrorf(opSet, err)
	}
	return t.data.Set(off, v)
}

// Data returns a row-major copy of the elements.
func (t *Tensor[T]) Data() []T { return t.data.Data() }

// Clone returns an independent deep copy.
func (t *Tensor[T]) Clone() *Tensor[T] {
	return &Tensor[T]{alg: t.alg, rank: t.rank, dim: t.dim, vars: t.variancesOrNil(), data: t.data.Clone()}
}

func (t *Tensor[T]) variancesOrNil() []Variance {
	if t.vars == nil {
		return nil
	}
	return t.variances()
}

// Assign deep-copies src into t.
func (t *Tensor[T]) Assign(src *Tensor[T]) {
	if t == src {
		return
	}
	t.alg, t.rank, t.dim, t.vars = src.alg, src.rank, src.dim, src.variancesOrNil()
	t.data.CopyFrom(src.data)
}

// String renders the nested-bracket form. A tensor of rank ≥ 1 with dim 0
// renders as "[]", which Parse reads back as the rank-1 empty tensor: an
// empty outer axis leaves no room to record the inner extents.
func (t *Tensor[T]) String() string {
	raw := t.data.Raw()
	tokens := make([]string, len(raw))
	for i, v := range raw {
		tokens[i] = t.alg.Format(v)
	}
	return notation.FormatNested(t.Shape(), tokens)
}

func sameVariance(a, b []Variance) bool {
	if (a == nil) != (b == nil) || len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// sameLayout compares rank, dimension and variances. Every rank-0 tensor
// has the same layout whatever dimension it was derived from.
func (t *Tensor[T]) sameLayout(o *Tensor[T]) bool {
	if t.rank != o.rank || !sameVariance(t.vars, o.vars) {
		return false
	}
	return t.rank == 0 || t.dim == o.dim
}

// Equal reports identical shape, variance and elements.
func (t *Tensor[T]) Equal(o *Tensor[T]) bool {
	if !t.sameLayout(o) {
		return false
	}
	return transform.NewOps(t.alg).Equal(t.data.Raw(), o.data.Raw())
}

// Close is Equal with the algebra's tolerance test per element.
func (t *Tensor[T]) Close(o *Tensor[T], tol float64) bool {
	if !t.sameLayout(o) {
		return false
	}
	return transform.NewOps(t.alg).Close(t.data.Raw(), o.data.Raw(), tol)
}

// ---------- output handle plumbing ----------

// prepare validates out and checks its goroutine binding.
func prepare[T any](op string, out *Tensor[T], in ...*Tensor[T]) error {
	if out == nil {
		return tensorErrorf(op, ErrNilTensor)
	}
	for _, t := range in {
		if t == nil {
			return tensorErrorf(op, ErrNilTensor)
		}
	}
	if err := out.data.CheckOwner(); err != nil {
		return tensorErrorf(op, err)
	}
	return nil
}

// install makes out a rank/dim tensor holding data, which it takes over.
func (t *Tensor[T]) install(alg scalar.Algebra[T], rank, dim int, vars []Variance, data []T) {
	if rank == 0 {
		dim = 0
	}
	t.alg, t.rank, t.dim, t.vars = alg, rank, dim, vars
	t.data.Replace(data)
}

// reshape sizes out for a same-shape element-wise result, reusing storage.
func (t *Tensor[T]) reshape(like *Tensor[T]) {
	vars := like.variancesOrNil()
	t.alg, t.rank, t.dim, t.vars = like.alg, like.rank, like.dim, vars
	t.data.Resize(like.data.Len(), like.alg.Zero())
}
