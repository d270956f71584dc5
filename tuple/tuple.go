// SPDX-License-Identifier: MIT

// Package tuple provides fixed-length tuples of scalars with element-wise
// arithmetic, and an Algebra that lets a tuple act as a scalar so matrices
// and tensors of tuples reuse the generic kernels.
//
// Text form is colon-delimited: "1:2:3". Handles follow the output-handle
// convention of the other packages: inputs are never mutated and the output
// may alias an input.
package tuple

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/lvalg"
	"github.com/katalvlaran/lvalg/notation"
	"github.com/katalvlaran/lvalg/scalar"
	"github.com/katalvlaran/lvalg/transform"
)

var (
	// ErrNilTuple reports a nil operand or output handle.
	ErrNilTuple = lvalg.Mark("tuple: nil tuple", lvalg.ErrInvalidArgument)

	// ErrLengthMismatch reports operands of different lengths.
	ErrLengthMismatch = lvalg.Mark("tuple: length mismatch", lvalg.ErrShapeMismatch)
)

func tupleErrorf(op string, err error) error {
	return errors.Wrapf(err, "tuple.%s", op)
}

// Tuple is an ordered, fixed-length list of T over one algebra.
type Tuple[T any] struct {
	alg scalar.Algebra[T]
	c   []T
}

// New returns the all-Zero tuple of length n.
func New[T any](alg scalar.Algebra[T], n int) (*Tuple[T], error) {
	if n < 0 {
		return nil, tupleErrorf("New", errors.Wrapf(lvalg.ErrInvalidArgument, "length %d", n))
	}
	c := make([]T, n)
	for i := range c {
		c[i] = alg.Zero()
	}

	return &Tuple[T]{alg: alg, c: c}, nil
}

// Empty returns a length-0 tuple, typically used as an output handle.
func Empty[T any](alg scalar.Algebra[T]) *Tuple[T] { return &Tuple[T]{alg: alg} }

// FromSlice copies data into a new tuple.
func FromSlice[T any](alg scalar.Algebra[T], data []T) *Tuple[T] {
	c := make([]T, len(data))
	copy(c, data)

	return &Tuple[T]{alg: alg, c: c}
}

// Parse reads "a:b:c". A token without separators is a 1-tuple; an empty
// component fails with lvalg.ErrParse.
func Parse[T any](alg scalar.Algebra[T], s string) (*Tuple[T], error) {
	tokens, err := notation.ParseTuple(s)
	if err != nil {
		return nil, tupleErrorf("Parse", err)
	}
	c := make([]T, len(tokens))
	for i, tok := range tokens {
		v, err := alg.Parse(tok)
		if err != nil {
			return nil, tupleErrorf("Parse", err)
		}
		c[i] = v
	}

	return &Tuple[T]{alg: alg, c: c}, nil
}

// Algebra returns the component algebra.
func (t *Tuple[T]) Algebra() scalar.Algebra[T] { return t.alg }

// Len returns the number of components.
func (t *Tuple[T]) Len() int { return len(t.c) }

// At returns component i.
func (t *Tuple[T]) At(i int) (T, error) {
	if i < 0 || i >= len(t.c) {
		var zero T
		return zero, tupleErrorf("At", errors.Wrapf(lvalg.ErrIndexOutOfBounds, "component %d of %d", i, len(t.c)))
	}

	return t.c[i], nil
}

// Set assigns component i.
func (t *Tuple[T]) Set(i int, v T) error {
	if i < 0 || i >= len(t.c) {
		return tupleErrorf("Set", errors.Wrapf(lvalg.ErrIndexOutOfBounds, "component %d of %d", i, len(t.c)))
	}
	t.c[i] = v

	return nil
}

// Data returns a copy of the components.
func (t *Tuple[T]) Data() []T {
	out := make([]T, len(t.c))
	copy(out, t.c)

	return out
}

// Clone returns a deep copy.
func (t *Tuple[T]) Clone() *Tuple[T] { return FromSlice(t.alg, t.c) }

// String renders the colon-delimited form.
func (t *Tuple[T]) String() string {
	tokens := make([]string, len(t.c))
	for i, v := range t.c {
		tokens[i] = t.alg.Format(v)
	}

	return notation.FormatTuple(tokens)
}

func check[T any](op string, ts ...*Tuple[T]) error {
	for _, t := range ts {
		if t == nil {
			return tupleErrorf(op, ErrNilTuple)
		}
	}

	return nil
}

func binary[T any](op string, a, b, out *Tuple[T], f func(o transform.Ops[T], dst, x, y []T) ([]T, error)) error {
	if err := check(op, a, b, out); err != nil {
		return err
	}
	if len(a.c) != len(b.c) {
		return tupleErrorf(op, errors.Wrapf(ErrLengthMismatch, "%d vs %d", len(a.c), len(b.c)))
	}
	dst, err := f(transform.NewOps(a.alg), out.c, a.c, b.c)
	if err != nil {
		return tupleErrorf(op, err)
	}
	out.alg, out.c = a.alg, dst

	return nil
}

// Add sets out = a + b component-wise.
func Add[T any](a, b, out *Tuple[T]) error {
	return binary("Add", a, b, out, func(o transform.Ops[T], dst, x, y []T) ([]T, error) { return o.Add(dst, x, y) })
}

// Sub sets out = a − b component-wise.
func Sub[T any](a, b, out *Tuple[T]) error {
	return binary("Sub", a, b, out, func(o transform.Ops[T], dst, x, y []T) ([]T, error) { return o.Sub(dst, x, y) })
}

// Mul sets out = a ⊙ b component-wise.
func Mul[T any](a, b, out *Tuple[T]) error {
	return binary("Mul", a, b, out, func(o transform.Ops[T], dst, x, y []T) ([]T, error) { return o.Mul(dst, x, y) })
}

// Div sets out = a / b component-wise. Zero divisors follow the component
// algebra's NaN/Inf convention.
func Div[T any](a, b, out *Tuple[T]) error {
	return binary("Div", a, b, out, func(o transform.Ops[T], dst, x, y []T) ([]T, error) { return o.Div(dst, x, y) })
}

// Neg sets out = −a.
func Neg[T any](a, out *Tuple[T]) error {
	if err := check("Neg", a, out); err != nil {
		return err
	}
	out.alg, out.c = a.alg, transform.NewOps(a.alg).Neg(out.c, a.c)

	return nil
}

// Scale sets out = k·a.
func Scale[T any](a *Tuple[T], k T, out *Tuple[T]) error {
	if err := check("Scale", a, out); err != nil {
		return err
	}
	out.alg, out.c = a.alg, transform.NewOps(a.alg).MulScalar(out.c, a.c, k)

	return nil
}

// Equal reports equal length and components.
func Equal[T any](a, b *Tuple[T]) bool {
	return len(a.c) == len(b.c) && transform.NewOps(a.alg).Equal(a.c, b.c)
}

// Close reports equal length and component-wise closeness within tol.
func Close[T any](a, b *Tuple[T], tol float64) bool {
	return len(a.c) == len(b.c) && transform.NewOps(a.alg).Close(a.c, b.c, tol)
}

// Norm returns the Euclidean norm sqrt(Σ |c_i|²).
func Norm[T any](a *Tuple[T]) T { return transform.NewOps(a.alg).Norm2(a.c) }
