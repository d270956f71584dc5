// SPDX-License-Identifier: MIT

package tuple

import (
	"fmt"
	"math"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/lvalg"
	"github.com/katalvlaran/lvalg/scalar"
)

// Algebra treats n-tuples over an element algebra as scalars: the direct
// product ring with every operation applied component-wise. One is the
// all-ones tuple, so Div inverts each component and a tuple with any zero
// component is a zero divisor. IsZero holds only when every component is
// zero, so elimination kernels do not flag a system that is singular in
// some components but not others.
//
// Elements are *Tuple[T]; operations never mutate their operands. Every
// operand must have length N; a mismatch is a programming error and panics.
type Algebra[T any] struct {
	elem scalar.Algebra[T]
	n    int
}

var _ scalar.Algebra[*Tuple[float64]] = Algebra[float64]{}

// NewAlgebra returns the algebra of n-tuples over elem. n must be positive.
func NewAlgebra[T any](elem scalar.Algebra[T], n int) (Algebra[T], error) {
	if n <= 0 {
		return Algebra[T]{}, tupleErrorf("NewAlgebra", errors.Wrapf(lvalg.ErrInvalidArgument, "arity %d", n))
	}

	return Algebra[T]{elem: elem, n: n}, nil
}

// N returns the tuple arity.
func (a Algebra[T]) N() int { return a.n }

// Elem returns the component algebra.
func (a Algebra[T]) Elem() scalar.Algebra[T] { return a.elem }

func (a Algebra[T]) fill(v func(i int) T) *Tuple[T] {
	c := make([]T, a.n)
	for i := range c {
		c[i] = v(i)
	}

	return &Tuple[T]{alg: a.elem, c: c}
}

func (a Algebra[T]) arity(ts ...*Tuple[T]) {
	for _, t := range ts {
		if len(t.c) != a.n {
			panic(fmt.Sprintf("tuple: operand has %d components, algebra expects %d", len(t.c), a.n))
		}
	}
}

func (a Algebra[T]) unary(x *Tuple[T], f func(T) T) *Tuple[T] {
	a.arity(x)
	return a.fill(func(i int) T { return f(x.c[i]) })
}

func (a Algebra[T]) binary(x, y *Tuple[T], f func(T, T) T) *Tuple[T] {
	a.arity(x, y)
	return a.fill(func(i int) T { return f(x.c[i], y.c[i]) })
}

func (a Algebra[T]) all(x *Tuple[T], f func(T) bool) bool {
	a.arity(x)
	for _, v := range x.c {
		if !f(v) {
			return false
		}
	}

	return true
}

func (a Algebra[T]) some(x *Tuple[T], f func(T) bool) bool {
	a.arity(x)
	for _, v := range x.c {
		if f(v) {
			return true
		}
	}

	return false
}

func (a Algebra[T]) Zero() *Tuple[T] { return a.fill(func(int) T { return a.elem.Zero() }) }
func (a Algebra[T]) One() *Tuple[T]  { return a.fill(func(int) T { return a.elem.One() }) }

func (a Algebra[T]) Add(x, y *Tuple[T]) *Tuple[T] { return a.binary(x, y, a.elem.Add) }
func (a Algebra[T]) Sub(x, y *Tuple[T]) *Tuple[T] { return a.binary(x, y, a.elem.Sub) }
func (a Algebra[T]) Mul(x, y *Tuple[T]) *Tuple[T] { return a.binary(x, y, a.elem.Mul) }
func (a Algebra[T]) Div(x, y *Tuple[T]) *Tuple[T] { return a.binary(x, y, a.elem.Div) }
func (a Algebra[T]) Neg(x *Tuple[T]) *Tuple[T]    { return a.unary(x, a.elem.Neg) }
func (a Algebra[T]) Conj(x *Tuple[T]) *Tuple[T]   { return a.unary(x, a.elem.Conj) }
func (a Algebra[T]) Abs(x *Tuple[T]) *Tuple[T]    { return a.unary(x, a.elem.Abs) }
func (a Algebra[T]) Sqrt(x *Tuple[T]) *Tuple[T]   { return a.unary(x, a.elem.Sqrt) }

// IsZero reports whether every component is zero.
func (a Algebra[T]) IsZero(x *Tuple[T]) bool { return a.all(x, a.elem.IsZero) }

func (a Algebra[T]) Equal(x, y *Tuple[T]) bool {
	a.arity(x, y)
	for i := range x.c {
		if !a.elem.Equal(x.c[i], y.c[i]) {
			return false
		}
	}

	return true
}

// Magnitude is the Euclidean norm of the component magnitudes, so pivot
// selection in elimination kernels prefers tuples that are large overall.
func (a Algebra[T]) Magnitude(x *Tuple[T]) float64 {
	a.arity(x)
	var ss float64
	for _, v := range x.c {
		m := a.elem.Magnitude(v)
		ss += m * m
	}

	return math.Sqrt(ss)
}

func (a Algebra[T]) FromInt64(n int64) *Tuple[T] {
	return a.fill(func(int) T { return a.elem.FromInt64(n) })
}

func (a Algebra[T]) FromFloat64(f float64) *Tuple[T] {
	return a.fill(func(int) T { return a.elem.FromFloat64(f) })
}

// IsNaN reports whether any component is NaN.
func (a Algebra[T]) IsNaN(x *Tuple[T]) bool { return a.some(x, a.elem.IsNaN) }

// IsInf reports whether any component is infinite.
func (a Algebra[T]) IsInf(x *Tuple[T]) bool { return a.some(x, a.elem.IsInf) }

// Close holds when every component pair is Close within tol.
func (a Algebra[T]) Close(x, y *Tuple[T], tol float64) bool {
	a.arity(x, y)
	for i := range x.c {
		if !a.elem.Close(x.c[i], y.c[i], tol) {
			return false
		}
	}

	return true
}

// Parse reads "a:b:...". A single component without separators broadcasts
// to all N slots, which lets scalar literals such as "0" or "1" appear in
// matrix text; any other arity fails with lvalg.ErrParse.
func (a Algebra[T]) Parse(s string) (*Tuple[T], error) {
	t, err := Parse(a.elem, s)
	if err != nil {
		return nil, err
	}
	switch len(t.c) {
	case a.n:
		return t, nil
	case 1:
		v := t.c[0]
		return a.fill(func(int) T { return v }), nil
	default:
		return nil, tupleErrorf("Parse", errors.Wrapf(lvalg.ErrParse, "%q has %d components, want %d", s, len(t.c), a.n))
	}
}

func (a Algebra[T]) Format(x *Tuple[T]) string { return x.String() }
