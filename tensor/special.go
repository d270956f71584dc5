// SPDX-License-Identifier: MIT

package tensor

import (
	"github.com/katalvlaran/lvalg/scalar"
	"github.com/katalvlaran/lvalg/shape"
)

// permutationSign returns +1/-1 for an even/odd permutation of 0..n-1 and 0
// when idx repeats a value.
func permutationSign(idx []int) int {
	seen := make([]bool, len(idx))
	for _, v := range idx {
		if seen[v] {
			return 0
		}
		seen[v] = true
	}
	sign := 1
	for i := 0; i < len(idx); i++ {
		for j := i + 1; j < len(idx); j++ {
			if idx[i] > idx[j] {
				sign = -sign
			}
		}
	}
	return sign
}

// LeviCivita returns the rank-n, dimension-n totally antisymmetric symbol
// ε with ε[0,1,...,n-1] = 1.
func LeviCivita[T any](alg scalar.Algebra[T], n int) (*Tensor[T], error) {
	t, err := New(alg, n, n)
	if err != nil {
		return nil, err
	}
	raw := t.data.Raw()
	one, minus := alg.One(), alg.Neg(alg.One())
	it := shape.NewIterator(t.Shape())
	for it.Next() {
		switch permutationSign(it.Index()) {
		case 1:
			raw[it.Offset()] = one
		case -1:
			raw[it.Offset()] = minus
		}
	}
	return t, nil
}

// KroneckerDelta returns the rank-2 identity δ of dimension n.
func KroneckerDelta[T any](alg scalar.Algebra[T], n int) (*Tensor[T], error) {
	t, err := New(alg, 2, n)
	if err != nil {
		return nil, err
	}
	raw := t.data.Raw()
	for i := 0; i < n; i++ {
		raw[i*n+i] = alg.One()
	}
	return t, nil
}

// ---------- capability-gated element-wise functions ----------

func withExponential[T any](op string, a, out *Tensor[T], pick func(scalar.Exponential[T]) func(T) T) error {
	if a == nil {
		return tensorErrorf(op, ErrNilTensor)
	}
	e, ok := scalar.AsExponential(a.alg)
	if !ok {
		return unsupportedf(op, "Exponential")
	}
	return tensorErrorf(op, Apply(pick(e), a, out))
}

func withTrig[T any](op string, a, out *Tensor[T], pick func(scalar.Trigonometric[T]) func(T) T) error {
	if a == nil {
		return tensorErrorf(op, ErrNilTensor)
	}
	e, ok := scalar.AsTrigonometric(a.alg)
	if !ok {
		return unsupportedf(op, "Trigonometric")
	}
	return tensorErrorf(op, Apply(pick(e), a, out))
}

func withHyperbolic[T any](op string, a, out *Tensor[T], pick func(scalar.Hyperbolic[T]) func(T) T) error {
	if a == nil {
		return tensorErrorf(op, ErrNilTensor)
	}
	e, ok := scalar.AsHyperbolic(a.alg)
	if !ok {
		return unsupportedf(op, "Hyperbolic")
	}
	return tensorErrorf(op, Apply(pick(e), a, out))
}

func withRounding[T any](op string, a, out *Tensor[T], pick func(scalar.Rounding[T]) func(T) T) error {
	if a == nil {
		return tensorErrorf(op, ErrNilTensor)
	}
	r, ok := scalar.AsRounding(a.alg)
	if !ok {
		return unsupportedf(op, "Rounding")
	}
	return tensorErrorf(op, Apply(pick(r), a, out))
}

// Exp applies e^x element-wise.
func Exp[T any](a, out *Tensor[T]) error {
	return withExponential("Exp", a, out, func(e scalar.Exponential[T]) func(T) T { return e.Exp })
}

// Log applies the natural logarithm element-wise.
func Log[T any](a, out *Tensor[T]) error {
	return withExponential("Log", a, out, func(e scalar.Exponential[T]) func(T) T { return e.Log })
}

func Sin[T any](a, out *Tensor[T]) error {
	return withTrig("Sin", a, out, func(e scalar.Trigonometric[T]) func(T) T { return e.Sin })
}

func Cos[T any](a, out *Tensor[T]) error {
	return withTrig("Cos", a, out, func(e scalar.Trigonometric[T]) func(T) T { return e.Cos })
}

func Tan[T any](a, out *Tensor[T]) error {
	return withTrig("Tan", a, out, func(e scalar.Trigonometric[T]) func(T) T { return e.Tan })
}

func Sinh[T any](a, out *Tensor[T]) error {
	return withHyperbolic("Sinh", a, out, func(e scalar.Hyperbolic[T]) func(T) T { return e.Sinh })
}

func Cosh[T any](a, out *Tensor[T]) error {
	return withHyperbolic("Cosh", a, out, func(e scalar.Hyperbolic[T]) func(T) T { return e.Cosh })
}

func Tanh[T any](a, out *Tensor[T]) error {
	return withHyperbolic("Tanh", a, out, func(e scalar.Hyperbolic[T]) func(T) T { return e.Tanh })
}

func Floor[T any](a, out *Tensor[T]) error {
	return withRounding("Floor", a, out, func(r scalar.Rounding[T]) func(T) T { return r.Floor })
}

func Ceil[T any](a, out *Tensor[T]) error {
	return withRounding("Ceil", a, out, func(r scalar.Rounding[T]) func(T) T { return r.Ceil })
}

// Round rounds half away from zero element-wise.
func Round[T any](a, out *Tensor[T]) error {
	return withRounding("Round", a, out, func(r scalar.Rounding[T]) func(T) T { return r.Round })
}

func Trunc[T any](a, out *Tensor[T]) error {
	return withRounding("Trunc", a, out, func(r scalar.Rounding[T]) func(T) T { return r.Trunc })
}

// Sqrt applies the principal square root element-wise.
func Sqrt[T any](a, out *Tensor[T]) error {
	if a == nil {
		return tensorErrorf("Sqrt", ErrNilTensor)
	}
	return Apply(a.alg.Sqrt, a, out)
}
