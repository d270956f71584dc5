// SPDX-License-Identifier: MIT

// Package transform is the element-wise engine shared by tensors, matrices,
// vectors and tuples.
//
// Every function writes into dst, resizing it to the input length (reusing
// its capacity), and returns the resized slice. Inputs are never modified.
// dst may alias an input: element i is read before it is written.
package transform

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/lvalg"
)

func resize[T any](dst []T, n int) []T {
	if cap(dst) >= n {
		return dst[:n]
	}
	return make([]T, n)
}

// Unary sets dst[i] = op(src[i]).
func Unary[T any](dst, src []T, op func(T) T) []T {
	dst = resize(dst, len(src))
	for i, v := range src {
		dst[i] = op(v)
	}
	return dst
}

// Binary sets dst[i] = op(a[i], b[i]). Lengths must agree.
func Binary[T any](dst, a, b []T, op func(x, y T) T) ([]T, error) {
	if len(a) != len(b) {
		return dst, errors.Wrapf(lvalg.ErrShapeMismatch, "transform: lengths %d and %d", len(a), len(b))
	}
	dst = resize(dst, len(a))
	for i := range a {
		dst[i] = op(a[i], b[i])
	}
	return dst, nil
}

// Fixed broadcasts the constant c on the right: dst[i] = op(src[i], c).
func Fixed[T any](dst, src []T, c T, op func(x, c T) T) []T {
	dst = resize(dst, len(src))
	for i, v := range src {
		dst[i] = op(v, c)
	}
	return dst
}

// FixedLeft broadcasts c on the left: dst[i] = op(c, src[i]).
func FixedLeft[T any](dst []T, c T, src []T, op func(c, x T) T) []T {
	dst = resize(dst, len(src))
	for i, v := range src {
		dst[i] = op(c, v)
	}
	return dst
}

// Reduce folds op over src starting from init.
func Reduce[T, A any](src []T, init A, op func(acc A, x T) A) A {
	acc := init
	for _, v := range src {
		acc = op(acc, v)
	}
	return acc
}

// Any reports whether pred holds for some element.
func Any[T any](src []T, pred func(T) bool) bool {
	for _, v := range src {
		if pred(v) {
			return true
		}
	}
	return false
}

// All reports whether pred holds for every pair (a[i], b[i]). Lengths must
// agree, otherwise All is false.
func All[T any](a, b []T, pred func(x, y T) bool) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !pred(a[i], b[i]) {
			return false
		}
	}
	return true
}
