// SPDX-License-Identifier: MIT

// Package lvalg is a generic numeric algebra library: one set of
// tensor, matrix and vector kernels written once over a scalar algebra and
// reused for every element type: half/single/double floats, complex
// numbers and octonions over any of them, exact rationals and
// high-precision decimals.
//
// What is inside?
//
//	scalar/    the Algebra[T] capability bundle and its instantiations
//	storage/   owned, deep-copied linear element storage
//	shape/     dimension vectors, strides, multi-index ↔ offset mapping
//	transform/ element-wise unary/binary/constant-broadcast engine
//	notation/  "[[1,2],[3,4]]" and "a:b:c" parsing and printing
//	tensor/    Cartesian tensors: outer product, contraction, inner
//	           product, power, index raising/lowering, derivatives
//	vector/    dot/cross products and norms atop the tensor kernel
//	matrix/    multiply, determinant, inversion, LU/QR, powers,
//	           spectral norm, matrix functions, column statistics
//	tuple/     fixed-length component-wise tuples ("a:b:c")
//
// Every kernel takes an output handle and writes into it; input handles are
// never mutated and values are deep-copied on assignment, so independent
// handles can be read concurrently. Kernels themselves are synchronous and
// single-threaded.
//
// Errors follow one taxonomy (see errors.go) and are matched with errors.Is:
//
//	ErrShapeMismatch, ErrIndexOutOfBounds, ErrInvalidArgument, ErrSingular
//
// Numeric edge cases (division by zero, overflow) are not errors: NaN and
// Infinity propagate like IEEE-754 and can be detected afterwards.
//
//	go get github.com/katalvlaran/lvalg
package lvalg
