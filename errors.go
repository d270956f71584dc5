// SPDX-License-Identifier: MIT

// Package lvalg: the shared error taxonomy.
//
// Every package of the module reports structural violations through these
// sentinels (directly, or through a package-level sentinel marked with one
// of them), so callers can write a single errors.Is check regardless of
// which kernel failed:
//
//	if errors.Is(err, lvalg.ErrShapeMismatch) { ... }
//
// Precondition violations fail immediately at the offending call. There is
// no retry or deferred validation anywhere in the library.
package lvalg

import "github.com/cockroachdb/errors"

var (
	// ErrShapeMismatch reports operand shapes or lengths that are
	// incompatible for the requested operation (add on differently-shaped
	// tensors, matrix multiply with a.Cols != b.Rows, ...).
	ErrShapeMismatch = errors.New("lvalg: shape mismatch")

	// ErrIndexOutOfBounds reports an axis or multi-index component outside
	// the valid range.
	ErrIndexOutOfBounds = errors.New("lvalg: index out of bounds")

	// ErrInvalidArgument reports operation-specific structural violations:
	// contracting an axis with itself, a non-square determinant, raising an
	// index without a metric, a negative tensor power.
	ErrInvalidArgument = errors.New("lvalg: invalid argument")

	// ErrSingular reports that no nonzero pivot exists during inversion or
	// factorization.
	ErrSingular = errors.New("lvalg: singular matrix")

	// ErrUnsupported reports that the scalar algebra lacks a capability the
	// operation needs (e.g. Sin on rationals, ordering on complex numbers).
	ErrUnsupported = errors.New("lvalg: operation not supported by scalar algebra")

	// ErrNotConverged reports that an iterative routine with a hard
	// convergence requirement exhausted its iteration budget.
	ErrNotConverged = errors.New("lvalg: iteration did not converge")

	// ErrParse reports malformed textual input.
	ErrParse = errors.New("lvalg: parse error")

	// ErrForeignGoroutine reports access to storage bound to another goroutine.
	ErrForeignGoroutine = errors.New("lvalg: storage accessed from foreign goroutine")
)

// Mark returns a new sentinel with the given message that also matches each
// parent under errors.Is. Packages use it to declare narrow errors
// (matrix.ErrNonSquare) inside the shared taxonomy. The match works with the
// standard library errors.Is as well as with cockroachdb/errors.
func Mark(msg string, parents ...error) error {
	return &sentinel{msg: msg, parents: parents}
}

// WithCategory annotates a dynamic error so that errors.Is also matches
// category, while err stays reachable through Unwrap.
func WithCategory(err, category error) error {
	if err == nil {
		return nil
	}
	return &categorized{cause: err, category: category}
}

// sentinel is a narrow error that belongs to one or more taxonomy errors.
type sentinel struct {
	msg     string
	parents []error
}

func (e *sentinel) Error() string { return e.msg }

// Unwrap yields the primary parent.
func (e *sentinel) Unwrap() error {
	if len(e.parents) == 0 {
		return nil
	}
	return e.parents[0]
}

// Is matches the secondary parents; the primary one is reached by Unwrap.
func (e *sentinel) Is(target error) bool {
	if len(e.parents) < 2 {
		return false
	}
	for _, p := range e.parents[1:] {
		if errors.Is(p, target) {
			return true
		}
	}
	return false
}

type categorized struct {
	cause    error
	category error
}

func (e *categorized) Error() string { return e.cause.Error() }
func (e *categorized) Unwrap() error { return e.cause }

func (e *categorized) Is(target error) bool { return errors.Is(e.category, target) }
