// SPDX-License-Identifier: MIT

// Package storage provides Linear, the owned element sequence behind every
// tensor, matrix and vector handle.
//
// A Linear owns its backing slice. Reads through Data and Clone hand out
// copies, so two handles never observe each other's writes. A Linear is
// not safe for concurrent mutation; callers may bind it to a goroutine with
// BindToCurrentGoroutine and kernels verify the binding with CheckOwner.
package storage

import (
	"sync/atomic"

	"github.com/cockroachdb/errors"
	"github.com/petermattis/goid"

	"github.com/katalvlaran/lvalg"
)

const unbound int64 = 0

// Linear is a resizable, indexable element sequence 0..Len-1.
type Linear[T any] struct {
	data  []T
	owner atomic.Int64 // goroutine id; 0 when unbound
}

// New returns a Linear of n elements, each set to zero.
// n < 0 is treated as 0.
func New[T any](n int, zero T) *Linear[T] {
	if n < 0 {
		n = 0
	}
	l := &Linear[T]{data: make([]T, n)}
	for i := range l.data {
		l.data[i] = zero
	}

	return l
}

// FromSlice returns a Linear holding a copy of vals.
func FromSlice[T any](vals []T) *Linear[T] {
	l := &Linear[T]{data: make([]T, len(vals))}
	copy(l.data, vals)

	return l
}

// Len returns the element count.
func (l *Linear[T]) Len() int { return len(l.data) }

func (l *Linear[T]) outOfRange(i int) error {
	return errors.Wrapf(lvalg.ErrIndexOutOfBounds, "storage: index %d outside [0,%d)", i, len(l.data))
}

// At returns element i.
func (l *Linear[T]) At(i int) (T, error) {
	if i < 0 || i >= len(l.data) {
		var zero T
		return zero, l.outOfRange(i)
	}
	return l.data[i], nil
}

// Set writes element i.
func (l *Linear[T]) Set(i int, v T) error {
	if i < 0 || i >= len(l.data) {
		return l.outOfRange(i)
	}
	l.data[i] = v

	return nil
}

// Data returns a copy of the elements.
func (l *Linear[T]) Data() []T {
	out := make([]T, len(l.data))
	copy(out, l.data)

	return out
}

// Raw exposes the backing slice to kernels in this module. The slice stays
// owned by l: callers must not retain it past the current operation.
func (l *Linear[T]) Raw() []T { return l.data }

// Replace installs data as the new backing slice, taking ownership of it.
func (l *Linear[T]) Replace(data []T) { l.data = data }

// Resize changes the length to n. Retained elements keep their values and
// new slots are set to zero. Capacity is reused when it suffices.
func (l *Linear[T]) Resize(n int, zero T) {
	if n < 0 {
		n = 0
	}
	old := len(l.data)
	if n <= cap(l.data) {
		l.data = l.data[:n]
	} else {
		grown := make([]T, n)
		copy(grown, l.data)
		l.data = grown
	}
	for i := old; i < n; i++ {
		l.data[i] = zero
	}
}

// Fill sets every element to v.
func (l *Linear[T]) Fill(v T) {
	for i := range l.data {
		l.data[i] = v
	}
}

// Clone returns an unbound deep copy.
func (l *Linear[T]) Clone() *Linear[T] { return FromSlice(l.data) }

// CopyFrom replaces l's contents with a copy of src's.
func (l *Linear[T]) CopyFrom(src *Linear[T]) {
	if l == src {
		return
	}
	if cap(l.data) >= len(src.data) {
		l.data = l.data[:len(src.data)]
	} else {
		l.data = make([]T, len(src.data))
	}
	copy(l.data, src.data)
}

// BindToCurrentGoroutine claims l for the calling goroutine. Subsequent
// CheckOwner calls from any other goroutine fail.
func (l *Linear[T]) BindToCurrentGoroutine() { l.owner.Store(goid.Get()) }

// Unbind releases the goroutine claim.
func (l *Linear[T]) Unbind() { l.owner.Store(unbound) }

// Bound reports whether l is claimed by a goroutine.
func (l *Linear[T]) Bound() bool { return l.owner.Load() != unbound }

// CheckOwner returns lvalg.ErrForeignGoroutine when l is bound to a
// goroutine other than the caller. Unbound storage always passes.
func (l *Linear[T]) CheckOwner() error {
	owner := l.owner.Load()
	if owner == unbound {
		return nil
	}
	if cur := goid.Get(); cur != owner {
		return errors.Wrapf(lvalg.ErrForeignGoroutine, "storage: bound to goroutine %d, accessed from %d", owner, cur)
	}

	return nil
}
