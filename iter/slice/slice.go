// Package slice implements an iterator that traverses uni-directionally
// over a generic slice of elements
//
// Slice supports the Size interface and reports an exact size hint.
package slice

import "github.com/jake-scott/go-lazy/option"

// Iterator traverses over a slice of element of type T.
type Iterator[T any] struct {
	s    []T
	size uint
	pos  int
	done bool
}

// New returns an implementation of Iterator that traverses
// over the provided slice.  The slice is not copied; elements are read
// from it as they are pulled.
func New[T any](s []T) *Iterator[T] {
	return &Iterator[T]{
		s:    s,
		size: uint(len(s)),
	}
}

// Size returns the length of the slice the iterator was created with,
// implementing the Size interface.  Unlike SizeHint it does not change as
// elements are pulled, or when the iterator is disposed.
func (r *Iterator[T]) Size() uint {
	return r.size
}

// Next returns the next element of the underlying slice, or None once
// the end of the slice has been reached or the iterator has been disposed.
func (r *Iterator[T]) Next() option.Option[T] {
	if r.done {
		return option.None[T]()
	}

	if r.pos >= len(r.s) {
		r.Dispose()
		return option.None[T]()
	}

	r.pos++
	return option.Some(r.s[r.pos-1])
}

// SizeHint returns the exact number of elements remaining as both bounds.
func (r *Iterator[T]) SizeHint() (uint, option.Option[uint]) {
	n := r.remaining()
	return n, option.Some(n)
}

// Dispose moves the iterator to its terminal state and releases the
// reference to the underlying slice.  It is safe to call more than once.
func (r *Iterator[T]) Dispose() {
	r.done = true
	r.s = nil
	r.pos = 0
}

func (r *Iterator[T]) remaining() uint {
	if r.done {
		return 0
	}
	return uint(len(r.s) - r.pos)
}
