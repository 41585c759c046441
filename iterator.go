// Package lazy provides a pull-based, lazily evaluated iterator framework
// for Go: a single Iterator contract, combinators that wrap iterators
// (Map, Filter, FilterMap, Enumerate, Cloned, Copied, Chain, Cycle, Take)
// and terminal consumers that drive a pipeline to completion (Collect, All,
// Any, Count, Reduce and friends).
//
// Building a pipeline is eager, evaluating it is lazy: no element is pulled
// from a source until a terminal consumer, a Cursor or a range loop over
// Seq asks for one.  Every pull returns an option.Option, None meaning the
// iterator is exhausted or disposed.
//
// Iterators are single-pass and not safe for concurrent use.  A combinator
// takes ownership of the iterators it wraps; they must not be pulled by
// anybody else afterwards.
package lazy

import (
	"github.com/jake-scott/go-lazy/iter/slice"
	"github.com/jake-scott/go-lazy/option"
)

// Iterator is a generic interface for one-directional, pull-based traversal
// through a sequence of items.
//
// Once Next has returned None, or once Dispose has been called, every
// subsequent call to Next returns None.
type Iterator[T any] interface {
	// Next advances the iterator and returns the next element, or None if
	// there are no more elements or the iterator has been disposed.
	Next() option.Option[T]

	// SizeHint returns bounds on the number of elements remaining.  lower
	// never exceeds the true remaining count; upper, when present, is never
	// less than it.  An absent upper bound means unknown or unbounded.
	SizeHint() (lower uint, upper option.Option[uint])

	// Dispose moves the iterator to its terminal state and disposes any
	// iterators it owns.  Calling Dispose more than once has no further
	// effect.
	Dispose()
}

// Size is an interface that can be implemented by an iterator that
// knows the number of elements in the collection when it is initialized
type Size interface {
	Size() uint
}

// FromSlice returns an Iterator over the elements of s.
func FromSlice[T any](s []T) Iterator[T] {
	return slice.New(s)
}

// Of returns an Iterator over its arguments.
func Of[T any](v ...T) Iterator[T] {
	return slice.New(v)
}

// Empty returns an Iterator that has no elements.
func Empty[T any]() Iterator[T] {
	return slice.New[T](nil)
}
