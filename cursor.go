package lazy

import (
	"iter"

	"github.com/jake-scott/go-lazy/option"
)

// Cursor adapts an Iterator to the MoveNext/Current enumeration style.
// Each MoveNext performs exactly one pull and caches its result.
type Cursor[T any] struct {
	i       Iterator[T]
	current option.Option[T]
}

// NewCursor returns a Cursor positioned before the first element of i.
func NewCursor[T any](i Iterator[T]) *Cursor[T] {
	return &Cursor[T]{i: i}
}

// MoveNext pulls the next element and reports whether there was one.
func (c *Cursor[T]) MoveNext() bool {
	c.current = c.i.Next()
	return c.current.IsSome()
}

// Current returns the element pulled by the last MoveNext.  It is None
// before the first MoveNext and once the iterator is exhausted.
func (c *Cursor[T]) Current() option.Option[T] {
	return c.current
}

// Dispose disposes the underlying iterator.
func (c *Cursor[T]) Dispose() {
	c.current = option.None[T]()
	c.i.Dispose()
}

// Seq returns a single-use iter.Seq over the elements of i, for use with a
// range loop.  Leaving the loop early disposes i.
//
//	for v := range lazy.Seq(it) {
//	    ...
//	}
func Seq[T any](i Iterator[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v, ok := i.Next().Get(); ok; v, ok = i.Next().Get() {
			if !yield(v) {
				i.Dispose()
				return
			}
		}
	}
}

// Seq2 is like Seq but also yields the zero based index of each element.
func Seq2[T any](i Iterator[T]) iter.Seq2[uint, T] {
	e := Enumerate(i)
	return func(yield func(uint, T) bool) {
		for v, ok := e.Next().Get(); ok; v, ok = e.Next().Get() {
			if !yield(v.Index, v.Value) {
				e.Dispose()
				return
			}
		}
	}
}
