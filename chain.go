package lazy

import (
	"github.com/jake-scott/go-lazy/iter/slice"
	"github.com/jake-scott/go-lazy/option"
)

type chainPhase int

const (
	consumingFirst chainPhase = iota
	consumingSecond
	chainDone
)

// Chain returns an iterator that yields every element of first followed by
// every element of second.  The switch is seamless: the call to Next that
// finds first exhausted returns the first element of second.
//
// Chain takes ownership of both iterators.  Once it has moved on to second
// it never pulls first again.
func Chain[T any](first, second Iterator[T]) Iterator[T] {
	if second == nil {
		second = Empty[T]()
	}

	return &chainIter[T]{
		first:  first,
		second: second,
	}
}

// ChainSlice is Chain with a slice as the second sequence.  The iterator
// over s is only created once first is exhausted.
func ChainSlice[T any](first Iterator[T], s []T) Iterator[T] {
	return &chainIter[T]{
		first:   first,
		pending: s,
	}
}

type chainIter[T any] struct {
	first  Iterator[T]
	second Iterator[T]

	// elements of the second sequence when it has not been turned into an
	// iterator yet
	pending []T

	phase chainPhase
}

func (c *chainIter[T]) Next() option.Option[T] {
	switch c.phase {
	case consumingFirst:
		if v := c.first.Next(); v.IsSome() {
			return v
		}

		c.first.Dispose()
		c.phase = consumingSecond
		fallthrough

	case consumingSecond:
		v := c.secondIter().Next()
		if v.IsNone() {
			c.phase = chainDone
		}
		return v
	}

	return option.None[T]()
}

func (c *chainIter[T]) SizeHint() (uint, option.Option[uint]) {
	switch c.phase {
	case consumingFirst:
		aLower, aUpper := c.first.SizeHint()
		bLower, bUpper := c.secondHint()
		return addHints(aLower, aUpper, bLower, bUpper)
	case consumingSecond:
		return c.secondHint()
	}

	return exhaustedHint()
}

func (c *chainIter[T]) Dispose() {
	c.phase = chainDone
	c.first.Dispose()
	if c.second != nil {
		c.second.Dispose()
	}
	c.pending = nil
}

func (c *chainIter[T]) secondIter() Iterator[T] {
	if c.second == nil {
		c.second = slice.New(c.pending)
		c.pending = nil
	}
	return c.second
}

func (c *chainIter[T]) secondHint() (uint, option.Option[uint]) {
	if c.second == nil {
		n := uint(len(c.pending))
		return n, option.Some(n)
	}
	return c.second.SizeHint()
}
