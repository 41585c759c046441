package lazy

import "github.com/jake-scott/go-lazy/option"

// Indexed wraps an element along with its position in the sequence that
// produced it.
type Indexed[T any] struct {
	Index uint
	Value T
}

// Enumerate returns an iterator that pairs each element of i with a zero
// based index.  The index counts the elements pulled through the
// enumerator, so the first element it yields has index 0 however many
// elements were consumed from i beforehand.
func Enumerate[T any](i Iterator[T]) Iterator[Indexed[T]] {
	return &enumerateIter[T]{i: i}
}

type enumerateIter[T any] struct {
	i    Iterator[T]
	idx  uint
	done bool
}

func (it *enumerateIter[T]) Next() option.Option[Indexed[T]] {
	if it.done {
		return option.None[Indexed[T]]()
	}

	v, ok := it.i.Next().Get()
	if !ok {
		it.done = true
		return option.None[Indexed[T]]()
	}

	defer func() { it.idx++ }()
	return option.Some(Indexed[T]{
		Index: it.idx,
		Value: v,
	})
}

func (it *enumerateIter[T]) SizeHint() (uint, option.Option[uint]) {
	if it.done {
		return exhaustedHint()
	}
	return it.i.SizeHint()
}

func (it *enumerateIter[T]) Dispose() {
	it.done = true
	it.i.Dispose()
}
