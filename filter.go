package lazy

import "github.com/jake-scott/go-lazy/option"

// FilterFunc is a generic function type that takes a single element and
// returns true if it is to be included or false if the element is to be
// excluded from the result set.
//
// Example:
//
//	func isEven(i int) bool {
//	    return i%2 == 0
//	}
type FilterFunc[T any] func(T) bool

// Filter returns an iterator that yields the elements of i for which f
// returns true, in their original order.  It panics with an ArgumentError
// if f is nil.
//
// Stacked filters are applied in the order they were added, and an element
// is dropped as soon as one of them rejects it.
func Filter[T any](i Iterator[T], f FilterFunc[T]) Iterator[T] {
	if f == nil {
		panic(nilFunction("Filter", "f"))
	}

	return &filterIter[T]{
		i: i,
		f: f,
	}
}

type filterIter[T any] struct {
	i    Iterator[T]
	f    FilterFunc[T]
	done bool
}

func (it *filterIter[T]) Next() option.Option[T] {
	for !it.done {
		v, ok := it.i.Next().Get()
		if !ok {
			it.done = true
			break
		}

		if it.f(v) {
			return option.Some(v)
		}
	}

	return option.None[T]()
}

// the predicate may reject everything but can never add elements
func (it *filterIter[T]) SizeHint() (uint, option.Option[uint]) {
	if it.done {
		return exhaustedHint()
	}
	return upperOnly(it.i.SizeHint())
}

func (it *filterIter[T]) Dispose() {
	it.done = true
	it.i.Dispose()
}
