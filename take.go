package lazy

import "github.com/jake-scott/go-lazy/option"

// Take returns an iterator that yields at most the first n elements of i.
// i is disposed as soon as the n-th element has been yielded.
func Take[T any](i Iterator[T], n uint) Iterator[T] {
	return &takeIter[T]{
		i: i,
		n: n,
	}
}

type takeIter[T any] struct {
	i    Iterator[T]
	n    uint
	done bool
}

func (it *takeIter[T]) Next() option.Option[T] {
	if it.done {
		return option.None[T]()
	}

	if it.n == 0 {
		it.Dispose()
		return option.None[T]()
	}

	v := it.i.Next()
	if v.IsNone() {
		it.done = true
		return v
	}

	it.n--
	if it.n == 0 {
		it.Dispose()
	}

	return v
}

func (it *takeIter[T]) SizeHint() (uint, option.Option[uint]) {
	if it.done || it.n == 0 {
		return exhaustedHint()
	}

	lower, upper := it.i.SizeHint()
	lower = min(lower, it.n)
	if u, ok := upper.Get(); ok {
		return lower, option.Some(min(u, it.n))
	}
	return lower, option.Some(it.n)
}

func (it *takeIter[T]) Dispose() {
	it.done = true
	it.i.Dispose()
}
