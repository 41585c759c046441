package lazy

import (
	"github.com/jake-scott/go-lazy/option"
	"golang.org/x/exp/constraints"
)

// Collect drains i and returns its elements in the order they were
// pulled.  Iterators are single-pass: collecting a partly consumed iterator
// returns only the remaining elements, and collecting it again returns
// an empty slice.
func Collect[T any](i Iterator[T]) []T {
	lower, _ := i.SizeHint()

	out := make([]T, 0, lower)
	for v, ok := i.Next().Get(); ok; v, ok = i.Next().Get() {
		out = append(out, v)
	}

	return out
}

// All reports whether f returns true for every element of i.  It stops
// pulling at the first element that fails f.  An empty or disposed
// iterator yields true.
func All[T any](i Iterator[T], f FilterFunc[T]) bool {
	if f == nil {
		panic(nilFunction("All", "f"))
	}

	for v, ok := i.Next().Get(); ok; v, ok = i.Next().Get() {
		if !f(v) {
			return false
		}
	}

	return true
}

// Any reports whether f returns true for at least one element of i.  It
// stops pulling at the first element that satisfies f.
func Any[T any](i Iterator[T], f FilterFunc[T]) bool {
	if f == nil {
		panic(nilFunction("Any", "f"))
	}

	for v, ok := i.Next().Get(); ok; v, ok = i.Next().Get() {
		if f(v) {
			return true
		}
	}

	return false
}

// Count drains i and returns the number of elements it produced, without
// keeping them.
func Count[T any](i Iterator[T]) uint {
	var n uint
	for i.Next().IsSome() {
		n++
	}

	return n
}

// ForEach drains i, calling f for each element.
func ForEach[T any](i Iterator[T], f func(T)) {
	if f == nil {
		panic(nilFunction("ForEach", "f"))
	}

	for v, ok := i.Next().Get(); ok; v, ok = i.Next().Get() {
		f(v)
	}
}

// First pulls a single element from i.
func First[T any](i Iterator[T]) option.Option[T] {
	return i.Next()
}

// Last drains i and returns the final element, or None if i was empty.
func Last[T any](i Iterator[T]) option.Option[T] {
	last := option.None[T]()
	for v := i.Next(); v.IsSome(); v = i.Next() {
		last = v
	}

	return last
}

// Find returns the first element of i for which f returns true, leaving
// the elements after it unconsumed.
func Find[T any](i Iterator[T], f FilterFunc[T]) option.Option[T] {
	if f == nil {
		panic(nilFunction("Find", "f"))
	}

	for v, ok := i.Next().Get(); ok; v, ok = i.Next().Get() {
		if f(v) {
			return option.Some(v)
		}
	}

	return option.None[T]()
}

// Sum drains i and returns the sum of its elements.
func Sum[T constraints.Integer | constraints.Float](i Iterator[T]) T {
	return Reduce(i, T(0), func(a, v T) T {
		return a + v
	})
}
