package lazy

import "github.com/jake-scott/go-lazy/option"

// MapFunc is a generic function that takes a single element and returns
// a single transformed element.
//
// Example:
//
//	func domainName(email string) string {
//	    return strings.SplitN(email, "@", 2)[1]
//	}
type MapFunc[T any, M any] func(T) M

// FilterMapFunc is a generic function that transforms an element and
// decides whether to keep it in one step.  Returning None drops the
// element.
type FilterMapFunc[T any, M any] func(T) option.Option[M]

// Map returns an iterator that yields m(e) for each element e of i, in
// order.  It panics with an ArgumentError if m is nil.
//
// Map takes ownership of i.
func Map[T, M any](i Iterator[T], m MapFunc[T, M]) Iterator[M] {
	if m == nil {
		panic(nilFunction("Map", "m"))
	}

	return &mapIter[T, M]{
		i: i,
		m: m,
	}
}

type mapIter[T, M any] struct {
	i    Iterator[T]
	m    MapFunc[T, M]
	done bool
}

func (it *mapIter[T, M]) Next() option.Option[M] {
	if it.done {
		return option.None[M]()
	}

	v, ok := it.i.Next().Get()
	if !ok {
		it.done = true
		return option.None[M]()
	}

	return option.Some(it.m(v))
}

// a one-to-one mapping does not change the number of elements
func (it *mapIter[T, M]) SizeHint() (uint, option.Option[uint]) {
	if it.done {
		return exhaustedHint()
	}
	return it.i.SizeHint()
}

func (it *mapIter[T, M]) Dispose() {
	it.done = true
	it.i.Dispose()
}

// FilterMap returns an iterator that calls f for each element of i and
// yields the values of the Some results, dropping elements for which f
// returns None.  It panics with an ArgumentError if f is nil.
//
// FilterMap(i, f) behaves like Map(Filter(i, p), g) where f returns
// Some(g(e)) when p(e) holds.
func FilterMap[T, M any](i Iterator[T], f FilterMapFunc[T, M]) Iterator[M] {
	if f == nil {
		panic(nilFunction("FilterMap", "f"))
	}

	return &filterMapIter[T, M]{
		i: i,
		f: f,
	}
}

type filterMapIter[T, M any] struct {
	i    Iterator[T]
	f    FilterMapFunc[T, M]
	done bool
}

func (it *filterMapIter[T, M]) Next() option.Option[M] {
	for !it.done {
		v, ok := it.i.Next().Get()
		if !ok {
			it.done = true
			break
		}

		if mapped := it.f(v); mapped.IsSome() {
			return mapped
		}
	}

	return option.None[M]()
}

func (it *filterMapIter[T, M]) SizeHint() (uint, option.Option[uint]) {
	if it.done {
		return exhaustedHint()
	}
	return upperOnly(it.i.SizeHint())
}

func (it *filterMapIter[T, M]) Dispose() {
	it.done = true
	it.i.Dispose()
}
