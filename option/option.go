// Package option implements a generic optional value, either Some value of
// type T or None.
//
// Option is the return channel of every pull in the lazy iterator package:
// a present value means the iterator produced an element, None means it is
// exhausted or disposed.
package option

import (
	"errors"
	"fmt"
)

// ErrNoneValue is the panic value raised when the value of a None option is
// extracted with Unwrap.  Expect panics with an error wrapping it.
var ErrNoneValue = errors.New("option: value extracted from None")

// Option represents a value of type T that may or may not be present.
// The zero value is None.
type Option[T any] struct {
	value T
	ok    bool
}

// Some returns an Option holding v.
func Some[T any](v T) Option[T] {
	return Option[T]{
		value: v,
		ok:    true,
	}
}

// None returns an empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// FromPair returns Some(v) if ok is true, otherwise None.  It adapts the
// comma-ok idiom used by map lookups and type assertions.
func FromPair[T any](v T, ok bool) Option[T] {
	if !ok {
		return None[T]()
	}
	return Some(v)
}

// IsSome reports whether the option holds a value.
func (o Option[T]) IsSome() bool {
	return o.ok
}

// IsNone reports whether the option is empty.
func (o Option[T]) IsNone() bool {
	return !o.ok
}

// Get returns the value and true, or the zero value of T and false if the
// option is None.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.ok
}

// Unwrap returns the value held by the option.  It panics with ErrNoneValue
// if the option is None, and should only be used once presence has already
// been established.
func (o Option[T]) Unwrap() T {
	if !o.ok {
		panic(ErrNoneValue)
	}
	return o.value
}

// Expect is Unwrap with a caller supplied panic message.
func (o Option[T]) Expect(msg string) T {
	if !o.ok {
		panic(fmt.Errorf("%s: %w", msg, ErrNoneValue))
	}
	return o.value
}

// UnwrapOr returns the value held by the option, or def if it is None.
func (o Option[T]) UnwrapOr(def T) T {
	if !o.ok {
		return def
	}
	return o.value
}

// UnwrapOrElse returns the value held by the option, or the result of f if
// it is None.  f is only called when needed.
func (o Option[T]) UnwrapOrElse(f func() T) T {
	if !o.ok {
		return f()
	}
	return o.value
}

// Filter returns the option unchanged if it is Some and p returns true for
// its value, otherwise None.
func (o Option[T]) Filter(p func(T) bool) Option[T] {
	if o.ok && p(o.value) {
		return o
	}
	return None[T]()
}

// Or returns the option if it is Some, otherwise other.
func (o Option[T]) Or(other Option[T]) Option[T] {
	if o.ok {
		return o
	}
	return other
}

func (o Option[T]) String() string {
	if !o.ok {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}

// Map transforms the value of a Some option with f.  None is passed through
// without calling f.
//
// Map is a function rather than a method because Go methods cannot
// introduce new type parameters.
func Map[T, U any](o Option[T], f func(T) U) Option[U] {
	if !o.ok {
		return None[U]()
	}
	return Some(f(o.value))
}

// AndThen calls f with the value of a Some option and returns its result.
// None is passed through without calling f.
func AndThen[T, U any](o Option[T], f func(T) Option[U]) Option[U] {
	if !o.ok {
		return None[U]()
	}
	return f(o.value)
}
