package lazy

import "fmt"

// Cloner is implemented by element types that can produce an independent
// duplicate of themselves.  Clone must return a value that shares no
// mutable state with the receiver.
type Cloner[T any] interface {
	Clone() T
}

// Cloned returns an iterator that yields a clone of each element of i, so
// the output is decoupled from whatever storage backs i.
//
// The element type must implement Cloner; this is checked by the compiler
// rather than when the iterator is first pulled.
func Cloned[T Cloner[T]](i Iterator[T]) Iterator[T] {
	return Map(i, func(v T) T {
		return v.Clone()
	})
}

// Copied returns an iterator that dereferences each pointer pulled from i
// and yields an independent copy of the value it points to.  Later writes
// through the pointers do not affect elements that have already been
// yielded.
//
// Copied panics with an error wrapping ErrNilElement if it pulls a nil
// pointer.
func Copied[T any](i Iterator[*T]) Iterator[T] {
	return Map(i, func(p *T) T {
		if p == nil {
			panic(fmt.Errorf("lazy.Copied: %w", ErrNilElement))
		}
		return *p
	})
}
