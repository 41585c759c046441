package lazy

import (
	"testing"

	"github.com/jake-scott/go-lazy/iter/slice"
	"github.com/jake-scott/go-lazy/option"
	"github.com/stretchr/testify/mock"
)

// spyIterator delegates to a slice iterator and records every call so
// tests can check how often, and whether, an upstream was pulled or
// disposed.
type spyIterator[T any] struct {
	mock.Mock
	inner Iterator[T]
}

func newSpy[T any](vs ...T) *spyIterator[T] {
	s := &spyIterator[T]{inner: slice.New(vs)}
	s.On("Next").Return()
	s.On("SizeHint").Return()
	s.On("Dispose").Return()
	return s
}

func (s *spyIterator[T]) Next() option.Option[T] {
	s.MethodCalled("Next")
	return s.inner.Next()
}

func (s *spyIterator[T]) SizeHint() (uint, option.Option[uint]) {
	s.MethodCalled("SizeHint")
	return s.inner.SizeHint()
}

func (s *spyIterator[T]) Dispose() {
	s.MethodCalled("Dispose")
	s.inner.Dispose()
}

func (s *spyIterator[T]) pulls(t *testing.T) int {
	t.Helper()
	n := 0
	for _, c := range s.Calls {
		if c.Method == "Next" {
			n++
		}
	}
	return n
}

// unboundedIterator never runs out and reports an unknown size.
type unboundedIterator struct {
	n    int
	done bool
}

func (u *unboundedIterator) Next() option.Option[int] {
	if u.done {
		return option.None[int]()
	}
	u.n++
	return option.Some(u.n)
}

func (u *unboundedIterator) SizeHint() (uint, option.Option[uint]) {
	if u.done {
		return exhaustedHint()
	}
	return unknownHint()
}

func (u *unboundedIterator) Dispose() {
	u.done = true
}

func isEven(i int) bool {
	return i%2 == 0
}

func double(i int) int {
	return i * 2
}

func ints(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}
