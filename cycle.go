package lazy

import "github.com/jake-scott/go-lazy/option"

type cyclePhase int

const (
	// source elements are being yielded and recorded
	priming cyclePhase = iota
	// the source is exhausted, the recorded elements are replayed
	replaying
	cycleDone
)

// Cycle returns an iterator that repeats the elements of i endlessly.
//
// The first pass yields the elements of i as they are pulled and records
// them; when i is exhausted the recording is replayed from the start, over
// and over.  If i turns out to be empty Cycle is exhausted straight away.
//
// The result is unbounded, so it should be limited with Take or consumed
// with a short-circuiting consumer such as Any or Find.
func Cycle[T any](i Iterator[T]) Iterator[T] {
	return &cycleIter[T]{i: i}
}

type cycleIter[T any] struct {
	i      Iterator[T]
	buf    []T
	cursor int
	phase  cyclePhase
}

func (c *cycleIter[T]) Next() option.Option[T] {
	switch c.phase {
	case priming:
		if v, ok := c.i.Next().Get(); ok {
			c.buf = append(c.buf, v)
			return option.Some(v)
		}

		c.i.Dispose()
		if len(c.buf) == 0 {
			c.phase = cycleDone
			return option.None[T]()
		}

		c.phase = replaying
		c.cursor = 0
		fallthrough

	case replaying:
		v := c.buf[c.cursor]
		c.cursor = (c.cursor + 1) % len(c.buf)
		return option.Some(v)
	}

	return option.None[T]()
}

func (c *cycleIter[T]) SizeHint() (uint, option.Option[uint]) {
	switch c.phase {
	case priming:
		if len(c.buf) == 0 {
			if _, upper := c.i.SizeHint(); upper == option.Some[uint](0) {
				return exhaustedHint()
			}
		}
		return unknownHint()
	case replaying:
		return unknownHint()
	}

	return exhaustedHint()
}

func (c *cycleIter[T]) Dispose() {
	c.phase = cycleDone
	c.i.Dispose()
	c.buf = nil
}
