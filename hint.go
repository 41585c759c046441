package lazy

import (
	"math"

	"github.com/jake-scott/go-lazy/option"
)

// exhaustedHint is the size hint of an iterator in a terminal state.
func exhaustedHint() (uint, option.Option[uint]) {
	return 0, option.Some[uint](0)
}

// unknownHint is the size hint of an iterator that cannot bound its
// remaining elements at all.
func unknownHint() (uint, option.Option[uint]) {
	return 0, option.None[uint]()
}

// upperOnly keeps the upper bound of a hint and drops the lower bound to
// zero, for combinators that may discard any number of elements.
func upperOnly(_ uint, upper option.Option[uint]) (uint, option.Option[uint]) {
	return 0, upper
}

// addHints combines the hints of two sequences that are traversed one after
// the other.  The lower bound saturates; an overflowing upper bound is
// reported as unknown.
func addHints(aLower uint, aUpper option.Option[uint], bLower uint, bUpper option.Option[uint]) (uint, option.Option[uint]) {
	lower := aLower + bLower
	if lower < aLower {
		lower = math.MaxUint
	}

	a, aOk := aUpper.Get()
	b, bOk := bUpper.Get()
	if !aOk || !bOk || a+b < a {
		return lower, option.None[uint]()
	}

	return lower, option.Some(a + b)
}
