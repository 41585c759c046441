package lazy

import (
	"testing"

	"github.com/jake-scott/go-lazy/option"
	"github.com/stretchr/testify/assert"
)

func TestEnumerate(t *testing.T) {
	assert := assert.New(t)

	out := Collect(Enumerate(Of("a", "b", "c")))
	assert.Equal([]Indexed[string]{
		{0, "a"},
		{1, "b"},
		{2, "c"},
	}, out)
}

func TestEnumerateStartsAtZeroMidStream(t *testing.T) {
	assert := assert.New(t)

	src := Of("a", "b", "c", "d")
	src.Next()
	src.Next()

	e := Enumerate(src)
	assert.Equal(option.Some(Indexed[string]{0, "c"}), e.Next())
	assert.Equal(option.Some(Indexed[string]{1, "d"}), e.Next())
	assert.Equal(option.None[Indexed[string]](), e.Next())
}

func TestEnumerateAfterFilter(t *testing.T) {
	assert := assert.New(t)

	// indexes count what the enumerator yields, not upstream positions
	out := Collect(Enumerate(Filter(FromSlice(sixInts), isEven)))
	assert.Equal([]Indexed[int]{{0, 2}, {1, 4}, {2, 6}}, out)
}

func TestEnumerateSizeHint(t *testing.T) {
	assert := assert.New(t)

	e := Enumerate(Of(1, 2, 3))
	e.Next()

	lower, upper := e.SizeHint()
	assert.Equal(uint(2), lower)
	assert.Equal(option.Some(uint(2)), upper)
}
