package slice_test

import (
	"testing"

	lazy "github.com/jake-scott/go-lazy"
	"github.com/jake-scott/go-lazy/iter/slice"
	"github.com/jake-scott/go-lazy/option"
	"github.com/stretchr/testify/assert"
)

var _sliceInputTest1 []string = []string{
	"This is some test input with",
	"multipe lines",
	"in it and multiple words",
	"per line.",
}

func TestSliceIter(t *testing.T) {
	assert := assert.New(t)

	iter := slice.New(_sliceInputTest1)

	gotLines := []string{}
	for v := iter.Next(); v.IsSome(); v = iter.Next() {
		gotLines = append(gotLines, v.Unwrap())
	}

	assert.Equal(_sliceInputTest1, gotLines)

	// test that we can assert to a Size via the Iterator interface
	var iterInt lazy.Iterator[string] = slice.New(_sliceInputTest1)
	sh, ok := iterInt.(lazy.Size)
	assert.True(ok)

	// .. and that Size() returns the right number
	assert.Equal(uint(4), sh.Size())
}

// Test with an empty slice
func TestSliceIter2(t *testing.T) {
	assert := assert.New(t)

	iter := slice.New([]int(nil))

	assert.Equal(option.None[int](), iter.Next())
	assert.Equal(option.None[int](), iter.Next())

	lower, upper := iter.SizeHint()
	assert.Equal(uint(0), lower)
	assert.Equal(option.Some(uint(0)), upper)
}

func TestSliceIterSizeHint(t *testing.T) {
	assert := assert.New(t)

	iter := slice.New([]int{1, 2, 3})

	for want := uint(3); ; want-- {
		lower, upper := iter.SizeHint()
		assert.Equal(want, lower)
		assert.Equal(option.Some(want), upper)

		if iter.Next().IsNone() {
			assert.Equal(uint(0), want)
			break
		}
	}
}

func TestSliceIterExhausted(t *testing.T) {
	assert := assert.New(t)

	iter := slice.New([]int{1})

	assert.Equal(option.Some(1), iter.Next())
	for i := 0; i < 5; i++ {
		assert.Equal(option.None[int](), iter.Next())
	}
}

func TestSliceIterDispose(t *testing.T) {
	assert := assert.New(t)

	iter := slice.New([]int{1, 2, 3})
	assert.Equal(option.Some(1), iter.Next())

	iter.Dispose()
	iter.Dispose()

	assert.Equal(option.None[int](), iter.Next())
	lower, upper := iter.SizeHint()
	assert.Equal(uint(0), lower)
	assert.Equal(option.Some(uint(0)), upper)
}

func TestSliceIterSizeIsFixed(t *testing.T) {
	assert := assert.New(t)

	iter := slice.New([]int{1, 2})
	assert.Equal(uint(2), iter.Size())

	iter.Next()
	assert.Equal(uint(2), iter.Size())

	// exhausted ..
	for iter.Next().IsSome() {
	}
	assert.Equal(uint(2), iter.Size())

	// .. and disposed
	iter.Dispose()
	assert.Equal(uint(2), iter.Size())
	lower, _ := iter.SizeHint()
	assert.Equal(uint(0), lower)
}
