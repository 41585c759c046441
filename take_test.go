package lazy

import (
	"testing"

	"github.com/jake-scott/go-lazy/option"
	"github.com/stretchr/testify/assert"
)

func TestTake(t *testing.T) {
	tests := []struct {
		name  string
		input []int
		n     uint
		want  []int
	}{
		{"fewer than available", sixInts, 2, []int{1, 2}},
		{"exactly available", sixInts, 6, sixInts},
		{"more than available", sixInts, 10, sixInts},
		{"zero", sixInts, 0, []int{}},
		{"empty input", nil, 3, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Collect(Take(FromSlice(tt.input), tt.n)))
		})
	}
}

func TestTakeDisposesUpstreamAtQuota(t *testing.T) {
	assert := assert.New(t)

	spy := newSpy(1, 2, 3)
	it := Take[int](spy, 2)

	it.Next()
	spy.AssertNotCalled(t, "Dispose")

	it.Next()
	spy.AssertNumberOfCalls(t, "Dispose", 1)

	assert.Equal(option.None[int](), it.Next())
	assert.Equal(2, spy.pulls(t))
}

func TestTakeSizeHint(t *testing.T) {
	assert := assert.New(t)

	lower, upper := Take(Of(1, 2, 3), 2).SizeHint()
	assert.Equal(uint(2), lower)
	assert.Equal(option.Some(uint(2)), upper)

	lower, upper = Take(Of(1, 2, 3), 5).SizeHint()
	assert.Equal(uint(3), lower)
	assert.Equal(option.Some(uint(3)), upper)

	lower, upper = Take[int](&unboundedIterator{}, 5).SizeHint()
	assert.Equal(uint(0), lower)
	assert.Equal(option.Some(uint(5)), upper)

	lower, upper = Take(Filter(Of(1, 2, 3), isEven), 2).SizeHint()
	assert.Equal(uint(0), lower)
	assert.Equal(option.Some(uint(2)), upper)
}

func TestTakeUnbounded(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3, 4}, Collect(Take[int](&unboundedIterator{}, 4)))
}
