package lazy

// ReduceFunc is a generic function that folds one more element into an
// accumulated value.
type ReduceFunc[T any, A any] func(A, T) A

// Reduce drains i, folding each element into an accumulator that starts
// at init, and returns the final accumulator.  It panics with an
// ArgumentError if f is nil.
//
// Example:
//
//	total := Reduce(Of(1, 2, 3), 0, func(a, i int) int { return a + i })
func Reduce[T, A any](i Iterator[T], init A, f ReduceFunc[T, A]) A {
	if f == nil {
		panic(nilFunction("Reduce", "f"))
	}

	cur := init
	for v, ok := i.Next().Get(); ok; v, ok = i.Next().Get() {
		cur = f(cur, v)
	}

	return cur
}
