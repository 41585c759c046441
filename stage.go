package lazy

import (
	"fmt"
	"sync/atomic"

	"github.com/jake-scott/go-lazy/option"
)

var stageCounter atomic.Uint32

// Stage represents one step of a larger pipeline.  It wraps an Iterator and
// offers the combinators and consumers of this package as methods, so that
// a pipeline can be written as a chain of calls:
//
//	evens := lazy.NewSliceStage(ints).
//	    Filter(isEven).
//	    Take(10).
//	    Collect()
//
// The combinator methods return a new Stage wrapping the combined iterator;
// as with the functions they wrap, nothing is pulled until a consumer
// method runs.  Combinators that change the element type cannot be methods
// in Go and are provided as MapStage, FilterMapStage and EnumerateStage.
type Stage[T any] struct {
	i    Iterator[T]
	id   uint32
	opts stageOptions
}

type stageOptions struct {
	inheritOptions bool
	tracer         TraceFunc
	tracing        bool
}

// StageOption provides a mechanism to customize how a stage operates.
type StageOption func(o *stageOptions)

// WithTraceFunc sets the trace function for the stage.  Use WithTracing
// to enable/disable tracing.
func WithTraceFunc(f TraceFunc) StageOption {
	return func(o *stageOptions) {
		o.tracer = f
	}
}

// WithTracing enables tracing for the stage.  If a custom trace function
// has not been set using WithTraceFunc, trace messages are printed to stderr.
func WithTracing(enable bool) StageOption {
	return func(o *stageOptions) {
		o.tracing = enable
	}
}

// InheritOptions causes this stage's options to be inherited by the next
// stage.  The next stage can override these inherited options.  Further
// inheritence can be disabled by passing this option with a false value.
//
// The default is no inheritence.
func InheritOptions(inherit bool) StageOption {
	return func(o *stageOptions) {
		o.inheritOptions = inherit
	}
}

func (o *stageOptions) processOptions(opts ...StageOption) {
	for _, f := range opts {
		f(o)
	}
}

// NewStage instantiates a pipeline stage from an Iterator and optional
// set of processing options.  The stage takes ownership of i.
func NewStage[T any](i Iterator[T], opts ...StageOption) *Stage[T] {
	s := &Stage[T]{
		i:  i,
		id: stageCounter.Add(1),
	}
	s.opts.processOptions(opts...)
	return s
}

// NewSliceStage instantiates a pipeline stage using a slice iterator backed by
// the provided slice.
func NewSliceStage[T any](s []T, opts ...StageOption) *Stage[T] {
	return NewStage(FromSlice(s), opts...)
}

// Iterator returns the underlying iterator for a stage.  It is most useful
// as a mechanism for retrieving the result from the last stage of a pipeline
// by the caller of the pipeline.
func (s *Stage[T]) Iterator() Iterator[T] {
	return s.i
}

// ID returns the process-unique number of the stage used in trace output.
func (s *Stage[T]) ID() uint32 {
	return s.id
}

func (s *Stage[T]) tracer(description string, v ...any) tracer {
	if s.opts.tracing {
		var t T
		description = fmt.Sprintf("(%T) %s", t, description)
		return newTracer(s.id, description, s.opts.tracer, v...)
	}
	return nullTracer{}
}

// merged returns a copy of the stage with opts applied on top of its own
// options, for the duration of a single operation.
func (s *Stage[T]) merged(opts ...StageOption) *Stage[T] {
	m := *s
	m.opts.processOptions(opts...)
	return &m
}

func (s *Stage[T]) nextStage(i Iterator[T], opts ...StageOption) *Stage[T] {
	return nextStage(s, i, opts...)
}

func nextStage[T, U any](s *Stage[T], i Iterator[U], opts ...StageOption) *Stage[U] {
	nextStage := &Stage[U]{
		i:  i,
		id: stageCounter.Add(1),
	}

	// if this stage has inheritence enabled them copy its options to the
	// next stage
	if s.opts.inheritOptions {
		nextStage.opts = s.opts
	}

	// process new options on their own to see if we should inherit
	var newOpts stageOptions
	newOpts.processOptions(opts...)

	// .. if so then merge the new opts with the stage options
	if newOpts.inheritOptions {
		nextStage.opts.processOptions(opts...)
	}

	return nextStage
}

// Filter returns a new stage yielding the elements of this stage for which
// f returns true.  See Filter.
func (s *Stage[T]) Filter(f FilterFunc[T], opts ...StageOption) *Stage[T] {
	t := s.merged(opts...).tracer("Filter")
	defer t.end()

	return s.nextStage(Filter(s.i, f), opts...)
}

// Map returns a new stage yielding m(e) for each element e of this stage.
//
// If the map function returns values of a different type to the input values,
// the non-OO version MapStage must be used instead.
func (s *Stage[T]) Map(m MapFunc[T, T], opts ...StageOption) *Stage[T] {
	return MapStage(s, m, opts...)
}

// Chain returns a new stage yielding the elements of this stage followed by
// those of second.  See Chain.
func (s *Stage[T]) Chain(second Iterator[T], opts ...StageOption) *Stage[T] {
	t := s.merged(opts...).tracer("Chain")
	defer t.end()

	return s.nextStage(Chain(s.i, second), opts...)
}

// ChainSlice returns a new stage yielding the elements of this stage
// followed by the elements of second.  See ChainSlice.
func (s *Stage[T]) ChainSlice(second []T, opts ...StageOption) *Stage[T] {
	t := s.merged(opts...).tracer("ChainSlice")
	defer t.end()

	return s.nextStage(ChainSlice(s.i, second), opts...)
}

// Cycle returns a new stage repeating the elements of this stage
// endlessly.  See Cycle.
func (s *Stage[T]) Cycle(opts ...StageOption) *Stage[T] {
	t := s.merged(opts...).tracer("Cycle")
	defer t.end()

	return s.nextStage(Cycle(s.i), opts...)
}

// Take returns a new stage yielding at most n elements of this stage.
func (s *Stage[T]) Take(n uint, opts ...StageOption) *Stage[T] {
	t := s.merged(opts...).tracer("Take %d", n)
	defer t.end()

	return s.nextStage(Take(s.i, n), opts...)
}

// MapStage is the non-OO version of Stage.Map().  It must be used in the case
// where the map function returns items of a different type than the input
// elements, due to limitations of Golang's generic syntax.
func MapStage[T, M any](s *Stage[T], m MapFunc[T, M], opts ...StageOption) *Stage[M] {
	t := s.merged(opts...).tracer("Map")
	defer t.end()

	return nextStage(s, Map(s.i, m), opts...)
}

// FilterMapStage returns a new stage yielding the Some results of f for the
// elements of s.  See FilterMap.
func FilterMapStage[T, M any](s *Stage[T], f FilterMapFunc[T, M], opts ...StageOption) *Stage[M] {
	t := s.merged(opts...).tracer("FilterMap")
	defer t.end()

	return nextStage(s, FilterMap(s.i, f), opts...)
}

// EnumerateStage returns a new stage pairing the elements of s with their
// index.  See Enumerate.
func EnumerateStage[T any](s *Stage[T], opts ...StageOption) *Stage[Indexed[T]] {
	t := s.merged(opts...).tracer("Enumerate")
	defer t.end()

	return nextStage(s, Enumerate(s.i), opts...)
}

// Collect drains the stage and returns its elements in order.
//
// With tracing enabled the pulls are reported as a "drain" sub-record of
// the Collect record, as they are for the other consumer methods.
func (s *Stage[T]) Collect(opts ...StageOption) []T {
	t := s.merged(opts...).tracer("Collect")
	defer t.end()

	d := t.subTracer("drain")
	out := Collect(s.i)
	d.end()

	t.msg("collected %d elements", len(out))
	return out
}

// All reports whether f holds for every element of the stage.
func (s *Stage[T]) All(f FilterFunc[T], opts ...StageOption) bool {
	t := s.merged(opts...).tracer("All")
	defer t.end()

	d := t.subTracer("drain")
	defer d.end()

	return All(s.i, f)
}

// Any reports whether f holds for at least one element of the stage.
func (s *Stage[T]) Any(f FilterFunc[T], opts ...StageOption) bool {
	t := s.merged(opts...).tracer("Any")
	defer t.end()

	d := t.subTracer("drain")
	defer d.end()

	return Any(s.i, f)
}

// Count drains the stage and returns the number of elements produced.
func (s *Stage[T]) Count(opts ...StageOption) uint {
	t := s.merged(opts...).tracer("Count")
	defer t.end()

	d := t.subTracer("drain")
	n := Count(s.i)
	d.end()

	t.msg("counted %d elements", n)
	return n
}

// Reduce folds the elements of the stage into a value of the element type.
// Use the Reduce function to fold into a different type.
func (s *Stage[T]) Reduce(initial T, r ReduceFunc[T, T], opts ...StageOption) T {
	t := s.merged(opts...).tracer("Reduce")
	defer t.end()

	d := t.subTracer("drain")
	defer d.end()

	return Reduce(s.i, initial, r)
}

// ForEach drains the stage, calling f for each element.
func (s *Stage[T]) ForEach(f func(T), opts ...StageOption) {
	t := s.merged(opts...).tracer("ForEach")
	defer t.end()

	d := t.subTracer("drain")
	defer d.end()

	ForEach(s.i, f)
}

// First pulls a single element from the stage.
func (s *Stage[T]) First(opts ...StageOption) option.Option[T] {
	t := s.merged(opts...).tracer("First")
	defer t.end()

	v := First(s.i)
	if v.IsNone() {
		t.msg("no element")
	}
	return v
}

// Dispose disposes the stage's iterator, and with it every iterator of the
// pipeline that feeds it.
func (s *Stage[T]) Dispose() {
	s.tracer("Dispose").end()
	s.i.Dispose()
}
