package lazy

import (
	"fmt"
	"os"
	"strconv"
	"sync/atomic"
	"time"
)

// TraceFunc defines the function prototype of a tracing function
// Per stage functions can be configured using WithTraceFunc
type TraceFunc func(format string, v ...any)

// DefaultTracer is the global default trace function.  It prints messages to
// stderr.  DefaultTracer can be replaced by another tracing function to effect
// all stages.
var DefaultTracer = func(format string, v ...any) {
	fmt.Fprintf(os.Stderr, "<TRACE> "+format+"\n", v...)
}

// tracer emits the records of one traced operation.  Records are keyed by
// a dotted path: a stage operation is "#N" and the records it opens with
// subTracer are "#N.1", "#N.2" and so on.
type tracer interface {
	subTracer(description string, v ...any) tracer
	msg(format string, v ...any)
	end()
}

type traceRecorder struct {
	path     string
	desc     string
	begin    time.Time
	children atomic.Uint32
	f        TraceFunc
}

// newTracer opens the record of an operation on stage id, writing a START
// line.  A nil f selects DefaultTracer.
func newTracer(id uint32, description string, f TraceFunc, v ...any) *traceRecorder {
	return openRecord(f, strconv.FormatUint(uint64(id), 10), fmt.Sprintf(description, v...))
}

func openRecord(f TraceFunc, path, desc string) *traceRecorder {
	if f == nil {
		f = DefaultTracer
	}

	t := &traceRecorder{
		path:  path,
		desc:  desc,
		begin: time.Now(),
		f:     f,
	}
	t.emit("START", "")
	return t
}

// emit writes one record.  suffix is appended to the format and consumes v.
func (t *traceRecorder) emit(kind, suffix string, v ...any) {
	args := append([]any{time.Now().Format(time.RFC3339), kind, t.path, t.desc}, v...)
	t.f("%s: %s [stage #%s] %s"+suffix, args...)
}

func (t *traceRecorder) subTracer(description string, v ...any) tracer {
	n := t.children.Add(1)
	return openRecord(t.f,
		t.path+"."+strconv.FormatUint(uint64(n), 10),
		t.desc+" / "+fmt.Sprintf(description, v...))
}

func (t *traceRecorder) msg(format string, v ...any) {
	t.emit("MSG", ": "+format, v...)
}

func (t *traceRecorder) end() {
	t.emit("END", " (%s)", time.Since(t.begin))
}

type nullTracer struct{}

func (t nullTracer) subTracer(string, ...any) tracer { return t }
func (t nullTracer) msg(string, ...any)              {}
func (t nullTracer) end()                            {}
