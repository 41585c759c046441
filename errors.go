package lazy

import (
	"errors"
	"fmt"
)

// ErrNilFunction is wrapped by the ArgumentError that combinators and
// consumers panic with when they are given a nil function.
var ErrNilFunction = errors.New("nil function")

// ErrNilElement is wrapped by the panic value raised by Copied when it
// pulls a nil pointer.
var ErrNilElement = errors.New("nil element")

// ArgumentError describes a precondition violation detected when a
// combinator is constructed or a consumer is called.  It is raised with
// panic, since it always indicates a programming error in the caller, and
// can be inspected with errors.Is and errors.As after recovering.
type ArgumentError struct {
	// Op is the name of the function that rejected the argument
	Op string
	// Arg is the name of the rejected argument
	Arg string
	Err error
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("lazy.%s: invalid argument %s: %s", e.Op, e.Arg, e.Err)
}

func (e *ArgumentError) Unwrap() error {
	return e.Err
}

func nilFunction(op, arg string) *ArgumentError {
	return &ArgumentError{Op: op, Arg: arg, Err: ErrNilFunction}
}
