package try

import (
	"errors"
	"fmt"
)

var (
	// ErrPredicate is the cause of a Failure produced by a predicate that did not hold.
	ErrPredicate = errors.New("predicate does not hold")
	// ErrUnsupported is the cause of the Failure returned by Failed on a Success.
	ErrUnsupported = errors.New("unsupported: Success failed")
	// ErrNilError replaces a nil error handed to Failure.
	ErrNilError = errors.New("try: nil error")
	// ErrUninitialized is reported by the zero Try.
	ErrUninitialized = errors.New("try: uninitialized")
)

// GetError is returned by Get on a Failure. Cause is the stored error.
type GetError struct {
	Cause error
}

func (e *GetError) Error() string {
	return "try: get on failure: " + e.Cause.Error()
}

func (e *GetError) Unwrap() error {
	return e.Cause
}

// PanicError carries a panic value that was not itself an error.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// PredicateError is the panic value raised by a predicate built with
// AsPredicate when the wrapped predicate fails.
type PredicateError struct {
	Cause error
}

func (e *PredicateError) Error() string {
	return "try: predicate raised: " + e.Cause.Error()
}

func (e *PredicateError) Unwrap() error {
	return e.Cause
}

// ContractError is the panic value raised when a caller breaks an argument
// precondition, such as passing a nil function.
type ContractError struct {
	Op  string
	Arg string
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("try: %s: %s must not be nil", e.Op, e.Arg)
}

type fatalError struct {
	err error
}

func (e *fatalError) Error() string {
	return "fatal: " + e.err.Error()
}

func (e *fatalError) Unwrap() error {
	return e.err
}

// Fatal marks err as unrecoverable. A panic whose value is, or wraps, a
// marked error passes through every capture site in this package.
func Fatal(err error) error {
	if err == nil {
		err = ErrNilError
	}
	return &fatalError{err: err}
}

// IsFatal reports whether a panic value or error was marked with Fatal.
func IsFatal(v any) bool {
	err, ok := v.(error)
	if !ok {
		return false
	}
	var fe *fatalError
	return errors.As(err, &fe)
}

func mustNotBeNil(isNil bool, op, arg string) {
	if isNil {
		panic(&ContractError{Op: op, Arg: arg})
	}
}
