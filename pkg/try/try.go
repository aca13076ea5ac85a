package try

import (
	"fmt"

	"github.com/google/uuid"
)

// Kind tags the variant held by a Try.
type Kind uint8

const (
	// KindFailure is the zero Kind so an uninitialized Try reads as a failure.
	KindFailure Kind = iota
	KindSuccess
)

func (k Kind) String() string {
	switch k {
	case KindSuccess:
		return "Success"
	case KindFailure:
		return "Failure"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Try is the outcome of an operation: a value on success or the raised error
// on failure. The zero value is a failure carrying ErrUninitialized.
type Try[T any] struct {
	id    uuid.UUID
	kind  Kind
	value T
	err   error
}

// Success wraps value.
func Success[T any](value T) Try[T] {
	return Try[T]{
		id:    uuid.New(),
		kind:  KindSuccess,
		value: value,
	}
}

// Failure wraps err. A nil err is stored as ErrNilError so a Failure never
// looks like a success.
func Failure[T any](err error) Try[T] {
	if err == nil {
		err = ErrNilError
	}
	return Try[T]{
		id:   uuid.New(),
		kind: KindFailure,
		err:  err,
	}
}

// Of converts a Go (value, error) pair into a Try.
func Of[T any](value T, err error) Try[T] {
	if err != nil {
		return Failure[T](err)
	}
	return Success(value)
}

// failureFrom re-types a failure without giving it a new identity.
func failureFrom[In, Out any](from Try[In]) Try[Out] {
	return Try[Out]{
		id:   from.id,
		kind: KindFailure,
		err:  from.Err(),
	}
}

func (t Try[T]) Kind() Kind {
	return t.kind
}

func (t Try[T]) IsSuccess() bool {
	return t.kind == KindSuccess
}

func (t Try[T]) IsFailure() bool {
	return t.kind != KindSuccess
}

// ID identifies the constructed value. Combinators that return their
// receiver keep it; every new Try gets a fresh one.
func (t Try[T]) ID() uuid.UUID {
	return t.id
}

// Err returns the stored error, or nil on success.
func (t Try[T]) Err() error {
	if t.kind == KindSuccess {
		return nil
	}
	if t.err == nil {
		return ErrUninitialized
	}
	return t.err
}

// Get returns the value, or a *GetError whose cause is the stored error.
func (t Try[T]) Get() (T, error) {
	if t.kind == KindSuccess {
		return t.value, nil
	}
	var zero T
	return zero, &GetError{Cause: t.Err()}
}

// MustGet returns the value or panics with the *GetError that Get reports.
func (t Try[T]) MustGet() T {
	v, err := t.Get()
	if err != nil {
		panic(err)
	}
	return v
}

// String renders Success(<value>) or Failure(<error>).
func (t Try[T]) String() string {
	if t.kind == KindSuccess {
		return fmt.Sprintf("Success(%v)", t.value)
	}
	return fmt.Sprintf("Failure(%v)", t.Err())
}
