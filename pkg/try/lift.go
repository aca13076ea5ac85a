package try

import (
	"github.com/samber/lo"
)

// With runs supplier once and captures its outcome.
func With[T any](supplier func() (T, error)) Try[T] {
	mustNotBeNil(supplier == nil, "With", "supplier")
	return capture(func() Try[T] {
		return Of(supplier())
	})
}

// WithFunc runs fn(arg) once and captures its outcome.
func WithFunc[A, R any](fn func(A) (R, error), arg A) Try[R] {
	mustNotBeNil(fn == nil, "WithFunc", "fn")
	return With(func() (R, error) {
		return fn(arg)
	})
}

// WithPredicate succeeds with arg itself when predicate(arg) holds and fails
// with ErrPredicate when it does not.
func WithPredicate[A any](predicate func(A) (bool, error), arg A) Try[A] {
	mustNotBeNil(predicate == nil, "WithPredicate", "predicate")
	return capture(func() Try[A] {
		ok, err := predicate(arg)
		switch {
		case err != nil:
			return Failure[A](err)
		case !ok:
			return Failure[A](ErrPredicate)
		}
		return Success(arg)
	})
}

// WithConsumer runs consumer(arg) for its effect and re-emits arg on success.
func WithConsumer[A any](consumer func(A) error, arg A) Try[A] {
	mustNotBeNil(consumer == nil, "WithConsumer", "consumer")
	return With(func() (A, error) {
		return arg, consumer(arg)
	})
}

// WithBiFunc runs fn(a, b) once and captures its outcome.
func WithBiFunc[A, B, R any](fn func(A, B) (R, error), a A, b B) Try[R] {
	mustNotBeNil(fn == nil, "WithBiFunc", "fn")
	return With(func() (R, error) {
		return fn(a, b)
	})
}

// WithBiConsumer runs consumer(a, b) for its effect and re-emits both
// arguments on success.
func WithBiConsumer[A, B any](consumer func(A, B) error, a A, b B) Try[lo.Tuple2[A, B]] {
	mustNotBeNil(consumer == nil, "WithBiConsumer", "consumer")
	return With(func() (lo.Tuple2[A, B], error) {
		return lo.T2(a, b), consumer(a, b)
	})
}

// AsPredicate adapts a failing predicate for places that only accept
// func(A) bool, such as lo.Filter. Unlike WithPredicate it cannot report a
// Failure: when predicate returns an error or panics, the returned function
// panics with a *PredicateError wrapping the cause. Any error counts,
// including one that wraps ErrPredicate.
func AsPredicate[A any](predicate func(A) (bool, error)) func(A) bool {
	mustNotBeNil(predicate == nil, "AsPredicate", "predicate")
	return func(a A) bool {
		ok, err := callPredicate(predicate, a)
		if err != nil {
			panic(&PredicateError{Cause: err})
		}
		return ok
	}
}

func callPredicate[A any](predicate func(A) (bool, error), a A) (ok bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			ok, err = false, fromPanic(r)
		}
	}()
	return predicate(a)
}
