package try

import "github.com/samber/mo"

// Map applies fn to a success value. A panic in fn becomes a Failure, so a
// Success can map to a Failure. A Failure is returned re-typed and fn is not
// called.
func Map[T, R any](t Try[T], fn func(T) R) Try[R] {
	if t.IsFailure() {
		return failureFrom[T, R](t)
	}
	mustNotBeNil(fn == nil, "Map", "fn")
	return capture(func() Try[R] {
		return Success(fn(t.value))
	})
}

// MapTry is Map for functions that report failure with an error.
func MapTry[T, R any](t Try[T], fn func(T) (R, error)) Try[R] {
	if t.IsFailure() {
		return failureFrom[T, R](t)
	}
	mustNotBeNil(fn == nil, "MapTry", "fn")
	return capture(func() Try[R] {
		return Of(fn(t.value))
	})
}

// FlatMap returns fn(value) as is, without wrapping it again.
func FlatMap[T, R any](t Try[T], fn func(T) Try[R]) Try[R] {
	if t.IsFailure() {
		return failureFrom[T, R](t)
	}
	mustNotBeNil(fn == nil, "FlatMap", "fn")
	return capture(func() Try[R] {
		return fn(t.value)
	})
}

// Flatten unwraps one level of nesting. A success returns the inner Try
// unchanged; a failure is returned re-typed.
func Flatten[T any](t Try[Try[T]]) Try[T] {
	if t.IsFailure() {
		return failureFrom[Try[T], T](t)
	}
	return t.value
}

// Transform applies onSuccess or onFailure depending on the variant and
// returns its Try. A panic in either becomes a Failure.
func Transform[T, R any](t Try[T], onSuccess func(T) Try[R], onFailure func(error) Try[R]) Try[R] {
	if t.IsSuccess() {
		mustNotBeNil(onSuccess == nil, "Transform", "onSuccess")
		return capture(func() Try[R] {
			return onSuccess(t.value)
		})
	}
	mustNotBeNil(onFailure == nil, "Transform", "onFailure")
	err := t.Err()
	return capture(func() Try[R] {
		return onFailure(err)
	})
}

// Fold collapses t into a plain value. Unlike the Try-returning combinators
// it does not capture panics: there is no Try left to put them in.
func Fold[T, R any](t Try[T], onSuccess func(T) R, onFailure func(error) R) R {
	if t.IsSuccess() {
		return onSuccess(t.value)
	}
	return onFailure(t.Err())
}

// Match runs exactly one of onSuccess and onFailure.
func (t Try[T]) Match(onSuccess func(T), onFailure func(error)) {
	if t.IsSuccess() {
		onSuccess(t.value)
		return
	}
	onFailure(t.Err())
}

// Filter keeps a success when predicate holds and turns it into a Failure
// with ErrPredicate when it does not. A failure is returned unchanged.
func (t Try[T]) Filter(predicate func(T) bool) Try[T] {
	if t.IsFailure() {
		return t
	}
	mustNotBeNil(predicate == nil, "Filter", "predicate")
	return capture(func() Try[T] {
		if predicate(t.value) {
			return t
		}
		return Failure[T](ErrPredicate)
	})
}

// FilterTry is Filter for predicates that report failure with an error.
func (t Try[T]) FilterTry(predicate func(T) (bool, error)) Try[T] {
	if t.IsFailure() {
		return t
	}
	mustNotBeNil(predicate == nil, "FilterTry", "predicate")
	res := WithPredicate(predicate, t.value)
	if res.IsSuccess() {
		return t
	}
	return res
}

// ForEach calls fn with a success value and does nothing on a failure.
// Panics raised by fn reach the caller.
func (t Try[T]) ForEach(fn func(T)) {
	if t.IsFailure() {
		return
	}
	mustNotBeNil(fn == nil, "ForEach", "fn")
	fn(t.value)
}

// Recover turns a failure into Success(fn(err)). A success is returned unchanged.
func (t Try[T]) Recover(fn func(error) T) Try[T] {
	if t.IsSuccess() {
		return t
	}
	mustNotBeNil(fn == nil, "Recover", "fn")
	err := t.Err()
	return capture(func() Try[T] {
		return Success(fn(err))
	})
}

// RecoverWith turns a failure into fn(err). A success is returned unchanged.
func (t Try[T]) RecoverWith(fn func(error) Try[T]) Try[T] {
	if t.IsSuccess() {
		return t
	}
	mustNotBeNil(fn == nil, "RecoverWith", "fn")
	err := t.Err()
	return capture(func() Try[T] {
		return fn(err)
	})
}

// Failed inverts t: a failure becomes a Success of its error and a success
// becomes a Failure with ErrUnsupported.
func (t Try[T]) Failed() Try[error] {
	if t.IsSuccess() {
		return Failure[error](ErrUnsupported)
	}
	return Success(t.Err())
}

func (t Try[T]) GetOrElse(fallback T) T {
	if t.IsSuccess() {
		return t.value
	}
	return fallback
}

// OrElse returns t when it is a success and other otherwise.
func (t Try[T]) OrElse(other Try[T]) Try[T] {
	if t.IsSuccess() {
		return t
	}
	return other
}

// ToOption drops the error: Some(value) on success, None on failure.
func (t Try[T]) ToOption() mo.Option[T] {
	if t.IsSuccess() {
		return mo.Some(t.value)
	}
	return mo.None[T]()
}
