package mass

import (
	"errors"

	"github.com/samber/lo"

	"github.com/ib-77/try3/pkg/try"
)

// Lift runs fn once per item and captures every outcome.
func Lift[A, R any](items []A, fn func(A) (R, error)) []try.Try[R] {
	return lo.Map(items, func(item A, _ int) try.Try[R] {
		return try.WithFunc(fn, item)
	})
}

// Generate calls supplier until limit successes were produced or
// maxAttempts calls were made, and returns the successes.
func Generate[T any](limit, maxAttempts int, supplier func() (T, error)) []try.Try[T] {
	out := make([]try.Try[T], 0, max(limit, 0))
	for attempt := 0; attempt < maxAttempts && len(out) < limit; attempt++ {
		if res := try.With(supplier); res.IsSuccess() {
			out = append(out, res)
		}
	}
	return out
}

// Sequence turns a slice of results into a result of a slice, failing with
// the first failure.
func Sequence[T any](results []try.Try[T]) try.Try[[]T] {
	values := make([]T, 0, len(results))
	for _, r := range results {
		v, err := r.Get()
		if err != nil {
			return try.Failure[[]T](r.Err())
		}
		values = append(values, v)
	}
	return try.Success(values)
}

// SequenceAll is Sequence without the short circuit: every failure is
// joined into the returned error.
func SequenceAll[T any](results []try.Try[T]) try.Try[[]T] {
	values, errs := Partition(results)
	if len(errs) > 0 {
		return try.Failure[[]T](errors.Join(errs...))
	}
	return try.Success(values)
}

// Traverse maps items to results and sequences them. fn is not called for
// the items after the first failure.
func Traverse[A, B any](items []A, fn func(A) try.Try[B]) try.Try[[]B] {
	values := make([]B, 0, len(items))
	for _, item := range items {
		res := try.FlatMap(try.Success(item), fn)
		v, err := res.Get()
		if err != nil {
			return try.Failure[[]B](res.Err())
		}
		values = append(values, v)
	}
	return try.Success(values)
}

// Successes returns the values of the successful results.
func Successes[T any](results []try.Try[T]) []T {
	return lo.FilterMap(results, func(r try.Try[T], _ int) (T, bool) {
		v, err := r.Get()
		return v, err == nil
	})
}

// Failures returns the errors of the failed results.
func Failures[T any](results []try.Try[T]) []error {
	return lo.FilterMap(results, func(r try.Try[T], _ int) (error, bool) {
		return r.Err(), r.IsFailure()
	})
}

// Partition splits results into values and errors, keeping input order
// within each.
func Partition[T any](results []try.Try[T]) ([]T, []error) {
	return Successes(results), Failures(results)
}

// Filter keeps the items for which predicate holds. It goes through
// try.AsPredicate, so an error from predicate panics with a
// *try.PredicateError; use FilterTry to get it back as a failure.
func Filter[T any](items []T, predicate func(T) (bool, error)) []T {
	keep := try.AsPredicate(predicate)
	return lo.Filter(items, func(item T, _ int) bool {
		return keep(item)
	})
}

// FilterTry is Filter with the predicate error captured as a failure.
func FilterTry[T any](items []T, predicate func(T) (bool, error)) try.Try[[]T] {
	return try.With(func() ([]T, error) {
		return Filter(items, predicate), nil
	})
}
