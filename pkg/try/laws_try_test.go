package try_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/ib-77/try3/pkg/try"
)

func TestTryFunctorLaws(t *testing.T) {
	properties := gopter.NewProperties(nil)

	inc := func(x int) int { return x + 1 }
	dbl := func(x int) int { return x * 2 }

	properties.Property("map identity", prop.ForAll(
		func(v int, ok bool) bool {
			res := fromBool(v, ok)
			return equalTry(res, try.Map(res, func(x int) int { return x }))
		},
		gen.Int(), gen.Bool(),
	))

	properties.Property("map composition", prop.ForAll(
		func(v int, ok bool) bool {
			res := fromBool(v, ok)
			left := try.Map(try.Map(res, inc), dbl)
			right := try.Map(res, func(x int) int { return dbl(inc(x)) })
			return equalTry(left, right)
		},
		gen.Int(), gen.Bool(),
	))

	properties.Property("map on failure never evaluates", prop.ForAll(
		func(msg string) bool {
			failure := try.Failure[int](errors.New(msg))
			called := false
			mapped := try.Map(failure, func(x int) string {
				called = true
				return strconv.Itoa(x)
			})
			return !called && mapped.Err() == failure.Err()
		},
		gen.AlphaString(),
	))

	properties.TestingRun(t)
}

func TestTryMonadLaws(t *testing.T) {
	properties := gopter.NewProperties(nil)

	half := func(x int) try.Try[int] {
		if x%2 == 0 {
			return try.Success(x / 2)
		}
		return try.Failure[int](errors.New("odd"))
	}
	plus3 := func(x int) try.Try[int] {
		return try.Success(x + 3)
	}

	properties.Property("left identity", prop.ForAll(
		func(v int) bool {
			return equalTry(try.FlatMap(try.Success(v), half), half(v))
		},
		gen.Int(),
	))

	properties.Property("right identity", prop.ForAll(
		func(v int, ok bool) bool {
			res := fromBool(v, ok)
			return equalTry(try.FlatMap(res, try.Success[int]), res)
		},
		gen.Int(), gen.Bool(),
	))

	properties.Property("associativity", prop.ForAll(
		func(v int) bool {
			left := try.FlatMap(try.FlatMap(try.Success(v), half), plus3)
			right := try.FlatMap(try.Success(v), func(x int) try.Try[int] {
				return try.FlatMap(half(x), plus3)
			})
			return equalTry(left, right)
		},
		gen.Int(),
	))

	properties.Property("flatten of map is flatMap", prop.ForAll(
		func(v int, ok bool) bool {
			res := fromBool(v, ok)
			return equalTry(try.Flatten(try.Map(res, half)), try.FlatMap(res, half))
		},
		gen.Int(), gen.Bool(),
	))

	properties.TestingRun(t)
}

func TestTryRecoverLaws(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("success is untouched by recover", prop.ForAll(
		func(v int) bool {
			s := try.Success(v)
			return s.Recover(func(error) int { return -v }).ID() == s.ID()
		},
		gen.Int(),
	))

	properties.Property("failure recovers to fn(err)", prop.ForAll(
		func(msg string) bool {
			f := try.Failure[string](errors.New(msg))
			return equalTry(f.Recover(func(err error) string { return err.Error() }), try.Success(msg))
		},
		gen.AlphaString(),
	))

	properties.TestingRun(t)
}

var errLaw = errors.New("law")

func fromBool(v int, ok bool) try.Try[int] {
	if ok {
		return try.Success(v)
	}
	return try.Failure[int](errLaw)
}

// equalTry compares variants and payloads, ignoring identity.
func equalTry[T comparable](a, b try.Try[T]) bool {
	if a.IsSuccess() != b.IsSuccess() {
		return false
	}
	if a.IsFailure() {
		return a.Err().Error() == b.Err().Error()
	}
	return a.GetOrElse(zero[T]()) == b.GetOrElse(zero[T]())
}

func zero[T any]() T {
	var z T
	return z
}
