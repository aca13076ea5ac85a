package chain

import (
	"context"
	"errors"

	"github.com/ib-77/try3/pkg/try"
)

// Chain wraps a try.Try with context to enable fluent chaining
type Chain[T any] struct {
	ctx    context.Context
	result try.Try[T]
}

var _ try.Outcome[int] = (*Chain[int])(nil)

// Start creates a new chain from a try.Try
func Start[T any](ctx context.Context, result try.Try[T]) *Chain[T] {
	return &Chain[T]{
		ctx:    ctx,
		result: result,
	}
}

// FromValue creates a new chain from a successful value
func FromValue[T any](ctx context.Context, value T) *Chain[T] {
	return Start(ctx, try.Success(value))
}

// Lift creates a new chain from a call that may fail
func Lift[T any](ctx context.Context, supplier func(context.Context) (T, error)) *Chain[T] {
	mustNotBeNil(supplier == nil, "Lift", "supplier")
	return Start(ctx, try.With(func() (T, error) {
		return supplier(ctx)
	}))
}

// Result returns the underlying try.Try
func (c *Chain[T]) Result() try.Try[T] {
	return c.result
}

func (c *Chain[T]) IsSuccess() bool {
	return c.result.IsSuccess()
}

func (c *Chain[T]) IsFailure() bool {
	return c.result.IsFailure()
}

func (c *Chain[T]) Get() (T, error) {
	return c.result.Get()
}

// Then chains a function that returns try.Try[U]
func Then[T, U any](c *Chain[T], onSuccess func(context.Context, T) try.Try[U]) *Chain[U] {
	mustNotBeNil(onSuccess == nil, "Then", "onSuccess")
	return &Chain[U]{
		ctx: c.ctx,
		result: try.FlatMap(c.result, func(v T) try.Try[U] {
			return onSuccess(c.ctx, v)
		}),
	}
}

// ThenTry chains a function that returns (U, error)
func ThenTry[T, U any](c *Chain[T], tryOnSuccess func(context.Context, T) (U, error)) *Chain[U] {
	mustNotBeNil(tryOnSuccess == nil, "ThenTry", "tryOnSuccess")
	return &Chain[U]{
		ctx: c.ctx,
		result: try.MapTry(c.result, func(v T) (U, error) {
			return tryOnSuccess(c.ctx, v)
		}),
	}
}

// Map chains a pure transformation function
func Map[T, U any](c *Chain[T], onSuccess func(context.Context, T) U) *Chain[U] {
	mustNotBeNil(onSuccess == nil, "Map", "onSuccess")
	return &Chain[U]{
		ctx: c.ctx,
		result: try.Map(c.result, func(v T) U {
			return onSuccess(c.ctx, v)
		}),
	}
}

// Filter fails the chain with try.ErrPredicate when predicate does not hold
func (c *Chain[T]) Filter(predicate func(context.Context, T) bool) *Chain[T] {
	mustNotBeNil(predicate == nil, "Filter", "predicate")
	return c.with(c.result.Filter(func(v T) bool {
		return predicate(c.ctx, v)
	}))
}

// ValidateAll runs every validator against a successful value. With
// breakOnError it stops at the first error, otherwise the errors are joined.
func (c *Chain[T]) ValidateAll(breakOnError bool, validators ...func(context.Context, T) error) *Chain[T] {
	for _, validate := range validators {
		mustNotBeNil(validate == nil, "ValidateAll", "validator")
	}

	value, err := c.result.Get()
	if err != nil || len(validators) == 0 {
		return c
	}

	var joined error
	for _, validate := range validators {
		res := try.WithConsumer(func(v T) error { return validate(c.ctx, v) }, value)
		if res.IsSuccess() {
			continue
		}

		e := try.Errors(joined)
		e = append(e, res.Err())
		joined = errors.Join(e...)

		if breakOnError {
			break
		}
	}

	if joined == nil {
		return c
	}
	return c.with(try.Failure[T](joined))
}

// Recover replaces a failure with the value returned by onFailure
func (c *Chain[T]) Recover(onFailure func(context.Context, error) T) *Chain[T] {
	mustNotBeNil(onFailure == nil, "Recover", "onFailure")
	return c.with(c.result.Recover(func(err error) T {
		return onFailure(c.ctx, err)
	}))
}

// RecoverWith replaces a failure with the try.Try returned by onFailure
func (c *Chain[T]) RecoverWith(onFailure func(context.Context, error) try.Try[T]) *Chain[T] {
	mustNotBeNil(onFailure == nil, "RecoverWith", "onFailure")
	return c.with(c.result.RecoverWith(func(err error) try.Try[T] {
		return onFailure(c.ctx, err)
	}))
}

// Ensure performs a side effect without changing the result
func (c *Chain[T]) Ensure(onSuccess func(context.Context, T)) *Chain[T] {
	mustNotBeNil(onSuccess == nil, "Ensure", "onSuccess")
	c.result.ForEach(func(v T) {
		onSuccess(c.ctx, v)
	})
	return c
}

// Finally collapses the chain into a final result using try.Fold
func Finally[T, U any](c *Chain[T], onSuccess func(context.Context, T) U, onFailure func(context.Context, error) U) U {
	mustNotBeNil(onSuccess == nil, "Finally", "onSuccess")
	mustNotBeNil(onFailure == nil, "Finally", "onFailure")
	return try.Fold(c.result,
		func(v T) U { return onSuccess(c.ctx, v) },
		func(err error) U { return onFailure(c.ctx, err) })
}

func (c *Chain[T]) with(result try.Try[T]) *Chain[T] {
	return &Chain[T]{
		ctx:    c.ctx,
		result: result,
	}
}

// mustNotBeNil rejects nil callbacks when a step is built, whatever the
// state of the chain.
func mustNotBeNil(isNil bool, op, arg string) {
	if isNil {
		panic(&try.ContractError{Op: "chain." + op, Arg: arg})
	}
}
