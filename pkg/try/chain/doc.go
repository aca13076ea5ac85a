// Package chain provides a fluent wrapper around try.Try[T]
// for building synchronous chains with a context handed to every step.
//
// It composes FlatMap, MapTry, Map, Filter, Recover and Fold behind a
// convenient Chain[T] type, so each step does not have to branch on the
// previous outcome.
//
// Key operations:
// - Start/FromValue/Lift: begin a chain from a Try[T], a value or a failing call
// - Then: switch to a new Try[U] via a function
// - ThenTry: call a function (U, error) and capture its error or panic
// - Map: transform the successful value (T -> U)
// - Filter/ValidateAll: turn a success into a failure when checks do not hold
// - Recover/RecoverWith: replace a failure
// - Ensure: run side effects on success without changing the result
// - Finally: collapse the chain into a final value via handlers
//
// The context is passed through untouched. Chains never check it for
// cancellation; a step that blocks does so on the caller's goroutine.
package chain
