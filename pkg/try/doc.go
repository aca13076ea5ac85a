// Package try provides Try[T], a synchronous result value that is either a
// Success carrying a value or a Failure carrying the error that an operation
// raised. An operation raises when it returns a non-nil error or panics.
//
// Highlights:
// - Success/Failure/Of: construct Try[T]
// - With/WithFunc/WithPredicate/WithConsumer/WithBiFunc/WithBiConsumer:
// run a 0, 1 or 2 argument operation once and capture its outcome
// - Map/MapTry/FlatMap/Flatten/Transform: move from Try[T] to Try[R]
// - Filter/Recover/RecoverWith/OrElse/GetOrElse/Failed/ToOption: same-type combinators
// - ForEach/Fold: terminal consumption
// - AsPredicate: adapt a failing predicate to a plain func(T) bool
//
// Every combinator that runs caller-supplied code downgrades a panic or a
// returned error to a Failure. Two operations let raised errors escape on
// purpose: ForEach, whose callback is a terminal side effect, and the
// predicate returned by AsPredicate, which has no room for a Failure and
// panics with a *PredicateError instead. Panics carrying a value marked with
// Fatal are never captured anywhere.
//
// A Try never mutates. Combinators that hand back their receiver keep its
// ID, so callers can tell "the same value" from "an equal copy".
package try
