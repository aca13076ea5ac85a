// Package mass applies try primitives to slices: lifting an operation over
// every element, sequencing and traversing with fail-fast or collect-all
// semantics, and splitting a slice of results into values and errors.
//
// Everything runs on the caller's goroutine, element by element, in input
// order.
package mass
