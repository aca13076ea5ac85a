package try

// Outcome is the read side shared by Try and the fluent chains built on it.
type Outcome[T any] interface {
	// IsSuccess returns true if the operation produced a value
	IsSuccess() bool
	// IsFailure returns true if the operation raised an error
	IsFailure() bool
	// Get returns the value, or an error whose cause is the raised one
	Get() (T, error)
}

var _ Outcome[int] = Try[int]{}
