package try

import "runtime/debug"

// capture runs op and turns a panic raised while it runs into a Failure.
// Fatal panics are re-raised untouched.
func capture[T any](op func() Try[T]) (res Try[T]) {
	defer func() {
		if r := recover(); r != nil {
			res = Failure[T](fromPanic(r))
		}
	}()
	return op()
}

func fromPanic(r any) error {
	if IsFatal(r) {
		panic(r)
	}
	if err, ok := r.(error); ok {
		return err
	}
	return &PanicError{Value: r, Stack: debug.Stack()}
}
