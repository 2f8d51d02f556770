package result

// FromError builds a failed Result from err. The message is err.Error() and
// the cause is err itself. Unless WithCode is passed, the code is taken from
// err when it (or anything it wraps) implements Coder or IntCoder.
func FromError[T any](err error, opts ...FailureOption) Result[T] {
	if err == nil {
		err = Error.New("nil error")
	}

	base := []FailureOption{WithCode(codeOf(err)), WithCause(err)}

	return failed[T](newFailure(err.Error(), append(base, opts...)...))
}

// Try runs thunk and wraps what it returns. A returned error or a panic
// becomes a Failure; Try itself never panics.
func Try[T any](thunk func() (T, error)) (r Result[T]) {
	defer func() {
		if p := recover(); p != nil {
			r = FromError[T](panicToError(p))
		}
	}()

	v, err := thunk()
	if err != nil {
		return FromError[T](err)
	}

	return Success(v)
}

func guard[U any](r *Result[U]) {
	if p := recover(); p != nil {
		*r = FromError[U](panicToError(p))
	}
}
