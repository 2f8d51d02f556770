package result

// Map applies f to the value of a Success. A panic inside f is recovered
// into a Failure. A Failure passes through with its message, code and cause.
func Map[T, U any](r Result[T], f func(T) U) (out Result[U]) {
	if r.failure != nil {
		return failed[U](r.failure)
	}

	defer guard(&out)

	return Success(f(r.value))
}

// TryMap is Map for functions that report failure through an error.
func TryMap[T, U any](r Result[T], f func(T) (U, error)) Result[U] {
	if r.failure != nil {
		return failed[U](r.failure)
	}

	return Try(func() (U, error) {
		return f(r.value)
	})
}

// FlatMap returns f applied to the value of a Success, without wrapping it
// again. A panic inside f is recovered into a Failure.
func FlatMap[T, U any](r Result[T], f func(T) Result[U]) (out Result[U]) {
	if r.failure != nil {
		return failed[U](r.failure)
	}

	defer guard(&out)

	return f(r.value)
}

// Match calls onSuccess with the value or onFailure with the failure and
// returns what it produced.
func Match[T, U any](r Result[T], onSuccess func(T) U, onFailure func(Failure) U) U {
	if r.failure != nil {
		return onFailure(*r.failure)
	}

	return onSuccess(r.value)
}

func (r Result[T]) OnSuccess(f func(T)) Result[T] {
	if r.failure == nil {
		f(r.value)
	}

	return r
}

func (r Result[T]) OnFailure(f func(Failure)) Result[T] {
	if r.failure != nil {
		f(*r.failure)
	}

	return r
}

// Or returns r if it succeeded and other otherwise.
func (r Result[T]) Or(other Result[T]) Result[T] {
	if r.failure == nil {
		return r
	}

	return other
}

// OrElse calls f with the failure to produce a fallback. A panic inside f is
// recovered into a Failure.
func (r Result[T]) OrElse(f func(Failure) Result[T]) (out Result[T]) {
	if r.failure == nil {
		return r
	}

	defer guard(&out)

	return f(*r.failure)
}

// Collect gathers the values of rs in order. The first Failure is returned
// as is.
func Collect[T any](rs ...Result[T]) Result[[]T] {
	values := make([]T, 0, len(rs))
	for _, r := range rs {
		if r.failure != nil {
			return failed[[]T](r.failure)
		}
		values = append(values, r.value)
	}

	return Success(values)
}
