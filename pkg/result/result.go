// Package result provides Result, the outcome of an operation that either
// succeeded with a value or failed with a message, an optional code and an
// optional originating error.
//
// A Result never changes after it is built. Operations that change the
// payload type (Map, FlatMap, Match) are package functions; the rest are
// methods.
package result

import "fmt"

// Result is either a Success holding a value of type T or a Failure. The
// zero value is a Success holding the zero value of T.
type Result[T any] struct {
	value   T
	failure *Failure
}

// Success returns a successful Result holding v. The zero value of T is a
// valid payload.
func Success[T any](v T) Result[T] {
	return Result[T]{value: v}
}

// Fail returns a failed Result with the given message.
func Fail[T any](message string, opts ...FailureOption) Result[T] {
	return Result[T]{failure: newFailure(message, opts...)}
}

// FromTuple turns the usual (value, error) pair into a Result.
func FromTuple[T any](v T, err error) Result[T] {
	if err != nil {
		return FromError[T](err)
	}

	return Success(v)
}

func failed[T any](f *Failure) Result[T] {
	return Result[T]{failure: f}
}

// IsSuccess reports whether r holds a value. Exactly one of IsSuccess and
// IsFailure is true.
func (r Result[T]) IsSuccess() bool {
	return r.failure == nil
}

func (r Result[T]) IsFailure() bool {
	return r.failure != nil
}

// Failure returns the failure side of r. ok is false on Success.
func (r Result[T]) Failure() (f Failure, ok bool) {
	if r.failure == nil {
		return Failure{}, false
	}

	return *r.failure, true
}

// Get returns the value, or a *FailedError built from the failure.
func (r Result[T]) Get() (T, error) {
	if r.failure != nil {
		var zero T
		return zero, r.failure.Err()
	}

	return r.value, nil
}

// MustGet returns the value and panics with a *FailedError on Failure.
func (r Result[T]) MustGet() T {
	v, err := r.Get()
	if err != nil {
		panic(err)
	}

	return v
}

// GetOrDefault returns the value, or d on Failure.
func (r Result[T]) GetOrDefault(d T) T {
	if r.failure != nil {
		return d
	}

	return r.value
}

// GetOrElse returns the value, or f applied to the failure. f only runs on
// Failure.
func (r Result[T]) GetOrElse(f func(Failure) T) T {
	if r.failure != nil {
		return f(*r.failure)
	}

	return r.value
}

// Err returns nil on Success and the *FailedError otherwise.
func (r Result[T]) Err() error {
	if r.failure == nil {
		return nil
	}

	return r.failure.Err()
}

func (r Result[T]) Tuple() (T, error) {
	return r.Get()
}

func (r Result[T]) String() string {
	if r.failure != nil {
		return fmt.Sprintf("Failure(%s)", r.failure)
	}

	return fmt.Sprintf("Success(%v)", r.value)
}
