package option

import "github.com/Philanthropists/fpkit/pkg/result"

// ToResult returns Success with the value, or a Failure with message on
// None. Without a message DefaultMissingMessage is used; extra arguments are
// ignored.
func (o Option[T]) ToResult(message ...string) result.Result[T] {
	if o.ok {
		return result.Success(o.value)
	}

	msg := DefaultMissingMessage
	if len(message) > 0 {
		msg = message[0]
	}

	return result.Fail[T](msg)
}

// FromResult keeps the value of a Success and drops the failure details.
func FromResult[T any](r result.Result[T]) Option[T] {
	if r.IsFailure() {
		return None[T]()
	}

	return Some(r.MustGet())
}
