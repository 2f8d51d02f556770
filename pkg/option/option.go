// Package option provides Option, a value that is either present (Some) or
// absent (None).
//
// Options are immutable. Unlike result, the combinators here do not recover
// panics raised by the functions passed to them.
package option

import (
	"fmt"

	"github.com/zeebo/errs"
)

// DefaultMissingMessage is the failure message used by ToResult when none is
// given.
const DefaultMissingMessage = "No value present"

var (
	Error      = errs.Class("option")
	ErrNoValue = Error.New("no value present")
)

// Option holds a value of type T or nothing. The zero value is None.
type Option[T any] struct {
	value T
	ok    bool
}

// Some returns a present Option, even when v is a nil pointer or interface.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, ok: true}
}

func None[T any]() Option[T] {
	return Option[T]{}
}

// FromNullable returns Some(*v), or None when v is nil.
func FromNullable[T any](v *T) Option[T] {
	if v == nil {
		return None[T]()
	}

	return Some(*v)
}

// FromOk builds an Option from the comma-ok idiom.
func FromOk[T any](v T, ok bool) Option[T] {
	if !ok {
		return None[T]()
	}

	return Some(v)
}

func (o Option[T]) IsSome() bool {
	return o.ok
}

func (o Option[T]) IsNone() bool {
	return !o.ok
}

// Get returns the value, or ErrNoValue on None.
func (o Option[T]) Get() (T, error) {
	if !o.ok {
		var zero T
		return zero, ErrNoValue
	}

	return o.value, nil
}

// MustGet returns the value and panics with ErrNoValue on None.
func (o Option[T]) MustGet() T {
	if !o.ok {
		panic(ErrNoValue)
	}

	return o.value
}

func (o Option[T]) GetOrDefault(d T) T {
	if !o.ok {
		return d
	}

	return o.value
}

// GetOrElse returns the value, or the result of f on None. f takes no
// arguments and is only called on None.
func (o Option[T]) GetOrElse(f func() T) T {
	if !o.ok {
		return f()
	}

	return o.value
}

// GetOrNull returns a pointer to a copy of the value, or nil on None.
func (o Option[T]) GetOrNull() *T {
	if !o.ok {
		return nil
	}

	v := o.value
	return &v
}

func (o Option[T]) Tuple() (T, bool) {
	return o.value, o.ok
}

func (o Option[T]) String() string {
	if !o.ok {
		return "None"
	}

	return fmt.Sprintf("Some(%v)", o.value)
}
