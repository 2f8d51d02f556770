package option

func Map[T, U any](o Option[T], f func(T) U) Option[U] {
	if !o.ok {
		return None[U]()
	}

	return Some(f(o.value))
}

// FlatMap returns f applied to the value, without wrapping it again.
func FlatMap[T, U any](o Option[T], f func(T) Option[U]) Option[U] {
	if !o.ok {
		return None[U]()
	}

	return f(o.value)
}

func Match[T, U any](o Option[T], onSome func(T) U, onNone func() U) U {
	if !o.ok {
		return onNone()
	}

	return onSome(o.value)
}

func Flatten[T any](o Option[Option[T]]) Option[T] {
	if !o.ok {
		return None[T]()
	}

	return o.value
}

// Filter keeps the value only when p reports true for it.
func (o Option[T]) Filter(p func(T) bool) Option[T] {
	if !o.ok || !p(o.value) {
		return None[T]()
	}

	return o
}

func (o Option[T]) IfSome(f func(T)) Option[T] {
	if o.ok {
		f(o.value)
	}

	return o
}

func (o Option[T]) IfNone(f func()) Option[T] {
	if !o.ok {
		f()
	}

	return o
}

// Or returns o if it is present and other otherwise.
func (o Option[T]) Or(other Option[T]) Option[T] {
	if o.ok {
		return o
	}

	return other
}

// OrElse is Or with a lazily built fallback.
func (o Option[T]) OrElse(f func() Option[T]) Option[T] {
	if o.ok {
		return o
	}

	return f()
}
