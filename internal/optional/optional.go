// Package optional holds a value that may be absent. Iterators use it to
// signal exhaustion without a sentinel.
package optional

type Optional[T any] struct {
	ok bool
	v  T
}

func Some[T any](v T) Optional[T] {
	return Optional[T]{ok: true, v: v}
}

func None[T any]() Optional[T] {
	return Optional[T]{}
}

func (o Optional[T]) IsPresent() bool {
	return o.ok
}

// Value is the zero value of T when nothing is present.
func (o Optional[T]) Value() T {
	return o.v
}

// Get is the comma-ok form of Value.
func (o Optional[T]) Get() (T, bool) {
	return o.v, o.ok
}
