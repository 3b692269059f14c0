/*
Package maybe provides an option type for values which may be absent.

It is a deliberately small surface: construct with Just or Nothing, query with
Get, IsJust or Or. The container packages of this module use it for accessors
like "last element of a possibly empty sequence".

Status

Requires Go 1.18 with generics.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package maybe

// Maybe holds either a value of type T or nothing.
type Maybe[T any] struct {
	value T
	tag   bool
}

// Just wraps a present value.
func Just[T any](x T) Maybe[T] {
	return Maybe[T]{value: x, tag: true}
}

// Nothing is the absent value for type T.
func Nothing[T any]() Maybe[T] {
	return Maybe[T]{}
}

// IsJust is true if m holds a value.
func (m Maybe[T]) IsJust() bool {
	return m.tag
}

// Get returns the held value and a flag telling whether it is present.
// For Nothing, the zero value for T is returned.
func (m Maybe[T]) Get() (T, bool) {
	return m.value, m.tag
}

// Or returns the held value, or def if m is Nothing.
func (m Maybe[T]) Or(def T) T {
	if m.tag {
		return m.value
	}
	return def
}

// Map applies f to a present value and wraps the result; Nothing stays
// Nothing.
func Map[T, S any](f func(T) S, m Maybe[T]) Maybe[S] {
	if v, ok := m.Get(); ok {
		return Just(f(v))
	}
	return Nothing[S]()
}
