package vec

// Iter is a position into a vector's storage, supporting forward iteration
// over the half-open range [Begin(), End()). Like a raw pointer it is
// invalidated by any operation that reallocates or shifts elements: Reserve
// beyond the current capacity, growth-triggered append/insert, Erase, or an
// insert before the iterator's position.
type Iter[T any] struct {
	vec *Vec[T]
	inx int
}

// Begin returns the position of the first live element.
func (v *Vec[T]) Begin() Iter[T] {
	return Iter[T]{vec: v, inx: 0}
}

// End returns the position one past the last live element.
func (v *Vec[T]) End() Iter[T] {
	return Iter[T]{vec: v, inx: v.size}
}

// Done is true once the iterator has reached End().
func (it Iter[T]) Done() bool {
	return it.inx >= it.vec.size
}

// Next returns the position one element further. Advancing past End() is a
// contract violation.
func (it Iter[T]) Next() Iter[T] {
	assertThat(it.inx < it.vec.size, "attempt to advance iterator past end")
	return Iter[T]{vec: it.vec, inx: it.inx + 1}
}

// Fwd returns the position n elements further, n >= 0, at most End().
func (it Iter[T]) Fwd(n int) Iter[T] {
	assertThat(n >= 0, "negative iterator advancement: %d", n)
	assertThat(it.inx+n <= it.vec.size, "attempt to advance iterator past end")
	return Iter[T]{vec: it.vec, inx: it.inx + n}
}

// Item returns the element at the iterator's position.
func (it Iter[T]) Item() T {
	return it.vec.At(it.inx)
}

// Ref returns the address of the element at the iterator's position.
func (it Iter[T]) Ref() *T {
	return it.vec.Ref(it.inx)
}

// Index returns the iterator's position as an index into the vector.
func (it Iter[T]) Index() int {
	return it.inx
}
