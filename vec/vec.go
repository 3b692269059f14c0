package vec

import (
	"errors"
	"fmt"

	"github.com/npillmayer/mut"
	"github.com/npillmayer/mut/maybe"
	"github.com/npillmayer/mut/rawbuf"
)

// ErrNotCopyable is returned by operations which need to duplicate elements
// of a vector configured with NoCopy.
var ErrNotCopyable = errors.New("vec: element type is not copyable")

// Vec is a growable sequence of elements of type T over an explicitly owned
// raw storage block. Slots [0, Len()) hold live elements; slots
// [Len(), Cap()) are raw. Capacity never shrinks on its own.
//
// The zero value is an empty vector of a plain value type. Element types
// which need lifetime hooks must be created with New or Make.
type Vec[T any] struct {
	life lifetime[T]
	data rawbuf.Buf[T]
	size int
}

// New creates an empty vector without allocating. Options install
// element-lifetime hooks:
//
//     v := vec.New[*os.File](vec.DropWith(closeFile), vec.NoCopy[*os.File]())
//
func New[T any](opts ...Option[T]) Vec[T] {
	v := Vec[T]{}
	for _, option := range opts {
		option(&v.life)
	}
	return v
}

// Make creates a vector of n value-constructed elements, using the InitWith
// hook if one is given.
func Make[T any](n int, opts ...Option[T]) (Vec[T], error) {
	v := New(opts...)
	if err := v.Resize(n); err != nil {
		v.Release()
		return Vec[T]{}, err
	}
	return v, nil
}

// --- Accessors -------------------------------------------------------------

// Len returns the number of live elements.
func (v *Vec[T]) Len() int {
	return v.size
}

// Cap returns the number of storage slots.
func (v *Vec[T]) Cap() int {
	return v.data.Cap()
}

// At returns the element at index i, 0 <= i < Len().
func (v *Vec[T]) At(i int) T {
	return *v.Ref(i)
}

// Ref returns the address of the element at index i, 0 <= i < Len().
// The reference is invalidated by any operation that reallocates or shifts
// elements.
func (v *Vec[T]) Ref(i int) *T {
	assertThat(i >= 0 && i < v.size, "vector index out of bounds: %d with length %d", i, v.size)
	return v.data.At(i)
}

// First returns the first element, if any.
func (v *Vec[T]) First() maybe.Maybe[T] {
	if v.size == 0 {
		return maybe.Nothing[T]()
	}
	return maybe.Just(*v.data.At(0))
}

// Last returns the last element, if any.
func (v *Vec[T]) Last() maybe.Maybe[T] {
	if v.size == 0 {
		return maybe.Nothing[T]()
	}
	return maybe.Just(*v.data.At(v.size - 1))
}

// --- Capacity and size -----------------------------------------------------

// Reserve grows storage to exactly n slots if n exceeds the current capacity,
// relocating all live elements; otherwise it does nothing. On a relocation
// failure the vector is left unchanged.
func (v *Vec[T]) Reserve(n int) error {
	if n <= v.data.Cap() {
		return nil
	}
	fresh := rawbuf.Alloc[T](n)
	if err := v.relocate(0, v.size, &fresh, 0); err != nil {
		fresh.Release()
		return fmt.Errorf("vec: reserve: %w", err)
	}
	v.adopt(&fresh)
	return nil
}

// Resize sets the length to n: shrinking destroys the trailing elements,
// growing reserves capacity n and value-constructs the new trailing slots.
// If constructing a new element fails, elements constructed so far are
// destroyed and the length is unchanged (capacity may have grown).
func (v *Vec[T]) Resize(n int) error {
	assertThat(n >= 0, "negative length requested: %d", n)
	if n < v.size {
		v.dropIn(&v.data, n, v.size)
		v.size = n
		return nil
	}
	if n > v.size {
		if err := v.Reserve(n); err != nil {
			return err
		}
		for i := v.size; i < n; i++ {
			val, err := v.life.initValue()
			if err != nil {
				v.dropIn(&v.data, v.size, i)
				return fmt.Errorf("vec: resize: %w", err)
			}
			*v.data.At(i) = val
		}
		v.size = n
	}
	return nil
}

// --- Mutators --------------------------------------------------------------

// Push appends a value, growing storage if necessary, and returns a reference
// to the new element.
func (v *Vec[T]) Push(value T) (*T, error) {
	return v.EmplaceBack(func() (T, error) { return value, nil })
}

// EmplaceBack constructs a new element in place at the end, growing storage
// if necessary, and returns a reference to it. If construct fails, the vector
// is unchanged.
func (v *Vec[T]) EmplaceBack(construct func() (T, error)) (*T, error) {
	at, err := v.emplace(v.size, construct)
	if err != nil {
		return nil, fmt.Errorf("vec: emplace back: %w", err)
	}
	return v.data.At(at), nil
}

// Insert places a value before pos, shifting trailing elements right, and
// returns an iterator to the new element. Pos must lie in [Begin(), End()];
// inserting at End() appends.
func (v *Vec[T]) Insert(pos Iter[T], value T) (Iter[T], error) {
	return v.Emplace(pos, func() (T, error) { return value, nil })
}

// Emplace constructs a new element in place before pos, shifting trailing
// elements right, and returns an iterator to it. If any construction fails —
// the new element's or, on the growth path, a relocated element's — the
// vector is left exactly as it was.
func (v *Vec[T]) Emplace(pos Iter[T], construct func() (T, error)) (Iter[T], error) {
	assertThat(pos.vec == v, "iterator belongs to a different vector")
	assertThat(pos.inx >= 0 && pos.inx <= v.size, "insert position out of bounds: %d with length %d", pos.inx, v.size)
	at, err := v.emplace(pos.inx, construct)
	if err != nil {
		return Iter[T]{}, fmt.Errorf("vec: emplace: %w", err)
	}
	return Iter[T]{vec: v, inx: at}, nil
}

// Pop destroys the last element. The vector must not be empty.
func (v *Vec[T]) Pop() {
	assertThat(v.size > 0, "attempt to remove item from empty vector")
	v.dropIn(&v.data, v.size-1, v.size)
	v.size--
}

// Erase removes the element at pos, shifting trailing elements one slot left,
// and returns an iterator to the slot now holding the following element (or
// End()).
func (v *Vec[T]) Erase(pos Iter[T]) Iter[T] {
	assertThat(pos.vec == v, "iterator belongs to a different vector")
	assertThat(pos.inx >= 0 && pos.inx < v.size, "erase position out of bounds: %d with length %d", pos.inx, v.size)
	v.life.dropSlot(v.data.At(pos.inx))
	slots := v.data.Addr(0)
	for i := pos.inx; i < v.size-1; i++ {
		slots[i] = mut.Exchange(&slots[i+1], mut.Zero[T]())
	}
	v.size--
	return Iter[T]{vec: v, inx: pos.inx}
}

// --- Whole-vector operations -----------------------------------------------

// Swap exchanges contents, storage and lifetime hooks with another vector in
// constant time.
func (v *Vec[T]) Swap(other *Vec[T]) {
	v.data.Swap(&other.data)
	v.size, other.size = other.size, v.size
	v.life, other.life = other.life, v.life
}

// Clone copy-constructs an independent vector with exactly Len() slots.
// It fails for NoCopy element types and propagates copy-hook failures, in
// which case no allocation is retained.
func (v *Vec[T]) Clone() (Vec[T], error) {
	if v.life.noCopy {
		return Vec[T]{}, ErrNotCopyable
	}
	w := Vec[T]{life: v.life, data: rawbuf.Alloc[T](v.size)}
	if err := v.copyRange(0, v.size, &w.data, 0); err != nil {
		w.data.Release()
		return Vec[T]{}, fmt.Errorf("vec: clone: %w", err)
	}
	w.size = v.size
	return w, nil
}

// Move transfers storage and contents to the returned vector, leaving the
// receiver empty with zero capacity but with its lifetime hooks intact and
// ready for reuse.
func (v *Vec[T]) Move() Vec[T] {
	return Vec[T]{
		life: v.life,
		data: v.data.Move(),
		size: mut.Exchange(&v.size, 0),
	}
}

// Release destroys all live elements and frees the storage block. The vector
// stays usable as an empty vector. For element types without a drop hook,
// leaving a vector to the garbage collector is equally fine.
func (v *Vec[T]) Release() {
	v.dropIn(&v.data, 0, v.size)
	v.size = 0
	v.data.Release()
}
