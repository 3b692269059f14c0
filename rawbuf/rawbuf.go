package rawbuf

import (
	"fmt"

	"github.com/npillmayer/mut"
)

// Buf is a block of capacity slots for elements of type T. The zero value is
// an empty block with no allocation, ready for use.
//
// The slab is allocated once and never grown; growth is the owning
// container's business (allocate a larger Buf, relocate, Swap).
type Buf[T any] struct {
	slab []T // len == cap == capacity; nil iff capacity is 0
}

// Alloc requests a block of capacity raw slots. Capacity 0 yields an empty
// block without allocating. Alloc either succeeds completely or does not
// return (the runtime aborts on exhausted memory); there is no partial state.
func Alloc[T any](capacity int) Buf[T] {
	assertThat(capacity >= 0, "negative capacity requested: %d", capacity)
	if capacity == 0 {
		return Buf[T]{}
	}
	tracer().Debugf("allocating block of %d slots", capacity)
	return Buf[T]{slab: make([]T, capacity)}
}

// Cap returns the number of slots in the block.
func (b *Buf[T]) Cap() int {
	return len(b.slab)
}

// At returns the address of slot i, 0 <= i < Cap().
func (b *Buf[T]) At(i int) *T {
	assertThat(i >= 0 && i < len(b.slab), "slot index out of bounds: %d with capacity %d", i, len(b.slab))
	return &b.slab[i]
}

// Addr returns the window of slots starting at offset. Offset == Cap() is the
// valid one-past-end address and yields an empty window.
func (b *Buf[T]) Addr(offset int) []T {
	assertThat(offset >= 0 && offset <= len(b.slab), "slot offset out of bounds: %d with capacity %d", offset, len(b.slab))
	return b.slab[offset:]
}

// Swap exchanges the blocks owned by b and other in constant time. No slot is
// touched.
func (b *Buf[T]) Swap(other *Buf[T]) {
	b.slab, other.slab = other.slab, b.slab
}

// Move transfers ownership of the block to the returned Buf, leaving b empty
// with zero capacity.
func (b *Buf[T]) Move() Buf[T] {
	return Buf[T]{slab: mut.Exchange(&b.slab, nil)}
}

// Release frees the block. Element lifetime hooks are never run here; the
// owner must have cleared live elements out of the slots beforehand.
func (b *Buf[T]) Release() {
	b.slab = nil
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("rawbuf: "+msg, msgargs...)
		panic(msg)
	}
}
