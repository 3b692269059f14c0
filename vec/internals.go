package vec

import (
	"fmt"

	"github.com/npillmayer/mut"
	"github.com/npillmayer/mut/rawbuf"
)

/*
Remarks:
--------

- Growth and positional insertion are commit-or-rollback transactions: the new
  state is built completely in a fresh storage block, and the old block is
  discarded only after every element has been placed. On any failure, exactly
  the elements placed so far are destroyed and the old block stays published.

- In-place shifting (interior emplace, erase) is move-assignment: plain slot
  assignment plus zeroing the source. It cannot fail, so only the paths that
  construct into raw slots carry error returns.
*/

// grownCapacity is the growth policy: double, or 1 when growing from empty.
func (v *Vec[T]) grownCapacity() int {
	if v.size == 0 {
		return 1
	}
	return v.size * 2
}

// emplace constructs a new element at position `at` in [0, size], growing
// storage if full, and returns the element's position.
func (v *Vec[T]) emplace(at int, construct func() (T, error)) (int, error) {
	if v.size == v.data.Cap() {
		if err := v.emplaceGrow(at, construct); err != nil {
			return 0, err
		}
		return at, nil
	}
	if at == v.size {
		// append, or insert into an empty vector: construct straight into
		// the raw one-past-end slot; a failure touches nothing
		val, err := construct()
		if err != nil {
			return 0, err
		}
		*v.data.At(at) = val
		v.size++
		return at, nil
	}
	return at, v.emplaceShift(at, construct)
}

// emplaceShift inserts at an interior position with spare capacity. The new
// value is constructed into a temporary first, so a construction failure
// leaves every existing element untouched.
func (v *Vec[T]) emplaceShift(at int, construct func() (T, error)) error {
	tmp, err := construct()
	if err != nil {
		return err
	}
	// move-construct the last element into the raw one-past-end slot
	last, err := v.life.moveValue(v.data.At(v.size - 1))
	if err != nil {
		v.life.dropSlot(&tmp)
		return err
	}
	*v.data.At(v.size) = last
	// shift [at, size-1) one slot right, backwards
	slots := v.data.Addr(0)
	for i := v.size - 1; i > at; i-- {
		slots[i] = mut.Exchange(&slots[i-1], mut.Zero[T]())
	}
	slots[at] = tmp
	v.size++
	return nil
}

// emplaceGrow inserts at position `at` of a full vector. The new element is
// constructed into the fresh block first, then the prefix [0, at) and the
// suffix [at, size) are relocated around it. Each failure branch destroys
// exactly what has been constructed in the fresh block so far and leaves the
// old block untouched.
func (v *Vec[T]) emplaceGrow(at int, construct func() (T, error)) error {
	ncap := v.grownCapacity()
	tracer().Debugf("growing storage %d → %d for insert at %d", v.data.Cap(), ncap, at)
	fresh := rawbuf.Alloc[T](ncap)
	val, err := construct()
	if err != nil {
		fresh.Release()
		return err
	}
	*fresh.At(at) = val
	if err := v.relocate(0, at, &fresh, 0); err != nil {
		v.dropIn(&fresh, at, at+1)
		fresh.Release()
		return err
	}
	if err := v.relocate(at, v.size, &fresh, at+1); err != nil {
		v.dropIn(&fresh, 0, at+1)
		fresh.Release()
		return err
	}
	v.adopt(&fresh)
	v.size++
	return nil
}

// relocate transfers the live elements [lo, hi) into raw slots of dst
// starting at dstLo, by move or by copy per the element type's capabilities.
// On failure the elements already placed in dst are destroyed and the error
// returned; copy relocation additionally leaves the sources untouched.
func (v *Vec[T]) relocate(lo, hi int, dst *rawbuf.Buf[T], dstLo int) error {
	if v.life.relocateByMove() {
		tracer().Debugf("relocating %d elements by move", hi-lo)
		return v.moveRange(lo, hi, dst, dstLo)
	}
	tracer().Debugf("relocating %d elements by copy", hi-lo)
	return v.copyRange(lo, hi, dst, dstLo)
}

func (v *Vec[T]) copyRange(lo, hi int, dst *rawbuf.Buf[T], dstLo int) error {
	out := dst.Addr(dstLo)
	for i := lo; i < hi; i++ {
		val, err := v.life.copyValue(*v.data.At(i))
		if err != nil {
			v.dropIn(dst, dstLo, dstLo+(i-lo))
			return err
		}
		out[i-lo] = val
	}
	return nil
}

func (v *Vec[T]) moveRange(lo, hi int, dst *rawbuf.Buf[T], dstLo int) error {
	out := dst.Addr(dstLo)
	for i := lo; i < hi; i++ {
		val, err := v.life.moveValue(v.data.At(i))
		if err != nil {
			v.dropIn(dst, dstLo, dstLo+(i-lo))
			return err
		}
		out[i-lo] = val
	}
	return nil
}

// adopt publishes a fully built block: destroys the originals (moved-from
// ones are zero by then), swaps blocks, and frees the old one.
func (v *Vec[T]) adopt(fresh *rawbuf.Buf[T]) {
	v.dropIn(&v.data, 0, v.size)
	v.data.Swap(fresh)
	fresh.Release()
}

// dropIn destroys the elements in slots [lo, hi) of a block, last to first.
func (v *Vec[T]) dropIn(b *rawbuf.Buf[T], lo, hi int) {
	for i := hi - 1; i >= lo; i-- {
		v.life.dropSlot(b.At(i))
	}
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("vec: "+msg, msgargs...)
		panic(msg)
	}
}
