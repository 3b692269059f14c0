package vec

import (
	"github.com/npillmayer/mut"
)

// lifetime bundles the element-lifetime hooks of a vector. All hooks are
// optional; the zero lifetime describes a plain value type (trivial copy,
// infallible move, no drop, zero-value init).
type lifetime[T any] struct {
	copy   func(T) (T, error)
	move   func(*T) (T, error)
	drop   func(*T)
	init   func() (T, error)
	noCopy bool
}

// Option is a type to help configuring element lifetime at creation time.
type Option[T any] func(*lifetime[T])

// CopyWith installs a copy-constructor hook. The hook produces an independent
// duplicate of its argument and may fail.
//
// Use it like this:
//
//     v := vec.New[*Conn](vec.CopyWith(cloneConn))
//
func CopyWith[T any](f func(T) (T, error)) Option[T] {
	return func(l *lifetime[T]) {
		l.copy = f
		l.noCopy = false
	}
}

// NoCopy declares the element type non-copyable. Clone fails for such a
// vector, and growth always relocates elements by move.
func NoCopy[T any]() Option[T] {
	return func(l *lifetime[T]) {
		l.copy = nil
		l.noCopy = true
	}
}

// MoveWith installs a move-constructor hook. The hook transfers the value out
// of its argument, leaving the source reset, and may fail. Without this
// option the move is trivial (slot assignment plus zeroing the source) and
// cannot fail — which is what enables move relocation during growth for
// copyable types.
func MoveWith[T any](f func(*T) (T, error)) Option[T] {
	return func(l *lifetime[T]) {
		l.move = f
	}
}

// DropWith installs a destructor hook, run exactly once for every element a
// vector destroys. The hook must tolerate moved-from elements, which present
// as the zero value for T.
func DropWith[T any](f func(*T)) Option[T] {
	return func(l *lifetime[T]) {
		l.drop = f
	}
}

// InitWith installs a value-constructor hook used by Resize and Make for new
// trailing elements. Without it, new elements are the zero value for T.
func InitWith[T any](f func() (T, error)) Option[T] {
	return func(l *lifetime[T]) {
		l.init = f
	}
}

// --- Hook dispatch ---------------------------------------------------------

func (l lifetime[T]) copyValue(src T) (T, error) {
	if l.copy != nil {
		return l.copy(src)
	}
	return src, nil
}

func (l lifetime[T]) moveValue(src *T) (T, error) {
	if l.move != nil {
		return l.move(src)
	}
	return mut.Exchange(src, mut.Zero[T]()), nil
}

func (l lifetime[T]) initValue() (T, error) {
	if l.init != nil {
		return l.init()
	}
	return mut.Zero[T](), nil
}

// dropSlot destroys the element in a slot and resets the slot to raw (zero),
// releasing any references for the garbage collector.
func (l lifetime[T]) dropSlot(p *T) {
	if l.drop != nil {
		l.drop(p)
	}
	*p = mut.Zero[T]()
}

// relocateByMove decides the relocation strategy for bulk transfers into new
// storage: move when the element move cannot fail, or when the type cannot be
// copied at all; copy otherwise. Copying is what preserves the originals if a
// later element's construction fails partway through the transfer.
func (l lifetime[T]) relocateByMove() bool {
	return l.move == nil || l.noCopy
}
