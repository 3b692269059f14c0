/*
Package vec implements a mutable growable sequence ("vector") with explicit
control over element lifetime, built on the raw storage blocks of package
rawbuf.

A Vec separates memory allocation from element lifetime: storage is a block of
raw slots, of which only the first Len() hold live elements. Construction and
destruction of elements happen exactly when the sequence operations say they
do, driven by per-type lifetime hooks (copy, move, drop, init) which may be
installed as options at creation time. For plain value types no hooks are
needed and the zero configuration behaves like an ordinary growable array.

Mutating operations that construct elements can fail (a constructor or copy
hook may return an error) and then provide the strong guarantee: the sequence
is left exactly as it was before the call. Growth relocates elements into a
fresh block by move when the element type's move cannot fail or the type is
not copyable, and by copy otherwise, so that a failure halfway through a bulk
relocation never loses elements.

Iterators are raw positions into storage; any operation that reallocates or
shifts elements invalidates them.

A Vec is single-owner and not synchronized. Share across goroutines only with
external locking.

Status

Requires Go 1.18 with generics.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package vec

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'mut.vec'.
func tracer() tracing.Trace {
	return tracing.Select("mut.vec")
}
