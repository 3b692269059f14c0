/*
Package rawbuf implements an untyped-capacity storage block for container
implementations.

A Buf owns a contiguous block of slots for elements of type T, but is unaware
of element lifetime: it never constructs, destroys or interprets the values
held in its slots. A slot is "raw" in the lifetime sense — whether it holds a
live element is the exclusive business of the owning container, which must
clear out any live elements before a Buf is released or overwritten.

Buf ownership is singular. A Buf value must not be duplicated; pass it by
pointer and transfer ownership with Move or Swap, which leave the source
empty and reusable.

Status

Requires Go 1.18 with generics.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package rawbuf

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'mut.rawbuf'.
func tracer() tracing.Trace {
	return tracing.Select("mut.rawbuf")
}
