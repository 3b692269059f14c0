/*
Package mut provides mutable in-memory containers with explicit control over
element lifetime, together with a handful of generic helpers shared by the
container packages.

The containers live in sub-packages (rawbuf, vec); this root package holds
only small building blocks for transferring and clearing values.

Status

Requires Go 1.18 with generics.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package mut

// Exchange stores `with` at `place` and returns the value previously held
// there. It is the primitive behind ownership transfer: the caller receives
// the old value, the place holds the new one.
func Exchange[T any](place *T, with T) T {
	old := *place
	*place = with
	return old
}

// Zero returns the zero value for T.
func Zero[T any]() T {
	var z T
	return z
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
