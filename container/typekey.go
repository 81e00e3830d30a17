package container

import "reflect"

// ── Type keys ─────────────────────────────────────────────────────────────────

// Key uniquely identifies a concrete Go type for registration and lookup.
// Two keys are equal iff they were derived from the same concrete type, which
// makes Key usable directly as a map key. A Key carries no ordering; only
// equality matters.
type Key struct {
	t reflect.Type
}

// KeyOf derives the Key for type T at compile time.
//
//	key := container.KeyOf[*UserRepository]()
func KeyOf[T any]() Key {
	return Key{t: reflect.TypeOf((*T)(nil)).Elem()}
}

// KeyFor derives the Key from a sample value's dynamic type. The value itself
// is discarded — only its type tag is used.
//
//	key := container.KeyFor(&UserRepository{})
func KeyFor(sample any) Key {
	return Key{t: reflect.TypeOf(sample)}
}

// String returns a human-readable type name, used in error messages.
func (k Key) String() string {
	if k.t == nil {
		return "<nil>"
	}
	return k.t.String()
}

// IsZero reports whether k was derived from no type at all
// (the zero Key, or KeyFor(nil)).
func (k Key) IsZero() bool { return k.t == nil }
