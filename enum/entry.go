package enum

// Entry associates one enumeration value with its canonical textual name.
// The zero Entry (zero value, empty name) is reserved as the sentinel; see
// Sentinel.
type Entry[T comparable] struct {
	Value T
	Name  string
}

// Equal reports whether both the value and the name match.
func (e Entry[T]) Equal(other Entry[T]) bool {
	return e.Value == other.Value && e.Name == other.Name
}

// Unwrap returns the bare enumeration value, for call sites where only the
// scalar matters.
func (e Entry[T]) Unwrap() T {
	return e.Value
}

// IsSentinel reports whether the entry is the sentinel.
//
// An entry legitimately declared with the zero value and an empty name is
// indistinguishable from the sentinel; avoid declaring such entries.
func (e Entry[T]) IsSentinel() bool {
	return e == Entry[T]{}
}

// Sentinel returns the distinguished "no match" entry: zero value, empty
// name. Search strategies return it on exhaustion and Table treats it as
// the cue to invoke the bound UnknownHandler.
func Sentinel[T comparable]() Entry[T] {
	return Entry[T]{}
}
