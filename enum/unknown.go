package enum

// UnknownHandler produces the entry surfaced to the caller when a search
// finds no match. Implementations receive the original query and the full
// entry slice.
type UnknownHandler[T comparable] interface {
	HandleValue(value T, entries []Entry[T]) Entry[T]
	HandleName(name string, entries []Entry[T]) Entry[T]
}

// ReturnSentinel is the baseline unknown policy: every miss surfaces as the
// sentinel entry, regardless of the query.
type ReturnSentinel[T comparable] struct{}

func (ReturnSentinel[T]) HandleValue(T, []Entry[T]) Entry[T] {
	return Sentinel[T]()
}

func (ReturnSentinel[T]) HandleName(string, []Entry[T]) Entry[T] {
	return Sentinel[T]()
}

// Fallback surfaces a caller-supplied entry on every miss, e.g. a catch-all
// "Unknown" member of the enumeration.
type Fallback[T comparable] struct {
	Entry Entry[T]
}

func (f Fallback[T]) HandleValue(T, []Entry[T]) Entry[T] {
	return f.Entry
}

func (f Fallback[T]) HandleName(string, []Entry[T]) Entry[T] {
	return f.Entry
}
