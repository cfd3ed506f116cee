package enum

// Table binds an entry slice to a value-search, a name-search and an
// unknown-handling strategy. It borrows the slice: the caller owns the
// backing array, must keep it alive for the lifetime of the Table and must
// not mutate it afterwards.
//
// Within one table no two entries should share a value; lookups return the
// first match under the bound strategy's search order, so duplicates make
// the result order-dependent. That invariant is a caller obligation and is
// not validated here.
type Table[T comparable] struct {
	entries []Entry[T]
	values  ValueSearcher[T]
	names   NameSearcher[T]
	unknown UnknownHandler[T]
}

// New builds a Table over entries with the given strategies.
// When using SortedSearch the entries must be sorted ascending by value.
func New[T comparable](entries []Entry[T], values ValueSearcher[T], names NameSearcher[T], unknown UnknownHandler[T]) Table[T] {
	return Table[T]{
		entries: entries,
		values:  values,
		names:   names,
		unknown: unknown,
	}
}

// NewDefault builds a Table with the default strategy set: linear value
// search, case-sensitive name search, sentinel on miss.
func NewDefault[T comparable](entries []Entry[T]) Table[T] {
	return New[T](entries, LinearSearch[T]{}, CaseSensitiveSearch[T]{}, ReturnSentinel[T]{})
}

// ResolveValue returns the entry for the given value. On a miss the bound
// UnknownHandler decides the result. Never fails, never allocates.
func (t Table[T]) ResolveValue(value T) Entry[T] {
	result := t.values.SearchValue(value, t.entries)
	if result.IsSentinel() {
		result = t.unknown.HandleValue(value, t.entries)
	}

	return result
}

// ResolveName returns the entry for the given name. On a miss the bound
// UnknownHandler decides the result. Never fails, never allocates.
func (t Table[T]) ResolveName(name string) Entry[T] {
	result := t.names.SearchName(name, t.entries)
	if result.IsSentinel() {
		result = t.unknown.HandleName(name, t.entries)
	}

	return result
}

// All returns the backing entries in their original order. The slice is
// shared with the table; treat it as read-only.
func (t Table[T]) All() []Entry[T] {
	return t.entries
}

// Len returns the number of entries.
func (t Table[T]) Len() int {
	return len(t.entries)
}
