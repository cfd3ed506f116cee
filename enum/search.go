package enum

import "cmp"

// ValueSearcher locates an entry by its enumeration value.
type ValueSearcher[T comparable] interface {
	// SearchValue returns the matching entry, or the sentinel if no entry
	// has the given value.
	SearchValue(value T, entries []Entry[T]) Entry[T]
}

// NameSearcher locates an entry by its textual name.
type NameSearcher[T comparable] interface {
	// SearchName returns the matching entry, or the sentinel if no entry
	// has the given name.
	SearchName(name string, entries []Entry[T]) Entry[T]
}

// LinearSearch scans entries in array order and returns the first entry
// whose value equals the query. O(N), no ordering precondition. With
// duplicate values the earliest occurrence wins.
type LinearSearch[T comparable] struct{}

func (LinearSearch[T]) SearchValue(value T, entries []Entry[T]) Entry[T] {
	for _, entry := range entries {
		if entry.Value == value {
			return entry
		}
	}

	return Sentinel[T]()
}

// SortedSearch binary-searches entries by value. O(log N).
//
// Precondition: entries are sorted ascending by value. The precondition is
// not validated; an unsorted slice yields a possibly wrong (but memory-safe)
// result. With duplicate values the result is unspecified.
type SortedSearch[T cmp.Ordered] struct{}

func (SortedSearch[T]) SearchValue(value T, entries []Entry[T]) Entry[T] {
	lo, hi := 0, len(entries)
	for lo < hi {
		mid := lo + (hi-lo)/2

		switch {
		case entries[mid].Value == value:
			return entries[mid]
		case entries[mid].Value < value:
			lo = mid + 1
		default:
			hi = mid
		}
	}

	return Sentinel[T]()
}

// CaseSensitiveSearch scans entries in array order and returns the first
// entry whose name is byte-for-byte equal to the query. O(N).
type CaseSensitiveSearch[T comparable] struct{}

func (CaseSensitiveSearch[T]) SearchName(name string, entries []Entry[T]) Entry[T] {
	for _, entry := range entries {
		if entry.Name == name {
			return entry
		}
	}

	return Sentinel[T]()
}

// CaseInsensitiveSearch scans entries in array order and returns the first
// entry whose name matches the query under a locale-independent ASCII case
// fold. Names match iff they have equal length and every byte pair is equal
// after folding. O(N).
type CaseInsensitiveSearch[T comparable] struct{}

func (CaseInsensitiveSearch[T]) SearchName(name string, entries []Entry[T]) Entry[T] {
	for _, entry := range entries {
		if foldEqual(entry.Name, name) {
			return entry
		}
	}

	return Sentinel[T]()
}

// foldEqual compares two strings byte-wise under ASCII case folding.
// Deliberately not strings.EqualFold: no Unicode folding, no locale.
func foldEqual(a, b string) bool {
	if len(a) != len(b) {
		return false
	}

	for i := 0; i < len(a); i++ {
		if foldByte(a[i]) != foldByte(b[i]) {
			return false
		}
	}

	return true
}

func foldByte(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + ('a' - 'A')
	}

	return c
}
