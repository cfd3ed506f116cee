// Package enum provides a bidirectional lookup facility over fixed
// enumeration tables: given an array of (value, name) pairs, a Table
// resolves a raw value to its Entry or a symbolic name back to its Entry.
//
// The search strategy by value (linear or sorted), the comparison strategy
// by name (exact or ASCII case-folded) and the not-found policy are
// independent capabilities bound once at Table construction. Resolution
// never fails and never allocates: a miss is represented as data (the
// sentinel Entry), not as an error.
//
// Tables borrow the caller's entry slice and never mutate it, so a Table
// and its entries are safe for concurrent readers without locking.
package enum
