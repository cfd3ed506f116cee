package catalog

import (
	"enumtab/enum"
)

// Build constructs the runtime table for an enum definition, normally one
// that already passed Validate. The returned slice owns the entries and
// backs the table; callers must keep it alive and must not mutate it.
//
// Unrecognized kind spellings fall back to the default strategy set, the
// same permissive stance the runtime takes; Validate is the strict layer.
func Build(def EnumDef) (enum.Table[uint64], []enum.Entry[uint64]) {
	entries := make([]enum.Entry[uint64], len(def.Entries))
	for i, e := range def.Entries {
		entries[i] = enum.Entry[uint64]{Value: e.Value, Name: e.Name}
	}

	var values enum.ValueSearcher[uint64] = enum.LinearSearch[uint64]{}
	if SearchKindOf(def.Search) == SearchSorted {
		values = enum.SortedSearch[uint64]{}
	}

	var names enum.NameSearcher[uint64] = enum.CaseSensitiveSearch[uint64]{}
	if MatchKindOf(def.Match) == MatchFold {
		names = enum.CaseInsensitiveSearch[uint64]{}
	}

	var unknown enum.UnknownHandler[uint64] = enum.ReturnSentinel[uint64]{}
	if UnknownKindOf(def.Unknown) == UnknownFallback && def.Fallback != nil {
		unknown = enum.Fallback[uint64]{
			Entry: enum.Entry[uint64]{Value: def.Fallback.Value, Name: def.Fallback.Name},
		}
	}

	return enum.New(entries, values, names, unknown), entries
}
