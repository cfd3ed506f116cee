package catalog

import (
	"fmt"

	"enumtab/internal/common"
	"enumtab/internal/diagnostic"
)

// Validate validates a catalog definition. This is a structural validation
// step only; it checks the obligations the runtime tables document but do
// not enforce (unique values, sortedness for binary search) plus catalog
// level consistency (kind spellings, fallback configuration).
func Validate(cf *CatalogFile) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if cf == nil {
		res.AddError("catalog_is_nil", "catalog file is nil", "", "")
		return res
	}

	if common.IsEmpty(cf.Enums) {
		res.AddWarning("no_enums", "catalog defines no enums", "", "")
		return res
	}

	seenEnums := map[string]struct{}{}

	for i := range cf.Enums {
		e := &cf.Enums[i]
		if e.Name == "" {
			res.AddError("empty_enum_name", fmt.Sprintf("enum #%d has no name", i), "", "")
			continue
		}

		if _, ok := seenEnums[e.Name]; ok {
			res.AddError("duplicate_enum", fmt.Sprintf("duplicate enum %q", e.Name), e.Name, "")
			continue
		}

		seenEnums[e.Name] = struct{}{}

		validateEnum(res, e)
	}

	return res
}

// validateEnum validates a single enum definition.
func validateEnum(res *diagnostic.Diagnostics, e *EnumDef) {
	search := SearchKindOf(e.Search)
	if search == 0 {
		res.AddError("invalid_search_kind", fmt.Sprintf("unrecognized search strategy %q", e.Search), e.Name, "")
	}

	match := MatchKindOf(e.Match)
	if match == 0 {
		res.AddError("invalid_match_kind", fmt.Sprintf("unrecognized match strategy %q", e.Match), e.Name, "")
	}

	unknown := UnknownKindOf(e.Unknown)
	if unknown == 0 {
		res.AddError("invalid_unknown_kind", fmt.Sprintf("unrecognized unknown policy %q", e.Unknown), e.Name, "")
	}

	switch unknown {
	case UnknownFallback:
		if e.Fallback == nil {
			res.AddError("missing_fallback", "unknown policy is fallback but no fallback entry is defined", e.Name, "")
		}
	case UnknownSentinel:
		if e.Fallback != nil {
			res.AddWarning("fallback_ignored", "fallback entry is ignored under the sentinel policy", e.Name, e.Fallback.Name)
		}
	}

	if common.IsEmpty(e.Entries) {
		res.AddError("no_entries", "enum has no entries", e.Name, "")
		return
	}

	validateEntries(res, e, match)

	if search == SearchSorted {
		validateSorted(res, e)
	}
}

// validateEntries checks per-entry obligations: non-empty names, no
// sentinel-shaped entries, unique values, unique names (case-folded when
// the enum matches case-insensitively).
func validateEntries(res *diagnostic.Diagnostics, e *EnumDef, match MatchKind) {
	seenValues := map[uint64]string{}
	seenNames := map[string]string{}

	for _, entry := range e.Entries {
		if entry.Name == "" && entry.Value == 0 {
			res.AddError("sentinel_entry", "entry with zero value and empty name is indistinguishable from the not-found sentinel", e.Name, "")
			continue
		}

		if entry.Name == "" {
			res.AddError("empty_entry_name", fmt.Sprintf("entry with value %d has no name", entry.Value), e.Name, "")
			continue
		}

		if prev, ok := seenValues[entry.Value]; ok {
			res.AddError("duplicate_value",
				fmt.Sprintf("value %d is shared by %q and %q", entry.Value, prev, entry.Name), e.Name, entry.Name)
		} else {
			seenValues[entry.Value] = entry.Name
		}

		key := entry.Name
		if match == MatchFold {
			key = foldASCII(key)
		}

		if prev, ok := seenNames[key]; ok {
			res.AddError("duplicate_name",
				fmt.Sprintf("name %q collides with %q", entry.Name, prev), e.Name, entry.Name)
		} else {
			seenNames[key] = entry.Name
		}
	}
}

// foldASCII lower-cases ASCII letters only, matching the runtime's
// locale-independent fold.
func foldASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if 'A' <= c && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}

	return string(b)
}

// validateSorted checks the ascending-order precondition of the sorted
// search strategy.
func validateSorted(res *diagnostic.Diagnostics, e *EnumDef) {
	for i := 1; i < len(e.Entries); i++ {
		if e.Entries[i-1].Value >= e.Entries[i].Value {
			res.AddError("entries_not_sorted",
				fmt.Sprintf("sorted search requires ascending values, but %d precedes %d",
					e.Entries[i-1].Value, e.Entries[i].Value),
				e.Name, e.Entries[i].Name)

			return
		}
	}
}
