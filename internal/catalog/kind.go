package catalog

//go:generate go tool stringer -type=SearchKind,MatchKind,UnknownKind -output=kind_string.go

// SearchKind identifies a value-search strategy.
type SearchKind int

const (
	_ SearchKind = iota // skip zero value, use it as a default (invalid) value

	SearchLinear
	SearchSorted
)

// MatchKind identifies a name-comparison strategy.
type MatchKind int

const (
	_ MatchKind = iota // skip zero value, use it as a default (invalid) value

	MatchExact
	MatchFold
)

// UnknownKind identifies a miss-handling policy.
type UnknownKind int

const (
	_ UnknownKind = iota // skip zero value, use it as a default (invalid) value

	UnknownSentinel
	UnknownFallback
)

// SearchKindOf parses the YAML spelling of a search kind.
// Returns the zero (invalid) kind for unrecognized input.
func SearchKindOf(s string) SearchKind {
	switch s {
	case "linear":
		return SearchLinear
	case "sorted":
		return SearchSorted
	default:
		return 0
	}
}

// MatchKindOf parses the YAML spelling of a match kind.
func MatchKindOf(s string) MatchKind {
	switch s {
	case "exact":
		return MatchExact
	case "fold":
		return MatchFold
	default:
		return 0
	}
}

// UnknownKindOf parses the YAML spelling of an unknown-policy kind.
func UnknownKindOf(s string) UnknownKind {
	switch s {
	case "sentinel":
		return UnknownSentinel
	case "fallback":
		return UnknownFallback
	default:
		return 0
	}
}
