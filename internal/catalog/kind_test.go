package catalog

import (
	"testing"
)

func TestKindOf(t *testing.T) {
	if got := SearchKindOf("linear"); got != SearchLinear {
		t.Errorf("SearchKindOf(linear) = %v, want SearchLinear", got)
	}

	if got := SearchKindOf("sorted"); got != SearchSorted {
		t.Errorf("SearchKindOf(sorted) = %v, want SearchSorted", got)
	}

	if got := MatchKindOf("exact"); got != MatchExact {
		t.Errorf("MatchKindOf(exact) = %v, want MatchExact", got)
	}

	if got := MatchKindOf("fold"); got != MatchFold {
		t.Errorf("MatchKindOf(fold) = %v, want MatchFold", got)
	}

	if got := UnknownKindOf("sentinel"); got != UnknownSentinel {
		t.Errorf("UnknownKindOf(sentinel) = %v, want UnknownSentinel", got)
	}

	if got := UnknownKindOf("fallback"); got != UnknownFallback {
		t.Errorf("UnknownKindOf(fallback) = %v, want UnknownFallback", got)
	}

	// Unrecognized and empty spellings yield the invalid zero kind.
	for _, s := range []string{"", "Linear", "binary", "case-sensitive"} {
		if got := SearchKindOf(s); got != 0 {
			t.Errorf("SearchKindOf(%q) = %v, want 0", s, got)
		}

		if got := MatchKindOf(s); got != 0 {
			t.Errorf("MatchKindOf(%q) = %v, want 0", s, got)
		}

		if got := UnknownKindOf(s); got != 0 {
			t.Errorf("UnknownKindOf(%q) = %v, want 0", s, got)
		}
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		got      string
		expected string
	}{
		{SearchLinear.String(), "SearchLinear"},
		{SearchSorted.String(), "SearchSorted"},
		{MatchExact.String(), "MatchExact"},
		{MatchFold.String(), "MatchFold"},
		{UnknownSentinel.String(), "UnknownSentinel"},
		{UnknownFallback.String(), "UnknownFallback"},
		{SearchKind(0).String(), "SearchKind(0)"},
		{MatchKind(99).String(), "MatchKind(99)"},
	}

	for _, tt := range tests {
		if tt.got != tt.expected {
			t.Errorf("String() = %q, want %q", tt.got, tt.expected)
		}
	}
}
