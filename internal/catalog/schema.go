package catalog

// CatalogFile represents the root of a YAML enum catalog file.
// This is the authoritative, human-reviewed enum configuration.
type CatalogFile struct {
	// Version of the catalog schema (for future compatibility).
	Version string `yaml:"version,omitempty"`

	// Enums is the list of enum definitions.
	Enums []EnumDef `yaml:"enums"`
}

// EnumDef defines one enum table: its entries and its strategy selection.
type EnumDef struct {
	// Name identifies the enum within the catalog and names the generated
	// table.
	Name string `yaml:"name"`

	// Search selects the value-search strategy: "linear" (default) or
	// "sorted". Sorted requires entries in ascending value order.
	Search string `yaml:"search,omitempty"`

	// Match selects the name-comparison strategy: "exact" (default) or
	// "fold" for ASCII case-insensitive matching.
	Match string `yaml:"match,omitempty"`

	// Unknown selects the miss policy: "sentinel" (default) or "fallback",
	// which surfaces the Fallback entry on every miss.
	Unknown string `yaml:"unknown,omitempty"`

	// Fallback is the entry surfaced on misses under "fallback" mode.
	Fallback *EntryDef `yaml:"fallback,omitempty"`

	// Entries is the fixed member list, in declaration order.
	Entries []EntryDef `yaml:"entries"`
}

// EntryDef is one (value, name) member of an enum definition.
// Values are uint64, the default underlying type for catalog enums.
type EntryDef struct {
	Value uint64 `yaml:"value"`
	Name  string `yaml:"name"`
}
