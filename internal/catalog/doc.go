// Package catalog provides YAML schema definitions, parsing, validation,
// and table construction for declaratively defined enum tables.
//
// A catalog file names one or more enums, each with its entry list and its
// strategy selection (value search, name matching, unknown handling):
//
//	version: "1"
//	enums:
//	  - name: color
//	    search: linear      # or: sorted (entries must ascend by value)
//	    match: exact        # or: fold (ASCII case-insensitive)
//	    unknown: sentinel   # or: fallback (requires a fallback entry)
//	    entries:
//	      - {value: 1, name: Red}
//	      - {value: 2, name: Green}
//	      - {value: 3, name: Blue}
//
// Validation is strict where the runtime table deliberately is not: the
// core lookup engine documents duplicate values and unsorted input as
// caller obligations, while the catalog rejects both up front so generated
// tables can never violate them.
package catalog
