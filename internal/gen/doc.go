// Package gen provides deterministic Go code generation for enum tables.
//
// Generation approach uses text/template + go/format for readable,
// allocation-light Go code.
//
// For each catalog enum it emits one source file containing:
//   - A typed constant per entry
//   - The backing entry array, in declaration order
//   - A package-level table var bound to the declared strategies
package gen
