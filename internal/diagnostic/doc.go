// Package diagnostic provides structured errors, warnings, and notes for
// enum catalog validation.
//
// Key capabilities:
//   - Duplicate value/name reports with enum and entry coordinates
//   - Sorted-precondition violations for binary-searched tables
//   - Strategy/fallback configuration mismatches
package diagnostic
