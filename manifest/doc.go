// Package manifest loads declarative item manifests and turns them into
// sorters.
//
// A manifest is a named list of entries. Each entry carries the same
// declaration an Add call takes: a group, the groups it must come before or
// after, and an optional explicit sort rank.
//
// Supported encodings, chosen by file extension in Load:
//
//   - YAML (.yaml, .yml)
//   - TOML (.toml)
//   - JSON (.json)
//
// Decoding is strict in every format: unknown keys are rejected so that a
// misspelled "befor" does not silently drop a constraint.
//
// Build registers the entries of one manifest in file order; Combine builds
// one sorter per manifest and merges them in argument order, so entries of
// later manifests follow earlier ones on ties.
package manifest
