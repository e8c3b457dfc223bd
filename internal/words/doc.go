// Package words provides the per-language word tables used to speak a
// fraction of an hour.
//
// The tables live in tables.yaml, which is embedded into the binary and
// decoded once on first use. They are never mutated afterwards, so a *Table
// may be shared freely. Adding a language means adding a top-level key to
// tables.yaml with the same fields as the existing entries.
package words
