// Package table implements the per-table row store: a
// schema, an ordered row vector, one index per primary-key or unique
// column, and an auto-increment counter.
//
// Table owns its indexes; every mutation keeps the invariants that rows
// always match the current schema, unique indexes never map a
// normalized key to more than one row, and the auto-increment counter
// only ever grows.
package table
