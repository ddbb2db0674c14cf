// Package core provides the value and type model shared by every other
// package in this module.
//
// A Value is a tagged scalar: exactly one of INTEGER, TEXT, BOOLEAN, REAL,
// DATE, or NULL. A Column describes one field of a table (its declared
// Type plus independent flags: primary key, auto-increment, unique,
// not-null, default). A Schema is an ordered list of Columns plus the
// bookkeeping a table needs: the primary key name and the unique
// column set.
//
// # Coercion
//
//	v, err := core.Coerce(core.Integer, core.NewText("42"))
//	// v == core.NewInteger(42)
//
// Coerce implements the write-path type validation rules: a value that
// cannot be coerced into a column's declared Type produces an error the
// caller turns into a CONSTRAINT_VIOLATION / TYPE_MISMATCH.
package core
