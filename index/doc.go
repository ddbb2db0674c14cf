// Package index implements the secondary index: a
// value→row-position multi-map bound to one column, in either unique or
// non-unique mode.
//
// Entries live in a github.com/google/btree ordered by normalized key, so
// equality lookups are tree lookups. Range scans (<, >, <=, >=) and LIKE
// walk every entry: range compares numerically coerced keys, whose order
// need not match the tree's order for TEXT keys, and LIKE is not an order
// predicate. Both return positions sorted ascending.
//
//	idx := index.New("email", index.Unique)
//	idx.Insert(core.NewText("a@x"), 0)
//	positions := idx.Lookup(core.NewText("A@X")) // case-insensitive key match
package index
