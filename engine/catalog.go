package engine

import "litesql/table"

// Catalog is the session's name→table mapping.
type Catalog map[string]*table.Table

// Clone returns a deep, independent copy: every table (and therefore
// every row and index) is cloned so mutations to the copy never surface
// through the original.
func (c Catalog) Clone() Catalog {
	clone := make(Catalog, len(c))
	for name, tbl := range c {
		clone[name] = tbl.Clone()
	}
	return clone
}
