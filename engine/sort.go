package engine

import (
	"sort"
	"strings"

	"litesql/core"
	"litesql/sql"
)

// sortRows implements ORDER BY: NULLs sort last in both ASC and DESC;
// numeric pairs compare numerically; DATE pairs by epoch milliseconds;
// otherwise by string comparison of the string form. Direction negates
// the comparison only once both values are known non-NULL, so the NULL
// placement itself is never affected by Desc.
func sortRows(rows []core.Row, clauses []sql.OrderByClause) {
	sort.SliceStable(rows, func(i, j int) bool {
		for _, clause := range clauses {
			a := rows[i][clause.Column]
			b := rows[j][clause.Column]

			if a.IsNull() || b.IsNull() {
				cmp := nullOrder(a, b)
				if cmp == 0 {
					continue
				}
				return cmp < 0
			}

			cmp := compareForSort(a, b)
			if cmp == 0 {
				continue
			}
			if clause.Desc {
				cmp = -cmp
			}
			return cmp < 0
		}
		return false
	})
}

// nullOrder returns -1, 0, or 1 for a pair where at least one side is
// NULL. NULL always sorts after non-NULL, regardless of direction; two
// NULLs are equal.
func nullOrder(a, b core.Value) int {
	if a.IsNull() && b.IsNull() {
		return 0
	}
	if a.IsNull() {
		return 1
	}
	return -1
}

// compareForSort returns -1, 0, or 1 for a pair of non-NULL values.
func compareForSort(a, b core.Value) int {
	if a.Type() == core.Date && b.Type() == core.Date {
		return compareFloats(float64(a.Time().UTC().UnixMilli()), float64(b.Time().UTC().UnixMilli()))
	}
	if an, aok := core.ToNumber(a); aok {
		if bn, bok := core.ToNumber(b); bok {
			return compareFloats(an, bn)
		}
	}
	return strings.Compare(a.String(), b.String())
}

func compareFloats(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
