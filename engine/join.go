package engine

import (
	"strings"

	"litesql/core"
	"litesql/sql"
	"litesql/table"
)

// joinStep implements one JOIN clause: nested-loop equality on the two
// named columns, prefixing every left column as "<left_table>.<name>"
// and every right column as "<right_table>.<name>". Unmatched sides of
// LEFT/RIGHT joins emit a row whose other side's columns are all NULL,
// keyed the same as a sample row from that side; if that side had no
// rows at all, those columns are simply absent.
func joinStep(leftRows []core.Row, leftLabel string, prefixLeft bool, join sql.Join, rightTbl *table.Table) []core.Row {
	rightRows := rightTbl.Rows()
	rightLabel := join.Table

	var out []core.Row

	switch join.Type {
	case sql.RightJoin:
		leftNull := nullColumnsForSide(leftRows, leftLabel, prefixLeft)
		for _, rrow := range rightRows {
			rightVal := rrow[join.Right]
			rightProj := prefixRow(rrow, rightLabel, true)
			matched := false
			for _, lrow := range leftRows {
				if core.StrictEqual(rawLookup(lrow, join.Left), rightVal) {
					matched = true
					out = append(out, mergeRows(prefixRow(lrow, leftLabel, prefixLeft), rightProj))
				}
			}
			if !matched {
				out = append(out, mergeRows(leftNull, rightProj))
			}
		}
	default: // InnerJoin, LeftJoin
		rightNull := nullColumnsForSide(rightRows, rightLabel, true)
		for _, lrow := range leftRows {
			leftVal := rawLookup(lrow, join.Left)
			leftProj := prefixRow(lrow, leftLabel, prefixLeft)
			matched := false
			for _, rrow := range rightRows {
				if core.StrictEqual(leftVal, rrow[join.Right]) {
					matched = true
					out = append(out, mergeRows(leftProj, prefixRow(rrow, rightLabel, true)))
				}
			}
			if !matched && join.Type == sql.LeftJoin {
				out = append(out, mergeRows(leftProj, rightNull))
			}
		}
	}
	return out
}

// rawLookup finds key's value in row, first by exact match and then by
// matching a "<table>.<key>" suffix (needed once a prior join step has
// already prefixed the row's columns).
func rawLookup(row core.Row, key string) core.Value {
	if v, ok := row[key]; ok {
		return v
	}
	for k, v := range row {
		if strings.HasSuffix(k, "."+key) {
			return v
		}
	}
	return core.Null
}

func prefixRow(row core.Row, label string, apply bool) core.Row {
	if !apply {
		return row.Clone()
	}
	out := make(core.Row, len(row))
	for k, v := range row {
		out[label+"."+k] = v
	}
	return out
}

// nullColumnsForSide builds the all-NULL placeholder row for an unmatched
// outer-join partner, keyed the same as a sample row from rows. If rows
// is empty, the result is empty too.
func nullColumnsForSide(rows []core.Row, label string, prefix bool) core.Row {
	if len(rows) == 0 {
		return core.Row{}
	}
	sample := rows[0]
	out := make(core.Row, len(sample))
	for k := range sample {
		key := k
		if prefix {
			key = label + "." + k
		}
		out[key] = core.Null
	}
	return out
}

func mergeRows(a, b core.Row) core.Row {
	out := make(core.Row, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}
