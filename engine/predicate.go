package engine

import (
	"litesql/core"
	"litesql/sql"
)

// predicateFromWhere builds the row predicate table.Update/table.Delete/
// SELECT's row filter expect. A nil clause (no WHERE at all) is
// always-true. AND and OR are applied left-associatively with equal
// precedence, matching the parser's flattening.
func predicateFromWhere(where *sql.WhereClause) func(core.Row) bool {
	if where == nil {
		return func(core.Row) bool { return true }
	}
	return func(row core.Row) bool {
		result := evalCondition(row, where.Conditions[0])
		for i, op := range where.LogicalOps {
			next := evalCondition(row, where.Conditions[i+1])
			switch op {
			case sql.And:
				result = result && next
			case sql.Or:
				result = result || next
			}
		}
		return result
	}
}

func evalCondition(row core.Row, cond sql.WhereCondition) bool {
	left, ok := row[cond.Column]
	if !ok {
		left = core.Null
	}
	right := cond.Value

	switch cond.Op {
	case sql.OpEq:
		return core.Equal(left, right)
	case sql.OpNeq:
		return core.NotEqual(left, right)
	case sql.OpGt:
		return core.Greater(left, right)
	case sql.OpLt:
		return core.Less(left, right)
	case sql.OpGte:
		return core.GreaterOrEqual(left, right)
	case sql.OpLte:
		return core.LessOrEqual(left, right)
	case sql.OpLike:
		return core.Like(left, right)
	default:
		return false
	}
}
