package engine

import (
	"sort"

	"litesql/core"
	"litesql/sql"
)

// execSelect implements SELECT pipeline: fetch, filter,
// join, project, sort, then limit.
func (s *Session) execSelect(st *sql.SelectStatement) Result {
	cat := s.catalog()
	tbl, ok := cat[st.Table]
	if !ok {
		return errorResult(&core.TableNotFoundError{Table: st.Table}, 0)
	}

	rows := tbl.Rows()

	if st.Where != nil {
		filtered := make([]core.Row, 0, len(rows))
		predicate := predicateFromWhere(st.Where)
		for _, row := range rows {
			if predicate(row) {
				filtered = append(filtered, row)
			}
		}
		rows = filtered
	}

	for i, join := range st.Joins {
		rightTbl, ok := cat[join.Table]
		if !ok {
			return errorResult(&core.TableNotFoundError{Table: join.Table}, 0)
		}
		rows = joinStep(rows, st.Table, i == 0, join, rightTbl)
	}

	if st.Columns != nil {
		projected := make([]core.Row, len(rows))
		for i, row := range rows {
			out := make(core.Row, len(st.Columns))
			for _, col := range st.Columns {
				if v, ok := row[col]; ok {
					out[col] = v
				} else {
					out[col] = core.Null
				}
			}
			projected[i] = out
		}
		rows = projected
	}

	if len(st.OrderBy) > 0 {
		sortRows(rows, st.OrderBy)
	}

	if st.Limit != nil {
		n := *st.Limit
		if n < 0 {
			n = 0
		}
		if n < len(rows) {
			rows = rows[:n]
		}
	}

	return Result{Success: true, Kind: SelectResult, Rows: rows, RowCount: len(rows)}
}

// execShowTables implements SHOW TABLES.
func (s *Session) execShowTables() Result {
	cat := s.catalog()
	names := make([]string, 0, len(cat))
	for name := range cat {
		names = append(names, name)
	}
	sort.Strings(names)
	return Result{Success: true, Kind: ShowTablesResult, TableNames: names}
}

// execDescribe implements DESCRIBE.
func (s *Session) execDescribe(st *sql.DescribeStatement) Result {
	cat := s.catalog()
	tbl, ok := cat[st.Table]
	if !ok {
		return errorResult(&core.TableNotFoundError{Table: st.Table}, 0)
	}
	return Result{Success: true, Kind: DescribeResult, Schema: tbl.Schema, Table: st.Table}
}
