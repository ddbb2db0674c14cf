package engine

import (
	"litesql/core"
	"litesql/sql"
)

// execInsert implements INSERT: resolve the column list
// (explicit or every declared column in order), check each value row's
// arity, map positional values to column names, and insert row by row,
// short-circuiting on the first failure.
func (s *Session) execInsert(st *sql.InsertStatement) Result {
	cat := s.catalog()
	tbl, ok := cat[st.Table]
	if !ok {
		return errorResult(&core.TableNotFoundError{Table: st.Table}, 0)
	}

	columns := st.Columns
	if len(columns) == 0 {
		columns = tbl.Schema.ColumnNames()
	}

	var lastInsertID *int64
	affected := 0
	for _, values := range st.Rows {
		if len(values) != len(columns) {
			return errorResult(&core.ExecutionError{Message: "value row arity does not match column list"}, 0)
		}
		data := make(map[string]core.Value, len(columns))
		for i, col := range columns {
			data[col] = values[i]
		}
		_, id, err := tbl.Insert(data)
		if err != nil {
			return errorResult(err.(core.QueryError), 0)
		}
		if id != nil {
			lastInsertID = id
		}
		affected++
	}

	return Result{Success: true, Kind: InsertResult, RowsAffected: affected, LastInsertID: lastInsertID}
}
