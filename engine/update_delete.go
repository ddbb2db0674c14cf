package engine

import (
	"litesql/core"
	"litesql/sql"
)

// execUpdate implements UPDATE: build the predicate from
// WHERE and forward to table.Update, surfacing constraint violations
// verbatim.
func (s *Session) execUpdate(st *sql.UpdateStatement) Result {
	cat := s.catalog()
	tbl, ok := cat[st.Table]
	if !ok {
		return errorResult(&core.TableNotFoundError{Table: st.Table}, 0)
	}

	affected, err := tbl.Update(st.Set, predicateFromWhere(st.Where))
	if err != nil {
		return errorResult(err.(core.QueryError), 0)
	}
	return Result{Success: true, Kind: UpdateResult, RowsAffected: affected}
}

// execDelete implements DELETE: build the predicate from
// WHERE and forward to table.Delete.
func (s *Session) execDelete(st *sql.DeleteStatement) Result {
	cat := s.catalog()
	tbl, ok := cat[st.Table]
	if !ok {
		return errorResult(&core.TableNotFoundError{Table: st.Table}, 0)
	}

	affected, err := tbl.Delete(predicateFromWhere(st.Where))
	if err != nil {
		return errorResult(err.(core.QueryError), 0)
	}
	return Result{Success: true, Kind: DeleteResult, RowsAffected: affected}
}
