package engine

import (
	"litesql/core"
	"litesql/sql"
	"litesql/table"
)

// execCreateTable implements CREATE TABLE: validate the
// column list, build the schema (PRIMARY KEY implies UNIQUE and NOT
// NULL), then register the empty table.
func (s *Session) execCreateTable(st *sql.CreateTableStatement) Result {
	cat := s.catalog()
	if _, exists := cat[st.Table]; exists {
		if st.IfNotExists {
			return Result{Success: true, Kind: CreateTableResult, Table: st.Table}
		}
		return errorResult(&core.TableAlreadyExistsError{Table: st.Table}, 0)
	}

	columns := make([]core.Column, len(st.Columns))
	for i, def := range st.Columns {
		columns[i] = core.Column{
			Name: def.Name,
			Type: def.Type,
			PrimaryKey: def.PrimaryKey,
			AutoIncrement: def.AutoIncrement,
			Unique: def.Unique,
			NotNull: def.NotNull,
		}
	}
	schema, err := core.NewSchema(st.Table, columns)
	if err != nil {
		return errorResult(&core.ExecutionError{Message: err.Error()}, 0)
	}

	cat[st.Table] = table.New(schema)
	return Result{Success: true, Kind: CreateTableResult, Table: st.Table}
}

// execDropTable implements DROP TABLE.
func (s *Session) execDropTable(st *sql.DropTableStatement) Result {
	cat := s.catalog()
	if _, exists := cat[st.Table]; !exists {
		if st.IfExists {
			return Result{Success: true, Kind: DropTableResult, Table: st.Table}
		}
		return errorResult(&core.TableNotFoundError{Table: st.Table}, 0)
	}
	delete(cat, st.Table)
	return Result{Success: true, Kind: DropTableResult, Table: st.Table}
}

// execAlterTable implements ALTER TABLE: add/drop/rename a column, or
// replace a column's definition outright. Values already stored in
// existing rows are not re-validated against a MODIFY COLUMN change.
func (s *Session) execAlterTable(st *sql.AlterTableStatement) Result {
	cat := s.catalog()
	tbl, ok := cat[st.Table]
	if !ok {
		return errorResult(&core.TableNotFoundError{Table: st.Table}, 0)
	}

	switch st.Action {
	case sql.AddColumn:
		return s.alterAddColumn(tbl, st)
	case sql.DropColumn:
		return s.alterDropColumn(tbl, st)
	case sql.RenameColumn:
		return s.alterRenameColumn(tbl, st)
	case sql.ModifyColumn:
		return s.alterModifyColumn(tbl, st)
	default:
		return errorResult(&core.ExecutionError{Message: "unrecognized ALTER TABLE action"}, 0)
	}
}

func (s *Session) alterAddColumn(tbl *table.Table, st *sql.AlterTableStatement) Result {
	if _, exists := tbl.Schema.Column(st.ColumnDef.Name); exists {
		return errorResult(&core.ExecutionError{Message: "column \"" + st.ColumnDef.Name + "\" already exists"}, 0)
	}
	newSchema, err := tbl.Schema.WithColumn(core.Column{
		Name: st.ColumnDef.Name,
		Type: st.ColumnDef.Type,
		PrimaryKey: st.ColumnDef.PrimaryKey,
		AutoIncrement: st.ColumnDef.AutoIncrement,
		Unique: st.ColumnDef.Unique,
		NotNull: st.ColumnDef.NotNull,
	})
	if err != nil {
		return errorResult(&core.ExecutionError{Message: err.Error()}, 0)
	}
	rows := tbl.Rows()
	for i := range rows {
		rows[i][st.ColumnDef.Name] = core.Null
	}
	tbl.AlterSchema(newSchema, rows)
	return Result{Success: true, Kind: OKResult, Table: st.Table}
}

func (s *Session) alterDropColumn(tbl *table.Table, st *sql.AlterTableStatement) Result {
	if _, exists := tbl.Schema.Column(st.Column); !exists {
		return errorResult(&core.ColumnNotFoundError{Column: st.Column}, 0)
	}
	newSchema, err := tbl.Schema.WithoutColumn(st.Column)
	if err != nil {
		return errorResult(&core.ExecutionError{Message: err.Error()}, 0)
	}
	rows := tbl.Rows()
	for i := range rows {
		delete(rows[i], st.Column)
	}
	tbl.AlterSchema(newSchema, rows)
	return Result{Success: true, Kind: OKResult, Table: st.Table}
}

func (s *Session) alterRenameColumn(tbl *table.Table, st *sql.AlterTableStatement) Result {
	if _, exists := tbl.Schema.Column(st.Column); !exists {
		return errorResult(&core.ColumnNotFoundError{Column: st.Column}, 0)
	}
	if _, exists := tbl.Schema.Column(st.NewColumn); exists {
		return errorResult(&core.ExecutionError{Message: "column \"" + st.NewColumn + "\" already exists"}, 0)
	}
	newSchema, err := tbl.Schema.WithRenamedColumn(st.Column, st.NewColumn)
	if err != nil {
		return errorResult(&core.ExecutionError{Message: err.Error()}, 0)
	}
	rows := tbl.Rows()
	for i, row := range rows {
		row[st.NewColumn] = row[st.Column]
		delete(row, st.Column)
		rows[i] = row
	}
	tbl.AlterSchema(newSchema, rows)
	return Result{Success: true, Kind: OKResult, Table: st.Table}
}

func (s *Session) alterModifyColumn(tbl *table.Table, st *sql.AlterTableStatement) Result {
	if _, exists := tbl.Schema.Column(st.Column); !exists {
		return errorResult(&core.ColumnNotFoundError{Column: st.Column}, 0)
	}
	newSchema, err := tbl.Schema.WithModifiedColumn(st.Column, core.Column{
		Name: st.ColumnDef.Name,
		Type: st.ColumnDef.Type,
		PrimaryKey: st.ColumnDef.PrimaryKey,
		AutoIncrement: st.ColumnDef.AutoIncrement,
		Unique: st.ColumnDef.Unique,
		NotNull: st.ColumnDef.NotNull,
	})
	if err != nil {
		return errorResult(&core.ExecutionError{Message: err.Error()}, 0)
	}
	// Values in existing rows are not re-validated against the new
	// definition.
	tbl.AlterSchema(newSchema, tbl.Rows())
	return Result{Success: true, Kind: OKResult, Table: st.Table}
}
