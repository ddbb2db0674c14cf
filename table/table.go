package table

import (
	"litesql/core"
	"litesql/index"
)

// Table is a schema plus an ordered row vector, the indexes owned by its
// primary-key/unique columns, and an auto-increment counter.
type Table struct {
	Schema core.Schema
	rows []core.Row
	indexes map[string]*index.Index
	autoIncrement int64
}

// New creates an empty table for schema, with one unique index per
// primary-key/unique column and the auto-increment counter starting at 1.
func New(schema core.Schema) *Table {
	t := &Table{Schema: schema, autoIncrement: 1}
	t.rebuildIndexes()
	return t
}

func (t *Table) rebuildIndexes() {
	t.indexes = make(map[string]*index.Index, len(t.Schema.UniqueCols))
	for name := range t.Schema.UniqueCols {
		t.indexes[name] = index.New(name, index.Unique)
	}
}

// Rows returns every current row, in position order. The slice and its
// rows are independent copies; callers may keep or mutate the result
// freely.
func (t *Table) Rows() []core.Row {
	out := make([]core.Row, len(t.rows))
	for i, r := range t.rows {
		out[i] = r.Clone()
	}
	return out
}

// Len returns the number of live rows.
func (t *Table) Len() int { return len(t.rows) }

// AutoIncrementCounter returns the next value the auto-increment column
// (if any) will assign.
func (t *Table) AutoIncrementCounter() int64 { return t.autoIncrement }

// Restore rebuilds a table from a schema, a row vector, and the
// auto-increment counter value it had when it was captured — the
// inverse of Rows()/AutoIncrementCounter(), used to reload a table from
// a snapshot.
func Restore(schema core.Schema, rows []core.Row, autoIncrement int64) *Table {
	t := &Table{Schema: schema, autoIncrement: autoIncrement}
	cloned := make([]core.Row, len(rows))
	for i, r := range rows {
		cloned[i] = r.Clone()
	}
	t.rows = cloned
	t.rebuildIndexesFromRows()
	return t
}

// Index returns the index bound to column, if one exists (only
// primary-key/unique columns are indexed).
func (t *Table) Index(column string) (*index.Index, bool) {
	idx, ok := t.indexes[column]
	return idx, ok
}

// Insert resolves column defaults and auto-increment, type-validates
// every value, checks every primary-key/unique column for duplicates
// (rolling back any partial index insertion on failure), and only then
// appends the row. lastInsertID is non-nil iff the table has an
// auto-increment primary key.
func (t *Table) Insert(data map[string]core.Value) (position int, lastInsertID *int64, err error) {
	row := make(core.Row, len(t.Schema.Columns))

	for _, col := range t.Schema.Columns {
		var value core.Value

		switch {
		case col.AutoIncrement && col.PrimaryKey:
			id := t.autoIncrement
			t.autoIncrement++
			value = core.NewInteger(id)
			lastInsertID = &id
		case !hasValue(data, col.Name) && col.Default != nil:
			value = *col.Default
		default:
			v, ok := data[col.Name]
			if !ok {
				value = core.Null
			} else {
				value = v
			}
		}

		if value.IsNull() {
			if col.NotNull {
				return 0, nil, &core.ConstraintViolation{
					SubKind: core.NotNullViolation,
					Column: col.Name,
					Value: "NULL",
					Message: "column is NOT NULL",
				}
			}
			row[col.Name] = core.Null
			continue
		}

		coerced, cerr := core.Coerce(col.Type, value)
		if cerr != nil {
			return 0, nil, core.NewTypeMismatch(col.Name, value)
		}
		row[col.Name] = coerced
	}

	position = len(t.rows)
	inserted := make([]string, 0, len(t.indexes))
	for name, idx := range t.indexes {
		if err := idx.Insert(row[name], position); err != nil {
			for _, done := range inserted {
				t.indexes[done].Remove(row[done], position)
			}
			subKind := core.UniqueViolation
			if name == t.Schema.PrimaryKey {
				subKind = core.PrimaryKeyViolation
			}
			return 0, nil, &core.ConstraintViolation{
				SubKind: subKind,
				Column: name,
				Value: row[name].String(),
				Message: "duplicate value for unique column",
			}
		}
		inserted = append(inserted, name)
	}

	t.rows = append(t.rows, row)
	return position, lastInsertID, nil
}

func hasValue(data map[string]core.Value, name string) bool {
	_, ok := data[name]
	return ok
}

// Update rejects unknown target columns and type mismatches up front,
// then mutates rows matching predicate one at a time. The first row
// whose update would duplicate a unique index entry aborts the
// statement; rows updated before it keep their new values — this is a
// best-effort, first-error semantics, not an all-or-nothing rollback.
func (t *Table) Update(updates map[string]core.Value, predicate func(core.Row) bool) (affected int, err error) {
	coerced := make(map[string]core.Value, len(updates))
	for name, value := range updates {
		col, ok := t.Schema.Column(name)
		if !ok {
			return 0, &core.ColumnNotFoundError{Column: name, Message: "UPDATE target column"}
		}
		if value.IsNull() {
			if col.NotNull {
				return 0, &core.ConstraintViolation{
					SubKind: core.NotNullViolation,
					Column: name,
					Value: "NULL",
					Message: "column is NOT NULL",
				}
			}
			coerced[name] = core.Null
			continue
		}
		v, cerr := core.Coerce(col.Type, value)
		if cerr != nil {
			return 0, core.NewTypeMismatch(name, value)
		}
		coerced[name] = v
	}

	for pos, row := range t.rows {
		if !predicate(row) {
			continue
		}

		updatedIndexed := make([]struct {
			name string
			old core.Value
		}, 0, len(coerced))

		failed := false
		var failErr error
		for name, newValue := range coerced {
			idx, isIndexed := t.indexes[name]
			if !isIndexed {
				continue
			}
			oldValue := row[name]
			idx.Remove(oldValue, pos)
			if ierr := idx.Insert(newValue, pos); ierr != nil {
				idx.Insert(oldValue, pos) //nolint:errcheck // reinstating, can't fail: same key was just removed
				subKind := core.UniqueViolation
				if name == t.Schema.PrimaryKey {
					subKind = core.PrimaryKeyViolation
				}
				failErr = &core.ConstraintViolation{
					SubKind: subKind,
					Column: name,
					Value: newValue.String(),
					Message: "duplicate value for unique column",
				}
				failed = true
				break
			}
			updatedIndexed = append(updatedIndexed, struct {
				name string
				old core.Value
			}{name, oldValue})
		}

		if failed {
			for _, done := range updatedIndexed {
				idx := t.indexes[done.name]
				idx.Remove(coerced[done.name], pos)
				idx.Insert(done.old, pos) //nolint:errcheck
			}
			return affected, failErr
		}

		for name, newValue := range coerced {
			row[name] = newValue
		}
		t.rows[pos] = row
		affected++
	}

	return affected, nil
}

// Delete splices matching rows out in descending position order, then
// rebuilds every index from scratch so row positions stay consistent
// with the vector.
func (t *Table) Delete(predicate func(core.Row) bool) (affected int, err error) {
	var positions []int
	for pos, row := range t.rows {
		if predicate(row) {
			positions = append(positions, pos)
		}
	}
	for i := len(positions) - 1; i >= 0; i-- {
		pos := positions[i]
		t.rows = append(t.rows[:pos], t.rows[pos+1:]...)
	}
	t.rebuildIndexesFromRows()
	return len(positions), nil
}

func (t *Table) rebuildIndexesFromRows() {
	t.rebuildIndexes()
	for pos, row := range t.rows {
		for name, idx := range t.indexes {
			_ = idx.Insert(row[name], pos)
		}
	}
}

// FindByIndex returns the rows referenced by column's index for value,
// in position order. If column has no index, it returns an empty slice;
// callers wanting full-scan semantics must do that themselves.
func (t *Table) FindByIndex(column string, value core.Value) []core.Row {
	idx, ok := t.indexes[column]
	if !ok {
		return nil
	}
	positions := idx.Lookup(value)
	rows := make([]core.Row, len(positions))
	for i, pos := range positions {
		rows[i] = t.rows[pos].Clone()
	}
	return rows
}

// Clone produces a fully independent copy of the table: schema, rows, and
// indexes are all deep-copied (used by transaction
// shadowing).
func (t *Table) Clone() *Table {
	clone := &Table{
		Schema: t.Schema.Clone(),
		rows: make([]core.Row, len(t.rows)),
		indexes: make(map[string]*index.Index, len(t.indexes)),
		autoIncrement: t.autoIncrement,
	}
	for i, r := range t.rows {
		clone.rows[i] = r.Clone()
	}
	for name, idx := range t.indexes {
		clone.indexes[name] = idx.Clone()
	}
	return clone
}

// AlterSchema atomically replaces the table's schema and rows, rebuilding
// every index to reflect the new schema's primary/unique columns while
// preserving the auto-increment counter.
func (t *Table) AlterSchema(newSchema core.Schema, newRows []core.Row) {
	t.Schema = newSchema
	t.rows = newRows
	t.rebuildIndexesFromRows()
}
