package table

import (
	"testing"

	"litesql/core"
)

func usersTable(t *testing.T) *Table {
	t.Helper()
	schema, err := core.NewSchema("u", []core.Column{
		{Name: "id", Type: core.Integer, PrimaryKey: true, AutoIncrement: true},
		{Name: "e", Type: core.Text, Unique: true, NotNull: true},
	})
	if err != nil {
		t.Fatal(err)
	}
	return New(schema)
}

func TestInsertAutoIncrementAndUniqueCollision(t *testing.T) {
	tbl := usersTable(t)

	_, lastID, err := tbl.Insert(map[string]core.Value{"e": core.NewText("a@x")})
	if err != nil || lastID == nil || *lastID != 1 {
		t.Fatalf("first insert = id %v, err %v", lastID, err)
	}

	_, _, err = tbl.Insert(map[string]core.Value{"e": core.NewText("A@X")})
	cv, ok := err.(*core.ConstraintViolation)
	if !ok || cv.SubKind != core.UniqueViolation {
		t.Fatalf("expected UNIQUE violation, got %v", err)
	}

	if tbl.Len() != 1 {
		t.Fatalf("expected rollback of failed insert, got %d rows", tbl.Len())
	}
}

func TestInsertTypeMismatch(t *testing.T) {
	schema, _ := core.NewSchema("t", []core.Column{
		{Name: "n", Type: core.Integer},
	})
	tbl := New(schema)
	_, _, err := tbl.Insert(map[string]core.Value{"n": core.NewText("x")})
	cv, ok := err.(*core.ConstraintViolation)
	if !ok || cv.SubKind != core.TypeMismatchViolation {
		t.Fatalf("expected TYPE_MISMATCH, got %v", err)
	}
}

func TestDeleteRebuildsIndexesThenReinsert(t *testing.T) {
	tbl := usersTable(t)
	tbl.Insert(map[string]core.Value{"e": core.NewText("a@x")})

	affected, err := tbl.Delete(func(row core.Row) bool {
		return row["id"].Int() == 1
	})
	if err != nil || affected != 1 {
		t.Fatalf("Delete = %d, %v", affected, err)
	}

	_, _, err = tbl.Insert(map[string]core.Value{"e": core.NewText("c@z")})
	if err != nil {
		t.Fatal(err)
	}

	rows := tbl.FindByIndex("e", core.NewText("c@z"))
	if len(rows) != 1 {
		t.Fatalf("expected to find inserted row via rebuilt index, got %d", len(rows))
	}
}

func TestCloneIsIndependent(t *testing.T) {
	tbl := usersTable(t)
	tbl.Insert(map[string]core.Value{"e": core.NewText("a@x")})

	clone := tbl.Clone()
	clone.Insert(map[string]core.Value{"e": core.NewText("b@y")})

	if tbl.Len() != 1 {
		t.Fatalf("original table mutated by clone insert, len=%d", tbl.Len())
	}
	if clone.Len() != 2 {
		t.Fatalf("clone should have 2 rows, got %d", clone.Len())
	}
}

func TestUpdateFirstErrorDoesNotRollbackEarlierRows(t *testing.T) {
	tbl := usersTable(t)
	tbl.Insert(map[string]core.Value{"e": core.NewText("a@x")})
	tbl.Insert(map[string]core.Value{"e": core.NewText("b@y")})

	// Update both rows' e to the same new value: the second row's update
	// collides with the first row's already-applied new value.
	affected, err := tbl.Update(map[string]core.Value{"e": core.NewText("same@z")}, func(core.Row) bool {
		return true
	})
	if err == nil {
		t.Fatal("expected a constraint violation on the second row")
	}
	if affected != 1 {
		t.Fatalf("expected 1 row successfully updated before the failure, got %d", affected)
	}

	rows := tbl.Rows()
	if rows[0]["e"].TextVal() != "same@z" {
		t.Fatalf("expected first row's update to survive, got %v", rows[0]["e"])
	}
}
