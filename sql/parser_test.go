package sql

import (
	"reflect"
	"testing"

	"litesql/core"
)

func TestParseCreateTable(t *testing.T) {
	stmt, err := NewParser(`CREATE TABLE u (id INTEGER PRIMARY KEY AUTO_INCREMENT, e TEXT UNIQUE NOT NULL)`).Parse()
	if err != nil {
		t.Fatal(err)
	}
	ct, ok := stmt.(*CreateTableStatement)
	if !ok {
		t.Fatalf("got %T", stmt)
	}
	if ct.Table != "u" || len(ct.Columns) != 2 {
		t.Fatalf("got %+v", ct)
	}
	id := ct.Columns[0]
	if !id.PrimaryKey || !id.AutoIncrement || id.Type != core.Integer {
		t.Fatalf("id column: %+v", id)
	}
	e := ct.Columns[1]
	if !e.Unique || !e.NotNull || e.Type != core.Text {
		t.Fatalf("e column: %+v", e)
	}
}

func TestParseCreateTableIfNotExists(t *testing.T) {
	stmt, err := NewParser(`CREATE TABLE IF NOT EXISTS t (n INTEGER)`).Parse()
	if err != nil {
		t.Fatal(err)
	}
	ct := stmt.(*CreateTableStatement)
	if !ct.IfNotExists {
		t.Fatal("expected IfNotExists")
	}
}

func TestParseAlterTableVariants(t *testing.T) {
	cases := map[string]AlterAction{
		"ALTER TABLE t ADD COLUMN n INTEGER":       AddColumn,
		"ALTER TABLE t DROP COLUMN n":              DropColumn,
		"ALTER TABLE t RENAME COLUMN n TO m":       RenameColumn,
		"ALTER TABLE t MODIFY COLUMN n TEXT":       ModifyColumn,
	}
	for src, action := range cases {
		stmt, err := NewParser(src).Parse()
		if err != nil {
			t.Fatalf("%s: %v", src, err)
		}
		at := stmt.(*AlterTableStatement)
		if at.Action != action {
			t.Fatalf("%s: got action %v, want %v", src, at.Action, action)
		}
	}
}

func TestParseInsertWithColumnList(t *testing.T) {
	stmt, err := NewParser(`INSERT INTO t (n, s) VALUES (1, 'a'), (2, 'b')`).Parse()
	if err != nil {
		t.Fatal(err)
	}
	ins := stmt.(*InsertStatement)
	if len(ins.Columns) != 2 || len(ins.Rows) != 2 {
		t.Fatalf("got %+v", ins)
	}
	if ins.Rows[0][0].Int() != 1 || ins.Rows[0][1].TextVal() != "a" {
		t.Fatalf("row 0 = %+v", ins.Rows[0])
	}
}

func TestParseInsertWithoutColumnList(t *testing.T) {
	stmt, err := NewParser(`INSERT INTO t VALUES (1, 'a')`).Parse()
	if err != nil {
		t.Fatal(err)
	}
	ins := stmt.(*InsertStatement)
	if ins.Columns != nil {
		t.Fatalf("expected nil column list, got %v", ins.Columns)
	}
}

func TestParseSelectWildcardAndQualifiedColumns(t *testing.T) {
	stmt, err := NewParser(`SELECT * FROM t`).Parse()
	if err != nil {
		t.Fatal(err)
	}
	if sel := stmt.(*SelectStatement); sel.Columns != nil {
		t.Fatalf("expected nil columns for *, got %v", sel.Columns)
	}

	stmt2, err := NewParser(`SELECT t.id, t.name FROM t`).Parse()
	if err != nil {
		t.Fatal(err)
	}
	sel2 := stmt2.(*SelectStatement)
	if len(sel2.Columns) != 2 || sel2.Columns[0] != "id" || sel2.Columns[1] != "name" {
		t.Fatalf("got %+v", sel2.Columns)
	}
}

func TestParseWhereLeftAssociative(t *testing.T) {
	stmt, err := NewParser(`SELECT * FROM w WHERE a = 1 OR b = 1 AND c = 0`).Parse()
	if err != nil {
		t.Fatal(err)
	}
	sel := stmt.(*SelectStatement)
	if len(sel.Where.Conditions) != 3 || len(sel.Where.LogicalOps) != 2 {
		t.Fatalf("got %+v", sel.Where)
	}
	if sel.Where.LogicalOps[0] != Or || sel.Where.LogicalOps[1] != And {
		t.Fatalf("got ops %v", sel.Where.LogicalOps)
	}
}

func TestParseJoinInner(t *testing.T) {
	stmt, err := NewParser(`SELECT * FROM orders INNER JOIN customers ON customer_id = id`).Parse()
	if err != nil {
		t.Fatal(err)
	}
	sel := stmt.(*SelectStatement)
	if len(sel.Joins) != 1 {
		t.Fatalf("got %+v", sel.Joins)
	}
	j := sel.Joins[0]
	if j.Type != InnerJoin || j.Table != "customers" || j.Left != "customer_id" || j.Right != "id" {
		t.Fatalf("got %+v", j)
	}
}

func TestParseJoinDefaultsToInner(t *testing.T) {
	stmt, err := NewParser(`SELECT * FROM a JOIN b ON x = y`).Parse()
	if err != nil {
		t.Fatal(err)
	}
	sel := stmt.(*SelectStatement)
	if sel.Joins[0].Type != InnerJoin {
		t.Fatalf("got %+v", sel.Joins[0])
	}
}

func TestParseOrderByAndLimit(t *testing.T) {
	stmt, err := NewParser(`SELECT * FROM t ORDER BY n DESC LIMIT 5`).Parse()
	if err != nil {
		t.Fatal(err)
	}
	sel := stmt.(*SelectStatement)
	if len(sel.OrderBy) != 1 || !sel.OrderBy[0].Desc || sel.OrderBy[0].Column != "n" {
		t.Fatalf("got %+v", sel.OrderBy)
	}
	if sel.Limit == nil || *sel.Limit != 5 {
		t.Fatalf("got limit %v", sel.Limit)
	}
}

func TestParseUpdateAndDelete(t *testing.T) {
	stmt, err := NewParser(`UPDATE t SET n = 1, s = 'x' WHERE id = 2`).Parse()
	if err != nil {
		t.Fatal(err)
	}
	upd := stmt.(*UpdateStatement)
	if len(upd.Set) != 2 || upd.Where == nil {
		t.Fatalf("got %+v", upd)
	}

	stmt2, err := NewParser(`DELETE FROM t WHERE id = 2`).Parse()
	if err != nil {
		t.Fatal(err)
	}
	del := stmt2.(*DeleteStatement)
	if del.Table != "t" || del.Where == nil {
		t.Fatalf("got %+v", del)
	}
}

func TestParseShowTablesAndDescribe(t *testing.T) {
	if _, err := NewParser(`SHOW TABLES`).Parse(); err != nil {
		t.Fatal(err)
	}
	stmt, err := NewParser(`DESCRIBE t`).Parse()
	if err != nil {
		t.Fatal(err)
	}
	if stmt.(*DescribeStatement).Table != "t" {
		t.Fatalf("got %+v", stmt)
	}
}

func TestParseTransactionControl(t *testing.T) {
	for src, want := range map[string]reflect.Type{
		"BEGIN":    reflect.TypeOf(&BeginStatement{}),
		"COMMIT":   reflect.TypeOf(&CommitStatement{}),
		"ROLLBACK": reflect.TypeOf(&RollbackStatement{}),
	} {
		stmt, err := NewParser(src).Parse()
		if err != nil {
			t.Fatalf("%s: %v", src, err)
		}
		if got := reflect.TypeOf(stmt); got != want {
			t.Fatalf("%s: got %v, want %v", src, got, want)
		}
	}
}

func TestParseSyntaxErrorCarriesPosition(t *testing.T) {
	_, err := NewParser(`SELECT FROM`).Parse()
	if err == nil {
		t.Fatal("expected a syntax error")
	}
	se, ok := err.(*core.SyntaxError)
	if !ok {
		t.Fatalf("got %T", err)
	}
	if se.Pos == 0 {
		t.Fatalf("expected a nonzero byte position, got %d", se.Pos)
	}
}
