package core

import "testing"

func TestEqualNullRules(t *testing.T) {
	tests := []struct {
		name string
		a, b Value
		eq   bool
		ne   bool
	}{
		{"both null", Null, Null, true, false},
		{"left null", Null, NewInteger(1), false, false},
		{"right null", NewInteger(1), Null, false, false},
		{"text case insensitive", NewText("A@X"), NewText("a@x"), true, false},
		{"int vs real numeric", NewInteger(3), NewReal(3.0), true, false},
		{"different types", NewInteger(1), NewBoolean(true), false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(tt.a, tt.b); got != tt.eq {
				t.Errorf("Equal() = %v, want %v", got, tt.eq)
			}
			if got := NotEqual(tt.a, tt.b); got != tt.ne {
				t.Errorf("NotEqual() = %v, want %v", got, tt.ne)
			}
		})
	}
}

func TestOrderingWithNull(t *testing.T) {
	if Less(Null, NewInteger(1)) {
		t.Error("Less with NULL should be false")
	}
	if Greater(NewInteger(1), Null) {
		t.Error("Greater with NULL should be false")
	}
}

func TestOrderingNumericCoercion(t *testing.T) {
	if !Less(NewInteger(1), NewReal(2.5)) {
		t.Error("expected 1 < 2.5")
	}
	if !Less(NewText("10"), NewText("20")) {
		t.Error("expected numeric-parsed text comparison 10 < 20")
	}
	if Less(NewText("abc"), NewText("20")) {
		t.Error("non-numeric text should never compare true")
	}
}

func TestLike(t *testing.T) {
	tests := []struct {
		value, pattern string
		want           bool
	}{
		{"hello", "h%o", true},
		{"hello", "h_llo", true},
		{"HELLO", "hell_", true},
		{"hello", "world%", false},
		{"a.b", "a.b", true},
		{"a.b", "a_b", true},
	}
	for _, tt := range tests {
		got := Like(NewText(tt.value), NewText(tt.pattern))
		if got != tt.want {
			t.Errorf("Like(%q, %q) = %v, want %v", tt.value, tt.pattern, got, tt.want)
		}
	}
}

func TestCoerceInteger(t *testing.T) {
	v, err := Coerce(Integer, NewText("42"))
	if err != nil || v.Int() != 42 {
		t.Fatalf("Coerce(Integer, \"42\") = %v, %v", v, err)
	}
	if _, err := Coerce(Integer, NewText("x")); err == nil {
		t.Fatal("expected type mismatch for non-numeric string")
	}
}

func TestCoerceBoolean(t *testing.T) {
	tests := []struct {
		in   Value
		want bool
	}{
		{NewText("yes"), true},
		{NewText("NO"), false},
		{NewInteger(0), false},
		{NewInteger(7), true},
	}
	for _, tt := range tests {
		v, err := Coerce(Boolean, tt.in)
		if err != nil || v.Bool() != tt.want {
			t.Errorf("Coerce(Boolean, %v) = %v, %v, want %v", tt.in, v, err, tt.want)
		}
	}
}

func TestSchemaPrimaryKeyImpliesUniqueNotNull(t *testing.T) {
	schema, err := NewSchema("t", []Column{
		{Name: "id", Type: Integer, PrimaryKey: true, AutoIncrement: true},
		{Name: "e", Type: Text, Unique: true, NotNull: true},
	})
	if err != nil {
		t.Fatal(err)
	}
	if schema.PrimaryKey != "id" {
		t.Errorf("PrimaryKey = %q, want id", schema.PrimaryKey)
	}
	if id := schema.Columns[0]; !id.Unique || !id.NotNull {
		t.Errorf("expected id to be implicitly UNIQUE and NOT NULL, got %+v", id)
	}
	if !schema.UniqueCols["id"] || !schema.UniqueCols["e"] {
		t.Errorf("expected id and e in UniqueCols, got %v", schema.UniqueCols)
	}
}

func TestSchemaRejectsTwoPrimaryKeys(t *testing.T) {
	_, err := NewSchema("t", []Column{
		{Name: "a", Type: Integer, PrimaryKey: true, Unique: true, NotNull: true},
		{Name: "b", Type: Integer, PrimaryKey: true, Unique: true, NotNull: true},
	})
	if err == nil {
		t.Fatal("expected error for two primary keys")
	}
}
