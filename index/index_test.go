package index

import (
	"reflect"
	"testing"

	"litesql/core"
)

func TestUniqueIndexRejectsDuplicate(t *testing.T) {
	idx := New("email", Unique)
	if err := idx.Insert(core.NewText("a@x"), 0); err != nil {
		t.Fatal(err)
	}
	if err := idx.Insert(core.NewText("A@X"), 1); err != ErrDuplicateKey {
		t.Fatalf("expected ErrDuplicateKey, got %v", err)
	}
}

func TestIndexNullNeverStored(t *testing.T) {
	idx := New("e", NonUnique)
	if err := idx.Insert(core.Null, 0); err != nil {
		t.Fatal(err)
	}
	if idx.Len() != 0 {
		t.Fatalf("expected empty index after inserting NULL, got %d entries", idx.Len())
	}
}

func TestLookupCaseInsensitive(t *testing.T) {
	idx := New("e", Unique)
	idx.Insert(core.NewText("Alice"), 3)
	got := idx.Lookup(core.NewText("ALICE"))
	if !reflect.DeepEqual(got, []int{3}) {
		t.Fatalf("Lookup = %v, want [3]", got)
	}
}

func TestRangeScan(t *testing.T) {
	idx := New("n", NonUnique)
	for i, n := range []int64{10, 20, 30} {
		idx.Insert(core.NewInteger(n), i)
	}
	got := idx.Range(GreaterThan, core.NewInteger(15))
	if !reflect.DeepEqual(got, []int{1, 2}) {
		t.Fatalf("Range(>15) = %v, want [1 2]", got)
	}
}

func TestRemoveThenEmpty(t *testing.T) {
	idx := New("n", Unique)
	idx.Insert(core.NewInteger(1), 0)
	idx.Remove(core.NewInteger(1), 0)
	if idx.Len() != 0 {
		t.Fatalf("expected index empty after remove, got %d", idx.Len())
	}
}

func TestLike(t *testing.T) {
	idx := New("name", NonUnique)
	idx.Insert(core.NewText("hello"), 0)
	idx.Insert(core.NewText("world"), 1)
	got := idx.Like(core.NewText("h%"))
	if !reflect.DeepEqual(got, []int{0}) {
		t.Fatalf("Like(h%%) = %v, want [0]", got)
	}
}

func TestClone(t *testing.T) {
	idx := New("n", Unique)
	idx.Insert(core.NewInteger(1), 0)
	clone := idx.Clone()
	clone.Insert(core.NewInteger(2), 1)
	if idx.Len() != 1 {
		t.Fatalf("original index mutated by clone, len=%d", idx.Len())
	}
}
