package index

import (
	"errors"
	"sort"
	"strconv"

	"github.com/google/btree"

	"litesql/core"
)

// Mode is the uniqueness mode of an Index.
type Mode bool

const (
	Unique Mode = true
	NonUnique Mode = false
)

// ErrDuplicateKey is returned by Insert when a unique index already holds
// an entry for the normalized key.
var ErrDuplicateKey = errors.New("duplicate key for unique index")

// entry is one key → row-position-set node in the backing btree. key holds
// the already-normalized (core.Value.Normalized()) value; it is always one
// of int64, float64, string, bool, since every entry in one Index comes
// from the same column.
type entry struct {
	key any
	positions map[int]struct{}
}

func (e *entry) Less(than btree.Item) bool {
	return lessKey(e.key, than.(*entry).key)
}

func lessKey(a, b any) bool {
	switch av := a.(type) {
	case int64:
		return av < b.(int64)
	case float64:
		return av < b.(float64)
	case string:
		return av < b.(string)
	case bool:
		return !av && b.(bool)
	default:
		return false
	}
}

// Index is a value→row-position multi-map bound to one column.
type Index struct {
	Column string
	mode Mode
	tree *btree.BTree
}

// New creates an empty index over column in the given mode.
func New(column string, mode Mode) *Index {
	return &Index{Column: column, mode: mode, tree: btree.New(32)}
}

func (idx *Index) Mode() Mode { return idx.mode }

// Insert adds (value, position) to the index. A NULL value is never
// stored. In unique mode,
// a second entry for an already-present key returns ErrDuplicateKey and
// leaves the index unchanged.
func (idx *Index) Insert(value core.Value, position int) error {
	if value.IsNull() {
		return nil
	}
	key := value.Normalized()
	if item := idx.tree.Get(&entry{key: key}); item != nil {
		e := item.(*entry)
		if idx.mode == Unique {
			return ErrDuplicateKey
		}
		e.positions[position] = struct{}{}
		return nil
	}
	idx.tree.ReplaceOrInsert(&entry{key: key, positions: map[int]struct{}{position: {}}})
	return nil
}

// Remove deletes (value, position) from the index, if present.
func (idx *Index) Remove(value core.Value, position int) {
	if value.IsNull() {
		return
	}
	key := value.Normalized()
	item := idx.tree.Get(&entry{key: key})
	if item == nil {
		return
	}
	e := item.(*entry)
	delete(e.positions, position)
	if len(e.positions) == 0 {
		idx.tree.Delete(e)
	}
}

// Lookup returns every row position stored under value's normalized key,
// in ascending position order. Returns nil if the key is absent.
func (idx *Index) Lookup(value core.Value) []int {
	if value.IsNull() {
		return nil
	}
	item := idx.tree.Get(&entry{key: value.Normalized()})
	if item == nil {
		return nil
	}
	return sortedPositions(item.(*entry).positions)
}

func sortedPositions(set map[int]struct{}) []int {
	out := make([]int, 0, len(set))
	for p := range set {
		out = append(out, p)
	}
	sort.Ints(out)
	return out
}

// Comparator is one of the SQL ordering operators.
type Comparator int

const (
	LessThan Comparator = iota
	LessOrEqual
	GreaterThan
	GreaterOrEqual
)

// Range returns every row position whose indexed key, numerically
// coerced, satisfies `key CMP value`. Keys that cannot be
// numerically coerced are skipped.
func (idx *Index) Range(cmp Comparator, value core.Value) []int {
	target, ok := core.ToNumber(value)
	if !ok {
		return nil
	}
	var out []int
	idx.tree.Ascend(func(item btree.Item) bool {
		e := item.(*entry)
		n, ok := numericKey(e.key)
		if !ok {
			return true
		}
		match := false
		switch cmp {
		case LessThan:
			match = n < target
		case LessOrEqual:
			match = n <= target
		case GreaterThan:
			match = n > target
		case GreaterOrEqual:
			match = n >= target
		}
		if match {
			out = append(out, sortedPositions(e.positions)...)
		}
		return true
	})
	sort.Ints(out)
	return out
}

func numericKey(key any) (float64, bool) {
	switch v := key.(type) {
	case int64:
		return float64(v), true
	case float64:
		return v, true
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// Like returns every row position whose indexed key (a lowercased string
// for TEXT columns) matches pattern. Non-string entries are skipped.
func (idx *Index) Like(pattern core.Value) []int {
	var out []int
	idx.tree.Ascend(func(item btree.Item) bool {
		e := item.(*entry)
		s, ok := e.key.(string)
		if !ok {
			return true
		}
		if core.Like(core.NewText(s), pattern) {
			out = append(out, sortedPositions(e.positions)...)
		}
		return true
	})
	sort.Ints(out)
	return out
}

// Clear removes every entry, leaving the index empty but still bound to
// its column and mode.
func (idx *Index) Clear() {
	idx.tree = btree.New(32)
}

// Clone returns an independent copy of the index.
func (idx *Index) Clone() *Index {
	out := New(idx.Column, idx.mode)
	idx.tree.Ascend(func(item btree.Item) bool {
		e := item.(*entry)
		positions := make(map[int]struct{}, len(e.positions))
		for p := range e.positions {
			positions[p] = struct{}{}
		}
		out.tree.ReplaceOrInsert(&entry{key: e.key, positions: positions})
		return true
	})
	return out
}

// Len returns the number of distinct keys held by the index.
func (idx *Index) Len() int { return idx.tree.Len() }
