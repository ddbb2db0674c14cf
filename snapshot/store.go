package snapshot

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/go-git/go-billy/v6"
	"github.com/go-git/go-billy/v6/memfs"

	"litesql/core"
	"litesql/table"
)

// TableData is the on-disk shape of one table: its schema, its current
// rows, and the auto-increment counter value at capture time.
type TableData struct {
	Schema        core.Schema `json:"schema"`
	Rows          []core.Row  `json:"rows"`
	AutoIncrement int64       `json:"autoIncrement"`
}

// CatalogData is the on-disk shape of a whole catalog: table name to
// TableData.
type CatalogData map[string]TableData

// Capture converts a live catalog into its serializable form.
func Capture(cat map[string]*table.Table) CatalogData {
	data := make(CatalogData, len(cat))
	for name, tbl := range cat {
		data[name] = TableData{
			Schema:        tbl.Schema,
			Rows:          tbl.Rows(),
			AutoIncrement: tbl.AutoIncrementCounter(),
		}
	}
	return data
}

// Restore rebuilds a live catalog from its serialized form.
func Restore(data CatalogData) map[string]*table.Table {
	cat := make(map[string]*table.Table, len(data))
	for name, td := range data {
		cat[name] = table.Restore(td.Schema, td.Rows, td.AutoIncrement)
	}
	return cat
}

// Store serializes CatalogData to and from a billy.Filesystem as JSON
// blobs. The zero value is not usable; build one with NewStore or
// NewMemoryStore.
type Store struct {
	fs billy.Filesystem
}

// NewStore wraps an existing billy.Filesystem, e.g. osfs.New(dir) for a
// durable export.
func NewStore(fs billy.Filesystem) *Store {
	return &Store{fs: fs}
}

// NewMemoryStore creates a Store backed by an in-memory filesystem: a
// filesystem-shaped handle to the catalog without durability.
// Session.Dump/Session.Restore take their Store as a parameter and have
// no default of their own.
func NewMemoryStore() *Store {
	return NewStore(memfs.New())
}

// Save marshals data as JSON and writes it to path, truncating any
// existing content.
func (s *Store) Save(path string, data CatalogData) error {
	encoded, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("snapshot: encode catalog: %w", err)
	}
	file, err := s.fs.Create(path)
	if err != nil {
		return fmt.Errorf("snapshot: create %q: %w", path, err)
	}
	defer file.Close()
	if _, err := file.Write(encoded); err != nil {
		return fmt.Errorf("snapshot: write %q: %w", path, err)
	}
	return nil
}

// Load reads path and unmarshals it as CatalogData.
func (s *Store) Load(path string) (CatalogData, error) {
	file, err := s.fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("snapshot: open %q: %w", path, err)
	}
	defer file.Close()
	encoded, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("snapshot: read %q: %w", path, err)
	}
	var data CatalogData
	if err := json.Unmarshal(encoded, &data); err != nil {
		return nil, fmt.Errorf("snapshot: decode %q: %w", path, err)
	}
	return data, nil
}
