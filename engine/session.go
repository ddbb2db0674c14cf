package engine

import (
	"sort"
	"sync"
	"time"

	"litesql/core"
	"litesql/sql"
)

// Session owns the committed catalog and, while a transaction is open, a
// shadow catalog. Every statement dispatched inside a
// transaction reads and writes the shadow catalog only; outside, the
// committed catalog. A Session is safe for concurrent use, but the
// contract it implements is single-writer: statements on one Session are
// totally ordered.
type Session struct {
	mu sync.Mutex
	committed Catalog
	shadow Catalog
	inTransaction bool
}

// NewSession creates a session with an empty committed catalog.
func NewSession() *Session {
	return &Session{committed: make(Catalog)}
}

// catalog returns the catalog currently in effect: the shadow catalog
// inside a transaction, the committed catalog otherwise.
func (s *Session) catalog() Catalog {
	if s.inTransaction {
		return s.shadow
	}
	return s.committed
}

// Execute parses text and interprets the resulting statement against the
// catalog currently in effect, returning a typed Result.
func (s *Session) Execute(text string) Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	start := time.Now()
	stmt, err := sql.NewParser(text).Parse()
	if err != nil {
		return errorResult(err.(core.QueryError), elapsedMillis(start))
	}

	result := s.dispatch(stmt)
	result.ExecutionTime = elapsedMillis(start)
	return result
}

func elapsedMillis(start time.Time) float64 {
	return float64(time.Since(start)) / float64(time.Millisecond)
}

func (s *Session) dispatch(stmt sql.Statement) Result {
	switch st := stmt.(type) {
	case *sql.CreateTableStatement:
		return s.execCreateTable(st)
	case *sql.AlterTableStatement:
		return s.execAlterTable(st)
	case *sql.DropTableStatement:
		return s.execDropTable(st)
	case *sql.InsertStatement:
		return s.execInsert(st)
	case *sql.SelectStatement:
		return s.execSelect(st)
	case *sql.UpdateStatement:
		return s.execUpdate(st)
	case *sql.DeleteStatement:
		return s.execDelete(st)
	case *sql.ShowTablesStatement:
		return s.execShowTables()
	case *sql.DescribeStatement:
		return s.execDescribe(st)
	case *sql.BeginStatement:
		return s.execBegin()
	case *sql.CommitStatement:
		return s.execCommit()
	case *sql.RollbackStatement:
		return s.execRollback()
	default:
		return errorResult(&core.ExecutionError{Message: "unrecognized statement"}, 0)
	}
}

// execBegin implements BEGIN.
func (s *Session) execBegin() Result {
	if s.inTransaction {
		return errorResult(&core.TransactionError{Message: "transaction already in progress"}, 0)
	}
	s.shadow = s.committed.Clone()
	s.inTransaction = true
	return Result{Success: true, Kind: OKResult}
}

// execCommit implements COMMIT.
func (s *Session) execCommit() Result {
	if !s.inTransaction {
		return errorResult(&core.TransactionError{Message: "no transaction in progress"}, 0)
	}
	s.committed = s.shadow
	s.shadow = nil
	s.inTransaction = false
	return Result{Success: true, Kind: OKResult}
}

// execRollback implements ROLLBACK.
func (s *Session) execRollback() Result {
	if !s.inTransaction {
		return errorResult(&core.TransactionError{Message: "no transaction in progress"}, 0)
	}
	s.shadow = nil
	s.inTransaction = false
	return Result{Success: true, Kind: OKResult}
}

// Stats reports row and table counts for the catalog currently in
// effect.
type Stats struct {
	TableCount int
	RowCount int
}

// GetStats returns Stats over the catalog currently in effect.
func (s *Session) GetStats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	stats := Stats{}
	for _, tbl := range s.catalog() {
		stats.TableCount++
		stats.RowCount += tbl.Len()
	}
	return stats
}

// GetTableNames returns every table name in the catalog currently in
// effect, sorted.
func (s *Session) GetTableNames() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	names := make([]string, 0, len(s.catalog()))
	for name := range s.catalog() {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetTable returns the named table's schema, if it exists, from the
// catalog currently in effect.
func (s *Session) GetTable(name string) (core.Schema, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	tbl, ok := s.catalog()[name]
	if !ok {
		return core.Schema{}, false
	}
	return tbl.Schema, true
}

// GetDatabase returns every table's schema in the catalog currently in
// effect.
func (s *Session) GetDatabase() map[string]core.Schema {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]core.Schema, len(s.catalog()))
	for name, tbl := range s.catalog() {
		out[name] = tbl.Schema
	}
	return out
}

// Reset clears the catalog and any in-progress transaction.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.committed = make(Catalog)
	s.shadow = nil
	s.inTransaction = false
}

// InTransaction reports whether a transaction is currently open.
func (s *Session) InTransaction() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inTransaction
}
