package engine

import (
	"fmt"

	"litesql/snapshot"
)

// Dump serializes the catalog currently in effect to store at path. This
// is an explicit, opt-in export, not something BEGIN/COMMIT/ROLLBACK
// depend on — those three still use Catalog.Clone/replace in memory;
// Dump/Restore exist for callers that want a durable or inspectable
// copy.
func (s *Session) Dump(store *snapshot.Store, path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	data := snapshot.Capture(s.catalog())
	if err := store.Save(path, data); err != nil {
		return fmt.Errorf("engine: dump: %w", err)
	}
	return nil
}

// Restore replaces the catalog currently in effect with the contents of
// path in store.
func (s *Session) Restore(store *snapshot.Store, path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := store.Load(path)
	if err != nil {
		return fmt.Errorf("engine: restore: %w", err)
	}
	cat := snapshot.Restore(data)
	if s.inTransaction {
		s.shadow = cat
	} else {
		s.committed = cat
	}
	return nil
}
