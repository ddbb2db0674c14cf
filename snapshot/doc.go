// Package snapshot serializes an engine catalog to and from a
// billy.Filesystem as JSON blobs. It backs the opt-in Session.Dump and
// Session.Restore calls; transaction BEGIN/COMMIT/ROLLBACK use an
// in-memory Catalog.Clone instead and never touch this package.
//
//	store := snapshot.NewMemoryStore()
//	if err := store.Save("catalog.json", snapshot.Capture(catalog)); err != nil {
//	    // ...
//	}
package snapshot
