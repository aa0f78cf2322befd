package ports

import "diario/internal/domain"

// SnapshotStore persists full journal snapshots. The journal reads one
// snapshot at startup and hands every later snapshot to the store
// best-effort; the store owns durability, debouncing, and recovery from
// malformed blobs.
type SnapshotStore interface {
	Load() (domain.Snapshot, error)
	Save(domain.Snapshot) error
}

// TagIndex provides derived, disposable query access to the journal's
// tags. It is rebuilt from snapshots and is never the source of truth.
type TagIndex interface {
	// Lifecycle
	Open(path string) error
	Close() error

	// Sync
	RebuildFrom(domain.Snapshot) error

	// Queries
	SearchTags(kind domain.ItemKind, query string) ([]domain.CatalogItem, error)
	TagUsage(kind domain.ItemKind) ([]domain.TagUsage, error)
}
