package domain

// SchemaVersion marks the persisted snapshot layout for future migration.
const SchemaVersion = 1

// Snapshot is the full serialized journal state: the only shape that
// crosses the persistence boundary, read once at startup and written
// best-effort after every mutation.
type Snapshot struct {
	Version       int               `json:"version"`
	CatalogItems  []CatalogItem     `json:"catalogItems"`
	DayLogsByDate map[string]DayLog `json:"dayLogsByDate"`
}

// EmptySnapshot is the initial state for a fresh journal, and the
// fallback when a persisted blob is unreadable.
func EmptySnapshot() Snapshot {
	return Snapshot{
		Version:       SchemaVersion,
		CatalogItems:  []CatalogItem{},
		DayLogsByDate: map[string]DayLog{},
	}
}

// TagUsage pairs a catalog item with the number of days referencing it.
type TagUsage struct {
	Item CatalogItem
	Days int
}
