package filesystem

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"diario/internal/domain"
)

func tempStore(t *testing.T) *SnapshotStore {
	t.Helper()
	return NewSnapshotStore(filepath.Join(t.TempDir(), "journal.json"))
}

func TestSnapshotStoreRoundTrip(t *testing.T) {
	store := tempStore(t)

	notes := "slept badly"
	snap := domain.Snapshot{
		Version: domain.SchemaVersion,
		CatalogItems: []domain.CatalogItem{
			{ID: "f1", Name: "Coffee", Kind: domain.KindFood, CreatedAt: time.Now().Truncate(time.Second)},
		},
		DayLogsByDate: map[string]domain.DayLog{
			"2026-01-01": {
				Date:       "2026-01-01",
				Feeling:    domain.FeelingBad,
				SymptomIDs: []string{},
				FoodIDs:    []string{"f1"},
				Notes:      &notes,
			},
		},
	}

	if err := store.Save(snap); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(loaded.CatalogItems) != 1 || loaded.CatalogItems[0].Name != "Coffee" {
		t.Errorf("expected catalog to round-trip, got %v", loaded.CatalogItems)
	}
	day := loaded.DayLogsByDate["2026-01-01"]
	if day.Feeling != domain.FeelingBad || len(day.FoodIDs) != 1 {
		t.Errorf("expected day log to round-trip, got %+v", day)
	}
	if day.Notes == nil || *day.Notes != notes {
		t.Error("expected notes to round-trip")
	}
}

func TestSnapshotStoreLoadMissing(t *testing.T) {
	store := tempStore(t)
	snap, err := store.Load()
	if err != nil {
		t.Fatalf("expected missing blob to load as empty state, got %v", err)
	}
	if snap.Version != domain.SchemaVersion {
		t.Errorf("expected version %d, got %d", domain.SchemaVersion, snap.Version)
	}
	if len(snap.CatalogItems) != 0 || len(snap.DayLogsByDate) != 0 {
		t.Error("expected empty initial state")
	}
}

func TestSnapshotStoreLoadMalformed(t *testing.T) {
	store := tempStore(t)
	if err := os.WriteFile(store.Path(), []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	snap, err := store.Load()
	if err != nil {
		t.Fatalf("expected malformed blob to fall back to empty state, got %v", err)
	}
	if len(snap.CatalogItems) != 0 {
		t.Error("expected empty state for malformed blob")
	}
}

func TestSnapshotStoreLoadNewerVersion(t *testing.T) {
	store := tempStore(t)
	if err := os.WriteFile(store.Path(), []byte(`{"version": 99}`), 0644); err != nil {
		t.Fatal(err)
	}

	snap, err := store.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(snap.CatalogItems) != 0 || snap.Version != domain.SchemaVersion {
		t.Error("expected a newer-versioned blob to load as empty state")
	}
}

func TestSaverDebounces(t *testing.T) {
	store := tempStore(t)
	saver := NewSaver(store, 10*time.Millisecond)

	snap := domain.EmptySnapshot()
	snap.CatalogItems = append(snap.CatalogItems, domain.CatalogItem{ID: "f1", Name: "Coffee", Kind: domain.KindFood})
	saver.Notify(domain.EmptySnapshot())
	saver.Notify(snap)

	time.Sleep(50 * time.Millisecond)

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(loaded.CatalogItems) != 1 {
		t.Error("expected the last notified snapshot to win")
	}
}

func TestSaverFlush(t *testing.T) {
	store := tempStore(t)
	saver := NewSaver(store, time.Hour)

	snap := domain.EmptySnapshot()
	snap.DayLogsByDate["2026-01-01"] = domain.DayLog{Date: "2026-01-01", SymptomIDs: []string{}, FoodIDs: []string{}}
	saver.Notify(snap)
	saver.Flush()

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(loaded.DayLogsByDate) != 1 {
		t.Error("expected flush to write the pending snapshot immediately")
	}
}
