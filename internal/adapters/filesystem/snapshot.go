package filesystem

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"diario/internal/domain"
	"diario/internal/ports"
)

// SnapshotStore implements ports.SnapshotStore as a single JSON blob on
// disk.
type SnapshotStore struct {
	path string
}

// Ensure SnapshotStore implements the port
var _ ports.SnapshotStore = (*SnapshotStore)(nil)

// NewSnapshotStore creates a snapshot store writing to path. A leading ~
// expands to the user's home directory.
func NewSnapshotStore(path string) *SnapshotStore {
	if strings.HasPrefix(path, "~") {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path[1:])
	}
	return &SnapshotStore{path: path}
}

// Path returns the resolved blob path.
func (s *SnapshotStore) Path() string {
	return s.path
}

// Load reads the persisted snapshot. A missing or malformed blob falls
// back to the empty initial state: the journal core has no fatal-error
// path, so corruption is absorbed here. The damaged file is left in place
// and will be overwritten by the next save.
func (s *SnapshotStore) Load() (domain.Snapshot, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return domain.EmptySnapshot(), nil
	}
	if err != nil {
		return domain.EmptySnapshot(), fmt.Errorf("failed to read snapshot: %w", err)
	}

	var snap domain.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return domain.EmptySnapshot(), nil
	}
	if snap.Version > domain.SchemaVersion {
		// Written by a newer build; refuse to guess at its layout.
		return domain.EmptySnapshot(), nil
	}
	if snap.CatalogItems == nil {
		snap.CatalogItems = []domain.CatalogItem{}
	}
	if snap.DayLogsByDate == nil {
		snap.DayLogsByDate = map[string]domain.DayLog{}
	}
	snap.Version = domain.SchemaVersion
	return snap, nil
}

// Save writes the snapshot atomically: a temp file in the same directory,
// then rename.
func (s *SnapshotStore) Save(snap domain.Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create journal directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".journal-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp snapshot: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close snapshot: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace snapshot: %w", err)
	}
	return nil
}

// Saver debounces snapshot writes. Notify replaces the pending snapshot
// and restarts the timer; writes are best-effort and never block the
// caller, with last-write-wins as the only ordering guarantee.
type Saver struct {
	store ports.SnapshotStore
	delay time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	pending domain.Snapshot
}

// NewSaver creates a debounced saver around store.
func NewSaver(store ports.SnapshotStore, delay time.Duration) *Saver {
	return &Saver{store: store, delay: delay}
}

// Notify schedules the snapshot for writing after the debounce window.
func (s *Saver) Notify(snap domain.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = snap
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.delay, s.flush)
}

// Flush writes any pending snapshot immediately. Called on shutdown.
func (s *Saver) Flush() {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.mu.Unlock()
	s.flush()
}

func (s *Saver) flush() {
	s.mu.Lock()
	snap := s.pending
	s.mu.Unlock()
	if snap.Version == 0 {
		return
	}
	// Best-effort: a failed write is retried on the next mutation.
	_ = s.store.Save(snap)
}
