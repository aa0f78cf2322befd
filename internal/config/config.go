package config

import (
	"os"
	"path/filepath"
)

const DefaultJournalPath = "~/Documents/diario"

// JournalPath returns the journal directory from the DIARIO_HOME env var,
// falling back to DefaultJournalPath.
func JournalPath() string {
	if env := os.Getenv("DIARIO_HOME"); env != "" {
		return env
	}
	return DefaultJournalPath
}

// ExpandPath resolves a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// SnapshotPath returns the persisted-state blob path inside the journal
// directory.
func SnapshotPath(journalPath string) string {
	return filepath.Join(journalPath, "journal.json")
}

// IndexPath returns the derived tag-index database path inside the
// journal directory.
func IndexPath(journalPath string) string {
	return filepath.Join(journalPath, "index.db")
}
