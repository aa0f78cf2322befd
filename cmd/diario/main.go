package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"diario/internal/adapters/filesystem"
	"diario/internal/adapters/tui"
	"diario/internal/application"
	"diario/internal/config"
)

const saveDelay = 500 * time.Millisecond

func main() {
	journalDir := config.ExpandPath(config.JournalPath())
	store := filesystem.NewSnapshotStore(config.SnapshotPath(journalDir))

	snap, err := store.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading journal: %v\n", err)
		os.Exit(1)
	}

	journal := application.New()
	journal.Replace(snap)

	saver := filesystem.NewSaver(store, saveDelay)
	journal.OnChange(saver.Notify)

	app := tui.NewApp(journal, journalDir)

	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Persist anything still pending in the debounce window
	saver.Flush()
}
