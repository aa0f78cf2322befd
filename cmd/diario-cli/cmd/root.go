package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"diario/internal/adapters/filesystem"
	"diario/internal/application"
	"diario/internal/config"
)

var (
	journalDir string
	store      *filesystem.SnapshotStore
	journal    *application.Journal
)

var rootCmd = &cobra.Command{
	Use:   "diario-cli",
	Short: "CLI for the food and symptom journal",
	Long: `diario-cli is a command-line interface for a day-by-day food and
symptom journal.

It provides commands to log how a day went, attach food and symptom
tags, chart trends, and export the journal as CSV.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		journalDir = config.ExpandPath(journalDir)
		store = filesystem.NewSnapshotStore(config.SnapshotPath(journalDir))
		snap, err := store.Load()
		if err != nil {
			return err
		}
		journal = application.New()
		journal.Replace(snap)
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&journalDir, "journal", "j", config.JournalPath(), "path to the journal directory")
}

// GetJournal returns the loaded journal
func GetJournal() *application.Journal {
	return journal
}

// SaveJournal persists the current journal state. Mutating commands call
// it once after their writes.
func SaveJournal() error {
	return store.Save(journal.Snapshot())
}
