package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"diario/internal/adapters/sqlite"
	"diario/internal/config"
	"diario/internal/domain"
)

var statsKind string

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show tag usage statistics",
	Long: `Show how many days each tag was logged on, most used first.

Statistics come from a derived SQLite index that is rebuilt from the
journal on every run; deleting the index file is always safe.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, ok := domain.ParseItemKind(statsKind)
		if !ok {
			return fmt.Errorf("unknown kind %q", statsKind)
		}

		idx := sqlite.NewIndex()
		if err := idx.Open(config.IndexPath(journalDir)); err != nil {
			return err
		}
		defer idx.Close()

		if err := idx.RebuildFrom(GetJournal().Snapshot()); err != nil {
			return err
		}

		usage, err := idx.TagUsage(kind)
		if err != nil {
			return err
		}
		if len(usage) == 0 {
			fmt.Println("No tags yet")
			return nil
		}
		for _, u := range usage {
			fmt.Printf("%-24s %d days\n", u.Item.Name, u.Days)
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().StringVarP(&statsKind, "kind", "k", "food", "tag kind (food or symptom)")
	rootCmd.AddCommand(statsCmd)
}
