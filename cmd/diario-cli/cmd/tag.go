package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"diario/internal/adapters/sqlite"
	"diario/internal/application/commands"
	"diario/internal/config"
	"diario/internal/domain"
)

var (
	tagDate string
	tagKind string
)

var tagCmd = &cobra.Command{
	Use:   "tag",
	Short: "Manage food and symptom tags",
	Long: `Manage the tag catalog and day attachments.

Tags are shared across all days: attaching a name that already exists in
the catalog reuses it, otherwise a new catalog entry is created.`,
}

var tagAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Attach a tag to a day, creating it if needed",
	Long: `Attach a tag to a day.

If no catalog entry with that name exists yet (case-insensitive), one is
created first.

Examples:
  diario-cli tag add coffee --kind food
  diario-cli tag add headache --kind symptom --date 2026-08-12`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := strings.Join(args, " ")
		createCmd := commands.NewCreateTagCommand(GetJournal(), tagDate, tagKind, name)
		if err := createCmd.Validate(); err != nil {
			return err
		}
		result, err := createCmd.Execute(context.Background())
		if err != nil {
			return err
		}
		if err := SaveJournal(); err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

var tagRemoveCmd = &cobra.Command{
	Use:   "remove <name-or-id>",
	Short: "Detach a tag from a day",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tag := strings.Join(args, " ")
		removeCmd := commands.NewRemoveTagCommand(GetJournal(), tagDate, tagKind, tag)
		if err := removeCmd.Execute(context.Background()); err != nil {
			return err
		}
		if err := SaveJournal(); err != nil {
			return err
		}
		fmt.Printf("Removed %q from %s\n", tag, domain.CanonicalDayKey(tagDate))
		return nil
	},
}

var tagSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search the tag catalog",
	Long: `Search tags of one kind by name substring.

The search runs against a derived SQLite index rebuilt from the journal
on every run.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, ok := domain.ParseItemKind(tagKind)
		if !ok {
			return fmt.Errorf("unknown kind %q", tagKind)
		}
		query := strings.Join(args, " ")

		idx := sqlite.NewIndex()
		if err := idx.Open(config.IndexPath(journalDir)); err != nil {
			return err
		}
		defer idx.Close()

		if err := idx.RebuildFrom(GetJournal().Snapshot()); err != nil {
			return err
		}

		items, err := idx.SearchTags(kind, query)
		if err != nil {
			return err
		}
		if len(items) == 0 {
			fmt.Println("No results found")
			return nil
		}
		for _, item := range items {
			fmt.Printf("%s  %s\n", item.ID, item.Name)
		}
		return nil
	},
}

var tagListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the tag catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, ok := domain.ParseItemKind(tagKind)
		if !ok {
			return fmt.Errorf("unknown kind %q", tagKind)
		}
		items := GetJournal().SelectCatalogByKind(kind)
		if len(items) == 0 {
			fmt.Println("No tags yet")
			return nil
		}
		for _, item := range items {
			fmt.Printf("%s  %s\n", item.ID, item.Name)
		}
		return nil
	},
}

func init() {
	tagCmd.PersistentFlags().StringVarP(&tagDate, "date", "d", domain.TodayKey(), "day to operate on (YYYY-MM-DD)")
	tagCmd.PersistentFlags().StringVarP(&tagKind, "kind", "k", "food", "tag kind (food or symptom)")
	tagCmd.AddCommand(tagAddCmd)
	tagCmd.AddCommand(tagRemoveCmd)
	tagCmd.AddCommand(tagSearchCmd)
	tagCmd.AddCommand(tagListCmd)
	rootCmd.AddCommand(tagCmd)
}
