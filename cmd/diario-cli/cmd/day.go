package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"diario/internal/application/commands"
	"diario/internal/domain"
)

var dayDate string

var dayCmd = &cobra.Command{
	Use:   "day",
	Short: "Show or edit a day record",
	Long: `Show or edit a single day of the journal.

The --date flag defaults to today.`,
}

var dayShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show a day record",
	RunE: func(cmd *cobra.Command, args []string) error {
		journal := GetJournal()
		date := domain.CanonicalDayKey(dayDate)
		day := journal.SelectDayLog(date)

		fmt.Println(domain.FormatDisplayDate(date))
		fmt.Printf("Feeling:  %s\n", day.Feeling.Label())
		fmt.Printf("Activity: %s\n", day.Activity.Label())
		fmt.Printf("Foods:    %s\n", tagLine(journal.SelectDayItems(date, domain.KindFood)))
		fmt.Printf("Symptoms: %s\n", tagLine(journal.SelectDayItems(date, domain.KindSymptom)))
		if day.Notes != nil && *day.Notes != "" {
			fmt.Printf("Notes:    %s\n", *day.Notes)
		}
		return nil
	},
}

var dayFeelingCmd = &cobra.Command{
	Use:   "feeling <level>",
	Short: "Set how the day felt overall",
	Long: `Set the overall feeling for a day.

Levels: Very Bad, Bad, Normal, Good, Very Good. Pass "unset" to clear.

Examples:
  diario-cli day feeling good
  diario-cli day feeling "very bad" --date 2026-08-12`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		level := strings.Join(args, " ")
		setCmd := commands.NewSetFeelingCommand(GetJournal(), dayDate, level)
		if err := setCmd.Validate(); err != nil {
			return err
		}
		day, err := setCmd.Execute(context.Background())
		if err != nil {
			return err
		}
		if err := SaveJournal(); err != nil {
			return err
		}
		fmt.Printf("%s feeling: %s\n", day.Date, day.Feeling.Label())
		return nil
	},
}

var dayActivityCmd = &cobra.Command{
	Use:   "activity <level>",
	Short: "Set the day's physical activity level",
	Long: `Set the physical activity level for a day.

Levels: None, Low, Average, High, Very High. Pass "unset" to clear.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		level := strings.Join(args, " ")
		setCmd := commands.NewSetActivityCommand(GetJournal(), dayDate, level)
		if err := setCmd.Validate(); err != nil {
			return err
		}
		day, err := setCmd.Execute(context.Background())
		if err != nil {
			return err
		}
		if err := SaveJournal(); err != nil {
			return err
		}
		fmt.Printf("%s activity: %s\n", day.Date, day.Activity.Label())
		return nil
	},
}

var dayNotesCmd = &cobra.Command{
	Use:   "notes <text>",
	Short: "Set the day's free-form notes",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text := strings.Join(args, " ")
		day, err := commands.NewSetNotesCommand(GetJournal(), dayDate, text).Execute(context.Background())
		if err != nil {
			return err
		}
		if err := SaveJournal(); err != nil {
			return err
		}
		fmt.Printf("%s notes saved\n", day.Date)
		return nil
	},
}

func tagLine(items []domain.CatalogItem) string {
	if len(items) == 0 {
		return "(none)"
	}
	names := make([]string, len(items))
	for i, item := range items {
		names[i] = item.Name
	}
	return strings.Join(names, ", ")
}

func init() {
	dayCmd.PersistentFlags().StringVarP(&dayDate, "date", "d", domain.TodayKey(), "day to operate on (YYYY-MM-DD)")
	dayCmd.AddCommand(dayShowCmd)
	dayCmd.AddCommand(dayFeelingCmd)
	dayCmd.AddCommand(dayActivityCmd)
	dayCmd.AddCommand(dayNotesCmd)
	rootCmd.AddCommand(dayCmd)
}
