package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"diario/internal/application"
	"diario/internal/application/commands"
	"diario/internal/domain"
)

var (
	trendFood     string
	trendSymptom  string
	trendActivity string
)

var trendCmd = &cobra.Command{
	Use:   "trend",
	Short: "Chart journal trends",
	Long: `Chart trends over the logged days.

All filters are optional and combine; a day must match every active
filter to be included.`,
}

var trendFeelingCmd = &cobra.Command{
	Use:   "feeling",
	Short: "Chart the overall feeling over time",
	RunE: func(cmd *cobra.Command, args []string) error {
		journal := GetJournal()
		filter, err := buildFilter(journal)
		if err != nil {
			return err
		}

		points, err := commands.NewFeelingSeriesCommand(journal, filter).Execute(context.Background())
		if err != nil {
			return err
		}
		if len(points) == 0 {
			fmt.Println("No feelings logged")
			return nil
		}
		for _, p := range points {
			fmt.Printf("%s %s %d\n", p.Date, strings.Repeat("█", p.Score*2), p.Score)
		}
		return nil
	},
}

var trendCooccurrenceCmd = &cobra.Command{
	Use:   "cooccurrence",
	Short: "Count symptom days for a food",
	Long: `For one food, count on how many days each symptom was logged
together with it. Requires --food; --activity restricts the counted days.

Examples:
  diario-cli trend cooccurrence --food coffee
  diario-cli trend cooccurrence --food coffee --activity high`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if trendFood == "" {
			return fmt.Errorf("--food is required")
		}
		counts, err := commands.NewCooccurrenceCommand(GetJournal(), trendFood, trendActivity).Execute(context.Background())
		if err != nil {
			return err
		}
		for _, c := range counts {
			fmt.Printf("%-24s %d\n", c.Symptom.Name, c.Days)
		}
		return nil
	},
}

// buildFilter resolves the filter flags against the catalog. Food and
// symptom accept a tag name or id.
func buildFilter(journal *application.Journal) (domain.TrendFilter, error) {
	var filter domain.TrendFilter

	if trendFood != "" {
		item, ok := journal.LookupTag(trendFood)
		if !ok {
			item, ok = journal.FindTag(domain.KindFood, trendFood)
		}
		if !ok {
			return filter, fmt.Errorf("unknown food %q", trendFood)
		}
		filter.FoodID = item.ID
	}
	if trendSymptom != "" {
		item, ok := journal.LookupTag(trendSymptom)
		if !ok {
			item, ok = journal.FindTag(domain.KindSymptom, trendSymptom)
		}
		if !ok {
			return filter, fmt.Errorf("unknown symptom %q", trendSymptom)
		}
		filter.SymptomID = item.ID
	}
	if trendActivity != "" {
		activity, ok := domain.ParseActivity(trendActivity)
		if !ok {
			return filter, fmt.Errorf("unknown activity level %q", trendActivity)
		}
		filter.Activity = activity
	}

	return filter, nil
}

func init() {
	trendCmd.PersistentFlags().StringVar(&trendFood, "food", "", "restrict to days with this food (name or id)")
	trendCmd.PersistentFlags().StringVar(&trendSymptom, "symptom", "", "restrict to days with this symptom (name or id)")
	trendCmd.PersistentFlags().StringVar(&trendActivity, "activity", "", "restrict to days with this activity level")
	trendCmd.AddCommand(trendFeelingCmd)
	trendCmd.AddCommand(trendCooccurrenceCmd)
	rootCmd.AddCommand(trendCmd)
}
