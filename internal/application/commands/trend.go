package commands

import (
	"context"
	"fmt"

	"diario/internal/application"
	"diario/internal/domain"
)

// FeelingSeriesCommand produces the chart-ready feeling-score series.
type FeelingSeriesCommand struct {
	journal *application.Journal
	Filter  domain.TrendFilter
}

// NewFeelingSeriesCommand creates a new FeelingSeriesCommand
func NewFeelingSeriesCommand(journal *application.Journal, filter domain.TrendFilter) *FeelingSeriesCommand {
	return &FeelingSeriesCommand{journal: journal, Filter: filter}
}

// Execute runs the feeling series command
func (c *FeelingSeriesCommand) Execute(ctx context.Context) ([]domain.ScorePoint, error) {
	days := domain.FilterDays(c.journal.SelectAllDays(), c.Filter)
	return domain.FeelingScoreSeries(days), nil
}

// CooccurrenceCommand counts, per symptom, the days a chosen food was
// logged together with that symptom. The food may be addressed by id or
// by name; the activity filter is optional.
type CooccurrenceCommand struct {
	journal  *application.Journal
	Food     string
	Activity string
}

// NewCooccurrenceCommand creates a new CooccurrenceCommand
func NewCooccurrenceCommand(journal *application.Journal, food, activity string) *CooccurrenceCommand {
	return &CooccurrenceCommand{journal: journal, Food: food, Activity: activity}
}

// Execute runs the co-occurrence command
func (c *CooccurrenceCommand) Execute(ctx context.Context) ([]domain.CooccurrenceCount, error) {
	activity, ok := domain.ParseActivity(c.Activity)
	if !ok {
		return nil, &application.ValidationError{
			Field:   "activity",
			Message: fmt.Sprintf("unknown level %q", c.Activity),
		}
	}

	food, ok := c.journal.LookupTag(c.Food)
	if !ok {
		food, ok = c.journal.FindTag(domain.KindFood, c.Food)
	}
	if !ok {
		return nil, fmt.Errorf("food %q: %w", c.Food, application.ErrNotFound)
	}

	symptoms := c.journal.SelectCatalogByKind(domain.KindSymptom)
	return domain.Cooccurrence(c.journal.SelectAllDays(), symptoms, food.ID, activity), nil
}
