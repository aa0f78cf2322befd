package commands

import (
	"context"
	"errors"
	"testing"

	"diario/internal/application"
	"diario/internal/domain"
)

func trendJournal() *application.Journal {
	j := application.New()
	j.AddCatalogItem(domain.CatalogItem{ID: "f1", Name: "Coffee", Kind: domain.KindFood})
	j.AddCatalogItem(domain.CatalogItem{ID: "s1", Name: "Headache", Kind: domain.KindSymptom})
	j.AddCatalogItem(domain.CatalogItem{ID: "s2", Name: "Nausea", Kind: domain.KindSymptom})

	j.SetFeeling("2026-01-01", domain.FeelingBad)
	j.AddItemToDay("2026-01-01", "f1", domain.KindFood)
	j.AddItemToDay("2026-01-01", "s1", domain.KindSymptom)

	j.SetFeeling("2026-01-02", domain.FeelingGood)
	j.SetActivity("2026-01-02", domain.ActivityHigh)
	j.AddItemToDay("2026-01-02", "f1", domain.KindFood)
	j.AddItemToDay("2026-01-02", "s2", domain.KindSymptom)
	return j
}

func TestFeelingSeriesCommand(t *testing.T) {
	j := trendJournal()

	series, err := NewFeelingSeriesCommand(j, domain.TrendFilter{}).Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(series) != 2 || series[0].Score != 2 || series[1].Score != 4 {
		t.Errorf("expected scores [2 4], got %v", series)
	}

	filtered, _ := NewFeelingSeriesCommand(j, domain.TrendFilter{Activity: domain.ActivityHigh}).Execute(context.Background())
	if len(filtered) != 1 || filtered[0].Date != "2026-01-02" {
		t.Errorf("expected only the High-activity day, got %v", filtered)
	}
}

func TestCooccurrenceCommand(t *testing.T) {
	ctx := context.Background()
	j := trendJournal()

	t.Run("resolves the food by name", func(t *testing.T) {
		counts, err := NewCooccurrenceCommand(j, "coffee", "").Execute(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(counts) != 2 {
			t.Fatalf("expected one count per symptom, got %d", len(counts))
		}
		if counts[0].Days != 1 || counts[1].Days != 1 {
			t.Errorf("expected each symptom on 1 day, got %d,%d", counts[0].Days, counts[1].Days)
		}
	})

	t.Run("unknown food", func(t *testing.T) {
		_, err := NewCooccurrenceCommand(j, "tea", "").Execute(ctx)
		if !errors.Is(err, application.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("activity filter", func(t *testing.T) {
		counts, err := NewCooccurrenceCommand(j, "coffee", "high").Execute(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if counts[0].Days != 0 || counts[1].Days != 1 {
			t.Errorf("expected counts 0,1 under High activity, got %d,%d", counts[0].Days, counts[1].Days)
		}
	})
}
