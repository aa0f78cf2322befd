package commands

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"diario/internal/application"
	"diario/internal/domain"
)

func TestExportCSVCommand(t *testing.T) {
	ctx := context.Background()
	j := application.New()
	j.AddCatalogItem(domain.CatalogItem{ID: "f1", Name: "Coffee", Kind: domain.KindFood})
	j.AddCatalogItem(domain.CatalogItem{ID: "s1", Name: "Headache", Kind: domain.KindSymptom})
	j.SetFeeling("2026-01-01", domain.FeelingBad)
	j.SetActivity("2026-01-01", domain.ActivityLow)
	j.AddItemToDay("2026-01-01", "f1", domain.KindFood)
	j.AddItemToDay("2026-01-01", "s1", domain.KindSymptom)

	dir := t.TempDir()
	result, err := NewExportCSVCommand(j, dir).Execute(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Rows != 1 {
		t.Errorf("expected 1 exported row, got %d", result.Rows)
	}
	if filepath.Base(result.Path) != "symptom-tracker.csv" {
		t.Errorf("expected fixed export filename, got %s", result.Path)
	}

	data, err := os.ReadFile(result.Path)
	if err != nil {
		t.Fatalf("failed to read export: %v", err)
	}
	want := "date,overallFeeling,activityLevel,foods,symptoms\n2026-01-01,Bad,Low,Coffee,Headache"
	if string(data) != want {
		t.Errorf("expected %q, got %q", want, string(data))
	}
}

func TestBuildCSVCommand(t *testing.T) {
	j := application.New()
	csv, err := NewBuildCSVCommand(j).Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(csv, "date,overallFeeling") || strings.Contains(csv, "\n") {
		t.Errorf("expected only the header for an empty journal, got %q", csv)
	}
}
