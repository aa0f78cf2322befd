package domain

import (
	"strings"
	"testing"
)

func TestBuildCSV(t *testing.T) {
	catalog := []CatalogItem{
		{ID: "f1", Name: "Coffee", Kind: KindFood},
		{ID: "s1", Name: "Headache", Kind: KindSymptom},
	}

	t.Run("empty collection yields only the header", func(t *testing.T) {
		got := BuildCSV(nil, catalog)
		want := "date,overallFeeling,activityLevel,foods,symptoms"
		if got != want {
			t.Errorf("expected %q, got %q", want, got)
		}
	})

	t.Run("single day matches the export contract byte for byte", func(t *testing.T) {
		days := []DayLog{{
			Date:       "2026-01-01",
			Feeling:    FeelingBad,
			Activity:   ActivityLow,
			FoodIDs:    []string{"f1"},
			SymptomIDs: []string{"s1"},
		}}
		got := BuildCSV(days, catalog)
		want := "date,overallFeeling,activityLevel,foods,symptoms\n2026-01-01,Bad,Low,Coffee,Headache"
		if got != want {
			t.Errorf("expected %q, got %q", want, got)
		}
	})

	t.Run("row count and ordering", func(t *testing.T) {
		days := []DayLog{
			{Date: "2026-01-03"},
			{Date: "2026-01-01"},
			{Date: "2026-01-02"},
		}
		got := BuildCSV(days, catalog)
		lines := strings.Split(got, "\n")
		if len(lines) != len(days)+1 {
			t.Fatalf("expected %d lines, got %d", len(days)+1, len(lines))
		}
		for i, date := range []string{"2026-01-01", "2026-01-02", "2026-01-03"} {
			if !strings.HasPrefix(lines[i+1], date+",") {
				t.Errorf("expected row %d for %s, got %q", i+1, date, lines[i+1])
			}
		}
	})

	t.Run("unset enums become empty fields", func(t *testing.T) {
		got := BuildCSV([]DayLog{{Date: "2026-01-01"}}, catalog)
		if !strings.HasSuffix(got, "\n2026-01-01,,,,") {
			t.Errorf("expected empty fields for unset values, got %q", got)
		}
	})

	t.Run("multiple tags join with semicolons inside one field", func(t *testing.T) {
		cat := append(catalog, CatalogItem{ID: "f2", Name: "Tea", Kind: KindFood})
		days := []DayLog{{Date: "2026-01-01", FoodIDs: []string{"f1", "f2"}}}
		got := BuildCSV(days, cat)
		if !strings.Contains(got, ",Coffee; Tea,") {
			t.Errorf("expected foods joined with \"; \", got %q", got)
		}
	})

	t.Run("dangling ids are dropped", func(t *testing.T) {
		days := []DayLog{{Date: "2026-01-01", FoodIDs: []string{"ghost", "f1"}}}
		got := BuildCSV(days, catalog)
		if !strings.Contains(got, ",Coffee,") {
			t.Errorf("expected only resolvable names, got %q", got)
		}
	})
}

func TestCSVEscape(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "Coffee", "Coffee"},
		{"comma", "Bread, Toasted", `"Bread, Toasted"`},
		{"quote", `So "fresh"`, `"So ""fresh"""`},
		{"newline", "line1\nline2", "\"line1\nline2\""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := csvEscape(tt.in); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestBuildCSVEscapesTagNames(t *testing.T) {
	catalog := []CatalogItem{{ID: "f1", Name: "Fish, Raw", Kind: KindFood}}
	days := []DayLog{{Date: "2026-01-01", FoodIDs: []string{"f1"}}}
	got := BuildCSV(days, catalog)
	if !strings.Contains(got, `"Fish, Raw"`) {
		t.Errorf("expected comma-bearing name to be quoted, got %q", got)
	}
}
