package domain

import "testing"

func TestSortMatches(t *testing.T) {
	items := []CatalogItem{
		{ID: "1", Name: "Black Tea", Kind: KindFood},
		{ID: "2", Name: "Coffee", Kind: KindFood},
		{ID: "3", Name: "Iced Coffee", Kind: KindFood},
		{ID: "4", Name: "Cocoa", Kind: KindFood},
	}

	t.Run("empty query sorts alphabetically", func(t *testing.T) {
		got := SortMatches(items, "")
		want := []string{"Black Tea", "Cocoa", "Coffee", "Iced Coffee"}
		for i, name := range want {
			if got[i].Name != name {
				t.Fatalf("expected order %v, got %v", want, names(got))
			}
		}
	})

	t.Run("prefix before substring before no match", func(t *testing.T) {
		got := SortMatches(items, "co")
		want := []string{"Cocoa", "Coffee", "Iced Coffee", "Black Tea"}
		for i, name := range want {
			if got[i].Name != name {
				t.Fatalf("expected order %v, got %v", want, names(got))
			}
		}
	})

	t.Run("ties break alphabetically", func(t *testing.T) {
		got := SortMatches(items, "coffee")
		if got[0].Name != "Coffee" || got[1].Name != "Iced Coffee" {
			t.Errorf("expected Coffee then Iced Coffee, got %v", names(got))
		}
	})

	t.Run("input is not modified", func(t *testing.T) {
		SortMatches(items, "co")
		if items[0].Name != "Black Tea" {
			t.Error("expected input slice to keep its order")
		}
	})
}

func names(items []CatalogItem) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.Name
	}
	return out
}

func TestHasExactMatch(t *testing.T) {
	items := []CatalogItem{{ID: "1", Name: "Iced Coffee", Kind: KindFood}}

	tests := []struct {
		query string
		want  bool
	}{
		{"Iced Coffee", true},
		{"iced coffee", true},
		{" iced coffee ", true},
		{"iced", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := HasExactMatch(items, tt.query); got != tt.want {
			t.Errorf("HasExactMatch(%q) = %v, expected %v", tt.query, got, tt.want)
		}
	}
}
