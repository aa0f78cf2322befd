package domain

import (
	"testing"
	"time"
)

func TestCatalogAddItem(t *testing.T) {
	t.Run("normalizes name on write", func(t *testing.T) {
		c := NewCatalog(nil)
		c.AddItem(CatalogItem{ID: "f1", Name: "  iced COFFEE ", Kind: KindFood})

		item, ok := c.Lookup("f1")
		if !ok {
			t.Fatal("expected item f1 to exist")
		}
		if item.Name != "Iced Coffee" {
			t.Errorf("expected name %q, got %q", "Iced Coffee", item.Name)
		}
	})

	t.Run("is idempotent by id, not an update", func(t *testing.T) {
		c := NewCatalog(nil)
		c.AddItem(CatalogItem{ID: "f1", Name: "Coffee", Kind: KindFood})
		c.AddItem(CatalogItem{ID: "f1", Name: "Tea", Kind: KindFood})

		if len(c.Items()) != 1 {
			t.Fatalf("expected 1 item, got %d", len(c.Items()))
		}
		item, _ := c.Lookup("f1")
		if item.Name != "Coffee" {
			t.Errorf("expected second add to be a no-op, got name %q", item.Name)
		}
	})

	t.Run("does not dedupe by name", func(t *testing.T) {
		c := NewCatalog(nil)
		c.AddItem(CatalogItem{ID: "f1", Name: "Coffee", Kind: KindFood})
		c.AddItem(CatalogItem{ID: "f2", Name: "coffee", Kind: KindFood})

		if len(c.Items()) != 2 {
			t.Errorf("expected 2 items (store is permissive about names), got %d", len(c.Items()))
		}
	})
}

func TestCatalogUpsertItem(t *testing.T) {
	t.Run("replaces in place preserving position", func(t *testing.T) {
		c := NewCatalog(nil)
		c.AddItem(CatalogItem{ID: "f1", Name: "Coffee", Kind: KindFood})
		c.AddItem(CatalogItem{ID: "f2", Name: "Tea", Kind: KindFood})

		c.UpsertItem(CatalogItem{ID: "f1", Name: "espresso", Kind: KindFood})

		items := c.Items()
		if items[0].ID != "f1" || items[0].Name != "Espresso" {
			t.Errorf("expected f1 Espresso at position 0, got %s %s", items[0].ID, items[0].Name)
		}
		if items[1].ID != "f2" {
			t.Errorf("expected f2 to keep position 1, got %s", items[1].ID)
		}
	})

	t.Run("inserts when absent", func(t *testing.T) {
		c := NewCatalog(nil)
		c.UpsertItem(CatalogItem{ID: "s1", Name: "headache", Kind: KindSymptom})

		item, ok := c.Lookup("s1")
		if !ok || item.Name != "Headache" {
			t.Errorf("expected upsert to insert Headache, got %v (found=%v)", item, ok)
		}
	})
}

func TestCatalogRevision(t *testing.T) {
	c := NewCatalog(nil)
	before := c.Revision()

	c.AddItem(CatalogItem{ID: "f1", Name: "Coffee", Kind: KindFood})
	if c.Revision() == before {
		t.Error("expected revision to change after AddItem")
	}

	mid := c.Revision()
	c.AddItem(CatalogItem{ID: "f1", Name: "Coffee", Kind: KindFood})
	if c.Revision() != mid {
		t.Error("expected no-op insert to leave revision unchanged")
	}
}

func TestCatalogByKind(t *testing.T) {
	c := NewCatalog([]CatalogItem{
		{ID: "f1", Name: "Coffee", Kind: KindFood, CreatedAt: time.Now()},
		{ID: "s1", Name: "Headache", Kind: KindSymptom},
		{ID: "f2", Name: "Bread", Kind: KindFood},
	})

	foods := c.ByKind(KindFood)
	if len(foods) != 2 {
		t.Fatalf("expected 2 foods, got %d", len(foods))
	}
	// Store order, not sorted.
	if foods[0].ID != "f1" || foods[1].ID != "f2" {
		t.Errorf("expected store order f1,f2, got %s,%s", foods[0].ID, foods[1].ID)
	}
}

func TestCatalogFindByName(t *testing.T) {
	c := NewCatalog([]CatalogItem{
		{ID: "f1", Name: "Iced Coffee", Kind: KindFood},
		{ID: "s1", Name: "Headache", Kind: KindSymptom},
	})

	tests := []struct {
		name   string
		kind   ItemKind
		query  string
		wantID string
		found  bool
	}{
		{"exact", KindFood, "Iced Coffee", "f1", true},
		{"case insensitive", KindFood, "iced coffee", "f1", true},
		{"trimmed", KindFood, "  iced coffee  ", "f1", true},
		{"wrong kind", KindSymptom, "Iced Coffee", "", false},
		{"no match", KindFood, "Tea", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item, ok := c.FindByName(tt.kind, tt.query)
			if ok != tt.found {
				t.Fatalf("expected found=%v, got %v", tt.found, ok)
			}
			if ok && item.ID != tt.wantID {
				t.Errorf("expected id %s, got %s", tt.wantID, item.ID)
			}
		})
	}
}

func TestParseItemKind(t *testing.T) {
	tests := []struct {
		in   string
		want ItemKind
		ok   bool
	}{
		{"food", KindFood, true},
		{"Foods", KindFood, true},
		{"symptom", KindSymptom, true},
		{"SYMPTOMS", KindSymptom, true},
		{"mood", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseItemKind(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseItemKind(%q) = %v,%v; expected %v,%v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}
