package commands

import (
	"context"
	"strings"
	"testing"

	"diario/internal/application"
	"diario/internal/domain"
)

func TestCreateTagCommand(t *testing.T) {
	ctx := context.Background()

	t.Run("mints a new tag and references it from the day", func(t *testing.T) {
		j := application.New()
		result, err := NewCreateTagCommand(j, "2026-01-01", "food", "iced coffee").Execute(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.Created {
			t.Error("expected a new tag to be created")
		}
		if result.Item.Name != "Iced Coffee" {
			t.Errorf("expected normalized name Iced Coffee, got %q", result.Item.Name)
		}
		if result.Item.ID == "" {
			t.Error("expected a minted id")
		}

		items := j.SelectDayItems("2026-01-01", domain.KindFood)
		if len(items) != 1 || items[0].ID != result.Item.ID {
			t.Errorf("expected the day to reference the new tag, got %v", items)
		}
	})

	t.Run("reuses an existing tag by normalized name", func(t *testing.T) {
		j := application.New()
		first, err := NewCreateTagCommand(j, "2026-01-01", "food", "Coffee").Execute(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		second, err := NewCreateTagCommand(j, "2026-01-02", "food", "  coffee ").Execute(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if second.Created {
			t.Error("expected the existing tag to be reused")
		}
		if second.Item.ID != first.Item.ID {
			t.Errorf("expected same id %s, got %s", first.Item.ID, second.Item.ID)
		}
		if len(j.SelectCatalogItems()) != 1 {
			t.Errorf("expected a single catalog item, got %d", len(j.SelectCatalogItems()))
		}
	})

	t.Run("kinds keep separate namespaces", func(t *testing.T) {
		j := application.New()
		NewCreateTagCommand(j, "2026-01-01", "food", "Ginger").Execute(ctx)
		result, err := NewCreateTagCommand(j, "2026-01-01", "symptom", "Ginger").Execute(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.Created {
			t.Error("expected a same-named tag of the other kind to be minted")
		}
	})

	t.Run("rejects blank names and unknown kinds", func(t *testing.T) {
		j := application.New()
		if _, err := NewCreateTagCommand(j, "2026-01-01", "food", "   ").Execute(ctx); err == nil {
			t.Error("expected error for blank name")
		}
		if _, err := NewCreateTagCommand(j, "2026-01-01", "mood", "Tired").Execute(ctx); err == nil {
			t.Error("expected error for unknown kind")
		}
	})
}

func TestAddRemoveTagCommands(t *testing.T) {
	ctx := context.Background()

	t.Run("add twice then remove empties the list", func(t *testing.T) {
		j := application.New()
		j.AddCatalogItem(domain.CatalogItem{ID: "sym1", Name: "Headache", Kind: domain.KindSymptom})

		NewAddTagCommand(j, "2026-01-02", "symptom", "sym1").Execute(ctx)
		NewAddTagCommand(j, "2026-01-02", "symptom", "sym1").Execute(ctx)
		NewRemoveTagCommand(j, "2026-01-02", "symptom", "sym1").Execute(ctx)

		day := j.SelectDayLog("2026-01-02")
		if len(day.SymptomIDs) != 0 {
			t.Errorf("expected empty symptomIds, got %v", day.SymptomIDs)
		}
	})

	t.Run("remove resolves names", func(t *testing.T) {
		j := application.New()
		j.AddCatalogItem(domain.CatalogItem{ID: "f1", Name: "Coffee", Kind: domain.KindFood})
		NewAddTagCommand(j, "2026-01-02", "food", "f1").Execute(ctx)

		if err := NewRemoveTagCommand(j, "2026-01-02", "food", "coffee").Execute(ctx); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(j.SelectDayLog("2026-01-02").FoodIDs) != 0 {
			t.Error("expected tag removed by name")
		}
	})

	t.Run("unknown kind errors", func(t *testing.T) {
		j := application.New()
		err := NewAddTagCommand(j, "2026-01-02", "mood", "x").Execute(ctx)
		if err == nil || !strings.Contains(err.Error(), "unknown tag kind") {
			t.Errorf("expected unknown kind error, got %v", err)
		}
	})
}
