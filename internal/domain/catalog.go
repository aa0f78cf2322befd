package domain

import (
	"slices"
	"time"
)

// ItemKind partitions tags into the two namespaces a day record keeps
// separate lists for.
type ItemKind string

const (
	KindFood    ItemKind = "food"
	KindSymptom ItemKind = "symptom"
)

// ParseItemKind maps user input to an ItemKind.
func ParseItemKind(s string) (ItemKind, bool) {
	switch NormalizeName(s) {
	case "food", "foods", "drink", "food/drink":
		return KindFood, true
	case "symptom", "symptoms":
		return KindSymptom, true
	}
	return "", false
}

// CatalogItem is a reusable named tag referenced by id from day records.
// Ids are stable once created; items are never deleted.
type CatalogItem struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	Kind      ItemKind  `json:"type"`
}

// Catalog holds every tag ever created, in creation order.
//
// Mutations bump the revision and replace the backing slice, so readers
// that cached a previous Items() result can detect staleness by revision
// alone. The catalog never deduplicates by name: that is the creation
// flow's job (see commands.CreateTagCommand).
type Catalog struct {
	items []CatalogItem
	rev   uint64
}

// NewCatalog builds a catalog from existing items, e.g. a loaded snapshot.
// Names are normalized the same way writes normalize them.
func NewCatalog(items []CatalogItem) *Catalog {
	c := &Catalog{}
	for _, item := range items {
		c.AddItem(item)
	}
	c.rev = 1
	return c
}

// Items returns the catalog in store order. Callers must not mutate the
// returned slice.
func (c *Catalog) Items() []CatalogItem {
	return c.items
}

// Revision changes every time the catalog is mutated.
func (c *Catalog) Revision() uint64 {
	return c.rev
}

// AddItem inserts item with its name normalized. When an item with the
// same id already exists this is a no-op, not an update.
func (c *Catalog) AddItem(item CatalogItem) {
	for _, existing := range c.items {
		if existing.ID == item.ID {
			return
		}
	}
	item.Name = CapitalizeWords(item.Name)
	next := slices.Clone(c.items)
	c.items = append(next, item)
	c.rev++
}

// UpsertItem inserts item when absent, otherwise replaces the existing
// entry in place, preserving its position. Names are normalized exactly
// as in AddItem.
func (c *Catalog) UpsertItem(item CatalogItem) {
	item.Name = CapitalizeWords(item.Name)
	next := slices.Clone(c.items)
	for i, existing := range next {
		if existing.ID == item.ID {
			next[i] = item
			c.items = next
			c.rev++
			return
		}
	}
	c.items = append(next, item)
	c.rev++
}

// ByKind returns all items of the given kind, in store order.
func (c *Catalog) ByKind(kind ItemKind) []CatalogItem {
	var out []CatalogItem
	for _, item := range c.items {
		if item.Kind == kind {
			out = append(out, item)
		}
	}
	return out
}

// Lookup finds an item by id.
func (c *Catalog) Lookup(id string) (CatalogItem, bool) {
	for _, item := range c.items {
		if item.ID == id {
			return item, true
		}
	}
	return CatalogItem{}, false
}

// FindByName finds an item of the given kind whose normalized name equals
// the normalized query. This is the comparison the creation flow uses to
// avoid minting duplicate tags.
func (c *Catalog) FindByName(kind ItemKind, name string) (CatalogItem, bool) {
	want := NormalizeName(name)
	for _, item := range c.items {
		if item.Kind == kind && NormalizeName(item.Name) == want {
			return item, true
		}
	}
	return CatalogItem{}, false
}
