package application

import "diario/internal/domain"

// Selector memoization: each distinct (date, kind) pair keeps its own
// cache entry, keyed by the identity of its inputs: the day record
// pointer (replaced wholesale on every mutation of that day) and the
// catalog revision. A cached result is served until either input changes.

type dayItemsKey struct {
	date string
	kind domain.ItemKind
}

type dayItemsEntry struct {
	day    *domain.DayLog
	catRev uint64
	result []domain.CatalogItem
}

type byKindEntry struct {
	catRev uint64
	result []domain.CatalogItem
}

// SelectCatalogItems returns all catalog items in store order.
func (j *Journal) SelectCatalogItems() []domain.CatalogItem {
	return j.catalog.Items()
}

// SelectCatalogByKind returns all items of the given kind in store order,
// unsorted; ranking for search UIs is the picker's concern.
func (j *Journal) SelectCatalogByKind(kind domain.ItemKind) []domain.CatalogItem {
	entry := j.byKind[kind]
	if entry != nil && entry.catRev == j.catalog.Revision() {
		return entry.result
	}
	result := j.catalog.ByKind(kind)
	j.byKind[kind] = &byKindEntry{catRev: j.catalog.Revision(), result: result}
	return result
}

// SelectDayLog returns the stored record for date, or a synthesized
// default with the requested (canonicalized) key and empty tag lists when
// absent. Never mutates the store.
func (j *Journal) SelectDayLog(date string) domain.DayLog {
	if day, ok := j.days.Get(date); ok {
		return *day
	}
	return domain.DayLog{
		Date:       domain.CanonicalDayKey(date),
		SymptomIDs: []string{},
		FoodIDs:    []string{},
	}
}

// SelectDayItems resolves the day's id list for kind through the catalog,
// dropping dangling ids. Result order matches the id list, i.e. the order
// tags were added that day.
func (j *Journal) SelectDayItems(date string, kind domain.ItemKind) []domain.CatalogItem {
	key := dayItemsKey{date: domain.CanonicalDayKey(date), kind: kind}
	day, _ := j.days.Get(key.date)

	entry := j.dayItems[key]
	if entry != nil && entry.day == day && entry.catRev == j.catalog.Revision() {
		return entry.result
	}

	var result []domain.CatalogItem
	if day != nil {
		for _, id := range day.IDs(kind) {
			if item, ok := j.catalog.Lookup(id); ok {
				result = append(result, item)
			}
		}
	}
	j.dayItems[key] = &dayItemsEntry{day: day, catRev: j.catalog.Revision(), result: result}
	return result
}

// SelectAllDays returns every stored day record, unsorted. Trend and
// export callers sort by day key themselves.
func (j *Journal) SelectAllDays() []domain.DayLog {
	return j.days.All()
}

// LookupTag finds a catalog item by id.
func (j *Journal) LookupTag(id string) (domain.CatalogItem, bool) {
	return j.catalog.Lookup(id)
}

// FindTag finds a catalog item of the given kind by normalized name.
func (j *Journal) FindTag(kind domain.ItemKind, name string) (domain.CatalogItem, bool) {
	return j.catalog.FindByName(kind, name)
}
