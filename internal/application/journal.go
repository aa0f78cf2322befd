package application

import "diario/internal/domain"

// ChangeFunc receives the full state snapshot after a mutation. Persistence
// subscribers treat it as fire-and-forget: the journal never waits on them.
type ChangeFunc func(domain.Snapshot)

// Journal is the aggregate root owning the catalog and day-log stores. All
// mutations go through its named command methods, which enforce the store
// invariants and notify subscribers with a fresh snapshot.
//
// The journal is synchronous and unsynchronized by design: it models one
// logical UI thread, and every entrypoint must serialize access to it,
// either by running on a single goroutine or by locking around each call.
// Reads never observe a partially applied mutation because no operation
// yields mid-computation.
type Journal struct {
	catalog  *domain.Catalog
	days     *domain.DayLogs
	dayItems map[dayItemsKey]*dayItemsEntry
	byKind   map[domain.ItemKind]*byKindEntry
	onChange []ChangeFunc
}

// New creates an empty journal.
func New() *Journal {
	j := &Journal{}
	j.Replace(domain.EmptySnapshot())
	return j
}

// OnChange registers a subscriber invoked after every mutation.
func (j *Journal) OnChange(fn ChangeFunc) {
	j.onChange = append(j.onChange, fn)
}

// Replace swaps in a full state snapshot wholesale. This is the load half
// of the journal's only persistence-facing contract.
func (j *Journal) Replace(snap domain.Snapshot) {
	j.catalog = domain.NewCatalog(snap.CatalogItems)
	j.days = domain.NewDayLogs(snap.DayLogsByDate)
	j.dayItems = make(map[dayItemsKey]*dayItemsEntry)
	j.byKind = make(map[domain.ItemKind]*byKindEntry)
}

// Snapshot returns the current full state. This is the save half of the
// persistence contract.
func (j *Journal) Snapshot() domain.Snapshot {
	return domain.Snapshot{
		Version:       domain.SchemaVersion,
		CatalogItems:  append([]domain.CatalogItem{}, j.catalog.Items()...),
		DayLogsByDate: j.days.ByDate(),
	}
}

func (j *Journal) notify() {
	if len(j.onChange) == 0 {
		return
	}
	snap := j.Snapshot()
	for _, fn := range j.onChange {
		fn(snap)
	}
}

// AddCatalogItem inserts a tag definition; a no-op when the id exists.
func (j *Journal) AddCatalogItem(item domain.CatalogItem) {
	j.catalog.AddItem(item)
	j.notify()
}

// UpsertCatalogItem inserts or replaces a tag definition by id.
func (j *Journal) UpsertCatalogItem(item domain.CatalogItem) {
	j.catalog.UpsertItem(item)
	j.notify()
}

// SetFeeling sets a day's overall feeling; the zero value clears it.
func (j *Journal) SetFeeling(date string, feeling domain.Feeling) {
	j.days.SetFeeling(date, feeling)
	j.notify()
}

// SetActivity sets a day's activity level; the zero value clears it.
func (j *Journal) SetActivity(date string, activity domain.Activity) {
	j.days.SetActivity(date, activity)
	j.notify()
}

// SetNotes sets a day's notes; an empty string is stored, not removed.
func (j *Journal) SetNotes(date, text string) {
	j.days.SetNotes(date, text)
	j.notify()
}

// AddItemToDay appends a tag id to the day's list for kind, exactly once.
func (j *Journal) AddItemToDay(date, itemID string, kind domain.ItemKind) {
	j.days.AddItem(date, itemID, kind)
	j.notify()
}

// RemoveItemFromDay removes a tag id from the day's list for kind.
func (j *Journal) RemoveItemFromDay(date, itemID string, kind domain.ItemKind) {
	j.days.RemoveItem(date, itemID, kind)
	j.notify()
}
