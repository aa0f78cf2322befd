package domain

import "slices"

// DayLog is one calendar day's journal record. Feeling, Activity, and
// Notes distinguish "unset" from every real value: the enums use their
// zero value and Notes uses a nil pointer, so an explicitly empty note
// survives a snapshot round-trip.
type DayLog struct {
	Date       string   `json:"date"`
	Feeling    Feeling  `json:"overallFeeling,omitempty"`
	Activity   Activity `json:"activityLevel,omitempty"`
	SymptomIDs []string `json:"symptomIds"`
	FoodIDs    []string `json:"foodIds"`
	Notes      *string  `json:"notes,omitempty"`
}

// IDs returns the tag list for kind. The returned slice must not be
// mutated.
func (d DayLog) IDs(kind ItemKind) []string {
	if kind == KindSymptom {
		return d.SymptomIDs
	}
	return d.FoodIDs
}

// HasID reports whether the kind's list contains id.
func (d DayLog) HasID(id string, kind ItemKind) bool {
	return slices.Contains(d.IDs(kind), id)
}

// DayLogs keys day records by canonical day key. Records are materialized
// lazily the first time any field for their date is set and never deleted;
// clearing every field leaves an empty but present record.
//
// Every mutation replaces the stored record wholesale, so a record pointer
// doubles as its identity: selectors cache per-day joins and recompute
// only when the pointer changes.
type DayLogs struct {
	byDate map[string]*DayLog
}

// NewDayLogs builds the store from existing records, e.g. a loaded
// snapshot. Keys are normalized before indexing.
func NewDayLogs(records map[string]DayLog) *DayLogs {
	d := &DayLogs{byDate: make(map[string]*DayLog, len(records))}
	for _, rec := range records {
		day := rec
		day.Date = CanonicalDayKey(day.Date)
		if day.SymptomIDs == nil {
			day.SymptomIDs = []string{}
		}
		if day.FoodIDs == nil {
			day.FoodIDs = []string{}
		}
		d.byDate[day.Date] = &day
	}
	return d
}

// Get returns the stored record for date, if any. The returned pointer is
// stable until the next mutation of that date.
func (d *DayLogs) Get(date string) (*DayLog, bool) {
	day, ok := d.byDate[CanonicalDayKey(date)]
	return day, ok
}

// All returns a copy of every stored record, in no particular order.
func (d *DayLogs) All() []DayLog {
	out := make([]DayLog, 0, len(d.byDate))
	for _, day := range d.byDate {
		out = append(out, *day)
	}
	return out
}

// ByDate returns every stored record keyed by day key, as value copies.
func (d *DayLogs) ByDate() map[string]DayLog {
	out := make(map[string]DayLog, len(d.byDate))
	for key, day := range d.byDate {
		out[key] = *day
	}
	return out
}

// mutate materializes the record for date, applies fn to a fresh copy,
// and stores the copy under a new pointer.
func (d *DayLogs) mutate(date string, fn func(*DayLog)) {
	key := CanonicalDayKey(date)
	next := DayLog{Date: key, SymptomIDs: []string{}, FoodIDs: []string{}}
	if prev, ok := d.byDate[key]; ok {
		next = *prev
		next.SymptomIDs = slices.Clone(prev.SymptomIDs)
		next.FoodIDs = slices.Clone(prev.FoodIDs)
	}
	fn(&next)
	d.byDate[key] = &next
}

// SetFeeling sets the day's overall feeling; the zero value clears it.
func (d *DayLogs) SetFeeling(date string, feeling Feeling) {
	d.mutate(date, func(day *DayLog) {
		day.Feeling = feeling
	})
}

// SetActivity sets the day's activity level; the zero value clears it.
func (d *DayLogs) SetActivity(date string, activity Activity) {
	d.mutate(date, func(day *DayLog) {
		day.Activity = activity
	})
}

// SetNotes sets the day's notes. An empty string is a real value and is
// stored as empty, not removed.
func (d *DayLogs) SetNotes(date, text string) {
	d.mutate(date, func(day *DayLog) {
		day.Notes = &text
	})
}

// AddItem appends itemID to the end of the kind's list unless already
// present, preserving insertion order. Referential validity against the
// catalog is not checked here.
func (d *DayLogs) AddItem(date, itemID string, kind ItemKind) {
	d.mutate(date, func(day *DayLog) {
		if day.HasID(itemID, kind) {
			return
		}
		if kind == KindSymptom {
			day.SymptomIDs = append(day.SymptomIDs, itemID)
		} else {
			day.FoodIDs = append(day.FoodIDs, itemID)
		}
	})
}

// RemoveItem removes itemID from the kind's list; a no-op when absent.
func (d *DayLogs) RemoveItem(date, itemID string, kind ItemKind) {
	d.mutate(date, func(day *DayLog) {
		remove := func(ids []string) []string {
			if i := slices.Index(ids, itemID); i >= 0 {
				return slices.Delete(ids, i, i+1)
			}
			return ids
		}
		if kind == KindSymptom {
			day.SymptomIDs = remove(day.SymptomIDs)
		} else {
			day.FoodIDs = remove(day.FoodIDs)
		}
	})
}
