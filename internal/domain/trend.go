package domain

import "slices"

// ScorePoint is one charted feeling observation.
type ScorePoint struct {
	Date  string
	Score int
}

// FeelingScoreSeries maps days with a set feeling to 1..5 scores, sorted
// ascending by day key. Days without a feeling are excluded outright; the
// series has no interpolation or zero-fill.
func FeelingScoreSeries(days []DayLog) []ScorePoint {
	var points []ScorePoint
	for _, day := range days {
		if !day.Feeling.IsSet() {
			continue
		}
		points = append(points, ScorePoint{Date: day.Date, Score: day.Feeling.Score()})
	}
	slices.SortFunc(points, func(a, b ScorePoint) int {
		return CompareDayKeys(a.Date, b.Date)
	})
	return points
}

// CountPoint is one charted per-day count.
type CountPoint struct {
	Date  string
	Count int
}

// SymptomsPerDay counts logged symptoms for each day, sorted ascending by
// day key.
func SymptomsPerDay(days []DayLog) []CountPoint {
	points := make([]CountPoint, 0, len(days))
	for _, day := range days {
		points = append(points, CountPoint{Date: day.Date, Count: len(day.SymptomIDs)})
	}
	slices.SortFunc(points, func(a, b CountPoint) int {
		return CompareDayKeys(a.Date, b.Date)
	})
	return points
}

// TrendFilter restricts a day collection. Zero-valued fields are inactive;
// active fields must all match.
type TrendFilter struct {
	FoodID    string
	SymptomID string
	Activity  Activity
}

// Matches reports whether day satisfies every active filter.
func (f TrendFilter) Matches(day DayLog) bool {
	if f.FoodID != "" && !day.HasID(f.FoodID, KindFood) {
		return false
	}
	if f.SymptomID != "" && !day.HasID(f.SymptomID, KindSymptom) {
		return false
	}
	if f.Activity.IsSet() && day.Activity != f.Activity {
		return false
	}
	return true
}

// FilterDays returns the days matching every active filter, in input order.
func FilterDays(days []DayLog, f TrendFilter) []DayLog {
	var out []DayLog
	for _, day := range days {
		if f.Matches(day) {
			out = append(out, day)
		}
	}
	return out
}

// SortDays returns a copy of days sorted ascending by day key.
func SortDays(days []DayLog) []DayLog {
	out := slices.Clone(days)
	slices.SortFunc(out, func(a, b DayLog) int {
		return CompareDayKeys(a.Date, b.Date)
	})
	return out
}

// CooccurrenceCount is the number of days on which one symptom was logged
// together with the filtered food.
type CooccurrenceCount struct {
	Symptom CatalogItem
	Days    int
}

// Cooccurrence counts, for each candidate symptom, the days that logged
// both foodID and that symptom, optionally restricted to days with the
// given activity level. Results follow the symptoms slice, i.e. catalog
// order for that kind.
func Cooccurrence(days []DayLog, symptoms []CatalogItem, foodID string, activity Activity) []CooccurrenceCount {
	base := FilterDays(days, TrendFilter{Activity: activity})
	counts := make([]CooccurrenceCount, 0, len(symptoms))
	for _, symptom := range symptoms {
		n := 0
		for _, day := range base {
			if day.HasID(foodID, KindFood) && day.HasID(symptom.ID, KindSymptom) {
				n++
			}
		}
		counts = append(counts, CooccurrenceCount{Symptom: symptom, Days: n})
	}
	return counts
}
