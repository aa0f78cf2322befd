package domain

import (
	"strings"
	"time"
)

// DayKeyLayout is the canonical calendar-day key format. Lexicographic
// order on keys in this form is chronological order, which the CSV export
// and all sorting rely on.
const DayKeyLayout = "2006-01-02"

// DayKey formats a time as a canonical day key in its own location.
func DayKey(t time.Time) string {
	return t.Format(DayKeyLayout)
}

// TodayKey returns the canonical key for the current local day.
func TodayKey() string {
	return DayKey(time.Now())
}

// CanonicalDayKey normalizes a date string to the canonical key form.
// Inputs that cannot be parsed as a calendar day are returned trimmed but
// otherwise untouched; store operations stay total either way.
func CanonicalDayKey(s string) string {
	s = strings.TrimSpace(s)
	for _, layout := range []string{DayKeyLayout, "2006-1-2"} {
		if t, err := time.Parse(layout, s); err == nil {
			return DayKey(t)
		}
	}
	return s
}

// CompareDayKeys orders two canonical day keys chronologically.
func CompareDayKeys(a, b string) int {
	return strings.Compare(a, b)
}

// IsFutureKey reports whether key names a day after now's calendar day.
func IsFutureKey(key string, now time.Time) bool {
	return CompareDayKeys(key, DayKey(now)) > 0
}

// PastDayKeys returns n day keys ending at from, most recent first.
func PastDayKeys(from time.Time, n int) []string {
	keys := make([]string, 0, n)
	for i := 0; i < n; i++ {
		keys = append(keys, DayKey(from.AddDate(0, 0, -i)))
	}
	return keys
}

// MonthDayKeys returns the keys of every day in the given month, in order.
func MonthDayKeys(year int, month time.Month) []string {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	var keys []string
	for d := first; d.Month() == month; d = d.AddDate(0, 0, 1) {
		keys = append(keys, DayKey(d))
	}
	return keys
}

// FormatDisplayDate renders a day key for display, e.g. "Mon, Jan 2, 2006".
// Unparseable keys are returned as-is.
func FormatDisplayDate(key string) string {
	t, err := time.Parse(DayKeyLayout, key)
	if err != nil {
		return key
	}
	return t.Format("Mon, Jan 2, 2006")
}
