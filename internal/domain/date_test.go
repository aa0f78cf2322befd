package domain

import (
	"testing"
	"time"
)

func TestCanonicalDayKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2026-01-05", "2026-01-05"},
		{"2026-1-5", "2026-01-05"},
		{" 2026-01-05 ", "2026-01-05"},
		{"not-a-date", "not-a-date"},
	}
	for _, tt := range tests {
		if got := CanonicalDayKey(tt.in); got != tt.want {
			t.Errorf("CanonicalDayKey(%q) = %q, expected %q", tt.in, got, tt.want)
		}
	}
}

func TestCompareDayKeysIsChronological(t *testing.T) {
	if CompareDayKeys("2025-12-31", "2026-01-01") >= 0 {
		t.Error("expected 2025-12-31 < 2026-01-01")
	}
	if CompareDayKeys("2026-01-02", "2026-01-02") != 0 {
		t.Error("expected equal keys to compare equal")
	}
}

func TestIsFutureKey(t *testing.T) {
	now := time.Date(2026, 1, 15, 12, 0, 0, 0, time.Local)
	if !IsFutureKey("2026-01-16", now) {
		t.Error("expected tomorrow to be future")
	}
	if IsFutureKey("2026-01-15", now) {
		t.Error("expected today not to be future")
	}
	if IsFutureKey("2026-01-14", now) {
		t.Error("expected yesterday not to be future")
	}
}

func TestPastDayKeys(t *testing.T) {
	from := time.Date(2026, 3, 2, 0, 0, 0, 0, time.Local)
	keys := PastDayKeys(from, 3)
	want := []string{"2026-03-02", "2026-03-01", "2026-02-28"}
	if len(keys) != 3 {
		t.Fatalf("expected 3 keys, got %d", len(keys))
	}
	for i, k := range want {
		if keys[i] != k {
			t.Errorf("expected key %d to be %s, got %s", i, k, keys[i])
		}
	}
}

func TestMonthDayKeys(t *testing.T) {
	keys := MonthDayKeys(2026, time.February)
	if len(keys) != 28 {
		t.Fatalf("expected 28 days in Feb 2026, got %d", len(keys))
	}
	if keys[0] != "2026-02-01" || keys[27] != "2026-02-28" {
		t.Errorf("expected first/last 2026-02-01/2026-02-28, got %s/%s", keys[0], keys[27])
	}
}

func TestFormatDisplayDate(t *testing.T) {
	if got := FormatDisplayDate("2026-01-05"); got != "Mon, Jan 5, 2026" {
		t.Errorf("expected %q, got %q", "Mon, Jan 5, 2026", got)
	}
	if got := FormatDisplayDate("garbage"); got != "garbage" {
		t.Errorf("expected unparseable key returned as-is, got %q", got)
	}
}
