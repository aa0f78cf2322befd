package domain

import "testing"

func TestParseFeeling(t *testing.T) {
	tests := []struct {
		in   string
		want Feeling
		ok   bool
	}{
		{"very bad", FeelingVeryBad, true},
		{"Bad", FeelingBad, true},
		{"NORMAL", FeelingNormal, true},
		{"very good", FeelingVeryGood, true},
		{"unset", "", true},
		{"", "", true},
		{"meh", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseFeeling(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseFeeling(%q) = %q,%v; expected %q,%v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestParseActivity(t *testing.T) {
	tests := []struct {
		in   string
		want Activity
		ok   bool
	}{
		{"none", ActivityNone, true},
		{"very high", ActivityVeryHigh, true},
		{"Average", ActivityAverage, true},
		{"unset", "", true},
		{"extreme", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseActivity(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseActivity(%q) = %q,%v; expected %q,%v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestFeelingLabel(t *testing.T) {
	if Feeling("").Label() != "Unset" {
		t.Error("expected unset feeling to label as Unset")
	}
	if FeelingGood.Label() != "Good" {
		t.Error("expected set feeling to label as itself")
	}
}
