package domain

// Feeling is the overall-feeling level for a day. The zero value means
// "unset", which is distinct from every level.
type Feeling string

const (
	FeelingVeryBad  Feeling = "Very Bad"
	FeelingBad      Feeling = "Bad"
	FeelingNormal   Feeling = "Normal"
	FeelingGood     Feeling = "Good"
	FeelingVeryGood Feeling = "Very Good"
)

// Feelings lists all levels in ordinal order, worst first.
var Feelings = []Feeling{
	FeelingVeryBad,
	FeelingBad,
	FeelingNormal,
	FeelingGood,
	FeelingVeryGood,
}

// IsSet reports whether the feeling holds a level.
func (f Feeling) IsSet() bool {
	return f != ""
}

// Score maps a feeling to the fixed 1..5 ordinal scale used for charting.
// An unset feeling scores 0; callers filter those out before charting.
func (f Feeling) Score() int {
	for i, level := range Feelings {
		if f == level {
			return i + 1
		}
	}
	return 0
}

// Label returns the display form, with "Unset" for the zero value.
func (f Feeling) Label() string {
	if f == "" {
		return "Unset"
	}
	return string(f)
}

// ParseFeeling maps user input to a Feeling. "" and "unset" clear the
// field and parse to the zero value.
func ParseFeeling(s string) (Feeling, bool) {
	normalized := NormalizeName(s)
	if normalized == "" || normalized == "unset" {
		return "", true
	}
	for _, level := range Feelings {
		if NormalizeName(string(level)) == normalized {
			return level, true
		}
	}
	return "", false
}

// Activity is the activity level for a day. The zero value means "unset".
type Activity string

const (
	ActivityNone     Activity = "None"
	ActivityLow      Activity = "Low"
	ActivityAverage  Activity = "Average"
	ActivityHigh     Activity = "High"
	ActivityVeryHigh Activity = "Very High"
)

// Activities lists all levels in ascending order.
var Activities = []Activity{
	ActivityNone,
	ActivityLow,
	ActivityAverage,
	ActivityHigh,
	ActivityVeryHigh,
}

// IsSet reports whether the activity holds a level.
func (a Activity) IsSet() bool {
	return a != ""
}

// Label returns the display form, with "Unset" for the zero value.
func (a Activity) Label() string {
	if a == "" {
		return "Unset"
	}
	return string(a)
}

// ParseActivity maps user input to an Activity, with the same unset
// convention as ParseFeeling.
func ParseActivity(s string) (Activity, bool) {
	normalized := NormalizeName(s)
	if normalized == "" || normalized == "unset" {
		return "", true
	}
	for _, level := range Activities {
		if NormalizeName(string(level)) == normalized {
			return level, true
		}
	}
	return "", false
}
