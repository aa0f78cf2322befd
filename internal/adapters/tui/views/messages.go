package views

import "diario/internal/domain"

// View switching messages handled by the app model

// SwitchToCalendarMsg returns to the calendar view.
type SwitchToCalendarMsg struct{}

// SwitchToDayMsg opens the day editor for a date.
type SwitchToDayMsg struct {
	Date string
}

// SwitchToTrendMsg opens the trend view.
type SwitchToTrendMsg struct{}

// SwitchToHelpMsg opens the help view.
type SwitchToHelpMsg struct{}

// OpenPickerMsg opens the tag picker for a date and kind.
type OpenPickerMsg struct {
	Date string
	Kind domain.ItemKind
}

// PickerDoneMsg closes the picker and returns to the day editor.
type PickerDoneMsg struct {
	Date string
}
