package styles

import (
	"github.com/charmbracelet/lipgloss"

	"diario/internal/domain"
)

var (
	// Colors
	Primary   = lipgloss.Color("#059669") // Emerald
	Muted     = lipgloss.Color("#6B7280") // Gray
	Error     = lipgloss.Color("#EF4444") // Red
	White     = lipgloss.Color("#FFFFFF")
	Highlight = lipgloss.Color("#0EA5E9") // Sky

	// Feeling scale colors, worst to best
	FeelingVeryBad  = lipgloss.Color("#DC2626")
	FeelingBad      = lipgloss.Color("#F97316")
	FeelingNormal   = lipgloss.Color("#FACC15")
	FeelingGood     = lipgloss.Color("#4ADE80")
	FeelingVeryGood = lipgloss.Color("#16A34A")

	// Base styles
	App = lipgloss.NewStyle().
		Padding(1, 2)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	MutedText = lipgloss.NewStyle().
			Foreground(Muted)

	Success = lipgloss.NewStyle().
		Foreground(Primary)

	ErrorMsg = lipgloss.NewStyle().
			Foreground(Error)

	// Calendar cells
	DayCell = lipgloss.NewStyle().
		Width(4).
		Align(lipgloss.Center)

	DaySelected = lipgloss.NewStyle().
			Width(4).
			Align(lipgloss.Center).
			Background(Highlight).
			Foreground(White).
			Bold(true)

	DayFuture = lipgloss.NewStyle().
			Width(4).
			Align(lipgloss.Center).
			Foreground(Muted).
			Faint(true)

	// Tag chips and list rows
	Chip = lipgloss.NewStyle().
		Padding(0, 1).
		Foreground(White).
		Background(Primary)

	RowSelected = lipgloss.NewStyle().
			Background(Primary).
			Foreground(White).
			Bold(true)

	// Chart bars
	Bar = lipgloss.NewStyle().
		Foreground(Highlight)

	// Input labels
	InputLabel = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	// Help
	HelpKey = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	HelpDesc = lipgloss.NewStyle().
			Foreground(Muted)

	HelpSeparator = lipgloss.NewStyle().
			Foreground(Muted).
			SetString("  •  ")
)

// FeelingColor maps a feeling level to its chart/calendar color.
func FeelingColor(f domain.Feeling) lipgloss.Color {
	switch f {
	case domain.FeelingVeryBad:
		return FeelingVeryBad
	case domain.FeelingBad:
		return FeelingBad
	case domain.FeelingNormal:
		return FeelingNormal
	case domain.FeelingGood:
		return FeelingGood
	case domain.FeelingVeryGood:
		return FeelingVeryGood
	default:
		return Muted
	}
}

// FeelingCell renders a calendar day in its feeling color.
func FeelingCell(f domain.Feeling) lipgloss.Style {
	if !f.IsSet() {
		return DayCell
	}
	return DayCell.Foreground(FeelingColor(f)).Bold(true)
}
