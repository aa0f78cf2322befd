package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"diario/internal/adapters/tui/styles"
)

// HelpKeyMap defines key bindings for the help view
type HelpKeyMap struct {
	Close key.Binding
}

var HelpKeys = HelpKeyMap{
	Close: key.NewBinding(
		key.WithKeys("esc", "q", "?"),
		key.WithHelp("esc/q/?", "close"),
	),
}

// HelpModel is the model for the help view
type HelpModel struct {
	ViewState
}

// NewHelpModel creates a new help view model
func NewHelpModel() *HelpModel {
	return &HelpModel{}
}

// Init initializes the help view
func (m *HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the help view
func (m *HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if key.Matches(keyMsg, HelpKeys.Close) {
			return m, func() tea.Msg {
				return SwitchToCalendarMsg{}
			}
		}
	}

	return m, nil
}

// View renders the help view
func (m *HelpModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Diario Help"))
	b.WriteString("\n\n")

	b.WriteString(styles.Subtitle.Render("Food and Symptom Journal"))
	b.WriteString("\n\n")

	b.WriteString(styles.InputLabel.Render("Calendar"))
	b.WriteString("\n")
	b.WriteString(helpLine("h / j / k / l", "Move by day/week"))
	b.WriteString(helpLine("[ / ]", "Previous / next month"))
	b.WriteString(helpLine("g", "Jump to today"))
	b.WriteString(helpLine("Enter", "Open the day editor"))
	b.WriteString(helpLine("t", "Trends and export"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Day Editor"))
	b.WriteString("\n")
	b.WriteString(helpLine("f / a", "Cycle feeling / activity"))
	b.WriteString(helpLine("o / s", "Add food / symptom"))
	b.WriteString(helpLine("x", "Remove selected tag"))
	b.WriteString(helpLine("n", "Edit notes"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Trends"))
	b.WriteString("\n")
	b.WriteString(helpLine("f / s / a", "Cycle filters"))
	b.WriteString(helpLine("e", "Export CSV file"))
	b.WriteString(helpLine("c", "Copy CSV to clipboard"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("General"))
	b.WriteString("\n")
	b.WriteString(helpLine("?", "Toggle help"))
	b.WriteString(helpLine("q / Ctrl+C", "Quit"))
	b.WriteString("\n")

	b.WriteString(styles.HelpDesc.Render("Press "))
	b.WriteString(styles.HelpKey.Render("esc"))
	b.WriteString(styles.HelpDesc.Render(" or "))
	b.WriteString(styles.HelpKey.Render("?"))
	b.WriteString(styles.HelpDesc.Render(" to close"))

	return styles.App.Render(b.String())
}

func helpLine(key, desc string) string {
	return "  " + styles.HelpKey.Render(padRight(key, 16)) + styles.HelpDesc.Render(desc) + "\n"
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}
