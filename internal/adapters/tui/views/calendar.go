package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"diario/internal/adapters/tui/styles"
	"diario/internal/application"
	"diario/internal/domain"
)

// CalendarKeyMap defines key bindings for the calendar view
type CalendarKeyMap struct {
	Left      key.Binding
	Right     key.Binding
	Up        key.Binding
	Down      key.Binding
	PrevMonth key.Binding
	NextMonth key.Binding
	Today     key.Binding
	Open      key.Binding
	Trends    key.Binding
	Help      key.Binding
	Quit      key.Binding
}

var CalendarKeys = CalendarKeyMap{
	Left: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←", "prev day"),
	),
	Right: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→", "next day"),
	),
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑", "prev week"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓", "next week"),
	),
	PrevMonth: key.NewBinding(
		key.WithKeys("[", "pgup"),
		key.WithHelp("[", "prev month"),
	),
	NextMonth: key.NewBinding(
		key.WithKeys("]", "pgdown"),
		key.WithHelp("]", "next month"),
	),
	Today: key.NewBinding(
		key.WithKeys("g"),
		key.WithHelp("g", "today"),
	),
	Open: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "open day"),
	),
	Trends: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "trends"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// CalendarModel is the model for the month calendar view
type CalendarModel struct {
	ViewState

	journal *application.Journal

	year     int
	month    time.Month
	selected time.Time
}

// NewCalendarModel creates a new calendar view model positioned on today
func NewCalendarModel(journal *application.Journal) *CalendarModel {
	now := time.Now()
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
	return &CalendarModel{
		journal:  journal,
		year:     day.Year(),
		month:    day.Month(),
		selected: day,
	}
}

// Init initializes the calendar view
func (m *CalendarModel) Init() tea.Cmd {
	return nil
}

// SelectedDate returns the day key under the cursor.
func (m *CalendarModel) SelectedDate() string {
	return m.selected.Format(domain.DayKeyLayout)
}

func (m *CalendarModel) moveDays(delta int) {
	m.selected = m.selected.AddDate(0, 0, delta)
	m.year = m.selected.Year()
	m.month = m.selected.Month()
}

func (m *CalendarModel) moveMonths(delta int) {
	first := time.Date(m.year, m.month, 1, 0, 0, 0, 0, time.Local).AddDate(0, delta, 0)
	m.year = first.Year()
	m.month = first.Month()
	// Clamp the cursor into the new month
	day := m.selected.Day()
	last := first.AddDate(0, 1, -1).Day()
	if day > last {
		day = last
	}
	m.selected = time.Date(m.year, m.month, day, 0, 0, 0, 0, time.Local)
}

// Update handles messages for the calendar view
func (m *CalendarModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, CalendarKeys.Quit):
			return m, tea.Quit

		case key.Matches(msg, CalendarKeys.Left):
			m.moveDays(-1)
			return m, nil

		case key.Matches(msg, CalendarKeys.Right):
			m.moveDays(1)
			return m, nil

		case key.Matches(msg, CalendarKeys.Up):
			m.moveDays(-7)
			return m, nil

		case key.Matches(msg, CalendarKeys.Down):
			m.moveDays(7)
			return m, nil

		case key.Matches(msg, CalendarKeys.PrevMonth):
			m.moveMonths(-1)
			return m, nil

		case key.Matches(msg, CalendarKeys.NextMonth):
			m.moveMonths(1)
			return m, nil

		case key.Matches(msg, CalendarKeys.Today):
			now := time.Now()
			m.selected = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
			m.year = m.selected.Year()
			m.month = m.selected.Month()
			return m, nil

		case key.Matches(msg, CalendarKeys.Open):
			date := m.SelectedDate()
			if domain.IsFutureKey(date, time.Now()) {
				m.SetMessage("Cannot log a future day", true)
				return m, nil
			}
			m.ClearMessage()
			return m, func() tea.Msg {
				return SwitchToDayMsg{Date: date}
			}

		case key.Matches(msg, CalendarKeys.Trends):
			return m, func() tea.Msg {
				return SwitchToTrendMsg{}
			}

		case key.Matches(msg, CalendarKeys.Help):
			return m, func() tea.Msg {
				return SwitchToHelpMsg{}
			}
		}
	}

	return m, nil
}

// View renders the calendar view
func (m *CalendarModel) View() string {
	var b strings.Builder

	title := fmt.Sprintf("%s %d", m.month, m.year)
	b.WriteString(styles.Title.Render(title))
	b.WriteString("\n\n")

	b.WriteString(styles.MutedText.Render("  Mo  Tu  We  Th  Fr  Sa  Su"))
	b.WriteString("\n")

	first := time.Date(m.year, m.month, 1, 0, 0, 0, 0, time.Local)
	daysInMonth := first.AddDate(0, 1, -1).Day()
	// Monday-first column offset
	offset := (int(first.Weekday()) + 6) % 7

	b.WriteString(strings.Repeat("    ", offset))
	col := offset

	for day := 1; day <= daysInMonth; day++ {
		date := time.Date(m.year, m.month, day, 0, 0, 0, 0, time.Local)
		b.WriteString(m.renderDay(date))
		col++
		if col == 7 {
			b.WriteString("\n")
			col = 0
		}
	}
	if col != 0 {
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderSummary())
	b.WriteString("\n")

	if m.Message != "" {
		b.WriteString(RenderMessage(m.Message, m.MessageErr))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(RenderHelpLine(
		CalendarKeys.Open,
		CalendarKeys.PrevMonth,
		CalendarKeys.NextMonth,
		CalendarKeys.Today,
		CalendarKeys.Trends,
		CalendarKeys.Help,
		CalendarKeys.Quit,
	))

	return styles.App.Render(b.String())
}

func (m *CalendarModel) renderDay(date time.Time) string {
	dayKey := date.Format(domain.DayKeyLayout)
	label := fmt.Sprintf("%d", date.Day())

	if dayKey == m.SelectedDate() {
		return styles.DaySelected.Render(label)
	}
	if domain.IsFutureKey(dayKey, time.Now()) {
		return styles.DayFuture.Render(label)
	}

	day := m.journal.SelectDayLog(dayKey)
	return styles.FeelingCell(day.Feeling).Render(label)
}

func (m *CalendarModel) renderSummary() string {
	date := m.SelectedDate()
	day := m.journal.SelectDayLog(date)

	var parts []string
	parts = append(parts, styles.Subtitle.Render(domain.FormatDisplayDate(date)))
	if day.Feeling.IsSet() {
		parts = append(parts, "Feeling: "+day.Feeling.Label())
	}
	if day.Activity.IsSet() {
		parts = append(parts, "Activity: "+day.Activity.Label())
	}
	if n := len(day.FoodIDs); n > 0 {
		parts = append(parts, fmt.Sprintf("%d foods", n))
	}
	if n := len(day.SymptomIDs); n > 0 {
		parts = append(parts, fmt.Sprintf("%d symptoms", n))
	}

	return strings.Join(parts, styles.MutedText.Render("  ·  "))
}
