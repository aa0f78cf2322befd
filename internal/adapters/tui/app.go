package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"diario/internal/adapters/tui/views"
	"diario/internal/application"
)

// ViewState represents the current view
type ViewState int

const (
	ViewCalendar ViewState = iota
	ViewDay
	ViewPicker
	ViewTrend
	ViewHelp
)

// App is the main TUI application model
type App struct {
	journal *application.Journal

	state    ViewState
	calendar *views.CalendarModel
	day      *views.DayModel
	picker   *views.PickerModel
	trend    *views.TrendModel
	help     *views.HelpModel

	width  int
	height int
}

// NewApp creates a new TUI application. exportDir is where CSV exports
// are written.
func NewApp(journal *application.Journal, exportDir string) *App {
	return &App{
		journal:  journal,
		state:    ViewCalendar,
		calendar: views.NewCalendarModel(journal),
		day:      views.NewDayModel(journal),
		picker:   views.NewPickerModel(journal),
		trend:    views.NewTrendModel(journal, exportDir),
		help:     views.NewHelpModel(),
	}
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.calendar.Init()
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.calendar.SetSize(msg.Width, msg.Height)
		a.day.SetSize(msg.Width, msg.Height)
		a.picker.SetSize(msg.Width, msg.Height)
		a.trend.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		return a, nil

	// View switching messages
	case views.SwitchToCalendarMsg:
		a.state = ViewCalendar
		return a, nil

	case views.SwitchToDayMsg:
		a.state = ViewDay
		a.day.SetDate(msg.Date)
		return a, a.day.Init()

	case views.OpenPickerMsg:
		a.state = ViewPicker
		a.picker.Open(msg.Date, msg.Kind)
		return a, a.picker.Init()

	case views.PickerDoneMsg:
		a.state = ViewDay
		return a, nil

	case views.SwitchToTrendMsg:
		a.state = ViewTrend
		a.trend.Reset()
		return a, a.trend.Init()

	case views.SwitchToHelpMsg:
		a.state = ViewHelp
		return a, nil
	}

	// Delegate to current view
	var cmd tea.Cmd
	switch a.state {
	case ViewCalendar:
		_, cmd = a.calendar.Update(msg)
	case ViewDay:
		_, cmd = a.day.Update(msg)
	case ViewPicker:
		_, cmd = a.picker.Update(msg)
	case ViewTrend:
		_, cmd = a.trend.Update(msg)
	case ViewHelp:
		_, cmd = a.help.Update(msg)
	}

	return a, cmd
}

// View renders the application
func (a *App) View() string {
	switch a.state {
	case ViewDay:
		return a.day.View()
	case ViewPicker:
		return a.picker.View()
	case ViewTrend:
		return a.trend.View()
	case ViewHelp:
		return a.help.View()
	default:
		return a.calendar.View()
	}
}
