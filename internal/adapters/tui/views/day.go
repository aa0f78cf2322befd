package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"diario/internal/adapters/tui/styles"
	"diario/internal/application"
	"diario/internal/domain"
)

// DayKeyMap defines key bindings for the day editor view
type DayKeyMap struct {
	Feeling    key.Binding
	Activity   key.Binding
	AddFood    key.Binding
	AddSymptom key.Binding
	Up         key.Binding
	Down       key.Binding
	Remove     key.Binding
	Notes      key.Binding
	Save       key.Binding
	Back       key.Binding
}

var DayKeys = DayKeyMap{
	Feeling: key.NewBinding(
		key.WithKeys("f"),
		key.WithHelp("f", "cycle feeling"),
	),
	Activity: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "cycle activity"),
	),
	AddFood: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "add food"),
	),
	AddSymptom: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "add symptom"),
	),
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓", "down"),
	),
	Remove: key.NewBinding(
		key.WithKeys("x", "backspace"),
		key.WithHelp("x", "remove tag"),
	),
	Notes: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "edit notes"),
	),
	Save: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "save"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back"),
	),
}

// DayModel is the model for the day editor view
type DayModel struct {
	ViewState

	journal *application.Journal

	date         string
	cursor       int
	editingNotes bool
	notes        textinput.Model
}

// NewDayModel creates a new day editor model
func NewDayModel(journal *application.Journal) *DayModel {
	notes := textinput.New()
	notes.Placeholder = "Notes..."
	notes.CharLimit = 500

	return &DayModel{
		journal: journal,
		notes:   notes,
	}
}

// Init initializes the day editor view
func (m *DayModel) Init() tea.Cmd {
	return nil
}

// SetDate points the editor at a date and resets its state
func (m *DayModel) SetDate(date string) {
	m.date = domain.CanonicalDayKey(date)
	m.cursor = 0
	m.editingNotes = false
	m.notes.Blur()
	m.ClearMessage()
}

// Date returns the date being edited.
func (m *DayModel) Date() string {
	return m.date
}

// taggedItem pairs an attached catalog item with its kind for the cursor list
type taggedItem struct {
	item domain.CatalogItem
	kind domain.ItemKind
}

func (m *DayModel) taggedItems() []taggedItem {
	var out []taggedItem
	for _, item := range m.journal.SelectDayItems(m.date, domain.KindFood) {
		out = append(out, taggedItem{item: item, kind: domain.KindFood})
	}
	for _, item := range m.journal.SelectDayItems(m.date, domain.KindSymptom) {
		out = append(out, taggedItem{item: item, kind: domain.KindSymptom})
	}
	return out
}

func (m *DayModel) clampCursor() {
	n := len(m.taggedItems())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// Update handles messages for the day editor view
func (m *DayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.editingNotes {
		return m.updateNotes(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, DayKeys.Back):
			return m, func() tea.Msg {
				return SwitchToCalendarMsg{}
			}

		case key.Matches(msg, DayKeys.Feeling):
			day := m.journal.SelectDayLog(m.date)
			m.journal.SetFeeling(m.date, cycleFeeling(day.Feeling))
			return m, nil

		case key.Matches(msg, DayKeys.Activity):
			day := m.journal.SelectDayLog(m.date)
			m.journal.SetActivity(m.date, cycleActivity(day.Activity))
			return m, nil

		case key.Matches(msg, DayKeys.AddFood):
			return m, m.openPicker(domain.KindFood)

		case key.Matches(msg, DayKeys.AddSymptom):
			return m, m.openPicker(domain.KindSymptom)

		case key.Matches(msg, DayKeys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case key.Matches(msg, DayKeys.Down):
			if m.cursor < len(m.taggedItems())-1 {
				m.cursor++
			}
			return m, nil

		case key.Matches(msg, DayKeys.Remove):
			tagged := m.taggedItems()
			if m.cursor >= 0 && m.cursor < len(tagged) {
				t := tagged[m.cursor]
				m.journal.RemoveItemFromDay(m.date, t.item.ID, t.kind)
				m.clampCursor()
			}
			return m, nil

		case key.Matches(msg, DayKeys.Notes):
			day := m.journal.SelectDayLog(m.date)
			if day.Notes != nil {
				m.notes.SetValue(*day.Notes)
			} else {
				m.notes.SetValue("")
			}
			m.editingNotes = true
			m.notes.Focus()
			return m, textinput.Blink
		}
	}

	return m, nil
}

func (m *DayModel) updateNotes(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, DayKeys.Save):
			m.journal.SetNotes(m.date, m.notes.Value())
			m.editingNotes = false
			m.notes.Blur()
			return m, nil

		case key.Matches(keyMsg, DayKeys.Back):
			m.editingNotes = false
			m.notes.Blur()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.notes, cmd = m.notes.Update(msg)
	return m, cmd
}

func (m *DayModel) openPicker(kind domain.ItemKind) tea.Cmd {
	date := m.date
	return func() tea.Msg {
		return OpenPickerMsg{Date: date, Kind: kind}
	}
}

func cycleFeeling(f domain.Feeling) domain.Feeling {
	for i, level := range domain.Feelings {
		if level == f {
			return domain.Feelings[(i+1)%len(domain.Feelings)]
		}
	}
	return domain.Feelings[0]
}

func cycleActivity(a domain.Activity) domain.Activity {
	for i, level := range domain.Activities {
		if level == a {
			return domain.Activities[(i+1)%len(domain.Activities)]
		}
	}
	return domain.Activities[0]
}

// View renders the day editor view
func (m *DayModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render(domain.FormatDisplayDate(m.date)))
	b.WriteString("\n\n")

	day := m.journal.SelectDayLog(m.date)

	feeling := styles.MutedText.Render("Unset")
	if day.Feeling.IsSet() {
		feeling = styles.FeelingCell(day.Feeling).Width(0).Render(day.Feeling.Label())
	}
	b.WriteString(fmt.Sprintf("%s %s\n", styles.InputLabel.Render("Feeling: "), feeling))

	activity := styles.MutedText.Render("Unset")
	if day.Activity.IsSet() {
		activity = day.Activity.Label()
	}
	b.WriteString(fmt.Sprintf("%s %s\n\n", styles.InputLabel.Render("Activity:"), activity))

	tagged := m.taggedItems()
	b.WriteString(m.renderKindSection("Foods", domain.KindFood, tagged))
	b.WriteString("\n")
	b.WriteString(m.renderKindSection("Symptoms", domain.KindSymptom, tagged))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Notes:"))
	b.WriteString("\n")
	if m.editingNotes {
		b.WriteString(m.notes.View())
		b.WriteString("\n")
		b.WriteString(RenderHelpLine(DayKeys.Save, DayKeys.Back))
	} else {
		if day.Notes != nil && *day.Notes != "" {
			b.WriteString(*day.Notes)
		} else {
			b.WriteString(styles.MutedText.Render("(none)"))
		}
		b.WriteString("\n")

		if m.Message != "" {
			b.WriteString("\n")
			b.WriteString(RenderMessage(m.Message, m.MessageErr))
			b.WriteString("\n")
		}

		b.WriteString("\n")
		b.WriteString(RenderHelpLine(
			DayKeys.Feeling,
			DayKeys.Activity,
			DayKeys.AddFood,
			DayKeys.AddSymptom,
			DayKeys.Remove,
			DayKeys.Notes,
			DayKeys.Back,
		))
	}

	return styles.App.Render(b.String())
}

func (m *DayModel) renderKindSection(label string, kind domain.ItemKind, tagged []taggedItem) string {
	var b strings.Builder

	b.WriteString(styles.InputLabel.Render(label + ":"))
	b.WriteString("\n")

	empty := true
	for i, t := range tagged {
		if t.kind != kind {
			continue
		}
		empty = false
		line := "  " + t.item.Name
		if i == m.cursor {
			line = styles.RowSelected.Render("> " + t.item.Name)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	if empty {
		b.WriteString(styles.MutedText.Render("  (none)"))
		b.WriteString("\n")
	}

	return b.String()
}
