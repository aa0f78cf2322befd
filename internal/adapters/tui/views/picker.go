package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"diario/internal/adapters/tui/styles"
	"diario/internal/application"
	"diario/internal/application/commands"
	"diario/internal/domain"
)

// PickerKeyMap defines key bindings for the tag picker view
type PickerKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Create key.Binding
	Cancel key.Binding
}

var PickerKeys = PickerKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "ctrl+p"),
		key.WithHelp("↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "ctrl+n"),
		key.WithHelp("↓", "down"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "select"),
	),
	Create: key.NewBinding(
		key.WithKeys("ctrl+o"),
		key.WithHelp("ctrl+o", "create new"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
}

// maxPickerResults limits how many candidates are shown at once
const maxPickerResults = 10

// PickerModel is the model for the tag picker: a filtered catalog list
// with an inline "create new" action.
type PickerModel struct {
	ViewState

	journal *application.Journal

	date   string
	kind   domain.ItemKind
	input  textinput.Model
	cursor int
}

// NewPickerModel creates a new tag picker model
func NewPickerModel(journal *application.Journal) *PickerModel {
	input := textinput.New()
	input.Placeholder = "Type to filter..."
	input.CharLimit = 100

	return &PickerModel{
		journal: journal,
		input:   input,
	}
}

// Init initializes the picker view
func (m *PickerModel) Init() tea.Cmd {
	return textinput.Blink
}

// Open points the picker at a date and kind and resets its state
func (m *PickerModel) Open(date string, kind domain.ItemKind) {
	m.date = date
	m.kind = kind
	m.cursor = 0
	m.input.SetValue("")
	m.input.Focus()
	m.ClearMessage()
}

func (m *PickerModel) candidates() []domain.CatalogItem {
	items := domain.SortMatches(m.journal.SelectCatalogByKind(m.kind), m.input.Value())
	if len(items) > maxPickerResults {
		items = items[:maxPickerResults]
	}
	return items
}

// canCreate reports whether the "create new" action is available:
// a non-blank query with no exact catalog match.
func (m *PickerModel) canCreate() bool {
	query := strings.TrimSpace(m.input.Value())
	if query == "" {
		return false
	}
	return !domain.HasExactMatch(m.journal.SelectCatalogByKind(m.kind), query)
}

// Update handles messages for the picker view
func (m *PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, PickerKeys.Cancel):
			return m, m.done()

		case key.Matches(msg, PickerKeys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case key.Matches(msg, PickerKeys.Down):
			if m.cursor < len(m.candidates())-1 {
				m.cursor++
			}
			return m, nil

		case key.Matches(msg, PickerKeys.Select):
			candidates := m.candidates()
			if m.cursor >= 0 && m.cursor < len(candidates) {
				m.journal.AddItemToDay(m.date, candidates[m.cursor].ID, m.kind)
				return m, m.done()
			}
			return m, nil

		case key.Matches(msg, PickerKeys.Create):
			return m.create()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.cursor = 0
	return m, cmd
}

func (m *PickerModel) create() (tea.Model, tea.Cmd) {
	if !m.canCreate() {
		m.SetMessage("Already in the catalog", true)
		return m, nil
	}

	cmd := commands.NewCreateTagCommand(m.journal, m.date, string(m.kind), m.input.Value())
	if err := cmd.Validate(); err != nil {
		m.SetMessage(err.Error(), true)
		return m, nil
	}
	if _, err := cmd.Execute(context.Background()); err != nil {
		m.SetMessage(err.Error(), true)
		return m, nil
	}
	return m, m.done()
}

func (m *PickerModel) done() tea.Cmd {
	date := m.date
	return func() tea.Msg {
		return PickerDoneMsg{Date: date}
	}
}

// View renders the picker view
func (m *PickerModel) View() string {
	var b strings.Builder

	title := "Add Food"
	if m.kind == domain.KindSymptom {
		title = "Add Symptom"
	}
	b.WriteString(styles.Title.Render(title))
	b.WriteString("\n\n")

	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	candidates := m.candidates()
	if len(candidates) == 0 {
		b.WriteString(styles.MutedText.Render("No matches"))
		b.WriteString("\n")
	}
	for i, item := range candidates {
		line := "  " + item.Name
		if i == m.cursor {
			line = styles.RowSelected.Render("> " + item.Name)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.canCreate() {
		b.WriteString(styles.Success.Render(
			fmt.Sprintf("ctrl+o creates %q", domain.CapitalizeWords(m.input.Value())),
		))
		b.WriteString("\n")
	}

	if m.Message != "" {
		b.WriteString(RenderMessage(m.Message, m.MessageErr))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(RenderHelpLine(
		PickerKeys.Select,
		PickerKeys.Create,
		PickerKeys.Cancel,
	))

	return styles.App.Render(b.String())
}
