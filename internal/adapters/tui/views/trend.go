package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"diario/internal/adapters/tui/styles"
	"diario/internal/application"
	"diario/internal/application/commands"
	"diario/internal/domain"
)

// TrendKeyMap defines key bindings for the trend view
type TrendKeyMap struct {
	Food     key.Binding
	Symptom  key.Binding
	Activity key.Binding
	Export   key.Binding
	Copy     key.Binding
	Back     key.Binding
}

var TrendKeys = TrendKeyMap{
	Food: key.NewBinding(
		key.WithKeys("f"),
		key.WithHelp("f", "food filter"),
	),
	Symptom: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "symptom filter"),
	),
	Activity: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "activity filter"),
	),
	Export: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "export csv"),
	),
	Copy: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "copy csv"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back"),
	),
}

// TrendModel is the model for the trend and export view
type TrendModel struct {
	ViewState

	journal *application.Journal
	outDir  string

	// Filter cursors index into the catalog lists; -1 means no filter.
	foodIdx     int
	symptomIdx  int
	activityIdx int
}

// NewTrendModel creates a new trend view model. Exports are written
// under outDir.
func NewTrendModel(journal *application.Journal, outDir string) *TrendModel {
	return &TrendModel{
		journal:     journal,
		outDir:      outDir,
		foodIdx:     -1,
		symptomIdx:  -1,
		activityIdx: -1,
	}
}

// Init initializes the trend view
func (m *TrendModel) Init() tea.Cmd {
	return nil
}

// Reset clears filters and messages
func (m *TrendModel) Reset() {
	m.foodIdx = -1
	m.symptomIdx = -1
	m.activityIdx = -1
	m.ClearMessage()
}

func (m *TrendModel) filter() domain.TrendFilter {
	var f domain.TrendFilter
	if foods := m.journal.SelectCatalogByKind(domain.KindFood); m.foodIdx >= 0 && m.foodIdx < len(foods) {
		f.FoodID = foods[m.foodIdx].ID
	}
	if symptoms := m.journal.SelectCatalogByKind(domain.KindSymptom); m.symptomIdx >= 0 && m.symptomIdx < len(symptoms) {
		f.SymptomID = symptoms[m.symptomIdx].ID
	}
	if m.activityIdx >= 0 && m.activityIdx < len(domain.Activities) {
		f.Activity = domain.Activities[m.activityIdx]
	}
	return f
}

// cycleIdx advances a filter cursor through -1..n-1 and back to -1.
func cycleIdx(idx, n int) int {
	idx++
	if idx >= n {
		return -1
	}
	return idx
}

// Update handles messages for the trend view
func (m *TrendModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, TrendKeys.Back):
			return m, func() tea.Msg {
				return SwitchToCalendarMsg{}
			}

		case key.Matches(msg, TrendKeys.Food):
			m.foodIdx = cycleIdx(m.foodIdx, len(m.journal.SelectCatalogByKind(domain.KindFood)))
			return m, nil

		case key.Matches(msg, TrendKeys.Symptom):
			m.symptomIdx = cycleIdx(m.symptomIdx, len(m.journal.SelectCatalogByKind(domain.KindSymptom)))
			return m, nil

		case key.Matches(msg, TrendKeys.Activity):
			m.activityIdx = cycleIdx(m.activityIdx, len(domain.Activities))
			return m, nil

		case key.Matches(msg, TrendKeys.Export):
			result, err := commands.NewExportCSVCommand(m.journal, m.outDir).Execute(context.Background())
			if err != nil {
				m.SetMessage(err.Error(), true)
				return m, nil
			}
			m.SetMessage(fmt.Sprintf("Exported %d rows to %s", result.Rows, result.Path), false)
			return m, nil

		case key.Matches(msg, TrendKeys.Copy):
			text, err := commands.NewBuildCSVCommand(m.journal).Execute(context.Background())
			if err != nil {
				m.SetMessage(err.Error(), true)
				return m, nil
			}
			if err := clipboard.WriteAll(text); err != nil {
				m.SetMessage("Clipboard unavailable: "+err.Error(), true)
				return m, nil
			}
			m.SetMessage("CSV copied to clipboard", false)
			return m, nil
		}
	}

	return m, nil
}

// View renders the trend view
func (m *TrendModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Trends"))
	b.WriteString("\n\n")

	b.WriteString(m.renderFilters())
	b.WriteString("\n\n")

	filter := m.filter()
	days := domain.FilterDays(m.journal.SelectAllDays(), filter)

	b.WriteString(styles.InputLabel.Render("Feeling over time"))
	b.WriteString("\n")
	b.WriteString(m.renderFeelingSeries(days))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Symptoms per day"))
	b.WriteString("\n")
	b.WriteString(m.renderSymptomCounts(days))

	if filter.FoodID != "" {
		b.WriteString("\n")
		b.WriteString(styles.InputLabel.Render("Symptom co-occurrence"))
		b.WriteString("\n")
		b.WriteString(m.renderCooccurrence(filter))
	}

	if m.Message != "" {
		b.WriteString("\n")
		b.WriteString(RenderMessage(m.Message, m.MessageErr))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(RenderHelpLine(
		TrendKeys.Food,
		TrendKeys.Symptom,
		TrendKeys.Activity,
		TrendKeys.Export,
		TrendKeys.Copy,
		TrendKeys.Back,
	))

	return styles.App.Render(b.String())
}

func (m *TrendModel) renderFilters() string {
	foodLabel := "all"
	if foods := m.journal.SelectCatalogByKind(domain.KindFood); m.foodIdx >= 0 && m.foodIdx < len(foods) {
		foodLabel = foods[m.foodIdx].Name
	}
	symptomLabel := "all"
	if symptoms := m.journal.SelectCatalogByKind(domain.KindSymptom); m.symptomIdx >= 0 && m.symptomIdx < len(symptoms) {
		symptomLabel = symptoms[m.symptomIdx].Name
	}
	activityLabel := "all"
	if m.activityIdx >= 0 && m.activityIdx < len(domain.Activities) {
		activityLabel = domain.Activities[m.activityIdx].Label()
	}

	return styles.Subtitle.Render(fmt.Sprintf(
		"Food: %s   Symptom: %s   Activity: %s", foodLabel, symptomLabel, activityLabel,
	))
}

func (m *TrendModel) renderFeelingSeries(days []domain.DayLog) string {
	points := domain.FeelingScoreSeries(days)
	if len(points) == 0 {
		return styles.MutedText.Render("  No feelings logged") + "\n"
	}

	var b strings.Builder
	for _, p := range points {
		bar := styles.Bar.Foreground(styles.FeelingColor(scoreToFeeling(p.Score))).
			Render(strings.Repeat("█", p.Score*2))
		b.WriteString(fmt.Sprintf("  %s %s %d\n", p.Date, bar, p.Score))
	}
	return b.String()
}

func (m *TrendModel) renderSymptomCounts(days []domain.DayLog) string {
	points := domain.SymptomsPerDay(days)
	if len(points) == 0 {
		return styles.MutedText.Render("  No days logged") + "\n"
	}

	var b strings.Builder
	for _, p := range points {
		b.WriteString(fmt.Sprintf("  %s %s %d\n", p.Date, RenderBar(p.Count*2), p.Count))
	}
	return b.String()
}

func (m *TrendModel) renderCooccurrence(filter domain.TrendFilter) string {
	counts := domain.Cooccurrence(
		m.journal.SelectAllDays(),
		m.journal.SelectCatalogByKind(domain.KindSymptom),
		filter.FoodID,
		filter.Activity,
	)
	if len(counts) == 0 {
		return styles.MutedText.Render("  No symptoms in the catalog") + "\n"
	}

	var b strings.Builder
	for _, c := range counts {
		b.WriteString(fmt.Sprintf("  %-20s %s %d\n", c.Symptom.Name, RenderBar(c.Days*2), c.Days))
	}
	return b.String()
}

func scoreToFeeling(score int) domain.Feeling {
	if score >= 1 && score <= len(domain.Feelings) {
		return domain.Feelings[score-1]
	}
	return ""
}
