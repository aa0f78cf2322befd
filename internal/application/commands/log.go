package commands

import (
	"context"
	"fmt"

	"diario/internal/application"
	"diario/internal/domain"
)

// SetFeelingCommand records a day's overall feeling. An empty or "unset"
// level clears the field.
type SetFeelingCommand struct {
	journal *application.Journal
	Date    string
	Level   string
}

// NewSetFeelingCommand creates a new SetFeelingCommand
func NewSetFeelingCommand(journal *application.Journal, date, level string) *SetFeelingCommand {
	return &SetFeelingCommand{journal: journal, Date: date, Level: level}
}

// Validate checks the feeling level
func (c *SetFeelingCommand) Validate() error {
	if _, ok := domain.ParseFeeling(c.Level); !ok {
		return &application.ValidationError{
			Field:   "feeling",
			Message: fmt.Sprintf("unknown level %q (expected one of %v or unset)", c.Level, domain.Feelings),
		}
	}
	return nil
}

// Execute runs the set feeling command
func (c *SetFeelingCommand) Execute(ctx context.Context) (domain.DayLog, error) {
	if err := c.Validate(); err != nil {
		return domain.DayLog{}, err
	}
	feeling, _ := domain.ParseFeeling(c.Level)
	c.journal.SetFeeling(c.Date, feeling)
	return c.journal.SelectDayLog(c.Date), nil
}

// SetActivityCommand records a day's activity level, with the same unset
// convention as SetFeelingCommand.
type SetActivityCommand struct {
	journal *application.Journal
	Date    string
	Level   string
}

// NewSetActivityCommand creates a new SetActivityCommand
func NewSetActivityCommand(journal *application.Journal, date, level string) *SetActivityCommand {
	return &SetActivityCommand{journal: journal, Date: date, Level: level}
}

// Validate checks the activity level
func (c *SetActivityCommand) Validate() error {
	if _, ok := domain.ParseActivity(c.Level); !ok {
		return &application.ValidationError{
			Field:   "activity",
			Message: fmt.Sprintf("unknown level %q (expected one of %v or unset)", c.Level, domain.Activities),
		}
	}
	return nil
}

// Execute runs the set activity command
func (c *SetActivityCommand) Execute(ctx context.Context) (domain.DayLog, error) {
	if err := c.Validate(); err != nil {
		return domain.DayLog{}, err
	}
	activity, _ := domain.ParseActivity(c.Level)
	c.journal.SetActivity(c.Date, activity)
	return c.journal.SelectDayLog(c.Date), nil
}

// SetNotesCommand records a day's notes. An empty string is a valid value
// and is stored as empty.
type SetNotesCommand struct {
	journal *application.Journal
	Date    string
	Text    string
}

// NewSetNotesCommand creates a new SetNotesCommand
func NewSetNotesCommand(journal *application.Journal, date, text string) *SetNotesCommand {
	return &SetNotesCommand{journal: journal, Date: date, Text: text}
}

// Execute runs the set notes command
func (c *SetNotesCommand) Execute(ctx context.Context) (domain.DayLog, error) {
	c.journal.SetNotes(c.Date, c.Text)
	return c.journal.SelectDayLog(c.Date), nil
}
