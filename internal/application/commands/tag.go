package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"diario/internal/application"
	"diario/internal/domain"
)

// CreateTagResult contains the result of creating or reusing a tag
type CreateTagResult struct {
	Item    domain.CatalogItem
	Created bool
	Message string
}

// CreateTagCommand implements the tag creation flow: an existing catalog
// item whose normalized name matches the query is reused; otherwise a new
// id is minted and the item inserted into the catalog before the day
// record references it. The catalog itself never rejects duplicate names,
// so this command is the only place the dedupe-by-name invariant lives.
type CreateTagCommand struct {
	journal *application.Journal
	Date    string
	Kind    string
	Name    string
}

// NewCreateTagCommand creates a new CreateTagCommand
func NewCreateTagCommand(journal *application.Journal, date, kind, name string) *CreateTagCommand {
	return &CreateTagCommand{journal: journal, Date: date, Kind: kind, Name: name}
}

// Validate checks if the create operation is valid
func (c *CreateTagCommand) Validate() error {
	if err := application.ValidateRequired("name", c.Name); err != nil {
		return err
	}
	return application.ValidateKind("kind", c.Kind)
}

// Execute runs the create tag command
func (c *CreateTagCommand) Execute(ctx context.Context) (*CreateTagResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	kind, _ := domain.ParseItemKind(c.Kind)

	if existing, ok := c.journal.FindTag(kind, c.Name); ok {
		c.journal.AddItemToDay(c.Date, existing.ID, kind)
		return &CreateTagResult{
			Item:    existing,
			Message: fmt.Sprintf("Added existing %s: %s", kind, existing.Name),
		}, nil
	}

	item := domain.CatalogItem{
		ID:        uuid.NewString(),
		Name:      c.Name,
		CreatedAt: time.Now(),
		Kind:      kind,
	}
	// Catalog first, then the day record, so the tag exists before it is
	// referenced.
	c.journal.AddCatalogItem(item)
	c.journal.AddItemToDay(c.Date, item.ID, kind)

	created, _ := c.journal.LookupTag(item.ID)
	return &CreateTagResult{
		Item:    created,
		Created: true,
		Message: fmt.Sprintf("Created %s: %s", kind, created.Name),
	}, nil
}

// AddTagCommand references an existing catalog item from a day record.
type AddTagCommand struct {
	journal *application.Journal
	Date    string
	Kind    string
	ItemID  string
}

// NewAddTagCommand creates a new AddTagCommand
func NewAddTagCommand(journal *application.Journal, date, kind, itemID string) *AddTagCommand {
	return &AddTagCommand{journal: journal, Date: date, Kind: kind, ItemID: itemID}
}

// Execute runs the add tag command
func (c *AddTagCommand) Execute(ctx context.Context) error {
	kind, ok := domain.ParseItemKind(c.Kind)
	if !ok {
		return fmt.Errorf("%w: %s", application.ErrUnknownKind, c.Kind)
	}
	c.journal.AddItemToDay(c.Date, c.ItemID, kind)
	return nil
}

// RemoveTagCommand removes a tag reference from a day record. The tag may
// be addressed by id or by name; removal of an absent tag is a no-op.
type RemoveTagCommand struct {
	journal *application.Journal
	Date    string
	Kind    string
	Tag     string
}

// NewRemoveTagCommand creates a new RemoveTagCommand
func NewRemoveTagCommand(journal *application.Journal, date, kind, tag string) *RemoveTagCommand {
	return &RemoveTagCommand{journal: journal, Date: date, Kind: kind, Tag: tag}
}

// Execute runs the remove tag command
func (c *RemoveTagCommand) Execute(ctx context.Context) error {
	kind, ok := domain.ParseItemKind(c.Kind)
	if !ok {
		return fmt.Errorf("%w: %s", application.ErrUnknownKind, c.Kind)
	}
	id := c.Tag
	if item, ok := c.journal.FindTag(kind, c.Tag); ok {
		id = item.ID
	}
	c.journal.RemoveItemFromDay(c.Date, id, kind)
	return nil
}
