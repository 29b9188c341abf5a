package commands

import (
	"context"
	"fmt"

	"binder/internal/domain"
	"binder/internal/ports"
)

// NotesShowCommand reads the notes field of an item
type NotesShowCommand struct {
	store ports.BinderStore
	Root  string
	ID    string
}

// NewNotesShowCommand creates a new NotesShowCommand
func NewNotesShowCommand(store ports.BinderStore, root, id string) *NotesShowCommand {
	return &NotesShowCommand{store: store, Root: root, ID: id}
}

// Execute runs the notes show command
func (c *NotesShowCommand) Execute(ctx context.Context) (string, error) {
	b, err := c.store.Load(c.Root)
	if err != nil {
		return "", err
	}
	it, err := b.GetItem(c.ID)
	if err != nil {
		return "", err
	}
	return it.Notes, nil
}

// NotesSetResult contains the result of a notes commit
type NotesSetResult struct {
	ID        string
	Committed bool
	Message   string
}

// NotesSetCommand replaces an item's notes through an editing session
// and persists the binder when the commit changed anything
type NotesSetCommand struct {
	store ports.BinderStore
	Root  string
	ID    string
	Text  string
}

// NewNotesSetCommand creates a new NotesSetCommand
func NewNotesSetCommand(store ports.BinderStore, root, id, text string) *NotesSetCommand {
	return &NotesSetCommand{store: store, Root: root, ID: id, Text: text}
}

// Execute runs the notes set command
func (c *NotesSetCommand) Execute(ctx context.Context) (*NotesSetResult, error) {
	b, err := c.store.Load(c.Root)
	if err != nil {
		return nil, err
	}

	var session domain.NotesSession
	if err := session.Open(b, c.ID); err != nil {
		return nil, err
	}
	session.SetContent(c.Text)
	res, err := session.Commit(b)
	if err != nil {
		return nil, err
	}

	if !res.Committed {
		return &NotesSetResult{
			ID:      res.ID,
			Message: fmt.Sprintf("Notes for %s unchanged, nothing to do", res.ID),
		}, nil
	}

	if err := c.store.Save(b); err != nil {
		return nil, fmt.Errorf("failed to save binder: %w", err)
	}
	return &NotesSetResult{
		ID:        res.ID,
		Committed: true,
		Message:   fmt.Sprintf("Notes updated for %s", res.ID),
	}, nil
}
