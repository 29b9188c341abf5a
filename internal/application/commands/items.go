package commands

import (
	"context"
	"fmt"

	"binder/internal/application"
	"binder/internal/domain"
	"binder/internal/ports"
)

// AddResult contains the result of adding an item
type AddResult struct {
	Item    *domain.Item
	Message string
}

// AddCommand appends a new item to the end of the structure and
// persists it. The id defaults to the filename, which is how items
// are keyed when nothing else is specified.
type AddCommand struct {
	store    ports.BinderStore
	Root     string
	ID       string
	Filename string
	Tags     []string
}

// NewAddCommand creates a new AddCommand
func NewAddCommand(store ports.BinderStore, root, id, filename string) *AddCommand {
	return &AddCommand{store: store, Root: root, ID: id, Filename: filename}
}

// Validate checks if the add operation is valid
func (c *AddCommand) Validate() error {
	if c.Filename == "" {
		return &application.ValidationError{
			Field:   "filename",
			Message: "filename is required",
		}
	}
	return nil
}

// Execute runs the add command
func (c *AddCommand) Execute(ctx context.Context) (*AddResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	b, err := c.store.Load(c.Root)
	if err != nil {
		return nil, err
	}

	id := c.ID
	if id == "" {
		id = c.Filename
	}
	it := &domain.Item{ID: id, Filename: c.Filename, Tags: c.Tags}
	if err := b.Add(it); err != nil {
		return nil, err
	}

	if err := c.store.Save(b); err != nil {
		return nil, fmt.Errorf("failed to save binder: %w", err)
	}

	return &AddResult{
		Item:    it,
		Message: fmt.Sprintf("Added %s at position %d", id, len(b.Structure)),
	}, nil
}

// RemoveCommand deletes an item from the structure and persists the
// change. The backing file is left alone.
type RemoveCommand struct {
	store ports.BinderStore
	Root  string
	ID    string
}

// NewRemoveCommand creates a new RemoveCommand
func NewRemoveCommand(store ports.BinderStore, root, id string) *RemoveCommand {
	return &RemoveCommand{store: store, Root: root, ID: id}
}

// Execute runs the remove command
func (c *RemoveCommand) Execute(ctx context.Context) (string, error) {
	b, err := c.store.Load(c.Root)
	if err != nil {
		return "", err
	}
	if err := b.Remove(c.ID); err != nil {
		return "", err
	}
	if err := c.store.Save(b); err != nil {
		return "", fmt.Errorf("failed to save binder: %w", err)
	}
	return fmt.Sprintf("Removed %s (file kept on disk)", c.ID), nil
}

// RenameCommand changes an item's backing filename and persists it
type RenameCommand struct {
	store    ports.BinderStore
	Root     string
	ID       string
	Filename string
}

// NewRenameCommand creates a new RenameCommand
func NewRenameCommand(store ports.BinderStore, root, id, filename string) *RenameCommand {
	return &RenameCommand{store: store, Root: root, ID: id, Filename: filename}
}

// Validate checks if the rename operation is valid
func (c *RenameCommand) Validate() error {
	if c.Filename == "" {
		return &application.ValidationError{
			Field:   "filename",
			Message: "filename is required",
		}
	}
	return nil
}

// Execute runs the rename command
func (c *RenameCommand) Execute(ctx context.Context) (string, error) {
	if err := c.Validate(); err != nil {
		return "", err
	}
	b, err := c.store.Load(c.Root)
	if err != nil {
		return "", err
	}
	if err := b.SetFilename(c.ID, c.Filename); err != nil {
		return "", err
	}
	if err := c.store.Save(b); err != nil {
		return "", fmt.Errorf("failed to save binder: %w", err)
	}
	return fmt.Sprintf("Renamed %s to %s", c.ID, c.Filename), nil
}

// PathCommand resolves an item id to the absolute path of its backing file
type PathCommand struct {
	store ports.BinderStore
	Root  string
	ID    string
}

// NewPathCommand creates a new PathCommand
func NewPathCommand(store ports.BinderStore, root, id string) *PathCommand {
	return &PathCommand{store: store, Root: root, ID: id}
}

// Execute runs the path command
func (c *PathCommand) Execute(ctx context.Context) (string, error) {
	b, err := c.store.Load(c.Root)
	if err != nil {
		return "", err
	}
	it, err := b.GetItem(c.ID)
	if err != nil {
		return "", err
	}
	return absJoin(b.Root, it.Filename), nil
}
