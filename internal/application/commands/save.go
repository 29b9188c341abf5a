package commands

import (
	"context"
	"fmt"

	"binder/internal/domain"
	"binder/internal/ports"
)

// SaveCommand serializes the current binder back to its descriptor
type SaveCommand struct {
	store ports.BinderStore
	Root  string
}

// NewSaveCommand creates a new SaveCommand
func NewSaveCommand(store ports.BinderStore, root string) *SaveCommand {
	return &SaveCommand{store: store, Root: root}
}

// Execute runs the save command
func (c *SaveCommand) Execute(ctx context.Context) (string, error) {
	b, err := c.store.Load(c.Root)
	if err != nil {
		return "", err
	}
	if err := c.store.Save(b); err != nil {
		return "", err
	}
	return fmt.Sprintf("Saved %s", c.store.Path(b.Root)), nil
}

// InitCommand creates an empty descriptor at the project root
type InitCommand struct {
	store       ports.BinderStore
	Root        string
	DefaultMode string
}

// NewInitCommand creates a new InitCommand
func NewInitCommand(store ports.BinderStore, root string) *InitCommand {
	return &InitCommand{store: store, Root: root}
}

// Execute runs the init command. Creation goes through the store's
// confirmation flow; a declined creation leaves nothing behind.
func (c *InitCommand) Execute(ctx context.Context) (string, error) {
	if c.store.Exists(c.Root) {
		return fmt.Sprintf("Descriptor already exists at %s", c.store.Path(c.Root)), nil
	}

	b := domain.NewBinder(c.Root)
	b.DefaultMode = c.DefaultMode
	if err := c.store.Save(b); err != nil {
		return "", err
	}
	if !c.store.Exists(c.Root) {
		return "Descriptor creation declined", nil
	}
	return fmt.Sprintf("Created %s", c.store.Path(c.Root)), nil
}
