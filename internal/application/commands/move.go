package commands

import (
	"context"
	"errors"
	"fmt"

	"binder/internal/application"
	"binder/internal/domain"
	"binder/internal/ports"
)

// MoveResult contains the result of a relative move
type MoveResult struct {
	ID      string
	Moved   bool
	Message string
}

// MoveCommand swaps an item with the item a given distance away and
// persists the new order
type MoveCommand struct {
	store ports.BinderStore
	Root  string
	ID    string
	Delta int
}

// NewMoveCommand creates a new MoveCommand
func NewMoveCommand(store ports.BinderStore, root, id string, delta int) *MoveCommand {
	return &MoveCommand{store: store, Root: root, ID: id, Delta: delta}
}

// Validate checks if the move operation is valid
func (c *MoveCommand) Validate() error {
	if c.ID == "" {
		return &application.ValidationError{
			Field:   "id",
			Message: "item id is required",
		}
	}
	return nil
}

// Execute runs the move command. A move past either end of the
// sequence is reported as a boundary condition, not an error, and
// leaves both the structure and the descriptor unchanged.
func (c *MoveCommand) Execute(ctx context.Context) (*MoveResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	b, err := c.store.Load(c.Root)
	if err != nil {
		return nil, err
	}

	if err := b.MoveRelative(c.ID, c.Delta); err != nil {
		if errors.Is(err, domain.ErrBoundary) {
			return &MoveResult{
				ID:      c.ID,
				Moved:   false,
				Message: fmt.Sprintf("Cannot move %s by %d: boundary reached", c.ID, c.Delta),
			}, nil
		}
		return nil, err
	}

	if err := c.store.Save(b); err != nil {
		return nil, fmt.Errorf("failed to save binder: %w", err)
	}

	return &MoveResult{
		ID:      c.ID,
		Moved:   true,
		Message: fmt.Sprintf("Moved %s to position %d", c.ID, b.IndexOf(c.ID)+1),
	}, nil
}
