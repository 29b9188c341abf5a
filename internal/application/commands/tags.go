package commands

import (
	"context"
	"fmt"

	"binder/internal/ports"
)

// TagAddCommand adds a tag to an item and persists it
type TagAddCommand struct {
	store ports.BinderStore
	Root  string
	ID    string
	Tag   string
}

// NewTagAddCommand creates a new TagAddCommand
func NewTagAddCommand(store ports.BinderStore, root, id, tag string) *TagAddCommand {
	return &TagAddCommand{store: store, Root: root, ID: id, Tag: tag}
}

// Execute runs the tag add command
func (c *TagAddCommand) Execute(ctx context.Context) (string, error) {
	b, err := c.store.Load(c.Root)
	if err != nil {
		return "", err
	}
	if err := b.AddTag(c.ID, c.Tag); err != nil {
		return "", err
	}
	if err := c.store.Save(b); err != nil {
		return "", fmt.Errorf("failed to save binder: %w", err)
	}
	return fmt.Sprintf("Tagged %s with %s", c.ID, c.Tag), nil
}

// TagRemoveCommand removes a tag from an item and persists it
type TagRemoveCommand struct {
	store ports.BinderStore
	Root  string
	ID    string
	Tag   string
}

// NewTagRemoveCommand creates a new TagRemoveCommand
func NewTagRemoveCommand(store ports.BinderStore, root, id, tag string) *TagRemoveCommand {
	return &TagRemoveCommand{store: store, Root: root, ID: id, Tag: tag}
}

// Execute runs the tag remove command
func (c *TagRemoveCommand) Execute(ctx context.Context) (string, error) {
	b, err := c.store.Load(c.Root)
	if err != nil {
		return "", err
	}
	if err := b.RemoveTag(c.ID, c.Tag); err != nil {
		return "", err
	}
	if err := c.store.Save(b); err != nil {
		return "", fmt.Errorf("failed to save binder: %w", err)
	}
	return fmt.Sprintf("Untagged %s from %s", c.Tag, c.ID), nil
}

// TagListCommand lists every tag in use across the structure
type TagListCommand struct {
	store ports.BinderStore
	Root  string
}

// NewTagListCommand creates a new TagListCommand
func NewTagListCommand(store ports.BinderStore, root string) *TagListCommand {
	return &TagListCommand{store: store, Root: root}
}

// Execute runs the tag list command
func (c *TagListCommand) Execute(ctx context.Context) ([]string, error) {
	b, err := c.store.Load(c.Root)
	if err != nil {
		return nil, err
	}
	return b.Tags(), nil
}
