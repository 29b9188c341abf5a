package commands

import (
	"context"
	"os"
	"path/filepath"

	"binder/internal/domain"
	"binder/internal/ports"
)

// fileExists returns the backing-file existence check for a root,
// used by the sidebar projection to flag missing items.
func fileExists(root string) func(string) bool {
	return func(filename string) bool {
		_, err := os.Stat(filepath.Join(root, filename))
		return err == nil
	}
}

// absJoin joins root and a relative filename into an absolute path.
func absJoin(root, filename string) string {
	path := filepath.Join(root, filename)
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}

// ListCommand projects the binder structure into a sidebar listing
type ListCommand struct {
	store ports.BinderStore
	Root  string
	Tag   string
	NoExt bool
}

// NewListCommand creates a new ListCommand
func NewListCommand(store ports.BinderStore, root string) *ListCommand {
	return &ListCommand{store: store, Root: root}
}

// Execute runs the list command
func (c *ListCommand) Execute(ctx context.Context) (domain.Listing, error) {
	b, err := c.store.Load(c.Root)
	if err != nil {
		return domain.Listing{}, err
	}
	opts := domain.ProjectOptions{Tag: c.Tag, HideExtensions: c.NoExt}
	return domain.ProjectListing(b, fileExists(b.Root), opts), nil
}

// NextCommand resolves the item n positions after a given id
type NextCommand struct {
	store ports.BinderStore
	Root  string
	ID    string
	N     int
}

// NewNextCommand creates a new NextCommand
func NewNextCommand(store ports.BinderStore, root, id string, n int) *NextCommand {
	return &NextCommand{store: store, Root: root, ID: id, N: n}
}

// Execute runs the next command. A position past either end of the
// sequence yields domain.ErrBoundary for the caller to surface as an
// informational message.
func (c *NextCommand) Execute(ctx context.Context) (*domain.Item, error) {
	b, err := c.store.Load(c.Root)
	if err != nil {
		return nil, err
	}
	return b.Next(c.ID, c.N)
}
