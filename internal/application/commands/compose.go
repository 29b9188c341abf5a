package commands

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"binder/internal/application"
	"binder/internal/ports"
)

// DefaultSeparator is appended after each composed file.
const DefaultSeparator = "\n\n"

// ComposeCommand concatenates the content of the given items, in the
// given order, into one read-only text artifact
type ComposeCommand struct {
	store     ports.BinderStore
	Root      string
	IDs       []string
	Separator string
}

// NewComposeCommand creates a new ComposeCommand
func NewComposeCommand(store ports.BinderStore, root string, ids []string, separator string) *ComposeCommand {
	return &ComposeCommand{store: store, Root: root, IDs: ids, Separator: separator}
}

// Validate checks if the compose operation is valid
func (c *ComposeCommand) Validate() error {
	if len(c.IDs) == 0 {
		return &application.ValidationError{
			Field:   "ids",
			Message: "at least one item id is required",
		}
	}
	return nil
}

// Execute runs the compose command. Composition aborts on the first
// unreadable file and discards any partial output; every id either
// contributes its full content plus the separator, or nothing at all.
func (c *ComposeCommand) Execute(ctx context.Context) (string, error) {
	if err := c.Validate(); err != nil {
		return "", err
	}

	b, err := c.store.Load(c.Root)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for _, id := range c.IDs {
		it, err := b.GetItem(id)
		if err != nil {
			return "", err
		}
		path := filepath.Join(b.Root, it.Filename)
		data, err := os.ReadFile(path)
		if err != nil {
			return "", &application.ComposeError{ID: id, Path: path, Err: err}
		}
		sb.Write(data)
		sb.WriteString(c.Separator)
	}
	return sb.String(), nil
}
