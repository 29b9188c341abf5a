package application

import (
	"errors"
	"fmt"

	"binder/internal/domain"
)

// Sentinel errors for common conditions
var (
	ErrNoBinder       = errors.New("no binder descriptor found")
	ErrFileUnreadable = errors.New("file unreadable")

	// Re-exported structure errors so callers match against one package
	ErrItemNotFound = domain.ErrItemNotFound
	ErrBoundary     = domain.ErrBoundary
	ErrDuplicateID  = domain.ErrDuplicateID
	ErrNotEditing   = domain.ErrNotEditing
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ComposeError represents a failed multiview composition
type ComposeError struct {
	ID   string
	Path string
	Err  error
}

func (e *ComposeError) Error() string {
	return fmt.Sprintf("cannot read %s (%s): %v", e.ID, e.Path, e.Err)
}

func (e *ComposeError) Is(target error) bool {
	return target == ErrFileUnreadable
}

func (e *ComposeError) Unwrap() error {
	return e.Err
}
