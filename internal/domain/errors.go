package domain

import "errors"

// Sentinel errors for structure operations
var (
	ErrItemNotFound = errors.New("item not found")
	ErrBoundary     = errors.New("boundary reached")
	ErrDuplicateID  = errors.New("duplicate item id")
	ErrNotEditing   = errors.New("no notes editing session")
)
