package application

import "binder/internal/domain"

// Re-export domain types for use by adapters
type (
	Binder       = domain.Binder
	Item         = domain.Item
	Listing      = domain.Listing
	Line         = domain.Line
	NotesSession = domain.NotesSession
)
