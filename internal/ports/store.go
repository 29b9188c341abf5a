package ports

import "binder/internal/domain"

// BinderStore defines the interface for descriptor persistence.
// Implementations cache one root's binder at a time and guard the
// cache with a freshness check against the on-disk descriptor.
type BinderStore interface {
	// Locate searches dir and its ancestors for a descriptor file
	// and returns the nearest project root containing one.
	Locate(dir string) (string, error)

	// Load returns the binder for root, from cache when fresh.
	Load(root string) (*domain.Binder, error)

	// Save serializes the binder to its descriptor path. When no
	// descriptor exists yet the store's Confirmer is consulted; a
	// declined creation makes the save a no-op.
	Save(b *domain.Binder) error

	// Exists reports whether a descriptor file is present at root.
	Exists(root string) bool

	// Path returns the descriptor path for a root.
	Path(root string) string

	// Invalidate drops the cached binder.
	Invalidate()
}

// Confirmer asks the user a yes/no question before a destructive or
// file-creating action.
type Confirmer interface {
	Confirm(question string) bool
}
