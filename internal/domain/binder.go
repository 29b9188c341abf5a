package domain

import (
	"fmt"
	"slices"
	"sort"
)

// Item is a single entry in a binder structure: one backing file plus
// its metadata. The ID is stable across reorders and is the only way
// items are referenced.
type Item struct {
	ID       string   `toml:"id"`
	Filename string   `toml:"filename"`
	Notes    string   `toml:"notes,omitempty"`
	Tags     []string `toml:"tags,omitempty"`
}

// HasTag reports whether the item carries the given tag.
func (it *Item) HasTag(tag string) bool {
	return slices.Contains(it.Tags, tag)
}

// Binder is the in-memory form of a project descriptor: an ordered
// sequence of items plus the top-level descriptor fields. Order is
// reading order and is preserved across load/save round trips.
type Binder struct {
	Root        string  `toml:"-"`
	DefaultMode string  `toml:"default-mode,omitempty"`
	Structure   []*Item `toml:"structure,omitempty"`
}

// NewBinder creates an empty binder rooted at the given directory.
func NewBinder(root string) *Binder {
	return &Binder{Root: root}
}

// Validate checks structural invariants, currently id uniqueness.
func (b *Binder) Validate() error {
	seen := make(map[string]bool, len(b.Structure))
	for _, it := range b.Structure {
		if seen[it.ID] {
			return fmt.Errorf("%w: %s", ErrDuplicateID, it.ID)
		}
		seen[it.ID] = true
	}
	return nil
}

// GetItem returns the item with the given id.
func (b *Binder) GetItem(id string) (*Item, error) {
	i := b.IndexOf(id)
	if i < 0 {
		return nil, fmt.Errorf("%w: %s", ErrItemNotFound, id)
	}
	return b.Structure[i], nil
}

// GetProperty reads a named field of an item. An absent field (or an
// unknown id) yields ok=false rather than an error.
func (b *Binder) GetProperty(id, key string) (any, bool) {
	it, err := b.GetItem(id)
	if err != nil {
		return nil, false
	}
	switch key {
	case "filename":
		return it.Filename, true
	case "notes":
		if it.Notes == "" {
			return nil, false
		}
		return it.Notes, true
	case "tags":
		if len(it.Tags) == 0 {
			return nil, false
		}
		return it.Tags, true
	}
	return nil, false
}

// IndexOf returns the position of the item with the given id, or -1.
// The id is the item's stable identity; positions change under
// reordering and are never used to reference items.
func (b *Binder) IndexOf(id string) int {
	for i, it := range b.Structure {
		if it.ID == id {
			return i
		}
	}
	return -1
}

// MoveRelative swaps the item with the item delta positions away.
// A target position outside the sequence yields ErrBoundary and
// leaves the structure unchanged. The id set is always preserved.
func (b *Binder) MoveRelative(id string, delta int) error {
	i := b.IndexOf(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrItemNotFound, id)
	}
	j := i + delta
	if j < 0 || j >= len(b.Structure) {
		return ErrBoundary
	}
	b.Structure[i], b.Structure[j] = b.Structure[j], b.Structure[i]
	return nil
}

// Next returns the item n positions after the given id's position.
// Past either end it yields ErrBoundary; the caller decides whether
// to wrap, stop, or message the boundary.
func (b *Binder) Next(id string, n int) (*Item, error) {
	i := b.IndexOf(id)
	if i < 0 {
		return nil, fmt.Errorf("%w: %s", ErrItemNotFound, id)
	}
	j := i + n
	if j < 0 || j >= len(b.Structure) {
		return nil, ErrBoundary
	}
	return b.Structure[j], nil
}

// Add appends an item to the end of the structure.
func (b *Binder) Add(it *Item) error {
	if b.IndexOf(it.ID) >= 0 {
		return fmt.Errorf("%w: %s", ErrDuplicateID, it.ID)
	}
	b.Structure = append(b.Structure, it)
	return nil
}

// Remove deletes the item with the given id from the structure.
// The backing file is not touched.
func (b *Binder) Remove(id string) error {
	i := b.IndexOf(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrItemNotFound, id)
	}
	b.Structure = append(b.Structure[:i], b.Structure[i+1:]...)
	return nil
}

// SetFilename changes the backing file of an item. The id stays stable.
func (b *Binder) SetFilename(id, filename string) error {
	it, err := b.GetItem(id)
	if err != nil {
		return err
	}
	it.Filename = filename
	return nil
}

// SetNotes replaces the notes field of an item, creating it if absent.
func (b *Binder) SetNotes(id, text string) error {
	it, err := b.GetItem(id)
	if err != nil {
		return err
	}
	it.Notes = text
	return nil
}

// AddTag adds a tag to an item. Tags have set semantics: adding an
// existing tag is a no-op.
func (b *Binder) AddTag(id, tag string) error {
	it, err := b.GetItem(id)
	if err != nil {
		return err
	}
	if !it.HasTag(tag) {
		it.Tags = append(it.Tags, tag)
	}
	return nil
}

// RemoveTag removes a tag from an item. Removing an absent tag is a no-op.
func (b *Binder) RemoveTag(id, tag string) error {
	it, err := b.GetItem(id)
	if err != nil {
		return err
	}
	it.Tags = slices.DeleteFunc(it.Tags, func(t string) bool { return t == tag })
	if len(it.Tags) == 0 {
		it.Tags = nil
	}
	return nil
}

// Tags returns every tag in use across the structure, sorted.
func (b *Binder) Tags() []string {
	seen := make(map[string]bool)
	var tags []string
	for _, it := range b.Structure {
		for _, t := range it.Tags {
			if !seen[t] {
				seen[t] = true
				tags = append(tags, t)
			}
		}
	}
	sort.Strings(tags)
	return tags
}

// WithTag returns the items carrying the given tag, in structure order.
func (b *Binder) WithTag(tag string) []*Item {
	var items []*Item
	for _, it := range b.Structure {
		if it.HasTag(tag) {
			items = append(items, it)
		}
	}
	return items
}

// Clone returns a deep copy of the binder.
func (b *Binder) Clone() *Binder {
	c := &Binder{
		Root:        b.Root,
		DefaultMode: b.DefaultMode,
	}
	if b.Structure != nil {
		c.Structure = make([]*Item, len(b.Structure))
		for i, it := range b.Structure {
			dup := *it
			dup.Tags = slices.Clone(it.Tags)
			c.Structure[i] = &dup
		}
	}
	return c
}

// IDs returns the item ids in structure order.
func (b *Binder) IDs() []string {
	ids := make([]string, len(b.Structure))
	for i, it := range b.Structure {
		ids[i] = it.ID
	}
	return ids
}
