package domain

import (
	"path/filepath"
	"strings"
)

// LineStatus is the status glyph of a sidebar line.
type LineStatus int

const (
	StatusNone LineStatus = iota
	StatusMissing
	StatusNotes
)

// Glyph returns the one-character marker for the status.
func (s LineStatus) Glyph() string {
	switch s {
	case StatusMissing:
		return "?"
	case StatusNotes:
		return "≡"
	default:
		return " "
	}
}

// Line is one row of a sidebar listing. It carries the binding back
// to the item id; the id is never part of the visible text.
type Line struct {
	ID      string
	Display string
	Status  LineStatus
	Marked  bool
}

// Listing is a projection of a binder structure into navigable lines.
// It is a view-layer artifact: marking lines never touches the binder.
type Listing struct {
	Lines []Line
}

// ProjectOptions controls how a binder is projected into a listing.
type ProjectOptions struct {
	// Tag, when non-empty, narrows the listing to items carrying it.
	Tag string
	// HideExtensions strips file extensions from the displayed names.
	HideExtensions bool
}

// ProjectListing renders a binder into a listing, one line per item.
// exists reports whether an item's backing file is present; it is a
// collaborator because the projection itself does no I/O beyond it.
// Projection is idempotent: the same binder and options yield the
// same listing.
func ProjectListing(b *Binder, exists func(filename string) bool, opts ProjectOptions) Listing {
	var l Listing
	for _, it := range b.Structure {
		if opts.Tag != "" && !it.HasTag(opts.Tag) {
			continue
		}
		display := it.Filename
		if opts.HideExtensions {
			display = strings.TrimSuffix(display, filepath.Ext(display))
		}
		status := StatusNone
		switch {
		case exists != nil && !exists(it.Filename):
			status = StatusMissing
		case it.Notes != "":
			status = StatusNotes
		}
		l.Lines = append(l.Lines, Line{ID: it.ID, Display: display, Status: status})
	}
	return l
}

// IDAt resolves a line number (0-based) to an item id.
func (l Listing) IDAt(line int) (string, bool) {
	if line < 0 || line >= len(l.Lines) {
		return "", false
	}
	return l.Lines[line].ID, true
}

// Mark flags a line as selected. Out-of-range lines are ignored.
func (l *Listing) Mark(line int) {
	if line >= 0 && line < len(l.Lines) {
		l.Lines[line].Marked = true
	}
}

// Unmark clears a line's selection flag.
func (l *Listing) Unmark(line int) {
	if line >= 0 && line < len(l.Lines) {
		l.Lines[line].Marked = false
	}
}

// ToggleMark flips a line's selection flag.
func (l *Listing) ToggleMark(line int) {
	if line >= 0 && line < len(l.Lines) {
		l.Lines[line].Marked = !l.Lines[line].Marked
	}
}

// MarkedIDs returns the ids of all marked lines, in listing order.
func (l Listing) MarkedIDs() []string {
	var ids []string
	for _, line := range l.Lines {
		if line.Marked {
			ids = append(ids, line.ID)
		}
	}
	return ids
}

// CarryMarks copies marks from a previous listing by item id, so a
// re-projection of the same structure keeps its selections.
func (l *Listing) CarryMarks(prev Listing) {
	marked := make(map[string]bool)
	for _, line := range prev.Lines {
		if line.Marked {
			marked[line.ID] = true
		}
	}
	for i := range l.Lines {
		l.Lines[i].Marked = marked[l.Lines[i].ID]
	}
}

// LineOf returns the line number bound to an item id, or -1.
func (l Listing) LineOf(id string) int {
	for i, line := range l.Lines {
		if line.ID == id {
			return i
		}
	}
	return -1
}
