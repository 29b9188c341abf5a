package domain

// NotesSession is the editing session for one item's notes field.
// It makes the host editor's implicit buffer state explicit: the
// bound id, the text, and whether the text has unsaved changes.
//
// Committing only writes into the in-memory binder; making the change
// durable is a separate, explicit descriptor save.
type NotesSession struct {
	boundID string
	loaded  string
	content string
	open    bool
}

// Open binds the session to an item and loads its notes (or empty).
// Reopening the currently bound id is a no-op so in-progress edits
// survive; a different id rebinds and reloads.
func (s *NotesSession) Open(b *Binder, id string) error {
	if s.open && s.boundID == id {
		return nil
	}
	it, err := b.GetItem(id)
	if err != nil {
		return err
	}
	s.boundID = id
	s.loaded = it.Notes
	s.content = it.Notes
	s.open = true
	return nil
}

// IsOpen reports whether the session is bound to an item.
func (s *NotesSession) IsOpen() bool { return s.open }

// BoundID returns the id the session is editing.
func (s *NotesSession) BoundID() string { return s.boundID }

// Content returns the session's current text.
func (s *NotesSession) Content() string { return s.content }

// SetContent replaces the session's text.
func (s *NotesSession) SetContent(text string) {
	s.content = text
}

// Dirty reports whether the text differs from what was loaded.
func (s *NotesSession) Dirty() bool {
	return s.open && s.content != s.loaded
}

// CommitResult reports the outcome of a commit.
type CommitResult struct {
	ID        string
	Committed bool
}

// Commit writes the session text back into the bound item's notes.
// Outside a session it fails with ErrNotEditing; with no unsaved
// changes it is a no-op reported as Committed=false.
func (s *NotesSession) Commit(b *Binder) (CommitResult, error) {
	if !s.open {
		return CommitResult{}, ErrNotEditing
	}
	if s.content == s.loaded {
		return CommitResult{ID: s.boundID, Committed: false}, nil
	}
	if err := b.SetNotes(s.boundID, s.content); err != nil {
		return CommitResult{}, err
	}
	s.loaded = s.content
	return CommitResult{ID: s.boundID, Committed: true}, nil
}

// Discard closes the session, dropping any uncommitted edits.
func (s *NotesSession) Discard() {
	*s = NotesSession{}
}
