package domain

import (
	"errors"
	"testing"
)

func TestNotesSessionCommit(t *testing.T) {
	b := testBinder()
	var s NotesSession

	if err := s.Open(b, "a.txt"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// No edits: commit is a no-op.
	res, err := s.Commit(b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Committed {
		t.Error("expected clean commit to report nothing to do")
	}

	s.SetContent("first chapter, needs a rewrite")
	if !s.Dirty() {
		t.Error("expected session to be dirty after edit")
	}

	res, err = s.Commit(b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Committed || res.ID != "a.txt" {
		t.Errorf("unexpected commit result: %+v", res)
	}
	if s.Dirty() {
		t.Error("expected session clean after commit")
	}

	it, _ := b.GetItem("a.txt")
	if it.Notes != "first chapter, needs a rewrite" {
		t.Errorf("notes field does not match committed text: %q", it.Notes)
	}
}

func TestNotesSessionReopenSameID(t *testing.T) {
	b := testBinder()
	var s NotesSession

	if err := s.Open(b, "a.txt"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s.SetContent("in-progress edit")

	// Reopening the bound id must not discard the edit.
	if err := s.Open(b, "a.txt"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Content() != "in-progress edit" {
		t.Errorf("reopen discarded in-progress edit: %q", s.Content())
	}

	// A different id rebinds and reloads.
	b.Structure[1].Notes = "b notes"
	if err := s.Open(b, "b.txt"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.BoundID() != "b.txt" || s.Content() != "b notes" {
		t.Errorf("expected rebind to b.txt, got %q content %q", s.BoundID(), s.Content())
	}
}

func TestNotesSessionErrors(t *testing.T) {
	b := testBinder()
	var s NotesSession

	if _, err := s.Commit(b); !errors.Is(err, ErrNotEditing) {
		t.Errorf("expected ErrNotEditing outside a session, got %v", err)
	}

	if err := s.Open(b, "zzz"); !errors.Is(err, ErrItemNotFound) {
		t.Errorf("expected ErrItemNotFound, got %v", err)
	}
	if s.IsOpen() {
		t.Error("failed open must not bind the session")
	}
}

func TestNotesSessionDiscard(t *testing.T) {
	b := testBinder()
	var s NotesSession

	if err := s.Open(b, "a.txt"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s.SetContent("doomed edit")
	s.Discard()

	if s.IsOpen() {
		t.Error("expected session closed after discard")
	}
	it, _ := b.GetItem("a.txt")
	if it.Notes != "" {
		t.Errorf("discard must not touch the binder, got notes %q", it.Notes)
	}
}
