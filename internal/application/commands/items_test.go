package commands

import (
	"context"
	"errors"
	"path/filepath"
	"slices"
	"testing"

	"binder/internal/application"
)

func TestAddCommand(t *testing.T) {
	root, store := newTestProject(t, nil)

	cmd := NewAddCommand(store, root, "", "d.txt")
	result, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Item.ID != "d.txt" {
		t.Errorf("expected id to default to filename, got %s", result.Item.ID)
	}

	store.Invalidate()
	b, err := store.Load(root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !slices.Equal(b.IDs(), []string{"a.txt", "b.txt", "c.txt", "d.txt"}) {
		t.Errorf("unexpected persisted order: %v", b.IDs())
	}
}

func TestAddCommandDuplicate(t *testing.T) {
	root, store := newTestProject(t, nil)

	cmd := NewAddCommand(store, root, "a.txt", "elsewhere.txt")
	if _, err := cmd.Execute(context.Background()); !errors.Is(err, application.ErrDuplicateID) {
		t.Errorf("expected ErrDuplicateID, got %v", err)
	}
}

func TestAddCommandValidate(t *testing.T) {
	root, store := newTestProject(t, nil)

	cmd := NewAddCommand(store, root, "", "")
	if _, err := cmd.Execute(context.Background()); err == nil {
		t.Error("expected validation error for missing filename")
	}
}

func TestRemoveCommand(t *testing.T) {
	root, store := newTestProject(t, nil)

	cmd := NewRemoveCommand(store, root, "b.txt")
	if _, err := cmd.Execute(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	store.Invalidate()
	b, _ := store.Load(root)
	if !slices.Equal(b.IDs(), []string{"a.txt", "c.txt"}) {
		t.Errorf("unexpected persisted order: %v", b.IDs())
	}

	cmd = NewRemoveCommand(store, root, "zzz")
	if _, err := cmd.Execute(context.Background()); !errors.Is(err, application.ErrItemNotFound) {
		t.Errorf("expected ErrItemNotFound, got %v", err)
	}
}

func TestRenameCommand(t *testing.T) {
	root, store := newTestProject(t, nil)

	cmd := NewRenameCommand(store, root, "a.txt", "renamed.txt")
	if _, err := cmd.Execute(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	store.Invalidate()
	b, _ := store.Load(root)
	it, err := b.GetItem("a.txt")
	if err != nil {
		t.Fatalf("rename must keep the id stable: %v", err)
	}
	if it.Filename != "renamed.txt" {
		t.Errorf("expected renamed.txt, got %s", it.Filename)
	}
}

func TestPathCommand(t *testing.T) {
	root, store := newTestProject(t, nil)

	cmd := NewPathCommand(store, root, "a.txt")
	got, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := filepath.Join(root, "a.txt")
	if got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestNotesSetCommand(t *testing.T) {
	root, store := newTestProject(t, nil)

	cmd := NewNotesSetCommand(store, root, "a.txt", "revise the ending")
	result, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Committed {
		t.Errorf("expected a commit, got %s", result.Message)
	}

	store.Invalidate()
	b, _ := store.Load(root)
	it, _ := b.GetItem("a.txt")
	if it.Notes != "revise the ending" {
		t.Errorf("unexpected persisted notes: %q", it.Notes)
	}

	// Setting the same text again reports nothing to do.
	cmd = NewNotesSetCommand(store, root, "a.txt", "revise the ending")
	result, err = cmd.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Committed {
		t.Error("expected a no-op commit for unchanged text")
	}
}

func TestTagCommands(t *testing.T) {
	root, store := newTestProject(t, nil)
	ctx := context.Background()

	if _, err := NewTagAddCommand(store, root, "a.txt", "draft").Execute(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := NewTagAddCommand(store, root, "b.txt", "final").Execute(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tags, err := NewTagListCommand(store, root).Execute(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !slices.Equal(tags, []string{"draft", "final"}) {
		t.Errorf("unexpected tags: %v", tags)
	}

	if _, err := NewTagRemoveCommand(store, root, "a.txt", "draft").Execute(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	store.Invalidate()
	b, _ := store.Load(root)
	it, _ := b.GetItem("a.txt")
	if it.Tags != nil {
		t.Errorf("expected tags cleared, got %v", it.Tags)
	}
}

func TestListCommand(t *testing.T) {
	root, store := newTestProject(t, map[string]string{
		"a.txt": "Hello",
		"c.txt": "World",
	})
	if _, err := NewNotesSetCommand(store, root, "a.txt", "some notes").Execute(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cmd := NewListCommand(store, root)
	listing, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(listing.Lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(listing.Lines))
	}
	if listing.Lines[0].Status.Glyph() != "≡" {
		t.Errorf("expected has-notes glyph for a.txt, got %q", listing.Lines[0].Status.Glyph())
	}
	if listing.Lines[1].Status.Glyph() != "?" {
		t.Errorf("expected missing glyph for b.txt, got %q", listing.Lines[1].Status.Glyph())
	}
	if listing.Lines[2].Status.Glyph() != " " {
		t.Errorf("expected blank glyph for c.txt, got %q", listing.Lines[2].Status.Glyph())
	}
}

func TestNextCommand(t *testing.T) {
	root, store := newTestProject(t, nil)

	it, err := NewNextCommand(store, root, "a.txt", 1).Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if it.ID != "b.txt" {
		t.Errorf("expected b.txt, got %s", it.ID)
	}

	if _, err := NewNextCommand(store, root, "c.txt", 1).Execute(context.Background()); !errors.Is(err, application.ErrBoundary) {
		t.Errorf("expected ErrBoundary, got %v", err)
	}
}

func TestInitCommand(t *testing.T) {
	t.Run("creates a descriptor", func(t *testing.T) {
		root := t.TempDir()
		store := newStoreForInit(true)

		msg, err := NewInitCommand(store, root).Execute(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !store.Exists(root) {
			t.Errorf("expected descriptor created, got %q", msg)
		}
	})

	t.Run("declined creation leaves nothing behind", func(t *testing.T) {
		root := t.TempDir()
		store := newStoreForInit(false)

		msg, err := NewInitCommand(store, root).Execute(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if store.Exists(root) {
			t.Errorf("expected no descriptor, got %q", msg)
		}
	})
}
