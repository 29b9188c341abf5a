package commands

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"binder/internal/adapters/descriptor"
	"binder/internal/application"
	"binder/internal/domain"
	"binder/internal/ports"
)

type answerConfirmer bool

func (a answerConfirmer) Confirm(string) bool { return bool(a) }

func newStoreForInit(answer bool) ports.BinderStore {
	return descriptor.NewStore(".binder.toml", answerConfirmer(answer))
}

// newTestProject writes a descriptor and backing files into a temp
// root and returns the root plus a ready store.
func newTestProject(t *testing.T, files map[string]string) (string, ports.BinderStore) {
	t.Helper()
	root := t.TempDir()
	store := descriptor.NewStore(".binder.toml", descriptor.AutoConfirm{})

	b := domain.NewBinder(root)
	for _, name := range []string{"a.txt", "b.txt", "c.txt"} {
		if err := b.Add(&domain.Item{ID: name, Filename: name}); err != nil {
			t.Fatalf("failed to build test binder: %v", err)
		}
	}
	if err := store.Save(b); err != nil {
		t.Fatalf("failed to save test binder: %v", err)
	}

	for name, content := range files {
		if err := os.WriteFile(filepath.Join(root, name), []byte(content), 0644); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
	}
	return root, store
}

func TestComposeCommand(t *testing.T) {
	root, store := newTestProject(t, map[string]string{
		"a.txt": "Hello",
		"b.txt": "middle",
		"c.txt": "World",
	})

	cmd := NewComposeCommand(store, root, []string{"a.txt", "c.txt"}, "\n\n")
	got, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Hello\n\nWorld\n\n" {
		t.Errorf("unexpected composition: %q", got)
	}
}

func TestComposeCommandAbortsOnUnreadable(t *testing.T) {
	// b.txt is listed in the binder but missing on disk.
	root, store := newTestProject(t, map[string]string{
		"a.txt": "Hello",
		"c.txt": "World",
	})

	cmd := NewComposeCommand(store, root, []string{"a.txt", "b.txt", "c.txt"}, "\n\n")
	got, err := cmd.Execute(context.Background())
	if !errors.Is(err, application.ErrFileUnreadable) {
		t.Fatalf("expected ErrFileUnreadable, got %v", err)
	}
	if got != "" {
		t.Errorf("expected partial output discarded, got %q", got)
	}

	var ce *application.ComposeError
	if !errors.As(err, &ce) || ce.ID != "b.txt" {
		t.Errorf("expected ComposeError naming b.txt, got %v", err)
	}
}

func TestComposeCommandUnknownID(t *testing.T) {
	root, store := newTestProject(t, map[string]string{"a.txt": "Hello"})

	cmd := NewComposeCommand(store, root, []string{"zzz"}, "\n\n")
	if _, err := cmd.Execute(context.Background()); !errors.Is(err, application.ErrItemNotFound) {
		t.Errorf("expected ErrItemNotFound, got %v", err)
	}
}

func TestComposeCommandValidate(t *testing.T) {
	root, store := newTestProject(t, nil)

	cmd := NewComposeCommand(store, root, nil, "\n\n")
	if _, err := cmd.Execute(context.Background()); err == nil {
		t.Error("expected validation error for empty id list")
	}
}
