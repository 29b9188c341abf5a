package commands

import (
	"context"
	"slices"
	"testing"
)

func TestMoveCommand(t *testing.T) {
	tests := []struct {
		name      string
		id        string
		delta     int
		wantMoved bool
		wantOrder []string
		wantErr   bool
	}{
		{
			name:      "move up",
			id:        "b.txt",
			delta:     -1,
			wantMoved: true,
			wantOrder: []string{"b.txt", "a.txt", "c.txt"},
		},
		{
			name:      "move down two",
			id:        "a.txt",
			delta:     2,
			wantMoved: true,
			wantOrder: []string{"c.txt", "b.txt", "a.txt"},
		},
		{
			name:      "boundary is informational, not an error",
			id:        "a.txt",
			delta:     -5,
			wantMoved: false,
			wantOrder: []string{"a.txt", "b.txt", "c.txt"},
		},
		{
			name:    "unknown id",
			id:      "zzz",
			delta:   1,
			wantErr: true,
		},
		{
			name:    "empty id fails validation",
			id:      "",
			delta:   1,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, store := newTestProject(t, nil)
			cmd := NewMoveCommand(store, root, tt.id, tt.delta)

			result, err := cmd.Execute(context.Background())
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result.Moved != tt.wantMoved {
				t.Errorf("expected moved=%v, got %v (%s)", tt.wantMoved, result.Moved, result.Message)
			}

			// Re-load from disk: the persisted order must match.
			store.Invalidate()
			b, err := store.Load(root)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !slices.Equal(b.IDs(), tt.wantOrder) {
				t.Errorf("expected persisted order %v, got %v", tt.wantOrder, b.IDs())
			}
		})
	}
}
