package descriptor

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"binder/internal/application"
	"binder/internal/domain"
)

type confirmStub struct {
	answer bool
	asked  int
}

func (c *confirmStub) Confirm(string) bool {
	c.asked++
	return c.answer
}

func testStructure() []*domain.Item {
	return []*domain.Item{
		{ID: "a.txt", Filename: "a.txt", Notes: "opening chapter\nwith two lines"},
		{ID: "b.txt", Filename: "b.txt", Tags: []string{"draft", "act-1"}},
		{ID: "c.txt", Filename: "sub/c.txt"},
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	root := t.TempDir()
	store := NewStore(".binder.toml", AutoConfirm{})

	b := domain.NewBinder(root)
	b.DefaultMode = "outline"
	b.Structure = testStructure()

	require.NoError(t, store.Save(b))

	store.Invalidate()
	loaded, err := store.Load(root)
	require.NoError(t, err)

	assert.Equal(t, b.DefaultMode, loaded.DefaultMode)
	require.Len(t, loaded.Structure, 3)
	for i, it := range b.Structure {
		assert.Equal(t, *it, *loaded.Structure[i])
	}
}

func TestSaveWritesHeader(t *testing.T) {
	root := t.TempDir()
	store := NewStore(".binder.toml", AutoConfirm{})

	b := domain.NewBinder(root)
	b.Structure = testStructure()
	require.NoError(t, store.Save(b))

	data, err := os.ReadFile(store.Path(root))
	require.NoError(t, err)

	lines := strings.SplitN(string(data), "\n", 3)
	require.GreaterOrEqual(t, len(lines), 3)
	assert.True(t, strings.HasPrefix(lines[0], "# "), "first header line: %q", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "# "), "second header line: %q", lines[1])

	// No temp file left behind.
	_, err = os.Stat(store.Path(root) + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestLoadUsesCacheUntilFileChanges(t *testing.T) {
	root := t.TempDir()
	store := NewStore(".binder.toml", AutoConfirm{})

	b := domain.NewBinder(root)
	b.Structure = testStructure()
	require.NoError(t, store.Save(b))
	store.Invalidate()

	// Backdate the file so it is strictly older than the load time.
	past := time.Now().Add(-time.Minute)
	require.NoError(t, os.Chtimes(store.Path(root), past, past))

	first, err := store.Load(root)
	require.NoError(t, err)
	second, err := store.Load(root)
	require.NoError(t, err)
	assert.Same(t, first, second, "expected the cached instance, not a re-parse")

	// Advance the mtime past the cache time: must re-parse.
	future := time.Now().Add(time.Minute)
	require.NoError(t, os.Chtimes(store.Path(root), future, future))

	third, err := store.Load(root)
	require.NoError(t, err)
	assert.NotSame(t, first, third, "expected a re-parse after the file changed")
}

func TestLoadDifferentRootEvictsCache(t *testing.T) {
	rootA := t.TempDir()
	rootB := t.TempDir()
	store := NewStore(".binder.toml", AutoConfirm{})

	ba := domain.NewBinder(rootA)
	ba.Structure = []*domain.Item{{ID: "a.txt", Filename: "a.txt"}}
	require.NoError(t, store.Save(ba))

	bb := domain.NewBinder(rootB)
	bb.Structure = []*domain.Item{{ID: "b.txt", Filename: "b.txt"}}
	require.NoError(t, store.Save(bb))

	got, err := store.Load(rootA)
	require.NoError(t, err)
	require.Len(t, got.Structure, 1)
	assert.Equal(t, "a.txt", got.Structure[0].ID)

	got, err = store.Load(rootB)
	require.NoError(t, err)
	require.Len(t, got.Structure, 1)
	assert.Equal(t, "b.txt", got.Structure[0].ID)
}

func TestLoadNoDescriptor(t *testing.T) {
	store := NewStore(".binder.toml", AutoConfirm{})
	_, err := store.Load(t.TempDir())
	assert.ErrorIs(t, err, application.ErrNoBinder)
}

func TestLoadRejectsDuplicateIDs(t *testing.T) {
	root := t.TempDir()
	store := NewStore(".binder.toml", AutoConfirm{})

	descriptor := `[[structure]]
id = "a.txt"
filename = "a.txt"

[[structure]]
id = "a.txt"
filename = "other.txt"
`
	require.NoError(t, os.WriteFile(store.Path(root), []byte(descriptor), 0644))

	_, err := store.Load(root)
	assert.ErrorIs(t, err, application.ErrDuplicateID)
}

func TestLocate(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "chapters", "act-1")
	require.NoError(t, os.MkdirAll(nested, 0755))

	store := NewStore(".binder.toml", AutoConfirm{})
	b := domain.NewBinder(root)
	require.NoError(t, store.Save(b))

	found, err := store.Locate(nested)
	require.NoError(t, err)
	assert.Equal(t, root, found)

	_, err = store.Locate(t.TempDir())
	assert.ErrorIs(t, err, application.ErrNoBinder)
}

func TestLocateNearestMatchWins(t *testing.T) {
	outer := t.TempDir()
	inner := filepath.Join(outer, "sub")
	require.NoError(t, os.MkdirAll(inner, 0755))

	store := NewStore(".binder.toml", AutoConfirm{})
	require.NoError(t, store.Save(domain.NewBinder(outer)))
	require.NoError(t, store.Save(domain.NewBinder(inner)))

	found, err := store.Locate(inner)
	require.NoError(t, err)
	assert.Equal(t, inner, found)
}

func TestSaveConfirmation(t *testing.T) {
	t.Run("declined creation is a no-op", func(t *testing.T) {
		root := t.TempDir()
		confirm := &confirmStub{answer: false}
		store := NewStore(".binder.toml", confirm)

		require.NoError(t, store.Save(domain.NewBinder(root)))

		assert.Equal(t, 1, confirm.asked)
		assert.False(t, store.Exists(root))
	})

	t.Run("accepted creation writes the file", func(t *testing.T) {
		root := t.TempDir()
		confirm := &confirmStub{answer: true}
		store := NewStore(".binder.toml", confirm)

		require.NoError(t, store.Save(domain.NewBinder(root)))

		assert.Equal(t, 1, confirm.asked)
		assert.True(t, store.Exists(root))
	})

	t.Run("existing descriptor is overwritten without asking", func(t *testing.T) {
		root := t.TempDir()
		confirm := &confirmStub{answer: true}
		store := NewStore(".binder.toml", confirm)

		require.NoError(t, store.Save(domain.NewBinder(root)))
		require.NoError(t, store.Save(domain.NewBinder(root)))

		assert.Equal(t, 1, confirm.asked)
	})
}

func TestOrderPreservedAcrossRoundTrips(t *testing.T) {
	root := t.TempDir()
	store := NewStore(".binder.toml", AutoConfirm{})

	b := domain.NewBinder(root)
	b.Structure = testStructure()
	require.NoError(t, store.Save(b))

	store.Invalidate()
	loaded, err := store.Load(root)
	require.NoError(t, err)

	require.NoError(t, loaded.MoveRelative("b.txt", -1))
	require.NoError(t, store.Save(loaded))

	store.Invalidate()
	again, err := store.Load(root)
	require.NoError(t, err)
	assert.Equal(t, []string{"b.txt", "a.txt", "c.txt"}, again.IDs())
}
