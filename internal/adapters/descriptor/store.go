package descriptor

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"binder/internal/application"
	"binder/internal/domain"
	"binder/internal/ports"
)

// Header written before the serialized descriptor. The TOML reader
// skips comment lines, so the header survives round trips untouched.
const header = "# Binder project descriptor.\n" +
	"# Item order is reading order; edit by hand or through the binder tools.\n"

// Store implements ports.BinderStore on the filesystem. It keeps one
// root's binder cached at a time; switching roots evicts the previous
// cache. The freshness token (root + load time) guards against the
// descriptor file having been modified by another process.
type Store struct {
	filename string
	confirm  ports.Confirmer

	cached     *domain.Binder
	cachedRoot string
	loadedAt   time.Time
}

// NewStore creates a descriptor store. filename is the descriptor
// file name within a project root (e.g. ".binder.toml").
func NewStore(filename string, confirm ports.Confirmer) *Store {
	return &Store{filename: filename, confirm: confirm}
}

// Path returns the descriptor path for a project root.
func (s *Store) Path(root string) string {
	return filepath.Join(root, s.filename)
}

// Exists reports whether a descriptor file is present at root.
func (s *Store) Exists(root string) bool {
	_, err := os.Stat(s.Path(root))
	return err == nil
}

// Locate searches dir and its ancestors for the descriptor file and
// returns the nearest directory containing one.
func (s *Store) Locate(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	for {
		if s.Exists(abs) {
			return abs, nil
		}
		parent := filepath.Dir(abs)
		if parent == abs {
			return "", fmt.Errorf("%w: searched %s and ancestors", application.ErrNoBinder, dir)
		}
		abs = parent
	}
}

// Load returns the binder for root. The cached binder is reused only
// when the requested root matches the cached root and the descriptor
// file on disk is strictly older than the cache; otherwise the file
// is re-parsed and the cache replaced.
func (s *Store) Load(root string) (*domain.Binder, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	path := s.Path(abs)

	if s.cached != nil && s.cachedRoot == abs {
		if fi, err := os.Stat(path); err == nil && fi.ModTime().Before(s.loadedAt) {
			return s.cached, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", application.ErrNoBinder, path)
		}
		return nil, fmt.Errorf("failed to read descriptor: %w", err)
	}

	var b domain.Binder
	if err := toml.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("failed to parse descriptor %s: %w", path, err)
	}
	b.Root = abs
	if err := b.Validate(); err != nil {
		return nil, fmt.Errorf("descriptor %s: %w", path, err)
	}

	s.cached = &b
	s.cachedRoot = abs
	s.loadedAt = time.Now()
	return s.cached, nil
}

// Save serializes the binder to its descriptor path: the fixed header
// comment followed by the TOML body, written atomically via a temp
// file and rename. When no descriptor exists yet the Confirmer is
// asked before creating one; a declined creation is a no-op.
func (s *Store) Save(b *domain.Binder) error {
	path := s.Path(b.Root)

	if !s.Exists(b.Root) && s.confirm != nil {
		if !s.confirm.Confirm(fmt.Sprintf("Create binder descriptor at %s?", path)) {
			return nil
		}
	}

	buf := new(bytes.Buffer)
	buf.WriteString(header)
	if err := toml.NewEncoder(buf).Encode(b); err != nil {
		return fmt.Errorf("failed to serialize descriptor: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write descriptor: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to write descriptor: %w", err)
	}

	s.cached = b
	s.cachedRoot = b.Root
	s.loadedAt = time.Now()
	return nil
}

// Invalidate drops the cached binder, forcing the next Load to re-parse.
func (s *Store) Invalidate() {
	s.cached = nil
	s.cachedRoot = ""
}

// AutoConfirm accepts every confirmation without prompting. Used by
// surfaces that run their own confirmation flow (TUI) or none (MCP).
type AutoConfirm struct{}

// Confirm always answers yes.
func (AutoConfirm) Confirm(string) bool { return true }
