package views

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"binder/internal/adapters/tui/styles"
	"binder/internal/application"
	"binder/internal/domain"
	"binder/internal/ports"
)

// SidebarKeyMap defines key bindings for the sidebar view
type SidebarKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	MoveUp    key.Binding
	MoveDown  key.Binding
	Mark      key.Binding
	Unmark    key.Binding
	Notes     key.Binding
	Multiview key.Binding
	Open      key.Binding
	CopyPath  key.Binding
	Add       key.Binding
	Remove    key.Binding
	TagFilter key.Binding
	ToggleExt key.Binding
	Save      key.Binding
	Reload    key.Binding
	Help      key.Binding
	Quit      key.Binding
}

var SidebarKeys = SidebarKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	MoveUp: key.NewBinding(
		key.WithKeys("K", "shift+up"),
		key.WithHelp("K", "move item up"),
	),
	MoveDown: key.NewBinding(
		key.WithKeys("J", "shift+down"),
		key.WithHelp("J", "move item down"),
	),
	Mark: key.NewBinding(
		key.WithKeys("m", " "),
		key.WithHelp("m/space", "mark"),
	),
	Unmark: key.NewBinding(
		key.WithKeys("u"),
		key.WithHelp("u", "unmark all"),
	),
	Notes: key.NewBinding(
		key.WithKeys("n", "enter"),
		key.WithHelp("n/enter", "notes"),
	),
	Multiview: key.NewBinding(
		key.WithKeys("v"),
		key.WithHelp("v", "view marked"),
	),
	Open: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "open in editor"),
	),
	CopyPath: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy path"),
	),
	Add: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "add item"),
	),
	Remove: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "remove item"),
	),
	TagFilter: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "cycle tag filter"),
	),
	ToggleExt: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "toggle extensions"),
	),
	Save: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "save"),
	),
	Reload: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reload"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// SidebarModel is the model for the binder structure listing
type SidebarModel struct {
	ViewState

	store  ports.BinderStore
	root   string
	binder *domain.Binder

	listing   domain.Listing
	cursor    int
	tagFilter string
	hideExt   bool
}

// NewSidebarModel creates a new sidebar model
func NewSidebarModel(store ports.BinderStore, root string) *SidebarModel {
	return &SidebarModel{store: store, root: root}
}

// Binder returns the loaded binder, nil before the first load
func (m *SidebarModel) Binder() *domain.Binder {
	return m.binder
}

// Init initializes the sidebar
func (m *SidebarModel) Init() tea.Cmd {
	return m.loadBinder
}

type binderLoadedMsg struct {
	binder *domain.Binder
}

func (m *SidebarModel) loadBinder() tea.Msg {
	b, err := m.store.Load(m.root)
	if err != nil {
		// A missing descriptor is a valid starting point: begin with
		// an empty binder and create the file on the first save.
		if errors.Is(err, application.ErrNoBinder) {
			return binderLoadedMsg{domain.NewBinder(m.root)}
		}
		return errMsg{err}
	}
	return binderLoadedMsg{b}
}

// Reload drops the cache and re-reads the descriptor
func (m *SidebarModel) Reload() tea.Cmd {
	m.store.Invalidate()
	return m.loadBinder
}

// Refresh re-projects the listing from the current binder, carrying
// marks over and keeping the cursor in range
func (m *SidebarModel) Refresh() {
	if m.binder == nil {
		return
	}
	prev := m.listing
	opts := domain.ProjectOptions{Tag: m.tagFilter, HideExtensions: m.hideExt}
	m.listing = domain.ProjectListing(m.binder, m.exists, opts)
	m.listing.CarryMarks(prev)
	if m.cursor >= len(m.listing.Lines) {
		m.cursor = len(m.listing.Lines) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *SidebarModel) exists(filename string) bool {
	_, err := os.Stat(filepath.Join(m.root, filename))
	return err == nil
}

func (m *SidebarModel) selectedID() (string, bool) {
	return m.listing.IDAt(m.cursor)
}

// Update handles messages for the sidebar
func (m *SidebarModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case binderLoadedMsg:
		m.binder = msg.binder
		m.Refresh()
		return m, nil

	case errMsg:
		m.SetMessage(msg.err.Error(), true)
		return m, nil

	case statusMsg:
		m.SetMessage(msg.message, false)
		return m, nil

	case tea.KeyMsg:
		m.ClearMessage()
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *SidebarModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, SidebarKeys.Quit):
		return m, tea.Quit

	case key.Matches(msg, SidebarKeys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, SidebarKeys.Down):
		if m.cursor < len(m.listing.Lines)-1 {
			m.cursor++
		}

	case key.Matches(msg, SidebarKeys.MoveUp):
		m.moveSelected(-1)

	case key.Matches(msg, SidebarKeys.MoveDown):
		m.moveSelected(1)

	case key.Matches(msg, SidebarKeys.Mark):
		m.listing.ToggleMark(m.cursor)

	case key.Matches(msg, SidebarKeys.Unmark):
		for i := range m.listing.Lines {
			m.listing.Unmark(i)
		}

	case key.Matches(msg, SidebarKeys.Notes):
		if id, ok := m.selectedID(); ok {
			return m, func() tea.Msg { return SwitchToNotesMsg{ID: id} }
		}

	case key.Matches(msg, SidebarKeys.Multiview):
		ids := m.listing.MarkedIDs()
		if len(ids) == 0 {
			if id, ok := m.selectedID(); ok {
				ids = []string{id}
			}
		}
		if len(ids) > 0 {
			return m, func() tea.Msg { return SwitchToMultiviewMsg{IDs: ids} }
		}

	case key.Matches(msg, SidebarKeys.Open):
		if id, ok := m.selectedID(); ok {
			it, err := m.binder.GetItem(id)
			if err != nil {
				m.SetMessage(err.Error(), true)
				return m, nil
			}
			path := filepath.Join(m.root, it.Filename)
			return m, func() tea.Msg { return OpenEditorMsg{Path: path} }
		}

	case key.Matches(msg, SidebarKeys.CopyPath):
		if id, ok := m.selectedID(); ok {
			it, err := m.binder.GetItem(id)
			if err != nil {
				m.SetMessage(err.Error(), true)
				return m, nil
			}
			path := filepath.Join(m.root, it.Filename)
			if err := clipboard.WriteAll(path); err != nil {
				m.SetMessage("clipboard unavailable: "+err.Error(), true)
			} else {
				m.SetMessage("Copied "+path, false)
			}
		}

	case key.Matches(msg, SidebarKeys.Add):
		return m, func() tea.Msg { return SwitchToAddMsg{} }

	case key.Matches(msg, SidebarKeys.Remove):
		if id, ok := m.selectedID(); ok {
			if err := m.binder.Remove(id); err != nil {
				m.SetMessage(err.Error(), true)
			} else {
				m.Refresh()
				m.SetMessage(fmt.Sprintf("Removed %s (file kept, unsaved)", id), false)
			}
		}

	case key.Matches(msg, SidebarKeys.TagFilter):
		m.cycleTagFilter()
		m.Refresh()

	case key.Matches(msg, SidebarKeys.ToggleExt):
		m.hideExt = !m.hideExt
		m.Refresh()

	case key.Matches(msg, SidebarKeys.Save):
		return m, func() tea.Msg { return SaveRequestMsg{} }

	case key.Matches(msg, SidebarKeys.Reload):
		return m, m.Reload()

	case key.Matches(msg, SidebarKeys.Help):
		return m, func() tea.Msg { return SwitchToHelpMsg{} }
	}

	return m, nil
}

// moveSelected swaps the selected item with its neighbor and keeps
// the cursor on the moved item. Boundary hits are informational.
func (m *SidebarModel) moveSelected(delta int) {
	id, ok := m.selectedID()
	if !ok {
		return
	}
	if err := m.binder.MoveRelative(id, delta); err != nil {
		if errors.Is(err, domain.ErrBoundary) {
			m.SetMessage("Boundary reached", false)
		} else {
			m.SetMessage(err.Error(), true)
		}
		return
	}
	m.Refresh()
	if line := m.listing.LineOf(id); line >= 0 {
		m.cursor = line
	}
	m.SetMessage("Moved "+id+" (unsaved)", false)
}

// cycleTagFilter steps through no filter and every tag in use
func (m *SidebarModel) cycleTagFilter() {
	tags := m.binder.Tags()
	if len(tags) == 0 {
		m.tagFilter = ""
		m.SetMessage("No tags in use", false)
		return
	}
	if m.tagFilter == "" {
		m.tagFilter = tags[0]
	} else {
		next := ""
		for i, t := range tags {
			if t == m.tagFilter && i+1 < len(tags) {
				next = tags[i+1]
				break
			}
		}
		m.tagFilter = next
	}
	if m.tagFilter == "" {
		m.SetMessage("Tag filter cleared", false)
	} else {
		m.SetMessage("Filtering by tag: "+m.tagFilter, false)
	}
}

// View renders the sidebar
func (m *SidebarModel) View() string {
	var b strings.Builder

	title := "Binder"
	if m.binder != nil {
		title = "Binder — " + m.binder.Root
	}
	b.WriteString(styles.Title.Render(title))
	b.WriteString("\n")
	if m.tagFilter != "" {
		b.WriteString(styles.Subtitle.Render("tag: " + m.tagFilter))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if len(m.listing.Lines) == 0 {
		b.WriteString(styles.MutedText.Render("  (empty binder — press a to add an item)"))
		b.WriteString("\n")
	}

	for i, line := range m.listing.Lines {
		b.WriteString(m.renderLine(i, line))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.Message != "" {
		if m.MessageErr {
			b.WriteString(styles.ErrorMsg.Render(m.Message))
		} else {
			b.WriteString(styles.Success.Render(m.Message))
		}
		b.WriteString("\n")
	}
	b.WriteString(styles.HelpDesc.Render("j/k move · K/J reorder · m mark · v view · n notes · s save · ? help"))

	return styles.App.Render(b.String())
}

func (m *SidebarModel) renderLine(i int, line domain.Line) string {
	glyph := line.Status.Glyph()
	switch line.Status {
	case domain.StatusMissing:
		glyph = styles.GlyphMissing.Render(glyph)
	case domain.StatusNotes:
		glyph = styles.GlyphNotes.Render(glyph)
	}

	mark := " "
	if line.Marked {
		mark = styles.LineMarked.Render("*")
	}

	text := line.Display
	if i == m.cursor {
		text = styles.LineSelected.Render(text)
	} else if line.Marked {
		text = styles.LineMarked.Render(text)
	}

	return fmt.Sprintf("%s %s %s", mark, glyph, text)
}
