package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"binder/internal/adapters/tui/styles"
	"binder/internal/domain"
)

// NotesKeyMap defines key bindings for the notes editor
type NotesKeyMap struct {
	Commit  key.Binding
	Dismiss key.Binding
}

var NotesKeys = NotesKeyMap{
	Commit: key.NewBinding(
		key.WithKeys("ctrl+s"),
		key.WithHelp("ctrl+s", "commit"),
	),
	Dismiss: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "dismiss"),
	),
}

// NotesModel is the editing surface for one item's notes field.
// The session tracks the bound id and dirtiness; the textarea is the
// host editing surface handing text back on commit.
type NotesModel struct {
	ViewState

	session  domain.NotesSession
	binder   *domain.Binder
	textarea textarea.Model
}

// NewNotesModel creates a new notes editor model
func NewNotesModel() *NotesModel {
	ta := textarea.New()
	ta.Placeholder = "Notes for this item..."
	return &NotesModel{textarea: ta}
}

// Open binds the editor to an item, loading its notes. Reopening the
// currently bound id keeps in-progress edits in the buffer.
func (m *NotesModel) Open(b *domain.Binder, id string) error {
	m.binder = b
	rebound := !(m.session.IsOpen() && m.session.BoundID() == id)
	if err := m.session.Open(b, id); err != nil {
		return err
	}
	if rebound {
		m.textarea.SetValue(m.session.Content())
	}
	m.textarea.Focus()
	return nil
}

// Init initializes the notes editor
func (m *NotesModel) Init() tea.Cmd {
	return textarea.Blink
}

// NotesCommittedMsg reports a finished commit back to the app
type NotesCommittedMsg struct {
	ID        string
	Committed bool
}

// NotesDismissedMsg reports a dismissed session back to the app
type NotesDismissedMsg struct{}

// Update handles messages for the notes editor
func (m *NotesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		m.textarea.SetWidth(msg.Width - 6)
		m.textarea.SetHeight(msg.Height - 8)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, NotesKeys.Commit):
			m.session.SetContent(m.textarea.Value())
			res, err := m.session.Commit(m.binder)
			if err != nil {
				m.SetMessage(err.Error(), true)
				return m, nil
			}
			return m, func() tea.Msg {
				return NotesCommittedMsg{ID: res.ID, Committed: res.Committed}
			}

		case key.Matches(msg, NotesKeys.Dismiss):
			m.session.Discard()
			return m, func() tea.Msg { return NotesDismissedMsg{} }
		}
	}

	var cmd tea.Cmd
	m.textarea, cmd = m.textarea.Update(msg)
	return m, cmd
}

// View renders the notes editor
func (m *NotesModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Notes — " + m.session.BoundID()))
	b.WriteString("\n\n")
	b.WriteString(m.textarea.View())
	b.WriteString("\n\n")
	if m.Message != "" {
		b.WriteString(styles.ErrorMsg.Render(m.Message))
		b.WriteString("\n")
	}
	b.WriteString(styles.HelpKey.Render("ctrl+s"))
	b.WriteString(styles.HelpDesc.Render(" commit  "))
	b.WriteString(styles.HelpKey.Render("esc"))
	b.WriteString(styles.HelpDesc.Render(" dismiss (edits discarded)"))

	return styles.App.Render(b.String())
}
