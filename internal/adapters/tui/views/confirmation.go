package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"binder/internal/adapters/tui/styles"
)

// ConfirmKeyMap defines key bindings for confirmation views
type ConfirmKeyMap struct {
	Confirm key.Binding
	Cancel  key.Binding
}

// DefaultConfirmKeys returns the default confirmation key bindings
var DefaultConfirmKeys = ConfirmKeyMap{
	Confirm: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "confirm"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("n", "esc"),
		key.WithHelp("n/esc", "cancel"),
	),
}

// CreateConfirmModel asks before creating a new descriptor file
type CreateConfirmModel struct {
	ViewState
	Path string
	Keys ConfirmKeyMap
}

// NewCreateConfirmModel creates a new confirmation model with default keys
func NewCreateConfirmModel() *CreateConfirmModel {
	return &CreateConfirmModel{Keys: DefaultConfirmKeys}
}

// HandleKeyMsg processes key messages for the confirmation.
// Returns (handled, cmd) where handled is true if the key was processed.
func (m *CreateConfirmModel) HandleKeyMsg(msg tea.KeyMsg, onConfirm, onCancel func() tea.Msg) (bool, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Cancel):
		return true, func() tea.Msg { return onCancel() }
	case key.Matches(msg, m.Keys.Confirm):
		return true, func() tea.Msg { return onConfirm() }
	}
	return false, nil
}

// View renders the confirmation prompt
func (m *CreateConfirmModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Create binder descriptor"))
	b.WriteString("\n\n")
	b.WriteString("No descriptor exists yet. Create one at:")
	b.WriteString("\n  ")
	b.WriteString(styles.InputLabel.Render(m.Path))
	b.WriteString("\n\n")
	b.WriteString(styles.HelpKey.Render("y"))
	b.WriteString(styles.HelpDesc.Render(" to create, "))
	b.WriteString(styles.HelpKey.Render("n"))
	b.WriteString(styles.HelpDesc.Render(" to cancel"))

	return styles.App.Render(b.String())
}
