package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"binder/internal/adapters/tui/styles"
)

// MultiviewKeyMap defines key bindings for the multiview
type MultiviewKeyMap struct {
	Close key.Binding
}

var MultiviewKeys = MultiviewKeyMap{
	Close: key.NewBinding(
		key.WithKeys("esc", "q"),
		key.WithHelp("esc/q", "close"),
	),
}

// MultiviewModel shows the composed content of selected items in a
// read-only scrollable view
type MultiviewModel struct {
	ViewState

	viewport viewport.Model
	title    string
	ready    bool
}

// NewMultiviewModel creates a new multiview model
func NewMultiviewModel() *MultiviewModel {
	return &MultiviewModel{}
}

// SetContent loads the composed text into the viewport
func (m *MultiviewModel) SetContent(title, content string) {
	m.title = title
	if !m.ready {
		m.viewport = viewport.New(m.Width-4, m.Height-6)
		m.ready = true
	}
	m.viewport.SetContent(content)
	m.viewport.GotoTop()
}

// Init initializes the multiview
func (m *MultiviewModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the multiview
func (m *MultiviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		if m.ready {
			m.viewport.Width = msg.Width - 4
			m.viewport.Height = msg.Height - 6
		}
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, MultiviewKeys.Close) {
			return m, func() tea.Msg { return SwitchToSidebarMsg{} }
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the multiview
func (m *MultiviewModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Multiview — " + m.title))
	b.WriteString("\n")
	if m.ready {
		b.WriteString(m.viewport.View())
	}
	b.WriteString("\n")
	b.WriteString(styles.HelpDesc.Render("read-only · "))
	b.WriteString(styles.HelpKey.Render("esc"))
	b.WriteString(styles.HelpDesc.Render(" close"))

	return styles.App.Render(b.String())
}
