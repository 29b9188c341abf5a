package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"binder/internal/adapters/tui/styles"
)

// AddSubmitMsg carries a completed add form back to the app
type AddSubmitMsg struct {
	Filename string
	ID       string
}

// AddModel is the form for adding an item to the binder
type AddModel struct {
	ViewState
	form *InputForm
}

// NewAddModel creates a new add-item form
func NewAddModel() *AddModel {
	return &AddModel{
		form: NewInputForm(
			NewInputField("Filename (relative to project root)", "chapter-1.txt"),
			NewInputField("Id (optional, defaults to filename)", ""),
		),
	}
}

// Init initializes the add form
func (m *AddModel) Init() tea.Cmd {
	m.form.Reset()
	m.ClearMessage()
	return m.form.Init()
}

// Update handles messages for the add form
func (m *AddModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.form.Keys.Cancel):
			return m, func() tea.Msg { return SwitchToSidebarMsg{} }

		case key.Matches(msg, m.form.Keys.Submit):
			filename := m.form.Value(0)
			if filename == "" {
				m.SetMessage("filename is required", true)
				return m, nil
			}
			id := m.form.Value(1)
			return m, func() tea.Msg {
				return AddSubmitMsg{Filename: filename, ID: id}
			}
		}
	}

	_, cmd := m.form.Update(msg)
	return m, cmd
}

// View renders the add form
func (m *AddModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Add item"))
	b.WriteString("\n\n")
	b.WriteString(m.form.RenderField(0))
	b.WriteString("\n\n")
	b.WriteString(m.form.RenderField(1))
	b.WriteString("\n\n")
	if m.Message != "" {
		b.WriteString(styles.ErrorMsg.Render(m.Message))
		b.WriteString("\n")
	}
	b.WriteString(m.form.RenderHelp("add"))

	return styles.App.Render(b.String())
}
