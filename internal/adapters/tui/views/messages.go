package views

import tea "github.com/charmbracelet/bubbletea"

// View switching messages

// SwitchToSidebarMsg returns to the sidebar view
type SwitchToSidebarMsg struct{}

// SwitchToNotesMsg opens the notes editor for an item
type SwitchToNotesMsg struct {
	ID string
}

// SwitchToMultiviewMsg opens the composed view of the given items
type SwitchToMultiviewMsg struct {
	IDs []string
}

// SwitchToAddMsg opens the add-item form
type SwitchToAddMsg struct{}

// SwitchToHelpMsg opens the help view
type SwitchToHelpMsg struct{}

// SaveRequestMsg asks the app to persist the binder
type SaveRequestMsg struct{}

// OpenEditorMsg asks the app to open a file in the external editor
type OpenEditorMsg struct {
	Path string
}

// Shared result messages

type errMsg struct {
	err error
}

type statusMsg struct {
	message string
}

// ErrMsg wraps an error so the app can route it to the sidebar
func ErrMsg(err error) tea.Msg {
	return errMsg{err}
}

// StatusMsg wraps an informational message for the sidebar
func StatusMsg(message string) tea.Msg {
	return statusMsg{message}
}
