package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"binder/internal/adapters/descriptor"
	"binder/internal/adapters/editor"
	"binder/internal/adapters/tui"
	"binder/internal/config"
)

func main() {
	// The TUI never prompts on stdin; descriptor creation is confirmed
	// through its own view before Save is called.
	store := descriptor.NewStore(config.DescriptorName(), descriptor.AutoConfirm{})

	root, err := store.Locate(config.Root())
	if err != nil {
		// No descriptor anywhere up the tree: start on the given root
		// with an empty binder and let the save flow create one.
		root = config.Root()
	}

	editorOpener := editor.NewOpener()

	app := tui.NewApp(store, root, editorOpener)

	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
