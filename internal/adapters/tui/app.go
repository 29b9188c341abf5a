package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"binder/internal/adapters/tui/views"
	"binder/internal/application/commands"
	"binder/internal/domain"
	"binder/internal/ports"
)

// ViewState represents the current view
type ViewState int

const (
	ViewSidebar ViewState = iota
	ViewNotes
	ViewMultiview
	ViewAdd
	ViewConfirmCreate
	ViewHelp
)

// App is the main TUI application model
type App struct {
	store  ports.BinderStore
	root   string
	editor ports.EditorOpener

	state     ViewState
	sidebar   *views.SidebarModel
	notes     *views.NotesModel
	multiview *views.MultiviewModel
	add       *views.AddModel
	confirm   *views.CreateConfirmModel
	help      *views.HelpModel

	width  int
	height int
}

// NewApp creates a new TUI application
func NewApp(store ports.BinderStore, root string, ed ports.EditorOpener) *App {
	return &App{
		store:     store,
		root:      root,
		editor:    ed,
		state:     ViewSidebar,
		sidebar:   views.NewSidebarModel(store, root),
		notes:     views.NewNotesModel(),
		multiview: views.NewMultiviewModel(),
		add:       views.NewAddModel(),
		confirm:   views.NewCreateConfirmModel(),
		help:      views.NewHelpModel(),
	}
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.sidebar.Init()
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.sidebar.Update(msg)
		a.notes.Update(msg)
		a.multiview.Update(msg)
		a.add.Update(msg)
		a.confirm.SetSize(msg.Width, msg.Height)
		a.help.Update(msg)
		return a, nil

	// View switching messages
	case views.SwitchToSidebarMsg:
		a.state = ViewSidebar
		a.sidebar.Refresh()
		return a, nil

	case views.SwitchToNotesMsg:
		b := a.sidebar.Binder()
		if b == nil {
			return a, nil
		}
		if err := a.notes.Open(b, msg.ID); err != nil {
			return a, a.sidebarError(err)
		}
		a.state = ViewNotes
		return a, a.notes.Init()

	case views.NotesCommittedMsg:
		a.state = ViewSidebar
		a.sidebar.Refresh()
		if msg.Committed {
			return a, a.sidebarStatus(fmt.Sprintf("Notes updated for %s (unsaved — press s)", msg.ID))
		}
		return a, a.sidebarStatus(fmt.Sprintf("Notes for %s unchanged, nothing to do", msg.ID))

	case views.NotesDismissedMsg:
		a.state = ViewSidebar
		return a, nil

	case views.SwitchToMultiviewMsg:
		return a, a.openMultiview(msg.IDs)

	case multiviewReadyMsg:
		a.multiview.SetContent(msg.title, msg.content)
		a.state = ViewMultiview
		return a, nil

	case views.SwitchToAddMsg:
		a.state = ViewAdd
		return a, a.add.Init()

	case views.AddSubmitMsg:
		return a, a.addItem(msg)

	case views.SwitchToHelpMsg:
		a.state = ViewHelp
		return a, nil

	case views.SaveRequestMsg:
		if !a.store.Exists(a.root) {
			a.confirm.Path = a.store.Path(a.root)
			a.state = ViewConfirmCreate
			return a, nil
		}
		return a, a.saveBinder()

	case saveConfirmedMsg:
		a.state = ViewSidebar
		return a, a.saveBinder()

	case saveCancelledMsg:
		a.state = ViewSidebar
		return a, a.sidebarStatus("Save cancelled, descriptor not created")

	case views.OpenEditorMsg:
		return a, a.openEditor(msg.Path)

	case editorFinishedMsg:
		a.state = ViewSidebar
		a.sidebar.Refresh()
		if msg.err != nil {
			return a, a.sidebarError(msg.err)
		}
		return a, nil
	}

	// Confirmation is handled here because it resolves to app-level actions
	if a.state == ViewConfirmCreate {
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			handled, cmd := a.confirm.HandleKeyMsg(keyMsg,
				func() tea.Msg { return saveConfirmedMsg{} },
				func() tea.Msg { return saveCancelledMsg{} },
			)
			if handled {
				return a, cmd
			}
		}
		return a, nil
	}

	// Delegate to current view
	var cmd tea.Cmd
	switch a.state {
	case ViewSidebar:
		_, cmd = a.sidebar.Update(msg)
	case ViewNotes:
		_, cmd = a.notes.Update(msg)
	case ViewMultiview:
		_, cmd = a.multiview.Update(msg)
	case ViewAdd:
		_, cmd = a.add.Update(msg)
	case ViewHelp:
		_, cmd = a.help.Update(msg)
	}

	return a, cmd
}

type saveConfirmedMsg struct{}
type saveCancelledMsg struct{}

type multiviewReadyMsg struct {
	title   string
	content string
}

type editorFinishedMsg struct{ err error }

func (a *App) sidebarStatus(message string) tea.Cmd {
	_, cmd := a.sidebar.Update(views.StatusMsg(message))
	return cmd
}

func (a *App) sidebarError(err error) tea.Cmd {
	_, cmd := a.sidebar.Update(views.ErrMsg(err))
	return cmd
}

func (a *App) saveBinder() tea.Cmd {
	b := a.sidebar.Binder()
	if b == nil {
		return nil
	}
	if err := a.store.Save(b); err != nil {
		return a.sidebarError(err)
	}
	return a.sidebarStatus("Saved " + a.store.Path(a.root))
}

func (a *App) openMultiview(ids []string) tea.Cmd {
	return func() tea.Msg {
		cmd := commands.NewComposeCommand(a.store, a.root, ids, commands.DefaultSeparator)
		content, err := cmd.Execute(context.Background())
		if err != nil {
			return views.ErrMsg(err)
		}
		return multiviewReadyMsg{title: strings.Join(ids, ", "), content: content}
	}
}

func (a *App) addItem(msg views.AddSubmitMsg) tea.Cmd {
	b := a.sidebar.Binder()
	if b == nil {
		return nil
	}
	id := msg.ID
	if id == "" {
		id = msg.Filename
	}
	if err := b.Add(&domain.Item{ID: id, Filename: msg.Filename}); err != nil {
		a.add.SetMessage(err.Error(), true)
		return nil
	}
	a.state = ViewSidebar
	a.sidebar.Refresh()
	return a.sidebarStatus(fmt.Sprintf("Added %s (unsaved — press s)", id))
}

func (a *App) openEditor(path string) tea.Cmd {
	if a.editor == nil {
		return nil
	}

	cmd, err := a.editor.Command(path)
	if err != nil {
		return func() tea.Msg {
			return editorFinishedMsg{err: err}
		}
	}

	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorFinishedMsg{err: err}
	})
}

// View renders the current view
func (a *App) View() string {
	switch a.state {
	case ViewNotes:
		return a.notes.View()
	case ViewMultiview:
		return a.multiview.View()
	case ViewAdd:
		return a.add.View()
	case ViewConfirmCreate:
		return a.confirm.View()
	case ViewHelp:
		return a.help.View()
	default:
		return a.sidebar.View()
	}
}
