package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/syllabus-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/syllabus-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/syllabus-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/syllabus-cli/internal/adapters/driving/tui/views/browse"
	"github.com/custodia-labs/syllabus-cli/internal/adapters/driving/tui/views/upload"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	// uploadView is the upload form and results view.
	uploadView *upload.View

	// browseView is the file picker.
	browseView *browse.View

	// currentView tracks which view is active.
	currentView messages.ViewType

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
// startDir is where the file picker opens; empty means the working directory.
func NewApp(ports *Ports, startDir string) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	return &App{
		ports:       ports,
		ctx:         context.Background(),
		styles:      s,
		uploadView:  upload.NewView(s, km, ports.Submission, ports.VideoAction),
		browseView:  browse.NewView(s, startDir),
		currentView: messages.ViewUpload,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.uploadView.WithContext(ctx)
	return a
}

// Init implements tea.Model.
// It runs initial commands when the program starts.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("syllabus - PDF Syllabus Analyzer"),
		a.uploadView.Init(),
	)
}

// Update implements tea.Model.
// It handles messages and updates the model state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.uploadView.SetDimensions(msg.Width, msg.Height)
		a.browseView.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		// Global quit with ctrl+c
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		switch a.currentView {
		case messages.ViewUpload:
			a.uploadView, cmd = a.uploadView.Update(msg)
		case messages.ViewBrowse:
			a.browseView, cmd = a.browseView.Update(msg)
		case messages.ViewHelp:
			if msg.Type == tea.KeyEsc || msg.String() == "?" || msg.String() == "q" {
				a.currentView = messages.ViewUpload
			}
		}
		return a, cmd

	case messages.ViewChanged:
		a.currentView = msg.View
		if msg.View == messages.ViewBrowse {
			return a, a.browseView.Init()
		}
		return a, nil

	case messages.FileSelected:
		a.currentView = messages.ViewUpload
		a.uploadView, cmd = a.uploadView.Update(msg)
		return a, cmd

	// Upload results and spinner ticks belong to the upload view even
	// while the picker is open.
	case messages.UploadSettled, messages.VideoOpened, spinner.TickMsg:
		a.uploadView, cmd = a.uploadView.Update(msg)
		return a, cmd

	case messages.ErrorOccurred:
		a.uploadView.StatusBar().SetMessage("Error: " + msg.Err.Error())
		if a.currentView == messages.ViewBrowse {
			a.browseView.SetError(msg.Err)
		}
		return a, nil

	case messages.Quit:
		return a, tea.Quit
	}

	// Forward other messages to active view
	switch a.currentView {
	case messages.ViewUpload:
		a.uploadView, cmd = a.uploadView.Update(msg)
	case messages.ViewBrowse:
		a.browseView, cmd = a.browseView.Update(msg)
	case messages.ViewHelp:
		// Help view doesn't need to handle other messages
	}

	return a, cmd
}

// View implements tea.Model.
// It renders the current view as a string.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewBrowse:
		return a.browseView.View()
	case messages.ViewHelp:
		return a.viewHelp()
	default:
		return a.uploadView.View()
	}
}

// viewHelp renders the help view.
func (a *App) viewHelp() string {
	return a.styles.Title.Render("Help") + `

Path input:
  (type)      Enter the path of a PDF syllabus
  enter       Analyze the selected file
  ctrl+s      Analyze the selected file
  ctrl+o      Browse for a file
  tab         Switch to results

Results:
  j/k, ↑/↓    Select a video
  o           Open the selected video in the browser
  pgup/pgdn   Scroll
  tab, esc    Back to the path input
  q           Quit

File picker:
  enter       Choose file or open directory
  esc         Back

ctrl+c quits from anywhere.

[esc] back`
}

// Run starts the TUI application and blocks until it exits
// or the app context is cancelled.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// UploadView returns the upload view.
func (a *App) UploadView() *upload.View {
	return a.uploadView
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions (for testing).
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.uploadView.SetDimensions(width, height)
	a.browseView.SetDimensions(width, height)
}
