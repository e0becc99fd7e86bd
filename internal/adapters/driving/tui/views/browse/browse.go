// Package browse provides the file picker view for choosing a syllabus.
package browse

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/bubbles/filepicker"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/syllabus-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/syllabus-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/syllabus-cli/internal/core/domain"
)

// chromeLines is the number of lines around the picker.
const chromeLines = 6

// View wraps a bubbles file picker.
//
// PDF files are highlighted as selectable, but other files can still be
// chosen; the extension check happens when the upload is submitted.
type View struct {
	styles *styles.Styles
	picker filepicker.Model
	// listed is the directory last checked for readability.
	listed string
	err    error
	width  int
	height int
}

// NewView creates a file picker rooted at dir.
// An empty dir starts in the working directory.
func NewView(s *styles.Styles, dir string) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if dir == "" {
		if wd, err := os.Getwd(); err == nil {
			dir = wd
		} else {
			dir = "."
		}
	}

	fp := filepicker.New()
	fp.AllowedTypes = []string{domain.PDFExtension}
	fp.CurrentDirectory = dir
	fp.AutoHeight = true

	return &View{
		styles: s,
		picker: fp,
		width:  80,
		height: 24,
	}
}

// Init reads the current directory.
func (v *View) Init() tea.Cmd {
	v.listed = v.picker.CurrentDirectory
	v.err = nil
	return tea.Batch(v.picker.Init(), checkDir(v.listed))
}

// Update handles messages for the picker.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewUpload}
		}
	}

	var cmd tea.Cmd
	v.picker, cmd = v.picker.Update(msg)

	if ok, path := v.picker.DidSelectFile(msg); ok {
		return v, selected(path)
	}
	if ok, path := v.picker.DidSelectDisabledFile(msg); ok {
		return v, selected(path)
	}
	if dir := v.picker.CurrentDirectory; dir != v.listed {
		v.listed = dir
		v.err = nil
		return v, tea.Batch(cmd, checkDir(dir))
	}
	return v, cmd
}

// checkDir reports an unreadable directory as messages.ErrorOccurred.
// The picker shows an empty listing for such directories.
func checkDir(dir string) tea.Cmd {
	return func() tea.Msg {
		f, err := os.Open(dir)
		if err == nil {
			_, err = f.ReadDir(1)
			_ = f.Close()
			if errors.Is(err, io.EOF) {
				err = nil
			}
		}
		if err != nil {
			return messages.ErrorOccurred{Err: fmt.Errorf("cannot read %s: %w", dir, err)}
		}
		return nil
	}
}

// SetError shows err above the listing until the directory changes.
func (v *View) SetError(err error) {
	v.err = err
}

// Err returns the error currently shown, if any.
func (v *View) Err() error {
	return v.err
}

func selected(path string) tea.Cmd {
	return func() tea.Msg {
		return messages.FileSelected{Path: path}
	}
}

// View renders the picker.
func (v *View) View() string {
	listing := v.picker.View()
	if v.err != nil {
		listing = v.styles.Alert.Render(v.err.Error())
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		v.styles.Title.Render("Choose a PDF syllabus"),
		v.styles.Muted.Render(v.picker.CurrentDirectory),
		"",
		listing,
		"",
		v.styles.Help.Render("enter: select | ←/h: up a directory | esc: back"),
	)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.picker, _ = v.picker.Update(tea.WindowSizeMsg{Width: width, Height: height - chromeLines})
}

// CurrentDirectory returns the directory being listed.
func (v *View) CurrentDirectory() string {
	return v.picker.CurrentDirectory
}
