// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/syllabus-cli/internal/core/domain"
)

// FileSelected is sent when a file is chosen in the file picker.
type FileSelected struct {
	Path string
}

// UploadSettled carries the outcome of an upload back to the event loop.
// The attempt is applied only if it is still the latest one.
type UploadSettled struct {
	Attempt *domain.Attempt
	Outcome domain.Outcome
}

// VideoOpened reports the result of opening a video link.
type VideoOpened struct {
	Video domain.Video
	Err   error
}

// ErrorOccurred is sent when an error needs to be displayed.
type ErrorOccurred struct {
	Err error
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewUpload is the file selection and results view.
	ViewUpload ViewType = iota
	// ViewBrowse is the file picker.
	ViewBrowse
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the name of the view.
func (v ViewType) String() string {
	switch v {
	case ViewUpload:
		return "upload"
	case ViewBrowse:
		return "browse"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// Quit signals the application should exit.
type Quit struct{}
