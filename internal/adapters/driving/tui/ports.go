// Package tui provides an interactive terminal user interface for syllabus.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/syllabus-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Submission runs uploads and owns the submission state.
	Submission driving.SubmissionService

	// VideoAction opens recommended videos.
	VideoAction driving.VideoActionService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(
	submission driving.SubmissionService,
	videoAction driving.VideoActionService,
) *Ports {
	return &Ports{
		Submission:  submission,
		VideoAction: videoAction,
	}
}

// Validate ensures all required ports are set.
// Returns an error if any port is nil.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Submission == nil {
		return ErrMissingSubmissionService
	}
	if p.VideoAction == nil {
		return ErrMissingVideoActionService
	}
	return nil
}
