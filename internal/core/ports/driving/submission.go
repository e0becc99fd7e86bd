package driving

import (
	"context"

	"github.com/custodia-labs/syllabus-cli/internal/core/domain"
)

// SubmissionService owns the upload lifecycle and the SubmissionState cell.
//
// A submit is split into three stages so an event loop can run the network
// stage off the loop: Begin (validate, transition), Execute (I/O and
// classification), Settle (apply if still the latest attempt).
type SubmissionService interface {
	// Endpoint returns the upload URL requests are sent to.
	Endpoint() string

	// Select replaces the current selection. Unless an upload is in flight,
	// the state returns to Idle, clearing any previous error or result.
	Select(file *domain.SelectedFile)

	// Selection returns the current selection, or nil.
	Selection() *domain.SelectedFile

	// Begin validates the selection and starts an attempt.
	// It returns false when validation failed and no network call must be made.
	Begin(file *domain.SelectedFile) (*domain.Attempt, bool)

	// Execute performs the upload and classifies the response.
	Execute(ctx context.Context, attempt *domain.Attempt) domain.Outcome

	// Settle applies the outcome if the attempt is still the latest one issued.
	// It returns false when the outcome was discarded as stale.
	Settle(attempt *domain.Attempt, outcome domain.Outcome) bool

	// Submit runs Begin, Execute and Settle in sequence and returns the final state.
	Submit(ctx context.Context, file *domain.SelectedFile) domain.SubmissionState

	// State returns a snapshot of the current state.
	State() domain.SubmissionState
}
