package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/custodia-labs/syllabus-cli/internal/core/domain"
	"github.com/custodia-labs/syllabus-cli/internal/core/ports/driven"
	"github.com/custodia-labs/syllabus-cli/internal/core/ports/driving"
	"github.com/custodia-labs/syllabus-cli/internal/logger"
)

// Ensure SubmissionService implements the interface.
var _ driving.SubmissionService = (*SubmissionService)(nil)

// SubmissionService is the single writer of the SubmissionState cell.
//
// Every Begin call takes the next sequence number, including calls that
// fail validation. Settle only applies outcomes whose attempt carries the
// latest number, so a slow response can never overwrite the state produced
// by a newer submit.
type SubmissionService struct {
	uploader driven.Uploader
	endpoint string
	timeout  time.Duration
	now      func() time.Time

	mu        sync.Mutex
	state     domain.SubmissionState
	selection *domain.SelectedFile
	seq       uint64
}

// NewSubmissionService creates a submission service posting to the
// backend configured in settings.
func NewSubmissionService(uploader driven.Uploader, settings domain.Settings) *SubmissionService {
	return &SubmissionService{
		uploader: uploader,
		endpoint: settings.UploadURL(),
		timeout:  settings.Timeout,
		now:      time.Now,
		state:    domain.IdleState(),
	}
}

// Endpoint returns the upload URL requests are sent to.
func (s *SubmissionService) Endpoint() string {
	return s.endpoint
}

// Select replaces the current selection.
func (s *SubmissionService) Select(file *domain.SelectedFile) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.selection = file
	if s.state.IsLoading() {
		// The in-flight request is not cancelled and still settles.
		return
	}
	s.state = domain.IdleState()
}

// Selection returns the current selection, or nil.
func (s *SubmissionService) Selection() *domain.SelectedFile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selection
}

// Begin validates the selection and starts an attempt.
func (s *SubmissionService) Begin(file *domain.SelectedFile) (*domain.Attempt, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++

	if err := domain.ValidateSelection(file); err != nil {
		logger.Debug("submit #%d rejected: %v", s.seq, err)
		s.state = domain.ErrorState(err.Error())
		return nil, false
	}

	s.state = domain.LoadingState()
	logger.Debug("submit #%d: %s", s.seq, file.Name)
	return &domain.Attempt{
		Seq:      s.seq,
		File:     *file,
		IssuedAt: s.now(),
	}, true
}

// Execute performs the upload and classifies the response.
// It does not touch the state cell and may run on any goroutine.
func (s *SubmissionService) Execute(ctx context.Context, attempt *domain.Attempt) domain.Outcome {
	if attempt == nil {
		return domain.FailedOutcome(&domain.ValidationError{Reason: domain.ErrNoFileSelected})
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	raw, err := s.uploader.Upload(ctx, s.endpoint, attempt.File)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			err = &timeoutError{after: s.timeout}
		}
		logger.Warn("upload #%d failed: %v", attempt.Seq, err)
		return domain.FailedOutcome(&domain.TransportError{Err: err})
	}

	outcome := Classify(raw)
	logger.DebugFields("upload classified", map[string]any{
		"seq":        attempt.Seq,
		"status":     raw.StatusCode,
		"request_id": raw.RequestID,
		"state":      outcome.State.Kind.String(),
		"elapsed":    s.now().Sub(attempt.IssuedAt).String(),
	})
	return outcome
}

// Settle applies the outcome if the attempt is still the latest one issued.
func (s *SubmissionService) Settle(attempt *domain.Attempt, outcome domain.Outcome) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if attempt == nil || attempt.Seq != s.seq {
		if attempt != nil {
			logger.Debug("discarding stale upload #%d (latest is #%d)", attempt.Seq, s.seq)
		}
		return false
	}
	s.state = outcome.State
	return true
}

// Submit runs a full attempt synchronously and returns the final state.
func (s *SubmissionService) Submit(ctx context.Context, file *domain.SelectedFile) domain.SubmissionState {
	attempt, ok := s.Begin(file)
	if !ok {
		return s.State()
	}
	s.Settle(attempt, s.Execute(ctx, attempt))
	return s.State()
}

// State returns a snapshot of the current state.
func (s *SubmissionService) State() domain.SubmissionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}
