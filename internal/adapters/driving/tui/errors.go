package tui

import "errors"

// ErrMissingSubmissionService is returned when the submission service is not provided.
var ErrMissingSubmissionService = errors.New("tui: submission service is required")

// ErrMissingVideoActionService is returned when the video action service is not provided.
var ErrMissingVideoActionService = errors.New("tui: video action service is required")

// ErrInvalidPorts is returned when ports validation fails.
var ErrInvalidPorts = errors.New("tui: invalid ports configuration")
