package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// Validation Errors.

	// ErrNoFileSelected indicates submit was triggered without a selection.
	ErrNoFileSelected = errors.New("Please choose a PDF syllabus to upload.") //nolint:stylecheck // user-facing

	// ErrNotPDF indicates the selected file does not carry a .pdf extension.
	ErrNotPDF = errors.New("Only PDF files are supported for now.") //nolint:stylecheck // user-facing
)

// MalformedResponseMessage is shown when a successful response cannot be decoded.
const MalformedResponseMessage = "Received an unreadable response from the analysis service."

// ValidationError is raised synchronously before any network call.
type ValidationError struct {
	Reason error
}

func (e *ValidationError) Error() string { return e.Reason.Error() }

func (e *ValidationError) Unwrap() error { return e.Reason }

// TransportError means the request could not be sent or no response arrived.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string { return e.Err.Error() }

func (e *TransportError) Unwrap() error { return e.Err }

// ServerError is a response received with a non-2xx status.
// Detail is the "detail" field of the JSON body, if any.
type ServerError struct {
	Status int
	Detail string
}

func (e *ServerError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("Upload failed (%d)", e.Status)
}

// MalformedResponseError is a 2xx response whose body is not an AnalysisResult.
type MalformedResponseError struct {
	Err error
}

func (e *MalformedResponseError) Error() string { return MalformedResponseMessage }

func (e *MalformedResponseError) Unwrap() error { return e.Err }
