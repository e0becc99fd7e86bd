package domain

import "time"

// UploadPath is the backend route that accepts syllabus uploads.
const UploadPath = "/api/upload"

// UploadField is the multipart field name carrying the file.
const UploadField = "file"

// Attempt is one issued submit call, tagged with a monotonic sequence number.
type Attempt struct {
	Seq      uint64
	File     SelectedFile
	IssuedAt time.Time
}

// RawResponse is an HTTP response as received, before classification.
type RawResponse struct {
	StatusCode int
	Body       []byte
	RequestID  string
}

// Outcome is the classified result of an attempt.
// State is always StateError or StateSuccess; Err is set for StateError.
type Outcome struct {
	State SubmissionState
	Err   error
}

// FailedOutcome wraps an error into an Error outcome.
func FailedOutcome(err error) Outcome {
	return Outcome{State: ErrorState(err.Error()), Err: err}
}

// SucceededOutcome wraps a result into a Success outcome.
func SucceededOutcome(result *AnalysisResult) Outcome {
	return Outcome{State: SuccessState(result)}
}
