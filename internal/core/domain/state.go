package domain

// StateKind identifies the active SubmissionState variant.
type StateKind int

const (
	// StateIdle is the initial state and the state after a new selection.
	StateIdle StateKind = iota
	// StateLoading means an upload is in flight.
	StateLoading
	// StateError carries a user-visible message.
	StateError
	// StateSuccess carries the decoded AnalysisResult.
	StateSuccess
)

// String returns the string representation of the kind.
func (k StateKind) String() string {
	switch k {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateError:
		return "error"
	case StateSuccess:
		return "success"
	default:
		return "unknown"
	}
}

// SubmissionState is the single state cell of the upload flow.
// Exactly one variant is active; Message is only set for StateError
// and Result only for StateSuccess.
type SubmissionState struct {
	Kind    StateKind
	Message string
	Result  *AnalysisResult
}

// IdleState returns the Idle variant.
func IdleState() SubmissionState {
	return SubmissionState{Kind: StateIdle}
}

// LoadingState returns the Loading variant.
func LoadingState() SubmissionState {
	return SubmissionState{Kind: StateLoading}
}

// ErrorState returns the Error variant.
func ErrorState(message string) SubmissionState {
	return SubmissionState{Kind: StateError, Message: message}
}

// SuccessState returns the Success variant.
func SuccessState(result *AnalysisResult) SubmissionState {
	return SubmissionState{Kind: StateSuccess, Result: result}
}

// IsLoading reports whether an upload is in flight.
func (s SubmissionState) IsLoading() bool {
	return s.Kind == StateLoading
}
