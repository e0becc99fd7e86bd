package services

import (
	"encoding/json"
	"strings"

	"github.com/custodia-labs/syllabus-cli/internal/core/domain"
)

// Classify maps a received response to an Outcome.
// It performs no I/O.
func Classify(raw *domain.RawResponse) domain.Outcome {
	if raw.StatusCode < 200 || raw.StatusCode > 299 {
		return domain.FailedOutcome(&domain.ServerError{
			Status: raw.StatusCode,
			Detail: errorDetail(raw.Body),
		})
	}

	result, err := domain.DecodeAnalysisResult(raw.Body)
	if err != nil {
		return domain.FailedOutcome(err)
	}
	return domain.SucceededOutcome(result)
}

// errorDetail extracts the "detail" field of an error body.
// A missing or unparseable body yields an empty string.
func errorDetail(body []byte) string {
	var payload struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err != nil || len(payload.Detail) == 0 {
		return ""
	}

	var detail string
	if err := json.Unmarshal(payload.Detail, &detail); err == nil {
		return detail
	}

	// Request validation errors arrive as a list of {"msg": ...} objects.
	var items []struct {
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(payload.Detail, &items); err != nil {
		return ""
	}
	msgs := make([]string, 0, len(items))
	for _, item := range items {
		if item.Msg != "" {
			msgs = append(msgs, item.Msg)
		}
	}
	return strings.Join(msgs, "; ")
}
