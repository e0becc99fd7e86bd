package services

import (
	"context"
	"fmt"
	"time"
)

// timeoutError reports an upload that exceeded the configured timeout.
type timeoutError struct {
	after time.Duration
}

func (e *timeoutError) Error() string {
	if e.after <= 0 {
		return "Upload timed out"
	}
	return fmt.Sprintf("Upload timed out after %s", e.after)
}

func (e *timeoutError) Unwrap() error { return context.DeadlineExceeded }
