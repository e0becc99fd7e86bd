package driven

import (
	"context"

	"github.com/custodia-labs/syllabus-cli/internal/core/domain"
)

// Uploader performs the network exchange with the analysis service.
type Uploader interface {
	// Upload sends the file as a multipart request to the given endpoint.
	// A nil error means a response was received, whatever its status.
	// A non-nil error means no response arrived (connectivity, DNS, timeout).
	Upload(ctx context.Context, endpoint string, file domain.SelectedFile) (*domain.RawResponse, error)
}
