package driving

import (
	"context"

	"github.com/custodia-labs/syllabus-cli/internal/core/domain"
)

// VideoActionService provides actions on recommended videos.
// This is used by the TUI and CLI adapters.
type VideoActionService interface {
	// OpenVideo opens the video's URL in the default browser.
	OpenVideo(ctx context.Context, video domain.Video) error
}
