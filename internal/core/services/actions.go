package services

import (
	"context"
	"fmt"
	"net/url"
	"os/exec"
	"runtime"
	"strings"

	"github.com/custodia-labs/syllabus-cli/internal/core/domain"
	"github.com/custodia-labs/syllabus-cli/internal/core/ports/driving"
)

// Operating system identifiers.
const (
	osDarwin  = "darwin"
	osLinux   = "linux"
	osWindows = "windows"
)

// Ensure VideoActionService implements the interface.
var _ driving.VideoActionService = (*VideoActionService)(nil)

// VideoActionService opens recommended videos in the browser.
type VideoActionService struct {
	browserCommand string
	goos           string
	start          func(name string, args ...string) error
}

// NewVideoActionService creates a new video action service.
// An empty browserCommand uses the platform default opener.
func NewVideoActionService(browserCommand string) *VideoActionService {
	return &VideoActionService{
		browserCommand: browserCommand,
		goos:           runtime.GOOS,
		start:          startCommand,
	}
}

// OpenVideo opens the video's URL in the default browser.
func (s *VideoActionService) OpenVideo(_ context.Context, video domain.Video) error {
	link, err := url.Parse(video.URL)
	if err != nil || (link.Scheme != "http" && link.Scheme != "https") || link.Host == "" {
		return fmt.Errorf("%w: not a web link: %q", domain.ErrInvalidInput, video.URL)
	}

	name, args, err := s.command(link.String())
	if err != nil {
		return err
	}
	return s.start(name, args...)
}

// command returns the program and arguments that open target.
func (s *VideoActionService) command(target string) (string, []string, error) {
	if fields := strings.Fields(s.browserCommand); len(fields) > 0 {
		return fields[0], append(fields[1:], target), nil
	}

	switch s.goos {
	case osDarwin:
		return "open", []string{target}, nil
	case osLinux:
		return "xdg-open", []string{target}, nil
	case osWindows:
		return "rundll32", []string{"url.dll,FileProtocolHandler", target}, nil
	default:
		return "", nil, fmt.Errorf("unsupported platform: %s", s.goos)
	}
}

func startCommand(name string, args ...string) error {
	return exec.Command(name, args...).Start()
}
