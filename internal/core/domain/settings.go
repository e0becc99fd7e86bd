package domain

import (
	"strings"
	"time"
)

// DefaultBackendURL is used when no backend is configured anywhere.
const DefaultBackendURL = "http://localhost:8000"

// DefaultUploadTimeout bounds a single upload. Zero disables the bound.
const DefaultUploadTimeout = 2 * time.Minute

// Settings is the resolved client configuration.
type Settings struct {
	// BackendURL is the analysis service base URL.
	BackendURL string `validate:"required,http_url"`

	// Timeout bounds a single upload; zero means no bound.
	Timeout time.Duration `validate:"gte=0"`

	// BrowserCommand overrides the platform command used to open video links.
	BrowserCommand string
}

// DefaultSettings returns settings with built-in defaults.
func DefaultSettings() Settings {
	return Settings{
		BackendURL: DefaultBackendURL,
		Timeout:    DefaultUploadTimeout,
	}
}

// UploadURL returns the full upload endpoint for the configured backend.
func (s Settings) UploadURL() string {
	return strings.TrimRight(s.BackendURL, "/") + UploadPath
}

// SettingsOverrides carries values that take precedence over the config file.
// Empty strings and nil pointers mean "not set".
type SettingsOverrides struct {
	BackendURL     string
	Timeout        *time.Duration
	BrowserCommand string
}

// Apply returns s with every set override applied.
func (o SettingsOverrides) Apply(s Settings) Settings {
	if o.BackendURL != "" {
		s.BackendURL = o.BackendURL
	}
	if o.Timeout != nil {
		s.Timeout = *o.Timeout
	}
	if o.BrowserCommand != "" {
		s.BrowserCommand = o.BrowserCommand
	}
	return s
}
