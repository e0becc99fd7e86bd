package driving

import (
	"time"

	"github.com/custodia-labs/syllabus-cli/internal/core/domain"
)

// SettingsService manages client settings.
type SettingsService interface {
	// Get resolves the effective settings: overrides, environment,
	// config file, then defaults.
	Get() (domain.Settings, error)

	// SetBackendURL persists the analysis service base URL.
	SetBackendURL(url string) error

	// SetTimeout persists the upload timeout. Zero disables it.
	SetTimeout(timeout time.Duration) error

	// SetBrowserCommand persists the command used to open video links.
	SetBrowserCommand(command string) error

	// Reset removes every persisted setting.
	Reset() error

	// ConfigPath returns the location of the persisted settings.
	ConfigPath() string
}
