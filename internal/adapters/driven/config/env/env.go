// Package env reads client configuration from the process environment.
//
// A .env file in the working directory is loaded first when present, so a
// project checkout can carry its backend URL the same way a web build does.
// Variables already set in the environment win over the file.
package env

import (
	"fmt"
	"time"

	goenv "github.com/Netflix/go-env"
	"github.com/joho/godotenv"

	"github.com/custodia-labs/syllabus-cli/internal/core/domain"
	"github.com/custodia-labs/syllabus-cli/internal/core/ports/driven"
	"github.com/custodia-labs/syllabus-cli/internal/logger"
)

// Ensure Source implements the interface.
var _ driven.EnvSource = (*Source)(nil)

// Variables is the set of environment variables the client understands.
type Variables struct {
	BackendURL      string `env:"SYLLABUS_BACKEND_URL"`
	BackendURLShort string `env:"BACKEND_URL"`
	Timeout         string `env:"SYLLABUS_TIMEOUT"`
	Browser         string `env:"SYLLABUS_BROWSER"`
}

// Source is an EnvSource backed by os.Environ and optional dotenv files.
type Source struct {
	files []string
}

// NewSource creates a source that loads the given dotenv files before
// reading the environment. With no files, ".env" is tried.
func NewSource(files ...string) *Source {
	if len(files) == 0 {
		files = []string{".env"}
	}
	return &Source{files: files}
}

// Overrides returns the values set in the environment.
func (s *Source) Overrides() (domain.SettingsOverrides, error) {
	for _, f := range s.files {
		if err := godotenv.Load(f); err != nil {
			logger.Debug("dotenv %s not loaded: %v", f, err)
		}
	}

	var vars Variables
	if _, err := goenv.UnmarshalFromEnviron(&vars); err != nil {
		return domain.SettingsOverrides{}, fmt.Errorf("decode environment: %w", err)
	}
	return vars.Overrides()
}

// Overrides converts raw variables into settings overrides.
// SYLLABUS_BACKEND_URL takes precedence over BACKEND_URL.
func (v Variables) Overrides() (domain.SettingsOverrides, error) {
	o := domain.SettingsOverrides{
		BackendURL:     v.BackendURL,
		BrowserCommand: v.Browser,
	}
	if o.BackendURL == "" {
		o.BackendURL = v.BackendURLShort
	}
	if v.Timeout != "" {
		timeout, err := time.ParseDuration(v.Timeout)
		if err != nil {
			return domain.SettingsOverrides{}, fmt.Errorf("%w: SYLLABUS_TIMEOUT %q: %v", domain.ErrInvalidInput, v.Timeout, err)
		}
		o.Timeout = &timeout
	}
	return o, nil
}
