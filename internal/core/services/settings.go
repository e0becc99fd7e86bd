package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/custodia-labs/syllabus-cli/internal/core/domain"
	"github.com/custodia-labs/syllabus-cli/internal/core/ports/driven"
	"github.com/custodia-labs/syllabus-cli/internal/core/ports/driving"
	"github.com/custodia-labs/syllabus-cli/internal/logger"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyBackendURL     = "backend.url"
	keyUploadTimeout  = "upload.timeout"
	keyBrowserCommand = "browser.command"
)

// backendURLRule is the validator rule applied to backend URLs.
const backendURLRule = "required,http_url"

// SettingsService resolves and persists client settings.
type SettingsService struct {
	configStore driven.ConfigStore
	env         driven.EnvSource
	overrides   domain.SettingsOverrides
	validate    *validator.Validate
}

// NewSettingsService creates a new settings service.
// env may be nil. overrides are applied last and usually come from flags.
func NewSettingsService(
	configStore driven.ConfigStore,
	env driven.EnvSource,
	overrides domain.SettingsOverrides,
) *SettingsService {
	return &SettingsService{
		configStore: configStore,
		env:         env,
		overrides:   overrides,
		validate:    validator.New(),
	}
}

// Get resolves the effective settings.
func (s *SettingsService) Get() (domain.Settings, error) {
	settings := s.stored(domain.DefaultSettings())

	if s.env != nil {
		envOverrides, err := s.env.Overrides()
		if err != nil {
			return domain.Settings{}, fmt.Errorf("read environment: %w", err)
		}
		settings = envOverrides.Apply(settings)
	}
	settings = s.overrides.Apply(settings)
	settings.BackendURL = strings.TrimSpace(settings.BackendURL)

	if err := s.validate.Struct(settings); err != nil {
		return domain.Settings{}, fmt.Errorf("%w: %s", domain.ErrInvalidInput, describeValidation(err))
	}
	return settings, nil
}

// stored applies persisted values on top of defaults.
// Unparseable values fall back to the default.
func (s *SettingsService) stored(settings domain.Settings) domain.Settings {
	if url := s.configStore.GetString(keyBackendURL); url != "" {
		settings.BackendURL = url
	}
	if raw := s.configStore.GetString(keyUploadTimeout); raw != "" {
		timeout, err := time.ParseDuration(raw)
		if err != nil || timeout < 0 {
			logger.Warn("ignoring invalid %s %q in %s", keyUploadTimeout, raw, s.configStore.Path())
		} else {
			settings.Timeout = timeout
		}
	}
	if cmd := s.configStore.GetString(keyBrowserCommand); cmd != "" {
		settings.BrowserCommand = cmd
	}
	return settings
}

// SetBackendURL persists the analysis service base URL.
func (s *SettingsService) SetBackendURL(url string) error {
	url = strings.TrimSpace(url)
	if err := s.validate.Var(url, backendURLRule); err != nil {
		return fmt.Errorf("%w: backend url %q must be an absolute http(s) URL", domain.ErrInvalidInput, url)
	}
	if err := s.configStore.Set(keyBackendURL, url); err != nil {
		return fmt.Errorf("save backend url: %w", err)
	}
	return nil
}

// SetTimeout persists the upload timeout.
func (s *SettingsService) SetTimeout(timeout time.Duration) error {
	if timeout < 0 {
		return fmt.Errorf("%w: timeout must not be negative", domain.ErrInvalidInput)
	}
	if err := s.configStore.Set(keyUploadTimeout, timeout.String()); err != nil {
		return fmt.Errorf("save upload timeout: %w", err)
	}
	return nil
}

// SetBrowserCommand persists the command used to open video links.
func (s *SettingsService) SetBrowserCommand(command string) error {
	if err := s.configStore.Set(keyBrowserCommand, strings.TrimSpace(command)); err != nil {
		return fmt.Errorf("save browser command: %w", err)
	}
	return nil
}

// Reset removes every persisted setting.
func (s *SettingsService) Reset() error {
	for _, key := range []string{keyBackendURL, keyUploadTimeout, keyBrowserCommand} {
		if err := s.configStore.Delete(key); err != nil {
			return fmt.Errorf("delete %s: %w", key, err)
		}
	}
	return nil
}

// ConfigPath returns the location of the persisted settings.
func (s *SettingsService) ConfigPath() string {
	return s.configStore.Path()
}

// describeValidation turns validator errors into a short sentence.
func describeValidation(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Field() {
		case "BackendURL":
			parts = append(parts, fmt.Sprintf("backend url %q must be an absolute http(s) URL", fe.Value()))
		case "Timeout":
			parts = append(parts, "timeout must not be negative")
		default:
			parts = append(parts, fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag()))
		}
	}
	return strings.Join(parts, "; ")
}
