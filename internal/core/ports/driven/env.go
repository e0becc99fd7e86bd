package driven

import "github.com/custodia-labs/syllabus-cli/internal/core/domain"

// EnvSource reads configuration overrides from the process environment.
type EnvSource interface {
	// Overrides returns the values set in the environment.
	// Unset values are left zero.
	Overrides() (domain.SettingsOverrides, error)
}
