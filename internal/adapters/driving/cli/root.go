// Package cli provides the cobra command tree for syllabus.
// It implements a driving adapter following hexagonal architecture principles.
package cli

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/syllabus-cli/internal/core/domain"
	"github.com/custodia-labs/syllabus-cli/internal/core/ports/driving"
	"github.com/custodia-labs/syllabus-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Persistent flag values.
var (
	flagBackend string
	flagTimeout time.Duration
	flagVerbose bool
)

// Dependencies holds the constructors main wires in.
// They run after flags are parsed so flag overrides reach the services.
type Dependencies struct {
	// Settings builds the settings service with the given overrides applied last.
	Settings func(overrides domain.SettingsOverrides) driving.SettingsService

	// Submission builds the upload controller for resolved settings.
	Submission func(settings domain.Settings) driving.SubmissionService

	// VideoAction builds the service that opens recommended videos.
	VideoAction func(settings domain.Settings) driving.VideoActionService

	// LogFile receives log output while the TUI owns the terminal.
	// Empty discards it.
	LogFile string
}

var deps *Dependencies

// errNotConfigured is returned when main did not wire dependencies.
var errNotConfigured = errors.New("services not configured")

// isTerminal reports whether stdout is an interactive terminal.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

var rootCmd = &cobra.Command{
	Use:   "syllabus",
	Short: "Analyse PDF syllabi with the syllabus analysis service",
	Long: `syllabus uploads a PDF syllabus to the analysis service and shows the
extracted subject, topic outline, and recommended videos for each topic.

Run without arguments in a terminal to start the interactive UI, or use
"syllabus analyze <file.pdf>" for one-shot output.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(flagVerbose)
	},
}

func init() {
	// Assigned here because runRoot reads rootCmd's flags.
	rootCmd.RunE = runRoot

	rootCmd.PersistentFlags().StringVar(&flagBackend, "backend", "",
		"analysis service base URL (default "+domain.DefaultBackendURL+")")
	rootCmd.PersistentFlags().DurationVar(&flagTimeout, "timeout", 0,
		"upload timeout, 0 disables it (default "+domain.DefaultUploadTimeout.String()+")")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
}

// runRoot starts the TUI in a terminal and prints help otherwise.
func runRoot(cmd *cobra.Command, args []string) error {
	if isTerminal() {
		return runTUI(cmd, args)
	}
	return cmd.Help()
}

// SetDependencies sets the service constructors used by commands.
func SetDependencies(d *Dependencies) {
	deps = d
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// overrides collects the persistent flags that were set explicitly.
func overrides() domain.SettingsOverrides {
	var o domain.SettingsOverrides
	if f := rootCmd.PersistentFlags().Lookup("backend"); f != nil && f.Changed {
		o.BackendURL = flagBackend
	}
	if f := rootCmd.PersistentFlags().Lookup("timeout"); f != nil && f.Changed {
		timeout := flagTimeout
		o.Timeout = &timeout
	}
	return o
}

// settingsService returns the settings service with flag overrides applied.
func settingsService() (driving.SettingsService, error) {
	if deps == nil || deps.Settings == nil {
		return nil, errNotConfigured
	}
	return deps.Settings(overrides()), nil
}

// resolveSettings returns the effective settings.
func resolveSettings() (domain.Settings, error) {
	svc, err := settingsService()
	if err != nil {
		return domain.Settings{}, err
	}
	return svc.Get()
}

// submissionService builds the upload controller for the effective settings.
func submissionService() (driving.SubmissionService, domain.Settings, error) {
	settings, err := resolveSettings()
	if err != nil {
		return nil, domain.Settings{}, err
	}
	if deps.Submission == nil {
		return nil, domain.Settings{}, errNotConfigured
	}
	return deps.Submission(settings), settings, nil
}
