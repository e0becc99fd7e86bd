// Command syllabus uploads PDF syllabi to the analysis service.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/custodia-labs/syllabus-cli/internal/adapters/driven/backend"
	"github.com/custodia-labs/syllabus-cli/internal/adapters/driven/config/env"
	"github.com/custodia-labs/syllabus-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/syllabus-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/syllabus-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/syllabus-cli/internal/core/domain"
	"github.com/custodia-labs/syllabus-cli/internal/core/ports/driven"
	"github.com/custodia-labs/syllabus-cli/internal/core/ports/driving"
	"github.com/custodia-labs/syllabus-cli/internal/core/services"
	"github.com/custodia-labs/syllabus-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	configStore, logFile := openConfigStore("", os.Stderr)

	envSource := env.NewSource()
	client := backend.NewClient(backend.Config{UserAgent: "syllabus-cli/" + version})

	cli.SetVersion(version)
	cli.SetDependencies(&cli.Dependencies{
		Settings: func(overrides domain.SettingsOverrides) driving.SettingsService {
			return services.NewSettingsService(configStore, envSource, overrides)
		},
		Submission: func(settings domain.Settings) driving.SubmissionService {
			return services.NewSubmissionService(client, settings)
		},
		VideoAction: func(settings domain.Settings) driving.VideoActionService {
			return services.NewVideoActionService(settings.BrowserCommand)
		},
		LogFile: logFile,
	})

	if err := cli.Execute(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

// openConfigStore opens the TOML store in dir, or the default directory when
// dir is empty. If that fails, warnings are written to w and an in-memory
// store is returned. logFile is empty when settings are not on disk.
func openConfigStore(dir string, w io.Writer) (store driven.ConfigStore, logFile string) {
	fileStore, err := file.NewConfigStore(dir)
	if err != nil {
		// Printed directly: --verbose has not been parsed yet.
		fmt.Fprintf(w, "Warning: config file unavailable, settings will not persist: %v\n", err)
		return memory.NewConfigStore(), ""
	}
	logger.Debug("using config file %s", fileStore.Path())
	return fileStore, filepath.Join(filepath.Dir(fileStore.Path()), "tui.log")
}
