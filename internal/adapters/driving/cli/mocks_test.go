package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/custodia-labs/syllabus-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/syllabus-cli/internal/core/domain"
	"github.com/custodia-labs/syllabus-cli/internal/core/ports/driving"
	"github.com/custodia-labs/syllabus-cli/internal/core/services"
)

// MockUploader implements driven.Uploader for CLI tests.
type MockUploader struct {
	Status    int
	Body      string
	Err       error
	Calls     int
	Endpoints []string
}

func (m *MockUploader) Upload(
	_ context.Context,
	endpoint string,
	_ domain.SelectedFile,
) (*domain.RawResponse, error) {
	m.Calls++
	m.Endpoints = append(m.Endpoints, endpoint)
	if m.Err != nil {
		return nil, m.Err
	}
	status := m.Status
	if status == 0 {
		status = 200
	}
	return &domain.RawResponse{StatusCode: status, Body: []byte(m.Body)}, nil
}

// testEnv wires real services over an in-memory config store.
type testEnv struct {
	store    *memory.ConfigStore
	uploader *MockUploader
}

// setupTest installs dependencies and resets command state.
func setupTest(t *testing.T, uploader *MockUploader) *testEnv {
	t.Helper()

	env := &testEnv{store: memory.NewConfigStore(), uploader: uploader}
	SetDependencies(&Dependencies{
		Settings: func(o domain.SettingsOverrides) driving.SettingsService {
			return services.NewSettingsService(env.store, nil, o)
		},
		Submission: func(s domain.Settings) driving.SubmissionService {
			return services.NewSubmissionService(env.uploader, s)
		},
		VideoAction: func(s domain.Settings) driving.VideoActionService {
			return services.NewVideoActionService(s.BrowserCommand)
		},
	})

	resetCommands(rootCmd)
	t.Cleanup(func() {
		deps = nil
		resetCommands(rootCmd)
		rootCmd.SetArgs(nil)
	})
	return env
}

// resetCommands restores every flag in the command tree to its default,
// including cobra's own --help.
func resetCommands(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetCommands(sub)
	}
}

// execute runs the root command with args and returns stdout and stderr.
func execute(args ...string) (string, string, error) {
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}
