package cli

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/syllabus-cli/internal/adapters/driving/tui"
	"github.com/custodia-labs/syllabus-cli/internal/logger"
)

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal user interface.

Type or browse to a PDF syllabus, analyze it, and open recommended videos
from the results.

Controls:
  enter/ctrl+s - Analyze the selected file
  ctrl+o       - Browse for a file
  tab          - Switch between path and results
  ↑/k, ↓/j     - Select a video
  o            - Open the selected video
  ctrl+c       - Quit`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	submission, settings, err := submissionService()
	if err != nil {
		return err
	}
	if deps.VideoAction == nil {
		return errNotConfigured
	}

	app, err := tui.NewApp(tui.NewPorts(submission, deps.VideoAction(settings)), "")
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}
	app.WithContext(cmd.Context())

	// Logs would corrupt the alternate screen.
	closeLog := redirectLogs(deps.LogFile)
	defer closeLog()

	if err := app.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

// redirectLogs sends log output to path until the returned func is called.
func redirectLogs(path string) func() {
	var out io.Writer = io.Discard
	var file *os.File
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err == nil {
			file = f
			out = f
		}
	}
	logger.SetOutput(out)

	return func() {
		logger.SetOutput(os.Stderr)
		if file != nil {
			_ = file.Close()
		}
	}
}
