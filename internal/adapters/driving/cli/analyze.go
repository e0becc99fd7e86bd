package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/syllabus-cli/internal/adapters/driving/render"
	"github.com/custodia-labs/syllabus-cli/internal/core/domain"
	"github.com/custodia-labs/syllabus-cli/internal/logger"
)

var analyzeJSON bool

var analyzeCmd = &cobra.Command{
	Use:   "analyze [file.pdf]",
	Short: "Upload a PDF syllabus and print the analysis",
	Long: `Uploads a PDF syllabus to the analysis service and prints the subject,
topic outline, and recommended videos.

The command exits with a non-zero status when the upload is rejected or fails.`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "output the analysis as JSON")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	submission, settings, err := submissionService()
	if err != nil {
		return err
	}
	logger.Debug("uploading %s to %s", args[0], settings.UploadURL())

	state := submission.Submit(cmd.Context(), domain.NewSelectedFile(args[0]))

	if analyzeJSON {
		if err := outputAnalysisJSON(cmd, state); err != nil {
			return err
		}
	} else if state.Kind == domain.StateSuccess {
		if err := render.Text(cmd.OutOrStdout(), render.Project(state)); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}

	if state.Kind == domain.StateError {
		return errors.New(state.Message)
	}
	return nil
}

func outputAnalysisJSON(cmd *cobra.Command, state domain.SubmissionState) error {
	var payload any = state.Result
	if state.Kind == domain.StateError {
		payload = map[string]string{"error": state.Message}
	}
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal analysis: %w", err)
	}
	// Machine-readable output always goes to stdout.
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
