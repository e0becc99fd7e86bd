package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage client settings",
	Long: `View and change where syllabus sends uploads and how long it waits.

Settings are resolved in this order, first match wins:
  command-line flags (--backend, --timeout)
  environment (SYLLABUS_BACKEND_URL or BACKEND_URL, SYLLABUS_TIMEOUT,
               SYLLABUS_BROWSER; a .env file is read if present)
  the config file
  built-in defaults`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective settings",
	RunE:  runConfigShow,
}

var configSetBackendCmd = &cobra.Command{
	Use:   "set-backend [url]",
	Short: "Set the analysis service base URL",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigSetBackend,
}

var configSetTimeoutCmd = &cobra.Command{
	Use:   "set-timeout [duration]",
	Short: "Set the upload timeout",
	Long:  `Set the upload timeout, e.g. 90s or 5m. A value of 0 disables the timeout.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigSetTimeout,
}

var configSetBrowserCmd = &cobra.Command{
	Use:   "set-browser [command]",
	Short: "Set the command used to open video links",
	Long:  `Set the command used to open video links. An empty string restores the system default.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigSetBrowser,
}

var configResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Remove all saved settings",
	Args:  cobra.NoArgs,
	RunE:  runConfigReset,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetBackendCmd)
	configCmd.AddCommand(configSetTimeoutCmd)
	configCmd.AddCommand(configSetBrowserCmd)
	configCmd.AddCommand(configResetCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	svc, err := settingsService()
	if err != nil {
		return err
	}
	settings, err := svc.Get()
	if err != nil {
		return fmt.Errorf("failed to resolve settings: %w", err)
	}

	timeout := settings.Timeout.String()
	if settings.Timeout == 0 {
		timeout = "none"
	}
	browser := settings.BrowserCommand
	if browser == "" {
		browser = "(system default)"
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()
	cmd.Printf("Config file:  %s\n", svc.ConfigPath())
	cmd.Printf("Backend:      %s\n", settings.BackendURL)
	cmd.Printf("Upload URL:   %s\n", settings.UploadURL())
	cmd.Printf("Timeout:      %s\n", timeout)
	cmd.Printf("Browser:      %s\n", browser)
	return nil
}

func runConfigSetBackend(cmd *cobra.Command, args []string) error {
	svc, err := settingsService()
	if err != nil {
		return err
	}
	if err := svc.SetBackendURL(args[0]); err != nil {
		return err
	}
	cmd.Printf("Backend set to %s\n", args[0])
	return nil
}

func runConfigSetTimeout(cmd *cobra.Command, args []string) error {
	svc, err := settingsService()
	if err != nil {
		return err
	}
	timeout, err := time.ParseDuration(args[0])
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", args[0], err)
	}
	if err := svc.SetTimeout(timeout); err != nil {
		return err
	}
	cmd.Printf("Timeout set to %s\n", timeout)
	return nil
}

func runConfigSetBrowser(cmd *cobra.Command, args []string) error {
	svc, err := settingsService()
	if err != nil {
		return err
	}
	if err := svc.SetBrowserCommand(args[0]); err != nil {
		return err
	}
	if args[0] == "" {
		cmd.Println("Browser reset to system default")
		return nil
	}
	cmd.Printf("Browser set to %s\n", args[0])
	return nil
}

func runConfigReset(cmd *cobra.Command, _ []string) error {
	svc, err := settingsService()
	if err != nil {
		return err
	}
	if err := svc.Reset(); err != nil {
		return fmt.Errorf("failed to reset settings: %w", err)
	}
	cmd.Println("Settings reset to defaults")
	return nil
}
