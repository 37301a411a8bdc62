// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for quilldoc.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"quilldoc/internal/config"
	"quilldoc/internal/issue"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// verbose enables verbose output
	verbose bool
	// cfgFile allows specifying a custom config file
	cfgFile string

	// loadedCfg is the configuration resolved during initRootConfig.
	loadedCfg *config.Config

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "quilldoc",
		Short: "Keep quill snippets in your docs compiling",
		Long: TitleStyle.Render("quilldoc") + SubtitleStyle.Render(" - Keep quill snippets in your docs compiling") + `

quilldoc extracts quill-tagged code fences from markdown documentation
and checks them against the real quill toolchain. Fragments that are
not complete programs are wrapped in boilerplate before checking, and
diagnostics are remapped back to documentation line numbers.

` + SubtitleStyle.Render("Quick Start:") + `
  1. Tag documentation code fences with the quill language
  2. Run: quilldoc check docs/
  3. Mark intentional pseudo-code fences with: ` + "```quill skip" + `

` + SubtitleStyle.Render("Examples:") + `
  quilldoc check                 Check the configured docs roots
  quilldoc check docs/ guides/   Check specific directories
  quilldoc check README.md       Check a single document
  quilldoc watch                 Re-check documents as they change`,
	}
)

func init() {
	cobra.OnInitialize(initRootConfig)

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/quilldoc/config.cue)")

	// Add subcommands
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(watchCmd)
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	// Pass version via fang.WithVersion() since fang overrides rootCmd.Version
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

// initRootConfig reads in config file and ENV variables if set.
func initRootConfig() {
	if cfgFile != "" {
		config.SetConfigFilePathOverride(cfgFile)
	}

	cfg, err := config.Load()
	if err != nil {
		// Surface config loading problems immediately; a broken config file
		// should not silently degrade to defaults.
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, verbose))
	}
	loadedCfg = cfg

	// Apply verbose from config if not set via flag
	if cfg != nil && !verbose {
		verbose = cfg.UI.Verbose
	}
}

// activeConfig returns the loaded configuration, falling back to defaults
// when loading failed.
func activeConfig() *config.Config {
	if loadedCfg != nil {
		return loadedCfg
	}
	return config.DefaultConfig()
}

// newLogger builds the CLI logger, honoring the verbose flag.
func newLogger(w io.Writer) *log.Logger {
	logger := log.New(w)
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}
