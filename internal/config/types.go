// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrInvalidTimeout is returned when the checker timeout is not positive.
	ErrInvalidTimeout = errors.New("invalid checker timeout")
	// ErrInvalidJobs is returned when the job bound is not positive.
	ErrInvalidJobs = errors.New("invalid checker jobs")
	// ErrInvalidLanguage is returned when the language tag or tool is blank.
	ErrInvalidLanguage = errors.New("invalid language config")
)

type (
	// Config is the resolved quilldoc configuration.
	Config struct {
		// Docs are the documentation roots to validate.
		Docs []string `mapstructure:"docs"`
		// Language selects the fence tag and toolchain executable.
		Language LanguageConfig `mapstructure:"language"`
		// Checker tunes the external syntax-check invocations.
		Checker CheckerConfig `mapstructure:"checker"`
		// UI holds presentation settings.
		UI UIConfig `mapstructure:"ui"`
	}

	// LanguageConfig identifies the DSL being validated.
	LanguageConfig struct {
		Tag  string `mapstructure:"tag"`
		Tool string `mapstructure:"tool"`
	}

	// CheckerConfig tunes external checker invocations.
	CheckerConfig struct {
		TimeoutSeconds int    `mapstructure:"timeout_seconds"`
		Jobs           int    `mapstructure:"jobs"`
		TempDir        string `mapstructure:"temp_dir"`
	}

	// UIConfig holds presentation settings.
	UIConfig struct {
		Verbose bool `mapstructure:"verbose"`
	}
)

// DefaultConfig returns the built-in defaults used when no config file or
// environment override is present.
func DefaultConfig() *Config {
	return &Config{
		Docs: []string{"docs"},
		Language: LanguageConfig{
			Tag:  "quill",
			Tool: "quill",
		},
		Checker: CheckerConfig{
			TimeoutSeconds: 10,
			Jobs:           4,
		},
	}
}

// Timeout returns the checker timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.Checker.TimeoutSeconds) * time.Second
}

// Validate checks constraints that must hold after defaults and environment
// overrides are merged on top of the CUE-validated file.
func (c *Config) Validate() error {
	if c.Checker.TimeoutSeconds <= 0 {
		return fmt.Errorf("%w: timeout_seconds must be positive, got %d", ErrInvalidTimeout, c.Checker.TimeoutSeconds)
	}
	if c.Checker.Jobs <= 0 {
		return fmt.Errorf("%w: jobs must be positive, got %d", ErrInvalidJobs, c.Checker.Jobs)
	}
	if c.Language.Tag == "" {
		return fmt.Errorf("%w: tag must not be empty", ErrInvalidLanguage)
	}
	if c.Language.Tool == "" {
		return fmt.Errorf("%w: tool must not be empty", ErrInvalidLanguage)
	}
	return nil
}
