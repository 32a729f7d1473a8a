// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Environment represents the deployment environment.
type Environment string

const (
	// Development is for local use at a terminal.
	Development Environment = "development"
	// Staging is for pre-production pipelines.
	Staging Environment = "staging"
	// Production is for production pipelines.
	Production Environment = "production"
)

// Format names an instant rendering.
type Format string

const (
	// FormatISO8601 is yyyy-MM-ddTHH:mm:ss with a Z or ±HH:MM suffix.
	FormatISO8601 Format = "iso8601"
	// FormatISO8601Millis adds three fractional digits.
	FormatISO8601Millis Format = "iso8601-millis"
	// FormatSQL is yyyy-MM-dd HH:mm:ss with no zone designator.
	FormatSQL Format = "sql"
	// FormatEpochSeconds is decimal seconds since the epoch.
	FormatEpochSeconds Format = "epoch-seconds"
	// FormatEpochMillis is decimal milliseconds since the epoch.
	FormatEpochMillis Format = "epoch-millis"
	// FormatCustom uses Display.Pattern as a strftime pattern.
	FormatCustom Format = "custom"
)

// Formats lists every valid Format in display order.
var Formats = []Format{
	FormatISO8601,
	FormatISO8601Millis,
	FormatSQL,
	FormatEpochSeconds,
	FormatEpochMillis,
	FormatCustom,
}

// Config is the configuration for the chrono CLI.
type Config struct {
	// Environment identifies the deployment type (development, staging, production).
	Environment Environment `yaml:"environment"`

	// Display configures how instants are rendered.
	Display DisplayConfig `yaml:"display"`

	// Output configures machine-readable output.
	Output OutputConfig `yaml:"output"`

	// EnvironmentOverrides contains per-environment overrides.
	// These are applied after the base config is loaded.
	Development *ConfigOverrides `yaml:"development,omitempty"`
	Staging     *ConfigOverrides `yaml:"staging,omitempty"`
	Production  *ConfigOverrides `yaml:"production,omitempty"`
}

// ConfigOverrides contains fields that can be overridden per environment.
type ConfigOverrides struct {
	Display *DisplayConfig `yaml:"display,omitempty"`
	Output  *OutputConfig  `yaml:"output,omitempty"`
}

// DisplayConfig configures instant rendering.
type DisplayConfig struct {
	// Zone is an IANA zone name such as "Asia/Taipei", "UTC", or
	// "Local". Default: UTC
	Zone string `yaml:"zone"`

	// Format is one of Formats. Default: iso8601
	Format Format `yaml:"format"`

	// Pattern is the strftime pattern for the custom format, e.g.
	// "%Y/%m/%d %H:%M:%S". Required when Format is custom.
	Pattern string `yaml:"pattern"`
}

// OutputConfig configures machine-readable output.
type OutputConfig struct {
	// CBORFile, when set, is a file that every parsed period is
	// appended to as a CBOR sequence. ${HOME} and ${VAR:-default}
	// are expanded.
	CBORFile string `yaml:"cbor_file"`
}

// Default returns the default configuration.
// These defaults are used as a base before loading the config file.
func Default() *Config {
	return &Config{
		Environment: Development,
		Display: DisplayConfig{
			Zone:   "UTC",
			Format: FormatISO8601,
		},
	}
}

// Load loads configuration from the CHRONO_CONFIG environment variable.
//
// There are no fallbacks: if CHRONO_CONFIG is not set, this fails.
// Callers that can run without a config file use Default instead.
func Load() (*Config, error) {
	configPath := os.Getenv("CHRONO_CONFIG")
	if configPath == "" {
		return nil, fmt.Errorf("CHRONO_CONFIG environment variable not set; " +
			"set it to the path of your chrono.yaml config file, or use --config flag")
	}

	return LoadFile(configPath)
}

// LoadFile loads configuration from a specific file path.
//
// Environment variables do not override config values. The only
// expansion performed is ${HOME} and similar variables in path fields.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	if err := cfg.loadFile(path); err != nil {
		return nil, err
	}

	cfg.applyEnvironmentOverrides()
	cfg.expandVariables()

	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}

// applyEnvironmentOverrides applies the section matching Environment.
func (c *Config) applyEnvironmentOverrides() {
	var overrides *ConfigOverrides

	switch c.Environment {
	case Development:
		overrides = c.Development
	case Staging:
		overrides = c.Staging
	case Production:
		overrides = c.Production
		// Production defaults: full precision in UTC for log pipelines.
		if overrides == nil {
			overrides = &ConfigOverrides{
				Display: &DisplayConfig{
					Zone:   "UTC",
					Format: FormatISO8601Millis,
				},
			}
		}
	}

	if overrides == nil {
		return
	}

	if overrides.Display != nil {
		if overrides.Display.Zone != "" {
			c.Display.Zone = overrides.Display.Zone
		}
		if overrides.Display.Format != "" {
			c.Display.Format = overrides.Display.Format
		}
		if overrides.Display.Pattern != "" {
			c.Display.Pattern = overrides.Display.Pattern
		}
	}

	if overrides.Output != nil {
		if overrides.Output.CBORFile != "" {
			c.Output.CBORFile = overrides.Output.CBORFile
		}
	}
}

// expandVariables expands ${VAR} and ${VAR:-default} patterns in paths.
func (c *Config) expandVariables() {
	vars := map[string]string{
		"HOME": os.Getenv("HOME"),
	}

	c.Output.CBORFile = expandVars(c.Output.CBORFile, vars)
}

var varPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

// expandVars expands ${VAR} and ${VAR:-default} patterns. Names are
// looked up in vars first, then in the process environment.
func expandVars(s string, vars map[string]string) string {
	return varPattern.ReplaceAllStringFunc(s, func(match string) string {
		parts := varPattern.FindStringSubmatch(match)
		if len(parts) < 2 {
			return match
		}

		name := parts[1]
		defaultValue := ""
		if len(parts) >= 3 {
			defaultValue = parts[2]
		}

		if value, ok := vars[name]; ok && value != "" {
			return value
		}
		if value := os.Getenv(name); value != "" {
			return value
		}
		return defaultValue
	})
}

// Validate checks the configuration for errors. Every problem is
// reported, joined with errors.Join.
func (c *Config) Validate() error {
	var errs []error

	if c.Environment != Development && c.Environment != Staging && c.Environment != Production {
		errs = append(errs, fmt.Errorf("invalid environment: %s", c.Environment))
	}

	if _, err := c.Location(); err != nil {
		errs = append(errs, err)
	}

	if !slices.Contains(Formats, c.Display.Format) {
		errs = append(errs, fmt.Errorf("display.format must be one of: %v", Formats))
	}

	if c.Display.Format == FormatCustom && strings.TrimSpace(c.Display.Pattern) == "" {
		errs = append(errs, fmt.Errorf("display.pattern is required when display.format is %s", FormatCustom))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// Location loads Display.Zone. An empty zone is UTC.
func (c *Config) Location() (*time.Location, error) {
	if c.Display.Zone == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(c.Display.Zone)
	if err != nil {
		return nil, fmt.Errorf("display.zone %q: %w", c.Display.Zone, err)
	}
	return loc, nil
}

// EnsureOutputDir creates the directory holding Output.CBORFile if it
// doesn't exist. It does nothing when no CBOR file is configured.
func (c *Config) EnsureOutputDir() error {
	if c.Output.CBORFile == "" {
		return nil
	}
	dir := filepath.Dir(c.Output.CBORFile)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}
	return nil
}
