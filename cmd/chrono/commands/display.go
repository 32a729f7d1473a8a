// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/bureau-foundation/chrono/cmd/chrono/cli"
	"github.com/bureau-foundation/chrono/lib/config"
	"github.com/bureau-foundation/chrono/lib/instant"
	"github.com/spf13/pflag"
)

// formatFlag is a pflag.Value restricted to config.Formats.
type formatFlag config.Format

func (f *formatFlag) String() string { return string(*f) }

func (f *formatFlag) Set(value string) error {
	format := config.Format(strings.ToLower(value))
	if !slices.Contains(config.Formats, format) {
		return fmt.Errorf("must be one of %s", formatNames())
	}
	*f = formatFlag(format)
	return nil
}

func (f *formatFlag) Type() string { return "format" }

func formatNames() string {
	names := make([]string, len(config.Formats))
	for i, format := range config.Formats {
		names[i] = string(format)
	}
	return strings.Join(names, "|")
}

// displayParams binds the flags shared by every command that renders
// instants. Flag values override the loaded configuration.
type displayParams struct {
	ConfigPath string
	Zone       string
	Format     formatFlag
	Pattern    string
}

func (d *displayParams) AddFlags(flagSet *pflag.FlagSet) {
	flagSet.StringVar(&d.ConfigPath, "config", "", "path to chrono.yaml (default: $CHRONO_CONFIG)")
	flagSet.StringVar(&d.Zone, "zone", "", "IANA zone for rendering, e.g. Asia/Taipei (default: display.zone)")
	flagSet.Var(&d.Format, "format", "instant rendering: "+formatNames()+" (default: display.format)")
	flagSet.StringVar(&d.Pattern, "pattern", "", "strftime pattern; implies --format custom")
}

// display is the resolved rendering of instants.
type display struct {
	config   *config.Config
	location *time.Location
}

// resolve loads the configuration, applies flag overrides, and
// validates the result.
func (d *displayParams) resolve(logger *slog.Logger) (display, error) {
	cfg, err := d.loadConfig()
	if err != nil {
		return display{}, err
	}

	if d.Zone != "" {
		cfg.Display.Zone = d.Zone
	}
	if d.Pattern != "" {
		cfg.Display.Pattern = d.Pattern
		if d.Format == "" {
			cfg.Display.Format = config.FormatCustom
		}
	}
	if d.Format != "" {
		cfg.Display.Format = config.Format(d.Format)
	}

	if err := cfg.Validate(); err != nil {
		return display{}, cli.Validation("invalid display settings: %w", err).
			WithHint("Zones are IANA names such as UTC or Asia/Taipei; formats are " + formatNames() + ".")
	}
	location, err := cfg.Location()
	if err != nil {
		return display{}, cli.Validation("%w", err)
	}

	logger.Debug("display resolved",
		"environment", cfg.Environment,
		"zone", location.String(),
		"format", cfg.Display.Format,
	)
	return display{config: cfg, location: location}, nil
}

func (d *displayParams) loadConfig() (*config.Config, error) {
	var (
		cfg  *config.Config
		err  error
		path = d.ConfigPath
	)
	switch {
	case path != "":
		cfg, err = config.LoadFile(path)
	case os.Getenv("CHRONO_CONFIG") != "":
		path = os.Getenv("CHRONO_CONFIG")
		cfg, err = config.Load()
	default:
		return config.Default(), nil
	}

	if errors.Is(err, fs.ErrNotExist) {
		return nil, cli.NotFound("config file %s does not exist", path).
			WithHint("Pass --config with an existing chrono.yaml, or unset CHRONO_CONFIG to use defaults.")
	}
	if err != nil {
		return nil, cli.Validation("loading config: %w", err)
	}
	return cfg, nil
}

// render formats moment in the configured format and zone.
func (d display) render(moment instant.Instant) (string, error) {
	switch d.config.Display.Format {
	case config.FormatISO8601:
		return moment.ISO8601(d.location), nil
	case config.FormatISO8601Millis:
		return moment.ISO8601Millis(d.location), nil
	case config.FormatSQL:
		return moment.SQLTimestamp(d.location), nil
	case config.FormatEpochSeconds:
		return moment.EpochSecondsText(), nil
	case config.FormatEpochMillis:
		return moment.EpochMillisText(), nil
	case config.FormatCustom:
		return moment.Format(d.config.Display.Pattern, d.location)
	default:
		return "", fmt.Errorf("unsupported format %q", d.config.Display.Format)
	}
}

// renderOptional renders moment when ok, and "" otherwise.
func (d display) renderOptional(moment instant.Instant, ok bool) (string, error) {
	if !ok {
		return "", nil
	}
	return d.render(moment)
}
