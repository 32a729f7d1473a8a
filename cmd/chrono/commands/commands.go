// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands builds the chrono command tree. Commands write their
// reports to an injected writer and read time from an injected clock,
// so tests drive the full tree with a buffer and a fake clock.
package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/bureau-foundation/chrono/cmd/chrono/cli"
	"github.com/bureau-foundation/chrono/lib/clock"
	"github.com/bureau-foundation/chrono/lib/period"
	"github.com/bureau-foundation/chrono/lib/version"
)

// Root builds the chrono command tree writing to stdout with the
// system clock.
func Root() *cli.Command {
	return newRoot(os.Stdout, clock.Real())
}

func newRoot(stdout io.Writer, clk clock.Clock) *cli.Command {
	parser := period.NewParser(clk)

	return &cli.Command{
		Name: "chrono",
		Description: `chrono: ISO-8601 instants and periods.

Parse ranges and exact instants, convert epoch timestamps, and render
them in any zone. Display settings come from --config, $CHRONO_CONFIG,
or built-in defaults (UTC, iso8601), and flags override them.`,
		Subcommands: []*cli.Command{
			parseCommand(stdout, parser),
			instantCommand(stdout),
			nowCommand(stdout, clk),
			durationCommand(stdout, parser),
			spoolCommand(stdout),
			versionCommand(stdout),
		},
		Examples: []cli.Example{
			{
				Description: "Parse a range anchored by a duration",
				Command:     "chrono parse 2017-01-01/P1Y3M5DT6H7M30S",
			},
			{
				Description: "Convert an epoch timestamp",
				Command:     "chrono instant 1529982199 --zone Asia/Taipei",
			},
		},
	}
}

func versionCommand(stdout io.Writer) *cli.Command {
	var params cli.JSONOutput

	return &cli.Command{
		Name:    "version",
		Summary: "Print version information",
		Params:  func() any { return &params },
		Run: func(_ context.Context, _ []string, _ *slog.Logger) error {
			if done, err := params.EmitJSON(stdout, version.Current()); done {
				return err
			}
			fmt.Fprintln(stdout, version.Full())
			return nil
		},
	}
}
