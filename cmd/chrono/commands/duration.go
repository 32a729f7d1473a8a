// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/bureau-foundation/chrono/cmd/chrono/cli"
	"github.com/bureau-foundation/chrono/lib/instant"
	"github.com/bureau-foundation/chrono/lib/iso8601"
	"github.com/bureau-foundation/chrono/lib/period"
)

type durationParams struct {
	cli.JSONOutput
	Display displayParams
	From    string `json:"from" flag:"from" desc:"anchor instant (ISO-8601 or epoch); default is now"`
}

type durationReport struct {
	Input     string `json:"input"`
	Canonical string `json:"canonical"`
	Millis    int64  `json:"millis"`
	From      string `json:"from"`
	End       string `json:"end"`
}

func durationCommand(stdout io.Writer, parser *period.Parser) *cli.Command {
	var params durationParams

	return &cli.Command{
		Name:    "duration",
		Summary: "Measure an ISO-8601 duration",
		Description: `Print the canonical form of a PnYnMnDTnHnMnS duration, its length in
milliseconds, and the instant it reaches from an anchor.

Every marker (P, Y, M, D, T, H, M, S) must be present; the counts
before them may be empty. Years count 365 days and months 30 days.
The anchor is --from when given and the current time otherwise.`,
		Usage:  "chrono duration <PnYnMnDTnHnMnS> [flags]",
		Params: func() any { return &params },
		Examples: []cli.Example{
			{
				Description: "Length of a duration with every field",
				Command:     "chrono duration P1Y3M5DT6H7M30S",
			},
			{
				Description: "Where a duration lands from a fixed instant",
				Command:     "chrono duration P0Y0M1DT2H0M0S --from 2020-06-01T12:00:00Z",
			},
		},
		Run: func(_ context.Context, args []string, logger *slog.Logger) error {
			if len(args) != 1 {
				return cli.Validation("expected exactly one duration, got %d arguments", len(args)).
					WithHint("Durations carry every marker, e.g. P0Y0M1DT0H0M0S or PYMDTH30MS.")
			}
			display, err := params.Display.resolve(logger)
			if err != nil {
				return err
			}

			fields, err := iso8601.ParseDuration(args[0])
			if err != nil {
				return cli.Validation("%w", err)
			}

			var (
				from instant.Instant
				end  instant.Instant
			)
			if params.From != "" {
				from, err = parseInstantArgument(params.From)
				if err != nil {
					return cli.Validation("--from: %w", err)
				}
				end, _, err = parser.ResolveFrom(args[0], from)
			} else {
				end, _, err = parser.Resolve(args[0])
				from = end.Minus(instant.Milliseconds, fields.Millis())
			}
			if err != nil {
				return cli.Validation("%w", err)
			}

			report := durationReport{
				Input:     args[0],
				Canonical: fields.String(),
				Millis:    fields.Millis(),
			}
			if report.From, err = display.render(from); err != nil {
				return cli.Validation("%w", err)
			}
			if report.End, err = display.render(end); err != nil {
				return cli.Validation("%w", err)
			}

			if done, err := params.EmitJSON(stdout, report); done {
				return err
			}
			styles := cli.NewStyles(stdout)
			fmt.Fprintf(stdout, "%s%s\n", styles.Label("input"), report.Input)
			fmt.Fprintf(stdout, "%s%s\n", styles.Label("canonical"), report.Canonical)
			fmt.Fprintf(stdout, "%s%d\n", styles.Label("millis"), report.Millis)
			fmt.Fprintf(stdout, "%s%s\n", styles.Label("from"), report.From)
			fmt.Fprintf(stdout, "%s%s\n", styles.Label("end"), report.End)
			return nil
		},
	}
}
