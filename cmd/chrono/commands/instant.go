// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/bureau-foundation/chrono/cmd/chrono/cli"
	"github.com/bureau-foundation/chrono/lib/clock"
	"github.com/bureau-foundation/chrono/lib/instant"
)

type instantParams struct {
	cli.JSONOutput
	Display displayParams
}

// instantReport is every rendering of one instant.
type instantReport struct {
	Input         string `json:"input,omitempty"`
	Zone          string `json:"zone"`
	Display       string `json:"display"`
	ISO8601       string `json:"iso8601"`
	ISO8601Millis string `json:"iso8601_millis"`
	SQL           string `json:"sql"`
	EpochSeconds  int64  `json:"epoch_seconds"`
	EpochMillis   int64  `json:"epoch_millis"`
	StartOfDay    bool   `json:"start_of_day"`
	EndOfDay      bool   `json:"end_of_day"`
}

func instantCommand(stdout io.Writer) *cli.Command {
	var params instantParams

	return &cli.Command{
		Name:    "instant",
		Summary: "Convert an epoch timestamp or ISO-8601 instant",
		Description: `Convert an instant to every rendering chrono supports.

The argument is either a decimal epoch timestamp or an ISO-8601 offset
date-time (yyyy-MM-ddTHH:mm:ss[.fff] followed by Z or ±HH:MM). Epoch
text of at most 10 characters, counting a leading sign, is seconds;
longer text is milliseconds.`,
		Usage:  "chrono instant <epoch|iso8601> [flags]",
		Params: func() any { return &params },
		Examples: []cli.Example{
			{
				Description: "Epoch seconds in Taipei wall-clock time",
				Command:     "chrono instant 1529982199 --zone Asia/Taipei",
			},
			{
				Description: "Epoch milliseconds as JSON",
				Command:     "chrono instant 1529982199123 --json",
			},
			{
				Description: "Re-render an offset date-time",
				Command:     "chrono instant 2018-06-26T11:03:19+08:00 --format sql",
			},
		},
		Run: func(_ context.Context, args []string, logger *slog.Logger) error {
			if len(args) != 1 {
				return cli.Validation("expected exactly one instant, got %d arguments", len(args)).
					WithHint("Pass an epoch timestamp such as 1529982199 or an ISO-8601 instant such as 2018-06-26T03:03:19Z.")
			}
			display, err := params.Display.resolve(logger)
			if err != nil {
				return err
			}

			moment, err := parseInstantArgument(args[0])
			if err != nil {
				return cli.Validation("%w", err)
			}
			logger.Debug("instant parsed", "input", args[0], "epoch_millis", moment.EpochMillis())

			report, err := newInstantReport(args[0], moment, display)
			if err != nil {
				return cli.Validation("%w", err)
			}
			if done, err := params.EmitJSON(stdout, report); done {
				return err
			}
			writeInstantReport(stdout, cli.NewStyles(stdout), report)
			return nil
		},
	}
}

func nowCommand(stdout io.Writer, clk clock.Clock) *cli.Command {
	var params instantParams

	return &cli.Command{
		Name:    "now",
		Summary: "Print the current instant",
		Description: `Print the current instant, truncated to the millisecond, in every
rendering chrono supports.`,
		Usage:  "chrono now [flags]",
		Params: func() any { return &params },
		Examples: []cli.Example{
			{
				Description: "Current time as an SQL timestamp in Taipei",
				Command:     "chrono now --zone Asia/Taipei --format sql",
			},
		},
		Run: func(_ context.Context, args []string, logger *slog.Logger) error {
			if len(args) != 0 {
				return cli.Validation("now takes no arguments, got %d", len(args))
			}
			display, err := params.Display.resolve(logger)
			if err != nil {
				return err
			}

			report, err := newInstantReport("", instant.Now(clk), display)
			if err != nil {
				return cli.Validation("%w", err)
			}
			if done, err := params.EmitJSON(stdout, report); done {
				return err
			}
			writeInstantReport(stdout, cli.NewStyles(stdout), report)
			return nil
		},
	}
}

// parseInstantArgument treats decimal text as an epoch timestamp and
// anything else as ISO-8601.
func parseInstantArgument(text string) (instant.Instant, error) {
	if _, err := strconv.ParseInt(text, 10, 64); err == nil {
		return instant.ParseEpoch(text)
	}
	return instant.ParseISO8601(text)
}

func newInstantReport(input string, moment instant.Instant, display display) (instantReport, error) {
	rendered, err := display.render(moment)
	if err != nil {
		return instantReport{}, err
	}
	return instantReport{
		Input:         input,
		Zone:          display.location.String(),
		Display:       rendered,
		ISO8601:       moment.ISO8601(display.location),
		ISO8601Millis: moment.ISO8601Millis(display.location),
		SQL:           moment.SQLTimestamp(display.location),
		EpochSeconds:  moment.EpochSeconds(),
		EpochMillis:   moment.EpochMillis(),
		StartOfDay:    moment.IsAtStartOfDay(display.location),
		EndOfDay:      moment.IsAtEndOfDay(display.location),
	}, nil
}

func writeInstantReport(w io.Writer, styles cli.Styles, report instantReport) {
	if report.Input != "" {
		fmt.Fprintf(w, "%s%s\n", styles.Label("input"), report.Input)
	}
	fmt.Fprintf(w, "%s%s\n", styles.Label("zone"), report.Zone)
	fmt.Fprintf(w, "%s%s\n", styles.Label("display"), report.Display)
	fmt.Fprintf(w, "%s%s\n", styles.Label("iso8601"), report.ISO8601)
	fmt.Fprintf(w, "%s%s\n", styles.Label("iso8601_millis"), report.ISO8601Millis)
	fmt.Fprintf(w, "%s%s\n", styles.Label("sql"), report.SQL)
	fmt.Fprintf(w, "%s%d\n", styles.Label("epoch_seconds"), report.EpochSeconds)
	fmt.Fprintf(w, "%s%d\n", styles.Label("epoch_millis"), report.EpochMillis)
	fmt.Fprintf(w, "%s%s\n", styles.Label("start_of_day"), styles.Verdict(report.StartOfDay))
	fmt.Fprintf(w, "%s%s\n", styles.Label("end_of_day"), styles.Verdict(report.EndOfDay))
}
