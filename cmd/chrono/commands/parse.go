// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/bureau-foundation/chrono/cmd/chrono/cli"
	"github.com/bureau-foundation/chrono/lib/codec"
	"github.com/bureau-foundation/chrono/lib/instant"
	"github.com/bureau-foundation/chrono/lib/period"
)

type parseParams struct {
	cli.JSONOutput
	Display displayParams
	CBOR    bool   `json:"cbor"  flag:"cbor"  desc:"include the hex CBOR encoding of each period"`
	Tally   string `json:"tally" flag:"tally" desc:"check that every range lasts exactly UNIT:AMOUNT, e.g. days:1"`
}

// periodRecord is the CBOR form of a parsed period, written by --cbor
// and appended to output.cbor_file.
type periodRecord struct {
	Input  string        `json:"input"`
	Period period.Period `json:"period"`
}

// periodReport is the text and JSON form of a parsed period. Instants
// are rendered in the display format and zone.
type periodReport struct {
	Input      string `json:"input"`
	Start      string `json:"start,omitempty"`
	End        string `json:"end,omitempty"`
	Exact      string `json:"exact,omitempty"`
	WholeMonth bool   `json:"whole_month"`
	SpanMillis int64  `json:"span_millis"`
	Tallied    *bool  `json:"tallied,omitempty"`
	CBOR       string `json:"cbor,omitempty"`
}

// tally is a parsed --tally value.
type tally struct {
	unit   instant.Unit
	amount int64
}

func parseCommand(stdout io.Writer, parser *period.Parser) *cli.Command {
	var params parseParams

	return &cli.Command{
		Name:    "parse",
		Summary: "Parse ISO-8601 periods",
		Description: `Parse one or more periods and report their bounds.

A period is either a range "<start>/<end>" or a single exact instant.
The start is a calendar date-time with optional trailing fields
(2017, 2017-03, 2017-03-01T10:00:00.5+02:00). The end is another
calendar date-time or a duration in the full PnYnMnDTnHnMnS form,
which is added to the start. Years count 365 days and months 30 days.

Every argument must parse; nothing is printed when any of them fails.
With --tally, the command exits 1 when a period does not last exactly
the given amount.`,
		Usage:  "chrono parse <period>... [flags]",
		Params: func() any { return &params },
		Examples: []cli.Example{
			{
				Description: "A range anchored by a duration",
				Command:     "chrono parse 2017-01-01/P1Y3M5DT6H7M30S",
			},
			{
				Description: "Check that a range is a whole month in Taipei",
				Command:     "chrono parse 2017-01-01T00:00:00+08:00/2017-01-31T23:59:59+08:00 --zone Asia/Taipei",
			},
			{
				Description: "Fail unless the range is exactly one day",
				Command:     "chrono parse 2017-01-01/2017-01-02 --tally days:1",
			},
			{
				Description: "Inspect the CBOR encoding",
				Command:     "chrono parse 2017-01-01/P0Y0M1DT0H0M0S --cbor --json",
			},
		},
		Run: func(_ context.Context, args []string, logger *slog.Logger) error {
			if len(args) == 0 {
				return cli.Validation("expected at least one period").
					WithHint("Periods look like 2017-01-01/P1Y3M5DT6H7M30S or 2017-01-01T00:00:00Z/2017-02-01T00:00:00Z.")
			}
			display, err := params.Display.resolve(logger)
			if err != nil {
				return err
			}
			check, err := parseTally(params.Tally)
			if err != nil {
				return err
			}

			records := make([]periodRecord, 0, len(args))
			for i, arg := range args {
				parsed, err := parser.Parse(arg)
				if err != nil {
					return cli.Validation("argument %d: %w", i+1, err).
						WithHint("The end of a range is a date-time or a duration with every marker, e.g. P0Y0M1DT0H0M0S.")
				}
				records = append(records, periodRecord{Input: arg, Period: parsed})
			}
			logger.Debug("periods parsed", "count", len(records))

			reports := make([]periodReport, 0, len(records))
			allTallied := true
			for _, record := range records {
				report, err := newPeriodReport(record, display)
				if err != nil {
					return cli.Validation("%w", err)
				}
				if check != nil {
					tallied := record.Period.IsTalliedWithDuration(check.unit, check.amount)
					report.Tallied = &tallied
					allTallied = allTallied && tallied
				}
				if params.CBOR {
					encoded, err := codec.MarshalHex(record)
					if err != nil {
						return cli.Internal("encoding %q: %w", record.Input, err)
					}
					report.CBOR = encoded
				}
				reports = append(reports, report)
			}

			if path := display.config.Output.CBORFile; path != "" {
				if err := appendRecords(display, records); err != nil {
					return err
				}
				logger.Info("periods appended", "path", path, "count", len(records))
			}

			if done, err := params.EmitJSON(stdout, reports); done {
				if err != nil {
					return err
				}
			} else {
				writePeriodReports(stdout, cli.NewStyles(stdout), reports)
			}

			if !allTallied {
				return &cli.ExitError{Code: 1}
			}
			return nil
		},
	}
}

// parseTally parses "UNIT:AMOUNT". An empty value disables the check.
func parseTally(value string) (*tally, error) {
	if value == "" {
		return nil, nil
	}
	unitName, amountText, ok := strings.Cut(value, ":")
	if !ok {
		return nil, cli.Validation("--tally %q: expected UNIT:AMOUNT", value).
			WithHint("For example --tally days:1 or --tally hours:24.")
	}
	unit, err := instant.ParseUnit(unitName)
	if err != nil {
		return nil, cli.Validation("--tally %q: %w", value, err)
	}
	amount, err := strconv.ParseInt(amountText, 10, 64)
	if err != nil {
		return nil, cli.Validation("--tally %q: amount must be an integer", value)
	}
	return &tally{unit: unit, amount: amount}, nil
}

func newPeriodReport(record periodRecord, display display) (periodReport, error) {
	report := periodReport{
		Input:      record.Input,
		WholeMonth: record.Period.IsWholeMonth(display.location),
		SpanMillis: record.Period.DurationMillis(),
	}
	var err error
	if report.Start, err = display.renderOptional(record.Period.Start()); err != nil {
		return periodReport{}, err
	}
	if report.End, err = display.renderOptional(record.Period.End()); err != nil {
		return periodReport{}, err
	}
	if report.Exact, err = display.renderOptional(record.Period.Exact()); err != nil {
		return periodReport{}, err
	}
	return report, nil
}

// appendRecords appends records to output.cbor_file as a CBOR sequence.
// Every record is encoded before the file is opened, and the sequence
// is written in one call, so an encoding failure leaves the file as it
// was.
func appendRecords(display display, records []periodRecord) error {
	var sequence bytes.Buffer
	encoder := codec.NewEncoder(&sequence)
	for _, record := range records {
		if err := encoder.Encode(record); err != nil {
			return cli.Internal("encoding %q: %w", record.Input, err)
		}
	}

	if err := display.config.EnsureOutputDir(); err != nil {
		return cli.Internal("%w", err)
	}
	path := display.config.Output.CBORFile
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return cli.Internal("opening %s: %w", path, err)
	}
	_, writeErr := file.Write(sequence.Bytes())
	closeErr := file.Close()
	if writeErr != nil {
		return cli.Internal("writing %s: %w", path, writeErr)
	}
	if closeErr != nil {
		return cli.Internal("closing %s: %w", path, closeErr)
	}
	return nil
}

func writePeriodReports(w io.Writer, styles cli.Styles, reports []periodReport) {
	for i, report := range reports {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%s%s\n", styles.Label("input"), report.Input)
		fmt.Fprintf(w, "%s%s\n", styles.Label("start"), orNone(styles, report.Start))
		fmt.Fprintf(w, "%s%s\n", styles.Label("end"), orNone(styles, report.End))
		fmt.Fprintf(w, "%s%s\n", styles.Label("exact"), orNone(styles, report.Exact))
		fmt.Fprintf(w, "%s%s\n", styles.Label("whole_month"), styles.Verdict(report.WholeMonth))
		fmt.Fprintf(w, "%s%d\n", styles.Label("span_ms"), report.SpanMillis)
		if report.Tallied != nil {
			fmt.Fprintf(w, "%s%s\n", styles.Label("tallied"), styles.Verdict(*report.Tallied))
		}
		if report.CBOR != "" {
			fmt.Fprintf(w, "%s%s\n", styles.Label("cbor"), report.CBOR)
		}
	}
}

func orNone(styles cli.Styles, value string) string {
	if value == "" {
		return styles.Muted("(none)")
	}
	return value
}
