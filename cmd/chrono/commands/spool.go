// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/bureau-foundation/chrono/cmd/chrono/cli"
	"github.com/bureau-foundation/chrono/lib/codec"
)

type spoolParams struct {
	cli.JSONOutput
	Display displayParams
	File    string `json:"file" flag:"file" desc:"CBOR file to read instead of output.cbor_file"`
}

func spoolCommand(stdout io.Writer) *cli.Command {
	var params spoolParams

	return &cli.Command{
		Name:    "spool",
		Summary: "Inspect the CBOR file written by parse",
		Description: `Read the CBOR sequence that parse appends to output.cbor_file and
print one line of RFC 8949 diagnostic notation per record.

With --json the records are decoded and reported the way parse
reports them, rendered in the current display zone and format.`,
		Usage:  "chrono spool [flags]",
		Params: func() any { return &params },
		Examples: []cli.Example{
			{
				Description: "Show the records appended so far",
				Command:     "chrono spool --config chrono.yaml",
			},
			{
				Description: "Re-render a spool file in another zone",
				Command:     "chrono spool --file periods.cbor --zone Asia/Taipei --json",
			},
		},
		Run: func(_ context.Context, args []string, logger *slog.Logger) error {
			if len(args) > 0 {
				return cli.Validation("spool takes no positional arguments, got %q", args[0])
			}
			display, err := params.Display.resolve(logger)
			if err != nil {
				return err
			}

			path := params.File
			if path == "" {
				path = display.config.Output.CBORFile
			}
			if path == "" {
				return cli.Validation("no CBOR file to read").
					WithHint("Set output.cbor_file in the config or pass --file.")
			}

			data, err := os.ReadFile(path)
			if errors.Is(err, fs.ErrNotExist) {
				return cli.NotFound("CBOR file %s does not exist", path).
					WithHint("Run chrono parse with output.cbor_file set to create it.")
			}
			if err != nil {
				return cli.Internal("reading %s: %w", path, err)
			}

			if params.OutputJSON {
				reports, err := decodeSpool(data, display)
				if err != nil {
					return cli.Validation("%s: %w", path, err)
				}
				_, err = params.EmitJSON(stdout, reports)
				return err
			}
			return diagnoseSpool(data, stdout)
		},
	}
}

// decodeSpool decodes every record in a CBOR sequence into a report.
func decodeSpool(data []byte, display display) ([]periodReport, error) {
	decoder := codec.NewDecoder(bytes.NewReader(data))
	reports := []periodReport{}
	for {
		var record periodRecord
		err := decoder.Decode(&record)
		if err == io.EOF {
			return reports, nil
		}
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", len(reports)+1, err)
		}
		report, err := newPeriodReport(record, display)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", len(reports)+1, err)
		}
		reports = append(reports, report)
	}
}

// diagnoseSpool writes the diagnostic notation of each item in data on
// its own line.
func diagnoseSpool(data []byte, w io.Writer) error {
	remaining := data
	for len(remaining) > 0 {
		notation, rest, err := codec.DiagnoseFirst(remaining)
		if err != nil {
			offset := len(data) - len(remaining)
			return cli.Validation("diagnosing CBOR at byte %d: %w", offset, err)
		}
		if _, err := fmt.Fprintln(w, notation); err != nil {
			return err
		}
		remaining = rest
	}
	return nil
}
