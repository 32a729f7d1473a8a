// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec provides chrono's CBOR encoding configuration.
//
// JSON is used for CLI output. CBOR is used when parsed instants and
// periods are stored or handed to another process: "chrono parse
// --cbor" prints it, and the output.cbor_file config setting appends
// it to a file as a CBOR sequence.
//
// The encoder uses Core Deterministic Encoding (RFC 8949 §4.2), so
// the same logical data always produces identical bytes. Values that
// implement encoding.TextMarshaler, such as instant.Instant and
// period.Period, encode as CBOR text strings in their ISO-8601 form:
//
//	data, err := codec.Marshal(parsedPeriod)
//	err = codec.Unmarshal(data, &parsedPeriod)
//
// For streams:
//
//	encoder := codec.NewEncoder(file)
//	decoder := codec.NewDecoder(file)
//
// Types that only ever travel as CBOR carry `cbor` struct tags. Types
// that are also printed as JSON carry `json` tags only; fxamacker/cbor
// reads `json` tags when `cbor` tags are absent. Never put both on the
// same field.
package codec
