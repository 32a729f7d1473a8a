// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package instant

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is wrapped by errors returned when a caller passes
// blank text where a non-empty value is required. Match with errors.Is.
var ErrInvalidArgument = errors.New("invalid argument")

// ParseError reports text that does not match the expected time
// grammar, or a numeric field that is out of range. The iso8601 and
// period packages return it too, so callers need only one errors.As
// target for every parse failure in chrono.
type ParseError struct {
	// Input is the text that failed to parse.
	Input string

	// Reason describes what was expected, prefixed with the package
	// that rejected the input (e.g., "period: invalid period").
	Reason string

	// Err is the underlying cause, if any (e.g., a strconv or time
	// package error).
	Err error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %q: %v", e.Reason, e.Input, e.Err)
	}
	return fmt.Sprintf("%s: %q", e.Reason, e.Input)
}

// Unwrap returns the underlying cause.
func (e *ParseError) Unwrap() error { return e.Err }

// IsParseError reports whether err is or wraps a *ParseError.
func IsParseError(err error) bool {
	var parseError *ParseError
	return errors.As(err, &parseError)
}
