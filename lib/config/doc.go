// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides YAML configuration loading for the chrono CLI.
//
// Configuration is loaded from a single file specified by either the
// CHRONO_CONFIG environment variable (via [Load]) or a --config flag
// (via [LoadFile]). There is no ~/.config discovery and no automatic
// file search. When neither is given the CLI runs on [Default].
//
// The configuration file supports environment-specific sections
// (development, staging, production) that override base values when
// [Config].Environment matches. Production without an explicit
// section renders ISO-8601 with milliseconds in UTC.
//
// Variable expansion is performed on output.cbor_file after loading:
// ${HOME} and ${VAR:-default} patterns are expanded. No other
// environment variables override config values.
//
// Key exports:
//
//   - [Config] -- master struct with Display and Output
//   - [Default] -- returns a Config with development defaults
//   - [Load] and [LoadFile] -- the two entry points for loading
//   - [Format] and [Formats] -- the instant renderings --format accepts
//
// This package depends on no other chrono packages.
package config
