// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package instant

import (
	"fmt"
	"strings"
)

// Unit is a fixed-length time unit for exact arithmetic. Unlike the
// calendar-approximate years and months of an ISO-8601 duration, a
// Unit always has the same length in milliseconds. Days are exactly
// 86400 seconds.
type Unit int

const (
	Milliseconds Unit = iota + 1
	Seconds
	Minutes
	Hours
	Days
)

var unitMillis = map[Unit]int64{
	Milliseconds: 1,
	Seconds:      1000,
	Minutes:      60 * 1000,
	Hours:        60 * 60 * 1000,
	Days:         24 * 60 * 60 * 1000,
}

var unitNames = map[Unit]string{
	Milliseconds: "milliseconds",
	Seconds:      "seconds",
	Minutes:      "minutes",
	Hours:        "hours",
	Days:         "days",
}

// ParseUnit resolves a unit name. Matching is case-insensitive and
// accepts the singular ("day") and plural ("days") forms, plus "ms".
func ParseUnit(name string) (Unit, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	if normalized == "ms" {
		return Milliseconds, nil
	}
	for unit, unitName := range unitNames {
		if normalized == unitName || normalized+"s" == unitName {
			return unit, nil
		}
	}
	return 0, fmt.Errorf("instant: unknown unit %q (want milliseconds, seconds, minutes, hours, or days): %w",
		name, ErrInvalidArgument)
}

// ToMillis converts amount of this unit to milliseconds. An invalid
// Unit converts everything to zero.
func (u Unit) ToMillis(amount int64) int64 {
	return amount * unitMillis[u]
}

// IsValid reports whether u is one of the defined units.
func (u Unit) IsValid() bool {
	_, ok := unitMillis[u]
	return ok
}

func (u Unit) String() string {
	if name, ok := unitNames[u]; ok {
		return name
	}
	return fmt.Sprintf("Unit(%d)", int(u))
}
