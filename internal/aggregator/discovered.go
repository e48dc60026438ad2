// SPDX-FileCopyrightText: 2026 Bonial International GmbH
// SPDX-License-Identifier: Apache-2.0

package aggregator

import (
	"strings"
	"time"
)

// MonthLayout is the time layout of a MonthKey.
const MonthLayout = "2006-01"

// discoveredLayouts are the ISO-8601 shapes accepted for the discovered
// field. Fractional seconds are accepted by time.Parse after any seconds
// field, so they need no layout of their own.
var discoveredLayouts = []string{
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05-0700",
	"2006-01-02T15:04:05Z07",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04",
	"2006-01-02T15",
	"2006-01-02",
	"20060102T150405Z0700",
	"20060102T150405",
	"20060102",
}

// ParseDiscovered parses an ISO-8601 date or date-time in extended or basic
// format. A space may stand in for the T separator. The offset, if any, is kept on the returned time and
// no conversion to UTC is done.
func ParseDiscovered(s string) (time.Time, bool) {
	if len(s) < len("20060102") {
		return time.Time{}, false
	}
	if len(s) > 10 && s[10] == ' ' {
		s = s[:10] + "T" + s[11:]
	}
	for _, layout := range discoveredLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// MonthKey returns the YYYY-MM bucket for a discovered value, or false when
// the value is empty or unparsable.
func MonthKey(discovered string) (string, bool) {
	discovered = strings.TrimSpace(discovered)
	if discovered == "" {
		return "", false
	}
	t, ok := ParseDiscovered(discovered)
	if !ok {
		return "", false
	}
	return t.Format(MonthLayout), true
}
