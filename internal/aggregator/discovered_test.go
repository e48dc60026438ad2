// SPDX-FileCopyrightText: 2026 Bonial International GmbH
// SPDX-License-Identifier: Apache-2.0

package aggregator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMonthKey(t *testing.T) {
	tests := []struct {
		name       string
		discovered string
		want       string
		ok         bool
	}{
		{"date only", "2023-01-05", "2023-01", true},
		{"T separator", "2023-01-05T10:20:30", "2023-01", true},
		{"space separator", "2023-02-28 23:59:59", "2023-02", true},
		{"fractional seconds", "2024-05-12 10:23:45.123456", "2024-05", true},
		{"zulu", "2023-03-01T00:00:00Z", "2023-03", true},
		{"colon offset", "2023-03-31T23:30:00+02:00", "2023-03", true},
		{"compact offset", "2023-04-01T00:30:00-0500", "2023-04", true},
		{"fraction and offset", "2023-06-15T08:00:00.5+00:00", "2023-06", true},
		{"minutes only", "2023-07-09T12:45", "2023-07", true},
		{"hour only", "2023-01-05T10", "2023-01", true},
		{"hour offset", "2023-01-05T10:20:30+05", "2023-01", true},
		{"fraction and zulu", "2023-01-05T10:20:30.123Z", "2023-01", true},
		{"basic date", "20230105", "2023-01", true},
		{"basic date-time", "20230105T102030", "2023-01", true},
		{"basic with offset", "20230105T102030+0100", "2023-01", true},
		{"offset not converted", "2023-12-31T23:00:00-05:00", "2023-12", true},
		{"empty", "", "", false},
		{"blank", "   ", "", false},
		{"garbage", "yesterday", "", false},
		{"month only", "2023-01", "", false},
		{"invalid day", "2023-02-30", "", false},
		{"slashes", "2023/01/05", "", false},
		{"basic invalid month", "20231305", "", false},
		{"too short", "202301", "", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := MonthKey(tc.discovered)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseDiscovered_KeepsOffset(t *testing.T) {
	ts, ok := ParseDiscovered("2023-12-31T23:00:00-05:00")
	assert.True(t, ok)
	_, offset := ts.Zone()
	assert.Equal(t, -5*3600, offset)
	assert.Equal(t, 31, ts.Day())
}
