// SPDX-FileCopyrightText: 2026 Bonial International GmbH
// SPDX-License-Identifier: Apache-2.0

package types

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Summary is the presenter-ready view of a group's victims: one entry per
// month, in ascending month order.
type Summary struct {
	Months []MonthSummary
}

// MonthSummary holds the ranked figures for a single YYYY-MM bucket.
type MonthSummary struct {
	Month        string           `json:"-"`
	TotalVictims int              `json:"total_victims"`
	TopSectors   []SectorCount    `json:"top_sectors"`
	TopCountries []CountrySummary `json:"top_countries"`
}

// SectorCount is a sector name with its occurrence count.
type SectorCount struct {
	Sector string `json:"sector"`
	Count  int    `json:"count"`
}

// CountrySummary is a country with its occurrence count and its own
// most affected sectors.
type CountrySummary struct {
	Country    string        `json:"country"`
	Count      int           `json:"count"`
	TopSectors []SectorCount `json:"top_sectors"`
}

// MarshalJSON encodes the summary as a single object keyed by month,
// preserving the order of Months.
func (s Summary) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, m := range s.Months {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := marshalUnescaped(m.Month)
		if err != nil {
			return nil, err
		}
		val, err := marshalUnescaped(m)
		if err != nil {
			return nil, fmt.Errorf("encoding month %s: %w", m.Month, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalJSON makes sure empty rankings encode as [] rather than null.
func (m MonthSummary) MarshalJSON() ([]byte, error) {
	type alias MonthSummary
	a := alias(m)
	if a.TopSectors == nil {
		a.TopSectors = []SectorCount{}
	}
	if a.TopCountries == nil {
		a.TopCountries = []CountrySummary{}
	}
	countries := make([]CountrySummary, len(a.TopCountries))
	for i, c := range a.TopCountries {
		if c.TopSectors == nil {
			c.TopSectors = []SectorCount{}
		}
		countries[i] = c
	}
	a.TopCountries = countries
	return marshalUnescaped(a)
}

// marshalUnescaped is json.Marshal without HTML escaping, so sector names
// like "Food & Beverage" survive verbatim.
func marshalUnescaped(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
