// SPDX-FileCopyrightText: 2026 Bonial International GmbH
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/bonial-oss/ransomstats/internal/types"
)

// CSVHeader is the header row written by WriteCSV.
var CSVHeader = []string{"Month", "Total Victims", "Top Sectors", "Top Countries"}

// WriteCSV writes one row per month. Top Sectors is a "sector: count" list
// joined by ", "; Top Countries joins "country (count): [sector: count, ...]"
// entries with "; ".
func WriteCSV(w io.Writer, summary *types.Summary) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for _, m := range summary.Months {
		row := []string{
			m.Month,
			strconv.Itoa(m.TotalVictims),
			FormatSectors(m.TopSectors),
			FormatCountries(m.TopCountries),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing CSV row for %s: %w", m.Month, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing CSV output: %w", err)
	}
	return nil
}

// FormatSectors renders sectors as "a: 2, b: 1".
func FormatSectors(sectors []types.SectorCount) string {
	parts := make([]string, len(sectors))
	for i, s := range sectors {
		parts[i] = fmt.Sprintf("%s: %d", s.Sector, s.Count)
	}
	return strings.Join(parts, ", ")
}

// FormatCountries renders countries as "US (2): [a: 2]; DE (1): [b: 1]".
func FormatCountries(countries []types.CountrySummary) string {
	parts := make([]string, len(countries))
	for i, c := range countries {
		parts[i] = fmt.Sprintf("%s (%d): [%s]", c.Country, c.Count, FormatSectors(c.TopSectors))
	}
	return strings.Join(parts, "; ")
}

var countryEntryRe = regexp.MustCompile(`^(.*) \((\d+)\): \[(.*)\]$`)

// ParseSectors is the inverse of FormatSectors. Sector names containing
// ", " cannot be recovered.
func ParseSectors(cell string) ([]types.SectorCount, error) {
	if cell == "" {
		return nil, nil
	}
	var out []types.SectorCount
	for _, part := range strings.Split(cell, ", ") {
		i := strings.LastIndex(part, ": ")
		if i < 0 {
			return nil, fmt.Errorf("malformed sector entry %q", part)
		}
		n, err := strconv.Atoi(part[i+2:])
		if err != nil {
			return nil, fmt.Errorf("malformed count in %q: %w", part, err)
		}
		out = append(out, types.SectorCount{Sector: part[:i], Count: n})
	}
	return out, nil
}

// ParseCountries is the inverse of FormatCountries.
func ParseCountries(cell string) ([]types.CountrySummary, error) {
	if cell == "" {
		return nil, nil
	}
	var out []types.CountrySummary
	for _, part := range strings.Split(cell, "]; ") {
		if !strings.HasSuffix(part, "]") {
			part += "]"
		}
		m := countryEntryRe.FindStringSubmatch(part)
		if m == nil {
			return nil, fmt.Errorf("malformed country entry %q", part)
		}
		n, err := strconv.Atoi(m[2])
		if err != nil {
			return nil, fmt.Errorf("malformed count in %q: %w", part, err)
		}
		sectors, err := ParseSectors(m[3])
		if err != nil {
			return nil, fmt.Errorf("country %s: %w", m[1], err)
		}
		out = append(out, types.CountrySummary{Country: m[1], Count: n, TopSectors: sectors})
	}
	return out, nil
}
