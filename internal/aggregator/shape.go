// SPDX-FileCopyrightText: 2026 Bonial International GmbH
// SPDX-License-Identifier: Apache-2.0

package aggregator

import "github.com/bonial-oss/ransomstats/internal/types"

const (
	// TopSectors is the number of sectors ranked per month.
	TopSectors = 10
	// TopCountries is the number of countries ranked per month.
	TopCountries = 10
	// TopCountrySectors is the number of sectors ranked per top country.
	TopCountrySectors = 3
)

// Shape ranks an aggregation into the summary consumed by every presenter.
// Months are ordered ascending; within each ranking, ties keep first-seen
// order.
func Shape(result Result) *types.Summary {
	summary := &types.Summary{Months: make([]types.MonthSummary, 0, len(result))}

	for _, month := range result.Months() {
		agg := result[month]

		ms := types.MonthSummary{
			Month:        month,
			TotalVictims: agg.Total,
			TopSectors:   sectorCounts(agg.Sectors.MostCommon(TopSectors)),
		}

		for _, c := range agg.Countries.MostCommon(TopCountries) {
			cs := types.CountrySummary{Country: c.Key, Count: c.Count}
			if sectors, ok := agg.CountrySectors.Lookup(c.Key); ok {
				cs.TopSectors = sectorCounts(sectors.MostCommon(TopCountrySectors))
			}
			ms.TopCountries = append(ms.TopCountries, cs)
		}

		summary.Months = append(summary.Months, ms)
	}

	return summary
}

func sectorCounts(entries []Entry) []types.SectorCount {
	out := make([]types.SectorCount, len(entries))
	for i, e := range entries {
		out[i] = types.SectorCount{Sector: e.Key, Count: e.Count}
	}
	return out
}
