// SPDX-FileCopyrightText: 2026 Bonial International GmbH
// SPDX-License-Identifier: Apache-2.0

package output

import "github.com/bonial-oss/ransomstats/internal/types"

// makeTestSummary builds a two-month summary for presenter tests.
func makeTestSummary() *types.Summary {
	return &types.Summary{Months: []types.MonthSummary{
		{
			Month:        "2023-01",
			TotalVictims: 3,
			TopSectors: []types.SectorCount{
				{Sector: "Healthcare", Count: 2},
				{Sector: "Food & Beverage", Count: 1},
			},
			TopCountries: []types.CountrySummary{
				{Country: "US", Count: 2, TopSectors: []types.SectorCount{{Sector: "Healthcare", Count: 2}}},
				{Country: "Côte d'Ivoire", Count: 1, TopSectors: []types.SectorCount{{Sector: "Food & Beverage", Count: 1}}},
			},
		},
		{
			Month:        "2023-02",
			TotalVictims: 1,
			TopSectors:   []types.SectorCount{{Sector: "Finance", Count: 1}},
			TopCountries: []types.CountrySummary{
				{Country: "DE", Count: 1, TopSectors: []types.SectorCount{{Sector: "Finance", Count: 1}}},
			},
		},
	}}
}
