// SPDX-FileCopyrightText: 2026 Bonial International GmbH
// SPDX-License-Identifier: Apache-2.0

package aggregator

import (
	"sort"

	"github.com/bonial-oss/ransomstats/internal/types"
)

// NotIdentified replaces a missing sector or country.
const NotIdentified = "Not Identified"

// MonthlyAggregate holds the raw counts for one month.
type MonthlyAggregate struct {
	Total          int
	Sectors        Counter
	Countries      Counter
	CountrySectors CountrySectors
}

// Result maps a YYYY-MM month key to its aggregate.
type Result map[string]*MonthlyAggregate

// Months returns the month keys in ascending order.
func (r Result) Months() []string {
	months := make([]string, 0, len(r))
	for m := range r {
		months = append(months, m)
	}
	sort.Strings(months)
	return months
}

// Aggregate groups victims by the month they were discovered in. Victims
// with a missing or unparsable discovered date are skipped.
func Aggregate(victims []types.Victim) Result {
	result := make(Result)

	for i := range victims {
		v := &victims[i]

		month, ok := MonthKey(v.Discovered)
		if !ok {
			continue
		}

		sector := v.Activity
		if sector == "" {
			sector = NotIdentified
		}
		country := v.Country
		if country == "" {
			country = NotIdentified
		}

		agg, ok := result[month]
		if !ok {
			agg = &MonthlyAggregate{}
			result[month] = agg
		}
		agg.Total++
		agg.Sectors.Inc(sector)
		agg.Countries.Inc(country)
		agg.CountrySectors.Sectors(country).Inc(sector)
	}

	return result
}
