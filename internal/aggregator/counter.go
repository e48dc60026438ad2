// SPDX-FileCopyrightText: 2026 Bonial International GmbH
// SPDX-License-Identifier: Apache-2.0

package aggregator

import "sort"

// Entry is a key with its count.
type Entry struct {
	Key   string
	Count int
}

// Counter is a frequency table that remembers the order in which keys were
// first seen. The zero value is ready to use.
type Counter struct {
	index   map[string]int
	entries []Entry
}

// Inc increments the count for key, inserting it at zero first if needed.
func (c *Counter) Inc(key string) {
	if c.index == nil {
		c.index = make(map[string]int)
	}
	i, ok := c.index[key]
	if !ok {
		i = len(c.entries)
		c.index[key] = i
		c.entries = append(c.entries, Entry{Key: key})
	}
	c.entries[i].Count++
}

// Get returns the count for key, or 0 if it was never seen.
func (c *Counter) Get(key string) int {
	i, ok := c.index[key]
	if !ok {
		return 0
	}
	return c.entries[i].Count
}

// Len returns the number of distinct keys.
func (c *Counter) Len() int {
	return len(c.entries)
}

// Sum returns the sum of all counts.
func (c *Counter) Sum() int {
	var total int
	for _, e := range c.entries {
		total += e.Count
	}
	return total
}

// Entries returns a copy of all entries in first-seen order.
func (c *Counter) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// MostCommon returns the n entries with the highest counts, highest first.
// Entries with equal counts keep their first-seen order. A negative n
// returns every entry.
func (c *Counter) MostCommon(n int) []Entry {
	out := c.Entries()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	if n >= 0 && n < len(out) {
		out = out[:n]
	}
	return out
}

// CountrySectors maps a country to the frequency table of its sectors.
type CountrySectors struct {
	counters map[string]*Counter
}

// Sectors returns the sector counter for country, creating an empty one on
// first use.
func (cs *CountrySectors) Sectors(country string) *Counter {
	if cs.counters == nil {
		cs.counters = make(map[string]*Counter)
	}
	c, ok := cs.counters[country]
	if !ok {
		c = &Counter{}
		cs.counters[country] = c
	}
	return c
}

// Lookup returns the sector counter for country without creating one.
func (cs *CountrySectors) Lookup(country string) (*Counter, bool) {
	c, ok := cs.counters[country]
	return c, ok
}
