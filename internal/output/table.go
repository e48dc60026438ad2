// SPDX-FileCopyrightText: 2026 Bonial International GmbH
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	aqtable "github.com/aquasecurity/table"
	"github.com/aquasecurity/tml"
	"golang.org/x/term"

	"github.com/bonial-oss/ransomstats/internal/types"
)

// TableConfig controls table rendering.
type TableConfig struct {
	IsTerminal bool // true when output goes to a terminal (enables ANSI styling)
}

// IsOutputToTerminal returns true if the writer is stdout connected to a
// character device (TTY).
func IsOutputToTerminal(output io.Writer) bool {
	return output == os.Stdout && term.IsTerminal(int(os.Stdout.Fd()))
}

// WriteTable writes one block per month: a heading with the victim total,
// a sector table and a country table with each country's top sectors.
func WriteTable(w io.Writer, summary *types.Summary, cfg TableConfig) error {
	if len(summary.Months) == 0 {
		_, err := fmt.Fprintln(w, NoDataMessage)
		return err
	}

	ew := &errWriter{w: w}
	for i := range summary.Months {
		m := &summary.Months[i]
		if i > 0 {
			ew.printf("\n")
		}
		writeMonthHeader(ew, m, cfg.IsTerminal)

		st := newTableWriter(ew, cfg.IsTerminal)
		st.SetHeaders("Sector", "Victims")
		for _, s := range m.TopSectors {
			st.AddRow(s.Sector, strconv.Itoa(s.Count))
		}
		st.Render()

		ew.printf("\n")

		ct := newTableWriter(ew, cfg.IsTerminal)
		ct.SetHeaders("Country", "Victims", "Affected Sectors")
		for _, c := range m.TopCountries {
			ct.AddRow(c.Country, strconv.Itoa(c.Count), breakdownCell(c.TopSectors))
		}
		ct.Render()
	}

	return ew.err
}

// writeMonthHeader writes the month title and its victim total.
func writeMonthHeader(ew *errWriter, m *types.MonthSummary, isTerminal bool) {
	title := "Month: " + m.Month
	if isTerminal {
		_ = tml.Fprintf(ew, "<underline><bold>%s</bold></underline>\n", title)
	} else {
		ew.printf("%s\n%s\n", title, strings.Repeat("=", utf8.RuneCountInString(title)))
	}
	ew.printf("Total victims: %d\n\n", m.TotalVictims)
}

// newTableWriter creates a bordered table writer with row separators.
// Auto-merge stays off: adjacent rows often share a count.
func newTableWriter(w io.Writer, isTerminal bool) *aqtable.Table {
	tw := aqtable.New(w)
	if isTerminal {
		tw.SetHeaderStyle(aqtable.StyleBold)
		tw.SetLineStyle(aqtable.StyleDim)
	}
	tw.SetBorders(true)
	tw.SetAutoMerge(false)
	tw.SetRowLines(true)
	return tw
}

// breakdownCell lists sectors one per line as "name: count".
func breakdownCell(sectors []types.SectorCount) string {
	if len(sectors) == 0 {
		return "-"
	}
	lines := make([]string, len(sectors))
	for i, s := range sectors {
		lines[i] = fmt.Sprintf("%s: %d", s.Sector, s.Count)
	}
	return strings.Join(lines, "\n")
}
