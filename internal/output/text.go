// SPDX-FileCopyrightText: 2026 Bonial International GmbH
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/bonial-oss/ransomstats/internal/types"
)

// Role identifies the kind of text being styled.
type Role int

const (
	RoleMonth Role = iota
	RoleTotal
	RoleSectors
	RoleCountries
	RoleBreakdown
	RoleNotice
)

// Styler decorates report text by role. Implementations must not change
// the visible characters, only add styling around them.
type Styler interface {
	Style(role Role, text string) string
}

type plainStyler struct{}

func (plainStyler) Style(_ Role, text string) string { return text }

// PlainStyler returns a Styler that leaves text untouched.
func PlainStyler() Styler { return plainStyler{} }

type colorStyler struct {
	colors map[Role]*color.Color
}

// ColorStyler returns a Styler that wraps text in ANSI colors. It ignores
// the process-wide color.NoColor switch; callers decide when to use it.
func ColorStyler() Styler {
	colors := map[Role]*color.Color{
		RoleMonth:     color.New(color.FgCyan),
		RoleTotal:     color.New(color.FgGreen),
		RoleSectors:   color.New(color.FgMagenta),
		RoleCountries: color.New(color.FgBlue),
		RoleBreakdown: color.New(color.FgYellow),
		RoleNotice:    color.New(color.FgYellow),
	}
	for _, c := range colors {
		c.EnableColor()
	}
	return &colorStyler{colors: colors}
}

func (s *colorStyler) Style(role Role, text string) string {
	c, ok := s.colors[role]
	if !ok {
		return text
	}
	return c.Sprint(text)
}

// NoDataMessage is printed by WriteText for an empty summary.
const NoDataMessage = "No data to display."

// WriteText renders the summary as an indented, human-readable report.
func WriteText(w io.Writer, summary *types.Summary, st Styler) error {
	if st == nil {
		st = PlainStyler()
	}
	if len(summary.Months) == 0 {
		_, err := fmt.Fprintln(w, st.Style(RoleNotice, NoDataMessage))
		return err
	}

	ew := &errWriter{w: w}
	for _, m := range summary.Months {
		ew.printf("\n%s\n", st.Style(RoleMonth, "Month: "+m.Month))
		ew.printf("  %s\n", st.Style(RoleTotal, fmt.Sprintf("Total victims: %d", m.TotalVictims)))

		ew.printf("  %s\n", st.Style(RoleSectors, "Top sectors:"))
		for _, s := range m.TopSectors {
			ew.printf("    - %s: %d\n", s.Sector, s.Count)
		}

		ew.printf("  %s\n", st.Style(RoleCountries, "Top countries:"))
		for _, c := range m.TopCountries {
			ew.printf("    - %s: %d\n", c.Country, c.Count)
			if len(c.TopSectors) == 0 {
				continue
			}
			ew.printf("       %s\n", st.Style(RoleBreakdown, "Affected sectors:"))
			for _, s := range c.TopSectors {
				ew.printf("         * %s: %d\n", s.Sector, s.Count)
			}
		}
		ew.printf("\n")
	}
	if ew.err != nil {
		return fmt.Errorf("writing text output: %w", ew.err)
	}
	return nil
}

// errWriter keeps the first write error and turns later writes into no-ops.
// It is also an io.Writer, so libraries that drop write errors can be
// pointed at it.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}
	n, err := ew.w.Write(p)
	if err != nil {
		ew.err = err
	}
	return n, err
}
