// SPDX-FileCopyrightText: 2026 Bonial International GmbH
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/bonial-oss/ransomstats/internal/aggregator"
	"github.com/bonial-oss/ransomstats/internal/config"
	"github.com/bonial-oss/ransomstats/internal/datasource/ransomlive"
	"github.com/bonial-oss/ransomstats/internal/input"
	"github.com/bonial-oss/ransomstats/internal/output"
	"github.com/bonial-oss/ransomstats/internal/types"
)

// Version is set at build time via ldflags.
var Version = "dev"

// NoVictimsMessage is printed when the API returns nothing usable.
const NoVictimsMessage = "No victims found or an error occurred when querying the ransomware.live API. Is it DOWN?"

// ExitError signals a non-zero exit code with an optional message.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string { return e.Message }

// Options holds all CLI flag values.
type Options struct {
	Group   string
	Format  string
	Output  string
	Input   string
	APIURL  string
	NoColor bool
}

// streams bundles the process I/O so tests can capture it.
type streams struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer
}

// NewRootCommand creates the root cobra command with all flags.
func NewRootCommand() *cobra.Command {
	opts := &Options{}

	cmd := &cobra.Command{
		Use:     "ransomstats",
		Short:   "Monthly victim statistics for a ransomware group from ransomware.live",
		Version: Version,
		Long: `ransomstats fetches the victims a ransomware group has disclosed from the
ransomware.live API and reports, for each month, the number of victims, the
most targeted sectors and countries, and the top sectors within each country.

Usage:
  ransomstats --group lockbit3
  ransomstats --group akira --format json --output akira.json
  ransomstats --group play --format csv
  curl -s https://api.ransomware.live/v2/groupvictims/play | ransomstats --group play --input -`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(c *cobra.Command, _ []string) error {
			cfg := config.Load(Version)
			if c.Flags().Changed("api-url") {
				cfg.APIURL = opts.APIURL
			}
			if cfg.NoColor {
				opts.NoColor = true
			}
			if err := cfg.Validate(); err != nil {
				return &ExitError{Code: 2, Message: err.Error()}
			}
			source := ransomlive.NewSource(cfg.APIURL, ransomlive.WithUserAgent(cfg.UserAgent))
			s := streams{in: c.InOrStdin(), out: c.OutOrStdout(), errOut: c.ErrOrStderr()}
			return run(c.Context(), opts, source, s)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.Group, "group", "", "Name of the ransomware group (e.g. 'lockbit3', 'babuk2')")
	flags.StringVar(&opts.Format, "format", "normal", "Output format: normal, json, csv, table")
	flags.StringVarP(&opts.Output, "output", "o", "", "Write json, csv or table output to file instead of stdout")
	flags.StringVar(&opts.Input, "input", "", "Read a saved groupvictims JSON payload from file ('-' for stdin) instead of the API")
	flags.StringVar(&opts.APIURL, "api-url", ransomlive.DefaultBaseURL, "Base URL of the ransomware.live API")
	flags.BoolVar(&opts.NoColor, "no-color", false, "Disable colored output")
	_ = cmd.MarkFlagRequired("group")

	return cmd
}

// run orchestrates fetch, aggregation and rendering.
func run(ctx context.Context, opts *Options, source *ransomlive.Source, s streams) error {
	if ctx == nil {
		ctx = context.Background()
	}

	group := ransomlive.NormalizeGroup(opts.Group)
	if group == "" {
		return &ExitError{Code: 2, Message: "--group must not be empty"}
	}
	switch opts.Format {
	case "normal", "json", "csv", "table":
	default:
		return &ExitError{
			Code:    2,
			Message: fmt.Sprintf("unsupported output format: %s", opts.Format),
		}
	}

	victims := loadVictims(ctx, opts, source, group, s)
	if len(victims) == 0 {
		fmt.Fprintln(s.errOut, NoVictimsMessage)
		return nil
	}

	summary := aggregator.Shape(aggregator.Aggregate(victims))

	if opts.Format == "normal" {
		styler := output.PlainStyler()
		if !opts.NoColor && output.IsOutputToTerminal(s.out) {
			styler = output.ColorStyler()
		}
		return output.WriteText(s.out, summary, styler)
	}

	return writeReport(opts, summary, s)
}

// loadVictims returns the group's victims from the saved payload or the API.
// Failures are reported on stderr and yield no victims, so callers cannot
// tell an error from a group with nothing disclosed.
func loadVictims(ctx context.Context, opts *Options, source *ransomlive.Source, group string, s streams) []types.Victim {
	if opts.Input != "" {
		data, err := input.Read(opts.Input, s.in)
		if err != nil {
			fmt.Fprintf(s.errOut, "warning: %v\n", err)
			return nil
		}
		victims, err := input.Parse(data)
		if err != nil {
			fmt.Fprintf(s.errOut, "warning: parsing input: %v\n", err)
			return nil
		}
		return victims
	}

	fmt.Fprintf(s.errOut, "Searching for victims for the group: %s ...\n", group)
	victims, err := source.Fetch(ctx, group)
	if err != nil {
		fmt.Fprintf(s.errOut, "warning: fetching victims: %v\n", err)
		return nil
	}
	return victims
}

// writeReport renders json, csv or table output to stdout or to opts.Output.
func writeReport(opts *Options, summary *types.Summary, s streams) error {
	w := s.out
	var f *os.File
	if opts.Output != "" && opts.Output != "-" {
		var err error
		f, err = os.Create(opts.Output)
		if err != nil {
			return &ExitError{Code: 1, Message: fmt.Sprintf("creating output file: %v", err)}
		}
		defer f.Close()
		w = f
	}

	var err error
	var label string
	switch opts.Format {
	case "json":
		label = "JSON"
		err = output.WriteJSON(w, summary)
	case "csv":
		label = "CSV"
		err = output.WriteCSV(w, summary)
	case "table":
		label = "Table"
		err = output.WriteTable(w, summary, output.TableConfig{
			IsTerminal: !opts.NoColor && output.IsOutputToTerminal(w),
		})
	}
	if err != nil {
		return &ExitError{Code: 1, Message: fmt.Sprintf("writing %s output: %v", label, err)}
	}

	if f != nil {
		if err := f.Close(); err != nil {
			return &ExitError{Code: 1, Message: fmt.Sprintf("closing output file: %v", err)}
		}
		fmt.Fprintf(s.errOut, "%s output successfully saved to file: %s\n", label, opts.Output)
	}
	return nil
}
