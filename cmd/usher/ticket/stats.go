// Copyright 2026 The Usher Authors
// SPDX-License-Identifier: Apache-2.0

package ticket

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"github.com/usher-tui/usher/cmd/usher/cli"
	"github.com/usher-tui/usher/lib/ticket"
)

type statsParams struct {
	cli.JSONOutput
	File  string `flag:"file" desc:"path to JSONL ticket file (default: built-in sample)"`
	Check bool   `flag:"check" desc:"exit 1 when no valid tickets remain"`
}

// StatsCommand returns the "stats" subcommand that prints aggregate
// counts over the full collection.
func StatsCommand() *cli.Command {
	var params statsParams

	return &cli.Command{
		Name:    "stats",
		Summary: "Print ticket counts",
		Usage:   "usher ticket stats [flags]",
		Examples: []cli.Example{
			{
				Description: "Counts for the sample tickets",
				Command:     "usher ticket stats",
			},
			{
				Description: "Shell conditional on remaining valid tickets",
				Command:     "usher ticket stats --file tickets.jsonl --check && echo 'still valid'",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("stats", &params)
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return cli.Validation("unexpected argument: %s", args[0])
			}

			tickets, err := loadTickets(params.File)
			if err != nil {
				return err
			}
			stats := ticket.ComputeStats(tickets)

			if done, err := params.EmitJSON(stats); done {
				if err != nil {
					return err
				}
				return checkExhausted(params.Check, stats)
			}
			if err := renderStats(os.Stdout, stats); err != nil {
				return err
			}
			return checkExhausted(params.Check, stats)
		},
	}
}

// renderStats writes the counts in the same shape the viewer's header
// uses.
func renderStats(w io.Writer, stats ticket.Stats) error {
	_, err := fmt.Fprintf(w, "%d total · %d used · %d valid\n",
		stats.Total, stats.Used, stats.Valid)
	return err
}

// checkExhausted implements --check: output has already been printed,
// so a bare non-zero exit signals "no valid tickets left".
func checkExhausted(check bool, stats ticket.Stats) error {
	if check && stats.Valid == 0 {
		return &cli.ExitError{Code: 1}
	}
	return nil
}
