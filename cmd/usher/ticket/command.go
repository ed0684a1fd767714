// Copyright 2026 The Usher Authors
// SPDX-License-Identifier: Apache-2.0

package ticket

import (
	"github.com/usher-tui/usher/cmd/usher/cli"
	"github.com/usher-tui/usher/lib/clock"
	"github.com/usher-tui/usher/lib/ticket"
)

// Command returns the "ticket" command group.
func Command() *cli.Command {
	return &cli.Command{
		Name:    "ticket",
		Summary: "Inspect tickets from the command line",
		Description: `Non-interactive ticket operations for scripts and quick checks.

Without --file, commands operate on the built-in sample tickets. Pass
--file to read a JSONL ticket file instead.`,
		Subcommands: []*cli.Command{
			ListCommand(),
			StatsCommand(),
		},
	}
}

// loadTickets reads the collection the commands operate on: the JSONL
// file when a path is given, the built-in sample otherwise.
func loadTickets(filePath string) ([]ticket.Ticket, error) {
	if filePath == "" {
		return ticket.Seed(clock.Real().Now()), nil
	}
	tickets, err := ticket.LoadFile(filePath)
	if err != nil {
		return nil, cli.Validation("cannot load tickets from %s: %w", filePath, err).
			WithHint("Check that the file exists and contains one JSON ticket per line.")
	}
	return tickets, nil
}

// parseFilter converts the --filter flag value, rejecting anything
// outside the closed set.
func parseFilter(value string) (ticket.FilterMode, error) {
	mode, ok := ticket.ParseFilterMode(value)
	if !ok {
		return 0, cli.Validation("invalid filter %q", value).
			WithHint("Valid filters are: all, used, valid.")
	}
	return mode, nil
}
