// Copyright 2026 The Usher Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands assembles the usher command tree. It exists apart
// from main so that integration tests can build and execute the tree
// without spawning a process.
package commands

import (
	"github.com/usher-tui/usher/cmd/usher/cli"
	ticketcmd "github.com/usher-tui/usher/cmd/usher/ticket"
	"github.com/usher-tui/usher/cmd/usher/ticket/viewer"
)

// Root returns the top-level usher command.
func Root() *cli.Command {
	return &cli.Command{
		Name:        "usher",
		Summary:     "Terminal ticket wallet",
		Description: "Usher tracks event tickets and whether they have been used.",
		Examples: []cli.Example{
			{
				Description: "Open the interactive viewer",
				Command:     "usher viewer",
			},
			{
				Description: "List valid tickets from a file as JSON",
				Command:     "usher ticket list --file tickets.jsonl --filter valid --json",
			},
		},
		Subcommands: []*cli.Command{
			viewer.Command(),
			ticketcmd.Command(),
			VersionCommand(),
		},
	}
}
