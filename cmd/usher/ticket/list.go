// Copyright 2026 The Usher Authors
// SPDX-License-Identifier: Apache-2.0

package ticket

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/pflag"

	"github.com/usher-tui/usher/cmd/usher/cli"
	"github.com/usher-tui/usher/lib/ticket"
)

type listParams struct {
	cli.JSONOutput
	File       string `flag:"file" desc:"path to JSONL ticket file (default: built-in sample)"`
	Filter     string `flag:"filter" desc:"filter mode: all, used, or valid" default:"all"`
	TimeLayout string `flag:"time-layout" desc:"Go time layout for timestamps" default:"1/2/2006 3:04 PM"`
}

// ListCommand returns the "list" subcommand that prints tickets as a
// table or JSON.
func ListCommand() *cli.Command {
	var params listParams

	return &cli.Command{
		Name:    "list",
		Summary: "List tickets",
		Usage:   "usher ticket list [flags]",
		Examples: []cli.Example{
			{
				Description: "List the sample tickets",
				Command:     "usher ticket list",
			},
			{
				Description: "List only valid tickets from a file, as JSON",
				Command:     "usher ticket list --file tickets.jsonl --filter valid --json",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("list", &params)
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return cli.Validation("unexpected argument: %s", args[0])
			}

			tickets, err := loadTickets(params.File)
			if err != nil {
				return err
			}
			filter, err := parseFilter(params.Filter)
			if err != nil {
				return err
			}
			filtered := ticket.Apply(tickets, filter)

			if done, err := params.EmitJSON(filtered); done {
				return err
			}
			return renderList(os.Stdout, filtered, params.TimeLayout)
		},
	}
}

// renderList writes the tickets as an aligned text table.
func renderList(w io.Writer, tickets []ticket.Ticket, timeLayout string) error {
	writer := tabwriter.NewWriter(w, 2, 0, 3, ' ', 0)
	fmt.Fprintln(writer, "ID\tEVENT\tLOCATION\tTIME\tSTATUS")
	for _, entry := range tickets {
		status := "valid"
		if entry.Used {
			status = "used"
		}
		fmt.Fprintf(writer, "%d\t%s\t%s\t%s\t%s\n",
			entry.ID, entry.EventName, entry.Location,
			entry.Time.Format(timeLayout), status)
	}
	return writer.Flush()
}
