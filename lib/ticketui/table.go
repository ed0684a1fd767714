// Copyright 2026 The Usher Authors
// SPDX-License-Identifier: Apache-2.0

package ticketui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/usher-tui/usher/lib/tui"
)

// columnWidths holds the resolved width of each table column. The id,
// time, and status columns size to their content; event and location
// split the remaining width.
type columnWidths struct {
	id       int
	event    int
	location int
	time     int
	status   int
}

const columnGap = 2

// computeColumnWidths sizes the table columns for the given total
// width. The event column gets the larger share of the flexible space
// since event names run longer than venue names.
func computeColumnWidths(totalWidth int, matches []Match, timeLayout string) columnWidths {
	widths := columnWidths{
		id:     2,
		time:   len(timeLayout),
		status: len("STATUS"),
	}
	for _, match := range matches {
		if digits := len(fmt.Sprintf("%d", match.Ticket.ID)); digits > widths.id {
			widths.id = digits
		}
		if rendered := len(match.Ticket.Time.Format(timeLayout)); rendered > widths.time {
			widths.time = rendered
		}
	}

	flexible := totalWidth - widths.id - widths.time - widths.status - 4*columnGap
	if flexible < 10 {
		flexible = 10
	}
	widths.event = flexible * 3 / 5
	widths.location = flexible - widths.event
	return widths
}

// padCell pads or truncates an already-styled cell to the given
// display width. Truncation is ANSI-aware so highlight escapes never
// get cut mid-sequence.
func padCell(rendered string, width int) string {
	current := lipgloss.Width(rendered)
	if current > width {
		return ansi.Truncate(rendered, width, "…")
	}
	return rendered + strings.Repeat(" ", width-current)
}

// renderTableHeader renders the column title row.
func renderTableHeader(theme tui.Theme, widths columnWidths) string {
	style := lipgloss.NewStyle().Foreground(theme.HeaderForeground).Bold(true)
	gap := strings.Repeat(" ", columnGap)
	return strings.Join([]string{
		style.Render(padCell("ID", widths.id)),
		style.Render(padCell("EVENT", widths.event)),
		style.Render(padCell("LOCATION", widths.location)),
		style.Render(padCell("TIME", widths.time)),
		style.Render(padCell("STATUS", widths.status)),
	}, gap)
}

// renderTableRow renders one ticket as a table row. The selected row
// inverts into the theme's selection colors; filter matches are
// highlighted within the event and location cells.
func renderTableRow(theme tui.Theme, match Match, selected bool, timeLayout string, widths columnWidths) string {
	entry := match.Ticket

	base := lipgloss.NewStyle().Foreground(theme.NormalText)
	faint := lipgloss.NewStyle().Foreground(theme.FaintText)
	status := lipgloss.NewStyle().Foreground(theme.StatusColor(entry.Used))
	if selected {
		base = base.Foreground(theme.SelectedForeground).Background(theme.SelectedBackground)
		faint = faint.Foreground(theme.SelectedForeground).Background(theme.SelectedBackground)
		status = status.Background(theme.SelectedBackground)
	}

	statusText := "VALID"
	if entry.Used {
		statusText = "USED"
	}

	gap := strings.Repeat(" ", columnGap)
	if selected {
		gap = base.Render(gap)
	}

	return strings.Join([]string{
		padCell(faint.Render(fmt.Sprintf("%*d", widths.id, entry.ID)), widths.id),
		padCell(HighlightRunes(theme, base, entry.EventName, match.EventPositions), widths.event),
		padCell(HighlightRunes(theme, base, entry.Location, match.LocationPositions), widths.location),
		padCell(faint.Render(entry.Time.Format(timeLayout)), widths.time),
		padCell(status.Render(statusText), widths.status),
	}, gap)
}
