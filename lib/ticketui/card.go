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

const (
	// cardInnerWidth is the content width inside a card's border.
	cardInnerWidth = 26
	// cardGap is the horizontal spacing between cards in a row.
	cardGap = 2
	// cardHeight is the total rendered height: border rows plus the
	// four content lines (title, location, time, status).
	cardHeight = 6
)

// cardColumns returns how many cards fit per row at the given width.
// Always at least one; narrow terminals just clip.
func cardColumns(totalWidth int) int {
	cardOuterWidth := cardInnerWidth + 2 // border columns
	columns := (totalWidth + cardGap) / (cardOuterWidth + cardGap)
	if columns < 1 {
		columns = 1
	}
	return columns
}

// renderCard renders one ticket as a bordered card. The selected card
// gets the header-colored border; others use the regular border color.
func renderCard(theme tui.Theme, match Match, selected bool, timeLayout string) string {
	entry := match.Ticket

	borderColor := theme.BorderColor
	if selected {
		borderColor = theme.HeaderForeground
	}

	title := lipgloss.NewStyle().Foreground(theme.NormalText).Bold(true)
	faint := lipgloss.NewStyle().Foreground(theme.FaintText)
	status := lipgloss.NewStyle().Foreground(theme.StatusColor(entry.Used)).Bold(true)

	statusLine := status.Render("● VALID")
	if entry.Used {
		statusLine = status.Render("○ USED")
	}

	lines := []string{
		cardLine(HighlightRunes(theme, title, entry.EventName, match.EventPositions)),
		cardLine(HighlightRunes(theme, faint, entry.Location, match.LocationPositions)),
		cardLine(faint.Render(entry.Time.Format(timeLayout))),
		cardLine(statusLine + faint.Render(fmt.Sprintf("%*s", cardInnerWidth-lipgloss.Width(statusLine), "#"+fmt.Sprint(entry.ID)))),
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Render(strings.Join(lines, "\n"))
}

// cardLine pads or truncates a styled line to the card's inner width.
func cardLine(rendered string) string {
	current := lipgloss.Width(rendered)
	if current > cardInnerWidth {
		return ansi.Truncate(rendered, cardInnerWidth, "…")
	}
	return rendered + strings.Repeat(" ", cardInnerWidth-current)
}

// renderCardGrid lays out the visible cards in rows of columns cards
// each. rowOffset is the index of the first visible card row.
func renderCardGrid(theme tui.Theme, matches []Match, cursor, columns, rowOffset, visibleRows int, timeLayout string) string {
	totalRows := (len(matches) + columns - 1) / columns

	var rows []string
	for row := rowOffset; row < totalRows && row < rowOffset+visibleRows; row++ {
		var cards []string
		for column := 0; column < columns; column++ {
			index := row*columns + column
			if index >= len(matches) {
				break
			}
			card := renderCard(theme, matches[index], index == cursor, timeLayout)
			cards = append(cards, card)
		}
		rows = append(rows, joinWithGap(cards))
	}
	return strings.Join(rows, "\n")
}

// joinWithGap joins pre-rendered cards horizontally with cardGap
// spacing between them.
func joinWithGap(cards []string) string {
	if len(cards) == 0 {
		return ""
	}
	spacer := strings.Repeat(" ", cardGap)
	parts := make([]string, 0, len(cards)*2-1)
	for index, card := range cards {
		if index > 0 {
			parts = append(parts, spacer)
		}
		parts = append(parts, card)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}
