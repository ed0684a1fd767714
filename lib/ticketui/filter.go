// Copyright 2026 The Usher Authors
// SPDX-License-Identifier: Apache-2.0

package ticketui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/usher-tui/usher/lib/ticket"
	"github.com/usher-tui/usher/lib/tui"
)

// Match pairs a ticket with its fuzzy-match positions so renderers can
// highlight the matched runes. Positions are rune indices into the
// respective field.
type Match struct {
	Ticket            ticket.Ticket
	EventPositions    []int
	LocationPositions []int
}

// FilterModel owns the interactive text filter: the typed pattern,
// whether the filter prompt has focus, and the fzf matcher state. The
// text filter narrows the already mode-filtered collection; it never
// reorders it.
type FilterModel struct {
	theme tui.Theme
	input []rune

	// active means keystrokes go to the filter prompt instead of the
	// list.
	active bool
}

// NewFilterModel creates an inactive, empty filter.
func NewFilterModel(theme tui.Theme) FilterModel {
	return FilterModel{theme: theme}
}

// Active reports whether the filter prompt has keyboard focus.
func (filter *FilterModel) Active() bool {
	return filter.active
}

// Empty reports whether no pattern is set.
func (filter *FilterModel) Empty() bool {
	return len(filter.input) == 0
}

// Input returns the current pattern text.
func (filter *FilterModel) Input() string {
	return string(filter.input)
}

// Activate gives the filter prompt keyboard focus. The existing
// pattern, if any, is kept for refinement.
func (filter *FilterModel) Activate() {
	filter.active = true
}

// Deactivate returns keyboard focus to the list while keeping the
// pattern applied.
func (filter *FilterModel) Deactivate() {
	filter.active = false
}

// Clear removes the pattern and deactivates the prompt.
func (filter *FilterModel) Clear() {
	filter.input = nil
	filter.active = false
}

// HandleRune appends a typed character to the pattern.
func (filter *FilterModel) HandleRune(r rune) {
	filter.input = append(filter.input, r)
}

// HandleBackspace removes the last character of the pattern.
func (filter *FilterModel) HandleBackspace() {
	if len(filter.input) > 0 {
		filter.input = filter.input[:len(filter.input)-1]
	}
}

// Apply narrows tickets to those matching the pattern on event name or
// location, preserving input order. With an empty pattern every ticket
// matches with no highlight positions.
func (filter *FilterModel) Apply(tickets []ticket.Ticket) []Match {
	matches := make([]Match, 0, len(tickets))

	pattern := tui.PreparePattern(string(filter.input))
	if len(pattern) == 0 {
		for _, entry := range tickets {
			matches = append(matches, Match{Ticket: entry})
		}
		return matches
	}

	slab := tui.NewSlab()
	for _, entry := range tickets {
		eventResult := tui.FuzzyMatch(entry.EventName, pattern, slab)
		locationResult := tui.FuzzyMatch(entry.Location, pattern, slab)
		if !eventResult.Matched && !locationResult.Matched {
			continue
		}
		matches = append(matches, Match{
			Ticket:            entry,
			EventPositions:    eventResult.Positions,
			LocationPositions: locationResult.Positions,
		})
	}
	return matches
}

// View renders the filter prompt line. Inactive with no pattern
// renders nothing; inactive with a pattern shows the applied pattern
// dimmed so the user can see why the list is narrowed.
func (filter *FilterModel) View(width int) string {
	if !filter.active && filter.Empty() {
		return ""
	}

	promptStyle := lipgloss.NewStyle().Foreground(filter.theme.HeaderForeground)
	textStyle := lipgloss.NewStyle().Foreground(filter.theme.NormalText)
	if !filter.active {
		promptStyle = promptStyle.Foreground(filter.theme.FaintText)
		textStyle = textStyle.Foreground(filter.theme.FaintText)
	}

	line := promptStyle.Render("/") + textStyle.Render(string(filter.input))
	if filter.active {
		line += lipgloss.NewStyle().Foreground(filter.theme.HeaderForeground).Render("█")
	}
	return lipgloss.NewStyle().MaxWidth(width).Render(line)
}

// HighlightRunes renders text with the matched rune positions drawn on
// the theme's match background. Used by both the table and card
// renderers.
func HighlightRunes(theme tui.Theme, base lipgloss.Style, text string, positions []int) string {
	if len(positions) == 0 {
		return base.Render(text)
	}

	positionSet := make(map[int]struct{}, len(positions))
	for _, position := range positions {
		positionSet[position] = struct{}{}
	}

	highlight := base.Background(theme.MatchBackground)

	var builder strings.Builder
	runes := []rune(text)
	segmentStart := 0
	segmentHighlighted := false
	flush := func(end int) {
		if end == segmentStart {
			return
		}
		segment := string(runes[segmentStart:end])
		if segmentHighlighted {
			builder.WriteString(highlight.Render(segment))
		} else {
			builder.WriteString(base.Render(segment))
		}
	}
	for index := range runes {
		_, highlighted := positionSet[index]
		if highlighted != segmentHighlighted {
			flush(index)
			segmentStart = index
			segmentHighlighted = highlighted
		}
	}
	flush(len(runes))
	return builder.String()
}
