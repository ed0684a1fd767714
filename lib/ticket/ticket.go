// Copyright 2026 The Usher Authors
// SPDX-License-Identifier: Apache-2.0

package ticket

import "time"

// Ticket is one event-admission record. ID is unique within a
// collection and never reused; Used is the only field that changes
// after creation.
type Ticket struct {
	ID        int       `json:"id"`
	EventName string    `json:"event_name"`
	Location  string    `json:"location"`
	Time      time.Time `json:"time"`
	Used      bool      `json:"used"`
}

// Stats holds aggregate counts over a ticket collection. Total is
// always Used + Valid; the type is only ever produced by
// [ComputeStats], so the invariant holds by construction.
type Stats struct {
	Total int `json:"total"`
	Used  int `json:"used"`
	Valid int `json:"valid"`
}

// ComputeStats counts used and valid tickets. An empty or nil input
// yields the zero Stats.
func ComputeStats(tickets []Ticket) Stats {
	stats := Stats{Total: len(tickets)}
	for _, entry := range tickets {
		if entry.Used {
			stats.Used++
		}
	}
	stats.Valid = stats.Total - stats.Used
	return stats
}

// FilterMode selects which subset of a collection is displayed. The
// three constants are the full domain; there is no parse-from-string
// path into an invalid value ([ParseFilterMode] rejects anything else).
type FilterMode int

const (
	// FilterAll shows every ticket.
	FilterAll FilterMode = iota
	// FilterUsed shows only tickets whose Used flag is set.
	FilterUsed
	// FilterValid shows only tickets whose Used flag is clear.
	FilterValid
)

// String returns the lowercase mode name used in flags and config.
func (mode FilterMode) String() string {
	switch mode {
	case FilterUsed:
		return "used"
	case FilterValid:
		return "valid"
	default:
		return "all"
	}
}

// ParseFilterMode converts a flag or config value into a FilterMode.
// The empty string maps to FilterAll.
func ParseFilterMode(value string) (FilterMode, bool) {
	switch value {
	case "", "all":
		return FilterAll, true
	case "used":
		return FilterUsed, true
	case "valid":
		return FilterValid, true
	default:
		return FilterAll, false
	}
}

// ViewMode selects the presentation layout. It carries no data
// semantics: switching views never changes which tickets are shown.
type ViewMode int

const (
	// ViewCard renders tickets as a bordered card grid.
	ViewCard ViewMode = iota
	// ViewTable renders tickets as aligned table rows.
	ViewTable
)

// String returns the lowercase view name used in flags and config.
func (mode ViewMode) String() string {
	if mode == ViewTable {
		return "table"
	}
	return "card"
}

// ParseViewMode converts a flag or config value into a ViewMode. The
// empty string maps to ViewCard.
func ParseViewMode(value string) (ViewMode, bool) {
	switch value {
	case "", "card":
		return ViewCard, true
	case "table":
		return ViewTable, true
	default:
		return ViewCard, false
	}
}

// Apply returns the subset of tickets selected by mode, preserving
// relative order. FilterAll returns the input slice unchanged; the
// other modes allocate a fresh slice, so callers may mutate the result
// without aliasing the input.
func Apply(tickets []Ticket, mode FilterMode) []Ticket {
	if mode == FilterAll {
		return tickets
	}

	wantUsed := mode == FilterUsed
	var result []Ticket
	for _, entry := range tickets {
		if entry.Used == wantUsed {
			result = append(result, entry)
		}
	}
	return result
}
