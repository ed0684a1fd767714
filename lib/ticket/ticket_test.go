// Copyright 2026 The Usher Authors
// SPDX-License-Identifier: Apache-2.0

package ticket

import (
	"testing"
	"time"
)

func TestComputeStatsEmpty(t *testing.T) {
	stats := ComputeStats(nil)
	if stats != (Stats{}) {
		t.Errorf("empty collection should yield zero stats, got %+v", stats)
	}
}

func TestComputeStatsSeed(t *testing.T) {
	stats := ComputeStats(Seed(time.Now()))
	want := Stats{Total: 3, Used: 1, Valid: 2}
	if stats != want {
		t.Errorf("seed stats = %+v, want %+v", stats, want)
	}
}

func TestComputeStatsInvariant(t *testing.T) {
	// Total == Used + Valid must hold for arbitrary mixes.
	collections := [][]Ticket{
		nil,
		Seed(time.Now()),
		{{ID: 1, Used: true}, {ID: 2, Used: true}},
		{{ID: 1}, {ID: 2}, {ID: 3}, {ID: 4}},
	}
	for _, tickets := range collections {
		stats := ComputeStats(tickets)
		if stats.Total != stats.Used+stats.Valid {
			t.Errorf("stats invariant broken for %d tickets: %+v", len(tickets), stats)
		}
	}
}

func TestApplyAllIsIdentity(t *testing.T) {
	tickets := Seed(time.Now())
	result := Apply(tickets, FilterAll)

	if len(result) != len(tickets) {
		t.Fatalf("FilterAll changed length: got %d, want %d", len(result), len(tickets))
	}
	for index := range tickets {
		if result[index].ID != tickets[index].ID {
			t.Errorf("FilterAll reordered: position %d has id %d, want %d",
				index, result[index].ID, tickets[index].ID)
		}
	}
}

func TestApplyPartitions(t *testing.T) {
	tickets := Seed(time.Now())

	used := Apply(tickets, FilterUsed)
	valid := Apply(tickets, FilterValid)

	if len(used)+len(valid) != len(tickets) {
		t.Fatalf("used (%d) and valid (%d) are not a partition of %d tickets",
			len(used), len(valid), len(tickets))
	}
	for _, entry := range used {
		if !entry.Used {
			t.Errorf("ticket %d in used view has Used=false", entry.ID)
		}
	}
	for _, entry := range valid {
		if entry.Used {
			t.Errorf("ticket %d in valid view has Used=true", entry.ID)
		}
	}
}

func TestApplyUsedSeedScenario(t *testing.T) {
	used := Apply(Seed(time.Now()), FilterUsed)
	if len(used) != 1 {
		t.Fatalf("seed used view should have 1 ticket, got %d", len(used))
	}
	if used[0].ID != 2 || used[0].EventName != "Theater B" {
		t.Errorf("seed used view = id %d %q, want id 2 \"Theater B\"",
			used[0].ID, used[0].EventName)
	}
}

func TestApplyPreservesOrder(t *testing.T) {
	tickets := []Ticket{
		{ID: 5, Used: false},
		{ID: 3, Used: false},
		{ID: 9, Used: true},
		{ID: 1, Used: false},
	}
	valid := Apply(tickets, FilterValid)
	wantOrder := []int{5, 3, 1}
	if len(valid) != len(wantOrder) {
		t.Fatalf("valid view length = %d, want %d", len(valid), len(wantOrder))
	}
	for index, id := range wantOrder {
		if valid[index].ID != id {
			t.Errorf("valid view position %d = id %d, want %d", index, valid[index].ID, id)
		}
	}
}

func TestApplyNoMatches(t *testing.T) {
	tickets := []Ticket{{ID: 1, Used: false}, {ID: 2, Used: false}}
	if used := Apply(tickets, FilterUsed); len(used) != 0 {
		t.Errorf("expected empty used view, got %d tickets", len(used))
	}
}

func TestParseFilterMode(t *testing.T) {
	cases := []struct {
		input string
		want  FilterMode
		ok    bool
	}{
		{"", FilterAll, true},
		{"all", FilterAll, true},
		{"used", FilterUsed, true},
		{"valid", FilterValid, true},
		{"Used", FilterAll, false},
		{"expired", FilterAll, false},
	}
	for _, testCase := range cases {
		mode, ok := ParseFilterMode(testCase.input)
		if mode != testCase.want || ok != testCase.ok {
			t.Errorf("ParseFilterMode(%q) = (%v, %v), want (%v, %v)",
				testCase.input, mode, ok, testCase.want, testCase.ok)
		}
	}
}

func TestParseViewMode(t *testing.T) {
	if mode, ok := ParseViewMode("table"); !ok || mode != ViewTable {
		t.Errorf("ParseViewMode(table) = (%v, %v)", mode, ok)
	}
	if mode, ok := ParseViewMode(""); !ok || mode != ViewCard {
		t.Errorf("ParseViewMode(empty) = (%v, %v)", mode, ok)
	}
	if _, ok := ParseViewMode("grid"); ok {
		t.Error("ParseViewMode(grid) should be rejected")
	}
}

func TestModeStrings(t *testing.T) {
	if FilterAll.String() != "all" || FilterUsed.String() != "used" || FilterValid.String() != "valid" {
		t.Error("FilterMode.String() mismatch")
	}
	if ViewCard.String() != "card" || ViewTable.String() != "table" {
		t.Error("ViewMode.String() mismatch")
	}
}

func TestSeedContract(t *testing.T) {
	now := time.Date(2026, 3, 14, 15, 9, 0, 0, time.UTC)
	tickets := Seed(now)

	if len(tickets) != 3 {
		t.Fatalf("seed should have 3 tickets, got %d", len(tickets))
	}

	// IDs are 1..3 and unique.
	for index, entry := range tickets {
		if entry.ID != index+1 {
			t.Errorf("seed position %d has id %d, want %d", index, entry.ID, index+1)
		}
		if !entry.Time.Equal(now) {
			t.Errorf("ticket %d time = %v, want creation time %v", entry.ID, entry.Time, now)
		}
	}

	if tickets[0].EventName != "DWP 2025" || tickets[0].Location != "Jakarta" || tickets[0].Used {
		t.Errorf("seed ticket 1 mismatch: %+v", tickets[0])
	}
	if tickets[1].EventName != "Theater B" || tickets[1].Location != "Hall Y" || !tickets[1].Used {
		t.Errorf("seed ticket 2 mismatch: %+v", tickets[1])
	}
	if tickets[2].EventName != "Conference C" || tickets[2].Location != "Center Z" || tickets[2].Used {
		t.Errorf("seed ticket 3 mismatch: %+v", tickets[2])
	}
}
