// Copyright 2026 The Usher Authors
// SPDX-License-Identifier: Apache-2.0

package ticketstore

import (
	"testing"
	"time"

	"github.com/usher-tui/usher/lib/clock"
	"github.com/usher-tui/usher/lib/testutil"
	"github.com/usher-tui/usher/lib/ticket"
)

var seedTime = time.Date(2026, 5, 1, 18, 30, 0, 0, time.UTC)

func seededStore() *Store {
	return NewSeeded(clock.Fake(seedTime))
}

func TestSeededSnapshot(t *testing.T) {
	snapshot := seededStore().Snapshot()

	want := ticket.Stats{Total: 3, Used: 1, Valid: 2}
	if snapshot.Stats != want {
		t.Errorf("seed stats = %+v, want %+v", snapshot.Stats, want)
	}
	if snapshot.Filter != ticket.FilterAll {
		t.Errorf("initial filter = %v, want all", snapshot.Filter)
	}
	if snapshot.View != ticket.ViewCard {
		t.Errorf("initial view = %v, want card", snapshot.View)
	}
	if len(snapshot.Tickets) != 3 {
		t.Fatalf("initial snapshot should expose all 3 tickets, got %d", len(snapshot.Tickets))
	}
	if !snapshot.Tickets[0].Time.Equal(seedTime) {
		t.Errorf("seed timestamps should come from the injected clock, got %v", snapshot.Tickets[0].Time)
	}
}

func TestToggleFlipsAndRecomputes(t *testing.T) {
	store := seededStore()

	store.Toggle(1)
	snapshot := store.Snapshot()
	want := ticket.Stats{Total: 3, Used: 2, Valid: 1}
	if snapshot.Stats != want {
		t.Errorf("stats after toggle(1) = %+v, want %+v", snapshot.Stats, want)
	}

	// Toggling again restores the original state (idempotent pair).
	store.Toggle(1)
	snapshot = store.Snapshot()
	want = ticket.Stats{Total: 3, Used: 1, Valid: 2}
	if snapshot.Stats != want {
		t.Errorf("stats after double toggle = %+v, want %+v", snapshot.Stats, want)
	}
}

func TestToggleLeavesOthersUntouched(t *testing.T) {
	store := seededStore()
	before := store.Snapshot().Tickets

	store.Toggle(3)
	after := store.Snapshot().Tickets

	for index := range before {
		if before[index].ID == 3 {
			if after[index].Used == before[index].Used {
				t.Error("ticket 3 should have flipped")
			}
			continue
		}
		if after[index] != before[index] {
			t.Errorf("ticket %d changed on an unrelated toggle: %+v -> %+v",
				before[index].ID, before[index], after[index])
		}
	}
}

func TestToggleUnknownIDIsNoOp(t *testing.T) {
	store := seededStore()
	before := store.Snapshot()

	store.Toggle(42)

	after := store.Snapshot()
	if after.Stats != before.Stats {
		t.Errorf("toggle of unknown id changed stats: %+v -> %+v", before.Stats, after.Stats)
	}
	if len(after.Tickets) != len(before.Tickets) {
		t.Error("toggle of unknown id changed the collection size")
	}
}

func TestToggleIsCopyOnWrite(t *testing.T) {
	store := seededStore()
	held := store.Snapshot().Tickets

	store.Toggle(1)

	// The snapshot taken before the toggle must not observe it.
	if held[0].Used {
		t.Error("pre-toggle snapshot aliased the mutated collection")
	}
}

func TestFilteredSnapshot(t *testing.T) {
	store := seededStore()

	store.SetFilter(ticket.FilterUsed)
	snapshot := store.Snapshot()
	if len(snapshot.Tickets) != 1 || snapshot.Tickets[0].ID != 2 {
		t.Fatalf("used view of seed should be exactly ticket 2, got %+v", snapshot.Tickets)
	}
	if snapshot.Tickets[0].EventName != "Theater B" {
		t.Errorf("used ticket should be Theater B, got %q", snapshot.Tickets[0].EventName)
	}

	// Stats keep covering the full collection, not the filtered view.
	if snapshot.Stats.Total != 3 {
		t.Errorf("filtered snapshot stats total = %d, want 3", snapshot.Stats.Total)
	}

	store.SetFilter(ticket.FilterValid)
	snapshot = store.Snapshot()
	if len(snapshot.Tickets) != 2 {
		t.Fatalf("valid view of seed should have 2 tickets, got %d", len(snapshot.Tickets))
	}
	if snapshot.Tickets[0].ID != 1 || snapshot.Tickets[1].ID != 3 {
		t.Errorf("valid view should preserve order [1 3], got [%d %d]",
			snapshot.Tickets[0].ID, snapshot.Tickets[1].ID)
	}
}

func TestEmptyFilteredView(t *testing.T) {
	store := New([]ticket.Ticket{
		{ID: 1, EventName: "A", Location: "X", Time: seedTime, Used: false},
	})
	store.SetFilter(ticket.FilterUsed)

	snapshot := store.Snapshot()
	if len(snapshot.Tickets) != 0 {
		t.Errorf("expected empty filtered view, got %d tickets", len(snapshot.Tickets))
	}
	if snapshot.Stats.Total != 1 {
		t.Errorf("stats should still cover the full collection, got %+v", snapshot.Stats)
	}
}

func TestResetPreferences(t *testing.T) {
	store := seededStore()
	store.SetFilter(ticket.FilterUsed)
	store.SetView(ticket.ViewTable)
	store.Toggle(1)

	store.ResetPreferences()

	snapshot := store.Snapshot()
	if snapshot.Filter != ticket.FilterAll {
		t.Errorf("reset filter = %v, want all", snapshot.Filter)
	}
	if snapshot.View != ticket.ViewCard {
		t.Errorf("reset view = %v, want card", snapshot.View)
	}

	// Reset never undoes toggles: ticket 1 stays used.
	entry, exists := store.Get(1)
	if !exists || !entry.Used {
		t.Error("reset should leave ticket state untouched (ticket 1 toggled to used)")
	}
}

func TestSubscribeReceivesEvents(t *testing.T) {
	store := seededStore()
	events := store.Subscribe()

	store.Toggle(2)
	event := testutil.RequireReceive(t, events, time.Second, "toggle event")
	if event.Kind != EventToggle || event.TicketID != 2 {
		t.Errorf("toggle event = %+v, want toggle of ticket 2", event)
	}

	store.SetFilter(ticket.FilterValid)
	event = testutil.RequireReceive(t, events, time.Second, "filter event")
	if event.Kind != EventPreferences {
		t.Errorf("filter event kind = %q, want preferences", event.Kind)
	}

	// Redundant mutations dispatch nothing.
	store.SetFilter(ticket.FilterValid)
	store.Toggle(42)
	testutil.RequireNoReceive(t, events, 50*time.Millisecond, "redundant mutation")
}

func TestGet(t *testing.T) {
	store := seededStore()

	entry, exists := store.Get(2)
	if !exists || entry.EventName != "Theater B" {
		t.Errorf("Get(2) = (%+v, %v)", entry, exists)
	}
	if _, exists := store.Get(99); exists {
		t.Error("Get(99) should report absence")
	}
}
