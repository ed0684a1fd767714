// Copyright 2026 The Usher Authors
// SPDX-License-Identifier: Apache-2.0

// Package ticketstore owns the canonical ticket collection and the two
// pieces of view-selection state (filter mode, view mode). It exposes
// read-only derived snapshots and a small set of mutating operations,
// and dispatches change events to subscribers so the TUI can re-read
// the snapshot after every mutation.
package ticketstore

import (
	"sync"

	"github.com/usher-tui/usher/lib/clock"
	"github.com/usher-tui/usher/lib/ticket"
)

// Snapshot is a point-in-time derived view of the store: the filtered
// collection, aggregate statistics over the full collection, and the
// current preferences. Stats always cover every ticket regardless of
// the active filter.
type Snapshot struct {
	Tickets []ticket.Ticket
	Stats   ticket.Stats
	Filter  ticket.FilterMode
	View    ticket.ViewMode
}

// EventKind describes which mutation produced an Event.
type EventKind string

const (
	// EventToggle is dispatched when a ticket's used flag flips.
	EventToggle EventKind = "toggle"
	// EventPreferences is dispatched when the filter mode, view mode,
	// or both change (including a reset).
	EventPreferences EventKind = "preferences"
)

// Event describes a single store change, delivered via the
// [Store.Subscribe] channel.
type Event struct {
	Kind EventKind

	// TicketID is the toggled ticket's id for EventToggle, 0 otherwise.
	TicketID int
}

// Store holds the ticket collection for one viewer session. The
// collection is created once at construction and lives for the session;
// tickets are never added or removed at runtime, only their Used flag
// changes. Safe for concurrent use.
type Store struct {
	mutex       sync.RWMutex
	tickets     []ticket.Ticket
	filter      ticket.FilterMode
	view        ticket.ViewMode
	subscribers []chan Event

	// Derivation cache: filtered view and stats are recomputed only
	// when the collection or the filter changed since the last read.
	derivedValid bool
	filtered     []ticket.Ticket
	stats        ticket.Stats
}

// New creates a Store over the given collection. The slice is cloned
// so later caller mutations cannot alias into the store. Preferences
// start at their defaults (all tickets, card view).
func New(tickets []ticket.Ticket) *Store {
	return &Store{
		tickets: append([]ticket.Ticket(nil), tickets...),
	}
}

// NewSeeded creates a Store over the built-in sample collection,
// stamped with the clock's current time.
func NewSeeded(clk clock.Clock) *Store {
	return New(ticket.Seed(clk.Now()))
}

// Snapshot returns the current derived view. The returned ticket slice
// is a copy; callers may hold it across later mutations.
func (store *Store) Snapshot() Snapshot {
	store.mutex.Lock()
	defer store.mutex.Unlock()

	if !store.derivedValid {
		store.filtered = ticket.Apply(store.tickets, store.filter)
		store.stats = ticket.ComputeStats(store.tickets)
		store.derivedValid = true
	}

	return Snapshot{
		Tickets: append([]ticket.Ticket(nil), store.filtered...),
		Stats:   store.stats,
		Filter:  store.filter,
		View:    store.view,
	}
}

// Get returns a single ticket by id. The second return value is false
// if no ticket with that id exists.
func (store *Store) Get(id int) (ticket.Ticket, bool) {
	store.mutex.RLock()
	defer store.mutex.RUnlock()
	for _, entry := range store.tickets {
		if entry.ID == id {
			return entry, true
		}
	}
	return ticket.Ticket{}, false
}

// Len returns the size of the full collection.
func (store *Store) Len() int {
	store.mutex.RLock()
	defer store.mutex.RUnlock()
	return len(store.tickets)
}

// Toggle flips the used flag of the ticket with the given id. The
// collection is replaced with a new slice containing one updated
// element (copy-on-write), keeping previously returned snapshots
// stable. Unknown ids are a no-op — toggle requests originate from
// rendered rows, so a miss means the caller raced a stale view, not
// that anything is wrong.
func (store *Store) Toggle(id int) {
	store.mutex.Lock()

	position := -1
	for index, entry := range store.tickets {
		if entry.ID == id {
			position = index
			break
		}
	}
	if position == -1 {
		store.mutex.Unlock()
		return
	}

	updated := append([]ticket.Ticket(nil), store.tickets...)
	updated[position].Used = !updated[position].Used
	store.tickets = updated
	store.derivedValid = false

	subscribers := store.subscribers
	store.mutex.Unlock()

	dispatch(subscribers, Event{Kind: EventToggle, TicketID: id})
}

// SetFilter selects which subset of tickets the snapshot exposes.
// Setting the current mode again is a no-op: the derivation cache
// stays valid and no event is dispatched.
func (store *Store) SetFilter(mode ticket.FilterMode) {
	store.mutex.Lock()
	if store.filter == mode {
		store.mutex.Unlock()
		return
	}
	store.filter = mode
	store.derivedValid = false
	subscribers := store.subscribers
	store.mutex.Unlock()

	dispatch(subscribers, Event{Kind: EventPreferences})
}

// SetView selects the presentation layout. View mode never affects
// the derived data, so the cache stays valid.
func (store *Store) SetView(mode ticket.ViewMode) {
	store.mutex.Lock()
	if store.view == mode {
		store.mutex.Unlock()
		return
	}
	store.view = mode
	subscribers := store.subscribers
	store.mutex.Unlock()

	dispatch(subscribers, Event{Kind: EventPreferences})
}

// ResetPreferences restores the default filter (all) and view (card).
// Ticket data is deliberately untouched: reset is a view operation and
// never undoes toggles.
func (store *Store) ResetPreferences() {
	store.mutex.Lock()
	if store.filter == ticket.FilterAll && store.view == ticket.ViewCard {
		store.mutex.Unlock()
		return
	}
	if store.filter != ticket.FilterAll {
		store.derivedValid = false
	}
	store.filter = ticket.FilterAll
	store.view = ticket.ViewCard
	subscribers := store.subscribers
	store.mutex.Unlock()

	dispatch(subscribers, Event{Kind: EventPreferences})
}

// Subscribe returns a channel that receives an Event after every
// effective mutation. The channel is buffered; if a subscriber falls
// behind, events are dropped — the next Snapshot read carries the
// current state regardless.
func (store *Store) Subscribe() <-chan Event {
	store.mutex.Lock()
	defer store.mutex.Unlock()
	channel := make(chan Event, 16)
	store.subscribers = append(store.subscribers, channel)
	return channel
}

// dispatch sends an event to every subscriber without blocking. Called
// after the store lock is released; the subscriber list is append-only,
// so the snapshot taken under the lock is safe to iterate.
func dispatch(subscribers []chan Event, event Event) {
	for _, subscriber := range subscribers {
		select {
		case subscriber <- event:
		default:
		}
	}
}
