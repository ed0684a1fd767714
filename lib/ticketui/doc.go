// Copyright 2026 The Usher Authors
// SPDX-License-Identifier: Apache-2.0

// Package ticketui implements the interactive ticket viewer as a
// bubbletea model.
//
// The model is a thin presentation layer over [ticketstore.Store]: all
// ticket data and view preferences live in the store, and the model
// re-reads a snapshot after every mutation. On top of the store's
// mode filter (all / used / valid) the UI adds an fzf-style text
// filter over event names and locations, cursor navigation, and two
// layouts: a card grid and a table.
//
// Data flow:
//
//	key press ──▶ store mutation ──▶ snapshot re-read ──▶ render
//	                    │
//	                    └──▶ event channel (for external mutators)
package ticketui
