// Copyright 2026 The Usher Authors
// SPDX-License-Identifier: Apache-2.0

// Package ticket defines the event-admission ticket record and the
// pure derivations over a ticket collection: aggregate statistics and
// order-preserving filtering. The filter and view mode enumerations
// live here too, so the store and the TUI share one closed domain.
//
// Everything in this package is side-effect free; mutation of a
// collection is owned by the ticketstore package.
package ticket
