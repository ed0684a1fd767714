// Copyright 2026 The Usher Authors
// SPDX-License-Identifier: Apache-2.0

// Package tui provides shared terminal user interface components for
// Usher's interactive viewer: the color theme, an ANSI-aware
// scrollbar, and fuzzy text matching. The ticketui package owns the
// data source, layout, and ticket-specific rendering; this package
// holds the pieces that are not about tickets at all.
package tui
