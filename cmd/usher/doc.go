// Copyright 2026 The Usher Authors
// SPDX-License-Identifier: Apache-2.0

// Usher is a terminal ticket wallet. It provides an interactive viewer
// (viewer) for browsing tickets and flipping them between used and
// valid, plus one-shot subcommands (ticket list, ticket stats) for
// scripted use.
package main
