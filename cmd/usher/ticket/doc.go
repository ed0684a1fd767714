// Copyright 2026 The Usher Authors
// SPDX-License-Identifier: Apache-2.0

// Package ticket provides the non-interactive ticket subcommands:
// "usher ticket list" and "usher ticket stats". These are one-shot
// commands for scripts and quick inspection; the interactive viewer
// lives in the sibling viewer package so that the bubbletea dependency
// tree is only linked where it is used.
package ticket
