// Copyright 2026 The Usher Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme defines the color palette for the ticket viewer. All colors
// use lipgloss ANSI 256-color codes for broad terminal compatibility.
type Theme struct {
	// Text colors.
	NormalText lipgloss.Color
	FaintText  lipgloss.Color

	// Selected row / card.
	SelectedBackground lipgloss.Color
	SelectedForeground lipgloss.Color

	// Ticket status colors: a valid ticket still admits its holder,
	// a used one does not.
	StatusValid lipgloss.Color
	StatusUsed  lipgloss.Color

	// UI chrome.
	HeaderForeground lipgloss.Color
	BorderColor      lipgloss.Color
	HelpText         lipgloss.Color

	// Filter match highlighting.
	MatchBackground lipgloss.Color
}

// StatusColor returns the color for a ticket's used flag.
func (theme Theme) StatusColor(used bool) lipgloss.Color {
	if used {
		return theme.StatusUsed
	}
	return theme.StatusValid
}

// DarkTheme is the built-in color scheme for dark-background
// terminals (the common case for development environments and tmux
// sessions).
var DarkTheme = Theme{
	NormalText: lipgloss.Color("252"),
	FaintText:  lipgloss.Color("245"),

	SelectedBackground: lipgloss.Color("236"),
	SelectedForeground: lipgloss.Color("255"),

	StatusValid: lipgloss.Color("114"), // green
	StatusUsed:  lipgloss.Color("245"), // gray

	HeaderForeground: lipgloss.Color("255"),
	BorderColor:      lipgloss.Color("240"),
	HelpText:         lipgloss.Color("241"),

	MatchBackground: lipgloss.Color("58"), // dark amber
}

// LightTheme adjusts the palette for light-background terminals.
var LightTheme = Theme{
	NormalText: lipgloss.Color("235"),
	FaintText:  lipgloss.Color("243"),

	SelectedBackground: lipgloss.Color("253"),
	SelectedForeground: lipgloss.Color("232"),

	StatusValid: lipgloss.Color("28"),  // green
	StatusUsed:  lipgloss.Color("243"), // gray

	HeaderForeground: lipgloss.Color("232"),
	BorderColor:      lipgloss.Color("250"),
	HelpText:         lipgloss.Color("246"),

	MatchBackground: lipgloss.Color("222"), // pale amber
}

// DetectTheme picks the dark or light palette based on the terminal's
// reported background color. Falls back to the dark theme when the
// terminal cannot be queried (pipes, CI).
func DetectTheme() Theme {
	if termenv.HasDarkBackground() {
		return DarkTheme
	}
	return LightTheme
}
