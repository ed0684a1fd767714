// Copyright 2026 The Usher Authors
// SPDX-License-Identifier: Apache-2.0

// Package viewer provides the interactive ticket viewer TUI command.
// This is a separate package from cmd/usher/ticket so that the
// charmbracelet/bubbletea dependency (and its transitive closure:
// lipgloss, termenv, fzf, cellbuf) is only linked into binaries that
// actually import this package.
package viewer

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"

	"github.com/usher-tui/usher/cmd/usher/cli"
	"github.com/usher-tui/usher/lib/clock"
	"github.com/usher-tui/usher/lib/config"
	"github.com/usher-tui/usher/lib/ticket"
	"github.com/usher-tui/usher/lib/ticketstore"
	"github.com/usher-tui/usher/lib/ticketui"
	"github.com/usher-tui/usher/lib/tui"
)

// Command returns the "viewer" subcommand that launches the
// interactive ticket viewer TUI.
func Command() *cli.Command {
	var filePath string
	var configPath string
	var logOutput string

	return &cli.Command{
		Name:    "viewer",
		Summary: "Open the interactive ticket viewer",
		Description: `Launch an interactive terminal UI for browsing tickets.

By default, the viewer opens over the built-in sample tickets. Use
--file to load a JSONL ticket file instead.

Startup preferences (initial view mode, filter mode, time layout,
theme) come from the config file named by --config or the USHER_CONFIG
environment variable; without either, defaults apply. Everything the
config sets can be changed from inside the viewer.`,
		Usage: "usher viewer [flags]",
		Examples: []cli.Example{
			{
				Description: "Open the viewer over the sample tickets",
				Command:     "usher viewer",
			},
			{
				Description: "Open a ticket file in table view",
				Command:     "usher viewer --file tickets.jsonl --config usher.yaml",
			},
			{
				Description: "Capture background logs while the TUI owns the terminal",
				Command:     "usher viewer --log-output /tmp/usher.log",
			},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("viewer", pflag.ContinueOnError)
			flagSet.StringVar(&filePath, "file", "", "path to JSONL ticket file (default: built-in sample)")
			flagSet.StringVar(&configPath, "config", "", "config file path (default: $USHER_CONFIG)")
			flagSet.StringVar(&logOutput, "log-output", "", "write JSON log records to this file")
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return cli.Validation("unexpected argument: %s", args[0])
			}
			return runViewer(filePath, configPath, logOutput)
		},
	}
}

func runViewer(filePath, configPath, logOutput string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	// The TUI owns stderr for the session, so background logging goes
	// to a file or nowhere.
	logger := slog.New(slog.DiscardHandler)
	if logOutput != "" {
		fileLogger, closeLog, logErr := cli.NewFileLogger(logOutput)
		if logErr != nil {
			return cli.Validation("cannot open log file %s: %w", logOutput, logErr)
		}
		defer closeLog()
		logger = fileLogger.With("command", "viewer")
	}

	store, err := buildStore(filePath)
	if err != nil {
		return err
	}
	store.SetFilter(cfg.FilterMode())
	store.SetView(cfg.ViewMode())

	logger.Info("viewer starting",
		"tickets", store.Len(),
		"filter", cfg.Filter,
		"view", cfg.View,
	)

	model := ticketui.NewModel(store, ticketui.Options{
		Theme:      selectTheme(cfg.Theme),
		TimeLayout: cfg.TimeLayout,
	})
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		logger.Error("viewer exited with error", "error", err)
		return err
	}
	logger.Info("viewer exited")
	return nil
}

// loadConfig resolves the startup preferences: the --config flag wins
// over USHER_CONFIG, which wins over built-in defaults.
func loadConfig(configPath string) (*config.Config, error) {
	if configPath != "" {
		cfg, err := config.LoadFile(configPath)
		if err != nil {
			return nil, cli.Validation("load config: %w", err)
		}
		return cfg, nil
	}
	cfg, err := config.Load()
	if err != nil {
		return nil, cli.Validation("load config from USHER_CONFIG: %w", err)
	}
	return cfg, nil
}

// buildStore creates the session's ticket store from the file or the
// built-in sample.
func buildStore(filePath string) (*ticketstore.Store, error) {
	if filePath == "" {
		return ticketstore.NewSeeded(clock.Real()), nil
	}
	tickets, err := ticket.LoadFile(filePath)
	if err != nil {
		return nil, cli.Validation("cannot load tickets from %s: %w", filePath, err).
			WithHint("Check that the file exists and contains one JSON ticket per line.")
	}
	return ticketstore.New(tickets), nil
}

// selectTheme maps the config theme name to a palette. Validation has
// already restricted the value; "auto" queries the terminal.
func selectTheme(name string) tui.Theme {
	switch name {
	case "dark":
		return tui.DarkTheme
	case "light":
		return tui.LightTheme
	default:
		return tui.DetectTheme()
	}
}
