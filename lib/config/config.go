// Copyright 2026 The Usher Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides configuration loading for the Usher viewer.
//
// Configuration is loaded from a single file specified by:
//   - USHER_CONFIG environment variable, or
//   - --config flag passed to the command
//
// There are no fallbacks or automatic discovery; running without a
// config file uses [Default]. This keeps configuration deterministic
// and auditable with no hidden overrides.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/usher-tui/usher/lib/ticket"
)

// Config holds the viewer's startup preferences. Every field maps to
// an in-session control: the config only chooses the initial state,
// never restricts what the user can switch to afterwards.
type Config struct {
	// View is the initial display mode: "card" or "table".
	View string `yaml:"view"`

	// Filter is the initial filter mode: "all", "used", or "valid".
	Filter string `yaml:"filter"`

	// TimeLayout is the Go time layout used to render ticket
	// timestamps. Defaults to a locale-style short form,
	// "1/2/2006 3:04 PM".
	TimeLayout string `yaml:"time_layout"`

	// Theme selects the color palette: "auto" (detect terminal
	// background), "dark", or "light".
	Theme string `yaml:"theme"`
}

// Default returns the zero-config behavior: card view, all tickets,
// short locale-style timestamps, auto theme.
func Default() *Config {
	return &Config{
		View:       ticket.ViewCard.String(),
		Filter:     ticket.FilterAll.String(),
		TimeLayout: "1/2/2006 3:04 PM",
		Theme:      "auto",
	}
}

// Load loads configuration from the USHER_CONFIG environment variable,
// falling back to [Default] when it is unset.
func Load() (*Config, error) {
	path := os.Getenv("USHER_CONFIG")
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile loads configuration from a specific file path, merging over
// the defaults. The file is the single source of truth; environment
// variables do not override its values.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks every field against its closed domain.
func (cfg *Config) Validate() error {
	var errs []error

	if _, ok := ticket.ParseViewMode(cfg.View); !ok {
		errs = append(errs, fmt.Errorf("invalid view %q: must be card or table", cfg.View))
	}
	if _, ok := ticket.ParseFilterMode(cfg.Filter); !ok {
		errs = append(errs, fmt.Errorf("invalid filter %q: must be all, used, or valid", cfg.Filter))
	}
	if cfg.TimeLayout == "" {
		errs = append(errs, fmt.Errorf("time_layout must not be empty"))
	}
	switch cfg.Theme {
	case "auto", "dark", "light":
	default:
		errs = append(errs, fmt.Errorf("invalid theme %q: must be auto, dark, or light", cfg.Theme))
	}

	return errors.Join(errs...)
}

// ViewMode returns the parsed initial view mode. Call Validate first;
// invalid values degrade to the default rather than panicking.
func (cfg *Config) ViewMode() ticket.ViewMode {
	mode, _ := ticket.ParseViewMode(cfg.View)
	return mode
}

// FilterMode returns the parsed initial filter mode.
func (cfg *Config) FilterMode() ticket.FilterMode {
	mode, _ := ticket.ParseFilterMode(cfg.Filter)
	return mode
}
