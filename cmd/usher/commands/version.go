// Copyright 2026 The Usher Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"
	"runtime"

	"github.com/usher-tui/usher/cmd/usher/cli"
)

// Version is the release version, overridden at build time via
// -ldflags "-X .../commands.Version=v1.2.3".
var Version = "dev"

// VersionCommand returns the "version" subcommand.
func VersionCommand() *cli.Command {
	return &cli.Command{
		Name:    "version",
		Summary: "Print version information",
		Usage:   "usher version",
		Run: func(args []string) error {
			fmt.Printf("usher %s (%s, %s/%s)\n",
				Version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
			return nil
		},
	}
}
