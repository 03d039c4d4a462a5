// Copyright 2026 The Dungeon Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands builds the complete dungeonctl command tree from
// the resolved configuration. There is exactly one assembly point so
// help output, examples, and dispatch all agree on what exists.
package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dungeonlabs/dungeonctl/cmd/dungeonctl/cli"
	logscmd "github.com/dungeonlabs/dungeonctl/cmd/dungeonctl/logs"
	suicmd "github.com/dungeonlabs/dungeonctl/cmd/dungeonctl/sui"
	"github.com/dungeonlabs/dungeonctl/cmd/dungeonctl/workspace"
	"github.com/dungeonlabs/dungeonctl/lib/config"
	"github.com/dungeonlabs/dungeonctl/lib/version"
)

// Root builds and returns the dungeonctl command tree.
func Root(cfg *config.Config) *cli.Command {
	subcommands := workspace.Commands(cfg)
	subcommands = append(subcommands,
		logscmd.Command(cfg),
		suicmd.Command(cfg),
		&cli.Command{
			Name:    "version",
			Summary: "Print version information",
			Run: func(_ context.Context, args []string, _ *slog.Logger) error {
				fmt.Printf("dungeonctl %s\n", version.Full())
				return nil
			},
		},
	)

	return &cli.Command{
		Name: "dungeonctl",
		Description: `dungeonctl: feature-composed dispatch for the Dungeon workspace.

Classify feature tokens into backend, frontend, and blockchain
selections, assemble the canonical --features value, and dispatch
cargo with it. Session inspection and local Sui tooling ride along.`,
		Subcommands: subcommands,
		Examples: []cli.Example{
			{
				Description: "Fast tests against the stub prover",
				Command:     "dungeonctl test stub",
			},
			{
				Description: "Run with RISC Zero, Bevy frontend, Sui integration",
				Command:     "dungeonctl run risc0 bevy sui",
			},
			{
				Description: "Release build with an extra passthrough feature",
				Command:     "dungeonctl build sp1 gpu-fast -- --release",
			},
			{
				Description: "Edit-run loop with the configured default backend",
				Command:     "dungeonctl dev",
			},
			{
				Description: "Follow a session's log stream",
				Command:     "dungeonctl logs tail session_1756100000",
			},
		},
	}
}
