// Copyright 2026 The Dungeon Authors
// SPDX-License-Identifier: Apache-2.0

// Package logs implements the dungeonctl logs subcommands. They are
// thin dispatchers over the dungeon-devtool binary: session log
// tailing, state and action-log dumps, and cleanup. The devtool's
// output formats are its own; dungeonctl only forwards the terminal
// and relays the exit status.
package logs

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dungeonlabs/dungeonctl/cmd/dungeonctl/cli"
	"github.com/dungeonlabs/dungeonctl/lib/config"
	"github.com/dungeonlabs/dungeonctl/lib/devtool"
)

// Command returns the "logs" command group.
func Command(cfg *config.Config) *cli.Command {
	tool := devtool.New(cfg.DevtoolBin)

	return &cli.Command{
		Name:    "logs",
		Summary: "Inspect and clean session logs",
		Description: `Inspect Dungeon session data through the devtool: follow a session's
log stream, dump its latest game state, read its action log, or clean
up stale sessions.`,
		Subcommands: []*cli.Command{
			sessionCommand("tail", "Follow a session's log stream", tool.TailLogs),
			sessionCommand("state", "Dump a session's latest game state", tool.ShowState),
			sessionCommand("actions", "Print a session's action log", tool.ShowActions),
			{
				Name:    "clean",
				Summary: "Remove stale session data",
				Usage:   "dungeonctl logs clean",
				Run: func(_ context.Context, args []string, _ *slog.Logger) error {
					if len(args) != 0 {
						return fmt.Errorf("usage: dungeonctl logs clean")
					}
					return cli.Relay(tool.Clean())
				},
			},
		},
		Examples: []cli.Example{
			{
				Description: "Follow the most recent run",
				Command:     "dungeonctl logs tail session_1756100000",
			},
			{
				Description: "Dump the state a proof was generated against",
				Command:     "dungeonctl logs state session_1756100000",
			},
		},
	}
}

// sessionCommand builds one single-session subcommand; tail, state,
// and actions differ only in the devtool verb they invoke.
func sessionCommand(name, summary string, invoke func(string) (int, error)) *cli.Command {
	return &cli.Command{
		Name:    name,
		Summary: summary,
		Usage:   fmt.Sprintf("dungeonctl logs %s <session>", name),
		Run: func(_ context.Context, args []string, _ *slog.Logger) error {
			if len(args) != 1 {
				return fmt.Errorf("usage: dungeonctl logs %s <session>", name)
			}
			return cli.Relay(invoke(args[0]))
		},
	}
}
