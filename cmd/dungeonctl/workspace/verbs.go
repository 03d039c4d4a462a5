// Copyright 2026 The Dungeon Authors
// SPDX-License-Identifier: Apache-2.0

package workspace

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dungeonlabs/dungeonctl/cmd/dungeonctl/cli"
	"github.com/dungeonlabs/dungeonctl/lib/config"
)

// verb maps a dungeonctl command name to the cargo subcommand it
// dispatches. Everything else about the invocation is identical
// across verbs: the same classification, the same banner, the same
// exit-status relay.
type verb struct {
	name      string
	cargoVerb string
	summary   string
}

var verbs = []verb{
	{"build", "build", "Compile the client with a resolved feature set"},
	{"run", "run", "Run the client with a resolved feature set"},
	{"test", "test", "Run tests with a resolved feature set"},
	{"lint", "clippy", "Lint with clippy under a resolved feature set"},
	{"bench", "bench", "Run benchmarks with a resolved feature set"},
	{"doc", "doc", "Build documentation with a resolved feature set"},
	{"check", "check", "Type-check with a resolved feature set"},
}

// Commands returns the cargo verb commands, one per entry in verbs,
// plus fmt and dev which follow their own rules.
func Commands(cfg *config.Config) []*cli.Command {
	commands := make([]*cli.Command, 0, len(verbs)+2)
	for _, v := range verbs {
		commands = append(commands, verbCommand(cfg, v))
	}
	commands = append(commands, fmtCommand(cfg), devCommand(cfg))
	return commands
}

func verbCommand(cfg *config.Config, v verb) *cli.Command {
	return &cli.Command{
		Name:    v.name,
		Summary: v.summary,
		Usage:   fmt.Sprintf("dungeonctl %s <tokens...> [-- cargo flags...]", v.name),
		Description: fmt.Sprintf(`%s.

Tokens select the proving backend (risc0, stub, sp1, arkworks —
exactly one required), the frontend (cli, bevy, gui — at most one,
cli by default), and the blockchain integration (sui, ethereum — at
most one, none by default). Unrecognized tokens pass through as extra
cargo features, order preserved. A @name token expands a profile from
the profile file.

Everything after a literal "--" is handed to cargo verbatim.`, v.summary),
		Examples: []cli.Example{
			{
				Description: "Fast iteration against the stub prover",
				Command:     fmt.Sprintf("dungeonctl %s stub", v.name),
			},
			{
				Description: "RISC Zero with Sui integration, release mode",
				Command:     fmt.Sprintf("dungeonctl %s risc0 sui -- --release", v.name),
			},
		},
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			return dispatch(cfg, v.cargoVerb, args, logger)
		},
	}
}

func fmtCommand(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:    "fmt",
		Summary: "Format the workspace (no feature resolution)",
		Usage:   "dungeonctl fmt [-- cargo flags...]",
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			// fmt takes no feature tokens; a leading "--" is
			// accepted for symmetry with the other verbs.
			if len(args) > 0 && args[0] == "--" {
				args = args[1:]
			}
			return forward(cfg, "fmt", args)
		},
	}
}
