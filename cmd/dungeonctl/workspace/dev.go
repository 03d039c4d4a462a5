// Copyright 2026 The Dungeon Authors
// SPDX-License-Identifier: Apache-2.0

package workspace

import (
	"context"
	"log/slog"

	"github.com/spf13/pflag"

	"github.com/dungeonlabs/dungeonctl/cmd/dungeonctl/cli"
	"github.com/dungeonlabs/dungeonctl/lib/config"
)

// devParams holds the flags for the dev command. Unlike the free-
// token verbs, dev accepts named parameters with defaults so the
// common edit-run loop needs no tokens at all.
type devParams struct {
	Backend  string `flag:"backend,b"  desc:"proving backend (default: resolved at startup)"`
	Frontend string `flag:"frontend,f" desc:"frontend feature" default:"cli"`
	Chain    string `flag:"chain,c"    desc:"blockchain integration feature"`
	Release  bool   `flag:"release,r"  desc:"build with optimizations"`
}

func devCommand(cfg *config.Config) *cli.Command {
	var params devParams

	return &cli.Command{
		Name:    "dev",
		Summary: "Run the client with the default backend",
		Usage:   "dungeonctl dev [flags] [extra tokens...]",
		Description: `Run the client without spelling out a backend token. The backend
comes from --backend, falling back to the default resolved once at
startup (DUNGEON_BACKEND, then the config file, then risc0).

Extra positional tokens join the feature selection and are validated
under the same rules as the free-token verbs — a backend token that
conflicts with the chosen default is an error, not an override.`,
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("dev", &params)
		},
		Examples: []cli.Example{
			{
				Description: "Edit-run loop with the configured default backend",
				Command:     "dungeonctl dev",
			},
			{
				Description: "Bevy frontend against the stub prover",
				Command:     "dungeonctl dev --backend stub --frontend bevy",
			},
			{
				Description: "Default backend with Sui integration",
				Command:     "dungeonctl dev --chain sui",
			},
		},
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			backend := params.Backend
			if backend == "" {
				backend = cfg.DefaultBackend
			}

			tokens := []string{backend, params.Frontend}
			if params.Chain != "" {
				tokens = append(tokens, params.Chain)
			}
			tokens = append(tokens, args...)

			var trailing []string
			if params.Release {
				trailing = []string{"--release"}
			}

			return dispatchTokens(cfg, "run", tokens, trailing, logger)
		},
	}
}
