// Copyright 2026 The Dungeon Authors
// SPDX-License-Identifier: Apache-2.0

// Package sui implements the dungeonctl sui subcommands for local
// blockchain development: starting a local network and generating
// keypairs. Both wrap the sui binary; key custody and network
// semantics belong entirely to it.
package sui

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/pflag"

	"github.com/dungeonlabs/dungeonctl/cmd/dungeonctl/cli"
	"github.com/dungeonlabs/dungeonctl/lib/config"
	"github.com/dungeonlabs/dungeonctl/lib/suicli"
)

// localnetParams holds the flags for sui localnet.
type localnetParams struct {
	Faucet bool `flag:"with-faucet" desc:"also run a local faucet" default:"true"`
}

// keygenParams holds the flags for sui keygen.
type keygenParams struct {
	Scheme string `flag:"scheme" desc:"signature scheme (ed25519, secp256k1, secp256r1)" default:"ed25519"`
}

// Command returns the "sui" command group.
func Command(cfg *config.Config) *cli.Command {
	tool := suicli.New(cfg.SuiBin)

	var localnet localnetParams
	var keygen keygenParams

	return &cli.Command{
		Name:    "sui",
		Summary: "Local Sui network and key management",
		Subcommands: []*cli.Command{
			{
				Name:    "localnet",
				Summary: "Start a local Sui network",
				Usage:   "dungeonctl sui localnet [flags]",
				Flags: func() *pflag.FlagSet {
					return cli.FlagsFromParams("localnet", &localnet)
				},
				Run: func(_ context.Context, args []string, logger *slog.Logger) error {
					if len(args) != 0 {
						return fmt.Errorf("usage: dungeonctl sui localnet [flags]")
					}
					logger.Info("starting local network", "faucet", localnet.Faucet)
					return cli.Relay(tool.StartLocalnet(localnet.Faucet))
				},
			},
			{
				Name:    "keygen",
				Summary: "Generate a new keypair",
				Usage:   "dungeonctl sui keygen [flags]",
				Flags: func() *pflag.FlagSet {
					return cli.FlagsFromParams("keygen", &keygen)
				},
				Run: func(_ context.Context, args []string, _ *slog.Logger) error {
					if len(args) != 0 {
						return fmt.Errorf("usage: dungeonctl sui keygen [flags]")
					}
					return cli.Relay(tool.GenerateKey(keygen.Scheme))
				},
			},
		},
		Examples: []cli.Example{
			{
				Description: "Local network with a faucet for test coins",
				Command:     "dungeonctl sui localnet",
			},
			{
				Description: "Generate a secp256k1 keypair",
				Command:     "dungeonctl sui keygen --scheme secp256k1",
			},
		},
	}
}
