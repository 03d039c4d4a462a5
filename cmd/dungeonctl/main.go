// Copyright 2026 The Dungeon Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"os"

	"github.com/dungeonlabs/dungeonctl/cmd/dungeonctl/cli"
	"github.com/dungeonlabs/dungeonctl/cmd/dungeonctl/commands"
	"github.com/dungeonlabs/dungeonctl/lib/config"
	"github.com/dungeonlabs/dungeonctl/lib/process"
)

func main() {
	if err := run(); err != nil {
		// Commands that relay a child's exit status return an error
		// carrying the desired code. The child already wrote its own
		// output; don't add a redundant "error:" line for those.
		if coder, ok := err.(interface{ ExitCode() int }); ok {
			os.Exit(coder.ExitCode())
		}
		process.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := cli.NewCommandLogger()
	return commands.Root(cfg).Execute(context.Background(), os.Args[1:], logger)
}
