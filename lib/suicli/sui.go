// Copyright 2026 The Dungeon Authors
// SPDX-License-Identifier: Apache-2.0

// Package suicli provides typed access to the sui binary for local
// development: starting a local network and generating keypairs. The
// sui CLI is an opaque external collaborator — key custody and
// network semantics are entirely its own.
package suicli

import (
	"fmt"
	"os/exec"

	"github.com/dungeonlabs/dungeonctl/lib/process"
)

// Tool represents the sui binary named in configuration.
type Tool struct {
	bin string
}

// New returns a Tool invoking the given sui binary.
func New(bin string) *Tool {
	return &Tool{bin: bin}
}

// StartLocalnet runs a local Sui network in the foreground, with a
// faucet when requested. Blocks until the network is interrupted.
func (t *Tool) StartLocalnet(withFaucet bool) (int, error) {
	args := []string{"start"}
	if withFaucet {
		args = append(args, "--with-faucet")
	}
	return t.run(args...)
}

// GenerateKey generates a new keypair with the given signature scheme
// (ed25519, secp256k1, or secp256r1 — validated by sui itself).
func (t *Tool) GenerateKey(scheme string) (int, error) {
	return t.run("keytool", "generate", scheme)
}

func (t *Tool) run(args ...string) (int, error) {
	path, err := exec.LookPath(t.bin)
	if err != nil {
		return 0, fmt.Errorf("%s not found on PATH — install the Sui CLI first (https://docs.sui.io/guides/developer/getting-started)", t.bin)
	}
	return process.Interactive(path, args...)
}
