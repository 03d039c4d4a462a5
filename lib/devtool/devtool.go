// Copyright 2026 The Dungeon Authors
// SPDX-License-Identifier: Apache-2.0

// Package devtool provides typed access to the dungeon-devtool binary
// for session inspection: tailing logs, dumping game state, reading
// the action log, and cleaning up old sessions. The devtool's own
// output formats are opaque here — every verb runs in the foreground
// with the operator's terminal and its exit status is relayed.
package devtool

import (
	"fmt"
	"os/exec"

	"github.com/dungeonlabs/dungeonctl/lib/process"
)

// Tool represents the devtool binary. The binary name comes from
// configuration; resolution against PATH happens on each invocation
// so a freshly built devtool is picked up without restarting anything.
type Tool struct {
	bin string
}

// New returns a Tool invoking the given devtool binary.
func New(bin string) *Tool {
	return &Tool{bin: bin}
}

// TailLogs follows the log stream of the named session.
func (t *Tool) TailLogs(session string) (int, error) {
	return t.run("logs", session)
}

// ShowState dumps the latest game state of the named session.
func (t *Tool) ShowState(session string) (int, error) {
	return t.run("state", session)
}

// ShowActions prints the action log of the named session.
func (t *Tool) ShowActions(session string) (int, error) {
	return t.run("actions", session)
}

// Clean removes stale session data.
func (t *Tool) Clean() (int, error) {
	return t.run("clean")
}

func (t *Tool) run(args ...string) (int, error) {
	path, err := exec.LookPath(t.bin)
	if err != nil {
		return 0, fmt.Errorf("%s not found on PATH — build the workspace first (dungeonctl build <backend>)", t.bin)
	}
	return process.Interactive(path, args...)
}
