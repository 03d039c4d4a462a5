// Copyright 2026 The Dungeon Authors
// SPDX-License-Identifier: Apache-2.0

package process

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"syscall"
)

// Interactive runs the named program in the foreground with the
// operator's stdin, stdout, and stderr. SIGINT and SIGTERM received
// while the child runs are forwarded to it so it can perform its own
// cleanup; the wrapper never intercepts or translates them. The call
// blocks until the child exits and returns the child's exit code
// unmodified.
//
// A non-nil error means the child could not be started or waited on
// at all; a non-zero exit code with a nil error is the child's own
// result and must be relayed, not reinterpreted.
func Interactive(name string, args ...string) (int, error) {
	command := exec.Command(name, args...)
	command.Stdin = os.Stdin
	command.Stdout = os.Stdout
	command.Stderr = os.Stderr

	if err := command.Start(); err != nil {
		return 0, fmt.Errorf("starting %s: %w", name, err)
	}

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(signals)

	done := make(chan error, 1)
	go func() { done <- command.Wait() }()

	for {
		select {
		case received := <-signals:
			// Best effort: if the child already exited, the next
			// iteration returns through the done channel.
			_ = command.Process.Signal(received)
		case err := <-done:
			if err == nil {
				return 0, nil
			}
			var exitErr *exec.ExitError
			if errors.As(err, &exitErr) {
				// Shell convention for signal-terminated children:
				// 128 + signal number.
				if status, ok := exitErr.Sys().(syscall.WaitStatus); ok && status.Signaled() {
					return 128 + int(status.Signal()), nil
				}
				return exitErr.ExitCode(), nil
			}
			return 0, fmt.Errorf("waiting for %s: %w", name, err)
		}
	}
}
