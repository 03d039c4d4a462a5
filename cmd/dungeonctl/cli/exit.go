// Copyright 2026 The Dungeon Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import "fmt"

// ExitError signals a non-zero exit code without printing an extra
// error message. The dispatcher's main use is relaying a child
// process's exit status: cargo has already written its own output, so
// the wrapper must exit with the same code and stay silent.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit code %d", e.Code)
}

// ExitCode returns the exit code. The main function checks for this
// interface on returned errors to distinguish "handled non-zero exit"
// from "unexpected error to display".
func (e *ExitError) ExitCode() int {
	return e.Code
}

// Relay converts a child process result into the CLI's error domain:
// a start/wait failure passes through, a non-zero exit becomes an
// ExitError, and a clean exit is nil.
func Relay(code int, err error) error {
	if err != nil {
		return err
	}
	if code != 0 {
		return &ExitError{Code: code}
	}
	return nil
}
