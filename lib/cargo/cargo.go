// Copyright 2026 The Dungeon Authors
// SPDX-License-Identifier: Apache-2.0

package cargo

import (
	"fmt"
	"os"

	"github.com/dungeonlabs/dungeonctl/lib/feature"
	"github.com/dungeonlabs/dungeonctl/lib/process"
)

// Tool represents the cargo binary used for dispatch. There is no
// default — callers resolve the binary name from configuration once
// at startup and construct exactly one Tool from it.
type Tool struct {
	bin string
}

// New returns a Tool invoking the given cargo binary.
func New(bin string) *Tool {
	return &Tool{bin: bin}
}

// Request describes one cargo invocation. Constructed once per
// command, consumed immediately, never persisted.
type Request struct {
	// Verb is the cargo subcommand (build, run, test, clippy, ...).
	Verb string

	// Package restricts the invocation to one workspace package via
	// -p. Empty means no scope restriction.
	Package string

	// Features is the assembled feature set passed via --features.
	Features string

	// TrailingArgs are caller-supplied flags appended verbatim after
	// the synthesized arguments, order preserved.
	TrailingArgs []string
}

// Argv returns the complete argument vector for a request, including
// the binary itself. Kept separate from Dispatch so tests can assert
// on command-line construction without spawning anything.
func (t *Tool) Argv(request Request) []string {
	argv := []string{t.bin, request.Verb}
	if request.Package != "" {
		argv = append(argv, "-p", request.Package)
	}
	argv = append(argv, "--features", request.Features)
	return append(argv, request.TrailingArgs...)
}

// Dispatch prints the banner for the selected backend and runs cargo
// in the foreground. Returns the child's exit code; a non-nil error
// means cargo could not be started at all. All validation has
// happened before this point — no partial side effects precede the
// spawn except the banner line.
func (t *Tool) Dispatch(backend feature.BackendKind, request Request) (int, error) {
	fmt.Fprintln(os.Stdout, Banner(backend))
	argv := t.Argv(request)
	return process.Interactive(argv[0], argv[1:]...)
}

// Forward runs a cargo verb without feature resolution: verb plus
// verbatim trailing flags, nothing synthesized. Used for verbs like
// fmt that are independent of the feature selection.
func (t *Tool) Forward(verb string, trailingArgs []string) (int, error) {
	args := append([]string{verb}, trailingArgs...)
	return process.Interactive(t.bin, args...)
}
