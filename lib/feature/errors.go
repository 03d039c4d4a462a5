// Copyright 2026 The Dungeon Authors
// SPDX-License-Identifier: Apache-2.0

package feature

import (
	"errors"
	"fmt"
)

// ErrNoTokens is returned when classification is invoked with an
// empty token list. Every caller requires at least one token.
var ErrNoTokens = errors.New("at least one feature token is required")

// MissingBackendError is returned when no token in the input named a
// backend. The error text lists the valid values so the operator can
// fix the invocation without consulting documentation.
type MissingBackendError struct {
	// Tokens is the input that was scanned, for context in the message.
	Tokens []string
}

func (e *MissingBackendError) Error() string {
	return fmt.Sprintf("no backend selected in %v (choose one of: %s)",
		e.Tokens, joinKinds(Backends()))
}

// MultipleBackendsError is returned when two different backend tokens
// appear in one invocation. Repeating the same backend token is not a
// conflict.
type MultipleBackendsError struct {
	Existing BackendKind
	New      BackendKind
}

func (e *MultipleBackendsError) Error() string {
	return fmt.Sprintf("conflicting backends %q and %q (exactly one backend is allowed)",
		e.Existing, e.New)
}

// MultipleFrontendsError is returned when two different frontend
// tokens appear in one invocation.
type MultipleFrontendsError struct {
	Existing FrontendKind
	New      FrontendKind
}

func (e *MultipleFrontendsError) Error() string {
	return fmt.Sprintf("conflicting frontends %q and %q (at most one frontend is allowed)",
		e.Existing, e.New)
}

// MultipleChainsError is returned when two different blockchain
// tokens appear in one invocation.
type MultipleChainsError struct {
	Existing ChainKind
	New      ChainKind
}

func (e *MultipleChainsError) Error() string {
	return fmt.Sprintf("conflicting blockchains %q and %q (at most one blockchain is allowed)",
		e.Existing, e.New)
}

// UnknownProfileError is returned when a @name token references a
// profile that is not defined in the profile file.
type UnknownProfileError struct {
	Name    string
	Defined []string
}

func (e *UnknownProfileError) Error() string {
	if len(e.Defined) == 0 {
		return fmt.Sprintf("unknown profile %q (no profiles defined)", e.Name)
	}
	return fmt.Sprintf("unknown profile %q (defined profiles: %v)", e.Name, e.Defined)
}

// joinKinds renders a kind slice as a comma-separated list for error
// messages.
func joinKinds[K ~string](kinds []K) string {
	out := ""
	for i, kind := range kinds {
		if i > 0 {
			out += ", "
		}
		out += string(kind)
	}
	return out
}
