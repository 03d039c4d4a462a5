// Copyright 2026 The Dungeon Authors
// SPDX-License-Identifier: Apache-2.0

package feature

import "strings"

// Selection is the resolved feature selection for one invocation.
// Constructed by Classify, never mutated afterwards.
type Selection struct {
	// Backend is always set on a successful classification.
	Backend BackendKind

	// Frontend defaults to FrontendCLI when no frontend token was
	// supplied.
	Frontend FrontendKind

	// Chain is ChainNone when no blockchain token was supplied.
	Chain ChainKind

	// Extras holds every unrecognized token in its original input
	// order. Extras are passed through to the build tool unexamined.
	Extras []string
}

// Classify partitions tokens into the backend/frontend/chain/extras
// buckets and validates the combination.
//
// Tokens are consumed left to right. Membership is tested against the
// backend vocabulary first, then frontend, then chain. A second,
// different value for an already-filled category is an error;
// repeating the identical token is not. An empty input fails before
// any scanning. A missing frontend is defaulted; a missing backend is
// an error naming the valid values.
func Classify(tokens []string) (Selection, error) {
	if len(tokens) == 0 {
		return Selection{}, ErrNoTokens
	}

	var selection Selection
	for _, token := range tokens {
		if backend, ok := ParseBackend(token); ok {
			if selection.Backend != "" && selection.Backend != backend {
				return Selection{}, &MultipleBackendsError{Existing: selection.Backend, New: backend}
			}
			selection.Backend = backend
			continue
		}
		if frontend, ok := ParseFrontend(token); ok {
			if selection.Frontend != "" && selection.Frontend != frontend {
				return Selection{}, &MultipleFrontendsError{Existing: selection.Frontend, New: frontend}
			}
			selection.Frontend = frontend
			continue
		}
		if chain, ok := ParseChain(token); ok {
			if selection.Chain != ChainNone && selection.Chain != chain {
				return Selection{}, &MultipleChainsError{Existing: selection.Chain, New: chain}
			}
			selection.Chain = chain
			continue
		}
		selection.Extras = append(selection.Extras, token)
	}

	if selection.Backend == "" {
		return Selection{}, &MissingBackendError{Tokens: tokens}
	}
	if selection.Frontend == "" {
		selection.Frontend = FrontendCLI
	}

	return selection, nil
}

// FeatureSet assembles the canonical comma-joined feature identifier:
// extras in their preserved input order, then the blockchain token if
// present, then the frontend, then the backend. The ordering is part
// of the tool's contract — downstream feature resolution does not
// care, but caching and snapshot comparison around the emitted
// command line depend on textual stability.
func (s Selection) FeatureSet() string {
	parts := make([]string, 0, len(s.Extras)+3)
	parts = append(parts, s.Extras...)
	if s.Chain != ChainNone {
		parts = append(parts, string(s.Chain))
	}
	parts = append(parts, string(s.Frontend), string(s.Backend))
	return strings.Join(parts, ",")
}
