// Copyright 2026 The Dungeon Authors
// SPDX-License-Identifier: Apache-2.0

package feature

// BackendKind identifies the proving backend the downstream build
// links against. The enumeration is closed: classification validates
// membership, so later stages may switch exhaustively over it.
type BackendKind string

const (
	// BackendRisc0 is the RISC Zero zkVM backend.
	BackendRisc0 BackendKind = "risc0"
	// BackendStub is the stub prover: no real proofs, fast iteration.
	BackendStub BackendKind = "stub"
	// BackendSP1 is the Succinct SP1 zkVM backend.
	BackendSP1 BackendKind = "sp1"
	// BackendArkworks is the arkworks Groth16 backend.
	BackendArkworks BackendKind = "arkworks"
)

// FrontendKind identifies the user-facing shell the built client
// exposes.
type FrontendKind string

const (
	// FrontendCLI is the terminal frontend. It is the default when no
	// frontend token is supplied.
	FrontendCLI FrontendKind = "cli"
	// FrontendBevy is the Bevy game-engine frontend.
	FrontendBevy FrontendKind = "bevy"
	// FrontendGUI is the standalone graphical frontend.
	FrontendGUI FrontendKind = "gui"
)

// ChainKind identifies an optional blockchain integration. The zero
// value means no blockchain feature is added.
type ChainKind string

const (
	// ChainNone is the absence of a blockchain integration.
	ChainNone ChainKind = ""
	// ChainSui enables the Sui integration.
	ChainSui ChainKind = "sui"
	// ChainEthereum enables the Ethereum integration.
	ChainEthereum ChainKind = "ethereum"
)

// Backends returns all valid backend kinds in declaration order.
// Used for error messages and config validation.
func Backends() []BackendKind {
	return []BackendKind{BackendRisc0, BackendStub, BackendSP1, BackendArkworks}
}

// Frontends returns all valid frontend kinds in declaration order.
func Frontends() []FrontendKind {
	return []FrontendKind{FrontendCLI, FrontendBevy, FrontendGUI}
}

// Chains returns all valid blockchain kinds in declaration order.
func Chains() []ChainKind {
	return []ChainKind{ChainSui, ChainEthereum}
}

// ParseBackend reports whether token names a backend. The three
// category vocabularies must stay disjoint; classification tests
// backend membership first.
func ParseBackend(token string) (BackendKind, bool) {
	for _, kind := range Backends() {
		if token == string(kind) {
			return kind, true
		}
	}
	return "", false
}

// ParseFrontend reports whether token names a frontend.
func ParseFrontend(token string) (FrontendKind, bool) {
	for _, kind := range Frontends() {
		if token == string(kind) {
			return kind, true
		}
	}
	return "", false
}

// ParseChain reports whether token names a blockchain integration.
func ParseChain(token string) (ChainKind, bool) {
	for _, kind := range Chains() {
		if token == string(kind) {
			return kind, true
		}
	}
	return "", false
}
