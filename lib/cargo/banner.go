// Copyright 2026 The Dungeon Authors
// SPDX-License-Identifier: Apache-2.0

package cargo

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/dungeonlabs/dungeonctl/lib/feature"
)

var bannerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("81"))

// Banner returns the one-line operator-facing description of the
// selected backend, printed before every dispatch. The switch is
// exhaustive over the closed backend enumeration; classification has
// already validated membership, so an unknown value here is a
// programming error, not user input.
func Banner(backend feature.BackendKind) string {
	var text string
	switch backend {
	case feature.BackendRisc0:
		text = "risc0: proving with the RISC Zero zkVM"
	case feature.BackendStub:
		text = "stub: no real proofs, fast iteration builds"
	case feature.BackendSP1:
		text = "sp1: proving with the Succinct SP1 zkVM"
	case feature.BackendArkworks:
		text = "arkworks: proving with Groth16 over arkworks"
	default:
		panic(fmt.Sprintf("cargo.Banner: backend %q escaped classification", backend))
	}
	return bannerStyle.Render("▸ " + text)
}
