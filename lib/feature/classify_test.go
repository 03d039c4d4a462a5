// Copyright 2026 The Dungeon Authors
// SPDX-License-Identifier: Apache-2.0

package feature

import (
	"errors"
	"strings"
	"testing"
)

func TestClassify_SingleBackendToken(t *testing.T) {
	for _, backend := range Backends() {
		selection, err := Classify([]string{string(backend)})
		if err != nil {
			t.Fatalf("Classify([%s]) error: %v", backend, err)
		}
		if selection.Backend != backend {
			t.Errorf("backend = %q, want %q", selection.Backend, backend)
		}
		if selection.Frontend != FrontendCLI {
			t.Errorf("frontend = %q, want default %q", selection.Frontend, FrontendCLI)
		}
		if selection.Chain != ChainNone {
			t.Errorf("chain = %q, want none", selection.Chain)
		}
		if len(selection.Extras) != 0 {
			t.Errorf("extras = %v, want empty", selection.Extras)
		}
	}
}

func TestClassify_EmptyInput(t *testing.T) {
	_, err := Classify(nil)
	if !errors.Is(err, ErrNoTokens) {
		t.Fatalf("Classify(nil) error = %v, want ErrNoTokens", err)
	}

	_, err = Classify([]string{})
	if !errors.Is(err, ErrNoTokens) {
		t.Fatalf("Classify([]) error = %v, want ErrNoTokens", err)
	}
}

func TestClassify_MissingBackend(t *testing.T) {
	_, err := Classify([]string{"cli", "sui", "gpu-fast"})

	var missing *MissingBackendError
	if !errors.As(err, &missing) {
		t.Fatalf("error = %v, want MissingBackendError", err)
	}
	// The message must name the valid backends so the operator can
	// fix the invocation.
	for _, backend := range Backends() {
		if !strings.Contains(missing.Error(), string(backend)) {
			t.Errorf("error %q does not name backend %q", missing.Error(), backend)
		}
	}
}

func TestClassify_ConflictingBackends(t *testing.T) {
	_, err := Classify([]string{"risc0", "sp1"})

	var conflict *MultipleBackendsError
	if !errors.As(err, &conflict) {
		t.Fatalf("error = %v, want MultipleBackendsError", err)
	}
	if conflict.Existing != BackendRisc0 || conflict.New != BackendSP1 {
		t.Errorf("conflict = {%q, %q}, want {risc0, sp1}", conflict.Existing, conflict.New)
	}
	if !strings.Contains(conflict.Error(), "risc0") || !strings.Contains(conflict.Error(), "sp1") {
		t.Errorf("error %q does not name both backends", conflict.Error())
	}
}

func TestClassify_ConflictingFrontends(t *testing.T) {
	_, err := Classify([]string{"stub", "cli", "bevy"})

	var conflict *MultipleFrontendsError
	if !errors.As(err, &conflict) {
		t.Fatalf("error = %v, want MultipleFrontendsError", err)
	}
	if conflict.Existing != FrontendCLI || conflict.New != FrontendBevy {
		t.Errorf("conflict = {%q, %q}, want {cli, bevy}", conflict.Existing, conflict.New)
	}
}

func TestClassify_ConflictingChains(t *testing.T) {
	_, err := Classify([]string{"stub", "sui", "ethereum"})

	var conflict *MultipleChainsError
	if !errors.As(err, &conflict) {
		t.Fatalf("error = %v, want MultipleChainsError", err)
	}
	if conflict.Existing != ChainSui || conflict.New != ChainEthereum {
		t.Errorf("conflict = {%q, %q}, want {sui, ethereum}", conflict.Existing, conflict.New)
	}
}

func TestClassify_DuplicateIdenticalTokenIsNotConflict(t *testing.T) {
	selection, err := Classify([]string{"risc0", "risc0", "cli", "cli", "sui", "sui"})
	if err != nil {
		t.Fatalf("Classify() error: %v", err)
	}
	if selection.Backend != BackendRisc0 || selection.Frontend != FrontendCLI || selection.Chain != ChainSui {
		t.Errorf("selection = %+v, want risc0/cli/sui", selection)
	}
	if len(selection.Extras) != 0 {
		t.Errorf("extras = %v, want empty", selection.Extras)
	}
}

func TestClassify_ExtrasPreserveInputOrder(t *testing.T) {
	selection, err := Classify([]string{"foo", "risc0", "bar", "baz"})
	if err != nil {
		t.Fatalf("Classify() error: %v", err)
	}
	want := []string{"foo", "bar", "baz"}
	if len(selection.Extras) != len(want) {
		t.Fatalf("extras = %v, want %v", selection.Extras, want)
	}
	for i := range want {
		if selection.Extras[i] != want[i] {
			t.Errorf("extras[%d] = %q, want %q", i, selection.Extras[i], want[i])
		}
	}
}

func TestFeatureSet_Scenarios(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
		want   string
	}{
		{"backend only", []string{"stub"}, "cli,stub"},
		{"chain and backend", []string{"sui", "risc0"}, "sui,cli,risc0"},
		{"full selection with extra", []string{"risc0", "bevy", "sui", "gpu-fast"}, "gpu-fast,sui,bevy,risc0"},
		{"extras keep order", []string{"foo", "bar", "stub"}, "foo,bar,cli,stub"},
		{"explicit frontend", []string{"gui", "arkworks"}, "gui,arkworks"},
		{"ethereum", []string{"ethereum", "sp1"}, "ethereum,cli,sp1"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			selection, err := Classify(test.tokens)
			if err != nil {
				t.Fatalf("Classify(%v) error: %v", test.tokens, err)
			}
			if got := selection.FeatureSet(); got != test.want {
				t.Errorf("FeatureSet() = %q, want %q", got, test.want)
			}
		})
	}
}

func TestFeatureSet_AssemblyIsOrderStable(t *testing.T) {
	selection := Selection{
		Backend:  BackendStub,
		Frontend: FrontendCLI,
		Extras:   []string{"foo", "bar"},
	}
	if got := selection.FeatureSet(); got != "foo,bar,cli,stub" {
		t.Errorf("FeatureSet() = %q, want %q", got, "foo,bar,cli,stub")
	}
}

func TestClassify_Idempotent(t *testing.T) {
	tokens := []string{"risc0", "bevy", "sui", "gpu-fast"}

	first, err := Classify(tokens)
	if err != nil {
		t.Fatalf("first Classify() error: %v", err)
	}
	second, err := Classify(tokens)
	if err != nil {
		t.Fatalf("second Classify() error: %v", err)
	}
	if first.FeatureSet() != second.FeatureSet() {
		t.Errorf("feature sets differ: %q vs %q", first.FeatureSet(), second.FeatureSet())
	}
}
