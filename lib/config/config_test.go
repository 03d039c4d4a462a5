// Copyright 2026 The Dungeon Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default().Validate() error: %v", err)
	}
	if cfg.DefaultBackend != "risc0" {
		t.Errorf("DefaultBackend = %q, want risc0", cfg.DefaultBackend)
	}
	if cfg.ClientPackage != "dungeon-client" {
		t.Errorf("ClientPackage = %q, want dungeon-client", cfg.ClientPackage)
	}
}

func TestLoadFile_MergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dungeonctl.yaml")
	content := "default_backend: sp1\nclient_package: dungeon-client\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error: %v", err)
	}
	if cfg.DefaultBackend != "sp1" {
		t.Errorf("DefaultBackend = %q, want sp1", cfg.DefaultBackend)
	}
	// Untouched fields keep their defaults.
	if cfg.CargoBin != "cargo" {
		t.Errorf("CargoBin = %q, want cargo", cfg.CargoBin)
	}
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dungeonctl.yaml")
	if err := os.WriteFile(path, []byte("default_backend: sp1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("DUNGEONCTL_CONFIG", path)
	t.Setenv("DUNGEON_BACKEND", "arkworks")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.DefaultBackend != "arkworks" {
		t.Errorf("DefaultBackend = %q, want arkworks (env wins over file)", cfg.DefaultBackend)
	}
}

func TestLoad_RejectsInvalidBackendOverride(t *testing.T) {
	t.Setenv("DUNGEONCTL_CONFIG", "")
	t.Setenv("DUNGEON_BACKEND", "plonk")

	_, err := Load()
	if err == nil {
		t.Fatal("Load() with invalid DUNGEON_BACKEND succeeded, want error")
	}
	if !strings.Contains(err.Error(), "plonk") {
		t.Errorf("error %q does not name the offending value", err)
	}
}

func TestValidate_ReportsAllProblems(t *testing.T) {
	cfg := &Config{DefaultBackend: "nope", CargoBin: "", ClientPackage: ""}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() succeeded, want error")
	}
	for _, fragment := range []string{"default_backend", "cargo_bin", "client_package"} {
		if !strings.Contains(err.Error(), fragment) {
			t.Errorf("error %q does not mention %s", err, fragment)
		}
	}
}
