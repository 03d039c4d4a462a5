// Copyright 2026 The Dungeon Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dungeonlabs/dungeonctl/lib/feature"
)

// Config is the dungeonctl configuration. All fields have usable
// defaults; the file only needs to name what it changes.
type Config struct {
	// DefaultBackend is the backend used by commands that accept a
	// default (dev). The free-token verbs always require an explicit
	// backend token and never consult this.
	DefaultBackend string `yaml:"default_backend"`

	// CargoBin is the cargo binary to dispatch. Overridable for
	// wrappers like sccache shims.
	CargoBin string `yaml:"cargo_bin"`

	// SuiBin is the sui CLI binary for localnet and key generation.
	SuiBin string `yaml:"sui_bin"`

	// DevtoolBin is the session-inspection binary.
	DevtoolBin string `yaml:"devtool_bin"`

	// ClientPackage is the workspace package the cargo verbs target
	// via -p.
	ClientPackage string `yaml:"client_package"`

	// ProfileFile is the optional JSONC file defining named feature
	// token bundles (@name references).
	ProfileFile string `yaml:"profile_file"`
}

// Default returns the built-in configuration. risc0 is the fixed
// fallback backend when neither the environment nor the file chooses
// one.
func Default() *Config {
	return &Config{
		DefaultBackend: string(feature.BackendRisc0),
		CargoBin:       "cargo",
		SuiBin:         "sui",
		DevtoolBin:     "dungeon-devtool",
		ClientPackage:  "dungeon-client",
		ProfileFile:    "",
	}
}

// Load resolves the configuration once at startup: built-in defaults,
// then the DUNGEONCTL_CONFIG file if set, then the DUNGEON_BACKEND
// override. The result is validated before any command sees it.
func Load() (*Config, error) {
	cfg := Default()

	if path := os.Getenv("DUNGEONCTL_CONFIG"); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	if backend := os.Getenv("DUNGEON_BACKEND"); backend != "" {
		cfg.DefaultBackend = backend
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile loads configuration from a specific file on top of the
// defaults, applying the same environment override and validation as
// Load.
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	if err := cfg.loadFile(path); err != nil {
		return nil, err
	}
	if backend := os.Getenv("DUNGEON_BACKEND"); backend != "" {
		cfg.DefaultBackend = backend
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}
	return nil
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []error

	if _, ok := feature.ParseBackend(c.DefaultBackend); !ok {
		errs = append(errs, fmt.Errorf("default_backend %q is not a valid backend (one of: %v)",
			c.DefaultBackend, feature.Backends()))
	}
	if c.CargoBin == "" {
		errs = append(errs, fmt.Errorf("cargo_bin is required"))
	}
	if c.ClientPackage == "" {
		errs = append(errs, fmt.Errorf("client_package is required"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}
