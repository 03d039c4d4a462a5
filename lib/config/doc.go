// Copyright 2026 The Dungeon Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides configuration loading for dungeonctl.
//
// Configuration comes from a single optional YAML file named by the
// DUNGEONCTL_CONFIG environment variable. There is no automatic
// discovery: unset means built-in defaults, which keeps every
// invocation deterministic and auditable. The one additional override
// is DUNGEON_BACKEND, which replaces the configured default backend;
// both are read exactly once at program start and passed explicitly
// to the commands that need them — nothing reads the environment
// mid-operation.
package config
