// Copyright 2026 The Dungeon Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli implements the dungeonctl command tree: nested
// subcommand dispatch over pflag, structured help output, typo
// suggestions for unknown commands and flags, reflective flag binding
// from struct tags, and the exit-code plumbing that lets a command
// relay a child process's status without a redundant error line.
package cli
