// Copyright 2026 The Dungeon Authors
// SPDX-License-Identifier: Apache-2.0

// Package process provides helpers for running foreground child
// processes and for entrypoint error handling. The dispatcher's whole
// job ends in exactly one child process per invocation; this package
// owns the mechanics of running it with the operator's terminal and
// relaying its exit status.
package process
