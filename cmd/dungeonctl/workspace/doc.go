// Copyright 2026 The Dungeon Authors
// SPDX-License-Identifier: Apache-2.0

// Package workspace implements the cargo verbs of dungeonctl: build,
// run, test, lint, bench, doc, check, fmt, and dev. Each verb takes a
// free-form token list, resolves it through the feature classifier,
// and dispatches cargo with the assembled --features value. Tokens
// and trailing cargo flags are separated by a literal "--"; the
// trailing flags are forwarded verbatim.
package workspace
