// Copyright 2026 The Dungeon Authors
// SPDX-License-Identifier: Apache-2.0

// Package cargo provides typed access to the cargo CLI for feature-
// composed builds of the Dungeon workspace. A Tool assembles one
// invocation per command — verb, optional package scope, the
// --features value, and verbatim trailing flags — prints the backend
// banner, and runs cargo in the foreground with the operator's
// terminal. The child's exit status is relayed untouched; once
// dispatch begins, failures belong to cargo's own error domain.
package cargo
