// Copyright 2026 The Dungeon Authors
// SPDX-License-Identifier: Apache-2.0

// Package feature classifies free-form feature tokens into the
// categories the Dungeon workspace composes its builds from: a
// proving backend (required, exactly one), a frontend (at most one,
// defaulting to cli), a blockchain integration (at most one,
// optional), and passthrough extras for everything unrecognized.
//
// Classification is pure: the same token list always resolves to the
// same Selection, and the assembled feature set is textually stable
// so command lines stay reproducible for logging and caching built
// around them.
package feature
