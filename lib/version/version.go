// Copyright 2026 The Dungeon Authors
// SPDX-License-Identifier: Apache-2.0

// Package version exposes the dungeonctl build version for the
// version command. Values are stamped at build time:
//
//	go build -ldflags "-X github.com/dungeonlabs/dungeonctl/lib/version.Version=v0.3.0 \
//	                   -X github.com/dungeonlabs/dungeonctl/lib/version.Commit=$(git rev-parse --short HEAD)"
package version

var (
	// Version is the semantic version, "dev" for unstamped builds.
	Version = "dev"

	// Commit is the short git revision, empty for unstamped builds.
	Commit = ""
)

// Full returns the version with the commit appended when known.
func Full() string {
	if Commit == "" {
		return Version
	}
	return Version + " (" + Commit + ")"
}
