// Copyright 2026 The Dungeon Authors
// SPDX-License-Identifier: Apache-2.0

package feature

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/tidwall/jsonc"
)

// Profiles maps profile names to token bundles. A profile file lets
// developers name recurring token combinations once and reference
// them as @name on any command line:
//
//	{
//	    // everything CI exercises
//	    "ci": ["risc0", "sui"],
//	    "demo": ["bevy", "stub", "gpu-fast"],
//	}
//
// The file format is JSONC: JSON extended with // line comments,
// /* block comments */, and trailing commas.
type Profiles map[string][]string

// LoadProfiles reads a profile file. An empty path or a missing file
// yields an empty (but usable) Profiles value — profiles are an
// opt-in convenience, not a requirement.
func LoadProfiles(path string) (Profiles, error) {
	if path == "" {
		return Profiles{}, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Profiles{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading profile file %s: %w", path, err)
	}

	var profiles Profiles
	if err := json.Unmarshal(jsonc.ToJSON(data), &profiles); err != nil {
		return nil, fmt.Errorf("parsing profile file %s: %w", path, err)
	}
	return profiles, nil
}

// Expand replaces every @name token with the named profile's tokens,
// in place, preserving the surrounding order. Expansion is a single
// pass: profiles may not reference other profiles. Tokens without the
// @ prefix pass through untouched.
func (p Profiles) Expand(tokens []string) ([]string, error) {
	expanded := make([]string, 0, len(tokens))
	for _, token := range tokens {
		name, isRef := strings.CutPrefix(token, "@")
		if !isRef {
			expanded = append(expanded, token)
			continue
		}
		bundle, ok := p[name]
		if !ok {
			return nil, &UnknownProfileError{Name: name, Defined: p.names()}
		}
		expanded = append(expanded, bundle...)
	}
	return expanded, nil
}

// names returns the defined profile names, sorted for stable error
// messages.
func (p Profiles) names() []string {
	names := make([]string, 0, len(p))
	for name := range p {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
