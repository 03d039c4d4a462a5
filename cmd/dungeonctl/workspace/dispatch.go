// Copyright 2026 The Dungeon Authors
// SPDX-License-Identifier: Apache-2.0

package workspace

import (
	"log/slog"

	"github.com/dungeonlabs/dungeonctl/cmd/dungeonctl/cli"
	"github.com/dungeonlabs/dungeonctl/lib/cargo"
	"github.com/dungeonlabs/dungeonctl/lib/config"
	"github.com/dungeonlabs/dungeonctl/lib/feature"
)

// splitTokens separates feature tokens from trailing cargo flags at
// the first literal "--". The separator itself is consumed; the tail
// keeps its order and quoting untouched.
func splitTokens(args []string) (tokens, trailing []string) {
	for i, arg := range args {
		if arg == "--" {
			return args[:i], args[i+1:]
		}
	}
	return args, nil
}

// resolve expands profiles and classifies the token list. All
// validation happens here, before anything is spawned.
func resolve(cfg *config.Config, tokens []string) (feature.Selection, error) {
	profiles, err := feature.LoadProfiles(cfg.ProfileFile)
	if err != nil {
		return feature.Selection{}, err
	}
	expanded, err := profiles.Expand(tokens)
	if err != nil {
		return feature.Selection{}, err
	}
	return feature.Classify(expanded)
}

// dispatch resolves args into a feature selection and runs the cargo
// verb against the client package. The child's exit status becomes
// this command's exit status.
func dispatch(cfg *config.Config, cargoVerb string, args []string, logger *slog.Logger) error {
	tokens, trailing := splitTokens(args)
	return dispatchTokens(cfg, cargoVerb, tokens, trailing, logger)
}

// dispatchTokens is dispatch with the token/trailing split already
// done; dev builds its token list from named flags instead of a "--"
// separator.
func dispatchTokens(cfg *config.Config, cargoVerb string, tokens, trailing []string, logger *slog.Logger) error {
	selection, err := resolve(cfg, tokens)
	if err != nil {
		return err
	}

	featureSet := selection.FeatureSet()
	logger.Info("dispatching cargo",
		"verb", cargoVerb,
		"package", cfg.ClientPackage,
		"features", featureSet,
	)

	tool := cargo.New(cfg.CargoBin)
	return cli.Relay(tool.Dispatch(selection.Backend, cargo.Request{
		Verb:         cargoVerb,
		Package:      cfg.ClientPackage,
		Features:     featureSet,
		TrailingArgs: trailing,
	}))
}

// forward runs a cargo verb that takes no feature selection, passing
// the args through verbatim.
func forward(cfg *config.Config, cargoVerb string, trailing []string) error {
	tool := cargo.New(cfg.CargoBin)
	return cli.Relay(tool.Forward(cargoVerb, trailing))
}
