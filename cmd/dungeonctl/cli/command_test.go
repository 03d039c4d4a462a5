// Copyright 2026 The Dungeon Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/spf13/pflag"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
}

func TestCommand_Execute_DispatchesToSubcommand(t *testing.T) {
	var called string

	root := &Command{
		Name: "dungeonctl",
		Subcommands: []*Command{
			{
				Name: "build",
				Run: func(_ context.Context, args []string, _ *slog.Logger) error {
					called = "build"
					return nil
				},
			},
			{
				Name: "test",
				Run: func(_ context.Context, args []string, _ *slog.Logger) error {
					called = "test"
					return nil
				},
			},
		},
	}

	if err := root.Execute(context.Background(), []string{"test"}, testLogger()); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if called != "test" {
		t.Errorf("dispatched to %q, want %q", called, "test")
	}
}

func TestCommand_Execute_NestedSubcommands(t *testing.T) {
	var receivedArgs []string

	root := &Command{
		Name: "dungeonctl",
		Subcommands: []*Command{
			{
				Name: "logs",
				Subcommands: []*Command{
					{
						Name: "tail",
						Run: func(_ context.Context, args []string, _ *slog.Logger) error {
							receivedArgs = args
							return nil
						},
					},
				},
			},
		},
	}

	if err := root.Execute(context.Background(), []string{"logs", "tail", "session_42"}, testLogger()); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if len(receivedArgs) != 1 || receivedArgs[0] != "session_42" {
		t.Errorf("args = %v, want [session_42]", receivedArgs)
	}
}

func TestCommand_Execute_UnknownCommandSuggestsClosest(t *testing.T) {
	root := &Command{
		Name: "dungeonctl",
		Subcommands: []*Command{
			{Name: "build", Run: func(context.Context, []string, *slog.Logger) error { return nil }},
			{Name: "bench", Run: func(context.Context, []string, *slog.Logger) error { return nil }},
		},
	}

	err := root.Execute(context.Background(), []string{"biuld"}, testLogger())
	if err == nil {
		t.Fatal("Execute() with a typo succeeded, want error")
	}
	if !strings.Contains(err.Error(), `"build"`) {
		t.Errorf("error %q does not suggest build", err)
	}
}

func TestCommand_Execute_FlagParsing(t *testing.T) {
	var backend string

	command := &Command{
		Name: "dev",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("dev", pflag.ContinueOnError)
			flagSet.StringVar(&backend, "backend", "risc0", "proving backend")
			return flagSet
		},
		Run: func(context.Context, []string, *slog.Logger) error { return nil },
	}

	if err := command.Execute(context.Background(), []string{"--backend", "sp1"}, testLogger()); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if backend != "sp1" {
		t.Errorf("backend = %q, want sp1", backend)
	}
}

func TestCommand_Execute_RawArgsWithoutFlags(t *testing.T) {
	// Commands without a flag set must receive raw args, including
	// the literal "--" that separates tokens from forwarded flags.
	var received []string

	command := &Command{
		Name: "build",
		Run: func(_ context.Context, args []string, _ *slog.Logger) error {
			received = args
			return nil
		},
	}

	input := []string{"risc0", "sui", "--", "--release"}
	if err := command.Execute(context.Background(), input, testLogger()); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if strings.Join(received, " ") != strings.Join(input, " ") {
		t.Errorf("args = %v, want %v unmodified", received, input)
	}
}

func TestCommand_Execute_SubcommandRequired(t *testing.T) {
	root := &Command{
		Name: "logs",
		Subcommands: []*Command{
			{Name: "tail", Run: func(context.Context, []string, *slog.Logger) error { return nil }},
		},
	}

	if err := root.Execute(context.Background(), nil, testLogger()); err == nil {
		t.Error("Execute() with no subcommand succeeded, want error")
	}
}

func TestCommand_PrintHelp_ListsSubcommandsAndExamples(t *testing.T) {
	root := &Command{
		Name:    "dungeonctl",
		Summary: "Dungeon workspace dispatcher",
		Subcommands: []*Command{
			{Name: "build", Summary: "Compile with a resolved feature set"},
		},
		Examples: []Example{
			{Description: "Test against the stub prover", Command: "dungeonctl test stub"},
		},
	}

	var out bytes.Buffer
	root.PrintHelp(&out)

	help := out.String()
	for _, fragment := range []string{"build", "Compile with a resolved feature set", "dungeonctl test stub"} {
		if !strings.Contains(help, fragment) {
			t.Errorf("help output missing %q:\n%s", fragment, help)
		}
	}
}
