// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli implements the driftline command-line entry points.
//
// The shell owns execution; this package only builds the registry from
// configuration and exposes it for inspection: printing help, listing
// commands, and showing what a given input line resolves to.
package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/jeranaias/driftline/internal/commands"
	"github.com/jeranaias/driftline/internal/config"
	"github.com/jeranaias/driftline/internal/util"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

const usageText = `driftline - slash command registry for the driftline agent shell

Usage:
  driftline help               Show the in-shell help message
  driftline commands           List built-in and custom commands
  driftline resolve <input>    Show what an input line resolves to
  driftline version            Show version information

Configuration is read from ~/.driftline/config.toml (DRIFTLINE_HOME
overrides the directory). Custom commands are *.md files in the
configured commands directory.
`

// Run executes the CLI and returns the process exit code.
func Run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprint(stdout, usageText)
		return 0
	}

	switch args[0] {
	case "version":
		fmt.Fprintf(stdout, "driftline %s (%s, built %s)\n", Version, GitCommit, BuildDate)
		return 0
	case "help", "commands", "resolve":
		// Registry-backed commands handled below.
	default:
		fmt.Fprintf(stderr, "driftline: unknown command %q\n\n%s", args[0], usageText)
		return 2
	}

	registry, err := buildRegistry(stderr)
	if err != nil {
		fmt.Fprintf(stderr, "driftline: %v\n", err)
		return 1
	}

	switch args[0] {
	case "help":
		fmt.Fprintln(stdout, registry.HelpText())
	case "commands":
		printCommands(stdout, registry)
	case "resolve":
		if len(args) < 2 {
			fmt.Fprintln(stderr, "driftline: resolve requires an input line")
			return 2
		}
		printResolution(stdout, registry, strings.Join(args[1:], " "))
	}
	return 0
}

// buildRegistry constructs the session registry from configuration.
func buildRegistry(stderr io.Writer) (*commands.Registry, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	dir, err := cfg.ResolveCommandsDir()
	if err != nil {
		return nil, err
	}

	opts := commands.Options{
		Excluded:    cfg.ExcludedCommands,
		CommandsDir: dir,
	}
	if cfg.WarnSkippedCommands {
		opts.Warn = func(path string, err error) {
			fmt.Fprintf(stderr, "driftline: skipping custom command %s: %v\n", path, err)
		}
	}

	return commands.NewRegistry(opts), nil
}

// printCommands enumerates both command tables, one line each.
func printCommands(w io.Writer, registry *commands.Registry) {
	for _, cmd := range registry.All() {
		fmt.Fprintf(w, "%-16s %-28s %s\n",
			cmd.Key,
			strings.Join(cmd.Aliases, ", "),
			util.TruncateRunes(cmd.Description, 60))
	}
	for _, custom := range registry.CustomCommands() {
		fmt.Fprintf(w, "%-16s %-28s %s\n",
			custom.Name,
			custom.Alias(),
			util.TruncateRunes(custom.Description(), 60))
	}
}

// printResolution shows how the shell would interpret an input line.
func printResolution(w io.Writer, registry *commands.Registry, input string) {
	res := registry.FindCommandWithArgs(input)
	switch {
	case res.Command != nil:
		fmt.Fprintf(w, "built-in: %s (handler %s)\n", res.Command.Key, res.Command.Handler)
		if res.Args != "" {
			fmt.Fprintf(w, "args: %s\n", res.Args)
		}
		if res.Exits() {
			fmt.Fprintln(w, "exits the session")
		}
	case res.Custom != nil:
		fmt.Fprintf(w, "custom: %s\n", res.Custom.Name)
		fmt.Fprintf(w, "renders:\n%s\n", res.Custom.Render(res.Args))
	default:
		fmt.Fprintln(w, "no command matched; input would be sent as chat text")
	}
}
