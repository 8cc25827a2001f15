// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package commands provides the slash command registry for the agent shell.
package commands

import (
	"github.com/spf13/afero"
)

// =============================================================================
// COMMAND DEFINITION
// =============================================================================

// Handler identifies the behavior a command triggers. The registry never
// executes anything; the shell's dispatch switch maps each tag to code.
type Handler int

const (
	HandlerHelp Handler = iota
	HandlerConfig
	HandlerReload
	HandlerClear
	HandlerLog
	HandlerCompact
	HandlerExit
	HandlerTerminalSetup
	HandlerStatus
)

// String returns the handler tag name for diagnostics.
func (h Handler) String() string {
	switch h {
	case HandlerHelp:
		return "help"
	case HandlerConfig:
		return "config"
	case HandlerReload:
		return "reload"
	case HandlerClear:
		return "clear"
	case HandlerLog:
		return "log"
	case HandlerCompact:
		return "compact"
	case HandlerExit:
		return "exit"
	case HandlerTerminalSetup:
		return "terminal-setup"
	case HandlerStatus:
		return "status"
	}
	return "unknown"
}

// Command represents a built-in slash command.
type Command struct {
	// Key is the stable internal name (e.g., "config"), distinct from aliases.
	Key string

	// Aliases are the /-prefixed tokens that invoke the command.
	// Matching is case-insensitive; every alias is unique across the registry.
	Aliases []string

	// Description is shown in help and completion.
	Description string

	// Handler is the tag the shell dispatches on.
	Handler Handler

	// Exits signals the caller that a successful dispatch ends the session.
	Exits bool
}

// =============================================================================
// COMMAND REGISTRY
// =============================================================================

// WarnFunc receives custom-command files that were skipped because they
// could not be read. The scan always continues past them.
type WarnFunc func(path string, err error)

// Options configures registry construction.
type Options struct {
	// Excluded lists internal keys to drop from the built-in catalog.
	// Unknown keys are ignored.
	Excluded []string

	// CommandsDir is the directory scanned for custom command files.
	// A missing directory means zero custom commands.
	CommandsDir string

	// Fs is the filesystem used for the scan. Nil means the OS filesystem.
	Fs afero.Fs

	// Warn, if set, is called for each unreadable custom-command file.
	Warn WarnFunc
}

// Registry resolves user input to command descriptors. It is built once per
// session and read-only afterwards, so it can be shared across goroutines
// without locking. Reconfiguration means building a new Registry.
type Registry struct {
	commands    map[string]*Command
	order       []string // catalog insertion order, drives help output
	aliasMap    map[string]string
	custom      map[string]*CustomCommand
	customOrder []string
}

// NewRegistry builds a registry: catalog, exclusions, alias index, then the
// custom-command scan. Built-ins always shadow customs with colliding aliases.
func NewRegistry(opts Options) *Registry {
	r := &Registry{
		commands: make(map[string]*Command),
		aliasMap: make(map[string]string),
		custom:   make(map[string]*CustomCommand),
	}
	r.registerBuiltins()

	for _, key := range opts.Excluded {
		r.remove(key)
	}

	for _, key := range r.order {
		for _, alias := range r.commands[key].Aliases {
			r.aliasMap[alias] = key
		}
	}

	fs := opts.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}
	r.loadCustomCommands(fs, opts.CommandsDir, opts.Warn)

	return r
}

// register adds a command to the catalog. The catalog is defined once below
// and assumed internally consistent; a duplicate alias is a programming
// error, not a runtime condition.
func (r *Registry) register(cmd *Command) {
	r.commands[cmd.Key] = cmd
	r.order = append(r.order, cmd.Key)
}

// remove drops a built-in by key before alias derivation. Removing an
// unknown key is a no-op.
func (r *Registry) remove(key string) {
	if _, ok := r.commands[key]; !ok {
		return
	}
	delete(r.commands, key)
	for i, k := range r.order {
		if k == key {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

// Get retrieves a built-in command by its internal key.
func (r *Registry) Get(key string) *Command {
	return r.commands[key]
}

// All returns the built-in commands in catalog order.
func (r *Registry) All() []*Command {
	cmds := make([]*Command, 0, len(r.order))
	for _, key := range r.order {
		cmds = append(cmds, r.commands[key])
	}
	return cmds
}

// CustomCommands returns the custom commands in discovery order.
func (r *Registry) CustomCommands() []*CustomCommand {
	cmds := make([]*CustomCommand, 0, len(r.customOrder))
	for _, name := range r.customOrder {
		cmds = append(cmds, r.custom[name])
	}
	return cmds
}

// =============================================================================
// BUILT-IN CATALOG
// =============================================================================

func (r *Registry) registerBuiltins() {
	r.register(&Command{
		Key:         "help",
		Aliases:     []string{"/help"},
		Description: "Show help message",
		Handler:     HandlerHelp,
	})

	r.register(&Command{
		Key:         "config",
		Aliases:     []string{"/config", "/theme", "/model"},
		Description: "Edit config settings",
		Handler:     HandlerConfig,
	})

	r.register(&Command{
		Key:         "reload",
		Aliases:     []string{"/reload"},
		Description: "Reload configuration from disk",
		Handler:     HandlerReload,
	})

	r.register(&Command{
		Key:         "clear",
		Aliases:     []string{"/clear"},
		Description: "Clear conversation history",
		Handler:     HandlerClear,
	})

	r.register(&Command{
		Key:         "log",
		Aliases:     []string{"/log"},
		Description: "Show path to current interaction log file",
		Handler:     HandlerLog,
	})

	r.register(&Command{
		Key:         "compact",
		Aliases:     []string{"/compact"},
		Description: "Compact conversation history by summarizing",
		Handler:     HandlerCompact,
	})

	r.register(&Command{
		Key:         "exit",
		Aliases:     []string{"/exit"},
		Description: "Exit the application",
		Handler:     HandlerExit,
		Exits:       true,
	})

	r.register(&Command{
		Key:         "terminal-setup",
		Aliases:     []string{"/terminal-setup"},
		Description: "Configure Shift+Enter for newlines",
		Handler:     HandlerTerminalSetup,
	})

	r.register(&Command{
		Key:         "status",
		Aliases:     []string{"/status"},
		Description: "Display agent statistics",
		Handler:     HandlerStatus,
	})
}
