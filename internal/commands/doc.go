// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package commands provides the slash command registry for the agent shell.
//
// The registry maps user-typed slash commands to command descriptors. It is
// built once per session from a fixed built-in catalog, an exclusion list,
// and a directory of user-defined command templates, and is immutable
// afterwards. Execution is not part of this package: built-ins carry an
// opaque Handler tag the shell dispatches on, and custom commands render a
// text template the shell sends as a message.
//
// # Key Types
//
//   - Registry: built-in catalog, alias index and custom-command table
//   - Command: a built-in command descriptor
//   - CustomCommand: a user template loaded from <commands_dir>/*.md
//   - Resolution: result of matching an input line
//   - Completer: token completion over both command tables
//
// # Usage
//
// Resolve an input line:
//
//	res := registry.FindCommandWithArgs(input)
//	if !res.Found() {
//	    // ordinary chat text
//	}
//
// Built-ins shadow custom commands with colliding aliases, and filenames
// starting with "_" are reserved and never registered.
package commands
