// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"strings"
	"unicode"
)

// =============================================================================
// RESOLUTION
// =============================================================================

// Resolution is the result of matching user input against the registry.
// At most one of Command and Custom is non-nil.
type Resolution struct {
	// Command is the matched built-in, if any.
	Command *Command

	// Custom is the matched custom command, if any.
	Custom *CustomCommand

	// Args is the input remainder after the command token.
	Args string
}

// Found reports whether the input matched anything.
func (res Resolution) Found() bool {
	return res.Command != nil || res.Custom != nil
}

// Exits reports whether a successful dispatch should end the session.
func (res Resolution) Exits() bool {
	return res.Command != nil && res.Command.Exits
}

// FindCommand resolves a bare command token against built-in aliases only.
// The whole input is trimmed and lowercased before lookup. Call sites that
// already hold an isolated token (keybindings) use this; the main input
// line goes through FindCommandWithArgs.
func (r *Registry) FindCommand(userInput string) *Command {
	key, ok := r.aliasMap[strings.ToLower(strings.TrimSpace(userInput))]
	if !ok {
		return nil
	}
	return r.commands[key]
}

// FindCommandWithArgs splits input into a command token and an argument
// string, then resolves the token: built-in aliases first, then custom
// commands for /-prefixed tokens. Unmatched input yields an empty
// Resolution, which callers treat as ordinary chat text.
func (r *Registry) FindCommandWithArgs(userInput string) Resolution {
	token, args := splitArgs(userInput)
	if token == "" {
		return Resolution{}
	}

	// Lowercase for matching only; help still shows catalog-case aliases.
	token = strings.ToLower(token)

	if key, ok := r.aliasMap[token]; ok {
		return Resolution{Command: r.commands[key], Args: args}
	}

	if strings.HasPrefix(token, "/") {
		if custom, ok := r.custom[strings.TrimPrefix(token, "/")]; ok {
			return Resolution{Custom: custom, Args: args}
		}
	}

	return Resolution{}
}

// splitArgs trims the input and splits on the first run of whitespace.
// The argument string is empty when there is nothing after the token.
func splitArgs(input string) (token, args string) {
	input = strings.TrimSpace(input)
	i := strings.IndexFunc(input, unicode.IsSpace)
	if i < 0 {
		return input, ""
	}
	return input[:i], strings.TrimLeftFunc(input[i:], unicode.IsSpace)
}

// =============================================================================
// INPUT CLASSIFICATION
// =============================================================================

// IsCommand returns true if the input appears to be a slash command.
func IsCommand(input string) bool {
	return strings.HasPrefix(strings.TrimSpace(input), "/")
}

// ExtractCommandName extracts just the command token from input.
// e.g., "/config dark" -> "/config"
func ExtractCommandName(input string) string {
	input = strings.TrimSpace(input)
	if !strings.HasPrefix(input, "/") {
		return ""
	}
	token, _ := splitArgs(input)
	return token
}
