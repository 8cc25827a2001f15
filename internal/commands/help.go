// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"fmt"
	"sort"
	"strings"
)

// helpPreamble is static shell documentation, not derived from registry
// state. The shortcuts and special syntax it describes are owned by the
// input loop; this component only prints them.
var helpPreamble = []string{
	"### Keyboard Shortcuts",
	"",
	"- `Enter` Submit message",
	"- `Ctrl+J` / `Shift+Enter` Insert newline",
	"- `Escape` Interrupt agent or close dialogs",
	"- `Ctrl+C` Quit (or clear input if text present)",
	"- `Ctrl+O` Toggle tool output view",
	"- `Ctrl+T` Toggle todo view",
	"- `Shift+Tab` Toggle auto-approve mode",
	"",
	"### Special Features",
	"",
	"- `!<command>` Execute bash command directly",
	"- `@path/to/file/` Autocompletes file paths",
	"",
	"### Commands",
	"",
}

// HelpText renders the help message: preamble, one line per built-in in
// catalog order, and a Custom Commands section when any exist.
func (r *Registry) HelpText() string {
	lines := make([]string, 0, len(helpPreamble)+len(r.order)+len(r.customOrder)+3)
	lines = append(lines, helpPreamble...)

	for _, cmd := range r.All() {
		aliases := make([]string, 0, len(cmd.Aliases))
		for _, alias := range cmd.Aliases {
			aliases = append(aliases, "`"+alias+"`")
		}
		sort.Strings(aliases)
		lines = append(lines, fmt.Sprintf("- %s: %s", strings.Join(aliases, ", "), cmd.Description))
	}

	if len(r.customOrder) > 0 {
		lines = append(lines, "", "### Custom Commands", "")
		for _, custom := range r.CustomCommands() {
			lines = append(lines, fmt.Sprintf("- `%s`: %s", custom.Alias(), custom.Description()))
		}
	}

	return strings.Join(lines, "\n")
}
