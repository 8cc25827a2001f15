// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/jeranaias/driftline/internal/util"
)

// customExt is the only recognized extension for custom command files.
const customExt = ".md"

// argumentsToken is substituted verbatim in custom templates.
const argumentsToken = "$ARGUMENTS"

// =============================================================================
// CUSTOM COMMANDS
// =============================================================================

// CustomCommand is a user-authored command template loaded from the
// commands directory, invoked as /<name>.
type CustomCommand struct {
	// Name is the filename stem, without the leading slash.
	Name string

	// Template is the raw file content.
	Template string
}

// Alias returns the single token that invokes the command.
func (c *CustomCommand) Alias() string {
	return "/" + c.Name
}

// Description derives a summary from the template's first line.
func (c *CustomCommand) Description() string {
	first, _, _ := strings.Cut(c.Template, "\n")
	first = util.TruncateRunesNoEllipsis(first, 50)
	if first == "" {
		return "Custom command"
	}
	return "Custom: " + first + "..."
}

// Render substitutes every occurrence of $ARGUMENTS in the template.
// Plain literal replacement, no escaping.
func (c *CustomCommand) Render(arguments string) string {
	return strings.ReplaceAll(c.Template, argumentsToken, arguments)
}

// =============================================================================
// DISCOVERY
// =============================================================================

// loadCustomCommands scans dir for *.md files, non-recursively. A missing
// directory means zero custom commands. Stems starting with "_" are
// reserved and skipped, and built-in aliases always shadow a custom command
// with the same token. An unreadable file is reported through warn and the
// scan moves on.
func (r *Registry) loadCustomCommands(fs afero.Fs, dir string, warn WarnFunc) {
	if dir == "" {
		return
	}
	info, err := fs.Stat(dir)
	if err != nil || !info.IsDir() {
		return
	}

	// afero.ReadDir sorts by filename, so discovery order is stable
	// across runs of the same directory snapshot.
	entries, err := afero.ReadDir(fs, dir)
	if err != nil {
		if warn != nil {
			warn(dir, err)
		}
		return
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := filepath.Ext(entry.Name())
		if !strings.EqualFold(ext, customExt) {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), ext)
		if strings.HasPrefix(name, "_") {
			continue
		}
		if _, taken := r.aliasMap["/"+name]; taken {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		data, err := afero.ReadFile(fs, path)
		if err != nil {
			if warn != nil {
				warn(path, err)
			}
			continue
		}

		r.custom[name] = &CustomCommand{Name: name, Template: string(data)}
		r.customOrder = append(r.customOrder, name)
	}
}
