// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupHome points DRIFTLINE_HOME at a temp directory and seeds it.
func setupHome(t *testing.T, configTOML string, commandFiles map[string]string) {
	t.Helper()
	home := t.TempDir()
	t.Setenv("DRIFTLINE_HOME", home)

	if configTOML != "" {
		require.NoError(t, os.WriteFile(filepath.Join(home, "config.toml"), []byte(configTOML), 0o600))
	}
	if len(commandFiles) > 0 {
		dir := filepath.Join(home, "commands")
		require.NoError(t, os.MkdirAll(dir, 0o755))
		for name, content := range commandFiles {
			require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
		}
	}
}

func runCLI(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errBuf bytes.Buffer
	code = Run(args, &out, &errBuf)
	return code, out.String(), errBuf.String()
}

func TestRunNoArgsPrintsUsage(t *testing.T) {
	setupHome(t, "", nil)

	code, stdout, _ := runCLI(t)
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "Usage:")
}

func TestRunUnknownCommand(t *testing.T) {
	setupHome(t, "", nil)

	code, _, stderr := runCLI(t, "frobnicate")
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, "unknown command")
}

func TestRunHelp(t *testing.T) {
	setupHome(t, "", map[string]string{"review.md": "Review $ARGUMENTS please"})

	code, stdout, _ := runCLI(t, "help")
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "### Commands")
	assert.Contains(t, stdout, "- `/help`: Show help message")
	assert.Contains(t, stdout, "### Custom Commands")
	assert.Contains(t, stdout, "- `/review`:")
}

func TestRunCommandsHonorsExclusions(t *testing.T) {
	setupHome(t, `excluded_commands = ["exit"]`, nil)

	code, stdout, _ := runCLI(t, "commands")
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "terminal-setup")
	assert.NotContains(t, stdout, "/exit")
}

func TestRunResolveBuiltin(t *testing.T) {
	setupHome(t, "", nil)

	code, stdout, _ := runCLI(t, "resolve", "/config", "dark")
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "built-in: config")
	assert.Contains(t, stdout, "args: dark")
}

func TestRunResolveCustomRendersTemplate(t *testing.T) {
	setupHome(t, "", map[string]string{"review.md": "Review $ARGUMENTS please"})

	code, stdout, _ := runCLI(t, "resolve", "/review", "PR#1")
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "custom: review")
	assert.Contains(t, stdout, "Review PR#1 please")
}

func TestRunResolveChatText(t *testing.T) {
	setupHome(t, "", nil)

	code, stdout, _ := runCLI(t, "resolve", "just", "chatting")
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "no command matched")
}

func TestRunResolveMissingInput(t *testing.T) {
	setupHome(t, "", nil)

	code, _, stderr := runCLI(t, "resolve")
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, "requires an input line")
}
