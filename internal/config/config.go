// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading for driftline.
//
// Configuration lives in TOML at ~/.driftline/config.toml, with built-in
// defaults and a DRIFTLINE_HOME environment override for the whole
// configuration directory. A missing config file is not an error.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// =============================================================================
// CONFIG STRUCTURE
// =============================================================================

// Config holds the driftline configuration consumed by the command registry
// and its shell.
type Config struct {
	// ExcludedCommands lists built-in command keys (not aliases) to omit
	// from the registry, e.g. ["terminal-setup"].
	ExcludedCommands []string `toml:"excluded_commands"`

	// CommandsDir is the directory scanned for custom command templates.
	// Empty means <config dir>/commands.
	CommandsDir string `toml:"commands_dir"`

	// WarnSkippedCommands prints a diagnostic to stderr when a custom
	// command file cannot be read. Off by default; skips are silent.
	WarnSkippedCommands bool `toml:"warn_skipped_commands"`
}

// Default returns the built-in default configuration.
func Default() *Config {
	return &Config{}
}

// =============================================================================
// CONFIG PATH HELPERS
// =============================================================================

// ConfigDir returns the driftline configuration directory path.
// DRIFTLINE_HOME overrides the default ~/.driftline.
func ConfigDir() (string, error) {
	if dir := os.Getenv("DRIFTLINE_HOME"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".driftline"), nil
}

// ConfigPath returns the path to the TOML config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// ResolveCommandsDir returns the custom-command directory for the config,
// defaulting to <config dir>/commands when unset.
func (c *Config) ResolveCommandsDir() (string, error) {
	if c.CommandsDir != "" {
		return c.CommandsDir, nil
	}
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "commands"), nil
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load loads configuration from the config file, falling back to defaults
// when the file does not exist.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return Default(), nil
	}
	if _, err := os.Stat(path); err != nil {
		return Default(), nil
	}
	return LoadFromPath(path)
}

// LoadFromPath loads configuration from an explicit TOML file path.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to load config %s: %w", path, err)
	}
	return cfg, nil
}
