package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/claudio-sh/claudio/internal/claudedir"
)

// Load builds the tool configuration from its sources in priority order:
//
//  1. Defaults
//  2. User config file (~/.claude/claudio.toml), when present
//  3. Environment variables (CLAUDIO_*)
//
// Command-line flags are applied by the caller on top of the result.
func Load() (*Config, error) {
	cfg := &Config{}
	setDefaults(cfg)

	if path := findUserConfigFile(); path != "" {
		if err := loadConfigFile(cfg, path); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", path, err)
		}
	}

	loadFromEnv(cfg)
	return cfg, nil
}

// findUserConfigFile looks for claudio's own config file under the user's
// home directory. Returns empty string when it does not exist.
func findUserConfigFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	path := claudedir.ToolConfigPath(home)
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}

// loadConfigFile loads TOML config from the given file.
func loadConfigFile(cfg *Config, path string) error {
	_, err := toml.DecodeFile(path, cfg)
	return err
}

// loadFromEnv overrides config from environment variables.
func loadFromEnv(cfg *Config) {
	if v := os.Getenv("CLAUDIO_BIN"); v != "" {
		cfg.Binary = v
	}
	if v := os.Getenv("CLAUDIO_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("CLAUDIO_NO_INPUT"); v != "" {
		cfg.NoInput = boolFromString(v)
	}
}

// boolFromString parses a boolean from a string.
func boolFromString(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "1" || s == "true" || s == "yes" || s == "on"
}
