// Package config tests tool configuration loading.
package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaults(t *testing.T) {
	cfg := &Config{}
	setDefaults(cfg)

	if cfg.Binary != DefaultBinary {
		t.Errorf("Binary: got %q, want %q", cfg.Binary, DefaultBinary)
	}
	if cfg.LogLevel != DefaultLogLevel {
		t.Errorf("LogLevel: got %q, want %q", cfg.LogLevel, DefaultLogLevel)
	}
	if cfg.NoInput {
		t.Error("NoInput: got true, want false")
	}
}

func TestLoadConfigFile(t *testing.T) {
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "claudio.toml")

	content := []byte(`binary = "claude-custom"
log_level = "debug"
no_input = true
`)
	if err := os.WriteFile(configFile, content, 0644); err != nil {
		t.Fatal(err)
	}

	cfg := &Config{}
	setDefaults(cfg)
	if err := loadConfigFile(cfg, configFile); err != nil {
		t.Fatalf("loadConfigFile: %v", err)
	}

	if cfg.Binary != "claude-custom" {
		t.Errorf("Binary: got %q, want claude-custom", cfg.Binary)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel: got %q, want debug", cfg.LogLevel)
	}
	if !cfg.NoInput {
		t.Error("NoInput: got false, want true")
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("CLAUDIO_BIN", "claude-env")
	t.Setenv("CLAUDIO_LOG_LEVEL", "info")
	t.Setenv("CLAUDIO_NO_INPUT", "yes")

	cfg := &Config{}
	setDefaults(cfg)
	loadFromEnv(cfg)

	if cfg.Binary != "claude-env" {
		t.Errorf("Binary: got %q, want claude-env", cfg.Binary)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel: got %q, want info", cfg.LogLevel)
	}
	if !cfg.NoInput {
		t.Error("NoInput: got false, want true")
	}
}

func TestBoolFromString(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"1", true},
		{"true", true},
		{"TRUE", true},
		{"yes", true},
		{"on", true},
		{"0", false},
		{"false", false},
		{"no", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := boolFromString(tt.input); got != tt.want {
				t.Errorf("boolFromString(%q): got %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
