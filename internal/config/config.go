// Package config handles claudio's own tool preferences and defaults.
//
// This is the tool's ambient configuration (which binary to launch, log
// verbosity), not the layered project configuration that package settings
// owns. Project config is JSON by contract; tool preferences follow the
// usual dotfile convention of a small TOML file.
package config

// Default values.
const (
	DefaultBinary   = "claude"
	DefaultLogLevel = "warn"
)

// Config holds the full tool configuration for claudio.
type Config struct {
	// Binary is the delegate command to launch.
	Binary string `toml:"binary"`

	// LogLevel controls diagnostic output (debug, info, warn, error).
	LogLevel string `toml:"log_level"`

	// NoInput disables the interactive picker; selection falls back to the
	// last-used project, then the first project.
	NoInput bool `toml:"no_input"`
}

// setDefaults applies default values to the config.
func setDefaults(cfg *Config) {
	cfg.Binary = DefaultBinary
	cfg.LogLevel = DefaultLogLevel
}
