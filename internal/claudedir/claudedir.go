// Package claudedir provides constants and utilities for the .claude directory structure.
package claudedir

import "path/filepath"

const (
	// Dir is the name of the Claude settings directory.
	Dir = ".claude"

	// ClaudeShared is the shared Claude Code settings file name (inside .claude).
	ClaudeShared = "settings.json"

	// ClaudeLocal is the local Claude Code settings file name (inside .claude).
	ClaudeLocal = "settings.local.json"

	// ClaudioShared is the shared claudio settings file name (inside .claude).
	ClaudioShared = "claudio.settings.json"

	// ClaudioLocal is the local claudio settings file name (inside .claude).
	ClaudioLocal = "claudio.settings.local.json"

	// ToolConfigFile is claudio's own preferences file name (inside .claude).
	ToolConfigFile = "claudio.toml"
)

// Path returns the full path to a settings file within a base directory.
func Path(baseDir, file string) string {
	return filepath.Join(baseDir, Dir, file)
}

// DirPath returns the full path to the .claude directory within a base directory.
func DirPath(baseDir string) string {
	if baseDir == "" || baseDir == "." {
		return Dir
	}
	return filepath.Join(baseDir, Dir)
}

// UserSettingsPath returns the path to the persisted claudio user settings
// within a home directory.
func UserSettingsPath(homeDir string) string {
	return Path(homeDir, ClaudioShared)
}

// ToolConfigPath returns the path to claudio's own config file within a home directory.
func ToolConfigPath(homeDir string) string {
	return Path(homeDir, ToolConfigFile)
}
