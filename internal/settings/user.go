package settings

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/claudio-sh/claudio/internal/claudedir"
)

// lastProjectKey is the one key claudio itself maintains in the user
// settings file. Everything else in the file is preserved as-is.
const lastProjectKey = "lastProject"

// LoadUserSettings reads the persisted user-level claudio settings from the
// given user settings directory (~/.claude). A missing or unreadable file
// yields an empty map.
func LoadUserSettings(userDir string) map[string]any {
	if userDir == "" {
		return map[string]any{}
	}
	data := loadJSON(filepath.Join(userDir, claudedir.ClaudioShared))
	if data == nil {
		return map[string]any{}
	}
	return data
}

// SaveUserSettings writes the user settings file with 2-space indentation
// and a trailing newline, creating the parent directory on first write.
func SaveUserSettings(userDir string, userSettings map[string]any) error {
	if userDir == "" {
		return fmt.Errorf("user settings dir is empty")
	}
	path := filepath.Join(userDir, claudedir.ClaudioShared)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create settings dir: %w", err)
	}
	data, err := json.MarshalIndent(userSettings, "", "  ")
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	return nil
}

// LastProject returns the persisted last-used project name, if any.
func LastProject(userSettings map[string]any) string {
	name, _ := userSettings[lastProjectKey].(string)
	return name
}

// RememberProject records name as the last-used project and persists the
// settings.
func RememberProject(userDir string, userSettings map[string]any, name string) error {
	if userSettings == nil {
		userSettings = map[string]any{}
	}
	userSettings[lastProjectKey] = name
	return SaveUserSettings(userDir, userSettings)
}
