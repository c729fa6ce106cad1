package settings

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/claudio-sh/claudio/internal/claudedir"
)

// DiscoverDirs resolves the project-scope and user-scope settings
// directories. The project scope comes from the enclosing git repository;
// when git is missing, fails, or reports nothing, the project scope is
// simply absent.
func DiscoverDirs() Dirs {
	var dirs Dirs
	if root := findGitRoot(); root != "" {
		dirs.Project = claudedir.DirPath(root)
	}
	if home, err := os.UserHomeDir(); err == nil {
		dirs.User = claudedir.DirPath(home)
	}
	return dirs
}

// findGitRoot returns the top-level directory of the enclosing git
// repository, or empty string when there is none.
func findGitRoot() string {
	if _, err := exec.LookPath("git"); err != nil {
		return ""
	}
	out, err := exec.Command("git", "rev-parse", "--show-toplevel").Output()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(out))
}

// Layers returns the settings layers for a (shared, local) filename pair,
// ordered from highest to lowest precedence: project-local, project-shared,
// user. Layers whose file is missing, unparseable, or empty are omitted.
func Layers(dirs Dirs, sharedName, localName string) []Layer {
	var layers []Layer

	appendLayer := func(label Label, dir, name string) {
		if dir == "" {
			return
		}
		path := filepath.Join(dir, name)
		data := loadJSON(path)
		if len(data) == 0 {
			return
		}
		layers = append(layers, Layer{Label: label, Path: path, Data: data})
	}

	appendLayer(LabelProjectLocal, dirs.Project, localName)
	appendLayer(LabelProjectShared, dirs.Project, sharedName)
	appendLayer(LabelUser, dirs.User, sharedName)

	return layers
}

// ClaudioLayers returns the layers of claudio's project configuration.
func ClaudioLayers(dirs Dirs) []Layer {
	return Layers(dirs, claudedir.ClaudioShared, claudedir.ClaudioLocal)
}

// ClaudeLayers returns the layers of the Claude Code configuration.
func ClaudeLayers(dirs Dirs) []Layer {
	return Layers(dirs, claudedir.ClaudeShared, claudedir.ClaudeLocal)
}

// loadJSON reads a settings file and collapses every failure to an empty
// object. A corrupt or half-written file must not block launching the
// delegate tool.
func loadJSON(path string) map[string]any {
	raw, err := os.ReadFile(path)
	if err != nil {
		log.Debug("settings file absent", "path", path)
		return nil
	}
	data, err := parseObject(raw)
	if err != nil {
		log.Debug("settings file unreadable, treating as empty", "path", path, "err", err)
		return nil
	}
	return data
}

// parseObject parses a JSON object. Kept separate from loadJSON so tests
// can observe the parse outcome that callers never see.
func parseObject(raw []byte) (map[string]any, error) {
	var data map[string]any
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, err
	}
	return data, nil
}
