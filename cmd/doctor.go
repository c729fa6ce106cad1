package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/claudio-sh/claudio/internal/claudedir"
	"github.com/claudio-sh/claudio/internal/config"
	"github.com/claudio-sh/claudio/internal/settings"
)

// doctorCommand checks the settings hierarchy, config validity, and the
// delegate binary.
func doctorCommand(cfg *config.Config) error {
	fmt.Println("Claudio Doctor")
	fmt.Println("==============")
	fmt.Println()

	allOK := true
	dirs := settings.DiscoverDirs()

	fmt.Println("Scopes:")
	if dirs.Project != "" {
		fmt.Printf("  ✅ Project: %s\n", dirs.Project)
	} else {
		fmt.Println("  ⚠️  Project: not inside a git repository (project layers skipped)")
	}
	if dirs.User != "" {
		fmt.Printf("  ✅ User: %s\n", dirs.User)
	} else {
		fmt.Println("  ❌ User: home directory could not be resolved")
		allOK = false
	}
	fmt.Println()

	fmt.Println("Claudio settings layers:")
	claudioLayers := settings.ClaudioLayers(dirs)
	reportLayers(dirs, claudedir.ClaudioShared, claudedir.ClaudioLocal, claudioLayers)
	fmt.Println()

	fmt.Println("Claude settings layers:")
	claudeLayers := settings.ClaudeLayers(dirs)
	reportLayers(dirs, claudedir.ClaudeShared, claudedir.ClaudeLocal, claudeLayers)
	fmt.Println()

	fmt.Println("Merged config:")
	merged := settings.MergeProjects(claudioLayers)
	if merged.Empty() {
		fmt.Println("  ⚠️  No projects configured (claudio will launch the delegate directly)")
	} else {
		projects, err := settings.ValidateProjects(merged.Config())
		if err != nil {
			fmt.Printf("  ❌ Invalid: %v\n", err)
			allOK = false
		} else {
			fmt.Printf("  ✅ %d project(s)\n", len(projects))
			for _, p := range projects {
				fmt.Printf("     - %s (%d env key(s))\n", p.Name(), len(p.Env()))
			}
		}
	}
	if path, baseEnv := settings.HighestEnv(claudeLayers); path != "" {
		fmt.Printf("  ✅ Base env: %d key(s) from %s\n", len(baseEnv), path)
	} else {
		fmt.Println("  ⚠️  Base env: none")
	}
	fmt.Println()

	fmt.Println("Delegate:")
	if resolved, err := exec.LookPath(cfg.Binary); err == nil {
		fmt.Printf("  ✅ %s (found in PATH: %s)\n", cfg.Binary, resolved)
	} else {
		fmt.Printf("  ❌ %s: %v\n", cfg.Binary, err)
		allOK = false
	}
	fmt.Println()

	if allOK {
		fmt.Println("✅ All checks passed!")
		return nil
	}
	fmt.Println("⚠️  Some checks failed. claudio may not function correctly.")
	return fmt.Errorf("doctor checks failed")
}

// reportLayers prints the state of every candidate file of a settings
// hierarchy: loaded, absent, or present but ignored.
func reportLayers(dirs settings.Dirs, sharedName, localName string, loaded []settings.Layer) {
	byPath := make(map[string]settings.Layer, len(loaded))
	for _, layer := range loaded {
		byPath[layer.Path] = layer
	}

	report := func(label settings.Label, dir, name string) {
		if dir == "" {
			return
		}
		path := filepath.Join(dir, name)
		if _, ok := byPath[path]; ok {
			fmt.Printf("  ✅ %-14s %s\n", label, path)
			return
		}
		if _, err := os.Stat(path); err == nil {
			fmt.Printf("  ⚠️  %-14s %s (empty or invalid JSON, ignored)\n", label, path)
			return
		}
		fmt.Printf("     %-14s %s (not present)\n", label, path)
	}

	report(settings.LabelProjectLocal, dirs.Project, localName)
	report(settings.LabelProjectShared, dirs.Project, sharedName)
	report(settings.LabelUser, dirs.User, sharedName)
}
