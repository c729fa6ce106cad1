package cmd

import (
	"fmt"

	"github.com/claudio-sh/claudio/internal/settings"
)

// projectsCommand lists the merged projects in their configured order.
func projectsCommand() error {
	dirs := settings.DiscoverDirs()
	merged := settings.MergeProjects(settings.ClaudioLayers(dirs))
	if merged.Empty() {
		fmt.Println("No projects configured.")
		return nil
	}

	projects, err := settings.ValidateProjects(merged.Config())
	if err != nil {
		return err
	}

	last := settings.LastProject(settings.LoadUserSettings(dirs.User))
	for i, p := range projects {
		marker := " "
		if p.Name() == last {
			marker = "*"
		}
		line := fmt.Sprintf("  %s [%d] %s", marker, i+1, p.Name())
		if n := len(p.Env()); n > 0 {
			line += fmt.Sprintf(" (%d env key(s))", n)
		}
		fmt.Println(line)
	}
	return nil
}
