// Package launch builds the delegate command invocation and hands the
// process over to it.
package launch

import (
	"encoding/json"
	"fmt"

	"github.com/claudio-sh/claudio/internal/settings"
)

// Args builds the argument list for the delegate command. When the selected
// project carries an env overlay, it is merged onto baseEnv (project keys
// win) and injected as a --settings payload ahead of the forwarded
// arguments. A project without env adds nothing.
func Args(project settings.Project, baseEnv map[string]string, forwarded []string) ([]string, error) {
	projectEnv := project.Env()
	if len(projectEnv) == 0 {
		return forwarded, nil
	}

	merged := make(map[string]string, len(baseEnv)+len(projectEnv))
	for k, v := range baseEnv {
		merged[k] = v
	}
	for k, v := range projectEnv {
		merged[k] = v
	}

	payload, err := json.Marshal(map[string]any{"env": merged})
	if err != nil {
		return nil, fmt.Errorf("encode settings payload: %w", err)
	}

	args := make([]string, 0, len(forwarded)+2)
	args = append(args, "--settings", string(payload))
	return append(args, forwarded...), nil
}
