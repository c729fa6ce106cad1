package settings

import (
	_ "embed"
	"fmt"
	"strconv"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed claudio.schema.json
var projectsSchemaJSON string

// ConfigError reports a structurally invalid claudio config. It is the only
// error the settings package raises: loading and merging are permissive,
// validation is the sole gate.
type ConfigError struct {
	Path    string // dot-notation location, e.g. "projects[0].name"
	Message string
}

func (e *ConfigError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Path, e.Message)
	}
	return e.Message
}

var compileProjectsSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("claudio.schema.json", strings.NewReader(projectsSchemaJSON)); err != nil {
		return nil, err
	}
	return compiler.Compile("claudio.schema.json")
})

// ValidateProjects checks a claudio config object against the structural
// rules for project lists and returns the list unchanged. It never
// normalizes: validation is a guard, not a transform.
//
// The rules: "projects" must be a non-empty array of objects, each with a
// non-empty string "name"; "env", when present, must be an object with only
// string values.
func ValidateProjects(data map[string]any) ([]Project, error) {
	schema, err := compileProjectsSchema()
	if err != nil {
		// Schema is embedded, so this should not happen; fall back to the
		// hand-rolled checks rather than failing every config.
		if err := validateProjectsMinimal(data); err != nil {
			return nil, err
		}
		return projectEntries(data), nil
	}

	if err := schema.Validate(data); err != nil {
		return nil, configErrorFromSchema(err)
	}
	return projectEntries(data), nil
}

// configErrorFromSchema converts a jsonschema validation error to a
// ConfigError, picking the first leaf cause for a usable location.
func configErrorFromSchema(err error) error {
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return &ConfigError{Message: err.Error()}
	}
	if leaf := firstLeafCause(ve); leaf != nil {
		return &ConfigError{
			Path:    jsonPointerToPath(leaf.InstanceLocation),
			Message: leaf.Message,
		}
	}
	return &ConfigError{Message: ve.Message}
}

func firstLeafCause(ve *jsonschema.ValidationError) *jsonschema.ValidationError {
	if ve == nil {
		return nil
	}
	if len(ve.Causes) == 0 {
		return ve
	}
	for _, cause := range ve.Causes {
		if leaf := firstLeafCause(cause); leaf != nil {
			return leaf
		}
	}
	return ve
}

// validateProjectsMinimal mirrors the schema rules without the schema.
func validateProjectsMinimal(data map[string]any) error {
	rawList, ok := data["projects"].([]any)
	if !ok || len(rawList) == 0 {
		return &ConfigError{Message: "'projects' must be a non-empty array"}
	}
	for i, item := range rawList {
		obj, ok := item.(map[string]any)
		if !ok {
			return &ConfigError{Path: fmt.Sprintf("projects[%d]", i), Message: "must be an object"}
		}
		if name, ok := obj["name"].(string); !ok || name == "" {
			return &ConfigError{Path: fmt.Sprintf("projects[%d].name", i), Message: "must be a non-empty string"}
		}
		rawEnv, present := obj["env"]
		if !present {
			continue
		}
		env, ok := rawEnv.(map[string]any)
		if !ok {
			return &ConfigError{Path: fmt.Sprintf("projects[%d].env", i), Message: "must be an object"}
		}
		for k, v := range env {
			if _, ok := v.(string); !ok {
				return &ConfigError{Path: fmt.Sprintf("projects[%d].env.%s", i, k), Message: "must be a string"}
			}
		}
	}
	return nil
}

// jsonPointerToPath converts a JSON Pointer (RFC 6901) to a dot-notation
// path: "/projects/0/name" becomes "projects[0].name".
func jsonPointerToPath(ptr string) string {
	ptr = strings.TrimPrefix(ptr, "#")
	ptr = strings.TrimPrefix(ptr, "/")
	if ptr == "" {
		return ""
	}

	var path string
	for _, part := range strings.Split(ptr, "/") {
		part = strings.ReplaceAll(part, "~1", "/")
		part = strings.ReplaceAll(part, "~0", "~")
		if part == "" {
			continue
		}
		if idx, err := strconv.Atoi(part); err == nil {
			path += fmt.Sprintf("[%d]", idx)
			continue
		}
		if path == "" {
			path = part
		} else {
			path += "." + part
		}
	}
	return path
}
