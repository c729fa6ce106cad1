package launch

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/claudio-sh/claudio/internal/settings"
)

func TestArgsNoEnvPassesThrough(t *testing.T) {
	project := settings.Project{"name": "plain"}
	forwarded := []string{"--resume", "-p", "hello"}

	args, err := Args(project, map[string]string{"BASE": "v"}, forwarded)
	if err != nil {
		t.Fatalf("Args: %v", err)
	}
	if !reflect.DeepEqual(args, forwarded) {
		t.Errorf("args: got %v, want %v", args, forwarded)
	}
}

func TestArgsInjectsSettings(t *testing.T) {
	project := settings.Project{
		"name": "api",
		"env":  map[string]any{"API_KEY": "sk-1"},
	}

	args, err := Args(project, nil, []string{"--resume"})
	if err != nil {
		t.Fatalf("Args: %v", err)
	}
	if len(args) != 3 || args[0] != "--settings" || args[2] != "--resume" {
		t.Fatalf("args: got %v", args)
	}

	var payload struct {
		Env map[string]string `json:"env"`
	}
	if err := json.Unmarshal([]byte(args[1]), &payload); err != nil {
		t.Fatalf("payload is not valid JSON: %v", err)
	}
	if payload.Env["API_KEY"] != "sk-1" {
		t.Errorf("payload env: got %v", payload.Env)
	}
}

func TestArgsProjectEnvWinsOverBase(t *testing.T) {
	project := settings.Project{
		"name": "api",
		"env":  map[string]any{"SHARED": "project", "ONLY_PROJECT": "p"},
	}
	base := map[string]string{"SHARED": "base", "ONLY_BASE": "b"}

	args, err := Args(project, base, nil)
	if err != nil {
		t.Fatalf("Args: %v", err)
	}

	var payload struct {
		Env map[string]string `json:"env"`
	}
	if err := json.Unmarshal([]byte(args[1]), &payload); err != nil {
		t.Fatal(err)
	}

	want := map[string]string{"SHARED": "project", "ONLY_PROJECT": "p", "ONLY_BASE": "b"}
	if !reflect.DeepEqual(payload.Env, want) {
		t.Errorf("merged env: got %v, want %v", payload.Env, want)
	}
}

func TestArgsDoesNotMutateBase(t *testing.T) {
	project := settings.Project{
		"name": "api",
		"env":  map[string]any{"K": "project"},
	}
	base := map[string]string{"K": "base"}

	if _, err := Args(project, base, nil); err != nil {
		t.Fatal(err)
	}
	if base["K"] != "base" {
		t.Errorf("base env mutated: %v", base)
	}
}
