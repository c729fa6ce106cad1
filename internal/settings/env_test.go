package settings

import (
	"reflect"
	"testing"
)

func TestHighestEnvPicksHighestLayer(t *testing.T) {
	layers := []Layer{
		{Label: LabelProjectLocal, Path: "local.json", Data: map[string]any{"env": map[string]any{"K": "local"}}},
		{Label: LabelUser, Path: "user.json", Data: map[string]any{"env": map[string]any{"K": "user", "U": "only"}}},
	}

	path, env := HighestEnv(layers)
	if path != "local.json" {
		t.Errorf("path: got %q, want local.json", path)
	}
	// No merging across layers here: the highest env wins wholesale.
	want := map[string]string{"K": "local"}
	if !reflect.DeepEqual(env, want) {
		t.Errorf("env: got %v, want %v", env, want)
	}
}

func TestHighestEnvSkipsNonObjectEnv(t *testing.T) {
	layers := []Layer{
		{Label: LabelProjectLocal, Path: "local.json", Data: map[string]any{"env": "not an object"}},
		{Label: LabelUser, Path: "user.json", Data: map[string]any{"env": map[string]any{"K": "user"}}},
	}

	path, env := HighestEnv(layers)
	if path != "user.json" {
		t.Errorf("path: got %q, want user.json", path)
	}
	if env["K"] != "user" {
		t.Errorf("env: got %v", env)
	}
}

func TestHighestEnvNoneQualifies(t *testing.T) {
	layers := []Layer{
		{Label: LabelUser, Path: "user.json", Data: map[string]any{"permissions": map[string]any{}}},
	}

	path, env := HighestEnv(layers)
	if path != "" {
		t.Errorf("path: got %q, want empty", path)
	}
	if env == nil || len(env) != 0 {
		t.Errorf("env: got %v, want empty map", env)
	}
}

func TestHighestEnvDropsNonStringValues(t *testing.T) {
	layers := []Layer{
		{Label: LabelUser, Path: "user.json", Data: map[string]any{
			"env": map[string]any{"S": "ok", "N": float64(3), "B": true},
		}},
	}

	_, env := HighestEnv(layers)
	want := map[string]string{"S": "ok"}
	if !reflect.DeepEqual(env, want) {
		t.Errorf("env: got %v, want %v", env, want)
	}
}
