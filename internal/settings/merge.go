package settings

// Project is one named entry from a claudio config. Entries keep their raw
// decoded form so fields this tool does not understand survive the merge
// untouched.
type Project map[string]any

// Name returns the project's name, or empty string when the entry has no
// valid name.
func (p Project) Name() string {
	name, _ := p["name"].(string)
	return name
}

// Env returns the project's environment overlay. Non-string values are
// dropped here; ValidateProjects is the gate that reports them.
func (p Project) Env() map[string]string {
	raw, ok := p["env"].(map[string]any)
	if !ok {
		return nil
	}
	return stringMap(raw)
}

// Merged is the combined project list. Empty signals "no usable config".
type Merged struct {
	Projects []Project
}

// Empty reports whether no usable claudio config was found.
func (m Merged) Empty() bool {
	return len(m.Projects) == 0
}

// Lookup returns the project with the given name.
func (m Merged) Lookup(name string) (Project, bool) {
	for _, p := range m.Projects {
		if p.Name() == name {
			return p, true
		}
	}
	return nil, false
}

// Config returns the merged result as a plain decoded JSON object, the
// shape ValidateProjects expects.
func (m Merged) Config() map[string]any {
	if m.Empty() {
		return map[string]any{}
	}
	items := make([]any, len(m.Projects))
	for i, p := range m.Projects {
		items[i] = map[string]any(p)
	}
	return map[string]any{"projects": items}
}

// MergeProjects combines the ordered claudio layers (highest precedence
// first) into a single project list.
//
// The highest layer that carries a "projects" key is the defining layer: it
// alone decides which projects exist and in what order. Lower layers may
// only enrich entries the defining layer names. Fields merge shallowly per
// project, except "env", which merges key by key so a user-level env
// template survives a partial project-level override.
func MergeProjects(layers []Layer) Merged {
	defining := -1
	for i, layer := range layers {
		if _, ok := layer.Data["projects"]; ok {
			defining = i
			break
		}
	}
	if defining < 0 {
		return Merged{}
	}

	// Fold from lowest to highest precedence so a later (higher) write wins
	// both for top-level fields and for individual env keys.
	acc := make(map[string]Project)
	for i := len(layers) - 1; i >= 0; i-- {
		for _, entry := range projectEntries(layers[i].Data) {
			name := entry.Name()
			if name == "" {
				continue
			}
			acc[name] = overlayProject(acc[name], entry)
		}
	}

	// Membership and order come from the defining layer alone. Names the
	// accumulator never saw are skipped rather than failed.
	var result []Project
	seen := make(map[string]bool)
	for _, entry := range projectEntries(layers[defining].Data) {
		name := entry.Name()
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		if merged, ok := acc[name]; ok {
			result = append(result, merged)
		}
	}

	return Merged{Projects: result}
}

// projectEntries extracts the object entries of a layer's "projects" list.
// Anything that is not a list, and any element that is not an object, is
// ignored; the merge is permissive and validation happens elsewhere.
func projectEntries(data map[string]any) []Project {
	raw, ok := data["projects"].([]any)
	if !ok {
		return nil
	}
	entries := make([]Project, 0, len(raw))
	for _, item := range raw {
		if obj, ok := item.(map[string]any); ok {
			entries = append(entries, Project(obj))
		}
	}
	return entries
}

// overlayProject merges next (higher precedence) onto base. Top-level
// fields overwrite shallowly; when both sides carry an env object, the env
// maps merge key by key instead of the higher map discarding the lower one.
func overlayProject(base, next Project) Project {
	out := make(Project, len(base)+len(next))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range next {
		if k == "env" {
			if merged, ok := mergeEnvObjects(out["env"], v); ok {
				out["env"] = merged
				continue
			}
		}
		out[k] = v
	}
	return out
}

// mergeEnvObjects deep-merges two env values when both are objects.
// Keys from next win on conflict.
func mergeEnvObjects(existing, next any) (map[string]any, bool) {
	base, okBase := existing.(map[string]any)
	incoming, okNext := next.(map[string]any)
	if !okBase || !okNext {
		return nil, false
	}
	merged := make(map[string]any, len(base)+len(incoming))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range incoming {
		merged[k] = v
	}
	return merged, true
}

// stringMap keeps the string-valued entries of a decoded JSON object.
func stringMap(raw map[string]any) map[string]string {
	out := make(map[string]string, len(raw))
	for k, v := range raw {
		if s, ok := v.(string); ok {
			out[k] = s
		}
	}
	return out
}
