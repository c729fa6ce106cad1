package settings

// HighestEnv scans Claude Code layers from highest to lowest precedence and
// returns the first top-level "env" object found, along with the path of
// the file it came from. It is the base onto which a selected project's own
// env is overlaid; project keys win on conflict.
//
// Layers whose "env" field is missing or not an object are passed over.
// When no layer qualifies, the result is an empty map with no source path.
func HighestEnv(layers []Layer) (string, map[string]string) {
	for _, layer := range layers {
		raw, ok := layer.Data["env"].(map[string]any)
		if !ok {
			continue
		}
		return layer.Path, stringMap(raw)
	}
	return "", map[string]string{}
}
