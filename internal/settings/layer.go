package settings

// Label identifies which level of the settings hierarchy a layer came from.
type Label string

const (
	// LabelProjectLocal is the project's local (uncommitted) settings file.
	LabelProjectLocal Label = "project-local"
	// LabelProjectShared is the project's shared settings file.
	LabelProjectShared Label = "project-shared"
	// LabelUser is the user-level settings file under the home directory.
	LabelUser Label = "user"
)

// Layer is one settings file's parsed contents plus its precedence label.
// Layers are immutable once created and ordered highest to lowest
// precedence by Layers.
type Layer struct {
	Label Label
	Path  string
	Data  map[string]any
}

// Dirs holds the resolved settings directories. Project is empty when the
// working directory is not inside a version-controlled project.
type Dirs struct {
	Project string
	User    string
}
