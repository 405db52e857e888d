// Package bundle defines the OpenCode bundle descriptor and materializes
// it onto the filesystem in the OpenCode directory layout.
package bundle

// Agent is a named block of prompt text destined for a markdown file
// in the agents directory.
type Agent struct {
	Name    string
	Content string
}

// Plugin is a named text artifact written verbatim under the plugins
// directory. The name is used as the filename as-is, so it is expected
// to carry its own extension (e.g. "hooks.ts").
type Plugin struct {
	Name    string
	Content string
}

// Skill identifies a source directory to be copied recursively into
// the output skills directory under the given name.
type Skill struct {
	Name      string
	SourceDir string
}

// Bundle describes everything to be written for one generation pass.
// It is constructed by the caller, consumed once, and owns no state
// beyond this invocation.
//
// Ordering within the slices is preserved but carries no semantic
// meaning; name uniqueness is the caller's responsibility.
type Bundle struct {
	// Config is serialized verbatim as JSON to opencode.json.
	Config map[string]any

	Agents  []Agent
	Plugins []Plugin
	Skills  []Skill
}
