package bundle

import "path/filepath"

// Naming constants for the OpenCode output layout.
const (
	// HiddenDirName is the hidden project directory OpenCode reads from.
	HiddenDirName = ".opencode"

	// ConfigFileName is the OpenCode configuration file name.
	ConfigFileName = "opencode.json"

	agentsDirName  = "agents"
	pluginsDirName = "plugins"
	skillsDirName  = "skills"
)

// Layout holds the resolved output locations for one bundle write.
type Layout struct {
	// Root is the output root as given by the caller.
	Root string

	// ConfigPath is where opencode.json is written. It is always
	// directly under Root, regardless of layout mode.
	ConfigPath string

	AgentsDir  string
	PluginsDir string
	SkillsDir  string
}

// ResolveLayout decides the concrete output locations for the given
// output root. The rule is a pure function of the root's basename:
//
// If the root is itself named ".opencode", it is treated as the hidden
// directory and agents/plugins/skills become its direct subdirectories.
// Otherwise the root is treated as a project root and those directories
// nest under "<root>/.opencode/", with the config file still at the
// project root.
//
// Any string input is accepted; malformed paths surface later as
// filesystem errors from the writer.
func ResolveLayout(outputRoot string) Layout {
	base := outputRoot
	if filepath.Base(outputRoot) != HiddenDirName {
		base = filepath.Join(outputRoot, HiddenDirName)
	}

	return Layout{
		Root:       outputRoot,
		ConfigPath: filepath.Join(outputRoot, ConfigFileName),
		AgentsDir:  filepath.Join(base, agentsDirName),
		PluginsDir: filepath.Join(base, pluginsDirName),
		SkillsDir:  filepath.Join(base, skillsDirName),
	}
}

// AgentPath returns the output path for an agent with the given name.
// Agent files always receive a ".md" extension.
func (l Layout) AgentPath(name string) string {
	return filepath.Join(l.AgentsDir, name+".md")
}

// PluginPath returns the output path for a plugin with the given name.
// The name is used verbatim; no extension is appended.
func (l Layout) PluginPath(name string) string {
	return filepath.Join(l.PluginsDir, name)
}

// SkillPath returns the destination directory for a skill with the
// given name.
func (l Layout) SkillPath(name string) string {
	return filepath.Join(l.SkillsDir, name)
}
