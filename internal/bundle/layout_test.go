package bundle

import (
	"path/filepath"
	"testing"
)

func TestResolveLayout(t *testing.T) {
	tests := []struct {
		name       string
		outputRoot string
		want       Layout
	}{
		{
			name:       "hidden directory root",
			outputRoot: "/tmp/proj/.opencode",
			want: Layout{
				Root:       "/tmp/proj/.opencode",
				ConfigPath: "/tmp/proj/.opencode/opencode.json",
				AgentsDir:  "/tmp/proj/.opencode/agents",
				PluginsDir: "/tmp/proj/.opencode/plugins",
				SkillsDir:  "/tmp/proj/.opencode/skills",
			},
		},
		{
			name:       "project root",
			outputRoot: "/tmp/proj",
			want: Layout{
				Root:       "/tmp/proj",
				ConfigPath: "/tmp/proj/opencode.json",
				AgentsDir:  "/tmp/proj/.opencode/agents",
				PluginsDir: "/tmp/proj/.opencode/plugins",
				SkillsDir:  "/tmp/proj/.opencode/skills",
			},
		},
		{
			name:       "relative project root",
			outputRoot: "out",
			want: Layout{
				Root:       "out",
				ConfigPath: filepath.Join("out", "opencode.json"),
				AgentsDir:  filepath.Join("out", ".opencode", "agents"),
				PluginsDir: filepath.Join("out", ".opencode", "plugins"),
				SkillsDir:  filepath.Join("out", ".opencode", "skills"),
			},
		},
		{
			name:       "relative hidden root",
			outputRoot: ".opencode",
			want: Layout{
				Root:       ".opencode",
				ConfigPath: filepath.Join(".opencode", "opencode.json"),
				AgentsDir:  filepath.Join(".opencode", "agents"),
				PluginsDir: filepath.Join(".opencode", "plugins"),
				SkillsDir:  filepath.Join(".opencode", "skills"),
			},
		},
		{
			name:       "directory merely containing opencode in the name",
			outputRoot: "/srv/opencode",
			want: Layout{
				Root:       "/srv/opencode",
				ConfigPath: "/srv/opencode/opencode.json",
				AgentsDir:  "/srv/opencode/.opencode/agents",
				PluginsDir: "/srv/opencode/.opencode/plugins",
				SkillsDir:  "/srv/opencode/.opencode/skills",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveLayout(tt.outputRoot)
			if got != tt.want {
				t.Errorf("ResolveLayout(%q) = %+v, want %+v", tt.outputRoot, got, tt.want)
			}
		})
	}
}

func TestLayout_AgentPath(t *testing.T) {
	l := ResolveLayout("/tmp/proj/.opencode")
	want := "/tmp/proj/.opencode/agents/lint.md"
	if got := l.AgentPath("lint"); got != want {
		t.Errorf("AgentPath() = %q, want %q", got, want)
	}
}

func TestLayout_PluginPath_NoExtensionAppended(t *testing.T) {
	l := ResolveLayout("/tmp/proj")
	want := "/tmp/proj/.opencode/plugins/hooks.ts"
	if got := l.PluginPath("hooks.ts"); got != want {
		t.Errorf("PluginPath() = %q, want %q", got, want)
	}
}

func TestLayout_SkillPath(t *testing.T) {
	l := ResolveLayout("/tmp/proj")
	want := "/tmp/proj/.opencode/skills/pest"
	if got := l.SkillPath("pest"); got != want {
		t.Errorf("SkillPath() = %q, want %q", got, want)
	}
}
