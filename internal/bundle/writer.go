package bundle

import (
	"github.com/opencode-kit/ocbundle/internal/errors"
	"github.com/opencode-kit/ocbundle/internal/paths"
	"github.com/opencode-kit/ocbundle/pkg/fileutil"
)

// Write materializes the bundle under outputRoot, resolving the
// directory layout via ResolveLayout.
//
// The root directory is created first; after that every file write is
// independent. Agent and plugin files are overwritten in place, so
// re-running with the same bundle yields identical output. There is no
// rollback: a failure partway through leaves previously written files
// on disk.
//
// The plugins and skills steps are skipped entirely when their lists
// are empty, so no empty directories are created for them.
func Write(outputRoot string, b *Bundle) error {
	layout := ResolveLayout(outputRoot)

	if err := paths.EnsureDir(layout.Root, 0); err != nil {
		return errors.Wrapf(err, "creating output root %s", layout.Root)
	}

	if err := fileutil.AtomicWriteJSON(layout.ConfigPath, b.Config); err != nil {
		return errors.Wrap(err, "writing opencode.json")
	}

	for _, agent := range b.Agents {
		path := layout.AgentPath(agent.Name)
		if err := fileutil.WriteFileEnsure(path, []byte(agent.Content+"\n"), 0o644); err != nil {
			return errors.Wrapf(err, "writing agent %q", agent.Name)
		}
	}

	for _, plugin := range b.Plugins {
		path := layout.PluginPath(plugin.Name)
		if err := fileutil.WriteFileEnsure(path, []byte(plugin.Content+"\n"), 0o644); err != nil {
			return errors.Wrapf(err, "writing plugin %q", plugin.Name)
		}
	}

	for _, skill := range b.Skills {
		if err := fileutil.CopyDir(skill.SourceDir, layout.SkillPath(skill.Name)); err != nil {
			return errors.Wrapf(err, "copying skill %q", skill.Name)
		}
	}

	return nil
}
