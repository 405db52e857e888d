// Package source loads bundle descriptors from a source tree, either
// via an explicit manifest file or by scanning the conventional
// agents/plugins/skills layout.
package source

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/opencode-kit/ocbundle/internal/bundle"
	"github.com/opencode-kit/ocbundle/internal/errors"
	"github.com/opencode-kit/ocbundle/pkg/fileutil"
	"github.com/opencode-kit/ocbundle/pkg/frontmatter"
)

// Conventional directory and file names within a bundle source tree.
const (
	agentsDirName  = "agents"
	pluginsDirName = "plugins"
	skillsDirName  = "skills"
	configFileName = "opencode.json"
)

// Load builds a bundle from sourceDir.
//
// If manifestPath is non-empty, that manifest is used. Otherwise the
// default manifest names (bundle.yaml, bundle.yml, bundle.toml,
// bundle.json) are searched in sourceDir, falling back to directory
// discovery when none exists.
func Load(sourceDir, manifestPath string) (*bundle.Bundle, error) {
	if manifestPath != "" {
		return LoadManifest(sourceDir, resolvePath(sourceDir, manifestPath))
	}

	if found := findManifest(sourceDir); found != "" {
		return LoadManifest(sourceDir, found)
	}

	return Discover(sourceDir)
}

// Discover scans the conventional source layout:
//
//	<sourceDir>/opencode.json   config (optional, defaults to empty)
//	<sourceDir>/agents/*.md     agents
//	<sourceDir>/plugins/*       plugins
//	<sourceDir>/skills/<name>/  skills
//
// Returns ErrNoBundleSource if none of these exist.
func Discover(sourceDir string) (*bundle.Bundle, error) {
	b := &bundle.Bundle{Config: map[string]any{}}
	found := false

	configPath := filepath.Join(sourceDir, configFileName)
	if fileExists(configPath) {
		data, err := fileutil.ReadFileWithLimit(configPath)
		if err != nil {
			return nil, errors.Wrap(err, "reading config")
		}
		if err := json.Unmarshal(data, &b.Config); err != nil {
			return nil, errors.Wrapf(err, "parsing %s", configFileName)
		}
		found = true
	}

	agentsDir := filepath.Join(sourceDir, agentsDirName)
	if entries, err := os.ReadDir(agentsDir); err == nil {
		found = true
		for _, entry := range entries {
			if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
				continue
			}
			content, err := readEntry(agentsDir, entry.Name())
			if err != nil {
				return nil, errors.Wrapf(err, "reading agent %q", entry.Name())
			}
			b.Agents = append(b.Agents, bundle.Agent{
				Name:    strings.TrimSuffix(entry.Name(), ".md"),
				Content: content,
			})
		}
	} else if !os.IsNotExist(err) {
		return nil, errors.Wrap(err, "reading agents directory")
	}

	pluginsDir := filepath.Join(sourceDir, pluginsDirName)
	if entries, err := os.ReadDir(pluginsDir); err == nil {
		found = true
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			content, err := readEntry(pluginsDir, entry.Name())
			if err != nil {
				return nil, errors.Wrapf(err, "reading plugin %q", entry.Name())
			}
			b.Plugins = append(b.Plugins, bundle.Plugin{
				Name:    entry.Name(),
				Content: content,
			})
		}
	} else if !os.IsNotExist(err) {
		return nil, errors.Wrap(err, "reading plugins directory")
	}

	skillsDir := filepath.Join(sourceDir, skillsDirName)
	if entries, err := os.ReadDir(skillsDir); err == nil {
		found = true
		for _, entry := range entries {
			if !entry.IsDir() {
				continue
			}
			b.Skills = append(b.Skills, bundle.Skill{
				Name:      entry.Name(),
				SourceDir: filepath.Join(skillsDir, entry.Name()),
			})
		}
	} else if !os.IsNotExist(err) {
		return nil, errors.Wrap(err, "reading skills directory")
	}

	if !found {
		return nil, errors.Wrapf(errors.ErrNoBundleSource, "in %s", sourceDir)
	}

	return b, nil
}

// agentMeta is the YAML frontmatter we care about in agent files.
type agentMeta struct {
	Description string `yaml:"description"`
}

// DescribeAgent extracts the description from an agent's YAML
// frontmatter. Returns an empty string when no frontmatter is present.
func DescribeAgent(a bundle.Agent) string {
	var meta agentMeta
	if err := frontmatter.ParseHeader(strings.NewReader(a.Content), &meta); err != nil {
		return ""
	}
	return meta.Description
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
