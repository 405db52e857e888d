package source

import (
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/opencode-kit/ocbundle/internal/bundle"
	"github.com/opencode-kit/ocbundle/internal/errors"
	"github.com/opencode-kit/ocbundle/pkg/fileutil"
)

// manifestNames are the default manifest filenames searched in order.
var manifestNames = []string{"bundle.yaml", "bundle.yml", "bundle.toml", "bundle.json"}

// Manifest is the on-disk description of a bundle. File and directory
// references are resolved relative to the source directory.
type Manifest struct {
	// Config is embedded verbatim into opencode.json.
	Config map[string]any `yaml:"config" toml:"config" json:"config"`

	Agents  []FileRef `yaml:"agents" toml:"agents" json:"agents"`
	Plugins []FileRef `yaml:"plugins" toml:"plugins" json:"plugins"`
	Skills  []DirRef  `yaml:"skills" toml:"skills" json:"skills"`
}

// FileRef names a file whose content becomes an agent or plugin.
// Name is optional; it defaults to the file's basename (for agents,
// minus the ".md" extension).
type FileRef struct {
	Name string `yaml:"name" toml:"name" json:"name"`
	File string `yaml:"file" toml:"file" json:"file"`
}

// DirRef names a directory to be copied as a skill.
// Name is optional; it defaults to the directory's basename.
type DirRef struct {
	Name string `yaml:"name" toml:"name" json:"name"`
	Dir  string `yaml:"dir" toml:"dir" json:"dir"`
}

// LoadManifest reads and decodes a manifest file, then resolves it into
// a bundle by reading the referenced agent and plugin files. The decode
// format is chosen by the file extension: .yaml/.yml, .toml, or .json.
func LoadManifest(sourceDir, manifestPath string) (*bundle.Bundle, error) {
	data, err := fileutil.ReadFileWithLimit(manifestPath)
	if err != nil {
		return nil, errors.Wrapf(err, "reading manifest %s", manifestPath)
	}

	var m Manifest
	switch strings.ToLower(filepath.Ext(manifestPath)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &m)
	case ".toml":
		err = toml.Unmarshal(data, &m)
	case ".json":
		err = json.Unmarshal(data, &m)
	default:
		return nil, errors.Wrapf(errors.ErrUnknownManifestFormat, "%s", manifestPath)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "decoding manifest %s", manifestPath)
	}

	return m.resolve(sourceDir)
}

// resolve turns the manifest into a bundle, reading agent and plugin
// contents from disk. Skill directories are resolved to absolute-ish
// paths but not read; the writer copies them.
func (m *Manifest) resolve(sourceDir string) (*bundle.Bundle, error) {
	b := &bundle.Bundle{Config: m.Config}
	if b.Config == nil {
		b.Config = map[string]any{}
	}

	for _, ref := range m.Agents {
		if ref.File == "" {
			return nil, errors.Wrapf(errors.ErrMissingName, "agent entry has no file")
		}
		content, err := readEntry(sourceDir, ref.File)
		if err != nil {
			return nil, errors.Wrapf(err, "reading agent %q", ref.File)
		}
		name := ref.Name
		if name == "" {
			name = strings.TrimSuffix(filepath.Base(ref.File), ".md")
		}
		b.Agents = append(b.Agents, bundle.Agent{Name: name, Content: content})
	}

	for _, ref := range m.Plugins {
		if ref.File == "" {
			return nil, errors.Wrapf(errors.ErrMissingName, "plugin entry has no file")
		}
		content, err := readEntry(sourceDir, ref.File)
		if err != nil {
			return nil, errors.Wrapf(err, "reading plugin %q", ref.File)
		}
		name := ref.Name
		if name == "" {
			name = filepath.Base(ref.File)
		}
		b.Plugins = append(b.Plugins, bundle.Plugin{Name: name, Content: content})
	}

	for _, ref := range m.Skills {
		if ref.Dir == "" {
			return nil, errors.Wrapf(errors.ErrMissingName, "skill entry has no dir")
		}
		name := ref.Name
		if name == "" {
			name = filepath.Base(ref.Dir)
		}
		b.Skills = append(b.Skills, bundle.Skill{
			Name:      name,
			SourceDir: resolvePath(sourceDir, ref.Dir),
		})
	}

	return b, nil
}

// readEntry reads a referenced file and strips a single trailing
// newline, since the writer appends exactly one on output.
func readEntry(sourceDir, ref string) (string, error) {
	data, err := fileutil.ReadFileWithLimit(resolvePath(sourceDir, ref))
	if err != nil {
		return "", err
	}
	return strings.TrimSuffix(string(data), "\n"), nil
}

func resolvePath(sourceDir, ref string) string {
	if filepath.IsAbs(ref) {
		return ref
	}
	return filepath.Join(sourceDir, ref)
}

// findManifest returns the first default manifest file present in
// sourceDir, or an empty string if none exists.
func findManifest(sourceDir string) string {
	for _, name := range manifestNames {
		path := filepath.Join(sourceDir, name)
		if fileExists(path) {
			return path
		}
	}
	return ""
}
