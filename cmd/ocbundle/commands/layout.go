package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/opencode-kit/ocbundle/internal/bundle"
	"github.com/opencode-kit/ocbundle/internal/errors"
)

var layoutJSON bool

func init() {
	layoutCmd.Flags().BoolVar(&layoutJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(layoutCmd)
}

var layoutCmd = &cobra.Command{
	Use:   "layout [output-root]",
	Short: "Show the resolved output layout for a root directory",
	Long: `Layout resolves the output paths the generate command would use for a
given output root, without touching the filesystem.

A root named ".opencode" is treated as the hidden directory itself;
any other root nests agents, plugins, and skills under
"<root>/.opencode/" while opencode.json stays at the root.`,
	Example: `  # Project root layout
  ocbundle layout ~/src/shop

  # Hidden directory layout
  ocbundle layout ~/src/shop/.opencode

  # Machine-readable output
  ocbundle layout ~/src/shop --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLayout,
}

// layoutOutput is the JSON output format for layout.
type layoutOutput struct {
	Root       string `json:"root"`
	ConfigPath string `json:"config_path"`
	AgentsDir  string `json:"agents_dir"`
	PluginsDir string `json:"plugins_dir"`
	SkillsDir  string `json:"skills_dir"`
}

func runLayout(cmd *cobra.Command, args []string) error {
	root := "."
	if len(args) > 0 {
		root = args[0]
	}

	return writeLayout(cmd.OutOrStdout(), bundle.ResolveLayout(root))
}

func writeLayout(w io.Writer, l bundle.Layout) error {
	if layoutJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(layoutOutput{
			Root:       l.Root,
			ConfigPath: l.ConfigPath,
			AgentsDir:  l.AgentsDir,
			PluginsDir: l.PluginsDir,
			SkillsDir:  l.SkillsDir,
		}), "encoding output")
	}

	fmt.Fprintf(w, "root:    %s\n", l.Root)
	fmt.Fprintf(w, "config:  %s\n", l.ConfigPath)
	fmt.Fprintf(w, "agents:  %s\n", l.AgentsDir)
	fmt.Fprintf(w, "plugins: %s\n", l.PluginsDir)
	fmt.Fprintf(w, "skills:  %s\n", l.SkillsDir)
	return nil
}
