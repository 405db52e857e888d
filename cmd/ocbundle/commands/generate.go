package commands

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"

	"github.com/opencode-kit/ocbundle/internal/bundle"
	"github.com/opencode-kit/ocbundle/internal/errors"
	"github.com/opencode-kit/ocbundle/internal/logging"
	"github.com/opencode-kit/ocbundle/internal/source"
)

var (
	generateOutput      string
	generateManifest    string
	generateInteractive bool
	generateDryRun      bool
)

func init() {
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "",
		"output root directory (default: current directory)")
	generateCmd.Flags().StringVarP(&generateManifest, "manifest", "m", "",
		"manifest file relative to the source directory (default: auto-discover)")
	generateCmd.Flags().BoolVarP(&generateInteractive, "interactive", "i", false,
		"interactively select which agents to include")
	generateCmd.Flags().BoolVar(&generateDryRun, "dry-run", false,
		"print planned writes without touching disk")
	rootCmd.AddCommand(generateCmd)
}

var generateCmd = &cobra.Command{
	Use:   "generate [source-dir]",
	Short: "Generate an OpenCode bundle from a source tree",
	Long: `Generate loads a bundle from a source directory and writes it to the
output root in the OpenCode layout.

The source is either a manifest (bundle.yaml, bundle.toml, bundle.json)
or a conventional tree with agents/, plugins/, skills/, and an
opencode.json config. Agent files are written as <name>.md, plugin
files keep their name verbatim, and skill directories are copied
recursively. Plugins and skills directories are only created when
there is something to put in them.`,
	Example: `  # Generate the current directory's source into ./
  ocbundle generate

  # Generate a marketplace checkout into a project
  ocbundle generate ./marketplace -o ~/src/shop

  # Choose agents interactively
  ocbundle generate ./marketplace -o . --interactive

  # See what would be written
  ocbundle generate ./marketplace -o . --dry-run`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGenerate,
}

func runGenerate(cmd *cobra.Command, args []string) error {
	sourceDir := "."
	if len(args) > 0 {
		sourceDir = args[0]
	}

	manifest := generateManifest
	if manifest == "" && appConfig != nil {
		manifest = appConfig.Manifest
	}

	output := generateOutput
	if output == "" && appConfig != nil {
		output = appConfig.OutputRoot
	}
	if output == "" {
		output = "."
	}

	logger := logging.FromContext(cmd.Context())
	logger.Debug("loading bundle", "source", sourceDir, "manifest", manifest)

	b, err := source.Load(sourceDir, manifest)
	if err != nil {
		return errors.Wrap(err, "loading bundle source")
	}

	if generateInteractive && len(b.Agents) > 0 {
		selected, err := selectAgents(b.Agents)
		if err != nil {
			return err
		}
		if selected == nil {
			fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
			return nil
		}
		b.Agents = selected
	}

	if generateDryRun {
		printPlan(cmd.OutOrStdout(), output, b)
		return nil
	}

	logger.Info("writing bundle", "root", output,
		"agents", len(b.Agents), "plugins", len(b.Plugins), "skills", len(b.Skills))

	if err := bundle.Write(output, b); err != nil {
		return errors.NewSystemError(err, "check that the output root is writable")
	}

	printSummary(cmd.OutOrStdout(), output, b)
	return nil
}

// selectAgents prompts the user to pick agents with a fuzzy finder.
// Returns nil (and no error) when the user aborts.
func selectAgents(agents []bundle.Agent) ([]bundle.Agent, error) {
	indexes, err := fuzzyfinder.FindMulti(
		agents,
		func(i int) string {
			return agents[i].Name
		},
		fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
			if i == -1 {
				return ""
			}
			a := agents[i]
			desc := source.DescribeAgent(a)
			if desc == "" {
				desc = "(no description)"
			}
			return fmt.Sprintf("Agent: %s\n\n%s", a.Name, desc)
		}),
	)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "selecting agents")
	}

	selected := make([]bundle.Agent, 0, len(indexes))
	for _, idx := range indexes {
		selected = append(selected, agents[idx])
	}
	return selected, nil
}

// printPlan lists every path a write would touch, without writing.
func printPlan(w io.Writer, output string, b *bundle.Bundle) {
	layout := bundle.ResolveLayout(output)

	fmt.Fprintf(w, "Would write to %s:\n", layout.Root)
	fmt.Fprintf(w, "  %s\n", layout.ConfigPath)
	for _, a := range b.Agents {
		fmt.Fprintf(w, "  %s\n", layout.AgentPath(a.Name))
	}
	for _, p := range b.Plugins {
		fmt.Fprintf(w, "  %s\n", layout.PluginPath(p.Name))
	}
	for _, s := range b.Skills {
		fmt.Fprintf(w, "  %s/ (copied from %s)\n", layout.SkillPath(s.Name), s.SourceDir)
	}
}

func printSummary(w io.Writer, output string, b *bundle.Bundle) {
	green := color.New(color.FgGreen).SprintFunc()
	fmt.Fprintf(w, "%s Bundle written to %s (%d agents, %d plugins, %d skills)\n",
		green("✓"), output, len(b.Agents), len(b.Plugins), len(b.Skills))
}
