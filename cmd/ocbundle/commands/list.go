package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/opencode-kit/ocbundle/internal/errors"
	"github.com/opencode-kit/ocbundle/internal/source"
)

var listJSON bool

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list [source-dir]",
	Short: "List the contents of a bundle source",
	Long: `List shows the agents, plugins, and skills a bundle source would
produce, without writing anything.

Agent descriptions are read from YAML frontmatter when present.`,
	Example: `  # List the current directory's source
  ocbundle list

  # List a marketplace checkout
  ocbundle list ./marketplace

  # Output as JSON
  ocbundle list ./marketplace --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runList,
}

// entryJSON represents one bundle entry in JSON output.
type entryJSON struct {
	Type        string `json:"type"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Source      string `json:"source,omitempty"`
}

func runList(cmd *cobra.Command, args []string) error {
	sourceDir := "."
	if len(args) > 0 {
		sourceDir = args[0]
	}

	manifest := ""
	if appConfig != nil {
		manifest = appConfig.Manifest
	}

	b, err := source.Load(sourceDir, manifest)
	if err != nil {
		return errors.Wrap(err, "loading bundle source")
	}

	entries := make([]entryJSON, 0, len(b.Agents)+len(b.Plugins)+len(b.Skills))
	for _, a := range b.Agents {
		entries = append(entries, entryJSON{
			Type:        "agent",
			Name:        a.Name,
			Description: source.DescribeAgent(a),
		})
	}
	for _, p := range b.Plugins {
		entries = append(entries, entryJSON{Type: "plugin", Name: p.Name})
	}
	for _, s := range b.Skills {
		entries = append(entries, entryJSON{Type: "skill", Name: s.Name, Source: s.SourceDir})
	}

	if listJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(entries), "encoding output")
	}

	return writeListTabular(cmd.OutOrStdout(), entries)
}

func writeListTabular(w io.Writer, entries []entryJSON) error {
	if len(entries) == 0 {
		fmt.Fprintln(w, "(empty bundle: config only)")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TYPE\tNAME\tDESCRIPTION")
	for _, e := range entries {
		desc := e.Description
		if desc == "" && e.Source != "" {
			desc = e.Source
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", e.Type, e.Name, truncate(desc, 60))
	}
	return errors.Wrap(tw.Flush(), "flushing output")
}

// truncate shortens a string to maxLen characters, adding "..." if truncated.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
