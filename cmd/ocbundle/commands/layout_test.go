package commands

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/opencode-kit/ocbundle/internal/bundle"
)

func TestLayoutCommand_Metadata(t *testing.T) {
	if layoutCmd.Use != "layout [output-root]" {
		t.Errorf("Use = %q", layoutCmd.Use)
	}
	if layoutCmd.Flags().Lookup("json") == nil {
		t.Error("--json flag should be defined")
	}
}

func TestWriteLayout_Text(t *testing.T) {
	t.Cleanup(func() { layoutJSON = false })
	layoutJSON = false

	var buf bytes.Buffer
	if err := writeLayout(&buf, bundle.ResolveLayout("/tmp/proj")); err != nil {
		t.Fatalf("writeLayout() error = %v", err)
	}

	output := buf.String()
	for _, want := range []string{
		"/tmp/proj/opencode.json",
		"/tmp/proj/.opencode/agents",
		"/tmp/proj/.opencode/plugins",
		"/tmp/proj/.opencode/skills",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("output should contain %q, got:\n%s", want, output)
		}
	}
}

func TestWriteLayout_JSON(t *testing.T) {
	t.Cleanup(func() { layoutJSON = false })
	layoutJSON = true

	var buf bytes.Buffer
	if err := writeLayout(&buf, bundle.ResolveLayout("/tmp/proj/.opencode")); err != nil {
		t.Fatalf("writeLayout() error = %v", err)
	}

	var out layoutOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if out.ConfigPath != "/tmp/proj/.opencode/opencode.json" {
		t.Errorf("config_path = %q", out.ConfigPath)
	}
	if out.AgentsDir != "/tmp/proj/.opencode/agents" {
		t.Errorf("agents_dir = %q", out.AgentsDir)
	}
}
