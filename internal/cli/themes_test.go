package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/matzehuels/chartkit/pkg/chart"
)

func TestThemesCommandPlain(t *testing.T) {
	var out bytes.Buffer
	cmd := newTestCLI(t).themesCommand()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--plain"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("themes --plain error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != len(chart.Themes()) {
		t.Fatalf("got %d lines, want %d", len(lines), len(chart.Themes()))
	}
	if lines[0] != "default" || lines[1] != "dark" {
		t.Errorf("first themes = %v, want [default dark]", lines[:2])
	}
}

func TestThemesTable(t *testing.T) {
	table := themesTable()
	for _, want := range []string{"Theme", "Script", "dark", "built in", "/theme/vintage.js"} {
		if !strings.Contains(table, want) {
			t.Errorf("themesTable() missing %q", want)
		}
	}
	if strings.Contains(table, "/theme/dark.js") {
		t.Error("themesTable() lists a script for a built-in theme")
	}
}
