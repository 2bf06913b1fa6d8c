package cli

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const buildTOML = `
theme = "dark"
element_id = "sales"

[[title]]
text = "Sales"

[[x_axis]]
type = "category"
data = ["a", "b"]

[[y_axis]]
type = "value"

[[series]]
type = "bar"
data = [1, 2]
`

func newTestCLI(t *testing.T) *CLI {
	t.Helper()
	c := isolate(t)
	c.config.Set("cache.disabled", true)
	return c
}

func writeChartFile(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "sales.toml")
	if err := os.WriteFile(path, []byte(buildTOML), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunBuild(t *testing.T) {
	dir := t.TempDir()
	input := writeChartFile(t, dir)
	c := newTestCLI(t)

	opts := buildOpts{formats: "json,html", output: filepath.Join(dir, "out", "report"), title: "Q1"}
	if err := c.runBuild(context.Background(), input, opts); err != nil {
		t.Fatalf("runBuild() error: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "out", "report.json"))
	if err != nil {
		t.Fatalf("read json artifact: %v", err)
	}
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("json artifact is not JSON: %v", err)
	}
	if _, ok := doc["series"]; !ok {
		t.Errorf("json artifact missing series: %s", data)
	}

	page, err := os.ReadFile(filepath.Join(dir, "out", "report.html"))
	if err != nil {
		t.Fatalf("read html artifact: %v", err)
	}
	for _, want := range []string{"<title>Q1</title>", `id="sales"`} {
		if !strings.Contains(string(page), want) {
			t.Errorf("html artifact missing %q", want)
		}
	}
}

func TestRunBuildDefaultOutput(t *testing.T) {
	dir := t.TempDir()
	input := writeChartFile(t, dir)
	c := newTestCLI(t)

	if err := c.runBuild(context.Background(), input, buildOpts{formats: "json"}); err != nil {
		t.Fatalf("runBuild() error: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "sales.json")); err != nil {
		t.Errorf("default artifact not written: %v", err)
	}
}

func TestRunBuildErrors(t *testing.T) {
	dir := t.TempDir()
	input := writeChartFile(t, dir)

	tests := []struct {
		name  string
		input string
		opts  buildOpts
	}{
		{"unknown format", input, buildOpts{formats: "svg"}},
		{"missing file", filepath.Join(dir, "missing.toml"), buildOpts{formats: "json"}},
		{"bad element override", input, buildOpts{formats: "json", element: "no spaces"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestCLI(t)
			if err := c.runBuild(context.Background(), tt.input, tt.opts); err == nil {
				t.Error("runBuild() expected error")
			}
		})
	}
}

func TestRunBuildDryRun(t *testing.T) {
	dir := t.TempDir()
	input := writeChartFile(t, dir)
	c := newTestCLI(t)

	if err := c.runBuild(context.Background(), input, buildOpts{formats: "json", dryRun: true}); err != nil {
		t.Fatalf("runBuild(--dry-run) error: %v", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("dry run wrote files: %v", entries)
	}
}
