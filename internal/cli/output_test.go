package cli

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestBasePath(t *testing.T) {
	tests := []struct {
		output string
		input  string
		want   string
	}{
		{"", "sales.toml", "sales"},
		{"", "dir/sales.yaml", "dir/sales"},
		{"", "sales.json", "sales.chart"},
		{"out.html", "sales.toml", "out"},
		{"out.JSON", "sales.toml", "out"},
		{"out/report", "sales.toml", "out/report"},
		{"out.v2", "sales.toml", "out.v2"},
	}

	for _, tt := range tests {
		if got := basePath(tt.output, tt.input); got != tt.want {
			t.Errorf("basePath(%q, %q) = %q, want %q", tt.output, tt.input, got, tt.want)
		}
	}
}

func TestArtifactPaths(t *testing.T) {
	tests := []struct {
		name    string
		formats []string
		output  string
		want    map[string]string
	}{
		{
			name:    "single format default",
			formats: []string{"json"},
			want:    map[string]string{"json": "sales.json"},
		},
		{
			name:    "single format explicit",
			formats: []string{"html"},
			output:  "page.htm",
			want:    map[string]string{"html": "page.htm"},
		},
		{
			name:    "stdout",
			formats: []string{"json"},
			output:  "-",
			want:    map[string]string{"json": "-"},
		},
		{
			name:    "multiple formats",
			formats: []string{"json", "html"},
			output:  "out/sales.html",
			want:    map[string]string{"json": "out/sales.json", "html": "out/sales.html"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := artifactPaths(tt.formats, "sales.toml", tt.output)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("artifactPaths() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWriteOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "chart.json")
	if err := writeOutput(path, []byte("{}")); err != nil {
		t.Fatalf("writeOutput() error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "{}" {
		t.Errorf("file content = %q, want %q", data, "{}")
	}

	if err := writeOutput(path, []byte("[]")); err != nil {
		t.Fatalf("overwrite error: %v", err)
	}
	data, _ = os.ReadFile(path)
	if string(data) != "[]" {
		t.Errorf("overwritten content = %q, want %q", data, "[]")
	}
}
