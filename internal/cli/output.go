package cli

import (
	"io"
	"os"
	"path/filepath"
	"strings"
)

// nopCloser wraps an io.Writer with a no-op Close method.
type nopCloser struct{ io.Writer }

// Close implements io.Closer with a no-op.
func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for the given path.
// "-" selects os.Stdout. Otherwise the file at path is created, overwriting
// it if it exists, along with missing parent directories.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "-" {
		return nopCloser{os.Stdout}, nil
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	return os.Create(path)
}

// writeOutput writes data to path via openOutput.
func writeOutput(path string, data []byte) error {
	out, err := openOutput(path)
	if err != nil {
		return err
	}
	if _, err := out.Write(data); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// knownExts are output extensions stripped when deriving a base path.
var knownExts = map[string]bool{".json": true, ".html": true, ".png": true, ".jpg": true, ".jpeg": true}

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input.
// If output has a known output extension, it strips that extension.
func basePath(output, input string) string {
	if output == "" {
		base := strings.TrimSuffix(input, filepath.Ext(input))
		if filepath.Ext(input) == ".json" {
			// keep chart.json from being overwritten by its own artifact
			base += ".chart"
		}
		return base
	}
	if ext := filepath.Ext(output); knownExts[strings.ToLower(ext)] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// artifactPaths maps each format to the file it is written to. A single
// format with an explicit output goes to that path verbatim.
func artifactPaths(formats []string, input, output string) map[string]string {
	paths := make(map[string]string, len(formats))
	if len(formats) == 1 && output != "" {
		paths[formats[0]] = output
		return paths
	}
	base := basePath(output, input)
	for _, f := range formats {
		paths[f] = base + "." + f
	}
	return paths
}
