package chartfile

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/chartkit/pkg/errors"
)

// Format is a definition file syntax.
type Format string

// Supported syntaxes.
const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatFromPath infers the syntax from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", errors.New(errors.ErrCodeInvalidFormat, "unsupported chart file extension %q (want .toml, .yaml, .yml or .json)", filepath.Ext(path))
	}
}

// Load reads and decodes the definition at path.
func Load(path string) (*Definition, error) {
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "chart file %s", path)
		}
		return nil, err
	}
	def, err := Decode(bytes.NewReader(data), format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return def, nil
}

// Decode decodes a definition in the given syntax. Unknown keys are
// rejected.
func Decode(r io.Reader, format Format) (*Definition, error) {
	var def Definition
	switch format {
	case FormatTOML:
		md, err := toml.NewDecoder(r).Decode(&def)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode toml")
		}
		for _, key := range md.Undecoded() {
			if isDataKey(key) {
				continue
			}
			return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown key %q", key.String())
		}
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&def); err != nil && !stderrors.Is(err, io.EOF) {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode yaml")
		}
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&def); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode json")
		}
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported format %q", format)
	}
	return &def, nil
}

// isDataKey reports whether key lies inside a series data table. The toml
// decoder leaves tables decoded into interface values marked undecoded;
// their keys are checked when the data entry is built.
func isDataKey(key toml.Key) bool {
	return len(key) > 2 && key[0] == "series" && key[1] == "data"
}
