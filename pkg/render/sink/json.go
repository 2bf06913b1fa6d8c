package sink

import (
	"bytes"
	"encoding/json"

	"github.com/matzehuels/chartkit/pkg/errors"
)

// JSONOption configures JSON output via [JSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	indent  string
	compact bool
}

// WithJSONIndent sets the indent string. The default is two spaces.
func WithJSONIndent(indent string) JSONOption { return func(r *jsonRenderer) { r.indent = indent } }

// WithJSONCompact removes all insignificant whitespace.
func WithJSONCompact() JSONOption { return func(r *jsonRenderer) { r.compact = true } }

// JSON reformats doc. The result ends with a newline.
func JSON(doc []byte, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{indent: "  "}
	for _, opt := range opts {
		opt(&r)
	}

	var buf bytes.Buffer
	var err error
	if r.compact {
		err = json.Compact(&buf, doc)
	} else {
		err = json.Indent(&buf, doc, "", r.indent)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "document is not valid JSON")
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}
