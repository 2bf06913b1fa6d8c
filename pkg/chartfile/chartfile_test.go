package chartfile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/chartkit/pkg/chart"
	"github.com/matzehuels/chartkit/pkg/errors"
)

const barTOML = `
theme = "dark"
width = 800
height = 400

[[title]]
text = "Weekly sales"

[[x_axis]]
type = "category"
data = ["Mon", "Tue", "Wed"]

[[y_axis]]
type = "value"

[[series]]
type = "bar"
name = "sales"
data = [120, 200.5, 150]
`

const barYAML = `
theme: dark
width: 800
height: 400
title:
  - text: Weekly sales
x_axis:
  - type: category
    data: [Mon, Tue, Wed]
y_axis:
  - type: value
series:
  - type: bar
    name: sales
    data: [120, 200.5, 150]
`

const barJSON = `{
  "theme": "dark",
  "width": 800,
  "height": 400,
  "title": [{"text": "Weekly sales"}],
  "x_axis": [{"type": "category", "data": ["Mon", "Tue", "Wed"]}],
  "y_axis": [{"type": "value"}],
  "series": [{"type": "bar", "name": "sales", "data": [120, 200.5, 150]}]
}`

const barChart = `{"title":[{"text":"Weekly sales"}],"xAxis":[{"type":"category","data":["Mon","Tue","Wed"]}],"yAxis":[{"type":"value"}],"series":[{"type":"bar","name":"sales","data":[120,200.5,150]}]}`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFormats(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"toml", "chart.toml", barTOML},
		{"yaml", "chart.yaml", barYAML},
		{"yml", "chart.yml", barYAML},
		{"json", "chart.json", barJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def, err := Load(writeFile(t, tt.file, tt.content))
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			c, err := def.Chart()
			if err != nil {
				t.Fatalf("Chart: %v", err)
			}
			data, err := chart.Serialize(c)
			if err != nil {
				t.Fatal(err)
			}
			if got := string(data); got != barChart {
				t.Errorf("Serialize = %s, want %s", got, barChart)
			}

			s, err := def.Settings()
			if err != nil {
				t.Fatalf("Settings: %v", err)
			}
			if s.Theme != chart.ThemeDark {
				t.Errorf("Theme = %v, want dark", s.Theme)
			}
			if s.Width == nil || *s.Width != 800 || s.Height == nil || *s.Height != 400 {
				t.Errorf("size = %v x %v, want 800 x 400", s.Width, s.Height)
			}
		})
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		path func(t *testing.T) string
		code errors.Code
	}{
		{"missing", func(t *testing.T) string { return filepath.Join(t.TempDir(), "nope.toml") }, errors.ErrCodeFileNotFound},
		{"extension", func(t *testing.T) string { return writeFile(t, "chart.txt", "") }, errors.ErrCodeInvalidFormat},
		{"empty path", func(t *testing.T) string { return "" }, errors.ErrCodeInvalidPath},
		{"bad toml", func(t *testing.T) string { return writeFile(t, "chart.toml", "theme = ") }, errors.ErrCodeInvalidFormat},
		{"unknown toml key", func(t *testing.T) string { return writeFile(t, "chart.toml", "colour = [\"red\"]") }, errors.ErrCodeInvalidFormat},
		{"unknown yaml key", func(t *testing.T) string { return writeFile(t, "chart.yaml", "colour: [red]") }, errors.ErrCodeInvalidFormat},
		{"unknown json key", func(t *testing.T) string { return writeFile(t, "chart.json", `{"colour":["red"]}`) }, errors.ErrCodeInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.path(t))
			if err == nil {
				t.Fatal("Load succeeded, want error")
			}
			if got := errors.GetCode(err); got != tt.code {
				t.Errorf("code = %q, want %q (%v)", got, tt.code, err)
			}
		})
	}
}

func TestDecodeEmptyYAML(t *testing.T) {
	def, err := Decode(strings.NewReader(""), FormatYAML)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	c, err := def.Chart()
	if err != nil {
		t.Fatal(err)
	}
	if got := string(chart.MustSerialize(c)); got != "{}" {
		t.Errorf("Serialize = %s, want {}", got)
	}
}

func TestDataEntries(t *testing.T) {
	const src = `
[[series]]
type = "pie"
radius = ["40%", "70%"]
center = ["50%", "50%"]
data = [{ name = "a", value = 1 }, { name = "b", value = 2.5 }]

[[series]]
type = "scatter"
symbol_size = 8
data = [[1, 2], [3.5, -4]]
`
	def, err := Decode(strings.NewReader(src), FormatTOML)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	c, err := def.Chart()
	if err != nil {
		t.Fatalf("Chart: %v", err)
	}
	want := `{"series":[{"type":"pie","data":[{"name":"a","value":1},{"name":"b","value":2.5}],"radius":["40%","70%"],"center":["50%","50%"]},{"type":"scatter","data":[[1,2],[3.5,-4]],"symbolSize":8}]}`
	if got := string(chart.MustSerialize(c)); got != want {
		t.Errorf("Serialize = %s, want %s", got, want)
	}
}

func TestNamedDataFormats(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		src    string
	}{
		{"toml", FormatTOML, "[[series]]\ntype = \"pie\"\ndata = [{ name = \"a\", value = 1 }]\n"},
		{"yaml", FormatYAML, "series:\n  - type: pie\n    data: [{name: a, value: 1}]\n"},
		{"json", FormatJSON, `{"series":[{"type":"pie","data":[{"name":"a","value":1}]}]}`},
	}

	const want = `{"series":[{"type":"pie","data":[{"name":"a","value":1}]}]}`
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def, err := Decode(strings.NewReader(tt.src), tt.format)
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			c, err := def.Chart()
			if err != nil {
				t.Fatalf("Chart: %v", err)
			}
			if got := string(chart.MustSerialize(c)); got != want {
				t.Errorf("Serialize = %s, want %s", got, want)
			}
		})
	}
}

func TestNamedDataStrictKeys(t *testing.T) {
	const extra = "[[series]]\ntype = \"pie\"\ndata = [{ name = \"a\", value = 1, weight = 2 }]\n"
	def, err := Decode(strings.NewReader(extra), FormatTOML)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if _, err := def.Chart(); errors.GetCode(err) != errors.ErrCodeInvalidInput {
		t.Errorf("Chart code = %q, want %q (%v)", errors.GetCode(err), errors.ErrCodeInvalidInput, err)
	}

	const sibling = "[[series]]\ntype = \"pie\"\nsmoothness = 1\ndata = [{ name = \"a\", value = 1 }]\n"
	if _, err := Decode(strings.NewReader(sibling), FormatTOML); errors.GetCode(err) != errors.ErrCodeInvalidFormat {
		t.Errorf("Decode code = %q, want %q (%v)", errors.GetCode(err), errors.ErrCodeInvalidFormat, err)
	}
}

func TestChartErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		code errors.Code
	}{
		{"series type", `{"series":[{"type":"radar"}]}`, errors.ErrCodeInvalidInput},
		{"axis type", `{"x_axis":[{"type":"polar"}]}`, errors.ErrCodeInvalidInput},
		{"data entry", `{"series":[{"type":"bar","data":["x"]}]}`, errors.ErrCodeInvalidInput},
		{"pair length", `{"series":[{"type":"line","data":[[1,2,3]]}]}`, errors.ErrCodeInvalidInput},
		{"radius length", `{"series":[{"type":"pie","radius":["1"]}]}`, errors.ErrCodeInvalidInput},
		{"position length", `{"graphic":[{"position":[1]}]}`, errors.ErrCodeInvalidInput},
		{"easing", `{"animation_easing":"wobble"}`, errors.ErrCodeInvalidEasing},
		{"graphic easing", `{"graphic":[{"animation":{"easing":"wobble"}}]}`, errors.ErrCodeInvalidEasing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def, err := Decode(strings.NewReader(tt.src), FormatJSON)
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			_, err = def.Chart()
			if got := errors.GetCode(err); got != tt.code {
				t.Errorf("code = %q, want %q (%v)", got, tt.code, err)
			}
		})
	}
}

func TestGraphicDefinition(t *testing.T) {
	const src = `
graphic:
  - id: dot
    type: circle
    shape: {r: 5}
    position: [3.5, -2]
    fill: "#F00"
    animation: {duration: 300, easing: cubicOut}
`
	def, err := Decode(strings.NewReader(src), FormatYAML)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	c, err := def.Chart()
	if err != nil {
		t.Fatalf("Chart: %v", err)
	}
	want := `{"graphic":[{"id":"dot","type":"circle","shape":{"r":5},"position":[3.5,-2],"style":{"fill":"#f00"},"animation":{"duration":300,"easing":"cubicOut"}}]}`
	if got := string(chart.MustSerialize(c)); got != want {
		t.Errorf("Serialize = %s, want %s", got, want)
	}
}

func TestSettingsErrors(t *testing.T) {
	tests := []struct {
		name string
		def  Definition
		code errors.Code
	}{
		{"theme", Definition{Theme: "neon"}, errors.ErrCodeInvalidTheme},
		{"element id", Definition{ElementID: "1chart"}, errors.ErrCodeInvalidElementID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.def.Settings()
			if got := errors.GetCode(err); got != tt.code {
				t.Errorf("code = %q, want %q", got, tt.code)
			}
		})
	}
}

func TestSettingsDefaults(t *testing.T) {
	s, err := (&Definition{}).Settings()
	if err != nil {
		t.Fatal(err)
	}
	if s.Theme != chart.ThemeDefault || s.Width != nil || s.Height != nil || s.ElementID != "" {
		t.Errorf("Settings = %+v, want zero settings", s)
	}
}
