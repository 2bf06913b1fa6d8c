package sink

import (
	"bytes"
	"encoding/json"
	"html/template"

	"github.com/matzehuels/chartkit/pkg/chart"
	"github.com/matzehuels/chartkit/pkg/errors"
)

// DefaultAssetsHost serves the echarts script and theme scripts.
const DefaultAssetsHost = "https://cdn.jsdelivr.net/npm/echarts@5.5.1"

// HTMLOption configures HTML output via [HTML].
type HTMLOption func(*htmlRenderer)

type htmlRenderer struct {
	title      string
	theme      chart.Theme
	width      uint32
	height     uint32
	elementID  string
	assetsHost string
}

// WithHTMLTitle sets the page title.
func WithHTMLTitle(title string) HTMLOption { return func(r *htmlRenderer) { r.title = title } }

// WithHTMLTheme selects the engine theme. Themes that do not ship with the
// engine get their theme script loaded from the assets host.
func WithHTMLTheme(t chart.Theme) HTMLOption { return func(r *htmlRenderer) { r.theme = t } }

// WithHTMLSize sets the chart element size in pixels.
func WithHTMLSize(width, height uint32) HTMLOption {
	return func(r *htmlRenderer) { r.width, r.height = width, height }
}

// WithHTMLElementID sets the id of the chart element.
func WithHTMLElementID(id string) HTMLOption { return func(r *htmlRenderer) { r.elementID = id } }

// WithHTMLAssetsHost sets the base URL the echarts scripts are loaded from.
func WithHTMLAssetsHost(host string) HTMLOption {
	return func(r *htmlRenderer) { r.assetsHost = host }
}

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<script src="{{.AssetsHost}}/dist/echarts.min.js"></script>
{{- if .ThemeScript}}
<script src="{{.ThemeScript}}"></script>
{{- end}}
</head>
<body>
<div id="{{.ElementID}}" style="width:{{.Width}}px;height:{{.Height}}px;"></div>
<script>
  var chart = echarts.init(document.getElementById({{.ElementID}}), {{.Theme}});
  chart.setOption({{.Option}});
  window.addEventListener("resize", function () { chart.resize(); });
</script>
</body>
</html>
`))

type pageData struct {
	Title       string
	AssetsHost  string
	ThemeScript string
	Theme       string
	ElementID   string
	Width       uint32
	Height      uint32
	Option      template.JS
}

// HTML renders doc into a standalone page.
func HTML(doc []byte, opts ...HTMLOption) ([]byte, error) {
	r := htmlRenderer{
		title:      "chartkit",
		width:      1000,
		height:     800,
		elementID:  "chart",
		assetsHost: DefaultAssetsHost,
	}
	for _, opt := range opts {
		opt(&r)
	}
	if err := errors.ValidateElementID(r.elementID); err != nil {
		return nil, err
	}
	if !json.Valid(doc) {
		return nil, errors.New(errors.ErrCodeInvalidFormat, "document is not valid JSON")
	}

	var option bytes.Buffer
	json.HTMLEscape(&option, doc)

	data := pageData{
		Title:      r.title,
		AssetsHost: r.assetsHost,
		Theme:      r.theme.Name(),
		ElementID:  r.elementID,
		Width:      r.width,
		Height:     r.height,
		Option:     template.JS(option.String()),
	}
	if !r.theme.Builtin() {
		data.ThemeScript = r.assetsHost + "/theme/" + r.theme.Name() + ".js"
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "render page")
	}
	return buf.Bytes(), nil
}
