// Package pipeline provides the chart build pipeline for chartkit.
//
// The pipeline turns a chart definition file into a serialized document and
// the artifacts written from it. CLI commands share it so that build, serve
// and export resolve files, themes and sizes the same way.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: Decode a TOML, YAML or JSON definition and build the chart
//  2. Serialize: Render the chart to its option document
//  3. Sink: Produce artifacts (standalone JSON, HTML page) from the document
//
// A built [Result] can also be attached to a live host through the render
// bridge with [Runner.Attach].
//
// # Usage
//
//	runner := pipeline.NewRunner(nil, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Input:   "sales.toml",
//	    Formats: []string{"html"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	page := result.Artifacts["html"]
package pipeline

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/chartkit/pkg/chart"
	"github.com/matzehuels/chartkit/pkg/chartfile"
	"github.com/matzehuels/chartkit/pkg/errors"
)

const (
	// DefaultElementID is the host element charts attach to when neither the
	// options nor the definition name one.
	DefaultElementID = "chart"

	// DefaultWidth is the page width used by the HTML sink.
	DefaultWidth = 1000

	// DefaultHeight is the page height used by the HTML sink.
	DefaultHeight = 800
)

// Format constants for output formats.
const (
	FormatJSON = "json"
	FormatHTML = "html"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatJSON: true,
	FormatHTML: true,
}

// Options contains all configuration for the build pipeline. Zero values
// fall back to the definition file and then to package defaults.
type Options struct {
	// Load options
	Input string `json:"input"`

	// Attach options, overriding the definition's keys
	Theme     string `json:"theme,omitempty"`
	Width     uint32 `json:"width,omitempty"`
	Height    uint32 `json:"height,omitempty"`
	ElementID string `json:"element_id,omitempty"`

	// Sink options
	Formats    []string `json:"formats,omitempty"`
	Title      string   `json:"title,omitempty"`
	AssetsHost string   `json:"assets_host,omitempty"`
	Indent     string   `json:"indent,omitempty"`
	Refresh    bool     `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Definition is the decoded chart file.
	Definition *chartfile.Definition

	// Settings are the resolved theme, size and element id.
	Settings chartfile.Settings

	// Chart is the built chart.
	Chart chart.Chart

	// Document is the serialized option document.
	Document []byte

	// DocumentHash is the content hash of Document.
	DocumentHash string

	// Artifacts contains sink outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	SeriesCount  int
	DocumentSize int
	LoadTime     time.Duration
	SinkTime     time.Duration
}

// CacheInfo tracks cache hits for the sink stage.
type CacheInfo struct {
	SinkHit bool // Whether all artifacts came from cache
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: json, html)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ParseFormats splits a comma separated format list, dropping blanks and
// duplicates.
func ParseFormats(s string) []string {
	var out []string
	for _, f := range strings.Split(s, ",") {
		f = strings.ToLower(strings.TrimSpace(f))
		if f != "" && !slices.Contains(out, f) {
			out = append(out, f)
		}
	}
	return out
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// Calling it more than once has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForLoad(); err != nil {
		return err
	}
	if err := o.ValidateForSink(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForLoad checks the fields the load stage needs.
func (o *Options) ValidateForLoad() error {
	if o.Input == "" {
		return errors.New(errors.ErrCodeInvalidInput, "input is required")
	}
	if err := errors.ValidatePath(o.Input); err != nil {
		return err
	}
	if o.Theme != "" {
		if _, err := chart.ParseTheme(o.Theme); err != nil {
			return err
		}
	}
	if o.ElementID != "" {
		if err := errors.ValidateElementID(o.ElementID); err != nil {
			return err
		}
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return nil
}

// ValidateForSink validates and defaults the sink fields.
func (o *Options) ValidateForSink() error {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatJSON}
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return ValidateFormats(o.Formats)
}

// resolve merges option overrides into the definition's settings.
func (o *Options) resolve(def *chartfile.Definition) (chartfile.Settings, error) {
	s, err := def.Settings()
	if err != nil {
		return s, fmt.Errorf("settings: %w", err)
	}
	if o.Theme != "" {
		if s.Theme, err = chart.ParseTheme(o.Theme); err != nil {
			return s, err
		}
	}
	if o.Width != 0 {
		w := o.Width
		s.Width = &w
	}
	if o.Height != 0 {
		h := o.Height
		s.Height = &h
	}
	if o.ElementID != "" {
		s.ElementID = o.ElementID
	}
	if s.ElementID == "" {
		s.ElementID = DefaultElementID
	}
	return s, nil
}

// pageSize returns the size the HTML sink lays the page out with.
func pageSize(s chartfile.Settings) (uint32, uint32) {
	w, h := uint32(DefaultWidth), uint32(DefaultHeight)
	if s.Width != nil {
		w = *s.Width
	}
	if s.Height != nil {
		h = *s.Height
	}
	return w, h
}
