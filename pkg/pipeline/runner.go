package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/chartkit/pkg/cache"
	"github.com/matzehuels/chartkit/pkg/chart"
	"github.com/matzehuels/chartkit/pkg/chartfile"
	"github.com/matzehuels/chartkit/pkg/observability"
	"github.com/matzehuels/chartkit/pkg/render"
	"github.com/matzehuels/chartkit/pkg/render/sink"
)

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger; it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Keyer: keyer, Logger: logger}
}

// Execute runs the complete load → serialize → sink pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result, err := r.Build(ctx, opts)
	if err != nil {
		return nil, err
	}

	sinkStart := time.Now()
	artifacts, hit, err := r.SinkWithCacheInfo(ctx, result, opts)
	if err != nil {
		return nil, fmt.Errorf("sink: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.SinkTime = time.Since(sinkStart)
	result.CacheInfo.SinkHit = hit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"cached", hit,
		"duration", result.Stats.SinkTime)

	return result, nil
}

// Build runs the load and serialize stages only. Serve and export use it
// since they push the document to a live host instead of writing files.
func (r *Runner) Build(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForLoad(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	hooks := observability.Pipeline()
	hooks.OnLoadStart(ctx, opts.Input)
	start := time.Now()

	result, err := r.load(opts)
	seriesCount := 0
	if result != nil {
		seriesCount = result.Stats.SeriesCount
	}
	hooks.OnLoadComplete(ctx, opts.Input, seriesCount, time.Since(start), err)
	if err != nil {
		return nil, err
	}
	result.Stats.LoadTime = time.Since(start)

	r.Logger.Info("loaded chart",
		"input", opts.Input,
		"series", result.Stats.SeriesCount,
		"theme", result.Settings.Theme,
		"duration", result.Stats.LoadTime)

	return result, nil
}

func (r *Runner) load(opts Options) (*Result, error) {
	def, err := chartfile.Load(opts.Input)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	settings, err := opts.resolve(def)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", opts.Input, err)
	}
	c, err := def.Chart()
	if err != nil {
		return nil, fmt.Errorf("build %s: %w", opts.Input, err)
	}
	doc, err := chart.Serialize(c)
	if err != nil {
		return nil, fmt.Errorf("serialize: %w", err)
	}
	return &Result{
		Definition:   def,
		Settings:     settings,
		Chart:        c,
		Document:     doc,
		DocumentHash: cache.Hash(doc),
		Artifacts:    make(map[string][]byte),
		Stats: Stats{
			SeriesCount:  c.SeriesCount(),
			DocumentSize: len(doc),
		},
	}, nil
}

// SinkWithCacheInfo produces the requested artifacts from a built result
// and reports whether all of them came from cache.
func (r *Runner) SinkWithCacheInfo(ctx context.Context, result *Result, opts Options) (map[string][]byte, bool, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForSink(); err != nil {
		return nil, false, err
	}

	hooks := observability.Pipeline()
	hooks.OnSinkStart(ctx, opts.Formats)
	start := time.Now()

	artifacts, hit, err := r.sink(ctx, result, opts)
	hooks.OnSinkComplete(ctx, opts.Formats, time.Since(start), err)
	return artifacts, hit, err
}

func (r *Runner) sink(ctx context.Context, result *Result, opts Options) (map[string][]byte, bool, error) {
	artifacts := make(map[string][]byte, len(opts.Formats))
	allCached := true

	for _, format := range opts.Formats {
		key := r.Keyer.ArtifactKey(result.DocumentHash, artifactKeyOpts(format, result.Settings, opts))
		if !opts.Refresh {
			if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
				artifacts[format] = data
				continue
			}
		}
		allCached = false

		data, err := renderFormat(format, result, opts)
		if err != nil {
			return nil, false, fmt.Errorf("%s: %w", format, err)
		}
		artifacts[format] = data
		if err := r.Cache.Set(ctx, key, data, cache.TTLArtifact); err != nil {
			r.Logger.Debug("cache write failed", "format", format, "error", err)
		}
	}
	return artifacts, allCached, nil
}

func renderFormat(format string, result *Result, opts Options) ([]byte, error) {
	switch format {
	case FormatJSON:
		if opts.Indent != "" {
			return sink.JSON(result.Document, sink.WithJSONIndent(opts.Indent))
		}
		return sink.JSON(result.Document)
	case FormatHTML:
		w, h := pageSize(result.Settings)
		htmlOpts := []sink.HTMLOption{
			sink.WithHTMLTheme(result.Settings.Theme),
			sink.WithHTMLSize(w, h),
			sink.WithHTMLElementID(result.Settings.ElementID),
		}
		if opts.Title != "" {
			htmlOpts = append(htmlOpts, sink.WithHTMLTitle(opts.Title))
		}
		if opts.AssetsHost != "" {
			htmlOpts = append(htmlOpts, sink.WithHTMLAssetsHost(opts.AssetsHost))
		}
		return sink.HTML(result.Document, htmlOpts...)
	default:
		return nil, ValidateFormat(format)
	}
}

func artifactKeyOpts(format string, s chartfile.Settings, opts Options) cache.ArtifactKeyOpts {
	k := cache.ArtifactKeyOpts{Format: format}
	if format == FormatHTML {
		k.Theme = s.Theme.Name()
		k.Width, k.Height = pageSize(s)
		k.ElementID = s.ElementID
		k.AssetsHost = opts.AssetsHost
		k.Title = opts.Title
	} else {
		k.Indent = opts.Indent
	}
	return k
}

// Attach mounts a built result on a live host through the render bridge,
// using the result's theme, size and element id.
func (r *Runner) Attach(ctx context.Context, host render.Host, engine render.Engine, result *Result) (*render.Handle, error) {
	renderer := render.New(
		render.WithTheme(result.Settings.Theme),
		render.WithSizeOptions(render.SizeOptions{
			Width:  result.Settings.Width,
			Height: result.Settings.Height,
		}),
		render.WithLogger(r.Logger),
	)
	return renderer.Attach(ctx, host, engine, result.Settings.ElementID, result.Document)
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
