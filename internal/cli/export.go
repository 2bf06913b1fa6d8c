package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"net"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/chartkit/pkg/cache"
	"github.com/matzehuels/chartkit/pkg/element"
	"github.com/matzehuels/chartkit/pkg/errors"
	"github.com/matzehuels/chartkit/pkg/pipeline"
	"github.com/matzehuels/chartkit/pkg/preview"
	"github.com/matzehuels/chartkit/pkg/render"
)

// exportCommand creates the export command for capturing chart images.
func (c *CLI) exportCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export [chart file]",
		Short: "Export a chart as an image rendered by a browser",
		Long: `Export a chart as an image rendered by a browser.

The chart is served on the preview address. Open the printed URL in any
browser: the chart is attached, captured as a data URL, decoded and written
to the output file, and the server stops. Captures are cached by document
and image options, so repeating an export of an unchanged chart needs no
browser.`,
		Example: `  chartkit export sales.toml -o sales.png
  chartkit export sales.toml --type jpeg --background "#ffffff" --pixel-ratio 1`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeChartFile,
		RunE: func(cmd *cobra.Command, args []string) error {
			c.bindFlags(cmd.Flags(), map[string]string{
				"preview.addr":       "addr",
				"export.format":      "type",
				"export.pixel_ratio": "pixel-ratio",
				"export.background":  "background",
				"export.timeout":     "timeout",
			})
			return c.runExport(cmd.Context(), args[0], output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output image (default <input>.<type>)")
	cmd.Flags().String("addr", "", "listen address (default 127.0.0.1:8808)")
	cmd.Flags().String("type", "", "image type: png (default), jpeg")
	cmd.Flags().Float64("pixel-ratio", 0, "device pixel ratio of the capture (default 2)")
	cmd.Flags().String("background", "", "background color of the capture")
	cmd.Flags().Duration("timeout", 0, "how long to wait for a browser (default 60s)")

	return cmd
}

func (c *CLI) runExport(ctx context.Context, input, output string) error {
	cfg, err := c.settings()
	if err != nil {
		return err
	}
	imgOpts, err := imageOptions(cfg.Export)
	if err != nil {
		return err
	}
	if output == "" {
		output = strings.TrimSuffix(input, filepath.Ext(input)) + imgOpts.Type.Extension()
	}

	runner, err := c.newRunner(ctx, cfg.Cache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	result, err := runner.Build(ctx, pipeline.Options{
		Input:     input,
		Theme:     cfg.Theme,
		ElementID: cfg.Preview.Element,
		Logger:    c.Logger,
	})
	if err != nil {
		return err
	}

	key := runner.Keyer.ExportKey(result.DocumentHash, exportKeyOpts(cfg.Export, imgOpts, result))
	if data, hit, err := runner.Cache.Get(ctx, key); err == nil && hit {
		if err := writeOutput(output, data); err != nil {
			return err
		}
		printSuccess("Exported %s", StyleHighlight.Render(output))
		printDetail("%s from cache", formatBytes(len(data)))
		return nil
	}

	data, err := c.capture(ctx, cfg, runner, result, imgOpts)
	if err != nil {
		return err
	}
	if err := writeOutput(output, data); err != nil {
		return err
	}
	if err := runner.Cache.Set(ctx, key, data, cache.TTLExport); err != nil {
		c.Logger.Debug("cache write failed", "err", err)
	}
	printSuccess("Exported %s", StyleHighlight.Render(output))
	printDetail("%s", formatBytes(len(data)))
	return nil
}

// capture serves the chart until one page connects, then exports it.
func (c *CLI) capture(ctx context.Context, cfg Config, runner *pipeline.Runner, result *pipeline.Result, opts render.ImageOptions) ([]byte, error) {
	ln, err := net.Listen("tcp", cfg.Preview.Addr)
	if err != nil {
		return nil, fmt.Errorf("listen %s: %w", cfg.Preview.Addr, err)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	srv := newPreviewServer(cfg, result.Settings.Theme, c)
	var image []byte
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return srv.Serve(gctx, ln) })
	g.Go(func() error {
		defer cancel()
		printInfo("Open %s to render the chart", StyleLink.Render("http://"+ln.Addr().String()))
		spinner := newSpinnerWithContext(gctx, "Waiting for a browser...")
		spinner.Start()
		sess, err := waitSession(gctx, srv, cfg.Export.Timeout)
		if err != nil {
			spinner.Stop()
			if stderrors.Is(err, context.DeadlineExceeded) {
				return &errors.TimeoutError{Op: "waiting for a browser", Seconds: int(cfg.Export.Timeout / time.Second)}
			}
			return err
		}
		spinner.SetMessage("Capturing image...")
		image, err = exportSession(gctx, runner, result, sess, opts)
		spinner.Stop()
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return image, nil
}

// exportSession attaches to one page, captures the chart and disposes it.
func exportSession(ctx context.Context, runner *pipeline.Runner, result *pipeline.Result, host exportHost, opts render.ImageOptions) ([]byte, error) {
	h, err := runner.Attach(ctx, host, host, result)
	if err != nil {
		return nil, err
	}
	defer h.Dispose(context.WithoutCancel(ctx))

	url, err := h.Export(ctx, opts)
	if err != nil {
		return nil, err
	}
	mediaType, data, err := render.DecodeDataURL(url)
	if err != nil {
		return nil, err
	}
	if want := "image/" + string(opts.Type); mediaType != want {
		return nil, errors.New(errors.ErrCodeInvalidFormat, "page returned %s, want %s", mediaType, want)
	}
	return data, nil
}

// exportHost is a page that is both host and engine, like a preview session.
type exportHost interface {
	render.Host
	render.Engine
}

var _ exportHost = (*preview.Session)(nil)

func imageOptions(cfg ExportConfig) (render.ImageOptions, error) {
	typ, err := render.ParseImageType(cfg.Format)
	if err != nil {
		return render.ImageOptions{}, err
	}
	opts := render.ImageOptions{Type: typ, PixelRatio: cfg.PixelRatio}
	if cfg.Background != "" {
		bg := element.ParseColor(cfg.Background)
		opts.BackgroundColor = &bg
	}
	return opts, nil
}

func exportKeyOpts(cfg ExportConfig, opts render.ImageOptions, result *pipeline.Result) cache.ExportKeyOpts {
	k := cache.ExportKeyOpts{
		Type:            string(opts.Type),
		PixelRatio:      opts.PixelRatio,
		BackgroundColor: cfg.Background,
		Theme:           result.Settings.Theme.Name(),
	}
	if result.Settings.Width != nil {
		k.Width = *result.Settings.Width
	}
	if result.Settings.Height != nil {
		k.Height = *result.Settings.Height
	}
	return k
}

// waitSession blocks until a page connects, the timeout passes or ctx ends.
func waitSession(ctx context.Context, srv *preview.Server, timeout time.Duration) (*preview.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	select {
	case sess := <-srv.Sessions():
		return sess, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
