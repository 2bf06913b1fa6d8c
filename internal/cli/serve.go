package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/chartkit/pkg/chart"
	"github.com/matzehuels/chartkit/pkg/pipeline"
	"github.com/matzehuels/chartkit/pkg/preview"
)

// serveCommand creates the serve command for the live preview.
func (c *CLI) serveCommand() *cobra.Command {
	var tui bool

	cmd := &cobra.Command{
		Use:   "serve [chart file]",
		Short: "Serve a live browser preview of a chart",
		Long: `Serve a live browser preview of a chart.

Every page that opens the preview URL gets the chart attached. Saving the
definition file rebuilds the chart and updates every open page in place;
changing the theme or size remounts the chart. Resizing the browser window
refreshes the chart layout.`,
		Example: `  chartkit serve sales.toml
  chartkit serve sales.yaml --addr :9000 --tui`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeChartFile,
		RunE: func(cmd *cobra.Command, args []string) error {
			c.bindFlags(cmd.Flags(), map[string]string{
				"preview.addr":    "addr",
				"preview.element": "element",
			})
			return c.runServe(cmd.Context(), args[0], tui)
		},
	}

	cmd.Flags().String("addr", "", "listen address (default 127.0.0.1:8808)")
	cmd.Flags().String("element", "", "chart element id on the preview page (default chart)")
	cmd.Flags().BoolVar(&tui, "tui", false, "show an interactive status view")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, input string, tui bool) error {
	cfg, err := c.settings()
	if err != nil {
		return err
	}
	runner, err := c.newRunner(ctx, cfg.Cache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts := pipeline.Options{
		Input:     input,
		Theme:     cfg.Theme,
		ElementID: cfg.Preview.Element,
		Logger:    c.Logger,
	}
	result, err := runner.Build(ctx, opts)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var status statusReporter = logStatus{logger: c.Logger}
	var program *tea.Program
	if tui {
		program = tea.NewProgram(NewServeModel(input), tea.WithContext(ctx), tea.WithOutput(os.Stdout))
		status = tuiStatus{send: func(msg any) { program.Send(msg) }}
		// the status view owns the terminal
		c.Logger.SetOutput(io.Discard)
	}

	ln, err := net.Listen("tcp", cfg.Preview.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", cfg.Preview.Addr, err)
	}

	srv := newPreviewServer(cfg, result.Settings.Theme, c)
	p := newPreviewer(runner, result, c.Logger, status)
	defer p.close(context.Background())

	g, gctx := errgroup.WithContext(ctx)
	if program != nil {
		g.Go(func() error {
			defer cancel()
			if _, err := program.Run(); err != nil && !stderrors.Is(err, tea.ErrProgramKilled) {
				return err
			}
			return nil
		})
	}
	status.listening("http://" + ln.Addr().String())

	g.Go(func() error { return srv.Serve(gctx, ln) })
	g.Go(func() error {
		for {
			select {
			case <-gctx.Done():
				return nil
			case sess := <-srv.Sessions():
				go func() {
					if err := p.attach(gctx, sess.ID(), sess, sess, sess.Done()); err != nil {
						c.Logger.Debug("attach", "session", sess.ID(), "err", err)
					}
				}()
			}
		}
	})
	g.Go(func() error {
		return watchFile(gctx, input, reloadDebounce, func() {
			next, err := runner.Build(gctx, opts)
			if err != nil {
				status.reloaded(nil, 0, err)
				return
			}
			status.reloaded(next, p.reload(gctx, next), nil)
		})
	})
	return g.Wait()
}

// newPreviewServer configures the preview server from the CLI config.
func newPreviewServer(cfg Config, theme chart.Theme, c *CLI) *preview.Server {
	opts := []preview.Option{
		preview.WithLogger(c.Logger),
		preview.WithElementID(cfg.Preview.Element),
		preview.WithTheme(theme),
		preview.WithRequestTimeout(cfg.Preview.RequestTimeout),
	}
	if cfg.Preview.AssetsHost != "" {
		opts = append(opts, preview.WithAssetsHost(cfg.Preview.AssetsHost))
	}
	if len(cfg.Preview.Origins) > 0 {
		opts = append(opts, preview.WithOriginPatterns(cfg.Preview.Origins...))
	}
	return preview.NewServer(opts...)
}
