package cli

import (
	"context"
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/matzehuels/chartkit/pkg/pipeline"
	"github.com/matzehuels/chartkit/pkg/render/headless"
)

// buildOpts holds the command-line flags for the build command.
type buildOpts struct {
	output     string // output file (single format) or base path
	formats    string // comma separated output formats
	width      uint32 // page width override
	height     uint32 // page height override
	element    string // element id override
	title      string // HTML page title
	assetsHost string // base URL for echarts scripts
	indent     string // JSON indent
	dryRun     bool   // attach headlessly and print the engine call trace
}

// buildCommand creates the build command.
func (c *CLI) buildCommand() *cobra.Command {
	var opts buildOpts

	cmd := &cobra.Command{
		Use:   "build [chart file]",
		Short: "Build chart artifacts from a definition file",
		Long: `Build chart artifacts from a definition file.

The definition (TOML, YAML or JSON) is turned into a chart option document
and written as a standalone JSON document, an HTML page, or both.

With --dry-run nothing is written; the chart is attached to an in-memory
host instead and the resulting engine calls are printed.`,
		Example: `  chartkit build sales.toml
  chartkit build sales.yaml -f json,html -o out/sales
  chartkit build sales.toml --dry-run`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeChartFile,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runBuild(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format), base path (multiple), or - for stdout")
	cmd.Flags().StringVarP(&opts.formats, "format", "f", pipeline.FormatJSON, "output format(s): json, html (comma-separated)")
	cmd.Flags().Uint32Var(&opts.width, "width", 0, "page width in pixels (default from file, then 1000)")
	cmd.Flags().Uint32Var(&opts.height, "height", 0, "page height in pixels (default from file, then 800)")
	cmd.Flags().StringVar(&opts.element, "element", "", "chart element id (default from file, then chart)")
	cmd.Flags().StringVar(&opts.title, "title", "", "HTML page title")
	cmd.Flags().StringVar(&opts.assetsHost, "assets-host", "", "base URL the echarts scripts are loaded from")
	cmd.Flags().StringVar(&opts.indent, "indent", "", "JSON indent string (default two spaces)")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "attach to an in-memory host and print the engine calls")

	return cmd
}

func (c *CLI) runBuild(ctx context.Context, input string, opts buildOpts) error {
	cfg, err := c.settings()
	if err != nil {
		return err
	}
	runner, err := c.newRunner(ctx, cfg.Cache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	popts := pipeline.Options{
		Input:      input,
		Theme:      cfg.Theme,
		Width:      opts.width,
		Height:     opts.height,
		ElementID:  opts.element,
		Formats:    pipeline.ParseFormats(opts.formats),
		Title:      opts.title,
		AssetsHost: opts.assetsHost,
		Indent:     opts.indent,
		Logger:     c.Logger,
	}

	if opts.dryRun {
		return c.runDryRun(ctx, runner, popts)
	}

	if err := pipeline.ValidateFormats(popts.Formats); err != nil {
		return err
	}
	prog := newProgress(c.Logger)
	result, err := runner.Execute(ctx, popts)
	if err != nil {
		return err
	}
	prog.done("Built chart", "series", result.Stats.SeriesCount, "cached", result.CacheInfo.SinkHit)

	paths := artifactPaths(popts.Formats, input, opts.output)
	for _, format := range popts.Formats {
		path := paths[format]
		if err := writeOutput(path, result.Artifacts[format]); err != nil {
			return fmt.Errorf("write %s: %w", format, err)
		}
		if path != "-" {
			printFile(path)
		}
	}
	if opts.output != "-" {
		printStats(result.Stats, result.CacheInfo.SinkHit)
		printNextStep("Preview it live", "chartkit serve "+input)
	}
	return nil
}

// runDryRun attaches the built document to a headless host and prints the
// engine call trace, including the dispose that ends the handle.
func (c *CLI) runDryRun(ctx context.Context, runner *pipeline.Runner, opts pipeline.Options) error {
	result, err := runner.Build(ctx, opts)
	if err != nil {
		return err
	}

	host := headless.NewHost(headless.WithElements(result.Settings.ElementID))
	engine := headless.NewEngine()
	h, err := runner.Attach(ctx, host, engine, result)
	if err != nil {
		return err
	}
	if err := h.Dispose(ctx); err != nil {
		return err
	}

	printInfo("Engine calls for %s", StyleHighlight.Render(opts.Input))
	for _, call := range engine.Calls() {
		printDetail("%s", call)
	}
	if live := engine.Live(); live != 0 {
		printWarning("%d engine instances left alive", live)
	}
	names := engine.CallNames()
	if !slices.Contains(names, "setOption") {
		return fmt.Errorf("dry run did not push the document")
	}
	return nil
}
