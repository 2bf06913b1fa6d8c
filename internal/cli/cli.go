package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/matzehuels/chartkit/pkg/buildinfo"
	"github.com/matzehuels/chartkit/pkg/cache"
	"github.com/matzehuels/chartkit/pkg/pipeline"
)

const (
	// appName is the application name used for directories and display.
	appName = "chartkit"

	// envPrefix prefixes every environment variable read by the config.
	envPrefix = "CHARTKIT"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	config  *viper.Viper
	cfgFile string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		config: newConfig(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "chartkit builds, previews and exports charts from definition files",
		Long: `chartkit turns TOML, YAML or JSON chart definitions into chart option
documents. It writes standalone JSON and HTML artifacts, serves a live
browser preview that reloads on save, and exports the rendered chart as an
image.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := c.loadConfig(); err != nil {
				return err
			}
			registerHooks(c.Logger)
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.cfgFile, "config", "", "config file (default .chartkit.yaml, or CHARTKIT_CONFIG)")
	root.PersistentFlags().String("theme", "", "theme override (see 'chartkit themes')")
	root.PersistentFlags().Bool("no-cache", false, "disable the artifact cache")
	c.bindFlag("theme", root.PersistentFlags().Lookup("theme"))
	c.bindFlag("cache.disabled", root.PersistentFlags().Lookup("no-cache"))
	_ = root.RegisterFlagCompletionFunc("theme", completeTheme)

	root.AddCommand(c.buildCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.exportCommand())
	root.AddCommand(c.themesCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(ctx context.Context, cfg CacheConfig) (*pipeline.Runner, error) {
	store, err := c.newCache(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(store, nil, c.Logger), nil
}

// newCache picks the cache backend: none when disabled, Redis when a URL is
// configured, otherwise the file cache under the user cache directory.
func (c *CLI) newCache(ctx context.Context, cfg CacheConfig) (cache.Cache, error) {
	switch {
	case cfg.Disabled:
		return cache.NewNullCache(), nil
	case cfg.RedisURL != "":
		store, err := cache.NewRedisCache(ctx, cfg.RedisURL)
		if err != nil {
			return nil, err
		}
		c.Logger.Debug("using redis cache")
		return store, nil
	}
	dir, err := cacheDir()
	if err != nil {
		c.Logger.Warn("cache disabled", "err", err)
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// cacheDir returns the cache directory using XDG standard (~/.cache/chartkit/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
