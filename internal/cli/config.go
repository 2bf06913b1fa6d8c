package cli

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/matzehuels/chartkit/pkg/chart"
	"github.com/matzehuels/chartkit/pkg/errors"
	"github.com/matzehuels/chartkit/pkg/render"
)

// Config is the resolved CLI configuration. Sources in order of precedence:
// flags, CHARTKIT_* environment variables, the config file, defaults.
type Config struct {
	Theme   string        `mapstructure:"theme"`
	Preview PreviewConfig `mapstructure:"preview"`
	Export  ExportConfig  `mapstructure:"export"`
	Cache   CacheConfig   `mapstructure:"cache"`
}

// PreviewConfig configures the live preview server.
type PreviewConfig struct {
	Addr           string        `mapstructure:"addr"`
	Element        string        `mapstructure:"element"`
	AssetsHost     string        `mapstructure:"assets_host"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
	Origins        []string      `mapstructure:"origins"`
}

// ExportConfig configures image export.
type ExportConfig struct {
	Format     string        `mapstructure:"format"`
	PixelRatio float64       `mapstructure:"pixel_ratio"`
	Background string        `mapstructure:"background"`
	Timeout    time.Duration `mapstructure:"timeout"`
}

// CacheConfig configures the artifact cache.
type CacheConfig struct {
	Disabled bool   `mapstructure:"disabled"`
	RedisURL string `mapstructure:"redis_url"`
}

func newConfig() *viper.Viper {
	v := viper.New()
	v.SetDefault("theme", "")
	v.SetDefault("preview.addr", "127.0.0.1:8808")
	v.SetDefault("preview.element", "chart")
	v.SetDefault("preview.assets_host", "")
	v.SetDefault("preview.request_timeout", 30*time.Second)
	v.SetDefault("preview.origins", []string{})
	v.SetDefault("export.format", "png")
	v.SetDefault("export.pixel_ratio", 2.0)
	v.SetDefault("export.background", "")
	v.SetDefault("export.timeout", 60*time.Second)
	v.SetDefault("cache.disabled", false)
	v.SetDefault("cache.redis_url", "")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// bindFlag ties a config key to a flag so an explicitly set flag wins.
func (c *CLI) bindFlag(key string, flag *pflag.Flag) {
	if flag == nil {
		panic("cli: unknown flag for config key " + key)
	}
	if err := c.config.BindPFlag(key, flag); err != nil {
		panic(err)
	}
}

// bindFlags binds the named flags of the running command. Commands call it
// from RunE so flags with the same key on sibling commands do not collide.
func (c *CLI) bindFlags(flags *pflag.FlagSet, keys map[string]string) {
	for key, name := range keys {
		c.bindFlag(key, flags.Lookup(name))
	}
}

// loadConfig reads the config file. A missing default file is not an error;
// a missing file named by --config or CHARTKIT_CONFIG is.
func (c *CLI) loadConfig() error {
	file := c.cfgFile
	if file == "" {
		file = os.Getenv(envPrefix + "_CONFIG")
	}
	if file != "" {
		c.config.SetConfigFile(file)
	} else {
		c.config.SetConfigName(".chartkit")
		c.config.AddConfigPath(".")
		if dir, err := os.UserConfigDir(); err == nil {
			c.config.AddConfigPath(filepath.Join(dir, appName))
		}
	}

	if err := c.config.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file == "" && stderrors.As(err, &notFound) {
			return nil
		}
		return errors.Wrap(errors.ErrCodeInvalidFormat, err, "read config")
	}
	c.Logger.Debug("loaded config", "file", c.config.ConfigFileUsed())
	return nil
}

// settings decodes and validates the merged configuration.
func (c *CLI) settings() (Config, error) {
	var cfg Config
	if err := c.config.Unmarshal(&cfg); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode config")
	}
	if cfg.Theme != "" {
		if _, err := chart.ParseTheme(cfg.Theme); err != nil {
			return cfg, err
		}
	}
	if err := errors.ValidateListenAddr(cfg.Preview.Addr); err != nil {
		return cfg, err
	}
	if err := errors.ValidateElementID(cfg.Preview.Element); err != nil {
		return cfg, err
	}
	if _, err := render.ParseImageType(cfg.Export.Format); err != nil {
		return cfg, err
	}
	if cfg.Export.PixelRatio <= 0 {
		return cfg, errors.New(errors.ErrCodeInvalidInput, "export.pixel_ratio must be positive, got %v", cfg.Export.PixelRatio)
	}
	if cfg.Export.Timeout <= 0 || cfg.Preview.RequestTimeout <= 0 {
		return cfg, errors.New(errors.ErrCodeInvalidInput, "timeouts must be positive")
	}
	return cfg, nil
}
