package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	OutDir  string        `yaml:"out_dir" mapstructure:"out_dir"`
	Sites   SitesConfig   `yaml:"sites" mapstructure:"sites"`
	Fetch   FetchConfig   `yaml:"fetch" mapstructure:"fetch"`
	Publish PublishConfig `yaml:"publish" mapstructure:"publish"`
	Log     LogConfig     `yaml:"log" mapstructure:"log"`
}

// SitesConfig configures where the provider site table comes from.
type SitesConfig struct {
	// File points at an external site table (selectors + title maps).
	// Empty means the embedded default table.
	File string `yaml:"file" mapstructure:"file"`
}

// FetchConfig configures the page fetcher.
type FetchConfig struct {
	TimeoutSecs int     `yaml:"timeout_secs" mapstructure:"timeout_secs"`
	RatePerSec  float64 `yaml:"rate_per_sec" mapstructure:"rate_per_sec"`
	Debug       bool    `yaml:"debug" mapstructure:"debug"`
}

// PublishConfig configures artifact publishing.
type PublishConfig struct {
	Source string `yaml:"source" mapstructure:"source"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment. The output root is
// the one externally documented override (SORTEOS_OUT_DIR); the rest are
// internal knobs with safe defaults.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("SORTEOS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("out_dir", "public")
	v.SetDefault("fetch.timeout_secs", 30)
	v.SetDefault("fetch.rate_per_sec", 2.0)
	v.SetDefault("fetch.debug", false)
	v.SetDefault("publish.source", "https://loteriasdominicanas.com")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
