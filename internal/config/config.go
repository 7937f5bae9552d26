package config

import (
	"errors"
	"os"

	"github.com/spf13/viper"
)

// Config holds the application configuration.
type Config struct {
	LogLevel string       `mapstructure:"log_level"`
	Export   ExportConfig `mapstructure:"export"`
	HTML     HTMLConfig   `mapstructure:"html"`
}

// ExportConfig holds export defaults; flags override them.
type ExportConfig struct {
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}

// HTMLConfig holds HTML page options.
type HTMLConfig struct {
	Title string `mapstructure:"title"`
}

// Load reads the optional config.yaml (path overridable via CONFIG_PATH).
// A missing file is fine; defaults apply.
func Load() (*Config, error) {
	v := viper.New()
	v.SetDefault("log_level", "info")
	v.SetDefault("export.format", "html")
	v.SetDefault("export.output", "")
	v.SetDefault("html.title", "RikkaHub 对话浏览器")

	explicit := os.Getenv("CONFIG_PATH")
	if explicit != "" {
		v.SetConfigFile(explicit)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit != "" || !errors.As(err, &notFound) {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
