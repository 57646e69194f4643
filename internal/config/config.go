package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

type (
	// Config holds all configuration settings
	Config struct {
		Display  DisplayConfig  `mapstructure:"display"`
		Settings SettingsConfig `mapstructure:"settings"`
		CLI      CLIConfig      `mapstructure:"-"`
	}

	// DisplayConfig holds output-related settings
	DisplayConfig struct {
		Format  Format `mapstructure:"format"`
		Label   string `mapstructure:"label"`
		NoColor bool   `mapstructure:"no_color"`
	}

	// SettingsConfig holds processing settings
	SettingsConfig struct {
		LogLevel    string `mapstructure:"log_level"`
		MetricsFile string `mapstructure:"metrics_file"`
		Workers     int    `mapstructure:"workers"`
		Strict      bool   `mapstructure:"strict"`
	}

	// CLIConfig holds values that only come from the command line
	CLIConfig struct {
		Files  []string
		Sample bool
	}

	// Option is a function that modifies Config
	Option func(*Config) error

	// Format is the output format of summaries
	Format string
)

const Version = "v0.3.0"

const (
	FormatText  Format = "text"
	FormatTable Format = "table"
	FormatJSON  Format = "json"
)

var (
	Stdin  io.Reader = os.Stdin
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

// Default returns a Config populated with default values.
func Default() *Config {
	return &Config{
		Display: DisplayConfig{
			Format: FormatText,
			Label:  "name",
		},
		Settings: SettingsConfig{
			LogLevel: "info",
			Workers:  1,
		},
	}
}

// New creates a new Config with default values, applies options in order and
// validates the result.
func New(opts ...Option) (*Config, error) {
	cfg := Default()

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errConfigOption.Wrap(err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, errConfigValidation.Wrap(err)
	}

	return cfg, nil
}

// SlogLevel returns the configured log level.
func (c *Config) SlogLevel() slog.Level {
	var level slog.Level

	// validated beforehand
	_ = level.UnmarshalText([]byte(strings.TrimSpace(c.Settings.LogLevel)))

	return level
}

func (c *Config) String() string {
	return fmt.Sprintf("%+v", *c)
}
