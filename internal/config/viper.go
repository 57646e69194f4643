package config

import (
	"errors"
	"os"

	"github.com/spf13/viper"
)

// viperKeys defines the mapping between config keys and their Viper counterparts.
const (
	keyFormat      = "display.format"
	keyLabel       = "display.label"
	keyNoColor     = "display.no_color"
	keyWorkers     = "settings.workers"
	keyLogLevel    = "settings.log_level"
	keyStrict      = "settings.strict"
	keyMetricsFile = "settings.metrics_file"
)

// WithViperConfig returns an Option that loads configuration from the YAML
// file at configPath. The file is created with default values if it does not
// exist yet.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		setupViper(v, c)

		err := v.ReadInConfig()
		if err == nil {
			return loadViperConfig(v, c)
		}

		if !errors.Is(err, os.ErrNotExist) {
			return errReadConfig.Wrap(err)
		}

		if err := v.WriteConfig(); err != nil {
			return errWriteConfig.Wrap(err)
		}

		return loadViperConfig(v, c)
	}
}

// setupViper registers the current values of c as defaults.
func setupViper(v *viper.Viper, c *Config) {
	v.SetDefault(keyFormat, string(c.Display.Format))
	v.SetDefault(keyLabel, c.Display.Label)
	v.SetDefault(keyNoColor, c.Display.NoColor)
	v.SetDefault(keyWorkers, c.Settings.Workers)
	v.SetDefault(keyLogLevel, c.Settings.LogLevel)
	v.SetDefault(keyStrict, c.Settings.Strict)
	v.SetDefault(keyMetricsFile, c.Settings.MetricsFile)
}

// loadViperConfig loads configuration from Viper into the Config struct.
func loadViperConfig(v *viper.Viper, c *Config) error {
	if err := v.Unmarshal(c); err != nil {
		return errReadConfig.Wrap(err)
	}

	return nil
}
