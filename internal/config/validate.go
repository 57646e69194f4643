package config

import (
	"log/slog"
	"strings"

	"github.com/ayoisaiah/fittrack/internal/activity"
)

var (
	minWorkers = 1
	maxWorkers = 64
)

// Validate performs validation checks on the Config struct and its fields.
func (c *Config) Validate() error {
	if err := c.validateDisplay(); err != nil {
		return err
	}

	if err := c.validateSettings(); err != nil {
		return err
	}

	return nil
}

func (c *Config) validateDisplay() error {
	switch c.Display.Format {
	case FormatText, FormatTable, FormatJSON:
	default:
		return errInvalidFormat.Fmt(c.Display.Format)
	}

	if _, err := activity.ParseLabelStyle(c.Display.Label); err != nil {
		return err
	}

	return nil
}

func (c *Config) validateSettings() error {
	if c.Settings.Workers < minWorkers || c.Settings.Workers > maxWorkers {
		return errInvalidWorkers.Fmt(minWorkers, maxWorkers, c.Settings.Workers)
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(c.Settings.LogLevel))); err != nil {
		return errInvalidLogLevel.Fmt(c.Settings.LogLevel)
	}

	return nil
}

// LabelStyle returns the validated label style.
func (c *Config) LabelStyle() activity.LabelStyle {
	return activity.LabelStyle(c.Display.Label)
}
