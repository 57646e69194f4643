package config

import (
	"github.com/urfave/cli/v2"
)

// CLIOptions represents command-line configuration options.
type CLIOptions struct {
	Format      string
	Label       string
	MetricsFile string
	Files       []string
	Workers     int
	NoColor     bool
	Sample      bool
	Strict      bool
}

// WithCLIConfig returns an Option that loads configuration from CLI flags.
// Only flags that were set override values from the config file.
func WithCLIConfig(ctx *cli.Context) Option {
	return func(c *Config) error {
		opts := CLIOptions{
			Files:   ctx.Args().Slice(),
			NoColor: ctx.Bool("no-color"),
			Sample:  ctx.Bool("sample"),
			Strict:  ctx.Bool("strict"),
		}

		if ctx.IsSet("format") {
			opts.Format = ctx.String("format")
		}

		if ctx.IsSet("label") {
			opts.Label = ctx.String("label")
		}

		if ctx.IsSet("workers") {
			opts.Workers = ctx.Int("workers")
		}

		if ctx.IsSet("metrics-file") {
			opts.MetricsFile = ctx.String("metrics-file")
		}

		applyCLIOptions(c, opts)

		return nil
	}
}

// applyCLIOptions applies CLI options to the config.
func applyCLIOptions(c *Config, opts CLIOptions) {
	if opts.Format != "" {
		c.Display.Format = Format(opts.Format)
	}

	if opts.Label != "" {
		c.Display.Label = opts.Label
	}

	if opts.NoColor {
		c.Display.NoColor = true
	}

	if opts.Workers != 0 {
		c.Settings.Workers = opts.Workers
	}

	if opts.MetricsFile != "" {
		c.Settings.MetricsFile = opts.MetricsFile
	}

	if opts.Strict {
		c.Settings.Strict = true
	}

	c.CLI.Files = opts.Files
	c.CLI.Sample = opts.Sample
}
