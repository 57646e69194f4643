package app

import (
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/fittrack/internal/config"
)

// Get retrieves the fittrack app instance.
func Get() *cli.App {
	// Override the default help template
	cli.AppHelpTemplate = helpText()

	return &cli.App{
		Name: "fittrack",
		Usage: `
		fittrack turns raw fitness sensor readings into workout summaries. Each
		record is an activity code (RUN, WLK or SWM) followed by its readings;
		one summary line is printed per record.`,
		UsageText:            "fittrack [OPTIONS] [FILE...]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:      "calc",
				Usage:     "Summarise a single workout given on the command line",
				UsageText: "fittrack calc CODE ACTION DURATION WEIGHT [EXTRA...]",
				Action:    calcAction,
			},
			{
				Name:   "enter",
				Usage:  "Enter the readings of a workout interactively",
				Action: enterAction,
			},
			{
				Name:   "types",
				Usage:  "List the supported activity types and their readings",
				Action: typesAction,
			},
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction,
			},
		},
		Flags: []cli.Flag{
			sampleFlag,
			formatFlag,
			labelFlag,
			workersFlag,
			metricsFileFlag,
			statsFlag,
			strictFlag,
			noColorFlag,
		},
		Action: defaultAction,
		Before: beforeAction,
		After:  afterAction,
	}
}
