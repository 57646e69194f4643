package app

import "github.com/urfave/cli/v2"

var (
	sampleFlag = &cli.BoolFlag{
		Name:  "sample",
		Usage: "Process the built-in sample sensor packages instead of reading a feed",
	}

	formatFlag = &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Usage:   "Output format. Possible values are: text, table, json (default: text)",
	}

	labelFlag = &cli.StringFlag{
		Name:    "label",
		Aliases: []string{"l"},
		Usage:   "Label summaries with the activity 'name' (e.g. SportsWalking) or its 'code' (e.g. WLK)",
	}

	workersFlag = &cli.IntFlag{
		Name:    "workers",
		Aliases: []string{"w"},
		Usage:   "Number of records computed concurrently (default: 1)",
	}

	metricsFileFlag = &cli.StringFlag{
		Name:  "metrics-file",
		Usage: "Write processing metrics in the Prometheus text format to this file",
	}

	statsFlag = &cli.BoolFlag{
		Name:    "stats",
		Aliases: []string{"s"},
		Usage:   "Print totals per activity type after the summaries",
	}

	strictFlag = &cli.BoolFlag{
		Name:  "strict",
		Usage: "Exit with an error if any record could not be processed",
	}

	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}
)
