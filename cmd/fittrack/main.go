package main

import (
	"os"

	"github.com/ayoisaiah/fittrack/app"
	"github.com/ayoisaiah/fittrack/report"
)

func run(args []string) error {
	return app.Get().Run(args)
}

func main() {
	err := run(os.Args)
	if err != nil {
		report.Quit(err)
	}
}
