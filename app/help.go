package app

import (
	"fmt"

	"github.com/pterm/pterm"
)

func helpText() string {
	description := fmt.Sprintf(
		"%s\n\t\t{{.Usage}}\n\n",
		pterm.Yellow("DESCRIPTION"),
	)

	usage := fmt.Sprintf(
		"%s\n\t\t{{if .UsageText}}{{ .UsageText }}{{else}}{{.HelpName}}{{end}}\n\n",
		pterm.Yellow("USAGE"),
	)

	version := fmt.Sprintf(
		"{{if .Version}}%s\n\t\t{{.Version}}{{end}}\n\n",
		pterm.Yellow("VERSION"),
	)

	commands := fmt.Sprintf(
		"%s\n{{range .Commands}}{{if not .HideHelp}}   %s{{ `\t`}}{{.Usage}}{{ `\n` }}{{end}}{{end}}\n\n",
		pterm.Yellow("COMMANDS"),
		pterm.Green("{{join .Names `, `}}"),
	)

	options := fmt.Sprintf(
		"%s\n{{range .VisibleFlags}}\t\t{{if .Aliases}}{{range $element := .Aliases}}%s,{{end}}{{end}} %s\n\t\t\t\t{{.Usage}}\n\n{{end}}",
		pterm.Yellow("OPTIONS"),
		pterm.Green("-{{$element}}"),
		pterm.Green("--{{.Name}} {{.DefaultText}}"),
	)

	feed := fmt.Sprintf(
		"%s\n\t\t%s\n\n",
		pterm.Yellow("FEED FORMAT"),
		feedHelp(),
	)

	env := fmt.Sprintf(
		"%s\n\t\t%s\n\n",
		pterm.Yellow("ENVIRONMENTAL VARIABLES"),
		envHelp(),
	)

	return description + usage + version + commands + options + feed + env
}

func feedHelp() string {
	return `
One record per line: CODE ACTION DURATION WEIGHT [EXTRA...]. Values may be
separated by spaces or commas; blank lines and lines starting with # are ignored.

RUN action duration weight
WLK action duration weight height
SWM action duration weight pool_length pool_laps

Files ending in .yml or .yaml hold a list of {type: CODE, data: [values]}.`
}

func envHelp() string {
	return `
FITTRACK_NO_COLOR, NO_COLOR: set to any value to avoid printing ANSI escape sequences for color output.

FITTRACK_ENV: set to a name to use a separate config and log file for that environment.`
}
