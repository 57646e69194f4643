package ui

import (
	"github.com/pterm/pterm"
)

// DarkTheme selects the light colour variants which read better on dark
// terminals.
var DarkTheme = true

type colorPair struct {
	dark  pterm.Color
	light pterm.Color
}

var activityColors = map[string]colorPair{
	"RUN": {pterm.FgLightGreen, pterm.FgGreen},
	"WLK": {pterm.FgLightCyan, pterm.FgCyan},
	"SWM": {pterm.FgLightBlue, pterm.FgBlue},
}

func paint(p colorPair, a any) string {
	if DarkTheme {
		return p.dark.Sprint(a)
	}

	return p.light.Sprint(a)
}

// Activity colours label according to the activity code. Unknown codes are
// returned unstyled.
func Activity(code string, label any) string {
	p, ok := activityColors[code]
	if !ok {
		return pterm.Sprint(label)
	}

	return paint(p, label)
}

func Green(a any) string {
	return paint(colorPair{pterm.FgLightGreen, pterm.FgGreen}, a)
}

func Red(a any) string {
	return paint(colorPair{pterm.FgLightRed, pterm.FgRed}, a)
}

func Highlight(a any) string {
	return paint(colorPair{pterm.FgLightWhite, pterm.FgBlack}, a)
}
