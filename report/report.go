// Package report prints user-facing diagnostics
package report

import (
	"io"
	"os"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/fittrack/internal/osutil"
)

// RecordSkipped reports a record that could not be summarised.
func RecordSkipped(w io.Writer, err error) {
	pterm.Error.WithWriter(w).Println(err)
}

func Info(w io.Writer, msg string) {
	pterm.Info.WithWriter(w).Println(msg)
}

// Quit prints err and exits with a non-zero status.
func Quit(err error) {
	pterm.Error.Println(err)
	os.Exit(int(osutil.ExitError))
}
