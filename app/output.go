package app

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ayoisaiah/fittrack/internal/activity"
	"github.com/ayoisaiah/fittrack/internal/batch"
	"github.com/ayoisaiah/fittrack/internal/config"
	"github.com/ayoisaiah/fittrack/internal/summary"
	"github.com/ayoisaiah/fittrack/internal/ui"
	"github.com/ayoisaiah/fittrack/report"
	"github.com/ayoisaiah/fittrack/stats"
)

const noRecordsMsg = "No sensor records found in the input"

// jsonResult is the JSON representation of one processed record.
type jsonResult struct {
	Summary *summary.Report `json:"summary,omitempty"`
	Type    string          `json:"type"`
	Error   string          `json:"error,omitempty"`
	Line    int             `json:"line"`
}

// printResults writes results to w in the requested format. In text mode
// failed records are reported on errW and do not interrupt the output. st is
// printed after the results when not nil.
func printResults(
	w, errW io.Writer,
	results []batch.Result,
	st *stats.Stats,
	format config.Format,
) error {
	switch format {
	case config.FormatJSON:
		return printJSON(w, results, st)
	case config.FormatTable:
		printResultsTable(w, results)
		printStats(w, st)

		return nil
	}

	if len(results) == 0 {
		report.Info(errW, noRecordsMsg)
		return nil
	}

	for i := range results {
		res := results[i]

		if !res.OK() {
			report.RecordSkipped(errW, res.Err)
			continue
		}

		fmt.Fprintln(w, summary.Render(res.Report))
	}

	printStats(w, st)

	return nil
}

func printStats(w io.Writer, st *stats.Stats) {
	if st == nil {
		return
	}

	fmt.Fprintln(w)
	fmt.Fprint(w, st.Summary())
	ui.PrintTable(st.Table(), w)
}

func printJSON(w io.Writer, results []batch.Result, st *stats.Stats) error {
	out := make([]jsonResult, len(results))

	for i := range results {
		res := results[i]

		out[i] = jsonResult{
			Line: res.Record.Line,
			Type: res.Record.Code,
		}

		if res.OK() {
			out[i].Summary = &res.Report
		} else {
			out[i].Error = res.Err.Error()
		}
	}

	var v any = out

	if st != nil {
		v = struct {
			Stats   *stats.Stats `json:"stats"`
			Results []jsonResult `json:"results"`
		}{st, out}
	}

	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	fmt.Fprintln(w, string(b))

	return nil
}

// printResultsTable prints a table of summaries to the command-line. Failed
// records appear with their error in the status column.
func printResultsTable(w io.Writer, results []batch.Result) {
	tableBody := make([][]string, len(results))

	for i := range results {
		res := results[i]

		row := []string{
			strconv.Itoa(i + 1),
			ui.Activity(res.Record.Code, res.Record.Code),
			"", "", "", "",
		}

		if res.OK() {
			r := res.Report
			row[1] = ui.Activity(res.Record.Code, r.Label)
			row[2] = summary.FormatFloat(r.Duration)
			row[3] = summary.FormatFloat(r.Distance)
			row[4] = summary.FormatFloat(r.Speed)
			row[5] = summary.FormatFloat(r.Calories)
			row = append(row, ui.Green("ok"))
		} else {
			row = append(row, ui.Red(res.Err.Error()))
		}

		tableBody[i] = row
	}

	tableBody = append([][]string{
		{"#", "TYPE", "DURATION (H)", "DISTANCE (KM)", "SPEED (KM/H)", "CALORIES (KCAL)", "STATUS"},
	}, tableBody...)

	ui.PrintTable(tableBody, w)
}

// printTypesTable prints the supported activity types and their readings.
func printTypesTable(w io.Writer) {
	tableBody := [][]string{{"CODE", "NAME", "READINGS"}}

	for _, k := range activity.Kinds() {
		tableBody = append(tableBody, []string{
			ui.Activity(k.String(), k.String()),
			k.Name(),
			strings.Join(k.Params(), " "),
		})
	}

	ui.PrintTable(tableBody, w)
}
