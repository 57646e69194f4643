// Package stats aggregates workout summaries across a feed
package stats

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/ayoisaiah/fittrack/internal/batch"
	"github.com/ayoisaiah/fittrack/internal/summary"
	"github.com/ayoisaiah/fittrack/internal/ui"
)

// Totals accumulates the sessions of one activity. Non-finite values, such as
// the speed of a zero-length workout, are counted in Sessions but left out of
// the sums.
type Totals struct {
	Label    string  `json:"training_type"`
	Sessions int     `json:"sessions"`
	Duration float64 `json:"duration"`
	Distance float64 `json:"distance"`
	Calories float64 `json:"calories"`

	// timedDistance only includes sessions with a finite speed.
	timedDistance float64
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Stats is the aggregate of a processed feed.
type Stats struct {
	Activities []Totals `json:"activities"`
	Overall    Totals   `json:"overall"`
	Failed     int      `json:"failed"`
}

func addFinite(sum *float64, v float64) {
	if isFinite(v) {
		*sum += v
	}
}

func (t *Totals) add(r summary.Report) {
	t.Sessions++
	addFinite(&t.Duration, r.Duration)
	addFinite(&t.Distance, r.Distance)
	addFinite(&t.Calories, r.Calories)

	if isFinite(r.Speed) {
		addFinite(&t.timedDistance, r.Distance)
	}
}

// MeanSpeed is the distance over the duration of the sessions that have a
// finite speed.
func (t Totals) MeanSpeed() float64 {
	if t.Duration == 0 {
		return 0
	}

	return t.timedDistance / t.Duration
}

func (t Totals) MarshalJSON() ([]byte, error) {
	type totals Totals

	return json.Marshal(struct {
		totals
		Speed float64 `json:"speed"`
	}{totals(t), t.MeanSpeed()})
}

// Compute aggregates results by report label. Activities are sorted by
// label.
func Compute(results []batch.Result) Stats {
	var s Stats

	byLabel := make(map[string]*Totals)

	for i := range results {
		res := results[i]

		if !res.OK() {
			s.Failed++
			continue
		}

		t, ok := byLabel[res.Report.Label]
		if !ok {
			t = &Totals{Label: res.Report.Label}
			byLabel[res.Report.Label] = t
		}

		t.add(res.Report)
		s.Overall.add(res.Report)
	}

	s.Overall.Label = "Total"

	for _, t := range byLabel {
		s.Activities = append(s.Activities, *t)
	}

	sort.Slice(s.Activities, func(i, j int) bool {
		return s.Activities[i].Label < s.Activities[j].Label
	})

	return s
}

// Table returns the statistics as table rows including a header row and a
// final row for the overall totals.
func (s Stats) Table() [][]string {
	rows := [][]string{
		{"TYPE", "SESSIONS", "DURATION (H)", "DISTANCE (KM)", "SPEED (KM/H)", "CALORIES (KCAL)"},
	}

	row := func(t Totals, label string) []string {
		return []string{
			label,
			strconv.Itoa(t.Sessions),
			summary.FormatFloat(t.Duration),
			summary.FormatFloat(t.Distance),
			summary.FormatFloat(t.MeanSpeed()),
			summary.FormatFloat(t.Calories),
		}
	}

	for _, t := range s.Activities {
		rows = append(rows, row(t, t.Label))
	}

	rows = append(rows, row(s.Overall, ui.Highlight(s.Overall.Label)))

	return rows
}

// Summary returns a short description of the feed outcome.
func (s Stats) Summary() string {
	return fmt.Sprintf(
		"Sessions summarised: %s\nRecords skipped: %s\n",
		ui.Green(s.Overall.Sessions),
		ui.Red(s.Failed),
	)
}
