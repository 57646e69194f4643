// Package batch turns a feed of sensor records into summary reports. Every
// record is independent: a failing record is reported and the rest of the
// batch carries on.
package batch

import (
	"context"
	"errors"
	"log/slog"

	"github.com/davecgh/go-spew/spew"
	"golang.org/x/sync/errgroup"

	"github.com/ayoisaiah/fittrack/internal/activity"
	"github.com/ayoisaiah/fittrack/internal/feed"
	"github.com/ayoisaiah/fittrack/internal/observability"
	"github.com/ayoisaiah/fittrack/internal/summary"
)

// Options controls how a batch is processed.
type Options struct {
	Label activity.LabelStyle
	// Workers bounds the number of records computed at once. Values below
	// one are treated as one.
	Workers int
}

// Result is the outcome of a single record. Exactly one of Report and Err is
// meaningful.
type Result struct {
	Err    error
	Record feed.Record
	Report summary.Report
}

// OK reports whether the record produced a summary.
func (r Result) OK() bool {
	return r.Err == nil
}

// Process computes a result for every record. Results are returned in the
// order of records regardless of the number of workers.
func Process(
	ctx context.Context,
	records []feed.Record,
	opts Options,
) []Result {
	results := make([]Result, len(records))

	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := range records {
		i := i
		g.Go(func() error {
			results[i] = processRecord(ctx, records[i], opts.Label)
			return nil
		})
	}

	_ = g.Wait()

	return results
}

// One computes the summary of a single record.
func One(code string, args []float64, label activity.LabelStyle) (summary.Report, error) {
	res := processRecord(
		context.Background(),
		feed.Record{Code: code, Args: args},
		label,
	)

	return res.Report, res.Err
}

func processRecord(
	ctx context.Context,
	rec feed.Record,
	label activity.LabelStyle,
) Result {
	res := Result{Record: rec}

	if err := ctx.Err(); err != nil {
		res.Err = err
		return res
	}

	if slog.Default().Enabled(ctx, slog.LevelDebug) {
		slog.DebugContext(ctx, "processing record", slog.String("record", spew.Sdump(rec)))
	}

	if rec.Err != nil {
		res.Err = rec.Err
		recordFailure(ctx, rec, res.Err)

		return res
	}

	a, err := activity.New(rec.Code, rec.Args)
	if err != nil {
		res.Err = err
		if rec.Line > 0 {
			res.Err = &PositionError{Position: rec.Position(), Err: err}
		}

		recordFailure(ctx, rec, err)

		return res
	}

	res.Report = activity.Summarize(a, label)

	observability.RecordProcessed(a.Kind().String(), res.Report.Calories)

	return res
}

func recordFailure(ctx context.Context, rec feed.Record, err error) {
	reason := observability.ReasonOther

	switch {
	case errors.Is(err, activity.ErrUnknownActivityType):
		reason = observability.ReasonUnknownType
	case errors.Is(err, activity.ErrMalformedSensorData):
		reason = observability.ReasonMalformed
	}

	observability.RecordFailed(reason)

	slog.WarnContext(
		ctx,
		"record skipped",
		slog.String("type", rec.Code),
		slog.Int("line", rec.Line),
		slog.String("reason", reason),
		slog.Any("error", err),
	)
}

// PositionError annotates a record error with its location in the feed.
type PositionError struct {
	Err      error
	Position string
}

func (e *PositionError) Error() string {
	return e.Position + ": " + e.Err.Error()
}

func (e *PositionError) Unwrap() error {
	return e.Err
}
