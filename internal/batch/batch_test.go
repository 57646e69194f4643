package batch_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/fittrack/internal/activity"
	"github.com/ayoisaiah/fittrack/internal/batch"
	"github.com/ayoisaiah/fittrack/internal/feed"
	"github.com/ayoisaiah/fittrack/internal/summary"
)

var packages = []feed.Record{
	{Line: 1, Code: "SWM", Args: []float64{720, 1, 80, 25, 40}},
	{Line: 2, Code: "XYZ", Args: []float64{1, 2, 3}},
	{Line: 3, Code: "RUN", Args: []float64{15000, 1, 75}},
	{Line: 4, Code: "WLK", Args: []float64{9000, 1, 75}},
	{Line: 5, Code: "WLK", Args: []float64{9000, 1, 75, 180}},
}

func TestProcessSkipsFailedRecords(t *testing.T) {
	for _, workers := range []int{0, 1, 4} {
		t.Run(fmt.Sprintf("workers=%d", workers), func(t *testing.T) {
			results := batch.Process(context.Background(), packages, batch.Options{
				Label:   activity.LabelName,
				Workers: workers,
			})

			require.Len(t, results, len(packages))

			assert.True(t, results[0].OK())
			assert.Equal(t, "Swimming", results[0].Report.Label)

			assert.ErrorIs(t, results[1].Err, activity.ErrUnknownActivityType)
			assert.Contains(t, results[1].Err.Error(), "record 2")

			assert.True(t, results[2].OK())
			assert.InDelta(t, 699.75, results[2].Report.Calories, 1e-6)

			assert.ErrorIs(t, results[3].Err, activity.ErrMalformedSensorData)

			assert.True(t, results[4].OK())
			assert.Equal(
				t,
				"Тип тренировки: SportsWalking; Длительность: 1.000 ч.; Дистанция: 5.850 км; "+
					"Ср. скорость: 5.850 км/ч; Потрачено ккал: 157.500.",
				summary.Render(results[4].Report),
			)
		})
	}
}

func TestProcessKeepsDecodeErrors(t *testing.T) {
	decodeErr := errors.New("bad line")

	results := batch.Process(context.Background(), []feed.Record{
		{Line: 1, Err: decodeErr},
		{Line: 2, Code: "RUN", Args: []float64{1000, 1, 60}},
	}, batch.Options{Label: activity.LabelCode})

	assert.ErrorIs(t, results[0].Err, decodeErr)
	assert.True(t, results[1].OK())
	assert.Equal(t, "RUN", results[1].Report.Label)
}

func TestProcessCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results := batch.Process(ctx, packages, batch.Options{Workers: 2})

	for _, r := range results {
		assert.ErrorIs(t, r.Err, context.Canceled)
	}
}

func TestOne(t *testing.T) {
	report, err := batch.One("SWM", []float64{720, 1, 80, 25, 40}, activity.LabelCode)
	require.NoError(t, err)

	assert.Equal(t, "SWM", report.Label)
	assert.InDelta(t, 336.0, report.Calories, 1e-9)

	_, err = batch.One("XYZ", []float64{1, 2, 3}, activity.LabelCode)
	assert.ErrorIs(t, err, activity.ErrUnknownActivityType)
	assert.EqualError(t, err, `unknown activity type "XYZ"`)
}

func TestRecordDumpOnlyAtDebugLevel(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	for _, tc := range []struct {
		level slog.Level
		want  bool
	}{
		{slog.LevelDebug, true},
		{slog.LevelInfo, false},
	} {
		t.Run(tc.level.String(), func(t *testing.T) {
			var buf bytes.Buffer

			slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: tc.level})))

			_, err := batch.One("RUN", []float64{15000, 1, 75}, activity.LabelName)
			require.NoError(t, err)

			assert.Equal(t, tc.want, bytes.Contains(buf.Bytes(), []byte("processing record")))
		})
	}
}
