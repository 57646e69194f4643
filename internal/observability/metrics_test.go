package observability

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordProcessed(t *testing.T) {
	before := testutil.ToFloat64(processedCounter.WithLabelValues("RUN"))

	RecordProcessed("RUN", 699.75)

	after := testutil.ToFloat64(processedCounter.WithLabelValues("RUN"))
	assert.InDelta(t, 1, after-before, 0)
}

func TestRecordFailed(t *testing.T) {
	before := testutil.ToFloat64(failedCounter.WithLabelValues(ReasonUnknownType))

	RecordFailed(ReasonUnknownType)
	RecordFailed(ReasonUnknownType)

	after := testutil.ToFloat64(failedCounter.WithLabelValues(ReasonUnknownType))
	assert.InDelta(t, 2, after-before, 0)
}

func TestWriteTextfile(t *testing.T) {
	RecordProcessed("SWM", 336)

	path := filepath.Join(t.TempDir(), "fittrack.prom")
	require.NoError(t, WriteTextfile(path))

	b, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Contains(t, string(b), `fittrack_sessions_processed_total{activity="SWM"}`)
	assert.Contains(t, string(b), "fittrack_sessions_calories_bucket")
}

func TestNonFiniteCaloriesNotObserved(t *testing.T) {
	RecordProcessed("WLK", 157.5)
	RecordProcessed("WLK", math.NaN())
	RecordProcessed("WLK", math.Inf(1))

	path := filepath.Join(t.TempDir(), "fittrack.prom")
	require.NoError(t, WriteTextfile(path))

	b, err := os.ReadFile(path)
	require.NoError(t, err)

	out := string(b)

	assert.Contains(t, out, `fittrack_sessions_processed_total{activity="WLK"} 3`)
	assert.Contains(t, out, `fittrack_sessions_calories_sum{activity="WLK"} 157.5`)
	assert.Contains(t, out, `fittrack_sessions_calories_count{activity="WLK"} 1`)
	assert.NotContains(t, out, "NaN")
}
