// Package observability records processing metrics and exports them in the
// Prometheus text format.
package observability

import (
	"math"

	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds every fittrack collector. It is separate from the default
// registry so that exported files only contain fittrack series.
var Registry = prometheus.NewRegistry()

var (
	processedCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fittrack",
		Subsystem: "sessions",
		Name:      "processed_total",
		Help:      "Number of sensor records summarised, by activity type.",
	}, []string{"activity"})

	failedCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fittrack",
		Subsystem: "sessions",
		Name:      "failed_total",
		Help:      "Number of sensor records rejected, by reason.",
	}, []string{"reason"})

	caloriesHistogram = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "fittrack",
		Subsystem: "sessions",
		Name:      "calories",
		Help:      "Distribution of calories burned per session.",
		Buckets:   []float64{50, 100, 200, 350, 500, 750, 1000, 1500},
	}, []string{"activity"})
)

// Failure reasons.
const (
	ReasonUnknownType = "unknown_type"
	ReasonMalformed   = "malformed"
	ReasonOther       = "other"
)

func init() {
	Registry.MustRegister(processedCounter, failedCounter, caloriesHistogram)
}

// RecordProcessed counts a successfully summarised session. Non-finite
// calories, as produced by a zero-length session, are not observed.
func RecordProcessed(activity string, calories float64) {
	processedCounter.WithLabelValues(activity).Inc()

	if math.IsNaN(calories) || math.IsInf(calories, 0) {
		return
	}

	caloriesHistogram.WithLabelValues(activity).Observe(calories)
}

// RecordFailed counts a rejected record.
func RecordFailed(reason string) {
	failedCounter.WithLabelValues(reason).Inc()
}

// WriteTextfile writes the current metric values to path, in the format read
// by the node exporter textfile collector.
func WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, Registry)
}
