package activity

import (
	"fmt"
	"math"

	"github.com/ayoisaiah/fittrack/internal/apperr"
	"github.com/ayoisaiah/fittrack/internal/summary"
)

var (
	// ErrUnknownActivityType is returned for sensor codes with no matching
	// activity.
	ErrUnknownActivityType = &apperr.Error{
		Message: "unknown activity type %q",
	}

	// ErrMalformedSensorData is returned when the readings do not fit the
	// resolved activity.
	ErrMalformedSensorData = &apperr.Error{
		Message: "malformed sensor data for %s: %s",
	}
)

// New constructs the activity identified by code from positional readings.
// The order of args follows Kind.Params.
func New(code string, args []float64) (Activity, error) {
	kind, err := ParseKind(code)
	if err != nil {
		return nil, err
	}

	if len(args) != kind.Arity() {
		return nil, ErrMalformedSensorData.Fmt(
			kind,
			fmt.Sprintf("expected %d values, got %d", kind.Arity(), len(args)),
		)
	}

	for i, v := range args {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, ErrMalformedSensorData.Fmt(
				kind,
				fmt.Sprintf("%s is not a finite number", kind.Params()[i]),
			)
		}
	}

	action := args[0]
	if action < 0 || action != math.Trunc(action) || action > math.MaxInt32 {
		return nil, ErrMalformedSensorData.Fmt(
			kind,
			fmt.Sprintf("action count must be a non-negative integer, got %v", action),
		)
	}

	base := Training{
		ActionCount:   int(action),
		DurationHours: args[1],
		WeightKg:      args[2],
	}

	switch kind {
	case KindRunning:
		return Running{Training: base}, nil
	case KindRaceWalking:
		if args[3] <= 0 {
			return nil, ErrMalformedSensorData.Fmt(
				kind,
				fmt.Sprintf("height must be positive, got %v", args[3]),
			)
		}

		return RaceWalking{Training: base, HeightM: args[3]}, nil
	case KindSwimming:
		return Swimming{
			Training:    base,
			PoolLengthM: args[3],
			PoolLaps:    args[4],
		}, nil
	}

	return nil, ErrUnknownActivityType.Fmt(code)
}

// Summarize computes the summary report of a.
func Summarize(a Activity, style LabelStyle) summary.Report {
	return summary.Build(
		a.Kind().Label(style),
		a.Duration(),
		a.DistanceKm(),
		a.MeanSpeedKmh(),
		a.CaloriesKcal(),
	)
}
