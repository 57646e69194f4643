// Package activity implements the distance, speed and calorie formulas for
// each supported workout and the dispatch from sensor codes to them.
package activity

import "math"

const (
	metersInKm    = 1000
	minutesInHour = 60

	// stepLength is the distance covered by one stride in meters.
	stepLength = 0.65
	// strokeLength is the distance covered by one swimming stroke in meters.
	strokeLength = 1.38

	runCalorieSpeedMultiplier = 18
	runCalorieSpeedShift      = 20

	walkCalorieWeightMultiplier = 0.035
	walkCalorieSpeedMultiplier  = 0.029

	swimCalorieSpeedShift = 1.1
	swimCalorieMultiplier = 2
)

// Activity is a completed workout from which a summary can be derived.
type Activity interface {
	Kind() Kind
	// Duration is the elapsed time in hours.
	Duration() float64
	DistanceKm() float64
	MeanSpeedKmh() float64
	CaloriesKcal() float64
}

var (
	_ Activity = Running{}
	_ Activity = RaceWalking{}
	_ Activity = Swimming{}
)

// Training holds the readings shared by every activity.
type Training struct {
	ActionCount   int
	DurationHours float64
	WeightKg      float64
}

func (t Training) Duration() float64 {
	return t.DurationHours
}

func (t Training) distance(actionLength float64) float64 {
	return float64(t.ActionCount) * actionLength / metersInKm
}

// Running is a run measured in strides.
type Running struct {
	Training
}

func (Running) Kind() Kind {
	return KindRunning
}

func (r Running) DistanceKm() float64 {
	return r.distance(stepLength)
}

func (r Running) MeanSpeedKmh() float64 {
	return r.DistanceKm() / r.DurationHours
}

func (r Running) CaloriesKcal() float64 {
	return (runCalorieSpeedMultiplier*r.MeanSpeedKmh() - runCalorieSpeedShift) *
		r.WeightKg / metersInKm * r.DurationHours * minutesInHour
}

// RaceWalking is a sports walk measured in strides. HeightM is the walker's
// height in meters.
type RaceWalking struct {
	Training
	HeightM float64
}

func (RaceWalking) Kind() Kind {
	return KindRaceWalking
}

func (w RaceWalking) DistanceKm() float64 {
	return w.distance(stepLength)
}

func (w RaceWalking) MeanSpeedKmh() float64 {
	return w.DistanceKm() / w.DurationHours
}

// CaloriesKcal uses the floored quotient of the squared speed and height.
func (w RaceWalking) CaloriesKcal() float64 {
	speed := w.MeanSpeedKmh()
	ratio := floorDiv(speed*speed, w.HeightM)

	return (walkCalorieWeightMultiplier*w.WeightKg +
		ratio*walkCalorieSpeedMultiplier*w.WeightKg) *
		w.DurationHours * minutesInHour
}

// Swimming is a pool swim measured in strokes.
type Swimming struct {
	Training
	PoolLengthM float64
	PoolLaps    float64
}

func (Swimming) Kind() Kind {
	return KindSwimming
}

func (s Swimming) DistanceKm() float64 {
	return s.distance(strokeLength)
}

// MeanSpeedKmh is derived from the pool geometry, not the stroke count.
func (s Swimming) MeanSpeedKmh() float64 {
	return s.PoolLengthM * s.PoolLaps / metersInKm / s.DurationHours
}

func (s Swimming) CaloriesKcal() float64 {
	return (s.MeanSpeedKmh() + swimCalorieSpeedShift) *
		swimCalorieMultiplier * s.WeightKg
}

// floorDiv returns the floored quotient of a and b computed from the
// remainder of the division, so that 1.0 and 0.1 give 9 rather than the 10
// obtained by flooring the rounded quotient.
func floorDiv(a, b float64) float64 {
	mod := math.Mod(a, b)
	div := (a - mod) / b

	if mod != 0 && (b < 0) != (mod < 0) {
		div--
	}

	if div == 0 {
		return math.Copysign(0, a/b)
	}

	floor := math.Floor(div)
	if div-floor > 0.5 {
		floor++
	}

	return floor
}
