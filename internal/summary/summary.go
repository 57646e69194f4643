// Package summary holds the per-session workout report and its text and JSON
// renderings.
package summary

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

const messageTmpl = "Тип тренировки: %s; " +
	"Длительность: %s ч.; " +
	"Дистанция: %s км; " +
	"Ср. скорость: %s км/ч; " +
	"Потрачено ккал: %s."

// Report is the information message produced for a single workout.
type Report struct {
	Label    string  `json:"training_type"`
	Duration float64 `json:"duration"`
	Distance float64 `json:"distance"`
	Speed    float64 `json:"speed"`
	Calories float64 `json:"calories"`
}

// Build creates a report from the computed workout values.
func Build(label string, duration, distance, speed, calories float64) Report {
	return Report{
		Label:    label,
		Duration: duration,
		Distance: distance,
		Speed:    speed,
		Calories: calories,
	}
}

// Render returns the single-line summary of r. Every number is printed with
// exactly three decimal places.
func Render(r Report) string {
	return fmt.Sprintf(
		messageTmpl,
		r.Label,
		FormatFloat(r.Duration),
		FormatFloat(r.Distance),
		FormatFloat(r.Speed),
		FormatFloat(r.Calories),
	)
}

// String implements fmt.Stringer.
func (r Report) String() string {
	return Render(r)
}

// FormatFloat formats v with three decimal places. Infinities and NaN are
// printed as inf, -inf and nan.
func FormatFloat(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}

	return strconv.FormatFloat(v, 'f', 3, 64)
}

// MarshalJSON encodes non-finite numbers as null since JSON has no
// representation for them.
func (r Report) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Label    string   `json:"training_type"`
		Duration *float64 `json:"duration"`
		Distance *float64 `json:"distance"`
		Speed    *float64 `json:"speed"`
		Calories *float64 `json:"calories"`
	}{
		Label:    r.Label,
		Duration: finite(r.Duration),
		Distance: finite(r.Distance),
		Speed:    finite(r.Speed),
		Calories: finite(r.Calories),
	})
}

func finite(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}

	return &v
}
