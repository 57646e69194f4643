package activity_test

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/ayoisaiah/fittrack/internal/activity"
)

func TestNew(t *testing.T) {
	cases := []struct {
		want    activity.Activity
		wantErr error
		name    string
		code    string
		args    []float64
	}{
		{
			name: "running",
			code: "RUN",
			args: []float64{15000, 1, 75},
			want: activity.Running{
				Training: activity.Training{ActionCount: 15000, DurationHours: 1, WeightKg: 75},
			},
		},
		{
			name: "race walking",
			code: "WLK",
			args: []float64{9000, 1, 75, 180},
			want: activity.RaceWalking{
				Training: activity.Training{ActionCount: 9000, DurationHours: 1, WeightKg: 75},
				HeightM:  180,
			},
		},
		{
			name: "swimming",
			code: "SWM",
			args: []float64{720, 1, 80, 25, 40},
			want: activity.Swimming{
				Training:    activity.Training{ActionCount: 720, DurationHours: 1, WeightKg: 80},
				PoolLengthM: 25,
				PoolLaps:    40,
			},
		},
		{
			name:    "unknown code",
			code:    "XYZ",
			args:    []float64{1, 2, 3},
			wantErr: activity.ErrUnknownActivityType,
		},
		{
			name:    "lower case code",
			code:    "run",
			args:    []float64{1, 2, 3},
			wantErr: activity.ErrUnknownActivityType,
		},
		{
			name:    "empty code",
			code:    "",
			wantErr: activity.ErrUnknownActivityType,
		},
		{
			name:    "too few values",
			code:    "SWM",
			args:    []float64{720, 1, 80, 25},
			wantErr: activity.ErrMalformedSensorData,
		},
		{
			name:    "too many values",
			code:    "RUN",
			args:    []float64{15000, 1, 75, 180},
			wantErr: activity.ErrMalformedSensorData,
		},
		{
			name:    "fractional action count",
			code:    "RUN",
			args:    []float64{150.5, 1, 75},
			wantErr: activity.ErrMalformedSensorData,
		},
		{
			name:    "negative action count",
			code:    "RUN",
			args:    []float64{-1, 1, 75},
			wantErr: activity.ErrMalformedSensorData,
		},
		{
			name:    "action count above 32-bit range",
			code:    "RUN",
			args:    []float64{math.MaxInt32 + 1, 1, 75},
			wantErr: activity.ErrMalformedSensorData,
		},
		{
			name: "largest action count",
			code: "RUN",
			args: []float64{math.MaxInt32, 1, 75},
			want: activity.Running{
				Training: activity.Training{ActionCount: math.MaxInt32, DurationHours: 1, WeightKg: 75},
			},
		},
		{
			name:    "zero height",
			code:    "WLK",
			args:    []float64{9000, 1, 75, 0},
			wantErr: activity.ErrMalformedSensorData,
		},
		{
			name:    "negative height",
			code:    "WLK",
			args:    []float64{9000, 1, 75, -1.8},
			wantErr: activity.ErrMalformedSensorData,
		},
		{
			name:    "not a number",
			code:    "SWM",
			args:    []float64{720, math.NaN(), 80, 25, 40},
			wantErr: activity.ErrMalformedSensorData,
		},
		{
			name: "zero duration is accepted",
			code: "RUN",
			args: []float64{15000, 0, 75},
			want: activity.Running{
				Training: activity.Training{ActionCount: 15000, WeightKg: 75},
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := activity.New(tc.code, tc.args)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Nil(t, got)

				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("New(%q) mismatch (-want +got):\n%s", tc.code, diff)
			}
		})
	}
}

func TestUnknownTypeIsNotMalformed(t *testing.T) {
	_, err := activity.New("XYZ", []float64{1, 2, 3})

	assert.False(t, errors.Is(err, activity.ErrMalformedSensorData))
	assert.EqualError(t, err, `unknown activity type "XYZ"`)
}

func TestParseKind(t *testing.T) {
	for _, k := range activity.Kinds() {
		got, err := activity.ParseKind(k.String())

		assert.NoError(t, err)
		assert.Equal(t, k, got)
	}

	assert.Equal(t, 3, activity.KindRunning.Arity())
	assert.Equal(t, 4, activity.KindRaceWalking.Arity())
	assert.Equal(t, 5, activity.KindSwimming.Arity())
	assert.Equal(t, "SportsWalking", activity.KindRaceWalking.Name())
}

func TestParseLabelStyle(t *testing.T) {
	style, err := activity.ParseLabelStyle("code")
	assert.NoError(t, err)
	assert.Equal(t, activity.LabelCode, style)

	_, err = activity.ParseLabelStyle("class")
	assert.Error(t, err)
}
