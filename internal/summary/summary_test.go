package summary_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/fittrack/internal/summary"
	"github.com/ayoisaiah/fittrack/internal/testutil"
)

type renderTest struct {
	Name       string
	GoldenFile string
	Report     summary.Report
}

func (r renderTest) Output() (out []byte, name string) {
	return []byte(summary.Render(r.Report) + "\n"), r.GoldenFile
}

var renderTestCases = []renderTest{
	{
		Name:       "swimming sample",
		GoldenFile: "swimming",
		Report:     summary.Build("Swimming", 1, 0.9936, 1, 336),
	},
	{
		Name:       "running sample",
		GoldenFile: "running",
		Report:     summary.Build("Running", 1, 9.75, 9.75, 699.75),
	},
	{
		Name:       "walking sample",
		GoldenFile: "walking",
		Report:     summary.Build("SportsWalking", 1, 5.85, 5.85, 157.5),
	},
	{
		Name:       "zero duration",
		GoldenFile: "zero_duration",
		Report:     summary.Build("RUN", 0, 0.65, math.Inf(1), math.NaN()),
	},
}

func TestRender(t *testing.T) {
	for _, tc := range renderTestCases {
		t.Run(tc.Name, func(t *testing.T) {
			testutil.CompareGoldenFile(t, tc)
		})
	}
}

func TestFormatFloat(t *testing.T) {
	cases := []struct {
		want string
		in   float64
	}{
		{"0.000", 0},
		{"1.000", 1},
		{"0.994", 0.9936},
		{"1000000000.000", 1e9},
		{"123456789012.346", 123456789012.3456},
		{"-12.500", -12.5},
		{"inf", math.Inf(1)},
		{"-inf", math.Inf(-1)},
		{"nan", math.NaN()},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, summary.FormatFloat(tc.in), "input %v", tc.in)
	}
}

func TestRenderTemplate(t *testing.T) {
	got := summary.Render(summary.Build("WLK", 0, 0, 0, 0))

	want := "Тип тренировки: WLK; Длительность: 0.000 ч.; Дистанция: 0.000 км; " +
		"Ср. скорость: 0.000 км/ч; Потрачено ккал: 0.000."

	assert.Equal(t, want, got)
}

func TestMarshalJSON(t *testing.T) {
	b, err := json.Marshal(summary.Build("Running", 0, 0.65, math.Inf(1), 2.5))
	require.NoError(t, err)

	assert.JSONEq(
		t,
		`{"training_type":"Running","duration":0,"distance":0.65,"speed":null,"calories":2.5}`,
		string(b),
	)
}
