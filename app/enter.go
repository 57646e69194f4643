package app

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/fittrack/internal/activity"
	"github.com/ayoisaiah/fittrack/internal/batch"
	"github.com/ayoisaiah/fittrack/internal/config"
	"github.com/ayoisaiah/fittrack/internal/feed"
)

// readingTitles are the prompts shown for each positional reading.
var readingTitles = map[string]string{
	"action":      "Steps or strokes",
	"duration":    "Duration (hours)",
	"weight":      "Weight (kg)",
	"height":      "Height",
	"pool_length": "Pool length (m)",
	"pool_laps":   "Pool laps",
}

func validateNumber(s string) error {
	if _, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err != nil {
		return fmt.Errorf("%q is not a number", s)
	}

	return nil
}

// promptKind asks for the activity type.
func promptKind() (activity.Kind, error) {
	var kind activity.Kind

	options := make([]huh.Option[activity.Kind], 0, len(activity.Kinds()))
	for _, k := range activity.Kinds() {
		options = append(options, huh.NewOption(k.Name()+" ("+k.String()+")", k))
	}

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[activity.Kind]().
				Title("Activity type").
				Options(options...).
				Value(&kind),
		),
	).Run()
	if err != nil {
		return "", fmt.Errorf("form interaction failed: %w", err)
	}

	return kind, nil
}

// promptReadings asks for every reading the kind expects, in order.
func promptReadings(kind activity.Kind) ([]float64, error) {
	params := kind.Params()
	values := make([]string, len(params))
	fields := make([]huh.Field, len(params))

	for i, p := range params {
		fields[i] = huh.NewInput().
			Title(readingTitles[p]).
			Validate(validateNumber).
			Value(&values[i])
	}

	if err := huh.NewForm(huh.NewGroup(fields...)).Run(); err != nil {
		return nil, fmt.Errorf("form interaction failed: %w", err)
	}

	args := make([]float64, len(values))

	for i, v := range values {
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return nil, err
		}

		args[i] = f
	}

	return args, nil
}

// enterAction handles the enter command which collects the readings of one
// workout through an interactive form and prints its summary.
func enterAction(ctx *cli.Context) error {
	cfg, _, err := setup(ctx)
	if err != nil {
		return err
	}

	kind, err := promptKind()
	if err != nil {
		return err
	}

	args, err := promptReadings(kind)
	if err != nil {
		return err
	}

	report, err := batch.One(kind.String(), args, cfg.LabelStyle())
	if err != nil {
		return err
	}

	return printResults(
		config.Stdout,
		config.Stderr,
		[]batch.Result{{Record: feed.Record{Code: kind.String(), Args: args, Line: 1}, Report: report}},
		nil,
		cfg.Display.Format,
	)
}
