package app

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"runtime"
	"strconv"

	"github.com/kballard/go-shellquote"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/fittrack/internal/activity"
	"github.com/ayoisaiah/fittrack/internal/apperr"
	"github.com/ayoisaiah/fittrack/internal/batch"
	"github.com/ayoisaiah/fittrack/internal/config"
	"github.com/ayoisaiah/fittrack/internal/feed"
	"github.com/ayoisaiah/fittrack/internal/logging"
	"github.com/ayoisaiah/fittrack/internal/observability"
	"github.com/ayoisaiah/fittrack/internal/osutil"
	"github.com/ayoisaiah/fittrack/internal/pathutil"
	"github.com/ayoisaiah/fittrack/internal/static"
	"github.com/ayoisaiah/fittrack/internal/ui"
	"github.com/ayoisaiah/fittrack/stats"
)

const (
	envNoColor         = "NO_COLOR"
	envFittrackNoColor = "FITTRACK_NO_COLOR"

	metaLogCloser = "log_closer"
	stdinName     = "-"
)

var (
	errRecordsFailed = &apperr.Error{
		Message: "%d of %d records could not be processed",
	}

	errCalcArgs = &apperr.Error{
		Message: "an activity code is required",
	}

	errOpenFeed = &apperr.Error{
		Message: "opening feed %s failed",
	}

	errEditorCmd = &apperr.Error{
		Message: "invalid editor command %q",
	}
)

// firstNonEmptyString returns its first non-empty argument, or "" if all
// arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

// setup resolves paths, loads the configuration and starts file logging. It
// is called at the start of every action.
func setup(ctx *cli.Context) (*config.Config, *pathutil.Paths, error) {
	if err := pathutil.Initialize(); err != nil {
		return nil, nil, err
	}

	paths := pathutil.Must()

	cfg, err := config.New(
		config.WithViperConfig(paths.ConfigFilePath()),
		config.WithCLIConfig(ctx),
	)
	if err != nil {
		return nil, nil, err
	}

	if cfg.Display.NoColor {
		ui.DisableStyling()
	}

	ctx.App.Metadata[metaLogCloser] = logging.Setup(paths.LogFilePath(), cfg.SlogLevel())

	if err := static.Install(paths.DataDir()); err != nil {
		slog.WarnContext(ctx.Context, "installing sample feeds failed", slog.Any("error", err))
	}

	slog.DebugContext(ctx.Context, "configuration loaded", slog.String("config", cfg.String()))

	return cfg, paths, nil
}

// readRecords collects the records of every input in order. Standard input
// is read when no file is given.
func readRecords(cfg *config.Config) ([]feed.Record, error) {
	if cfg.CLI.Sample {
		return feed.Read(bytes.NewReader(static.Sample()), "sample", feed.FormatText)
	}

	files := cfg.CLI.Files
	if len(files) == 0 {
		files = []string{stdinName}
	}

	var records []feed.Record

	for _, name := range files {
		recs, err := readFile(name)
		if err != nil {
			return nil, err
		}

		records = append(records, recs...)
	}

	return records, nil
}

func readFile(name string) ([]feed.Record, error) {
	var r io.Reader = config.Stdin

	source := "stdin"

	if name != stdinName {
		f, err := os.Open(name)
		if err != nil {
			return nil, errOpenFeed.Fmt(name).Wrap(err)
		}

		defer f.Close()

		r = f
		source = name
	}

	return feed.Read(r, source, feed.DetectFormat(name))
}

// defaultAction reads the sensor feed and prints one summary per record.
// Invalid records are reported and skipped.
func defaultAction(ctx *cli.Context) error {
	cfg, _, err := setup(ctx)
	if err != nil {
		return err
	}

	records, err := readRecords(cfg)
	if err != nil {
		return err
	}

	results := batch.Process(ctx.Context, records, batch.Options{
		Label:   cfg.LabelStyle(),
		Workers: cfg.Settings.Workers,
	})

	var st *stats.Stats

	if ctx.Bool("stats") {
		computed := stats.Compute(results)
		st = &computed
	}

	if err := printResults(config.Stdout, config.Stderr, results, st, cfg.Display.Format); err != nil {
		return err
	}

	if cfg.Settings.MetricsFile != "" {
		if err := observability.WriteTextfile(cfg.Settings.MetricsFile); err != nil {
			return fmt.Errorf("writing metrics: %w", err)
		}
	}

	failed := 0

	for i := range results {
		if !results[i].OK() {
			failed++
		}
	}

	slog.InfoContext(
		ctx.Context,
		"feed processed",
		slog.Int("records", len(results)),
		slog.Int("failed", failed),
	)

	if cfg.Settings.Strict && failed > 0 {
		return errRecordsFailed.Fmt(failed, len(results))
	}

	return nil
}

// calcAction handles the calc command which summarises a single workout
// given as positional arguments.
func calcAction(ctx *cli.Context) error {
	cfg, _, err := setup(ctx)
	if err != nil {
		return err
	}

	if ctx.NArg() == 0 {
		return errCalcArgs
	}

	code := ctx.Args().First()
	tokens := ctx.Args().Tail()
	args := make([]float64, len(tokens))

	for i, tok := range tokens {
		args[i], err = strconv.ParseFloat(tok, 64)
		if err != nil {
			return activity.ErrMalformedSensorData.Fmt(
				code,
				fmt.Sprintf("%q is not a number", tok),
			)
		}
	}

	report, err := batch.One(code, args, cfg.LabelStyle())
	if err != nil {
		return err
	}

	return printResults(
		config.Stdout,
		config.Stderr,
		[]batch.Result{{Record: feed.Record{Code: code, Args: args, Line: 1}, Report: report}},
		nil,
		cfg.Display.Format,
	)
}

// typesAction prints the supported activity types.
func typesAction(ctx *cli.Context) error {
	if _, _, err := setup(ctx); err != nil {
		return err
	}

	printTypesTable(config.Stdout)

	return nil
}

// editConfigAction handles the edit-config command which opens the fittrack
// config file in the user's default text editor.
func editConfigAction(ctx *cli.Context) error {
	_, paths, err := setup(ctx)
	if err != nil {
		return err
	}

	defaultEditor := "nano"

	if runtime.GOOS == osutil.Windows {
		defaultEditor = "C:\\Windows\\system32\\notepad.exe"
	}

	editor := firstNonEmptyString(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		defaultEditor,
	)

	cmdSlice, err := shellquote.Split(editor)
	if err != nil || len(cmdSlice) == 0 {
		return errEditorCmd.Fmt(editor)
	}

	cmdSlice = append(cmdSlice, paths.ConfigFilePath())

	cmd := exec.Command(cmdSlice[0], cmdSlice[1:]...)

	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout

	return cmd.Run()
}

func beforeAction(ctx *cli.Context) error {
	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	// Disable colour output if NO_COLOR is set
	if _, exists := os.LookupEnv(envNoColor); exists {
		ui.DisableStyling()
	}

	// Disable colour output if FITTRACK_NO_COLOR is set
	if _, exists := os.LookupEnv(envFittrackNoColor); exists {
		ui.DisableStyling()
	}

	if ctx.Bool("no-color") {
		ui.DisableStyling()
	}

	return nil
}

func afterAction(ctx *cli.Context) error {
	slog.InfoContext(ctx.Context, "exiting fittrack")

	if c, ok := ctx.App.Metadata[metaLogCloser].(io.Closer); ok {
		return c.Close()
	}

	return nil
}
