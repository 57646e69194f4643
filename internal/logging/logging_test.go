package logging_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/fittrack/internal/logging"
)

func TestNewRespectsLevel(t *testing.T) {
	var buf bytes.Buffer

	logger := logging.New(&buf, slog.LevelWarn)

	logger.Info("ignored")
	logger.Warn("record skipped", slog.String("type", "XYZ"))

	var entry map[string]any

	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "record skipped", entry["msg"])
	assert.Equal(t, "XYZ", entry["type"])
}

func TestSetup(t *testing.T) {
	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })

	path := filepath.Join(t.TempDir(), "log", "fittrack.log")

	closer := logging.Setup(path, slog.LevelInfo)

	slog.Info("hello")
	require.NoError(t, closer.Close())

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"msg":"hello"`)
}
