package pathutil_test

import (
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/fittrack/internal/pathutil"
)

func setupXDG(t *testing.T) (configHome, dataHome string) {
	t.Helper()

	configHome = t.TempDir()
	dataHome = t.TempDir()

	t.Setenv("XDG_CONFIG_HOME", configHome)
	t.Setenv("XDG_DATA_HOME", dataHome)
	xdg.Reload()

	t.Cleanup(xdg.Reload)

	return configHome, dataHome
}

func TestNew(t *testing.T) {
	configHome, dataHome := setupXDG(t)
	t.Setenv("FITTRACK_ENV", "")

	p, err := pathutil.New()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(configHome, "fittrack", "config.yml"), p.ConfigFilePath())
	assert.Equal(t, filepath.Join(dataHome, "fittrack"), p.DataDir())
	assert.Equal(t, filepath.Join(dataHome, "fittrack", "log", "fittrack.log"), p.LogFilePath())
}

func TestNewWithEnvironment(t *testing.T) {
	configHome, dataHome := setupXDG(t)
	t.Setenv("FITTRACK_ENV", "test")

	p, err := pathutil.New()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(configHome, "fittrack", "config_test.yml"), p.ConfigFilePath())
	assert.Equal(t, filepath.Join(dataHome, "fittrack", "log", "fittrack_test.log"), p.LogFilePath())
}
