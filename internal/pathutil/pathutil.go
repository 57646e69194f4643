// Package pathutil manages application file paths and locations
package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/adrg/xdg"
)

const envName = "FITTRACK_ENV"

// Paths holds all application path configurations.
type Paths struct {
	appDir         string
	configFileName string
	logFileName    string

	// Computed absolute paths
	configFilePath string
	dataDir        string
	logFilePath    string
}

var (
	paths   *Paths
	once    sync.Once
	initErr error
)

// Initialize must be called once at program startup.
func Initialize() error {
	once.Do(func() {
		paths, initErr = New()
	})

	return initErr
}

// Must panics if paths haven't been initialized.
func Must() *Paths {
	if paths == nil {
		panic("pathutil.Initialize() must be called before accessing paths")
	}

	return paths
}

// New computes the application paths from the XDG base directories. Setting
// FITTRACK_ENV gives each environment its own config and log files.
func New() (*Paths, error) {
	p := &Paths{
		appDir:         "fittrack",
		configFileName: "config.yml",
		logFileName:    "fittrack.log",
	}

	p.applyEnvironmentOverrides()

	if err := p.computePaths(); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *Paths) ConfigFilePath() string {
	return p.configFilePath
}

func (p *Paths) DataDir() string {
	return p.dataDir
}

func (p *Paths) LogFilePath() string {
	return p.logFilePath
}

func (p *Paths) applyEnvironmentOverrides() {
	env := strings.TrimSpace(os.Getenv(envName))
	if env != "" {
		p.configFileName = fmt.Sprintf("config_%s.yml", env)
		p.logFileName = fmt.Sprintf("fittrack_%s.log", env)
	}
}

func (p *Paths) computePaths() error {
	var err error

	relPath := filepath.Join(p.appDir, p.configFileName)

	p.configFilePath, err = xdg.ConfigFile(relPath)
	if err != nil {
		return fmt.Errorf("resolving config file path: %w", err)
	}

	p.dataDir, err = xdg.DataFile(p.appDir)
	if err != nil {
		return fmt.Errorf("resolving data directory: %w", err)
	}

	p.logFilePath = filepath.Join(p.dataDir, "log", p.logFileName)

	return nil
}
