// Package static embeds the sample sensor feeds into the binary and copies
// them to the filesystem
package static

import (
	"embed"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ayoisaiah/fittrack/internal/osutil"
)

const (
	filesDir = "files"

	// SampleFile is the name of the embedded plain text sample feed.
	SampleFile = "sample.txt"
)

//go:embed files/*
var embeddedFiles embed.FS

// Sample returns the contents of the embedded sample feed.
func Sample() []byte {
	b, _ := embeddedFiles.ReadFile(filesDir + "/" + SampleFile)
	return b
}

// Install copies the embedded files into dir. Existing files are left
// untouched so that user edits survive upgrades.
func Install(dir string) error {
	return fs.WalkDir(
		embeddedFiles,
		filesDir,
		func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if d.IsDir() {
				return nil
			}

			b, err := embeddedFiles.ReadFile(path)
			if err != nil {
				return err
			}

			destPath := filepath.Join(dir, strings.TrimPrefix(path, filesDir+"/"))

			if _, err := os.Stat(destPath); os.IsNotExist(err) {
				if err := os.MkdirAll(filepath.Dir(destPath), osutil.DirPermission); err != nil {
					return err
				}

				if err := os.WriteFile(destPath, b, osutil.FilePermission); err != nil {
					return err
				}
			}

			return nil
		},
	)
}
