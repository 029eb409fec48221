// Package assets provides the build's default input files. Each input can be
// overridden by an explicit filesystem path; with no override the embedded
// default is used, so a bare checkout builds without any external files.
package assets

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
)

// Sentinel errors for asset operations.
var (
	// ErrAssetNotFound indicates an override path points to a missing file.
	ErrAssetNotFound = errors.New("asset file not found")

	// ErrAssetRead indicates an I/O error occurred while reading an asset file.
	ErrAssetRead = errors.New("failed to read asset")
)

//go:embed data/css_colors.csv
var defaultColorTable string

//go:embed data/documentation.md
var defaultDocumentation string

// ColorTable returns the roll-template color table CSV. An empty path
// selects the embedded default.
func ColorTable(path string) (string, error) {
	return resolve(path, defaultColorTable)
}

// Documentation returns the sheet documentation markdown. An empty path
// selects the embedded default.
func Documentation(path string) (string, error) {
	return resolve(path, defaultDocumentation)
}

// resolve reads the override file when a path is given, otherwise returns
// the embedded fallback. A configured override that cannot be read is a hard
// error, never a silent fallback.
func resolve(path, embedded string) (string, error) {
	if path == "" {
		return embedded, nil
	}
	content, err := os.ReadFile(path) // #nosec G304 -- path comes from the build config
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", ErrAssetNotFound, path)
		}
		return "", fmt.Errorf("%w: %v", ErrAssetRead, err)
	}
	return string(content), nil
}
