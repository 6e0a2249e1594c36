// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package volunteers discovers, parses and validates volunteer description
// files.
package volunteers

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/charmbracelet/log"
	"github.com/spf13/afero"

	"github.com/pdiddy/stempelkarten/internal/paths"
	"github.com/pdiddy/stempelkarten/pkg/types"
)

// Suffix is the file name suffix of volunteer description files.
const Suffix = ".toml"

// SearchPattern matches description files at any depth below the volunteer
// directory, including directly inside it. It is matched against
// slash-separated paths relative to that directory.
const SearchPattern = "**/*" + Suffix

// Loader reads volunteer description files from a file system.
type Loader struct {
	fs     afero.Fs
	logger *log.Logger
}

// NewLoader returns a Loader reading from fsys. A nil logger falls back to
// the process default.
func NewLoader(fsys afero.Fs, logger *log.Logger) *Loader {
	if logger == nil {
		logger = log.Default()
	}
	return &Loader{fs: fsys, logger: logger}
}

// LoadDir validates dir, then loads every description file below it and
// checks each picture against pictureDir. The first invalid file aborts the
// load.
func (l *Loader) LoadDir(dir, pictureDir string) ([]types.Volunteer, error) {
	root, err := paths.ValidateDirectory(l.fs, dir)
	if err != nil {
		return nil, fmt.Errorf("validating volunteer directory: %w", err)
	}
	pictureRoot, err := paths.Absolute(pictureDir)
	if err != nil {
		return nil, fmt.Errorf("resolving picture directory: %w", err)
	}

	var volunteers []types.Volunteer
	for _, path := range l.Discover(root) {
		l.logger.Info("found volunteer description file", "path", path)

		v, err := l.LoadFile(path)
		if err != nil {
			return nil, err
		}
		if err := EnsurePicture(l.fs, v, pictureRoot); err != nil {
			return nil, fmt.Errorf("volunteer description file '%s': %w", path, err)
		}
		volunteers = append(volunteers, v)
	}
	return volunteers, nil
}

// Discover returns every entry below root whose relative path matches
// SearchPattern. Entries are visited in lexical order within each directory.
// Errors on individual entries are logged and the entry is skipped.
func (l *Loader) Discover(root string) []string {
	var found []string
	walkErr := afero.Walk(l.fs, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			l.logger.Warn("volunteer directory search ran into an error", "path", path, "err", err)
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil || rel == "." {
			return nil
		}
		if ok, _ := doublestar.Match(SearchPattern, filepath.ToSlash(rel)); !ok {
			return nil
		}
		if info.Mode()&os.ModeSymlink != 0 {
			if _, err := l.fs.Stat(path); err != nil {
				l.logger.Warn("volunteer directory search ran into an error", "path", path, "err", err)
				return nil
			}
		}
		found = append(found, path)
		return nil
	})
	if walkErr != nil {
		l.logger.Warn("volunteer directory search stopped early", "root", root, "err", walkErr)
	}
	return found
}

// LoadFile reads and parses a single description file.
func (l *Loader) LoadFile(path string) (types.Volunteer, error) {
	l.logger.Debug("loading volunteer from file", "path", path)

	if err := l.ensureSource(path); err != nil {
		return types.Volunteer{}, err
	}
	data, err := afero.ReadFile(l.fs, path)
	if err != nil {
		return types.Volunteer{}, fmt.Errorf("%w: could not read volunteer description file '%s': %w", types.ErrIO, path, err)
	}
	return Parse(path, data)
}

func (l *Loader) ensureSource(path string) error {
	info, err := l.fs.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: volunteer description path '%s' does not exist", types.ErrInvalidSource, path)
		}
		return fmt.Errorf("%w: volunteer description path '%s': %w", types.ErrInvalidSource, path, err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("%w: volunteer description path '%s' is not a file", types.ErrInvalidSource, path)
	}
	return nil
}

// EnsurePicture checks that the volunteer's picture is a regular file inside
// pictureDir.
func EnsurePicture(fsys afero.Fs, v types.Volunteer, pictureDir string) error {
	picturePath := filepath.Join(pictureDir, v.Picture)
	if v.Picture == "" || !paths.Within(pictureDir, picturePath) || picturePath == filepath.Clean(pictureDir) {
		return fmt.Errorf("%w: the volunteer picture '%s' does not name a file inside '%s'", types.ErrInvalidTarget, v.Picture, pictureDir)
	}

	info, err := fsys.Stat(picturePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: the volunteer picture path does not exist '%s'", types.ErrNotFound, picturePath)
		}
		return fmt.Errorf("%w: inspecting volunteer picture '%s': %w", types.ErrIO, picturePath, err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("%w: the volunteer picture is not a file '%s'", types.ErrInvalidTarget, picturePath)
	}
	return nil
}
