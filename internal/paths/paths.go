// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package paths checks user supplied directories and files before any loading
// begins.
package paths

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"

	"github.com/pdiddy/stempelkarten/pkg/types"
)

// ValidateDirectory resolves dir to an absolute path and ensures it names an
// existing directory. It returns the absolute path on success.
func ValidateDirectory(fsys afero.Fs, dir string) (string, error) {
	log.Debug("validating directory", "dir", dir)

	abs, err := Absolute(dir)
	if err != nil {
		return "", err
	}

	info, err := fsys.Stat(abs)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: the file system does not contain the directory '%s'", types.ErrNotFound, abs)
		}
		return "", fmt.Errorf("%w: inspecting directory '%s': %w", types.ErrIO, abs, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%w: '%s' must be a directory, not a file", types.ErrInvalidTarget, abs)
	}
	return abs, nil
}

// EnsureFile ensures path names an existing regular file.
func EnsureFile(fsys afero.Fs, path string) error {
	info, err := fsys.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: '%s' does not exist", types.ErrNotFound, path)
		}
		return fmt.Errorf("%w: inspecting '%s': %w", types.ErrIO, path, err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("%w: '%s' is not a file", types.ErrInvalidTarget, path)
	}
	return nil
}

// Absolute converts p to a cleaned absolute path. Empty paths and paths
// containing NUL bytes cannot name anything on the host file system.
func Absolute(p string) (string, error) {
	if strings.TrimSpace(p) == "" {
		return "", fmt.Errorf("%w: empty path", types.ErrConfiguration)
	}
	if strings.ContainsRune(p, 0) {
		return "", fmt.Errorf("%w: path %q contains invalid characters", types.ErrConfiguration, p)
	}
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", fmt.Errorf("%w: could not construct absolute path from '%s': %w", types.ErrConfiguration, p, err)
	}
	return abs, nil
}

// Within reports whether target lies inside dir. Both paths must be absolute
// and clean.
func Within(dir, target string) bool {
	rel, err := filepath.Rel(dir, target)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// CommonRoot returns the deepest directory containing every given absolute path.
func CommonRoot(first string, rest ...string) string {
	root := filepath.Clean(first)
	for _, p := range rest {
		p = filepath.Clean(p)
		for !Within(root, p) {
			parent := filepath.Dir(root)
			if parent == root {
				break
			}
			root = parent
		}
	}
	return root
}
