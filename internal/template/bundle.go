// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package template

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/pdiddy/stempelkarten/internal/paths"
	"github.com/pdiddy/stempelkarten/pkg/types"
)

const (
	// EntryPoint is the template file compiled for every run, relative to
	// the template directory.
	EntryPoint = "template.typ"

	fontsDir    = "fonts"
	packagesDir = "packages"
)

// Bundle locates the parts of a template directory the engine needs.
type Bundle struct {
	Root     string
	Entry    string
	Fonts    string
	Packages string
}

// LoadBundle checks that dir is a template directory with an entry template,
// a fonts subdirectory and a packages subdirectory. Any shortfall is a
// types.ErrConfiguration.
func LoadBundle(fsys afero.Fs, dir string) (Bundle, error) {
	root, err := paths.ValidateDirectory(fsys, dir)
	if err != nil {
		return Bundle{}, fmt.Errorf("%w: the template directory is not a valid directory or does not exist: %w", types.ErrConfiguration, err)
	}

	b := Bundle{
		Root:     root,
		Entry:    filepath.Join(root, EntryPoint),
		Fonts:    filepath.Join(root, fontsDir),
		Packages: filepath.Join(root, packagesDir),
	}

	if ok, _ := afero.IsDir(fsys, b.Packages); !ok {
		return Bundle{}, fmt.Errorf("%w: the template directory does not contain a '%s' subdirectory", types.ErrConfiguration, packagesDir)
	}
	if ok, _ := afero.IsDir(fsys, b.Fonts); !ok {
		return Bundle{}, fmt.Errorf("%w: the template directory does not contain a '%s' subdirectory", types.ErrConfiguration, fontsDir)
	}
	if err := paths.EnsureFile(fsys, b.Entry); err != nil {
		return Bundle{}, fmt.Errorf("%w: the template directory does not contain a '%s' file", types.ErrConfiguration, EntryPoint)
	}
	return b, nil
}
