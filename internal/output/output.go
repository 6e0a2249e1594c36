// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package output names and writes the generated stamp card PDF.
package output

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/afero"

	"github.com/pdiddy/stempelkarten/pkg/types"
)

// Suffix is appended to the timestamp of generated default file names.
const Suffix = "_Stempelkarten.pdf"

const timestampLayout = "2006-01-02T15-04-05"

// DefaultName returns the output file name used when none is configured,
// e.g. "2026-10-18T14-03-59_Stempelkarten.pdf".
func DefaultName(now time.Time) string {
	return now.Local().Format(timestampLayout) + Suffix
}

// Resolve returns configured, or DefaultName(now) when configured is empty.
func Resolve(configured string, now time.Time) string {
	if configured != "" {
		return configured
	}
	return DefaultName(now)
}

// Write stores data at path, replacing any existing file. The bytes go to a
// temporary sibling first and are renamed into place.
func Write(fsys afero.Fs, path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := afero.TempFile(fsys, dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("%w: could not write to output file '%s': %w", types.ErrIO, path, err)
	}
	tmpName := tmp.Name()

	_, werr := tmp.Write(data)
	cerr := tmp.Close()
	if werr == nil {
		werr = cerr
	}
	if werr == nil {
		werr = fsys.Chmod(tmpName, 0o644)
	}
	if werr == nil {
		werr = fsys.Rename(tmpName, path)
	}
	if werr != nil {
		_ = fsys.Remove(tmpName)
		return fmt.Errorf("%w: could not write to output file '%s': %w", types.ErrIO, path, werr)
	}
	return nil
}
