// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package output

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/stempelkarten/pkg/types"
)

func TestDefaultName(t *testing.T) {
	now := time.Date(2026, 10, 18, 14, 3, 59, 123, time.Local)
	assert.Equal(t, "2026-10-18T14-03-59_Stempelkarten.pdf", DefaultName(now))
}

func TestResolve(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.Local)
	assert.Equal(t, "cards.pdf", Resolve("cards.pdf", now))
	assert.Equal(t, "2026-01-02T03-04-05_Stempelkarten.pdf", Resolve("", now))
}

func TestWrite_OverwritesExisting(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cards.pdf")
	require.NoError(t, os.WriteFile(path, []byte("old content that is longer"), 0o644))

	require.NoError(t, Write(afero.NewOsFs(), path, []byte("%PDF-1.7")))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.7", string(got))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary file should not be left behind")
}

func TestWrite_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "cards.pdf")

	err := Write(afero.NewOsFs(), path, []byte("%PDF-1.7"))
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrIO)
	assert.Contains(t, err.Error(), "could not write to output file")
}

func TestWrite_ReadOnlyFs(t *testing.T) {
	fsys := afero.NewReadOnlyFs(afero.NewMemMapFs())

	err := Write(fsys, "/cards.pdf", []byte("%PDF-1.7"))
	assert.ErrorIs(t, err, types.ErrIO)
}
