// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/stempelkarten/pkg/types"
)

func TestResolveConfig(t *testing.T) {
	v := viper.New()
	v.Set(keyVolunteerDir, "volunteers")
	v.Set(keyPictureDir, "pictures")
	v.Set(keyTemplateDir, "template")
	v.Set(keyTypstBin, "typst")
	v.Set(keyLogLevel, "debug")

	got := resolveConfig(v)
	assert.Equal(t, types.Config{
		VolunteerDir: "volunteers",
		PictureDir:   "pictures",
		TemplateDir:  "template",
		TypstBin:     "typst",
		LogLevel:     "debug",
	}, got)
}

func TestResolveConfig_Environment(t *testing.T) {
	t.Setenv("STEMPELKARTEN_VOLUNTEER_DIR", "/srv/volunteers")
	t.Setenv("STEMPELKARTEN_OUTPUT", "cards.pdf")

	v := viper.New()
	v.SetEnvPrefix("STEMPELKARTEN")
	v.AutomaticEnv()

	got := resolveConfig(v)
	assert.Equal(t, "/srv/volunteers", got.VolunteerDir)
	assert.Equal(t, "cards.pdf", got.Output)
}

func TestRequireSettings(t *testing.T) {
	tests := []struct {
		name         string
		cfg          types.Config
		needTemplate bool
		wantMissing  string
	}{
		{
			name:         "complete",
			cfg:          types.Config{VolunteerDir: "v", PictureDir: "p", TemplateDir: "t"},
			needTemplate: true,
		},
		{
			name: "template not needed for check",
			cfg:  types.Config{VolunteerDir: "v", PictureDir: "p"},
		},
		{
			name:         "everything missing",
			needTemplate: true,
			wantMissing:  "volunteer-dir, picture-dir, template-dir",
		},
		{
			name:         "picture dir missing",
			cfg:          types.Config{VolunteerDir: "v", TemplateDir: "t"},
			needTemplate: true,
			wantMissing:  "picture-dir",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := requireSettings(tt.cfg, tt.needTemplate)
			if tt.wantMissing == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, types.ErrConfiguration)
			assert.Contains(t, err.Error(), tt.wantMissing)
		})
	}
}

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("STEMPELKARTEN_TEST_PICTURE_DIR=/srv/pictures\n"), 0o644))
	t.Setenv("STEMPELKARTEN_TEST_PICTURE_DIR", "")
	require.NoError(t, os.Unsetenv("STEMPELKARTEN_TEST_PICTURE_DIR"))

	require.NoError(t, loadEnvFile(path))
	assert.Equal(t, "/srv/pictures", os.Getenv("STEMPELKARTEN_TEST_PICTURE_DIR"))

	assert.NoError(t, loadEnvFile(filepath.Join(dir, "missing.env")))
}
