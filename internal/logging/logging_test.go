// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package logging

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    log.Level
		wantErr bool
	}{
		{in: "", want: log.InfoLevel},
		{in: "debug", want: log.DebugLevel},
		{in: "WARN", want: log.WarnLevel},
		{in: " error ", want: log.ErrorLevel},
		{in: "chatty", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestInit_OnlyOnce(t *testing.T) {
	prev := log.Default()
	t.Cleanup(func() { log.SetDefault(prev) })

	var first, second bytes.Buffer
	assert.True(t, Init(&first, log.InfoLevel))
	assert.False(t, Init(&second, log.DebugLevel))

	log.Info("roster loaded", "volunteers", 3)
	log.Debug("hidden at info level")

	assert.Contains(t, first.String(), "roster loaded")
	assert.Contains(t, first.String(), Prefix)
	assert.NotContains(t, first.String(), "hidden at info level")
	assert.Empty(t, second.String())
}
