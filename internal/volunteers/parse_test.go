// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package volunteers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/stempelkarten/pkg/types"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		extra    string
		wantHide *bool
	}{
		{name: "hide indicator absent"},
		{name: "hide indicator true", extra: "hide_indicator = true\n", wantHide: boolPtr(true)},
		{name: "hide indicator false", extra: "hide_indicator = false\n", wantHide: boolPtr(false)},
		{name: "unknown keys ignored", extra: "shirt_size = \"L\"\n"},
		{name: "unknown nan and inf ignored", extra: "score = nan\nlimit = -inf\n"},
		{name: "unknown table ignored", extra: "[extra]\nweight = inf\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Parse("anna.toml", []byte(annaTOML+tt.extra))
			require.NoError(t, err)
			assert.Equal(t, "Anna", v.FirstName)
			assert.Equal(t, tt.wantHide, v.HideIndicator)
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantMsg string
	}{
		{
			name:    "missing barcode",
			data:    "first_name = \"Anna\"\nlast_name = \"Berg\"\nqualified = true\npicture = \"a.jpg\"\ndeployment = []\nlicenses = []\nqualifications = []\n",
			wantMsg: "barcode",
		},
		{
			name:    "labels must be strings",
			data:    annaTOMLWith("deployment = [1, 2]"),
			wantMsg: "deployment",
		},
		{
			name:    "hide indicator must be boolean",
			data:    annaTOML + "hide_indicator = \"yes\"\n",
			wantMsg: "hide_indicator",
		},
		{
			name:    "syntax error reports position",
			data:    "first_name = \n",
			wantMsg: "line ",
		},
		{
			name:    "empty file",
			data:    "",
			wantMsg: "missing properties",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse("/vol/anna.toml", []byte(tt.data))
			require.Error(t, err)
			assert.ErrorIs(t, err, types.ErrValidation)
			assert.Contains(t, err.Error(), "invalid volunteer description file '/vol/anna.toml'")
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

// annaTOMLWith returns a valid description with its deployment line replaced.
func annaTOMLWith(deployment string) string {
	return `first_name = "Anna"
last_name = "Berg"
barcode = "4711"
qualified = true
picture = "anna.jpg"
` + deployment + `
licenses = []
qualifications = []
`
}

func boolPtr(b bool) *bool { return &b }
