// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package volunteers

import (
	"errors"
	"fmt"

	"github.com/pelletier/go-toml/v2"

	"github.com/pdiddy/stempelkarten/pkg/types"
)

// Parse decodes the TOML contents of a description file into a Volunteer.
// Syntax errors, missing required keys and wrongly typed values are all
// reported as types.ErrValidation naming path together with the diagnostic.
func Parse(path string, data []byte) (types.Volunteer, error) {
	doc := map[string]any{}
	if err := toml.Unmarshal(data, &doc); err != nil {
		return types.Volunteer{}, invalid(path, diagnostic(err))
	}
	if err := validateDocument(doc); err != nil {
		return types.Volunteer{}, invalid(path, err.Error())
	}

	var v types.Volunteer
	if err := toml.Unmarshal(data, &v); err != nil {
		return types.Volunteer{}, invalid(path, diagnostic(err))
	}
	return v, nil
}

func invalid(path, detail string) error {
	return fmt.Errorf("%w: invalid volunteer description file '%s'\n%s", types.ErrValidation, path, detail)
}

// diagnostic renders TOML decode errors with their source context when the
// decoder provides it.
func diagnostic(err error) string {
	var derr *toml.DecodeError
	if errors.As(err, &derr) {
		row, col := derr.Position()
		return fmt.Sprintf("line %d, column %d: %s\n%s", row, col, derr.Error(), derr.String())
	}
	return err.Error()
}
