// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package volunteers

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

const schemaURL = "https://stempelkarten.local/volunteer.schema.json"

//go:embed volunteer.schema.json
var schemaJSON []byte

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

func loadSchema() {
	c := jsonschema.NewCompiler()
	if err := c.AddResource(schemaURL, bytes.NewReader(schemaJSON)); err != nil {
		schemaErr = fmt.Errorf("adding volunteer schema: %w", err)
		return
	}
	s, err := c.Compile(schemaURL)
	if err != nil {
		schemaErr = fmt.Errorf("compiling volunteer schema: %w", err)
		return
	}
	schema = s
}

// validateDocument checks a decoded TOML document against the volunteer
// schema. Keys the schema does not describe are dropped, and the rest is
// round-tripped through JSON so the validator only sees JSON value types.
func validateDocument(doc map[string]any) error {
	schemaOnce.Do(loadSchema)
	if schemaErr != nil {
		return schemaErr
	}
	b, err := json.Marshal(knownProperties(doc))
	if err != nil {
		return fmt.Errorf("normalizing document: %w", err)
	}
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return fmt.Errorf("normalizing document: %w", err)
	}
	return schema.Validate(v)
}

// knownProperties returns the entries of doc named by the schema. Unknown keys
// may hold TOML values without a JSON form, such as nan or inf.
func knownProperties(doc map[string]any) map[string]any {
	known := make(map[string]any, len(schema.Properties))
	for k, v := range doc {
		if _, ok := schema.Properties[k]; ok {
			known[k] = v
		}
	}
	return known
}
