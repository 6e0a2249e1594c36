// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package template adapts the volunteer roster to the templating engine's
// input and drives PDF generation.
package template

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/pdiddy/stempelkarten/pkg/types"
)

// Document is an engine-specific compiled document.
type Document any

// Engine is the external templating engine. Compile turns the entry template
// and the dynamic input mapping into a document; PDF serializes it.
type Engine interface {
	Compile(entry string, inputs map[string]any) (Document, error)
	PDF(doc Document) ([]byte, error)
}

// Compiler generates stamp card PDFs through an Engine.
type Compiler struct {
	engine Engine
	entry  string
}

// NewCompiler returns a Compiler that compiles the given entry template.
func NewCompiler(engine Engine, entry string) *Compiler {
	return &Compiler{engine: engine, entry: entry}
}

// GeneratePDF compiles the template with in and returns the PDF bytes. Engine
// failures are reported as types.ErrRender with the engine diagnostic.
func (c *Compiler) GeneratePDF(in Inputs) ([]byte, error) {
	log.Debug("compiling template", "entry", c.entry, "volunteers", len(in.Volunteers))

	doc, err := c.engine.Compile(c.entry, in.Dict())
	if err != nil {
		return nil, fmt.Errorf("%w: document generation failed with the provided input data: %w", types.ErrRender, err)
	}

	pdf, err := c.engine.PDF(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: could not generate the PDF from the generated document: %w", types.ErrRender, err)
	}
	return pdf, nil
}
