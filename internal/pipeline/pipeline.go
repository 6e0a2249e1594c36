// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline runs one stamp card generation: validate the directories,
// load the roster, render it through the templating engine and write the PDF.
package pipeline

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"

	"github.com/pdiddy/stempelkarten/internal/metrics"
	"github.com/pdiddy/stempelkarten/internal/output"
	"github.com/pdiddy/stempelkarten/internal/paths"
	"github.com/pdiddy/stempelkarten/internal/template"
	"github.com/pdiddy/stempelkarten/internal/typst"
	"github.com/pdiddy/stempelkarten/internal/volunteers"
	"github.com/pdiddy/stempelkarten/pkg/types"
)

// EngineFactory builds the templating engine for a validated bundle.
type EngineFactory func(opts typst.Options) (template.Engine, error)

// Options configures a Pipeline. Zero values select the production defaults.
type Options struct {
	FS        afero.Fs
	Logger    *log.Logger
	Metrics   metrics.Recorder
	Now       func() time.Time
	NewEngine EngineFactory
}

// Pipeline runs stamp card generation. It is used for a single run.
type Pipeline struct {
	fs        afero.Fs
	logger    *log.Logger
	metrics   metrics.Recorder
	now       func() time.Time
	newEngine EngineFactory
}

// Result summarizes a successful run.
type Result struct {
	Volunteers int
	Output     string
	Bytes      int
}

// New returns a Pipeline for opts.
func New(opts Options) *Pipeline {
	p := &Pipeline{
		fs:        opts.FS,
		logger:    opts.Logger,
		metrics:   opts.Metrics,
		now:       opts.Now,
		newEngine: opts.NewEngine,
	}
	if p.fs == nil {
		p.fs = afero.NewOsFs()
	}
	if p.logger == nil {
		p.logger = log.Default()
	}
	if p.metrics == nil {
		p.metrics = metrics.Nop{}
	}
	if p.now == nil {
		p.now = time.Now
	}
	if p.newEngine == nil {
		p.newEngine = func(opts typst.Options) (template.Engine, error) {
			e, err := typst.New(opts)
			if err != nil {
				return nil, err
			}
			return e, nil
		}
	}
	return p
}

// Generate renders the roster described by cfg into a PDF file.
func (p *Pipeline) Generate(cfg types.Config) (Result, error) {
	var compiler *template.Compiler
	err := metrics.Time(p.metrics, metrics.StageTemplate, func() error {
		var err error
		compiler, err = p.compiler(cfg)
		return err
	})
	if err != nil {
		return Result{}, fmt.Errorf("could not build template compiler from configuration: %w", err)
	}

	roster, err := p.LoadRoster(cfg)
	if err != nil {
		return Result{}, err
	}

	var pdf []byte
	err = metrics.Time(p.metrics, metrics.StageRender, func() error {
		var err error
		pdf, err = compiler.GeneratePDF(template.NewInputs(roster))
		return err
	})
	if err != nil {
		return Result{}, fmt.Errorf("generating stamp cards: %w", err)
	}

	dest := output.Resolve(cfg.Output, p.now())
	err = metrics.Time(p.metrics, metrics.StageWrite, func() error {
		return output.Write(p.fs, dest, pdf)
	})
	if err != nil {
		return Result{}, err
	}

	p.logger.Info("stamp cards written", "path", dest, "volunteers", len(roster), "bytes", len(pdf))
	return Result{Volunteers: len(roster), Output: dest, Bytes: len(pdf)}, nil
}

// LoadRoster validates the picture and volunteer directories and loads every
// volunteer description below the volunteer directory.
func (p *Pipeline) LoadRoster(cfg types.Config) ([]types.Volunteer, error) {
	var roster []types.Volunteer
	err := metrics.Time(p.metrics, metrics.StageLoad, func() error {
		pictureDir, err := paths.ValidateDirectory(p.fs, cfg.PictureDir)
		if err != nil {
			return fmt.Errorf("the picture directory is invalid: %w", err)
		}
		roster, err = volunteers.NewLoader(p.fs, p.logger).LoadDir(cfg.VolunteerDir, pictureDir)
		if err != nil {
			return fmt.Errorf("loading volunteers: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	p.metrics.SetVolunteers(len(roster))
	p.logger.Info("volunteer roster loaded", "volunteers", len(roster))
	return roster, nil
}

func (p *Pipeline) compiler(cfg types.Config) (*template.Compiler, error) {
	bundle, err := template.LoadBundle(p.fs, cfg.TemplateDir)
	if err != nil {
		return nil, err
	}
	pictureDir, err := paths.Absolute(cfg.PictureDir)
	if err != nil {
		return nil, err
	}
	engine, err := p.newEngine(typst.Options{
		Binary:     cfg.TypstBin,
		Bundle:     bundle,
		PictureDir: pictureDir,
	})
	if err != nil {
		return nil, err
	}
	return template.NewCompiler(engine, template.EntryPoint), nil
}
