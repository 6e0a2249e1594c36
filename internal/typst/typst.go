// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package typst runs the Typst command line compiler as the stamp card
// templating engine.
package typst

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"

	"github.com/pdiddy/stempelkarten/internal/paths"
	"github.com/pdiddy/stempelkarten/internal/template"
	"github.com/pdiddy/stempelkarten/pkg/types"
)

// DefaultBinary is the typst executable looked up on PATH.
const DefaultBinary = "typst"

// PictureDirInput is the sys.inputs key carrying the picture directory,
// relative to the compilation root. It is empty when the picture directory is
// the root itself, so templates can load pictures with
// image(sys.inputs.picture_dir + "/" + v.picture).
const PictureDirInput = "picture_dir"

// InputsFileInput is the sys.inputs key carrying the root-relative path of the
// JSON file that holds the template inputs. Templates read the roster with
// json(sys.inputs.inputs_file).volunteers.
const InputsFileInput = "inputs_file"

// inputsFile is written to the scratch directory of each run. A single
// command line argument is capped at 128 KiB on Linux.
const inputsFile = "inputs.json"

var pdfMagic = []byte("%PDF-")

// executor abstracts command execution for testing.
type executor interface {
	LookPath(file string) (string, error)
	Run(name string, args []string, stdout, stderr io.Writer) error
}

// osExecutor is the production executor backed by os/exec.
type osExecutor struct{}

func (osExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (osExecutor) Run(name string, args []string, stdout, stderr io.Writer) error {
	cmd := exec.Command(name, args...)
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	return cmd.Run()
}

// Options configures an Engine.
type Options struct {
	// Binary is the typst executable (default DefaultBinary).
	Binary string

	// Bundle is the validated template directory.
	Bundle template.Bundle

	// PictureDir is the absolute volunteer picture directory.
	PictureDir string
}

// Engine compiles templates by invoking the typst binary. It implements
// template.Engine.
type Engine struct {
	bin        string
	bundle     template.Bundle
	root       string
	pictureDir string
	fs         afero.Fs
	exec       executor
}

// Document is the compiled output of one typst run, held in a scratch
// directory until PDF collects it.
type Document struct {
	scratch string
	path    string
}

// New returns an Engine for opts. It fails with types.ErrConfiguration when
// the typst binary cannot be found.
func New(opts Options) (*Engine, error) {
	return newEngine(opts, afero.NewOsFs(), osExecutor{})
}

func newEngine(opts Options, fsys afero.Fs, exec executor) (*Engine, error) {
	bin := opts.Binary
	if bin == "" {
		bin = DefaultBinary
	}
	resolved, err := exec.LookPath(bin)
	if err != nil {
		return nil, fmt.Errorf("%w: typst binary %q not available: %w", types.ErrConfiguration, bin, err)
	}
	return &Engine{
		bin:        resolved,
		bundle:     opts.Bundle,
		root:       paths.CommonRoot(opts.Bundle.Root, opts.PictureDir),
		pictureDir: opts.PictureDir,
		fs:         fsys,
		exec:       exec,
	}, nil
}

// Root returns the compilation root: the deepest directory containing both
// the template bundle and the picture directory.
func (e *Engine) Root() string { return e.root }

// Compile runs typst on the entry template (relative to the bundle root).
// The inputs are JSON encoded into a file inside a scratch directory below
// the bundle root, and typst receives only its root-relative path.
func (e *Engine) Compile(entry string, inputs map[string]any) (template.Document, error) {
	data, err := json.Marshal(inputs)
	if err != nil {
		return nil, fmt.Errorf("encoding template inputs: %w", err)
	}

	scratch, err := afero.TempDir(e.fs, e.bundle.Root, ".stempelkarten-")
	if err != nil {
		return nil, fmt.Errorf("creating scratch directory: %w", err)
	}
	doc := &Document{scratch: scratch, path: filepath.Join(scratch, "cards.pdf")}

	inputsPath := filepath.Join(scratch, inputsFile)
	if err := afero.WriteFile(e.fs, inputsPath, data, 0o644); err != nil {
		e.discard(doc)
		return nil, fmt.Errorf("writing template inputs: %w", err)
	}

	cmdArgs := []string{
		"compile",
		"--root", e.root,
		"--font-path", e.bundle.Fonts,
		"--ignore-system-fonts",
		"--package-path", e.bundle.Packages,
		"--format", "pdf",
		"--input", InputsFileInput + "=" + rootRelative(e.root, inputsPath),
		"--input", PictureDirInput + "=" + rootRelative(e.root, e.pictureDir),
		filepath.Join(e.bundle.Root, entry),
		doc.path,
	}

	log.Debug("running typst", "bin", e.bin, "root", e.root, "entry", entry, "inputs", len(data))

	var stdout, stderr bytes.Buffer
	if err := e.exec.Run(e.bin, cmdArgs, &stdout, &stderr); err != nil {
		e.discard(doc)
		return nil, fmt.Errorf("typst compile: %w%s", err, diagnostics(&stderr))
	}
	if stderr.Len() > 0 {
		log.Warn("typst reported warnings", "output", strings.TrimSpace(stderr.String()))
	}
	return doc, nil
}

// PDF returns the bytes of a document produced by Compile and removes its
// scratch directory.
func (e *Engine) PDF(doc template.Document) ([]byte, error) {
	d, ok := doc.(*Document)
	if !ok || d == nil {
		return nil, fmt.Errorf("unexpected document type %T", doc)
	}
	defer e.discard(d)

	data, err := afero.ReadFile(e.fs, d.path)
	if err != nil {
		return nil, fmt.Errorf("reading typst output: %w", err)
	}
	if !bytes.HasPrefix(data, pdfMagic) {
		return nil, fmt.Errorf("typst output is not a PDF document (%d bytes)", len(data))
	}
	return data, nil
}

func (e *Engine) discard(d *Document) {
	if err := e.fs.RemoveAll(d.scratch); err != nil {
		log.Warn("could not remove typst scratch directory", "dir", d.scratch, "err", err)
	}
}

// rootRelative expresses target as a root-anchored typst path ("/pictures").
// The root itself is the empty string so that joining with "/" stays valid.
func rootRelative(root, target string) string {
	rel, err := filepath.Rel(root, target)
	if err != nil || rel == "." {
		return ""
	}
	return "/" + filepath.ToSlash(rel)
}

func diagnostics(stderr *bytes.Buffer) string {
	msg := strings.TrimSpace(stderr.String())
	if msg == "" {
		return ""
	}
	return "\n" + msg
}
