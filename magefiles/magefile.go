//go:build mage

// Package main contains Mage build targets for stempelkarten developer tooling.
package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// workspaceDirs lists the directories a stamp card run expects.
var workspaceDirs = []string{
	"volunteers",
	"pictures",
	"template/fonts",
	"template/packages",
}

// exampleTemplate is a minimal entry template wired to the engine inputs.
const exampleTemplate = `#let volunteers = json(sys.inputs.inputs_file).volunteers
#let picture-dir = sys.inputs.at("picture_dir", default: "/pictures")

#set page(width: 85.6mm, height: 54mm, margin: 4mm)

#for v in volunteers [
  #grid(
    columns: (22mm, 1fr),
    gutter: 3mm,
    image(picture-dir + "/" + v.picture, width: 22mm),
    [
      *#v.first_name #v.last_name* \
      #if v.qualified and not v.hide_qualified [qualifiziert] \
      #v.deployment.join(", ") \
      #text(size: 8pt, v.barcode)
    ],
  )
  #pagebreak(weak: true)
]
`

// Init creates an example stamp card workspace in the current directory.
func Init() error {
	for _, dir := range workspaceDirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
		fmt.Println("  ", dir)
	}
	entry := filepath.Join("template", "template.typ")
	if _, err := os.Stat(entry); os.IsNotExist(err) {
		if err := os.WriteFile(entry, []byte(exampleTemplate), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", entry, err)
		}
		fmt.Println("  ", entry)
	}
	fmt.Println("Workspace initialized.")
	return nil
}

const (
	binDir  = "bin"
	binName = "stempelkarten"
	cmdPkg  = "./cmd/stempelkarten"
)

// Build compiles the CLI binary into bin/.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	out := filepath.Join(binDir, binName)
	if err := sh.RunV("go", "build", "-o", out, cmdPkg); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s\n", out)
	return nil
}

// Test runs the unit tests.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Check runs vet and the tests, then builds the binary.
func Check() {
	mg.SerialDeps(Vet, Test, Build)
}

// Vet runs go vet over the module.
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Stats prints line counts for the Go sources, the Go tests, and the Typst
// templates and volunteer TOML fixtures found in the tree.
func Stats() error {
	counts := []struct {
		label string
		match func(path string) bool
	}{
		{"Go, production", func(p string) bool { return isGo(p) && !strings.HasSuffix(p, "_test.go") }},
		{"Go, tests", func(p string) bool { return strings.HasSuffix(p, "_test.go") }},
		{"Typst templates", func(p string) bool { return filepath.Ext(p) == ".typ" }},
		{"TOML volunteers", func(p string) bool { return filepath.Ext(p) == ".toml" }},
	}
	for _, c := range counts {
		n, err := countLines(".", c.match)
		if err != nil {
			return err
		}
		fmt.Printf("%-18s %d\n", c.label+":", n)
	}
	return nil
}

func isGo(path string) bool { return filepath.Ext(path) == ".go" }

// countLines counts non-blank lines in files accepted by match, skipping
// bin/ and directories starting with "_" or ".".
func countLines(root string, match func(path string) bool) (int, error) {
	total := 0
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			name := d.Name()
			if path != root && (name == binDir || strings.HasPrefix(name, "_") || strings.HasPrefix(name, ".")) {
				return filepath.SkipDir
			}
			return nil
		}
		if !match(path) {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		for line := range strings.Lines(string(data)) {
			if strings.TrimSpace(line) != "" {
				total++
			}
		}
		return nil
	})
	return total, err
}
