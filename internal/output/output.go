// Package output renders palettes into build artifacts and writes them to disk.
package output

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/vixseg/brandkit/internal/colour"
)

// Generator renders a palette into one or more files.
type Generator interface {
	// Name returns the generator's name (e.g., "json", "css").
	Name() string

	// Description returns a human-readable description of the generator.
	Description() string

	// Generate creates output file(s) from the given palette.
	// Returns map of filename -> content.
	Generate(palette *colour.Palette) (map[string][]byte, error)
}

// Registry holds the available generators.
type Registry struct {
	generators map[string]Generator
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		generators: make(map[string]Generator),
	}
}

// DefaultRegistry returns a registry with the built-in generators.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(NewJSON())
	r.Register(NewCSS())
	return r
}

// Register adds a generator to the registry.
func (r *Registry) Register(g Generator) {
	r.generators[g.Name()] = g
}

// Get retrieves a generator by name.
func (r *Registry) Get(name string) (Generator, bool) {
	g, ok := r.generators[name]
	return g, ok
}

// List returns the registered generator names in sorted order.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.generators))
	for name := range r.generators {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// WriteFiles writes each file into dir, creating dir if needed.
// Returns the written paths in sorted order.
func WriteFiles(dir string, files map[string][]byte) ([]string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil { // #nosec G301 - Output directory needs standard permissions
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	slices.Sort(names)

	written := make([]string, 0, len(names))
	for _, name := range names {
		path := filepath.Join(dir, name)
		if err := WriteFile(path, files[name]); err != nil {
			return written, err
		}
		written = append(written, path)
	}

	return written, nil
}

// WriteFile writes data to path. A failed close is reported.
func WriteFile(path string, data []byte) (err error) {
	f, err := os.Create(path) // #nosec G304 - Output path chosen by the user
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("failed to close %s: %w", path, closeErr))
		}
	}()

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
