package output

import (
	"fmt"

	"github.com/vixseg/brandkit/internal/colour"
)

const (
	// JSONFilename is the palette artifact consumed by the site.
	JSONFilename = "colors.json"

	// CSSFilename holds the palette as a :root rule.
	CSSFilename = "colors.css"
)

// JSON writes the palette as indented JSON.
type JSON struct{}

// NewJSON creates the JSON generator.
func NewJSON() *JSON {
	return &JSON{}
}

// Name returns the generator name.
func (g *JSON) Name() string {
	return "json"
}

// Description returns the generator description.
func (g *JSON) Description() string {
	return "Palette roles and variants as JSON (" + JSONFilename + ")"
}

// Generate renders the palette as JSON.
func (g *JSON) Generate(palette *colour.Palette) (map[string][]byte, error) {
	if palette == nil {
		return nil, fmt.Errorf("palette cannot be nil")
	}

	data, err := palette.ToJSON()
	if err != nil {
		return nil, fmt.Errorf("failed to convert to JSON: %w", err)
	}

	return map[string][]byte{JSONFilename: append(data, '\n')}, nil
}

// CSS writes the palette as CSS custom properties.
type CSS struct{}

// NewCSS creates the CSS generator.
func NewCSS() *CSS {
	return &CSS{}
}

// Name returns the generator name.
func (g *CSS) Name() string {
	return "css"
}

// Description returns the generator description.
func (g *CSS) Description() string {
	return "CSS custom properties in a :root rule (" + CSSFilename + ")"
}

// Generate renders the palette as a :root rule.
func (g *CSS) Generate(palette *colour.Palette) (map[string][]byte, error) {
	if palette == nil {
		return nil, fmt.Errorf("palette cannot be nil")
	}
	return map[string][]byte{CSSFilename: []byte(colour.CSSRootRule(palette))}, nil
}
