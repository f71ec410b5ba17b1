package colour

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
)

const (
	// VariantShift is the lightness delta, in percentage points, between a
	// main colour and its light and dark variants.
	VariantShift = 20.0

	// MaxLightLightness caps the lightness of a light variant.
	MaxLightLightness = 95.0

	// MinDarkLightness floors the lightness of a dark variant.
	MinDarkLightness = 10.0
)

// Fallback hex colours used when no palette can be extracted.
const (
	FallbackPrimaryHex   = "#10b981" // green
	FallbackSecondaryHex = "#1e40af" // blue
	FallbackTertiaryHex  = "#6b7280" // gray
)

// Variation holds a main colour and its lighter and darker variants.
type Variation struct {
	Main  string `json:"main"`
	Light string `json:"light"`
	Dark  string `json:"dark"`
}

// NewVariation derives the light and dark variants of c. Both share the hue and
// saturation of c; only the lightness moves.
func NewVariation(c RGB) Variation {
	hsl := c.HSL()

	light := hsl
	light.L = math.Min(hsl.L+VariantShift, MaxLightLightness)

	dark := hsl
	dark.L = math.Max(hsl.L-VariantShift, MinDarkLightness)

	return Variation{
		Main:  c.Hex(),
		Light: light.Hex(),
		Dark:  dark.Hex(),
	}
}

// VariationFromHex parses hex and derives its variation.
func VariationFromHex(hex string) (Variation, error) {
	rgb, err := ParseHex(hex)
	if err != nil {
		return Variation{}, err
	}
	return NewVariation(rgb), nil
}

// mustVariation is for package-level constants known to be valid.
func mustVariation(hex string) Variation {
	v, err := VariationFromHex(hex)
	if err != nil {
		panic(err)
	}
	return v
}

// Palette is the three-role theme palette derived from an image.
type Palette struct {
	Primary   Variation `json:"primary"`
	Secondary Variation `json:"secondary"`
	Tertiary  Variation `json:"tertiary"`
}

// NewPalette builds a palette from the three role colours.
func NewPalette(primary, secondary, tertiary RGB) *Palette {
	return &Palette{
		Primary:   NewVariation(primary),
		Secondary: NewVariation(secondary),
		Tertiary:  NewVariation(tertiary),
	}
}

// FallbackPalette returns the fixed green/blue/gray palette.
func FallbackPalette() *Palette {
	return &Palette{
		Primary:   mustVariation(FallbackPrimaryHex),
		Secondary: mustVariation(FallbackSecondaryHex),
		Tertiary:  mustVariation(FallbackTertiaryHex),
	}
}

// Role names a palette slot.
type Role string

const (
	RolePrimary   Role = "primary"
	RoleSecondary Role = "secondary"
	RoleTertiary  Role = "tertiary"
)

// Roles returns the roles in palette order.
func Roles() []Role {
	return []Role{RolePrimary, RoleSecondary, RoleTertiary}
}

// Get returns the variation for a role.
func (p *Palette) Get(role Role) (Variation, error) {
	switch role {
	case RolePrimary:
		return p.Primary, nil
	case RoleSecondary:
		return p.Secondary, nil
	case RoleTertiary:
		return p.Tertiary, nil
	default:
		return Variation{}, fmt.Errorf("unknown palette role: %s", role)
	}
}

// All returns an iterator over the roles and variations of the palette.
func (p *Palette) All() func(func(Role, Variation) bool) {
	return func(yield func(Role, Variation) bool) {
		for _, role := range Roles() {
			v, _ := p.Get(role)
			if !yield(role, v) {
				return
			}
		}
	}
}

// ToJSON converts the palette to indented JSON.
func (p *Palette) ToJSON() ([]byte, error) {
	return json.MarshalIndent(p, "", "  ")
}

// String returns a human-readable representation of the palette.
func (p *Palette) String() string {
	return p.StringWithPreview(false)
}

// StringWithPreview returns the palette as text, optionally with colour
// swatches before each hex code.
func (p *Palette) StringWithPreview(showPreview bool) string {
	var sb strings.Builder
	for role, v := range p.All() {
		fmt.Fprintf(&sb, "%-10s", role+":")
		for _, hex := range []string{v.Main, v.Light, v.Dark} {
			if rgb, err := ParseHex(hex); err == nil && showPreview {
				sb.WriteString(" " + FormatColourWithPreview(rgb, 4))
				continue
			}
			sb.WriteString(" " + hex)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
