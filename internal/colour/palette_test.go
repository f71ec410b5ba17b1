package colour

import (
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewVariation(t *testing.T) {
	tests := []struct {
		name string
		hex  string
		want Variation
	}{
		{
			name: "saturated red",
			hex:  "#ff0000",
			want: Variation{Main: "#ff0000", Light: "#ff6666", Dark: "#990000"},
		},
		{
			name: "light capped at 95",
			hex:  "#fdfdfd",
			want: Variation{Main: "#fdfdfd", Light: "#f2f2f2", Dark: "#cacaca"},
		},
		{
			name: "deep blue",
			hex:  "#0015cc",
			want: Variation{Main: "#0015cc", Light: "#3348ff", Dark: "#000a66"},
		},
		{
			name: "cyan light",
			hex:  "#00aff0",
			want: Variation{Main: "#00aff0", Light: "#57d1ff", Dark: "#00658a"},
		},
		{
			name: "upper case input is normalised",
			hex:  "#FF0000",
			want: Variation{Main: "#ff0000", Light: "#ff6666", Dark: "#990000"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := VariationFromHex(tt.hex)
			if err != nil {
				t.Fatalf("VariationFromHex(%s) error: %v", tt.hex, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("VariationFromHex(%s) mismatch (-want +got):\n%s", tt.hex, diff)
			}
		})
	}
}

func TestVariationFromHexInvalid(t *testing.T) {
	if _, err := VariationFromHex("not-a-colour"); err == nil {
		t.Error("Expected error for invalid hex")
	}
}

// TestVariationLightness checks the lightness bounds and that hue and
// saturation survive the shift.
func TestVariationLightness(t *testing.T) {
	// Byte quantisation moves lightness by at most 0.5/255.
	const lightnessTolerance = 0.25

	hexes := []string{
		"#10b981", "#1e40af", "#6b7280", "#00c800", "#0000c8",
		"#ff0000", "#336699", "#f0f0f0", "#0f0f0f", "#fdfdfd", "#123456",
	}

	for _, hex := range hexes {
		t.Run(hex, func(t *testing.T) {
			base, _ := HexToHSL(hex)
			v, err := VariationFromHex(hex)
			if err != nil {
				t.Fatalf("VariationFromHex error: %v", err)
			}

			light, _ := HexToHSL(v.Light)
			dark, _ := HexToHSL(v.Dark)

			wantLight := math.Min(base.L+VariantShift, MaxLightLightness)
			wantDark := math.Max(base.L-VariantShift, MinDarkLightness)

			if math.Abs(light.L-wantLight) > lightnessTolerance {
				t.Errorf("light lightness = %.2f, want %.2f", light.L, wantLight)
			}
			if math.Abs(dark.L-wantDark) > lightnessTolerance {
				t.Errorf("dark lightness = %.2f, want %.2f", dark.L, wantDark)
			}
			if base.L <= MaxLightLightness && light.L < base.L-lightnessTolerance {
				t.Errorf("light variant %.2f darker than base %.2f", light.L, base.L)
			}
			if base.L >= MinDarkLightness && dark.L > base.L+lightnessTolerance {
				t.Errorf("dark variant %.2f lighter than base %.2f", dark.L, base.L)
			}
		})
	}
}

func TestVariationPreservesHueAndSaturation(t *testing.T) {
	// Saturated colours only; quantisation noise swamps hue for near-grays.
	for _, hex := range []string{"#10b981", "#1e40af", "#00c800", "#0000c8", "#336699"} {
		t.Run(hex, func(t *testing.T) {
			base, _ := HexToHSL(hex)
			v, _ := VariationFromHex(hex)

			for name, variant := range map[string]string{"light": v.Light, "dark": v.Dark} {
				got, _ := HexToHSL(variant)
				if HueDistance(got.H, base.H) > 1.5 {
					t.Errorf("%s hue = %.2f, want %.2f", name, got.H, base.H)
				}
				if math.Abs(got.S-base.S) > 1.5 {
					t.Errorf("%s saturation = %.2f, want %.2f", name, got.S, base.S)
				}
			}
		})
	}
}

func TestFallbackPalette(t *testing.T) {
	p := FallbackPalette()

	if p.Primary.Main != FallbackPrimaryHex {
		t.Errorf("Primary.Main = %s, want %s", p.Primary.Main, FallbackPrimaryHex)
	}
	if p.Secondary.Main != FallbackSecondaryHex {
		t.Errorf("Secondary.Main = %s, want %s", p.Secondary.Main, FallbackSecondaryHex)
	}
	if p.Tertiary.Main != FallbackTertiaryHex {
		t.Errorf("Tertiary.Main = %s, want %s", p.Tertiary.Main, FallbackTertiaryHex)
	}

	want, _ := VariationFromHex(FallbackPrimaryHex)
	if diff := cmp.Diff(want, p.Primary); diff != "" {
		t.Errorf("fallback primary variation mismatch (-want +got):\n%s", diff)
	}
}

func TestPaletteToJSON(t *testing.T) {
	p := FallbackPalette()

	data, err := p.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON() error: %v", err)
	}

	if !strings.HasPrefix(string(data), "{\n  \"primary\": {\n    \"main\": ") {
		t.Errorf("ToJSON() not indented with two spaces:\n%s", data)
	}

	var got map[string]map[string]string
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("ToJSON() produced invalid JSON: %v", err)
	}

	want := map[string]map[string]string{
		"primary":   {"main": p.Primary.Main, "light": p.Primary.Light, "dark": p.Primary.Dark},
		"secondary": {"main": p.Secondary.Main, "light": p.Secondary.Light, "dark": p.Secondary.Dark},
		"tertiary":  {"main": p.Tertiary.Main, "light": p.Tertiary.Light, "dark": p.Tertiary.Dark},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("JSON shape mismatch (-want +got):\n%s", diff)
	}
}

func TestPaletteGet(t *testing.T) {
	p := FallbackPalette()

	for _, role := range Roles() {
		if _, err := p.Get(role); err != nil {
			t.Errorf("Get(%s) error: %v", role, err)
		}
	}
	if _, err := p.Get("accent"); err == nil {
		t.Error("Expected error for unknown role")
	}
}

func TestPaletteString(t *testing.T) {
	out := FallbackPalette().String()

	for _, want := range []string{"primary:", "secondary:", "tertiary:", FallbackPrimaryHex, FallbackSecondaryHex, FallbackTertiaryHex} {
		if !strings.Contains(out, want) {
			t.Errorf("String() missing %q:\n%s", want, out)
		}
	}
	if lines := strings.Count(out, "\n"); lines != 3 {
		t.Errorf("String() has %d lines, want 3", lines)
	}
}

func TestPaletteStringWithPreview(t *testing.T) {
	p := FallbackPalette()
	out := p.StringWithPreview(true)

	for _, v := range []Variation{p.Primary, p.Secondary, p.Tertiary} {
		for _, hex := range []string{v.Main, v.Light, v.Dark} {
			if !strings.Contains(out, hex) {
				t.Errorf("StringWithPreview(true) missing %s:\n%s", hex, out)
			}
		}
	}
	if lines := strings.Count(out, "\n"); lines != 3 {
		t.Errorf("StringWithPreview(true) has %d lines, want 3", lines)
	}
}
