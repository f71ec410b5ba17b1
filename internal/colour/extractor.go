package colour

import (
	"errors"
	"fmt"
	"image"
	"slices"
)

// ErrNoColours is returned when every pixel of an image is filtered out.
var ErrNoColours = errors.New("no colours left after filtering")

// HueRange is an inclusive range of hue angles in degrees.
type HueRange struct {
	Min float64
	Max float64
}

// Contains reports whether h lies in the range.
func (r HueRange) Contains(h float64) bool {
	return h >= r.Min && h <= r.Max
}

// ExtractorOptions holds the thresholds of the palette extractor.
type ExtractorOptions struct {
	// AlphaThreshold rejects pixels whose alpha is below it.
	AlphaThreshold uint8

	// NearWhite rejects pixels with every channel above it.
	NearWhite uint8

	// NearBlack rejects pixels with every channel below it.
	NearBlack uint8

	// Candidates is how many of the most frequent colours are classified.
	Candidates int

	PrimaryHue            HueRange
	SecondaryHue          HueRange
	TertiaryMaxSaturation float64
}

// DefaultExtractorOptions returns the default extractor options: green
// primary, blue secondary and gray tertiary.
func DefaultExtractorOptions() ExtractorOptions {
	return ExtractorOptions{
		AlphaThreshold:        128,
		NearWhite:             240,
		NearBlack:             15,
		Candidates:            3,
		PrimaryHue:            HueRange{Min: 80, Max: 160},
		SecondaryHue:          HueRange{Min: 180, Max: 260},
		TertiaryMaxSaturation: 20,
	}
}

// Validate validates the extractor options.
func (o ExtractorOptions) Validate() error {
	if o.Candidates < 1 {
		return fmt.Errorf("candidate count must be at least 1, got %d", o.Candidates)
	}
	if o.NearBlack >= o.NearWhite {
		return fmt.Errorf("near-black threshold (%d) must be below near-white threshold (%d)", o.NearBlack, o.NearWhite)
	}
	for name, r := range map[string]HueRange{"primary": o.PrimaryHue, "secondary": o.SecondaryHue} {
		if r.Min < 0 || r.Max > 360 || r.Min > r.Max {
			return fmt.Errorf("invalid %s hue range [%g, %g]", name, r.Min, r.Max)
		}
	}
	if o.TertiaryMaxSaturation < 0 || o.TertiaryMaxSaturation > 100 {
		return fmt.Errorf("tertiary saturation limit out of range: %g", o.TertiaryMaxSaturation)
	}
	return nil
}

// ColourCount is a sampled colour and the number of pixels that had it.
type ColourCount struct {
	Colour RGB
	Count  int
}

// Extractor ranks the colours of an image by frequency and assigns them to
// palette roles by hue.
type Extractor struct {
	opts ExtractorOptions
}

// NewExtractor creates an Extractor with the given options.
func NewExtractor(opts ExtractorOptions) (*Extractor, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid extractor options: %w", err)
	}
	return &Extractor{opts: opts}, nil
}

// NewDefaultExtractor creates an Extractor with DefaultExtractorOptions.
func NewDefaultExtractor() *Extractor {
	return &Extractor{opts: DefaultExtractorOptions()}
}

// Options returns the extractor options.
func (e *Extractor) Options() ExtractorOptions {
	return e.opts
}

// keep reports whether a pixel takes part in the frequency count.
func (e *Extractor) keep(r, g, b, a uint8) bool {
	if a < e.opts.AlphaThreshold {
		return false
	}
	if r > e.opts.NearWhite && g > e.opts.NearWhite && b > e.opts.NearWhite {
		return false
	}
	if r < e.opts.NearBlack && g < e.opts.NearBlack && b < e.opts.NearBlack {
		return false
	}
	return true
}

// Sample counts every surviving pixel of img by colour and returns the
// colours by descending count. Equal counts keep first-seen order.
func (e *Extractor) Sample(img image.Image) []ColourCount {
	bounds := img.Bounds()

	index := make(map[RGB]int)
	var counts []ColourCount

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, a := nrgbaAt(img, x, y)
			if !e.keep(r, g, b, a) {
				continue
			}

			key := RGB{R: r, G: g, B: b}
			if i, ok := index[key]; ok {
				counts[i].Count++
				continue
			}
			index[key] = len(counts)
			counts = append(counts, ColourCount{Colour: key, Count: 1})
		}
	}

	slices.SortStableFunc(counts, func(a, b ColourCount) int {
		return b.Count - a.Count
	})

	return counts
}

// Extract derives a palette from img.
//
// The most frequent colours are classified in frequency order: the first
// in the primary hue range becomes primary, the first in the secondary hue
// range becomes secondary and the first below the saturation limit becomes
// tertiary. A role with no match takes the candidate at its position, or the
// last candidate when there are fewer, so roles may share a colour.
func (e *Extractor) Extract(img image.Image) (*Palette, error) {
	if img == nil {
		return nil, fmt.Errorf("image cannot be nil")
	}

	counts := e.Sample(img)
	if len(counts) == 0 {
		return nil, ErrNoColours
	}

	candidates := counts[:min(e.opts.Candidates, len(counts))]
	return e.classify(candidates), nil
}

type candidate struct {
	rgb RGB
	hsl HSL
}

func (e *Extractor) classify(counts []ColourCount) *Palette {
	candidates := make([]candidate, len(counts))
	for i, c := range counts {
		candidates[i] = candidate{rgb: c.Colour, hsl: c.Colour.HSL()}
	}

	pick := func(position int, match func(HSL) bool) RGB {
		for _, c := range candidates {
			if match(c.hsl) {
				return c.rgb
			}
		}
		return candidates[min(position, len(candidates)-1)].rgb
	}

	primary := pick(0, func(c HSL) bool { return e.opts.PrimaryHue.Contains(c.H) })
	secondary := pick(1, func(c HSL) bool { return e.opts.SecondaryHue.Contains(c.H) })
	tertiary := pick(2, func(c HSL) bool { return c.S < e.opts.TertiaryMaxSaturation })

	return NewPalette(primary, secondary, tertiary)
}

// nrgbaAt reads a non-premultiplied pixel, avoiding the interface
// conversion for the common concrete image types.
func nrgbaAt(img image.Image, x, y int) (r, g, b, a uint8) {
	switch src := img.(type) {
	case *image.NRGBA:
		c := src.NRGBAAt(x, y)
		return c.R, c.G, c.B, c.A
	default:
		c := ToNRGBA(img.At(x, y))
		return c.R, c.G, c.B, c.A
	}
}
