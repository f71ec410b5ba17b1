// Package favicon derives the site theme palette from the company favicon.
package favicon

import (
	"fmt"

	"github.com/hashicorp/go-hclog"

	"github.com/vixseg/brandkit/internal/colour"
	imageutil "github.com/vixseg/brandkit/internal/image"
)

// DefaultPath is where the site keeps its favicon, relative to the project root.
const DefaultPath = "docs/exemplos/favicon.png"

// Options configures the favicon pipeline.
type Options struct {
	// Size is the square working resolution the icon is resampled to.
	Size int

	// Kernel is the resampling kernel.
	Kernel imageutil.Kernel

	// Extractor holds the colour filtering and classification thresholds.
	Extractor colour.ExtractorOptions
}

// DefaultOptions returns the default pipeline options.
func DefaultOptions() Options {
	return Options{
		Size:      imageutil.DefaultWorkingSize,
		Kernel:    imageutil.KernelCatmullRom,
		Extractor: colour.DefaultExtractorOptions(),
	}
}

// Validate validates the options.
func (o Options) Validate() error {
	if o.Size < 1 || o.Size > 1024 {
		return fmt.Errorf("working size out of range: %d (1-1024)", o.Size)
	}
	if _, err := o.Kernel.Interpolator(); err != nil {
		return err
	}
	return o.Extractor.Validate()
}

// Extractor loads an icon, resamples it and extracts a palette from it.
// It holds no per-call state.
type Extractor struct {
	loader    imageutil.Loader
	extractor *colour.Extractor
	logger    hclog.Logger
	opts      Options
}

// New creates an Extractor. A nil logger discards log output.
func New(logger hclog.Logger, opts Options) (*Extractor, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid favicon options: %w", err)
	}

	ex, err := colour.NewExtractor(opts.Extractor)
	if err != nil {
		return nil, err
	}

	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	return &Extractor{
		loader:    imageutil.NewFileLoader(),
		extractor: ex,
		logger:    logger.Named("favicon"),
		opts:      opts,
	}, nil
}

// WithLoader replaces the image loader.
func (e *Extractor) WithLoader(loader imageutil.Loader) *Extractor {
	e.loader = loader
	return e
}

// Extract returns the palette of the icon at path. It never fails: on any
// error it logs once and returns colour.FallbackPalette.
func (e *Extractor) Extract(path string) *colour.Palette {
	palette, err := e.TryExtract(path)
	if err != nil {
		e.logger.Error("error extracting colours from favicon, using fallback palette", "path", path, "error", err)
		return colour.FallbackPalette()
	}
	return palette
}

// TryExtract is Extract without the fallback.
func (e *Extractor) TryExtract(path string) (*colour.Palette, error) {
	e.logger.Debug("loading favicon", "path", path)

	img, err := e.loader.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load favicon: %w", err)
	}

	bounds := img.Bounds()
	e.logger.Debug("favicon loaded", "width", bounds.Dx(), "height", bounds.Dy())

	working, err := imageutil.FitSquare(img, e.opts.Size, e.opts.Kernel)
	if err != nil {
		return nil, fmt.Errorf("failed to resample favicon: %w", err)
	}

	if e.logger.IsTrace() {
		for i, c := range e.extractor.Sample(working) {
			if i == e.opts.Extractor.Candidates {
				break
			}
			e.logger.Trace("candidate colour", "rank", i+1, "hex", c.Colour.Hex(), "count", c.Count, "hsl", c.Colour.HSL().String())
		}
	}

	palette, err := e.extractor.Extract(working)
	if err != nil {
		return nil, fmt.Errorf("failed to extract palette: %w", err)
	}

	e.logger.Debug("palette extracted",
		"primary", palette.Primary.Main,
		"secondary", palette.Secondary.Main,
		"tertiary", palette.Tertiary.Main)

	return palette, nil
}
