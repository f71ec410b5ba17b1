package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vixseg/brandkit/internal/colour"
	"github.com/vixseg/brandkit/internal/favicon"
	"github.com/vixseg/brandkit/internal/image"
)

type extractOptions struct {
	pipeline pipelineFlags
	format   string
	output   string
	preview  bool
}

func newExtractCmd(global *globalOptions) *cobra.Command {
	opts := &extractOptions{}

	cmd := &cobra.Command{
		Use:   "extract <image>",
		Short: "Extract the theme palette from an image",
		Long: `Extract the three-role theme palette from an image.

The image is cropped to its centre square and resampled to the working
resolution. Transparent, near-white and near-black pixels are ignored and the
remaining colours are ranked by frequency. The first green candidate becomes
primary, the first blue one secondary and the first gray one tertiary.

Unlike generate, extract fails when the image cannot be used.

Supported image formats: PNG, JPEG, GIF, WebP, BMP, TIFF

Examples:
  # Print the palette
  brandkit extract favicon.png

  # Print the palette with colour swatches
  brandkit extract --preview favicon.png

  # Print the CSS custom properties
  brandkit extract --format css favicon.png

  # Save the palette as JSON
  brandkit extract --format json --output colors.json favicon.png`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExtract(cmd, global, opts, args[0])
		},
	}

	opts.pipeline.register(cmd.Flags())
	cmd.Flags().StringVarP(&opts.format, "format", "f", "text", "output format (text, json, css)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().BoolVar(&opts.preview, "preview", false, "show colour swatches (default: when stdout is a terminal)")

	return cmd
}

func runExtract(cmd *cobra.Command, global *globalOptions, opts *extractOptions, imagePath string) error {
	if err := image.ValidateImagePath(imagePath); err != nil {
		return fmt.Errorf("invalid image path: %w", err)
	}

	cfg, err := loadConfig(cmd, &opts.pipeline, nil)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger := global.newLogger(cmd.ErrOrStderr(), cfg.LogLevel)
	if !image.IsImageFile(imagePath) {
		logger.Debug("unrecognised image extension, format detected from content",
			"path", imagePath, "supported", image.SupportedImageExtensions())
	}

	fx, err := favicon.New(logger, cfg.FaviconOptions())
	if err != nil {
		return fmt.Errorf("failed to create extractor: %w", err)
	}

	palette, err := fx.TryExtract(imagePath)
	if err != nil {
		return fmt.Errorf("failed to extract colours: %w", err)
	}

	showPreview := opts.preview
	if !cmd.Flags().Changed("preview") && opts.output == "" && cmd.OutOrStdout() == os.Stdout {
		showPreview = colour.SupportsANSIColours(os.Stdout)
	}

	out, err := formatPalette(palette, opts.format, showPreview && opts.output == "")
	if err != nil {
		return err
	}

	if opts.output != "" {
		logger.Debug("writing palette", "path", opts.output)
		if err := os.WriteFile(opts.output, []byte(out), 0o644); err != nil { // #nosec G306 - Palette files need standard read permissions
			return fmt.Errorf("failed to write output file: %w", err)
		}
		global.status(cmd.ErrOrStderr(), "%s %s", successStyle.Sprint("✓"), "Palette written to "+opts.output)
		return nil
	}

	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}

// formatPalette formats the palette according to the specified format.
func formatPalette(palette *colour.Palette, format string, showPreview bool) (string, error) {
	switch format {
	case "text", "":
		return palette.StringWithPreview(showPreview), nil
	case "json":
		data, err := palette.ToJSON()
		if err != nil {
			return "", fmt.Errorf("failed to convert to JSON: %w", err)
		}
		return string(data) + "\n", nil
	case "css":
		return colour.CSSRootRule(palette), nil
	default:
		return "", fmt.Errorf("unsupported format: %s (supported: text, json, css)", format)
	}
}
