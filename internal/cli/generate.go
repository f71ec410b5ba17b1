package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/vixseg/brandkit/internal/colour"
	"github.com/vixseg/brandkit/internal/config"
	"github.com/vixseg/brandkit/internal/favicon"
	"github.com/vixseg/brandkit/internal/output"
)

type generateOptions struct {
	pipeline  pipelineFlags
	favicon   string
	outputDir string
	outputs   []string
}

func newGenerateCmd(global *globalOptions) *cobra.Command {
	opts := &generateOptions{}
	registry := output.DefaultRegistry()

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the site theme from the favicon",
		Long: `Generate the site theme from the company favicon.

The palette is extracted from the favicon and written to the output
directory (colors.json by default). The CSS custom properties are printed so
they can be added to globals.css.

If the favicon cannot be read the built-in palette is used instead and the
error is logged; generate itself does not fail for that reason.

Configuration is read from BRANDKIT_* environment variables and an optional
.env file; flags take precedence.

Examples:
  # Generate lib/colors.json from docs/exemplos/favicon.png
  brandkit generate

  # Use another icon and also write colors.css
  brandkit generate --favicon public/icon.png --outputs json,css`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, global, opts, registry)
		},
	}

	defaults := config.Default()
	opts.pipeline.register(cmd.Flags())
	cmd.Flags().StringVar(&opts.favicon, "favicon", defaults.FaviconPath, "favicon to extract the palette from")
	cmd.Flags().StringVar(&opts.outputDir, "output-dir", defaults.OutputDir, "directory for the generated files")
	cmd.Flags().StringSliceVar(&opts.outputs, "outputs", []string{"json"}, fmt.Sprintf("artifacts to write %v", registry.List()))

	return cmd
}

func runGenerate(cmd *cobra.Command, global *globalOptions, opts *generateOptions, registry *output.Registry) error {
	cfg, err := loadConfig(cmd, &opts.pipeline, func(cfg *config.Config) {
		if cmd.Flags().Changed("favicon") {
			cfg.FaviconPath = opts.favicon
		}
		if cmd.Flags().Changed("output-dir") {
			cfg.OutputDir = opts.outputDir
		}
	})
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	generators := make([]output.Generator, 0, len(opts.outputs))
	for _, name := range slices.Compact(slices.Sorted(slices.Values(opts.outputs))) {
		g, ok := registry.Get(name)
		if !ok {
			return fmt.Errorf("unknown output: %s (available: %v)", name, registry.List())
		}
		generators = append(generators, g)
	}

	logger := global.newLogger(cmd.ErrOrStderr(), cfg.LogLevel)
	out := cmd.OutOrStdout()

	fx, err := favicon.New(logger, cfg.FaviconOptions())
	if err != nil {
		return fmt.Errorf("failed to create extractor: %w", err)
	}

	global.status(out, "%s", headingStyle.Sprint("Extracting colours from favicon..."))
	palette := fx.Extract(cfg.FaviconPath)

	global.status(out, "\n%s Colours extracted:", successStyle.Sprint("✓"))
	global.status(out, "Primary (Green):    %s", formatVariation(palette.Primary))
	global.status(out, "Secondary (Blue):   %s", formatVariation(palette.Secondary))
	global.status(out, "Tertiary (Gray):    %s", formatVariation(palette.Tertiary))

	for _, g := range generators {
		files, err := g.Generate(palette)
		if err != nil {
			return fmt.Errorf("failed to generate %s output: %w", g.Name(), err)
		}

		written, err := output.WriteFiles(cfg.OutputDir, files)
		if err != nil {
			return fmt.Errorf("failed to write %s output: %w", g.Name(), err)
		}
		for _, path := range written {
			global.status(out, "\n%s Saved %s", successStyle.Sprint("✓"), path)
		}
	}

	global.status(out, "\n%s", headingStyle.Sprint("CSS variables to add to globals.css:"))
	fmt.Fprint(out, colour.CSSVariables(palette))

	return nil
}

func formatVariation(v colour.Variation) string {
	return fmt.Sprintf("%s %s", v.Main, dimStyle.Sprintf("(light %s, dark %s)", v.Light, v.Dark))
}
