package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/vixseg/brandkit/internal/config"
)

// pipelineFlags are the sampling flags shared by extract and generate.
type pipelineFlags struct {
	size     int
	resample string
}

func (f *pipelineFlags) register(fs *pflag.FlagSet) {
	defaults := config.Default()
	fs.IntVar(&f.size, "size", defaults.SampleSize, "working resolution the image is resampled to (1-1024)")
	fs.StringVar(&f.resample, "resample", defaults.Resample, "resampling kernel (nearest, bilinear, catmullrom)")
}

// apply overrides cfg with the flags the user set explicitly.
func (f *pipelineFlags) apply(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("size") {
		cfg.SampleSize = f.size
	}
	if cmd.Flags().Changed("resample") {
		cfg.Resample = f.resample
	}
}

// loadConfig reads the .env file and environment, then applies flags.
func loadConfig(cmd *cobra.Command, f *pipelineFlags, extra func(*config.Config)) (config.Config, error) {
	if err := config.LoadDotEnv(); err != nil {
		return config.Config{}, err
	}

	cfg, err := config.FromEnv()
	if err != nil {
		return cfg, err
	}

	f.apply(cmd, &cfg)
	if extra != nil {
		extra(&cfg)
	}

	return cfg, cfg.Validate()
}
