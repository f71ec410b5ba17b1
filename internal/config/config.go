// Package config loads brandkit settings from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/joho/godotenv"

	"github.com/vixseg/brandkit/internal/favicon"
	imageutil "github.com/vixseg/brandkit/internal/image"
)

// Environment variable names.
const (
	EnvFavicon    = "BRANDKIT_FAVICON"
	EnvOutputDir  = "BRANDKIT_OUTPUT_DIR"
	EnvSampleSize = "BRANDKIT_SAMPLE_SIZE"
	EnvResample   = "BRANDKIT_RESAMPLE"
	EnvLogLevel   = "BRANDKIT_LOG_LEVEL"
)

// DefaultOutputDir is where the site build expects colors.json.
const DefaultOutputDir = "lib"

// Config holds the settings shared by the commands.
type Config struct {
	FaviconPath string
	OutputDir   string
	SampleSize  int
	Resample    string
	LogLevel    string
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		FaviconPath: favicon.DefaultPath,
		OutputDir:   DefaultOutputDir,
		SampleSize:  imageutil.DefaultWorkingSize,
		Resample:    string(imageutil.KernelCatmullRom),
		LogLevel:    "info",
	}
}

// LoadDotEnv loads variables from the given .env files (default ".env")
// without overriding ones already set. Missing files are ignored.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}

	existing := make([]string, 0, len(files))
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			existing = append(existing, f)
		}
	}
	if len(existing) == 0 {
		return nil
	}

	if err := godotenv.Load(existing...); err != nil {
		return fmt.Errorf("failed to load env file: %w", err)
	}
	return nil
}

// FromEnv returns Default overridden by any BRANDKIT_* variables set.
func FromEnv() (Config, error) {
	cfg := Default()

	if v := os.Getenv(EnvFavicon); v != "" {
		cfg.FaviconPath = v
	}
	if v := os.Getenv(EnvOutputDir); v != "" {
		cfg.OutputDir = v
	}
	if v := os.Getenv(EnvSampleSize); v != "" {
		size, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid %s: %w", EnvSampleSize, err)
		}
		cfg.SampleSize = size
	}
	if v := os.Getenv(EnvResample); v != "" {
		cfg.Resample = strings.ToLower(v)
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}

	return cfg, cfg.Validate()
}

// Validate checks the configuration.
func (c Config) Validate() error {
	if c.FaviconPath == "" {
		return fmt.Errorf("favicon path cannot be empty")
	}
	if _, err := imageutil.ParseKernel(c.Resample); err != nil {
		return err
	}
	if hclog.LevelFromString(c.LogLevel) == hclog.NoLevel {
		return fmt.Errorf("invalid log level: %s", c.LogLevel)
	}
	return c.FaviconOptions().Validate()
}

// FaviconOptions converts the configuration to pipeline options.
func (c Config) FaviconOptions() favicon.Options {
	opts := favicon.DefaultOptions()
	opts.Size = c.SampleSize
	opts.Kernel = imageutil.Kernel(c.Resample)
	return opts
}
