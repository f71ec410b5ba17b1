package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, key := range []string{EnvFavicon, EnvOutputDir, EnvSampleSize, EnvResample, EnvLogLevel} {
		t.Setenv(key, "")
	}

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv() error: %v", err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("FromEnv() mismatch (-want +got):\n%s", diff)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv(EnvFavicon, "public/icon.png")
	t.Setenv(EnvOutputDir, "out")
	t.Setenv(EnvSampleSize, "32")
	t.Setenv(EnvResample, "Nearest")
	t.Setenv(EnvLogLevel, "DEBUG")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv() error: %v", err)
	}

	want := Config{
		FaviconPath: "public/icon.png",
		OutputDir:   "out",
		SampleSize:  32,
		Resample:    "nearest",
		LogLevel:    "debug",
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("FromEnv() mismatch (-want +got):\n%s", diff)
	}
}

func TestFromEnvInvalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "size not a number", key: EnvSampleSize, value: "big"},
		{name: "size out of range", key: EnvSampleSize, value: "0"},
		{name: "unknown kernel", key: EnvResample, value: "lanczos"},
		{name: "unknown log level", key: EnvLogLevel, value: "loud"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			if _, err := FromEnv(); err == nil {
				t.Errorf("FromEnv() with %s=%s expected error", tt.key, tt.value)
			}
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte(EnvOutputDir+"=from-dotenv\n"+EnvFavicon+"=dotenv.png\n"), 0o600); err != nil {
		t.Fatalf("Failed to write .env: %v", err)
	}

	// Variables already set win over the file.
	t.Setenv(EnvFavicon, "already-set.png")
	t.Setenv(EnvOutputDir, "")
	os.Unsetenv(EnvOutputDir)

	if err := LoadDotEnv(path); err != nil {
		t.Fatalf("LoadDotEnv() error: %v", err)
	}

	if got := os.Getenv(EnvOutputDir); got != "from-dotenv" {
		t.Errorf("%s = %q, want from-dotenv", EnvOutputDir, got)
	}
	if got := os.Getenv(EnvFavicon); got != "already-set.png" {
		t.Errorf("%s = %q, want already-set.png", EnvFavicon, got)
	}
}

func TestLoadDotEnvMissingFile(t *testing.T) {
	if err := LoadDotEnv(filepath.Join(t.TempDir(), "nope.env")); err != nil {
		t.Errorf("LoadDotEnv() should ignore missing files, got %v", err)
	}
}
