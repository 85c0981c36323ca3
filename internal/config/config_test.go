package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default() config is invalid: %v", err)
	}
	if cfg.Watermark.Position != "bottom-right" {
		t.Errorf("default position = %q, want bottom-right", cfg.Watermark.Position)
	}
	if cfg.Watermark.Opacity != 0.7 {
		t.Errorf("default opacity = %v, want 0.7", cfg.Watermark.Opacity)
	}
}

func TestValidateErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"no watermark", func(c *Config) { c.Watermark.Text = ""; c.Watermark.ImagePath = "" }},
		{"opacity too high", func(c *Config) { c.Watermark.Opacity = 1.5 }},
		{"opacity negative", func(c *Config) { c.Watermark.Opacity = -0.1 }},
		{"negative pixel size", func(c *Config) { c.Watermark.PixelSize = -5 }},
		{"unknown size class", func(c *Config) { c.Watermark.Size = "huge" }},
		{"quality zero", func(c *Config) { c.Output.JPEGQuality = 0 }},
		{"quality too high", func(c *Config) { c.Output.JPEGQuality = 101 }},
	}

	for _, tt := range tests {
		cfg := Default()
		tt.mutate(cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: Validate() returned nil, want error", tt.name)
		}
	}
}

func TestPixelSizeSkipsSizeClassCheck(t *testing.T) {
	cfg := Default()
	cfg.Watermark.PixelSize = 48
	cfg.Watermark.Size = ""
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() with pixel size returned error: %v", err)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")

	cfg := Default()
	cfg.Watermark.Text = "CONFIDENTIAL"
	cfg.Watermark.Opacity = 0.4
	cfg.Output.Prefix = "wm_"

	if err := cfg.SaveToFile(path); err != nil {
		t.Fatalf("SaveToFile() returned error: %v", err)
	}

	loaded, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile() returned error: %v", err)
	}

	if loaded.Watermark.Text != "CONFIDENTIAL" {
		t.Errorf("loaded text = %q, want %q", loaded.Watermark.Text, "CONFIDENTIAL")
	}
	if loaded.Watermark.Opacity != 0.4 {
		t.Errorf("loaded opacity = %v, want 0.4", loaded.Watermark.Opacity)
	}
	if loaded.Output.Prefix != "wm_" {
		t.Errorf("loaded prefix = %q, want %q", loaded.Output.Prefix, "wm_")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	if _, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("LoadFromFile(missing) returned nil error")
	}
}
