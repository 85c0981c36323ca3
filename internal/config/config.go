package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ghostmark/watermarker/pkg/types"
)

// Config holds the application configuration
type Config struct {
	Watermark WatermarkConfig `json:"watermark"`
	Output    OutputConfig    `json:"output"`
}

// WatermarkConfig describes the watermark applied to every image in a run
type WatermarkConfig struct {
	Text      string  `json:"text"`
	ImagePath string  `json:"image_path"`
	Position  string  `json:"position"`
	Opacity   float64 `json:"opacity"`
	Size      string  `json:"size"`
	PixelSize int     `json:"pixel_size"`
	TextColor string  `json:"text_color"`
	FontPath  string  `json:"font_path"`
}

// OutputConfig holds folder and encoder settings
type OutputConfig struct {
	InputDir     string `json:"input_dir"`
	OutputDir    string `json:"output_dir"`
	Prefix       string `json:"prefix"`
	JPEGQuality  int    `json:"jpeg_quality"`
	WebPLossless bool   `json:"webp_lossless"`
}

// Default returns a configuration with default values
func Default() *Config {
	return &Config{
		Watermark: WatermarkConfig{
			Text:      "@ghostmark",
			Position:  string(types.BottomRight),
			Opacity:   0.7,
			Size:      string(types.SizeSmall),
			PixelSize: 0,
			TextColor: "#000000",
		},
		Output: OutputConfig{
			InputDir:    "input",
			OutputDir:   "output",
			Prefix:      "",
			JPEGQuality: 90,
		},
	}
}

// LoadFromFile loads configuration from a JSON file
func LoadFromFile(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &config, nil
}

// SaveToFile saves configuration to a JSON file
func (c *Config) SaveToFile(filename string) error {
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Watermark.Text == "" && c.Watermark.ImagePath == "" {
		return fmt.Errorf("watermark.text or watermark.image_path must be set")
	}

	if c.Watermark.Opacity < 0 || c.Watermark.Opacity > 1 {
		return fmt.Errorf("watermark.opacity must be between 0 and 1")
	}

	if c.Watermark.PixelSize < 0 {
		return fmt.Errorf("watermark.pixel_size must not be negative")
	}

	if c.Watermark.PixelSize == 0 && !types.ValidSizeClass(types.SizeClass(c.Watermark.Size)) {
		return fmt.Errorf("watermark.size must be one of small, medium, large")
	}

	if c.Output.JPEGQuality < 1 || c.Output.JPEGQuality > 100 {
		return fmt.Errorf("output.jpeg_quality must be between 1 and 100")
	}

	return nil
}

// DefaultPath returns the default configuration file path
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "./config.json"
	}
	return filepath.Join(home, ".config", "watermarker", "config.json")
}
