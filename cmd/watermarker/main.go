package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/ghostmark/watermarker"
	"github.com/ghostmark/watermarker/internal/config"
	"github.com/ghostmark/watermarker/internal/utils"
)

func main() {
	def := config.Default()

	var (
		in, out, text, imagePath, position, size, textColor, prefix, fontPath, configPath string
		opacity                                                                           float64
		pixelSize, quality                                                                int
		lossless, verbose                                                                 bool
	)

	flag.StringVar(&in, "in", def.Output.InputDir, "input folder containing images to watermark")
	flag.StringVar(&out, "out", def.Output.OutputDir, "output folder for watermarked images")
	flag.StringVar(&text, "text", def.Watermark.Text, "text to use as watermark")
	flag.StringVar(&imagePath, "image", "", "path to an image to use as watermark instead of text")
	flag.StringVar(&position, "position", def.Watermark.Position,
		"watermark position: top-left|top-center|top-right|center-left|center|center-right|bottom-left|bottom-center|bottom-right")
	flag.Float64Var(&opacity, "opacity", def.Watermark.Opacity, "watermark opacity from 0.0 (invisible) to 1.0 (fully visible)")
	flag.StringVar(&size, "size", def.Watermark.Size, "relative watermark size: small|medium|large")
	flag.IntVar(&pixelSize, "pixel-size", def.Watermark.PixelSize,
		"fixed size in pixels for the text height or the longest side of an image watermark (0 = relative sizing)")
	flag.StringVar(&textColor, "color", def.Watermark.TextColor, "text color, a name (e.g. red) or hex code (e.g. #FF0000)")
	flag.StringVar(&prefix, "prefix", def.Output.Prefix, "prefix added to output filenames")
	flag.StringVar(&fontPath, "font", "", "path to a TTF/OTF font for text watermarks (default: system font)")
	flag.IntVar(&quality, "quality", def.Output.JPEGQuality, "JPEG/WebP output quality (1-100)")
	flag.BoolVar(&lossless, "lossless", def.Output.WebPLossless, "WebP output lossless mode")
	flag.StringVar(&configPath, "config", "", "path to a JSON config file (flags override its values)")
	flag.BoolVar(&verbose, "verbose", false, "enable debug logging")
	flag.Parse()

	logger := newLogger(verbose)
	defer logger.Sync()

	cfg := def
	if configPath != "" {
		if !utils.FileExists(configPath) {
			logger.Fatal("config file not found", zap.String("path", configPath))
		}
		loaded, err := config.LoadFromFile(configPath)
		if err != nil {
			logger.Fatal("failed to load config", zap.Error(err))
		}
		cfg = loaded
	}

	// Flags set on the command line win over the config file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "in":
			cfg.Output.InputDir = in
		case "out":
			cfg.Output.OutputDir = out
		case "text":
			cfg.Watermark.Text = text
		case "image":
			cfg.Watermark.ImagePath = imagePath
		case "position":
			cfg.Watermark.Position = position
		case "opacity":
			cfg.Watermark.Opacity = opacity
		case "size":
			cfg.Watermark.Size = size
		case "pixel-size":
			cfg.Watermark.PixelSize = pixelSize
		case "color":
			cfg.Watermark.TextColor = textColor
		case "prefix":
			cfg.Output.Prefix = prefix
		case "font":
			cfg.Watermark.FontPath = fontPath
		case "quality":
			cfg.Output.JPEGQuality = quality
		case "lossless":
			cfg.Output.WebPLossless = lossless
		}
	})

	// An image watermark replaces the default text.
	if cfg.Watermark.ImagePath != "" {
		cfg.Watermark.Text = ""
	}

	if err := cfg.Validate(); err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}
	if !utils.DirExists(cfg.Output.InputDir) {
		logger.Fatal("input folder does not exist", zap.String("path", cfg.Output.InputDir))
	}

	opts, err := watermarker.FromConfig(cfg)
	if err != nil {
		logger.Fatal("invalid watermark spec", zap.Error(err))
	}
	opts.Logger = logger

	wm, err := watermarker.New(opts)
	if err != nil {
		logger.Fatal("failed to prepare watermark", zap.Error(err))
	}

	summary, err := wm.ProcessDirectory(cfg.Output.InputDir, cfg.Output.OutputDir, cfg.Output.Prefix)
	if err != nil {
		logger.Fatal("batch failed", zap.Error(err))
	}

	fmt.Printf("%s: %d images processed, %d skipped\n",
		filepath.Base(os.Args[0]), summary.Processed, summary.Skipped)
}

// newLogger builds a console logger; verbose enables debug level
func newLogger(verbose bool) *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	return logger
}
