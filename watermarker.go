// Package watermarker batch-applies a visual watermark onto images.
//
// A watermark is either a piece of text (with a configurable color) or an
// image overlay. It is rendered semi-transparently onto a full-canvas
// transparency layer sized, positioned and faded per configuration, then
// alpha-composited onto each source image. Results keep the source file's
// original format.
//
// Basic usage:
//
//	package main
//
//	import (
//		"log"
//
//		"github.com/ghostmark/watermarker"
//		"github.com/ghostmark/watermarker/pkg/types"
//	)
//
//	func main() {
//		opts := watermarker.DefaultOptions()
//		opts.Spec.Text = "DRAFT"
//		opts.Position = types.Center
//		opts.Opacity = 0.5
//
//		wm, err := watermarker.New(opts)
//		if err != nil {
//			log.Fatal(err)
//		}
//
//		summary, err := wm.ProcessDirectory("input", "output", "")
//		if err != nil {
//			log.Fatal(err)
//		}
//		log.Printf("%d processed, %d skipped", summary.Processed, summary.Skipped)
//	}
//
// The package consists of four main components:
//
// 1. Overlay builder (pkg/overlay): renders the watermark layer
// 2. Compositor (pkg/compositor): blends the layer onto the source image
// 3. Processing (pkg/processing): format-preserving image I/O
// 4. Batch (pkg/batch): per-file isolation over an input folder
package watermarker

import (
	"fmt"
	"image"

	"go.uber.org/zap"

	"github.com/ghostmark/watermarker/internal/config"
	"github.com/ghostmark/watermarker/pkg/batch"
	"github.com/ghostmark/watermarker/pkg/compositor"
	"github.com/ghostmark/watermarker/pkg/overlay"
	"github.com/ghostmark/watermarker/pkg/processing"
	"github.com/ghostmark/watermarker/pkg/types"
)

// Version of the watermarker library
const Version = "1.0.0"

// Options configures a Watermarker
type Options struct {
	Spec     types.WatermarkSpec
	Position types.Position
	Opacity  float64

	// Margin in pixels from canvas edges for non-center anchors;
	// 0 means the default of 10.
	Margin int
	// FontPath optionally points at a TTF/OTF file for text watermarks.
	FontPath string
	// SizeFactors overrides the relative size table; nil means defaults.
	SizeFactors map[types.SizeClass]float64

	JPEGQuality  int
	WebPLossless bool

	Logger *zap.Logger
}

// DefaultOptions returns options matching the CLI defaults: black text,
// bottom-right anchor, small relative size, opacity 0.7.
func DefaultOptions() Options {
	return Options{
		Spec: types.WatermarkSpec{
			Text:  "@ghostmark",
			Color: types.RGB{},
			Mode:  types.SizeRelative,
			Class: types.SizeSmall,
		},
		Position:    types.BottomRight,
		Opacity:     0.7,
		JPEGQuality: processing.DefaultJPEGQuality,
	}
}

// FromConfig builds Options from a run configuration, resolving the text
// color and size mode. Color resolution failures surface here as
// overlay.ErrInvalidColor.
func FromConfig(cfg *config.Config) (Options, error) {
	opts := DefaultOptions()

	spec := types.WatermarkSpec{
		Text:      cfg.Watermark.Text,
		ImagePath: cfg.Watermark.ImagePath,
		Class:     types.SizeClass(cfg.Watermark.Size),
	}
	if cfg.Watermark.PixelSize > 0 {
		spec.Mode = types.SizePixel
		spec.PixelSize = cfg.Watermark.PixelSize
	}
	if !spec.IsImage() {
		rgb, err := overlay.ResolveColor(cfg.Watermark.TextColor)
		if err != nil {
			return opts, err
		}
		spec.Color = rgb
	}

	opts.Spec = spec
	opts.Position = types.ParsePosition(cfg.Watermark.Position)
	opts.Opacity = cfg.Watermark.Opacity
	opts.FontPath = cfg.Watermark.FontPath
	opts.JPEGQuality = cfg.Output.JPEGQuality
	opts.WebPLossless = cfg.Output.WebPLossless
	return opts, nil
}

// Watermarker applies one configured watermark to many images
type Watermarker struct {
	builder   *overlay.Builder
	processor *processing.Processor

	quality  int
	lossless bool
	log      *zap.Logger
}

// New validates the watermark configuration and loads its resources. All
// spec-level failures (unreadable watermark image, bad canvas-independent
// settings) happen here, before any input file is touched: a bad spec would
// invalidate every output.
func New(opts Options) (*Watermarker, error) {
	if opts.Position == "" {
		opts.Position = types.BottomRight
	}
	if opts.JPEGQuality == 0 {
		opts.JPEGQuality = processing.DefaultJPEGQuality
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	builder, err := overlay.NewBuilder(overlay.Config{
		Spec:        opts.Spec,
		Position:    opts.Position,
		Opacity:     opts.Opacity,
		Margin:      opts.Margin,
		FontPath:    opts.FontPath,
		SizeFactors: opts.SizeFactors,
	})
	if err != nil {
		return nil, err
	}

	return &Watermarker{
		builder:   builder,
		processor: processing.NewProcessor(),
		quality:   opts.JPEGQuality,
		lossless:  opts.WebPLossless,
		log:       opts.Logger,
	}, nil
}

// Apply watermarks a decoded image, returning a composited copy tagged with
// the source format. The input image is never mutated.
func (w *Watermarker) Apply(img image.Image, format string) (*compositor.Result, error) {
	b := img.Bounds()
	layer, err := w.builder.Build(b.Dx(), b.Dy())
	if err != nil {
		return nil, err
	}
	return compositor.Composite(img, layer, format), nil
}

// ProcessFile loads, watermarks and saves a single image, preserving the
// source format.
func (w *Watermarker) ProcessFile(inputPath, outputPath string) error {
	img, format, err := w.processor.Load(inputPath)
	if err != nil {
		return err
	}

	result, err := w.Apply(img, format)
	if err != nil {
		return fmt.Errorf("watermark %s: %w", inputPath, err)
	}

	return w.processor.Save(result.Image, outputPath, result.Format, w.quality, w.lossless)
}

// ProcessDirectory watermarks every supported image in inputDir, writing
// results to outputDir with the given filename prefix. Per-file failures are
// counted as skipped and never abort the batch.
func (w *Watermarker) ProcessDirectory(inputDir, outputDir, prefix string) (types.Summary, error) {
	return batch.NewRunner(w, prefix, w.log).Run(inputDir, outputDir)
}
