// Package overlay renders watermark layers: full-canvas transparent buffers
// carrying the configured text or image watermark at the configured
// position, size and opacity.
package overlay

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/ghostmark/watermarker/pkg/types"
)

// ErrWatermarkLoad marks an unreadable watermark image. It is raised at
// Builder construction, before any input file is processed.
var ErrWatermarkLoad = errors.New("watermark image unreadable")

// DefaultSizeFactors returns the relative size table: fraction of the
// smaller canvas dimension per size bucket.
func DefaultSizeFactors() map[types.SizeClass]float64 {
	return map[types.SizeClass]float64{
		types.SizeSmall:  0.05,
		types.SizeMedium: 0.08,
		types.SizeLarge:  0.12,
	}
}

// Config carries Builder construction parameters.
type Config struct {
	Spec     types.WatermarkSpec
	Position types.Position
	Opacity  float64
	// Margin overrides the edge margin in pixels; 0 means DefaultMargin.
	Margin int
	// FontPath optionally points at a TTF/OTF file for text watermarks.
	FontPath string
	// SizeFactors overrides the relative size table; nil means defaults.
	SizeFactors map[types.SizeClass]float64
}

// Builder renders watermark layers for one run's configuration. It is
// constructed once and reused read-only for every canvas.
type Builder struct {
	spec     types.WatermarkSpec
	position types.Position
	opacity  float64
	margin   int
	factors  map[types.SizeClass]float64

	font *sfnt.Font
	mark image.Image
}

// NewBuilder validates the watermark configuration and loads the resources
// it needs: the watermark image for image specs, a font for text specs.
func NewBuilder(cfg Config) (*Builder, error) {
	b := &Builder{
		spec:     cfg.Spec,
		position: cfg.Position,
		opacity:  clamp(cfg.Opacity, 0, 1),
		margin:   cfg.Margin,
		factors:  cfg.SizeFactors,
	}
	if b.margin <= 0 {
		b.margin = DefaultMargin
	}
	if b.factors == nil {
		b.factors = DefaultSizeFactors()
	}

	if b.spec.IsImage() {
		img, err := imaging.Open(b.spec.ImagePath)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrWatermarkLoad, b.spec.ImagePath, err)
		}
		b.mark = img
	} else {
		b.font = loadFont(cfg.FontPath)
	}
	return b, nil
}

// Build renders the watermark onto a fully transparent layer with the same
// dimensions as the canvas, so compositing is a pure (0,0) blend with no
// crop or paste edge cases.
func (b *Builder) Build(canvasW, canvasH int) (*image.NRGBA, error) {
	if canvasW <= 0 || canvasH <= 0 {
		return nil, fmt.Errorf("invalid canvas dimensions %dx%d", canvasW, canvasH)
	}

	layer := image.NewNRGBA(image.Rect(0, 0, canvasW, canvasH))
	size := b.resolveSize(canvasW, canvasH)

	if b.spec.IsImage() {
		b.drawMarkImage(layer, size)
	} else {
		b.drawText(layer, size)
	}
	return layer, nil
}

// resolveSize returns the target dimension in pixels: the font height for
// text watermarks, the longest edge for image watermarks. Pixel mode ignores
// the canvas; relative mode scales the smaller canvas dimension. The result
// is clamped to [1, min(canvasW, canvasH)] rather than failing.
func (b *Builder) resolveSize(canvasW, canvasH int) int {
	minDim := canvasW
	if canvasH < minDim {
		minDim = canvasH
	}

	var size int
	if b.spec.Mode == types.SizePixel && b.spec.PixelSize > 0 {
		size = b.spec.PixelSize
	} else {
		factor, ok := b.factors[b.spec.Class]
		if !ok {
			factor = DefaultSizeFactors()[types.SizeMedium]
		}
		size = int(float64(minDim) * factor)
	}

	if size < 1 {
		size = 1
	}
	if size > minDim {
		size = minDim
	}
	return size
}

// drawText renders the text watermark at the resolved font height. The
// anchor box is the measured advance width by the resolved height, so
// vertical placement does not depend on per-glyph metrics.
func (b *Builder) drawText(layer *image.NRGBA, size int) {
	face := newFace(b.font, size)
	defer face.Close()

	width := font.MeasureString(face, b.spec.Text).Ceil()
	bounds := layer.Bounds()
	x, y := Offset(b.position, bounds.Dx(), bounds.Dy(), width, size, b.margin)

	col := color.NRGBA{
		R: b.spec.Color.R,
		G: b.spec.Color.G,
		B: b.spec.Color.B,
		A: uint8(math.Round(b.opacity * 255)),
	}
	d := &font.Drawer{
		Dst:  layer,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.P(x, y+face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(b.spec.Text)
}

// drawMarkImage resizes the watermark image so its longest edge matches the
// resolved size, scales its alpha channel by the configured opacity and
// pastes it at the anchor offset.
func (b *Builder) drawMarkImage(layer *image.NRGBA, size int) {
	mb := b.mark.Bounds()
	var resized *image.NRGBA
	if mb.Dx() >= mb.Dy() {
		resized = imaging.Resize(b.mark, size, 0, imaging.Lanczos)
	} else {
		resized = imaging.Resize(b.mark, 0, size, imaging.Lanczos)
	}

	scaleAlpha(resized, b.opacity)

	w, h := resized.Bounds().Dx(), resized.Bounds().Dy()
	bounds := layer.Bounds()
	x, y := Offset(b.position, bounds.Dx(), bounds.Dy(), w, h, b.margin)
	draw.Draw(layer, image.Rect(x, y, x+w, y+h), resized, image.Point{}, draw.Src)
}

// scaleAlpha multiplies every alpha value in place. Pre-existing
// transparency in the watermark is preserved: each pixel keeps its own
// alpha, scaled.
func scaleAlpha(img *image.NRGBA, opacity float64) {
	if opacity >= 1 {
		return
	}
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = uint8(math.Round(float64(img.Pix[i]) * opacity))
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
