// Package compositor alpha-blends watermark layers onto source images.
package compositor

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"

	"github.com/ghostmark/watermarker/pkg/processing"
)

// Result is a composited copy of a source image, tagged with the source's
// original format so the caller writes it with matching encoder settings.
type Result struct {
	Image  *image.NRGBA
	Format string
}

// Composite blends the watermark layer over a working copy of src using the
// standard "over" operator. The source is never mutated. For formats without
// native transparency the result is flattened onto a white background;
// otherwise alpha is preserved.
func Composite(src image.Image, layer *image.NRGBA, format string) *Result {
	out := imaging.Overlay(src, layer, image.Point{}, 1.0)
	if !processing.SupportsAlpha(format) {
		out = flatten(out)
	}
	return &Result{Image: out, Format: format}
}

// flatten composites img onto an opaque white background, discarding alpha
func flatten(img *image.NRGBA) *image.NRGBA {
	b := img.Bounds()
	bg := imaging.New(b.Dx(), b.Dy(), color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	return imaging.Overlay(bg, img, image.Point{}, 1.0)
}
