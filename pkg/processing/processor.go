// Package processing handles image decoding and encoding with format
// preservation: the format detected at load time is threaded back to the
// save step so outputs keep the source encoding.
package processing

import (
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"os"
	"strings"

	"github.com/chai2010/webp"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	// Register the WebP decoder; jpeg/png/gif/bmp/tiff register through the
	// named imports above.
	_ "golang.org/x/image/webp"
)

// ErrDecode marks source files that are not decodable images. Callers skip
// such files and continue the batch.
var ErrDecode = errors.New("undecodable image")

// DefaultJPEGQuality is used when the caller passes an out-of-range quality.
const DefaultJPEGQuality = 90

// Processor loads and saves images
type Processor struct{}

// NewProcessor creates a new image processor
func NewProcessor() *Processor {
	return &Processor{}
}

// Load decodes the image at path and reports the detected format string
// ("jpeg", "png", "webp", ...).
func (p *Processor) Load(path string) (image.Image, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err == nil {
		return img, format, nil
	}

	// Fallback: explicit WebP decode
	if _, serr := f.Seek(0, 0); serr == nil {
		if img, werr := webp.Decode(f); werr == nil {
			return img, "webp", nil
		}
	}
	return nil, "", fmt.Errorf("%w: %s: %v", ErrDecode, path, err)
}

// SupportsAlpha reports whether the encoder for format keeps an alpha
// channel. Formats without one get flattened before encoding.
func SupportsAlpha(format string) bool {
	switch strings.ToLower(format) {
	case "png", "webp", "tiff":
		return true
	}
	return false
}

// Save encodes img to path with the encoder matching format. Unknown
// formats fall back to JPEG.
func (p *Processor) Save(img image.Image, path, format string, quality int, lossless bool) error {
	if quality < 1 || quality > 100 {
		quality = DefaultJPEGQuality
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	switch strings.ToLower(format) {
	case "png":
		err = png.Encode(f, img)
	case "gif":
		err = gif.Encode(f, img, nil)
	case "bmp":
		err = bmp.Encode(f, img)
	case "tiff":
		err = tiff.Encode(f, img, &tiff.Options{Compression: tiff.Deflate})
	case "webp":
		err = webp.Encode(f, img, &webp.Options{Lossless: lossless, Quality: float32(quality)})
	default: // jpg/jpeg
		err = jpeg.Encode(f, img, &jpeg.Options{Quality: quality})
	}
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}
