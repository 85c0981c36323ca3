package compositor

import (
	"image"
	"image/color"
	"testing"
)

// createTestImage creates an opaque image with a simple gradient pattern
func createTestImage(width, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(x % 256),
				G: uint8(y % 256),
				B: 128,
				A: 255,
			})
		}
	}
	return img
}

func TestCompositeTransparentLayerIsIdentity(t *testing.T) {
	src := createTestImage(64, 48)
	layer := image.NewNRGBA(image.Rect(0, 0, 64, 48))

	result := Composite(src, layer, "png")

	if result.Format != "png" {
		t.Errorf("Format = %q, want %q", result.Format, "png")
	}
	for y := 0; y < 48; y++ {
		for x := 0; x < 64; x++ {
			if got, want := result.Image.NRGBAAt(x, y), src.NRGBAAt(x, y); got != want {
				t.Fatalf("pixel (%d, %d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestCompositeOpaquePatchReplaces(t *testing.T) {
	src := createTestImage(64, 48)
	layer := image.NewNRGBA(image.Rect(0, 0, 64, 48))
	red := color.NRGBA{R: 255, A: 255}
	for y := 10; y < 20; y++ {
		for x := 10; x < 30; x++ {
			layer.SetNRGBA(x, y, red)
		}
	}

	result := Composite(src, layer, "png")

	if got := result.Image.NRGBAAt(15, 15); got != red {
		t.Errorf("covered pixel = %v, want %v", got, red)
	}
	if got, want := result.Image.NRGBAAt(40, 40), src.NRGBAAt(40, 40); got != want {
		t.Errorf("uncovered pixel = %v, want %v", got, want)
	}
}

func TestCompositeDoesNotMutateSource(t *testing.T) {
	src := createTestImage(16, 16)
	before := src.NRGBAAt(5, 5)

	layer := image.NewNRGBA(image.Rect(0, 0, 16, 16))
	for i := 0; i < len(layer.Pix); i += 4 {
		layer.Pix[i] = 255
		layer.Pix[i+3] = 255
	}
	Composite(src, layer, "png")

	if after := src.NRGBAAt(5, 5); after != before {
		t.Errorf("source mutated: pixel (5,5) was %v, now %v", before, after)
	}
}

func TestCompositeFlattensAlphaLessFormats(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			src.SetNRGBA(x, y, color.NRGBA{R: 50, G: 60, B: 70, A: 128})
		}
	}
	layer := image.NewNRGBA(image.Rect(0, 0, 8, 8))

	jpegResult := Composite(src, layer, "jpeg")
	for i := 3; i < len(jpegResult.Image.Pix); i += 4 {
		if jpegResult.Image.Pix[i] != 255 {
			t.Fatalf("jpeg result alpha = %d, want fully opaque", jpegResult.Image.Pix[i])
		}
	}

	pngResult := Composite(src, layer, "png")
	if a := pngResult.Image.NRGBAAt(4, 4).A; a == 255 {
		t.Error("png result lost its alpha channel")
	}
}
