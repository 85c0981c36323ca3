package overlay

import (
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// systemFonts lists preferred platform font files, probed in order.
var systemFonts = []string{
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/truetype/liberation/LiberationSans-Regular.ttf",
	"/System/Library/Fonts/Supplemental/Arial.ttf",
	`C:\Windows\Fonts\arial.ttf`,
}

// loadFont returns the font at path if given and readable, otherwise the
// first readable system font, otherwise the bundled Go Regular face. A nil
// return means every scalable option failed and callers should fall back to
// the built-in bitmap face.
func loadFont(path string) *sfnt.Font {
	if path != "" {
		if f := parseFontFile(path); f != nil {
			return f
		}
	}
	for _, p := range systemFonts {
		if f := parseFontFile(p); f != nil {
			return f
		}
	}
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil
	}
	return f
}

func parseFontFile(path string) *sfnt.Font {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil
	}
	return f
}

// newFace sizes the font to the given pixel height. If no scalable font is
// available the fixed 7x13 bitmap face is returned.
func newFace(f *sfnt.Font, size int) font.Face {
	if f != nil {
		face, err := opentype.NewFace(f, &opentype.FaceOptions{
			Size:    float64(size),
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err == nil {
			return face
		}
	}
	return basicfont.Face7x13
}
