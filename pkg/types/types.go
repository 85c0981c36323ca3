package types

// RGB represents a text watermark color with 8-bit channels
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// SizeMode selects between relative and fixed-pixel watermark sizing
type SizeMode int

const (
	// SizeRelative scales the watermark against the smaller canvas dimension
	SizeRelative SizeMode = iota
	// SizePixel uses a literal pixel value regardless of canvas size
	SizePixel
)

// SizeClass is a named relative size bucket
type SizeClass string

const (
	SizeSmall  SizeClass = "small"
	SizeMedium SizeClass = "medium"
	SizeLarge  SizeClass = "large"
)

// ValidSizeClass reports whether s is one of the known size buckets
func ValidSizeClass(s SizeClass) bool {
	switch s {
	case SizeSmall, SizeMedium, SizeLarge:
		return true
	}
	return false
}

// WatermarkSpec describes what gets rendered: either a text watermark
// (Text non-empty) or an image watermark (ImagePath non-empty). The spec is
// built once per run and shared read-only across every processed file.
type WatermarkSpec struct {
	Text  string
	Color RGB

	ImagePath string

	Mode      SizeMode
	PixelSize int
	Class     SizeClass
}

// IsImage reports whether the spec describes an image watermark
func (s WatermarkSpec) IsImage() bool {
	return s.ImagePath != ""
}

// Position is one of the nine named anchor points for watermark placement
type Position string

const (
	TopLeft      Position = "top-left"
	TopCenter    Position = "top-center"
	TopRight     Position = "top-right"
	CenterLeft   Position = "center-left"
	Center       Position = "center"
	CenterRight  Position = "center-right"
	BottomLeft   Position = "bottom-left"
	BottomCenter Position = "bottom-center"
	BottomRight  Position = "bottom-right"
)

// Positions lists all nine anchors in reading order
func Positions() []Position {
	return []Position{
		TopLeft, TopCenter, TopRight,
		CenterLeft, Center, CenterRight,
		BottomLeft, BottomCenter, BottomRight,
	}
}

// ParsePosition maps a position name to its anchor, defaulting unknown
// names to BottomRight
func ParsePosition(name string) Position {
	p := Position(name)
	for _, known := range Positions() {
		if p == known {
			return p
		}
	}
	return BottomRight
}

// Summary reports the outcome of a batch run
type Summary struct {
	Processed int `json:"processed"`
	Skipped   int `json:"skipped"`
}
