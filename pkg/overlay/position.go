package overlay

import "github.com/ghostmark/watermarker/pkg/types"

// DefaultMargin is the distance in pixels kept between the watermark and the
// canvas edges for non-center anchors.
const DefaultMargin = 10

// anchorFactors maps each position to horizontal and vertical placement
// factors: 0 = leading edge, 0.5 = centered, 1 = trailing edge.
var anchorFactors = map[types.Position][2]float64{
	types.TopLeft:      {0, 0},
	types.TopCenter:    {0.5, 0},
	types.TopRight:     {1, 0},
	types.CenterLeft:   {0, 0.5},
	types.Center:       {0.5, 0.5},
	types.CenterRight:  {1, 0.5},
	types.BottomLeft:   {0, 1},
	types.BottomCenter: {0.5, 1},
	types.BottomRight:  {1, 1},
}

// Offset computes the top-left pixel position of a w x h watermark box on a
// canvasW x canvasH canvas. Edge anchors keep margin pixels from the canvas
// border on that axis; centered axes ignore the margin. The result is
// clamped so the box never starts outside the canvas.
func Offset(pos types.Position, canvasW, canvasH, w, h, margin int) (int, int) {
	f, ok := anchorFactors[pos]
	if !ok {
		f = anchorFactors[types.BottomRight]
	}

	x := int(float64(canvasW-w) * f[0])
	y := int(float64(canvasH-h) * f[1])

	switch f[0] {
	case 0:
		x = margin
	case 1:
		x = canvasW - w - margin
	}
	switch f[1] {
	case 0:
		y = margin
	case 1:
		y = canvasH - h - margin
	}

	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	return x, y
}
