package overlay

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ghostmark/watermarker/pkg/types"
)

// ErrInvalidColor marks a color value that is neither a known name nor a
// #RGB/#RRGGBB hex code.
var ErrInvalidColor = errors.New("invalid color")

// namedColors maps common color names to RGB values
var namedColors = map[string]types.RGB{
	"white":   {R: 255, G: 255, B: 255},
	"black":   {R: 0, G: 0, B: 0},
	"red":     {R: 255, G: 0, B: 0},
	"green":   {R: 0, G: 255, B: 0},
	"blue":    {R: 0, G: 0, B: 255},
	"yellow":  {R: 255, G: 255, B: 0},
	"cyan":    {R: 0, G: 255, B: 255},
	"magenta": {R: 255, G: 0, B: 255},
	"gray":    {R: 128, G: 128, B: 128},
	"orange":  {R: 255, G: 165, B: 0},
	"purple":  {R: 128, G: 0, B: 128},
	"pink":    {R: 255, G: 192, B: 203},
}

// ResolveColor parses a color name (e.g. "red") or hex code (#RGB or
// #RRGGBB) into an RGB triple. The short hex form expands each digit by
// duplication, so #F00 is equivalent to #FF0000.
func ResolveColor(value string) (types.RGB, error) {
	v := strings.ToLower(strings.TrimSpace(value))

	if c, ok := namedColors[v]; ok {
		return c, nil
	}

	if strings.HasPrefix(v, "#") {
		switch len(v) {
		case 4:
			r, okR := hexByte(string([]byte{v[1], v[1]}))
			g, okG := hexByte(string([]byte{v[2], v[2]}))
			b, okB := hexByte(string([]byte{v[3], v[3]}))
			if okR && okG && okB {
				return types.RGB{R: r, G: g, B: b}, nil
			}
		case 7:
			r, okR := hexByte(v[1:3])
			g, okG := hexByte(v[3:5])
			b, okB := hexByte(v[5:7])
			if okR && okG && okB {
				return types.RGB{R: r, G: g, B: b}, nil
			}
		}
	}

	return types.RGB{}, fmt.Errorf("%w: %q is not a color name or #RGB/#RRGGBB code", ErrInvalidColor, value)
}

func hexByte(s string) (uint8, bool) {
	n, err := strconv.ParseUint(s, 16, 8)
	if err != nil {
		return 0, false
	}
	return uint8(n), true
}
