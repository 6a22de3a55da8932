package chord

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB is an opaque item colour.
type RGB struct {
	R, G, B uint8
}

// Common colours.
var (
	Black   = RGB{0, 0, 0}
	White   = RGB{255, 255, 255}
	Red     = RGB{255, 0, 0}
	Green   = RGB{0, 255, 0}
	Blue    = RGB{0, 0, 255}
	Yellow  = RGB{255, 255, 0}
	Magenta = RGB{255, 0, 255}
)

// ParseRGB parses a "#rrggbb" colour.
func ParseRGB(s string) (RGB, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid colour %q: %w", s, err)
	}
	return fromColorful(c), nil
}

// Hex formats the colour as "#rrggbb".
func (c RGB) Hex() string {
	return c.colorful().Hex()
}

// RGBA converts to the standard library colour type.
func (c RGB) RGBA() color.RGBA {
	return color.RGBA{c.R, c.G, c.B, 255}
}

// Blend linearly interpolates between a and b: (1-t)*a + t*b per channel,
// clamped to the valid range.
func Blend(a, b RGB, t float64) RGB {
	return fromColorful(a.colorful().BlendRgb(b.colorful(), t).Clamped())
}

func (c RGB) colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

func fromColorful(c colorful.Color) RGB {
	r, g, b := c.RGB255()
	return RGB{r, g, b}
}
