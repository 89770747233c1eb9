package wuikit

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a 24 bit color in BGR form, the layout of a Win32 COLORREF. The
// alpha channel is always 0 and has no relevance.
type Color uint32

// R returns the red intensity in the Color, 0 means no red, 255 means full red.
func (c Color) R() uint8 { return uint8(c & 0xFF) }

// G returns the green intensity in the Color, 0 means no green, 255 means full
// green.
func (c Color) G() uint8 { return uint8((c & 0xFF00) >> 8) }

// B returns the blue intensity in the Color, 0 means no blue, 255 means full
// blue.
func (c Color) B() uint8 { return uint8((c & 0xFF0000) >> 16) }

// RGB creates a new Color with the given intensities. r,g,b means red, green,
// blue. Value 0 is dark, 255 is full intensity.
func RGB(r, g, b uint8) Color {
	return Color(r) + Color(g)<<8 + Color(b)<<16
}

// RGBA makes Color an image/color.Color, it is always fully opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: c.R(), G: c.G(), B: c.B(), A: 255}.RGBA()
}

// Hex formats the color as #rrggbb.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R(), c.G(), c.B())
}

// ParseColor reads a color in hex notation, either #rrggbb or the short #rgb.
func ParseColor(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return 0, fmt.Errorf("wuikit.ParseColor: %w", err)
	}
	r, g, b := c.RGB255()
	return RGB(r, g, b), nil
}

// ColorOf converts any image/color.Color, dropping the alpha channel.
func ColorOf(c color.Color) Color {
	cf, _ := colorful.MakeColor(c)
	r, g, b := cf.Clamped().RGB255()
	return RGB(r, g, b)
}
