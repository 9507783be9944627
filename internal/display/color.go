package display

import "fmt"

// Color is a 24-bit pixel color.
type Color struct {
	R, G, B uint8
}

// Colors used by the panel.
//
//nolint:gochecknoglobals // Palette.
var (
	Black   = Color{}
	Green   = Color{G: 0xff}
	Magenta = Color{R: 0xff, B: 0xff}
)

// RGB565 packs the color into the 16-bit layout of the Sense HAT framebuffer.
func (c Color) RGB565() uint16 {
	return uint16(c.R>>3)<<11 | uint16(c.G>>2)<<5 | uint16(c.B>>3)
}

// Hex returns the color as #rrggbb.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
