package scene

import (
	"fmt"
	"image/color"
)

// Hex converts a 0xRRGGBB value to an opaque color. Bits above 24 are ignored.
func Hex(v uint32) color.RGBA {
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}
}

// HexString formats c as "#rrggbb".
func HexString(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
