package css

import (
	"image/color"
	"strconv"
	"strings"
)

// Style is a resolved set of properties. LeftPct and TopPct are -1 when the position is in pixels.
type Style struct {
	Background color.RGBA
	Color      color.RGBA
	Border     color.RGBA
	HasBorder  bool
	Width      int32
	Height     int32
	Left       int32
	Top        int32
	LeftPct    int32
	TopPct     int32
	Padding    int32
	Gap        int32
	FontSize   int32
	Radius     float32
}

// DefaultStyle is transparent with white 20px text and 4px padding.
func DefaultStyle() Style {
	return Style{
		Color:    color.RGBA{255, 255, 255, 255},
		LeftPct:  -1,
		TopPct:   -1,
		Padding:  4,
		FontSize: 20,
	}
}

// Resolve converts raw declarations into a Style. Invalid values are ignored.
func Resolve(props map[string]string) Style {
	out := DefaultStyle()
	for k, v := range props {
		switch k {
		case "background", "background-color":
			if c, ok := ParseColor(v); ok {
				out.Background = c
			}
		case "color":
			if c, ok := ParseColor(v); ok {
				out.Color = c
			}
		case "border", "border-color":
			if c, ok := ParseColor(v); ok {
				out.Border = c
				out.HasBorder = true
			}
		case "width":
			setPx(&out.Width, v)
		case "height":
			setPx(&out.Height, v)
		case "left":
			if p, ok := ParsePct(v); ok {
				out.LeftPct = p
			} else {
				setPx(&out.Left, v)
			}
		case "top":
			if p, ok := ParsePct(v); ok {
				out.TopPct = p
			} else {
				setPx(&out.Top, v)
			}
		case "padding":
			setPx(&out.Padding, v)
		case "gap":
			setPx(&out.Gap, v)
		case "font-size":
			setPx(&out.FontSize, v)
		case "border-radius":
			if n, ok := ParsePx(v); ok {
				out.Radius = float32(n)
			}
		}
	}
	return out
}

func setPx(dst *int32, v string) {
	if n, ok := ParsePx(v); ok && n >= 0 {
		*dst = n
	}
}

// ParseColor accepts #rgb, #rrggbb and #rrggbbaa.
func ParseColor(s string) (color.RGBA, bool) {
	hex, ok := strings.CutPrefix(strings.TrimSpace(s), "#")
	if !ok {
		return color.RGBA{}, false
	}
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return color.RGBA{}, false
	}
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, false
	}
	return color.RGBA{R: uint8(n >> 24), G: uint8(n >> 16), B: uint8(n >> 8), A: uint8(n)}, true
}

// ParsePx parses an integer with an optional "px" suffix.
func ParsePx(s string) (int32, bool) {
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "px"))
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, false
	}
	return int32(n), true
}

// ParsePct parses "N%" with N in [0, 100].
func ParsePct(s string) (int32, bool) {
	num, ok := strings.CutSuffix(strings.TrimSpace(s), "%")
	if !ok {
		return 0, false
	}
	n, err := strconv.ParseInt(num, 10, 32)
	if err != nil || n < 0 || n > 100 {
		return 0, false
	}
	return int32(n), true
}
