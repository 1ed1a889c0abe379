package tinydialogs

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// ParseHexColor converts a "#RRGGBB" string into an RGBColor. It is a
// convenience for callers that want to feed a user-supplied hex string
// into the RGB variant of DefaultColor, or to interpret the hex string
// the color chooser returns.
func ParseHexColor(hex string) (RGBColor, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return RGBColor{}, fmt.Errorf("tinydialogs: invalid hex color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return RGBColor{r, g, b}, nil
}

// Hex renders the triple as a "#rrggbb" string.
func (c RGBColor) Hex() string {
	return colorful.Color{
		R: float64(c[0]) / 255.0,
		G: float64(c[1]) / 255.0,
		B: float64(c[2]) / 255.0,
	}.Hex()
}
