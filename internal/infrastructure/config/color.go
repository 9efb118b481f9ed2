package config

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// ParseColor parses a "#rrggbb" hex string into an opaque color
func ParseColor(hex string) (color.RGBA, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("failed to parse color %q: %w", hex, err)
	}
	return toRGBA(c), nil
}

// BlendColor mixes a toward b by t in CIE L*a*b*, t in [0, 1]
func BlendColor(a, b color.RGBA, t float64) color.RGBA {
	ca, _ := colorful.MakeColor(a)
	cb, _ := colorful.MakeColor(b)
	return toRGBA(ca.BlendLab(cb, t).Clamped())
}

func toRGBA(c colorful.Color) color.RGBA {
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
