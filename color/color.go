// Copyright © 2025 Glint contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: color/color.go
// Summary: Color parsing and interpolation utilities.
// Usage: Shared helpers for hex parsing, RGB conversion and animated blends.

package color

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Interpolate blends a toward b in linear RGB space. t is clamped to
// [0,1]; 0 yields a exactly and 1 yields b exactly.
func Interpolate(t float32, a, b tcell.Color) tcell.Color {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	blended := toColorful(a).BlendRgb(toColorful(b), float64(t))
	r, g, bl := blended.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(bl))
}

func toColorful(c tcell.Color) colorful.Color {
	r, g, b := c.TrueColor().RGB()
	return colorful.Color{
		R: float64(r) / 255.0,
		G: float64(g) / 255.0,
		B: float64(b) / 255.0,
	}
}

// ParseHex parses a "#rrggbb" or "#rgb" color string.
// Returns ColorDefault and false when the string is not a hex color.
func ParseHex(value string) (tcell.Color, bool) {
	if (len(value) != 4 && len(value) != 7) || value[0] != '#' {
		return tcell.ColorDefault, false
	}
	c, err := colorful.Hex(value)
	if err != nil {
		return tcell.ColorDefault, false
	}
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b)), true
}

// FromRGB converts a packed 24-bit RGB value to a tcell color.
// Format: 0xRRGGBB.
func FromRGB(rgb uint32) tcell.Color {
	r := int32((rgb >> 16) & 0xFF)
	g := int32((rgb >> 8) & 0xFF)
	b := int32(rgb & 0xFF)
	return tcell.NewRGBColor(r, g, b)
}
