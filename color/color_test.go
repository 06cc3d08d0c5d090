// Copyright © 2025 Glint contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: color/color_test.go
// Summary: Tests for color parsing and interpolation.

package color

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestInterpolateEndpointsExact(t *testing.T) {
	a := tcell.NewRGBColor(0x10, 0x20, 0x30)
	b := tcell.NewRGBColor(0xff, 0xee, 0xdd)
	if got := Interpolate(0, a, b); got != a {
		t.Fatalf("t=0 should yield the first color, got %v", got)
	}
	if got := Interpolate(1, a, b); got != b {
		t.Fatalf("t=1 should yield the second color, got %v", got)
	}
	if got := Interpolate(-3, a, b); got != a {
		t.Fatalf("t<0 should clamp to the first color, got %v", got)
	}
	if got := Interpolate(7, a, b); got != b {
		t.Fatalf("t>1 should clamp to the second color, got %v", got)
	}
}

func TestInterpolateMidpoint(t *testing.T) {
	a := tcell.NewRGBColor(0, 0, 0)
	b := tcell.NewRGBColor(200, 100, 50)
	mid := Interpolate(0.5, a, b)
	r, g, bl := mid.RGB()
	if r != 100 || g != 50 || bl != 25 {
		t.Fatalf("unexpected midpoint %d,%d,%d", r, g, bl)
	}
}

func TestInterpolateNamedColors(t *testing.T) {
	// Named colors must be blended by their RGB values, not their indices.
	mid := Interpolate(0.5, tcell.ColorBlack, tcell.ColorWhite)
	r, g, b := mid.RGB()
	if r != g || g != b {
		t.Fatalf("black/white midpoint should be gray, got %d,%d,%d", r, g, b)
	}
	if r == 0 || r == 255 {
		t.Fatalf("midpoint should sit between the endpoints, got %d", r)
	}
}

func TestParseHex(t *testing.T) {
	c, ok := ParseHex("#ff5733")
	if !ok {
		t.Fatal("expected valid hex to parse")
	}
	r, g, b := c.RGB()
	if r != 0xff || g != 0x57 || b != 0x33 {
		t.Fatalf("unexpected rgb %x,%x,%x", r, g, b)
	}
	for _, bad := range []string{"", "ff5733", "#zzxxyy", "#12345"} {
		if _, ok := ParseHex(bad); ok {
			t.Fatalf("%q should not parse", bad)
		}
	}
}

func TestFromRGB(t *testing.T) {
	c := FromRGB(0x102030)
	r, g, b := c.RGB()
	if r != 0x10 || g != 0x20 || b != 0x30 {
		t.Fatalf("unexpected rgb %x,%x,%x", r, g, b)
	}
}
