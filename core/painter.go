package core

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Painter draws into a framebuffer, clipped to a rectangle.
// Widgets receive a Painter in Draw and never write cells directly.
type Painter struct {
	buf  [][]Cell
	clip Rect
}

func NewPainter(buf [][]Cell, clip Rect) *Painter {
	return &Painter{buf: buf, clip: clip}
}

// Clip returns the painter's clip rectangle.
func (p *Painter) Clip() Rect { return p.clip }

// SetCell writes one cell if (x, y) falls inside the clip and the buffer.
func (p *Painter) SetCell(x, y int, ch rune, style tcell.Style) {
	if !p.clip.Contains(x, y) {
		return
	}
	if y < 0 || y >= len(p.buf) {
		return
	}
	row := p.buf[y]
	if x < 0 || x >= len(row) {
		return
	}
	row[x] = Cell{Ch: ch, Style: style}
}

// Fill covers a rectangle with a single rune and style.
func (p *Painter) Fill(r Rect, ch rune, style tcell.Style) {
	area := r.Intersect(p.clip)
	for y := area.Y; y < area.Y+area.H; y++ {
		for x := area.X; x < area.X+area.W; x++ {
			p.SetCell(x, y, ch, style)
		}
	}
}

// DrawText writes a string starting at (x, y), advancing by display width
// so wide runes occupy their full footprint.
func (p *Painter) DrawText(x, y int, text string, style tcell.Style) {
	cx := x
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		p.SetCell(cx, y, r, style)
		// Blank the shadow cell of a wide rune so stale content
		// never shows through.
		for i := 1; i < w; i++ {
			p.SetCell(cx+i, y, ' ', style)
		}
		cx += w
	}
}

// DrawBorder outlines a rectangle using charset {h, v, tl, tr, bl, br}.
// Rectangles smaller than 2x2 are skipped.
func (p *Painter) DrawBorder(r Rect, style tcell.Style, charset [6]rune) {
	if r.W < 2 || r.H < 2 {
		return
	}
	x0, y0 := r.X, r.Y
	x1, y1 := r.X+r.W-1, r.Y+r.H-1
	for x := x0 + 1; x < x1; x++ {
		p.SetCell(x, y0, charset[0], style)
		p.SetCell(x, y1, charset[0], style)
	}
	for y := y0 + 1; y < y1; y++ {
		p.SetCell(x0, y, charset[1], style)
		p.SetCell(x1, y, charset[1], style)
	}
	p.SetCell(x0, y0, charset[2], style)
	p.SetCell(x1, y0, charset[3], style)
	p.SetCell(x0, y1, charset[4], style)
	p.SetCell(x1, y1, charset[5], style)
}

// SingleLineBorder is the default border charset.
var SingleLineBorder = [6]rune{'─', '│', '┌', '┐', '└', '┘'}
