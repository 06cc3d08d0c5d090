package widgets

import (
	"github.com/gdamore/tcell/v2"

	"github.com/glintui/glint/core"
)

// Border draws a frame around its Rect and can optionally host a child
// rendered inside the client area.
type Border struct {
	core.BaseWidget
	Style   tcell.Style
	Charset [6]rune
	Child   core.Widget
}

func NewBorder(x, y, w, h int, style tcell.Style) *Border {
	b := &Border{Style: style, Charset: core.SingleLineBorder}
	b.SetPosition(x, y)
	b.Resize(w, h)
	return b
}

func (b *Border) ClientRect() core.Rect {
	r := b.Rect
	if r.W < 2 || r.H < 2 {
		return core.Rect{X: r.X, Y: r.Y}
	}
	return core.Rect{X: r.X + 1, Y: r.Y + 1, W: r.W - 2, H: r.H - 2}
}

func (b *Border) SetChild(w core.Widget) {
	b.Child = w
	b.layoutChild()
}

func (b *Border) Resize(w, h int) {
	b.BaseWidget.Resize(w, h)
	b.layoutChild()
}

func (b *Border) layoutChild() {
	if b.Child == nil {
		return
	}
	cr := b.ClientRect()
	b.Child.SetPosition(cr.X, cr.Y)
	b.Child.Resize(cr.W, cr.H)
}

func (b *Border) Draw(p *core.Painter) {
	p.DrawBorder(b.Rect, b.Style, b.Charset)
	b.RecordHit(b.Rect)
	if b.Child != nil {
		b.Child.Draw(p)
	}
}

// VisitChildren lets the manager propagate handles and route events into
// the hosted child.
func (b *Border) VisitChildren(fn func(core.Widget)) {
	if b.Child != nil {
		fn(b.Child)
	}
}
