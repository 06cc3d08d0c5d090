package widgets_test

import (
	"github.com/gdamore/tcell/v2"

	"github.com/glintui/glint/core"
)

// stubArbiter stands in for the UIManager's arbitration slots so widget
// behavior can be tested in isolation.
type stubArbiter struct {
	denyCapture bool
	press       tcell.ButtonMask
	captured    core.Widget
	focused     core.Widget
}

func (a *stubArbiter) RequestFocus(w core.Widget) {
	if a.focused == w {
		return
	}
	if a.focused != nil {
		a.focused.Blur()
	}
	a.focused = w
	w.Focus()
}

func (a *stubArbiter) CaptureMouse(w core.Widget, ev *tcell.EventMouse) bool {
	if a.denyCapture {
		return false
	}
	a.captured = w
	return true
}

func (a *stubArbiter) Pressed(btn tcell.ButtonMask) bool {
	return a.press&btn != 0
}

// newFrame allocates a blank framebuffer and a painter over all of it.
func newFrame(w, h int) ([][]core.Cell, *core.Painter) {
	buf := make([][]core.Cell, h)
	for y := range buf {
		buf[y] = make([]core.Cell, w)
		for x := range buf[y] {
			buf[y][x] = core.Cell{Ch: ' ', Style: tcell.StyleDefault}
		}
	}
	return buf, core.NewPainter(buf, core.Rect{W: w, H: h})
}

func framesEqual(a, b [][]core.Cell) bool {
	if len(a) != len(b) {
		return false
	}
	for y := range a {
		if len(a[y]) != len(b[y]) {
			return false
		}
		for x := range a[y] {
			if a[y][x] != b[y][x] {
				return false
			}
		}
	}
	return true
}

func leftPress(x, y int) *tcell.EventMouse {
	return tcell.NewEventMouse(x, y, tcell.Button1, 0)
}
