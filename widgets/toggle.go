package widgets

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/glintui/glint/core"
	"github.com/glintui/glint/theme"
)

// Toggle is a horizontal switch between a fixed set of entries. Arrow keys
// move the selection; clicking an entry selects it directly.
type Toggle struct {
	core.BaseWidget
	Entries  []string
	Selected int
	Style    tcell.Style
	Active   tcell.Style
	OnChange func(selected int)
}

// NewToggle creates a toggle over the given entries, selecting the first.
func NewToggle(x, y int, entries ...string) *Toggle {
	t := &Toggle{Entries: entries}

	tm := theme.Get()
	fg := tm.GetColor("ui", "text_fg", tcell.ColorWhite)
	bg := tm.GetColor("ui", "surface_bg", tcell.ColorBlack)
	t.Style = tcell.StyleDefault.Foreground(fg).Background(bg)
	t.Active = t.Style.Reverse(true)

	t.SetPosition(x, y)
	w := 0
	for i, e := range entries {
		if i > 0 {
			w++
		}
		w += runewidth.StringWidth(e)
	}
	t.Resize(w, 1)
	t.SetFocusable(true)
	return t
}

func (t *Toggle) Draw(p *core.Painter) {
	x := t.Rect.X
	for i, e := range t.Entries {
		if i > 0 {
			p.SetCell(x, t.Rect.Y, ' ', t.Style)
			x++
		}
		style := t.Style
		if i == t.Selected {
			style = t.Active
			if !t.IsFocused() {
				style = t.Style.Bold(true)
			}
		}
		p.DrawText(x, t.Rect.Y, e, style)
		x += runewidth.StringWidth(e)
	}
	t.RecordHit(t.Rect)
}

// HandleKey moves the selection with Left/Right.
func (t *Toggle) HandleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyLeft:
		return t.selectEntry(t.Selected - 1)
	case tcell.KeyRight:
		return t.selectEntry(t.Selected + 1)
	}
	return false
}

// HandleMouse selects the clicked entry on a captured left press.
func (t *Toggle) HandleMouse(ev *tcell.EventMouse) bool {
	x, y := ev.Position()
	if !t.HitTest(x, y) {
		return false
	}
	arb := t.Arbiter()
	if arb == nil || !arb.CaptureMouse(t, ev) {
		return false
	}
	arb.RequestFocus(t)
	if arb.Pressed(tcell.Button1) {
		t.selectEntry(t.entryAt(x))
		return true
	}
	return false
}

// entryAt maps an x coordinate to an entry index, -1 for separators.
func (t *Toggle) entryAt(x int) int {
	cx := t.Rect.X
	for i, e := range t.Entries {
		if i > 0 {
			cx++
		}
		w := runewidth.StringWidth(e)
		if x >= cx && x < cx+w {
			return i
		}
		cx += w
	}
	return -1
}

func (t *Toggle) selectEntry(i int) bool {
	if i < 0 || i >= len(t.Entries) || i == t.Selected {
		return false
	}
	t.Selected = i
	if t.OnChange != nil {
		t.OnChange(i)
	}
	t.Invalidate()
	return true
}
