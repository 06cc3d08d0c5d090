package widgets

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/glintui/glint/core"
	"github.com/glintui/glint/theme"
)

// Checkbox is a toggleable widget displayed as "[X] Label" or "[ ] Label",
// with a "> " cursor while focused.
type Checkbox struct {
	core.BaseWidget
	Label    string
	Checked  bool
	Style    tcell.Style
	Focused  tcell.Style
	OnChange func(checked bool)
}

// NewCheckbox creates a checkbox sized to its label.
func NewCheckbox(x, y int, label string) *Checkbox {
	c := &Checkbox{Label: label}

	tm := theme.Get()
	fg := tm.GetColor("ui", "text_fg", tcell.ColorWhite)
	bg := tm.GetColor("ui", "surface_bg", tcell.ColorBlack)
	focusFg := tm.GetColor("ui", "focus_text_fg", tcell.ColorSilver)
	c.Style = tcell.StyleDefault.Foreground(fg).Background(bg)
	c.Focused = tcell.StyleDefault.Foreground(focusFg).Background(bg)

	c.SetPosition(x, y)
	// "> [X] " prefix plus label
	c.Resize(6+runewidth.StringWidth(label), 1)
	c.SetFocusable(true)
	return c
}

func (c *Checkbox) Draw(painter *core.Painter) {
	style := c.Style
	cursor := "  "
	if c.IsFocused() {
		style = c.Focused
		cursor = "> "
	}
	check := "[ ] "
	if c.Checked {
		check = "[X] "
	}
	painter.Fill(core.Rect{X: c.Rect.X, Y: c.Rect.Y, W: c.Rect.W, H: 1}, ' ', style)
	painter.DrawText(c.Rect.X, c.Rect.Y, cursor+check+c.Label, style)
	c.RecordHit(c.Rect)
}

// HandleKey toggles on Space or Enter.
func (c *Checkbox) HandleKey(ev *tcell.EventKey) bool {
	if ev.Rune() == ' ' || ev.Key() == tcell.KeyEnter {
		c.toggle()
		return true
	}
	return false
}

// HandleMouse toggles on a captured left press inside the drawn extent.
func (c *Checkbox) HandleMouse(ev *tcell.EventMouse) bool {
	x, y := ev.Position()
	if !c.HitTest(x, y) {
		return false
	}
	arb := c.Arbiter()
	if arb == nil || !arb.CaptureMouse(c, ev) {
		return false
	}
	arb.RequestFocus(c)
	if arb.Pressed(tcell.Button1) {
		c.toggle()
		return true
	}
	return false
}

func (c *Checkbox) toggle() {
	c.Checked = !c.Checked
	if c.OnChange != nil {
		c.OnChange(c.Checked)
	}
	c.Invalidate()
}
