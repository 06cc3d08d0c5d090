package widgets

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/glintui/glint/core"
	"github.com/glintui/glint/theme"
)

// ButtonOptions configures a Button. Options are fixed at construction.
type ButtonOptions struct {
	// Border draws a single-line frame around the label.
	Border bool
	// Style is the normal appearance; FocusedStyle replaces it while the
	// button owns keyboard focus.
	Style        tcell.Style
	FocusedStyle tcell.Style
}

// DefaultButtonOptions returns the theme-derived options: bordered, with
// reverse video when focused.
func DefaultButtonOptions() ButtonOptions {
	tm := theme.Get()
	fg := tm.GetColor("ui", "text_fg", tcell.ColorWhite)
	bg := tm.GetColor("ui", "surface_bg", tcell.ColorBlack)
	style := tcell.StyleDefault.Foreground(fg).Background(bg)
	return ButtonOptions{
		Border:       true,
		Style:        style,
		FocusedStyle: style.Reverse(true),
	}
}

// Button invokes a callback when clicked or confirmed with Enter.
//
// Mouse handling follows pointer-button convention: a press must land
// inside the drawn extent and win the gesture capture before the callback
// fires, so a drag that started elsewhere can never activate the button.
type Button struct {
	core.BaseWidget
	Label   string
	OnClick func()
	opts    ButtonOptions
}

// NewButton creates a button sized to its label.
func NewButton(x, y int, label string, onClick func()) *Button {
	return NewButtonWith(x, y, label, onClick, DefaultButtonOptions())
}

// NewButtonWith creates a button with explicit options.
func NewButtonWith(x, y int, label string, onClick func(), opts ButtonOptions) *Button {
	b := &Button{Label: label, OnClick: onClick, opts: opts}
	b.SetPosition(x, y)
	w := runewidth.StringWidth(label)
	h := 1
	if opts.Border {
		w += 2
		h = 3
	}
	b.Resize(w, h)
	b.SetFocusable(true)
	return b
}

// Draw renders the button and records its drawn extent for hit testing.
func (b *Button) Draw(p *core.Painter) {
	style := b.opts.Style
	if b.IsFocused() {
		style = b.opts.FocusedStyle
	}
	r := b.Rect
	p.Fill(r, ' ', style)
	lx, ly := r.X, r.Y
	if b.opts.Border {
		p.DrawBorder(r, style, core.SingleLineBorder)
		lx, ly = r.X+1, r.Y+1
	}
	p.DrawText(lx, ly, b.Label, style)
	b.RecordHit(r)
}

// HandleKey activates on Enter. The manager routes keys here only while
// the button is focused.
func (b *Button) HandleKey(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyEnter {
		b.activate()
		return true
	}
	return false
}

// HandleMouse implements the capture-then-activate protocol: any pointer
// event inside the drawn extent claims the gesture and focus, but only a
// left-button press transition activates.
func (b *Button) HandleMouse(ev *tcell.EventMouse) bool {
	x, y := ev.Position()
	if !b.HitTest(x, y) {
		return false
	}
	arb := b.Arbiter()
	if arb == nil || !arb.CaptureMouse(b, ev) {
		return false
	}
	arb.RequestFocus(b)
	if arb.Pressed(tcell.Button1) {
		b.activate()
		return true
	}
	return false
}

func (b *Button) activate() {
	if b.OnClick != nil {
		b.OnClick()
	}
	b.Invalidate()
}
