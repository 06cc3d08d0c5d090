package core

import "github.com/gdamore/tcell/v2"

// Widget is the minimal contract for drawable UI elements.
type Widget interface {
	SetPosition(x, y int)
	Position() (int, int)
	Resize(w, h int)
	Size() (int, int)
	Draw(p *Painter)
	Focusable() bool
	Focus()
	Blur()
	HandleKey(ev *tcell.EventKey) bool
	HitTest(x, y int) bool
}

// Arbiter is the focus-and-capture arbitration handle owned by the
// dispatch loop. Widgets receive it through ArbiterAware and call it
// synchronously from their event handlers; no call may block.
type Arbiter interface {
	// RequestFocus makes w the keyboard focus target. Idempotent.
	RequestFocus(w Widget)
	// CaptureMouse requests exclusive ownership of the in-progress
	// pointer gesture. It returns false when another widget already
	// owns the gesture; a denied request has no side effects.
	CaptureMouse(w Widget, ev *tcell.EventMouse) bool
	// Pressed reports whether the event currently being dispatched is
	// a press transition for the given button (down now, up on the
	// previous event).
	Pressed(btn tcell.ButtonMask) bool
}

// MouseAware widgets consume mouse events directly. Handlers hit-test
// against their own recorded region; events outside it must be ignored.
type MouseAware interface {
	HandleMouse(ev *tcell.EventMouse) bool
}

// ArbiterAware widgets accept the arbitration handle when added to a manager.
type ArbiterAware interface {
	SetArbiter(a Arbiter)
}

// InvalidationAware widgets accept an invalidation callback to mark dirty regions.
type InvalidationAware interface {
	SetInvalidator(func(Rect))
}

// ChildContainer allows recursive operations over widget trees without
// depending on concrete widget packages.
type ChildContainer interface {
	VisitChildren(func(Widget))
}

// ZIndexer widgets control their stacking order; higher draws on top.
type ZIndexer interface {
	ZIndex() int
}

// BaseWidget provides common fields and behaviour for widgets.
//
// The hit rectangle is distinct from the layout rectangle: it is recorded
// by Draw and read by HitTest, so a widget that has never been drawn
// contains no point regardless of its layout.
type BaseWidget struct {
	Rect       Rect
	hit        Rect
	focused    bool
	focusable  bool
	arbiter    Arbiter
	invalidate func(Rect)
}

func (b *BaseWidget) SetPosition(x, y int) { b.Rect.X, b.Rect.Y = x, y }
func (b *BaseWidget) Position() (int, int) { return b.Rect.X, b.Rect.Y }
func (b *BaseWidget) Resize(w, h int) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	b.Rect.W, b.Rect.H = w, h
}
func (b *BaseWidget) Size() (int, int)    { return b.Rect.W, b.Rect.H }
func (b *BaseWidget) Focusable() bool     { return b.focusable }
func (b *BaseWidget) SetFocusable(f bool) { b.focusable = f }
func (b *BaseWidget) Focus() {
	if b.focusable {
		b.focused = true
	}
}
func (b *BaseWidget) Blur()                             { b.focused = false }
func (b *BaseWidget) IsFocused() bool                   { return b.focused }
func (b *BaseWidget) HandleKey(ev *tcell.EventKey) bool { return false }

// HitTest checks against the last drawn extent, not the layout rect.
func (b *BaseWidget) HitTest(x, y int) bool { return b.hit.Contains(x, y) }

// RecordHit stores the rectangle the widget occupied during Draw.
func (b *BaseWidget) RecordHit(r Rect) { b.hit = r }

// HitRect returns the last recorded hit rectangle.
func (b *BaseWidget) HitRect() Rect { return b.hit }

func (b *BaseWidget) SetArbiter(a Arbiter) { b.arbiter = a }

// Arbiter returns the arbitration handle, nil before the widget is added
// to a manager.
func (b *BaseWidget) Arbiter() Arbiter { return b.arbiter }

func (b *BaseWidget) SetInvalidator(fn func(Rect)) { b.invalidate = fn }

// Invalidate marks the widget's drawn region dirty, if an invalidator is wired.
func (b *BaseWidget) Invalidate() {
	if b.invalidate != nil && !b.hit.Empty() {
		b.invalidate(b.hit)
	}
}
