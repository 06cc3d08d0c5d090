package core

import (
	"sort"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/glintui/glint/anim"
	"github.com/glintui/glint/theme"
)

const wheelButtons = tcell.WheelUp | tcell.WheelDown | tcell.WheelLeft | tcell.WheelRight

// UIManager owns a widget list and composes it to a framebuffer. It is the
// single arbitration point for keyboard focus and mouse capture: widgets
// request both through the Arbiter interface during event dispatch.
//
// All entry points (HandleKey, HandleMouse, OnFrame, Render) are serialized
// by an internal mutex. Arbiter methods are invoked re-entrantly by widgets
// while an entry point holds that mutex, so they take no lock themselves
// and must not be called outside event dispatch.
type UIManager struct {
	mu      sync.Mutex // protects widgets, focus, capture, buffer
	dirtyMu sync.Mutex // protects dirty list and notifier
	W, H    int
	widgets []Widget // z-ordered: later entries draw on top
	bgStyle tcell.Style

	focused      Widget
	capture      Widget
	focusChanged bool
	prevButtons  tcell.ButtonMask
	pressEdge    tcell.ButtonMask

	buf      [][]Cell
	dirty    []Rect
	notifier chan<- bool
}

func NewUIManager() *UIManager {
	tm := theme.Get()
	bg := tm.GetColor("ui", "surface_bg", tcell.ColorBlack)
	fg := tm.GetColor("ui", "surface_fg", tcell.ColorWhite)
	return &UIManager{
		bgStyle: tcell.StyleDefault.Background(bg).Foreground(fg),
	}
}

func (u *UIManager) SetRefreshNotifier(ch chan<- bool) {
	u.dirtyMu.Lock()
	defer u.dirtyMu.Unlock()
	u.notifier = ch
}

func (u *UIManager) Resize(w, h int) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	u.W, u.H = w, h
	u.buf = nil
	u.InvalidateAll()
}

func (u *UIManager) AddWidget(w Widget) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.widgets = append(u.widgets, w)
	u.propagateHandles(w)
	u.InvalidateAll()
}

func (u *UIManager) propagateHandles(w Widget) {
	if aw, ok := w.(ArbiterAware); ok {
		aw.SetArbiter(u)
	}
	if ia, ok := w.(InvalidationAware); ok {
		ia.SetInvalidator(u.Invalidate)
	}
	if cc, ok := w.(ChildContainer); ok {
		cc.VisitChildren(func(child Widget) { u.propagateHandles(child) })
	}
}

// Focus sets the keyboard focus target from outside event dispatch
// (initial setup, programmatic focus changes).
func (u *UIManager) Focus(w Widget) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.focusLocked(w)
}

// Focused returns the current keyboard focus target.
func (u *UIManager) Focused() Widget {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.focused
}

// RequestFocus implements Arbiter. Dispatch context only.
func (u *UIManager) RequestFocus(w Widget) { u.focusLocked(w) }

// CaptureMouse implements Arbiter. The first widget to ask during a
// gesture owns it until all buttons are released; re-requests by the
// owner succeed, everyone else is denied.
func (u *UIManager) CaptureMouse(w Widget, ev *tcell.EventMouse) bool {
	if u.capture == nil {
		u.capture = w
		return true
	}
	return u.capture == w
}

// Pressed implements Arbiter.
func (u *UIManager) Pressed(btn tcell.ButtonMask) bool {
	return u.pressEdge&btn != 0
}

func (u *UIManager) focusLocked(w Widget) {
	if w == nil || !w.Focusable() {
		return
	}
	if u.focused == w {
		return
	}
	if u.focused != nil {
		u.focused.Blur()
	}
	u.focused = w
	u.focused.Focus()
	u.focusChanged = true
}

// HandleKey routes a key event to the focused widget, falling back to
// Tab/Backtab focus traversal.
func (u *UIManager) HandleKey(ev *tcell.EventKey) bool {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.focused != nil && u.focused.HandleKey(ev) {
		u.InvalidateAll()
		return true
	}

	if ev.Key() == tcell.KeyTab || ev.Key() == tcell.KeyBacktab {
		forward := ev.Key() == tcell.KeyTab && ev.Modifiers()&tcell.ModShift == 0
		if u.cycleFocusLocked(forward) {
			u.InvalidateAll()
			return true
		}
	}
	return false
}

// cycleFocusLocked moves focus to the next (or previous) focusable widget
// in tree order, wrapping around.
func (u *UIManager) cycleFocusLocked(forward bool) bool {
	var focusables []Widget
	var collect func(w Widget)
	collect = func(w Widget) {
		if w.Focusable() {
			focusables = append(focusables, w)
		}
		if cc, ok := w.(ChildContainer); ok {
			cc.VisitChildren(collect)
		}
	}
	for _, w := range u.widgets {
		collect(w)
	}
	if len(focusables) == 0 {
		return false
	}

	idx := -1
	for i, w := range focusables {
		if w == u.focused {
			idx = i
			break
		}
	}
	step := 1
	if !forward {
		step = -1
		if idx == -1 {
			idx = 0
		}
	}
	next := (idx + step + len(focusables)) % len(focusables)
	u.focusLocked(focusables[next])
	return true
}

// HandleMouse offers a mouse event to widgets. While a gesture is
// captured, only the capturing widget sees events; otherwise widgets are
// offered the event topmost-first and hit-test it themselves. Capture is
// released when every button is up.
func (u *UIManager) HandleMouse(ev *tcell.EventMouse) bool {
	u.mu.Lock()
	defer u.mu.Unlock()

	buttons := ev.Buttons() &^ wheelButtons
	u.pressEdge = buttons &^ u.prevButtons
	u.prevButtons = buttons
	u.focusChanged = false

	consumed := false
	if u.capture != nil {
		if mw, ok := u.capture.(MouseAware); ok {
			consumed = mw.HandleMouse(ev)
		}
	} else {
		sorted := u.sortedWidgetsLocked()
		for i := len(sorted) - 1; i >= 0 && !consumed; i-- {
			consumed = offerMouse(sorted[i], ev)
			// A widget may take the gesture without consuming the
			// event (e.g. a non-activating press); stop offering
			// so siblings cannot double-handle it.
			if u.capture != nil {
				break
			}
		}
	}

	if buttons == 0 {
		u.capture = nil
	}
	if consumed || u.focusChanged {
		u.InvalidateAll()
	}
	return consumed
}

// offerMouse walks a widget subtree deepest-first and offers the event to
// every MouseAware widget until one consumes it.
func offerMouse(w Widget, ev *tcell.EventMouse) bool {
	if cc, ok := w.(ChildContainer); ok {
		consumed := false
		cc.VisitChildren(func(child Widget) {
			if !consumed {
				consumed = offerMouse(child, ev)
			}
		})
		if consumed {
			return true
		}
	}
	if mw, ok := w.(MouseAware); ok {
		return mw.HandleMouse(ev)
	}
	return false
}

// OnFrame delivers one animation tick to every Animatable widget and
// reports whether any animation is still running.
func (u *UIManager) OnFrame(p *anim.Params) bool {
	u.mu.Lock()
	defer u.mu.Unlock()

	stepped := false
	active := false
	var walk func(w Widget)
	walk = func(w Widget) {
		if a, ok := w.(anim.Animatable); ok {
			if isAnimating(w) {
				stepped = true
			}
			a.OnFrame(p)
			if isAnimating(w) {
				active = true
			}
		}
		if cc, ok := w.(ChildContainer); ok {
			cc.VisitChildren(walk)
		}
	}
	for _, w := range u.widgets {
		walk(w)
	}
	if stepped {
		u.InvalidateAll()
	}
	return active
}

type animating interface {
	Animating() bool
}

func isAnimating(w Widget) bool {
	if a, ok := w.(animating); ok {
		return a.Animating()
	}
	return false
}

// Invalidate marks a region for redraw. Thread-safe.
func (u *UIManager) Invalidate(r Rect) {
	u.dirtyMu.Lock()
	defer u.dirtyMu.Unlock()
	if r.Empty() {
		return
	}
	u.dirty = append(u.dirty, r)
	u.requestRefreshLocked()
}

// InvalidateAll marks the whole surface for redraw.
func (u *UIManager) InvalidateAll() {
	u.dirtyMu.Lock()
	defer u.dirtyMu.Unlock()
	u.dirty = append(u.dirty, Rect{W: u.W, H: u.H})
	u.requestRefreshLocked()
}

func (u *UIManager) requestRefreshLocked() {
	if u.notifier == nil {
		return
	}
	select {
	case u.notifier <- true:
	default:
	}
}

func (u *UIManager) ensureBufferLocked() {
	if u.buf != nil && len(u.buf) == u.H && (u.H == 0 || len(u.buf[0]) == u.W) {
		return
	}
	u.buf = make([][]Cell, u.H)
	for y := 0; y < u.H; y++ {
		row := make([]Cell, u.W)
		for x := range row {
			row[x] = Cell{Ch: ' ', Style: u.bgStyle}
		}
		u.buf[y] = row
	}
}

func getZIndex(w Widget) int {
	if zi, ok := w.(ZIndexer); ok {
		return zi.ZIndex()
	}
	return 0
}

func (u *UIManager) sortedWidgetsLocked() []Widget {
	sorted := make([]Widget, len(u.widgets))
	copy(sorted, u.widgets)
	sort.SliceStable(sorted, func(i, j int) bool {
		return getZIndex(sorted[i]) < getZIndex(sorted[j])
	})
	return sorted
}

// Render redraws dirty regions and returns the framebuffer.
func (u *UIManager) Render() [][]Cell {
	u.mu.Lock()
	defer u.mu.Unlock()

	u.ensureBufferLocked()

	u.dirtyMu.Lock()
	dirty := u.dirty
	u.dirty = nil
	u.dirtyMu.Unlock()

	sorted := u.sortedWidgetsLocked()
	surface := Rect{W: u.W, H: u.H}

	if len(dirty) == 0 {
		p := NewPainter(u.buf, surface)
		p.Fill(surface, ' ', u.bgStyle)
		for _, w := range sorted {
			w.Draw(p)
		}
		return u.buf
	}

	for _, clip := range mergeRects(dirty) {
		clip = clip.Intersect(surface)
		if clip.Empty() {
			continue
		}
		p := NewPainter(u.buf, clip)
		p.Fill(clip, ' ', u.bgStyle)
		for _, w := range sorted {
			wx, wy := w.Position()
			ww, wh := w.Size()
			if (Rect{X: wx, Y: wy, W: ww, H: wh}).Overlaps(clip) {
				w.Draw(p)
			}
		}
	}
	return u.buf
}
