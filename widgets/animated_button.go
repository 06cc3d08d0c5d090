package widgets

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/glintui/glint/anim"
	"github.com/glintui/glint/color"
	"github.com/glintui/glint/core"
	"github.com/glintui/glint/theme"
)

// AnimatedButtonOptions configures an AnimatedButton. The four color
// endpoints bound the interpolated appearance; Easing and Duration shape
// the transition. Options are fixed at construction.
type AnimatedButtonOptions struct {
	Foreground        tcell.Color
	Background        tcell.Color
	ForegroundFocused tcell.Color
	BackgroundFocused tcell.Color
	Easing            anim.EasingFunc
	Duration          time.Duration
}

// DefaultAnimatedButtonOptions returns theme-derived colors with a
// quadratic ease-out over the themed duration.
func DefaultAnimatedButtonOptions() AnimatedButtonOptions {
	tm := theme.Get()
	return AnimatedButtonOptions{
		Foreground:        tm.GetColor("button", "fg", tcell.ColorSilver),
		Background:        tm.GetColor("button", "bg", tcell.ColorBlack),
		ForegroundFocused: tm.GetColor("button", "focus_fg", tcell.ColorWhite),
		BackgroundFocused: tm.GetColor("button", "focus_bg", tcell.ColorGray),
		Easing:            anim.OutQuad,
		Duration:          tm.GetDuration("button", "duration_ms", 200*time.Millisecond),
	}
}

// AnimatedButton is a Button whose focus state is a continuous intensity
// eased between 0 and 1, driving interpolated colors. Activation resets
// the intensity to 0.5 and re-targets 1, producing a visible flash even
// when the button was already fully focused.
type AnimatedButton struct {
	core.BaseWidget
	Label   string
	OnClick func()
	opts    AnimatedButtonOptions

	// intensity is written only by the animator's frame step, except for
	// the activation perturbation below.
	intensity float32
	animator  *anim.Animator
}

// NewAnimatedButton creates an animated button sized to its label.
func NewAnimatedButton(x, y int, label string, onClick func()) *AnimatedButton {
	return NewAnimatedButtonWith(x, y, label, onClick, DefaultAnimatedButtonOptions())
}

// NewAnimatedButtonWith creates an animated button with explicit options.
func NewAnimatedButtonWith(x, y int, label string, onClick func(), opts AnimatedButtonOptions) *AnimatedButton {
	b := &AnimatedButton{Label: label, OnClick: onClick, opts: opts}
	b.animator = anim.NewAnimator(&b.intensity)
	b.SetPosition(x, y)
	b.Resize(runewidth.StringWidth(label)+2, 3)
	b.SetFocusable(true)
	return b
}

// Intensity returns the current interpolation value in [0,1].
func (b *AnimatedButton) Intensity() float32 { return b.intensity }

// Target returns the animation's current target.
func (b *AnimatedButton) Target() float32 { return b.animator.To() }

// Animating reports whether the intensity is still moving.
func (b *AnimatedButton) Animating() bool { return !b.animator.Done() }

// OnFrame advances the ease by one external clock tick.
func (b *AnimatedButton) OnFrame(p *anim.Params) {
	b.animator.OnFrame(p)
}

func (b *AnimatedButton) setAnimationTarget(target float32) {
	b.animator = anim.NewAnimatorTo(&b.intensity, target, b.opts.Duration, b.opts.Easing)
}

// Draw re-targets the ease when focus changed since the last tick, then
// renders with colors interpolated by the current intensity. Colors are
// recomputed every draw, never cached.
func (b *AnimatedButton) Draw(p *core.Painter) {
	target := float32(0)
	if b.IsFocused() {
		target = 1
	}
	if target != b.animator.To() {
		b.setAnimationTarget(target)
	}

	style := tcell.StyleDefault.
		Foreground(color.Interpolate(b.intensity, b.opts.Foreground, b.opts.ForegroundFocused)).
		Background(color.Interpolate(b.intensity, b.opts.Background, b.opts.BackgroundFocused))

	r := b.Rect
	p.Fill(r, ' ', style)
	p.DrawText(r.X+1, r.Y+1, b.Label, style)
	b.RecordHit(r)
}

// HandleKey activates on Enter while focused.
func (b *AnimatedButton) HandleKey(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyEnter {
		b.activate()
		return true
	}
	return false
}

// HandleMouse follows the same capture-then-activate protocol as Button.
func (b *AnimatedButton) HandleMouse(ev *tcell.EventMouse) bool {
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

// activate fires the callback and perturbs the animation: restart from
// mid-value toward 1 so re-activating an already-focused button still
// flashes.
func (b *AnimatedButton) activate() {
	if b.OnClick != nil {
		b.OnClick()
	}
	b.intensity = 0.5
	b.setAnimationTarget(1)
	b.Invalidate()
}
