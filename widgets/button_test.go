package widgets_test

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/glintui/glint/widgets"
)

func TestButtonPressInsideActivates(t *testing.T) {
	clicks := 0
	b := widgets.NewButton(0, 0, "OK", func() { clicks++ })
	arb := &stubArbiter{press: tcell.Button1}
	b.SetArbiter(arb)
	_, p := newFrame(10, 5)
	b.Draw(p)

	if !b.HandleMouse(leftPress(1, 1)) {
		t.Fatal("press inside should be consumed")
	}
	if clicks != 1 {
		t.Fatalf("expected exactly one activation, got %d", clicks)
	}
	if arb.captured != b {
		t.Fatal("button should have captured the gesture")
	}
	if !b.IsFocused() {
		t.Fatal("button should have taken focus")
	}
}

func TestButtonPressOutsideHasNoEffect(t *testing.T) {
	clicks := 0
	b := widgets.NewButton(0, 0, "OK", func() { clicks++ })
	arb := &stubArbiter{press: tcell.Button1}
	b.SetArbiter(arb)
	_, p := newFrame(10, 5)
	b.Draw(p)

	if b.HandleMouse(leftPress(-1, -1)) {
		t.Fatal("press outside should not be consumed")
	}
	if clicks != 0 {
		t.Fatalf("callback fired %d times for an outside press", clicks)
	}
	if arb.captured != nil || arb.focused != nil {
		t.Fatal("outside press must not touch capture or focus")
	}
}

func TestButtonCaptureDeniedBlocksActivation(t *testing.T) {
	clicks := 0
	b := widgets.NewButton(0, 0, "OK", func() { clicks++ })
	arb := &stubArbiter{press: tcell.Button1, denyCapture: true}
	b.SetArbiter(arb)
	_, p := newFrame(10, 5)
	b.Draw(p)

	if b.HandleMouse(leftPress(1, 1)) {
		t.Fatal("denied capture should leave the event unconsumed")
	}
	if clicks != 0 {
		t.Fatal("denied capture must not activate")
	}
	if arb.focused != nil {
		t.Fatal("denied capture must not take focus")
	}
}

func TestButtonHeldMotionCapturesWithoutActivating(t *testing.T) {
	clicks := 0
	b := widgets.NewButton(0, 0, "OK", func() { clicks++ })
	// Button held from a previous event: no press transition now.
	arb := &stubArbiter{}
	b.SetArbiter(arb)
	_, p := newFrame(10, 5)
	b.Draw(p)

	if b.HandleMouse(leftPress(1, 1)) {
		t.Fatal("a non-press pointer event is not consumed")
	}
	if clicks != 0 {
		t.Fatal("held motion must not activate")
	}
	if arb.captured != b || arb.focused != b {
		t.Fatal("capture and focus side effects should still happen")
	}
}

func TestButtonEnterActivates(t *testing.T) {
	clicks := 0
	b := widgets.NewButton(0, 0, "OK", func() { clicks++ })

	if !b.HandleKey(tcell.NewEventKey(tcell.KeyEnter, 0, 0)) {
		t.Fatal("Enter should be consumed")
	}
	if clicks != 1 {
		t.Fatalf("expected one activation, got %d", clicks)
	}
	if b.HandleKey(tcell.NewEventKey(tcell.KeyRune, 'x', 0)) {
		t.Fatal("unrelated keys are not consumed")
	}
	if clicks != 1 {
		t.Fatal("unrelated keys must not activate")
	}
}

func TestButtonHitTestBeforeFirstDraw(t *testing.T) {
	b := widgets.NewButton(0, 0, "OK", nil)
	if b.HitTest(0, 0) || b.HitTest(1, 1) {
		t.Fatal("a never-drawn button contains no point")
	}
}

func TestButtonRenderIdempotent(t *testing.T) {
	b := widgets.NewButton(1, 1, "OK", nil)
	first, p1 := newFrame(10, 5)
	b.Draw(p1)
	hit := b.HitRect()

	second, p2 := newFrame(10, 5)
	b.Draw(p2)

	if !framesEqual(first, second) {
		t.Fatal("two draws with no intervening event should be identical")
	}
	if b.HitRect() != hit {
		t.Fatal("hit region changed without any event")
	}
}

func TestButtonBorderlessIsSingleRow(t *testing.T) {
	opts := widgets.DefaultButtonOptions()
	opts.Border = false
	b := widgets.NewButtonWith(3, 2, "Go", nil, opts)
	if w, h := b.Size(); w != 2 || h != 1 {
		t.Fatalf("borderless button should wrap its label, got %dx%d", w, h)
	}
	_, p := newFrame(10, 5)
	b.Draw(p)
	if !b.HitTest(3, 2) || b.HitTest(3, 3) {
		t.Fatal("hit region should cover exactly the drawn row")
	}
}
