package ui

import (
	"strings"
	"testing"

	"github.com/hubastard/xui/engine/core"
)

func TestHandleEvent(t *testing.T) {
	ctx := newTestContext()
	events := []core.Event{
		core.EventMouseMove{X: 10.7, Y: 20.2},
		core.EventMouseButton{Button: core.MouseLeft, Down: true, X: 11, Y: 21},
		core.EventScroll{DX: 0, DY: 1},
		core.EventKey{Key: core.KeyLeftShift, Down: true},
		core.EventKey{Key: core.KeyBackspace, Down: true},
		core.EventText{Text: "ok"},
	}
	for _, ev := range events {
		if !ctx.HandleEvent(ev) {
			t.Errorf("HandleEvent(%T) = false", ev)
		}
	}
	if ctx.HandleEvent(core.EventResize{W: 1, H: 1}) {
		t.Error("resize should not be consumed by the UI")
	}
	if ctx.HandleEvent(core.EventKey{Key: core.KeyP, Down: true}) {
		t.Error("unmapped key should not be consumed")
	}

	if x, y := ctx.MousePos(); x != 11 || y != 21 {
		t.Errorf("mouse = %d,%d, want 11,21", x, y)
	}
	if ctx.mouseDown != MouseLeft || ctx.mousePressed != MouseLeft {
		t.Errorf("mouse down/pressed = %b/%b", ctx.mouseDown, ctx.mousePressed)
	}
	if ctx.scrollDeltaY != -scrollStep {
		t.Errorf("scroll y = %d, want %d", ctx.scrollDeltaY, -scrollStep)
	}
	if ctx.keyDown != KeyShift|KeyBackspace {
		t.Errorf("keys down = %b", ctx.keyDown)
	}
	if string(ctx.inputText) != "ok" {
		t.Errorf("input text = %q", ctx.inputText)
	}

	ctx.HandleEvent(core.EventMouseButton{Button: core.MouseLeft, Down: false, X: 11, Y: 21})
	if ctx.mouseDown != 0 || ctx.mouseReleased != MouseLeft {
		t.Errorf("after release down/released = %b/%b", ctx.mouseDown, ctx.mouseReleased)
	}
}

func TestOneShotInputClearedAtEnd(t *testing.T) {
	ctx := newTestContext()
	ctx.InputMouseDown(1, 1, MouseLeft)
	ctx.InputMouseUp(1, 1, MouseRight)
	ctx.InputKeyDown(KeyReturn)
	ctx.InputScroll(3, 4)
	ctx.InputText("x")
	runFrame(t, ctx, func() {})

	if ctx.mousePressed != 0 || ctx.mouseReleased != 0 || ctx.keyPressed != 0 {
		t.Error("one-shot flags survived End")
	}
	if ctx.scrollDeltaX != 0 || ctx.scrollDeltaY != 0 || len(ctx.inputText) != 0 {
		t.Error("scroll delta or text survived End")
	}
	if ctx.mouseDown != MouseLeft || ctx.keyDown != KeyReturn {
		t.Error("held state must persist across frames")
	}
}

func TestInputTextLimit(t *testing.T) {
	ctx := newTestContext()
	ctx.InputText(strings.Repeat("a", 31) + "€")
	if got := string(ctx.inputText); got != strings.Repeat("a", 31) {
		t.Errorf("input text = %q, want the rune cut at the limit", got)
	}
}

func TestMouseDelta(t *testing.T) {
	ctx := newTestContext()
	ctx.InputMouseMove(10, 10)
	runFrame(t, ctx, func() {})
	ctx.InputMouseMove(13, 6)
	runFrame(t, ctx, func() {
		if ctx.mouseDeltaX != 3 || ctx.mouseDeltaY != -4 {
			t.Errorf("delta = %d,%d, want 3,-4", ctx.mouseDeltaX, ctx.mouseDeltaY)
		}
	})
}
