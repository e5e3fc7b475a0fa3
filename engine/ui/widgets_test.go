package ui

import (
	"reflect"
	"testing"
)

// widgetHarness runs one widget inside a fixed window and remembers its
// rect and result.
type widgetHarness struct {
	t    *testing.T
	ctx  *Context
	draw func(ctx *Context) Result
	rect Rect
	res  Result
}

func newHarness(t *testing.T, draw func(ctx *Context) Result) *widgetHarness {
	h := &widgetHarness{t: t, ctx: newTestContext(), draw: draw}
	h.frame()
	return h
}

func (h *widgetHarness) frame() Result {
	h.t.Helper()
	runFrame(h.t, h.ctx, func() {
		inWindow(h.ctx, "harness", Rect{0, 0, 300, 300}, func() {
			h.res = h.draw(h.ctx)
			h.rect = h.ctx.LastRect()
		})
	})
	return h.res
}

// hover moves the mouse onto the widget and runs a frame.
func (h *widgetHarness) hover(dx int) {
	x, y := center(h.rect)
	h.ctx.InputMouseMove(x+dx, y)
	h.frame()
}

func (h *widgetHarness) press() Result {
	h.ctx.InputMouseDown(h.ctx.mouseX, h.ctx.mouseY, MouseLeft)
	return h.frame()
}

func (h *widgetHarness) release() Result {
	h.ctx.InputMouseUp(h.ctx.mouseX, h.ctx.mouseY, MouseLeft)
	return h.frame()
}

func TestButtonSubmitsOnRelease(t *testing.T) {
	h := newHarness(t, func(ctx *Context) Result { return ctx.Button("OK") })
	h.hover(0)
	if res := h.press(); res&ResSubmit != 0 {
		t.Fatal("submitted on the press frame")
	}
	if h.ctx.Focus() == 0 {
		t.Fatal("button did not take focus on press")
	}
	if res := h.release(); res&ResSubmit == 0 {
		t.Fatal("no submit on the release frame")
	}
	if res := h.frame(); res != 0 {
		t.Errorf("result after release = %b, want 0", res)
	}
}

func TestButtonReleaseOutsideCancels(t *testing.T) {
	h := newHarness(t, func(ctx *Context) Result { return ctx.Button("OK") })
	h.hover(0)
	h.press()
	h.ctx.InputMouseUp(290, 290, MouseLeft)
	if res := h.frame(); res&ResSubmit != 0 {
		t.Error("submitted although released outside the button")
	}
}

func TestButtonClickWithinOneFrame(t *testing.T) {
	h := newHarness(t, func(ctx *Context) Result { return ctx.Button("OK") })
	h.hover(0)
	x, y := center(h.rect)
	h.ctx.InputMouseDown(x, y, MouseLeft)
	h.ctx.InputMouseUp(x, y, MouseLeft)
	if res := h.frame(); res&ResSubmit == 0 {
		t.Error("press and release between frames should submit")
	}
}

func TestIconButtonIdentity(t *testing.T) {
	h := newHarness(t, func(ctx *Context) Result { return ctx.ButtonEx("", IconClose, 0) })
	h.hover(0)
	h.press()
	if res := h.release(); res&ResSubmit == 0 {
		t.Error("icon button did not submit")
	}
}

func TestCheckboxTogglesOnRelease(t *testing.T) {
	checked := false
	h := newHarness(t, func(ctx *Context) Result { return ctx.Checkbox("Enable", &checked) })
	h.hover(0)
	h.press()
	if checked {
		t.Fatal("toggled on the press frame")
	}
	if res := h.release(); res&ResChange == 0 || !checked {
		t.Fatalf("release: res=%b checked=%v, want change and true", res, checked)
	}
	h.press()
	h.release()
	if checked {
		t.Error("second click did not untoggle")
	}
}

func TestSliderDrag(t *testing.T) {
	value := 0.0
	h := newHarness(t, func(ctx *Context) Result {
		ctx.LayoutRow(0, 100)
		return ctx.Slider("volume", &value, 0, 100)
	})
	base := h.rect
	h.ctx.InputMouseMove(base.X, base.Y+base.H/2)
	h.frame()
	h.press()
	if value != 0 {
		t.Fatalf("value after press at left edge = %v, want 0", value)
	}

	h.ctx.InputMouseMove(base.X+50, base.Y+base.H/2)
	if res := h.frame(); res&ResChange == 0 {
		t.Error("drag did not report a change")
	}
	if value != 50 {
		t.Errorf("value = %v, want 50", value)
	}

	h.ctx.InputMouseMove(base.X+500, base.Y)
	h.frame()
	if value != 100 {
		t.Errorf("value past the right edge = %v, want 100", value)
	}
}

func TestSliderStep(t *testing.T) {
	value := 0.0
	h := newHarness(t, func(ctx *Context) Result {
		ctx.LayoutRow(0, 100)
		return ctx.SliderEx("snap", &value, 0, 100, 10, "%.0f", 0)
	})
	base := h.rect
	h.ctx.InputMouseMove(base.X+47, base.Y+base.H/2)
	h.frame()
	h.press()
	if value != 50 {
		t.Errorf("value = %v, want 50", value)
	}
	if got := texts(h.ctx); !reflect.DeepEqual(got, []string{"50"}) {
		t.Errorf("slider text = %q, want [50]", got)
	}
}

func TestNumberDrag(t *testing.T) {
	value := 1.0
	h := newHarness(t, func(ctx *Context) Result { return ctx.Number("n", &value, 0.5) })
	h.hover(0)
	h.press()
	x, y := center(h.rect)
	h.ctx.InputMouseMove(x+10, y)
	if res := h.frame(); res&ResChange == 0 {
		t.Error("drag did not report a change")
	}
	if value != 6 {
		t.Errorf("value = %v, want 6", value)
	}
}

func TestNumberInlineEdit(t *testing.T) {
	tests := []struct {
		name  string
		start float64
		typed string
		want  float64
	}{
		{"append digit", 1.5, "5", 1.505},
		{"garbage keeps value", 2, "abc", 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value := tt.start
			h := newHarness(t, func(ctx *Context) Result { return ctx.Number("n", &value, 1) })
			h.hover(0)
			h.ctx.InputKeyDown(KeyShift)
			h.press()
			h.ctx.InputKeyUp(KeyShift)
			h.release()
			if h.ctx.numberEdit == 0 {
				t.Fatal("shift+click did not open the editor")
			}
			h.ctx.InputText(tt.typed)
			h.frame()
			h.ctx.InputKeyDown(KeyReturn)
			h.frame()
			if value != tt.want {
				t.Errorf("value = %v, want %v", value, tt.want)
			}
			if h.ctx.numberEdit != 0 {
				t.Error("editor still open after submit")
			}
		})
	}
}

func TestTextboxEditing(t *testing.T) {
	buf := ""
	h := newHarness(t, func(ctx *Context) Result { return ctx.Textbox("name", &buf, 0) })
	h.hover(0)
	h.press()
	h.release()
	if h.ctx.Focus() == 0 {
		t.Fatal("textbox lost focus after release")
	}

	h.ctx.InputText("hi€")
	if res := h.frame(); res&ResChange == 0 || buf != "hi€" {
		t.Fatalf("after typing: res=%b buf=%q", res, buf)
	}
	h.ctx.InputKeyDown(KeyBackspace)
	h.frame()
	if buf != "hi" {
		t.Errorf("after backspace buf = %q, want %q", buf, "hi")
	}
	h.ctx.InputKeyDown(KeyReturn)
	if res := h.frame(); res&ResSubmit == 0 {
		t.Error("return did not submit")
	}
	if h.ctx.Focus() != 0 {
		t.Error("submit kept focus")
	}
}

func TestTextboxLimit(t *testing.T) {
	tests := []struct {
		limit int
		typed string
		want  string
	}{
		{3, "abcd", "abc"},
		{3, "a€", "a"},
		{0, "unbounded", "unbounded"},
	}
	for _, tt := range tests {
		buf := ""
		h := newHarness(t, func(ctx *Context) Result { return ctx.Textbox("t", &buf, tt.limit) })
		h.hover(0)
		h.press()
		h.ctx.InputText(tt.typed)
		h.release()
		if buf != tt.want {
			t.Errorf("limit %d typing %q: buf = %q, want %q", tt.limit, tt.typed, buf, tt.want)
		}
	}
}

func TestTrimLastRune(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"abc", "ab"},
		{"hé", "h"},
		{"日本", "日"},
		{"x😀", "x"},
		{"a\x80", "a"},         // stray continuation byte
		{"a\xe6\x97", "a\xe6"}, // truncated sequence loses one byte
		{"\xff", ""},
	}
	for _, tt := range tests {
		if got := trimLastRune(tt.in); got != tt.want {
			t.Errorf("trimLastRune(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestHeaderToggles(t *testing.T) {
	h := newHarness(t, func(ctx *Context) Result { return ctx.Header("Section") })
	if h.res != 0 {
		t.Fatal("header starts expanded")
	}
	h.hover(0)
	if res := h.press(); res&ResActive == 0 {
		t.Fatal("header did not expand on press")
	}
	if res := h.release(); res&ResActive == 0 {
		t.Fatal("header collapsed after release")
	}
	h.press()
	if res := h.release(); res&ResActive != 0 {
		t.Error("second click did not collapse")
	}
}

func TestHeaderExpandedByDefault(t *testing.T) {
	h := newHarness(t, func(ctx *Context) Result { return ctx.HeaderEx("Open", OptExpanded) })
	if h.res&ResActive == 0 {
		t.Error("OptExpanded header starts collapsed")
	}
}

func TestTreeNodeIndentsChildren(t *testing.T) {
	var child Rect
	h := newHarness(t, func(ctx *Context) Result {
		res := ctx.BeginTreeNodeEx("Node", OptExpanded)
		if res&ResActive != 0 {
			ctx.Label("child")
			child = ctx.LastRect()
			ctx.EndTreeNode()
		}
		return res
	})
	if h.res&ResActive == 0 {
		t.Fatal("tree node not expanded")
	}
	// Window body starts at Padding; children are shifted by Indent.
	st := DefaultStyle()
	if want := st.Padding + st.Indent; child.X != want {
		t.Errorf("child x = %d, want %d", child.X, want)
	}
}

func TestTextWraps(t *testing.T) {
	ctx := newTestContext()
	withLayout(t, ctx, Rect{0, 0, 60, 200}, func() {
		ctx.LayoutRow(0, -1)
		ctx.Text("aaa bbb ccc")
	})
	if got, want := texts(ctx), []string{"aaa bbb", "ccc"}; !reflect.DeepEqual(got, want) {
		t.Errorf("lines = %q, want %q", got, want)
	}
}

func TestTextHonorsNewlines(t *testing.T) {
	ctx := newTestContext()
	withLayout(t, ctx, Rect{0, 0, 400, 200}, func() {
		ctx.LayoutRow(0, -1)
		ctx.Text("one\ntwo")
	})
	if got, want := texts(ctx), []string{"one", "two"}; !reflect.DeepEqual(got, want) {
		t.Errorf("lines = %q, want %q", got, want)
	}
}

func TestLabelAlignment(t *testing.T) {
	tests := []struct {
		opt   Option
		wantX int
	}{
		{0, 5},               // padding
		{OptAlignCenter, 34}, // (100-32)/2
		{OptAlignRight, 63},  // 100-32-5
	}
	for _, tt := range tests {
		ctx := newTestContext()
		var x int
		withLayout(t, ctx, Rect{0, 0, 100, 100}, func() {
			ctx.DrawControlText("text", Rect{0, 0, 100, 20}, ColorText, tt.opt)
		})
		for cmd := range ctx.Commands() {
			if cmd.Type == CommandText {
				x = cmd.X
			}
		}
		if x != tt.wantX {
			t.Errorf("opt %b: x = %d, want %d", tt.opt, x, tt.wantX)
		}
	}
}
