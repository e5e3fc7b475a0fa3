package ui

import "testing"

func scrollFrame(t *testing.T, ctx *Context, contentH int) {
	t.Helper()
	runFrame(t, ctx, func() {
		inWindow(ctx, "scroll", Rect{0, 0, 300, 200}, func() {
			ctx.LayoutRow(contentH, -1)
			ctx.LayoutNext()
		})
	})
}

func TestScrollbarClamp(t *testing.T) {
	ctx := newTestContext()
	// Content 490 plus padding on both sides is 500; the body is 200 high.
	scrollFrame(t, ctx, 490)
	scrollFrame(t, ctx, 490)
	c := ctx.GetContainer("scroll")
	if c.ContentH+2*ctx.Style().Padding != 500 {
		t.Fatalf("content height = %d, want 490", c.ContentH)
	}

	tests := []struct {
		set, want int
	}{
		{1000, 300},
		{150, 150},
		{-50, 0},
	}
	for _, tt := range tests {
		c.ScrollY = tt.set
		scrollFrame(t, ctx, 490)
		if c.ScrollY != tt.want {
			t.Errorf("ScrollY %d clamped to %d, want %d", tt.set, c.ScrollY, tt.want)
		}
	}
}

func TestScrollWheelTargetsHoveredBody(t *testing.T) {
	ctx := newTestContext()
	scrollFrame(t, ctx, 490)
	ctx.InputMouseMove(50, 50)
	scrollFrame(t, ctx, 490)

	ctx.InputScroll(0, 5000)
	scrollFrame(t, ctx, 490)
	c := ctx.GetContainer("scroll")
	if c.ScrollY <= 300 {
		t.Fatalf("wheel delta not applied at End: ScrollY = %d", c.ScrollY)
	}
	scrollFrame(t, ctx, 490)
	if c.ScrollY != 300 {
		t.Errorf("ScrollY = %d, want 300", c.ScrollY)
	}
}

func TestScrollResetsWhenContentFits(t *testing.T) {
	ctx := newTestContext()
	scrollFrame(t, ctx, 490)
	scrollFrame(t, ctx, 490)
	c := ctx.GetContainer("scroll")
	c.ScrollY = 100
	// The first short frame still sees last frame's content size.
	scrollFrame(t, ctx, 10)
	scrollFrame(t, ctx, 10)
	if c.ScrollY != 0 {
		t.Errorf("ScrollY = %d after content shrank, want 0", c.ScrollY)
	}
}

func TestWindowCloseBox(t *testing.T) {
	ctx := newTestContext()
	open := Result(0)
	frame := func() {
		runFrame(t, ctx, func() {
			open = ctx.BeginWindow("closable", Rect{0, 0, 200, 200})
			if open != 0 {
				ctx.EndWindow()
			}
		})
	}
	frame()
	// The close box is the title-height square at the right of the title bar.
	th := ctx.Style().TitleHeight
	ctx.InputMouseMove(200-th/2, th/2)
	frame()
	ctx.InputMouseDown(200-th/2, th/2, MouseLeft)
	frame()
	ctx.InputMouseUp(200-th/2, th/2, MouseLeft)
	frame()
	if open != 0 {
		t.Error("window still open after clicking the close box")
	}
}

func TestWindowTitleDrag(t *testing.T) {
	ctx := newTestContext()
	frame := func() {
		runFrame(t, ctx, func() {
			if ctx.BeginWindow("drag", Rect{0, 0, 200, 200}) != 0 {
				ctx.EndWindow()
			}
		})
	}
	frame()
	ctx.InputMouseMove(50, 10)
	frame()
	ctx.InputMouseDown(50, 10, MouseLeft)
	frame()
	ctx.InputMouseMove(60, 25)
	frame()
	c := ctx.GetContainer("drag")
	if c.Rect.X != 10 || c.Rect.Y != 15 {
		t.Errorf("window moved to %d,%d, want 10,15", c.Rect.X, c.Rect.Y)
	}
}

func TestWindowResizeFloor(t *testing.T) {
	ctx := newTestContext()
	frame := func() {
		runFrame(t, ctx, func() {
			if ctx.BeginWindowEx("grip", Rect{0, 0, 200, 200}, OptNoTitle) != 0 {
				ctx.EndWindow()
			}
		})
	}
	frame()
	ctx.InputMouseMove(195, 195)
	frame()
	ctx.InputMouseDown(195, 195, MouseLeft)
	frame()
	ctx.InputMouseMove(0, 0)
	frame()
	c := ctx.GetContainer("grip")
	if c.Rect.W != 96 || c.Rect.H != 64 {
		t.Errorf("size = %dx%d, want 96x64", c.Rect.W, c.Rect.H)
	}
}

func TestWindowAutoSize(t *testing.T) {
	ctx := newTestContext()
	for range 3 {
		runFrame(t, ctx, func() {
			if ctx.BeginWindowEx("auto", Rect{0, 0, 300, 300}, OptAutoSize|OptNoTitle|OptNoResize|OptNoScroll) != 0 {
				ctx.LayoutRow(0, 100)
				ctx.Label("x")
				ctx.EndWindow()
			}
		})
	}
	c := ctx.GetContainer("auto")
	if c.Rect.W != 110 || c.Rect.H != 30 {
		t.Errorf("autosized to %dx%d, want 110x30", c.Rect.W, c.Rect.H)
	}
}

func TestClickBringsWindowToFront(t *testing.T) {
	ctx := newTestContext()
	build := func() {
		inWindow(ctx, "back", Rect{0, 0, 200, 200}, func() {})
		inWindow(ctx, "front", Rect{100, 100, 200, 200}, func() {})
	}
	runFrame(t, ctx, build)
	back, front := ctx.GetContainer("back"), ctx.GetContainer("front")
	if back.ZIndex >= front.ZIndex {
		t.Fatal("later window should start in front")
	}
	ctx.InputMouseMove(50, 50)
	runFrame(t, ctx, build)
	ctx.InputMouseDown(50, 50, MouseLeft)
	runFrame(t, ctx, build)
	if back.ZIndex <= front.ZIndex {
		t.Errorf("clicked window z=%d, other z=%d, want clicked in front", back.ZIndex, front.ZIndex)
	}
}

func TestOverlappedWindowIgnoresInput(t *testing.T) {
	ctx := newTestContext()
	var res Result
	build := func() {
		inWindow(ctx, "back", Rect{0, 0, 200, 200}, func() {
			ctx.LayoutSetNext(Rect{120, 120, 50, 50}, false)
			res = ctx.Button("hidden")
		})
		inWindow(ctx, "front", Rect{100, 100, 200, 200}, func() {})
	}
	runFrame(t, ctx, build)
	ctx.InputMouseMove(140, 140)
	// The hover root is resolved one frame late: the first frame after the
	// move still treats "back" as hovered.
	runFrame(t, ctx, build)
	runFrame(t, ctx, build)
	if ctx.Hover() != 0 {
		t.Error("button under another window became hovered")
	}
	ctx.InputMouseDown(140, 140, MouseLeft)
	runFrame(t, ctx, build)
	ctx.InputMouseUp(140, 140, MouseLeft)
	runFrame(t, ctx, build)
	if res&ResSubmit != 0 {
		t.Error("click went through the front window")
	}
}

func TestPopupClosesOnOutsideClick(t *testing.T) {
	ctx := newTestContext()
	openNow := true
	var popup Result
	build := func() {
		inWindow(ctx, "main", Rect{0, 0, 300, 300}, func() {
			if openNow {
				ctx.OpenPopup("menu")
				openNow = false
			}
			popup = ctx.BeginPopup("menu")
			if popup != 0 {
				ctx.Label("item")
				ctx.EndPopup()
			}
		})
	}
	ctx.InputMouseMove(50, 50)
	runFrame(t, ctx, build)
	if popup == 0 {
		t.Fatal("popup not shown on the frame it was opened")
	}
	runFrame(t, ctx, build)
	if popup == 0 {
		t.Fatal("popup closed without input")
	}

	// Clicking inside keeps it open.
	ctx.InputMouseMove(52, 52)
	runFrame(t, ctx, build)
	ctx.InputMouseDown(52, 52, MouseLeft)
	runFrame(t, ctx, build)
	ctx.InputMouseUp(52, 52, MouseLeft)
	runFrame(t, ctx, build)
	if popup == 0 {
		t.Fatal("click inside closed the popup")
	}

	ctx.InputMouseMove(250, 250)
	runFrame(t, ctx, build)
	ctx.InputMouseDown(250, 250, MouseLeft)
	runFrame(t, ctx, build)
	ctx.InputMouseUp(250, 250, MouseLeft)
	runFrame(t, ctx, build)
	if popup != 0 {
		t.Error("popup still open after clicking outside it")
	}
}

func TestPanelIsNotARoot(t *testing.T) {
	ctx := newTestContext()
	runFrame(t, ctx, func() {
		inWindow(ctx, "host", Rect{0, 0, 300, 300}, func() {
			ctx.LayoutRow(100, -1)
			ctx.BeginPanel("inner")
			ctx.Label("in panel")
			ctx.EndPanel()
		})
	})
	if n := ctx.rootList.len(); n != 1 {
		t.Errorf("root list has %d entries, want 1", n)
	}
	found := false
	for _, s := range texts(ctx) {
		if s == "in panel" {
			found = true
		}
	}
	if !found {
		t.Error("panel content missing from the window's commands")
	}
}

func TestClosedPanelDoesNotAllocate(t *testing.T) {
	ctx := newTestContext()
	runFrame(t, ctx, func() {
		inWindow(ctx, "host", Rect{0, 0, 300, 300}, func() {
			ctx.BeginPanelEx("ghost", OptClosed)
			if ctx.CurrentContainer() != &ctx.orphanPanel {
				t.Error("closed panel did not use the context placeholder")
			}
			ctx.EndPanel()

			allocs := testing.AllocsPerRun(50, func() {
				ctx.BeginPanelEx("ghost", OptClosed)
				ctx.EndPanel()
			})
			if allocs != 0 {
				t.Errorf("closed panel allocates %v times per call", allocs)
			}
		})
	})
}

func TestClosedWindowIsSkipped(t *testing.T) {
	ctx := newTestContext()
	runFrame(t, ctx, func() {
		if ctx.BeginWindowEx("never", Rect{0, 0, 10, 10}, OptClosed) != 0 {
			t.Error("closed window reported active")
		}
	})
}
