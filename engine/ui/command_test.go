package ui

import (
	"reflect"
	"slices"
	"testing"

	"github.com/hubastard/xui/engine/colors"
)

func TestTraversalFollowsZOrder(t *testing.T) {
	ctx := newTestContext()
	names := []string{"A", "B", "C"}
	marks := map[colors.Color]string{
		colors.RGBA(1, 0, 0, 255): "A",
		colors.RGBA(2, 0, 0, 255): "B",
		colors.RGBA(3, 0, 0, 255): "C",
	}
	build := func() {
		for i, name := range names {
			inWindow(ctx, name, Rect{i * 100, 0, 100, 100}, func() {
				ctx.DrawRect(ctx.LayoutNext(), colors.RGBA(uint8(i+1), 0, 0, 255))
			})
		}
	}
	runFrame(t, ctx, build)

	// Declaration order is A, B, C; stacking order is B, C, A.
	ctx.GetContainer("A").ZIndex = 5
	ctx.GetContainer("B").ZIndex = 1
	ctx.GetContainer("C").ZIndex = 3
	runFrame(t, ctx, build)

	var order []string
	visited := 0
	for cmd := range ctx.Commands() {
		visited++
		if name, ok := marks[cmd.Color]; ok && cmd.Type == CommandRect {
			order = append(order, name)
		}
	}
	if want := []string{"B", "C", "A"}; !reflect.DeepEqual(order, want) {
		t.Errorf("root order = %v, want %v", order, want)
	}

	drawn := 0
	for _, c := range ctx.commands.items {
		if c.Type != CommandJump {
			drawn++
		}
	}
	if visited != drawn {
		t.Errorf("visited %d commands, list holds %d", visited, drawn)
	}
}

func TestTraversalVisitsRootsContiguously(t *testing.T) {
	ctx := newTestContext()
	titles := []string{"one", "two", "three", "four"}
	build := func() {
		for i, title := range titles {
			inWindow(ctx, title, Rect{i * 50, i * 50, 120, 120}, func() {
				ctx.Label(title)
			})
		}
	}
	runFrame(t, ctx, build)
	ctx.GetContainer("three").ZIndex = 0
	ctx.GetContainer("one").ZIndex = 10
	runFrame(t, ctx, build)

	owner := func(i int) *Container {
		for _, c := range ctx.rootList.items {
			if i > c.head && i < c.tail {
				return c
			}
		}
		return nil
	}
	var seq []*Container
	for i := ctx.NextCommand(0); i >= 0; i = ctx.NextCommand(i + 1) {
		c := owner(i)
		if c == nil {
			t.Fatalf("command %d belongs to no root", i)
		}
		if len(seq) == 0 || seq[len(seq)-1] != c {
			seq = append(seq, c)
		}
	}
	if len(seq) != len(titles) {
		t.Fatalf("traversal entered %d root ranges, want %d", len(seq), len(titles))
	}
	if !slices.IsSortedFunc(seq, func(a, b *Container) int { return a.ZIndex - b.ZIndex }) {
		t.Error("roots not visited in ascending z order")
	}
}

func TestEmptyFrameHasNoCommands(t *testing.T) {
	ctx := newTestContext()
	runFrame(t, ctx, func() {})
	if i := ctx.NextCommand(0); i != -1 {
		t.Errorf("NextCommand(0) = %d, want -1", i)
	}
	for range ctx.Commands() {
		t.Fatal("empty frame yielded a command")
	}
}

func TestCheckClip(t *testing.T) {
	ctx := newTestContext()
	ctx.Begin()
	ctx.PushClip(Rect{10, 10, 100, 100})
	tests := []struct {
		r    Rect
		want ClipResult
	}{
		{Rect{20, 20, 10, 10}, ClipNone},
		{Rect{10, 10, 100, 100}, ClipNone},
		{Rect{0, 0, 20, 20}, ClipPart},
		{Rect{105, 50, 20, 5}, ClipPart},
		{Rect{200, 200, 5, 5}, ClipAll},
		{Rect{0, 0, 5, 5}, ClipAll},
	}
	for _, tt := range tests {
		if got := ctx.CheckClip(tt.r); got != tt.want {
			t.Errorf("CheckClip(%v) = %d, want %d", tt.r, got, tt.want)
		}
	}
	ctx.PopClip()
	if err := ctx.End(); err != nil {
		t.Fatal(err)
	}
}

func TestDrawClipping(t *testing.T) {
	ctx := newTestContext()
	white := colors.White
	runFrame(t, ctx, func() {
		ctx.PushClip(Rect{0, 0, 10, 10})
		ctx.DrawText(fixedFont{}, "hello", 5, 5, white)    // partly visible
		ctx.DrawText(fixedFont{}, "gone", 100, 100, white) // hidden
		ctx.DrawRect(Rect{2, 2, 4, 4}, white)
		ctx.DrawRect(Rect{5, 5, 20, 20}, white)
		ctx.PopClip()
	})

	var got []Command
	for cmd := range ctx.Commands() {
		c := *cmd
		c.Font = nil
		got = append(got, c)
	}
	want := []Command{
		{Type: CommandClip, Rect: Rect{0, 0, 10, 10}},
		{Type: CommandText, Text: "hello", X: 5, Y: 5, Color: white},
		{Type: CommandClip, Rect: Unclipped},
		{Type: CommandRect, Rect: Rect{2, 2, 4, 4}, Color: white},
		{Type: CommandRect, Rect: Rect{5, 5, 5, 5}, Color: white},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("commands =\n%v\nwant\n%v", got, want)
	}
}

func TestDrawTextCopiesIntoArena(t *testing.T) {
	ctx := newTestContext()
	buf := []byte("mutable")
	runFrame(t, ctx, func() {
		ctx.DrawText(fixedFont{}, string(buf), 0, 0, colors.White)
	})
	buf[0] = 'X'
	if got := texts(ctx); !reflect.DeepEqual(got, []string{"mutable"}) {
		t.Errorf("texts = %q", got)
	}
}

func TestRender(t *testing.T) {
	ctx := newTestContext()
	runFrame(t, ctx, func() {
		ctx.PushClip(Rect{0, 0, 10, 10})
		ctx.DrawText(fixedFont{}, "hello", 5, 5, colors.White)
		ctx.PopClip()
		ctx.DrawRect(Rect{1, 1, 2, 2}, colors.Red)
		ctx.DrawIcon(IconCheck, Rect{0, 0, 8, 8}, colors.Red)
	})

	rec := &recorder{bounds: Rect{0, 0, 50, 50}}
	ctx.Render(rec)
	want := []string{
		"clip {0 0 50 50}",
		"clip {0 0 10 10}",
		`text "hello" 5,5`,
		"clip {0 0 50 50}",
		"rect {1 1 2 2}",
		"icon 2 {0 0 8 8}",
	}
	if !reflect.DeepEqual(rec.calls, want) {
		t.Errorf("calls =\n%q\nwant\n%q", rec.calls, want)
	}
}

func TestCommandTypeString(t *testing.T) {
	for typ, want := range map[CommandType]string{
		CommandJump: "jump", CommandClip: "clip", CommandRect: "rect",
		CommandText: "text", CommandIcon: "icon", 0: "unknown",
	} {
		if got := typ.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", typ, got, want)
		}
	}
}
