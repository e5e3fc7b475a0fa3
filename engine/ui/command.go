package ui

import (
	"fmt"
	"iter"

	"github.com/hubastard/xui/engine/colors"
)

type CommandType uint8

const (
	CommandJump CommandType = iota + 1
	CommandClip
	CommandRect
	CommandText
	CommandIcon
)

func (t CommandType) String() string {
	switch t {
	case CommandJump:
		return "jump"
	case CommandClip:
		return "clip"
	case CommandRect:
		return "rect"
	case CommandText:
		return "text"
	case CommandIcon:
		return "icon"
	}
	return "unknown"
}

// Command is one record of the frame's draw list. Which fields are
// meaningful depends on Type:
//
//	jump  Dst
//	clip  Rect
//	rect  Rect, Color
//	text  Font, Text, X, Y, Color
//	icon  Icon, Rect, Color
//
// Text points into the context's per-frame arena and is only valid until
// the next Begin.
type Command struct {
	Type  CommandType
	Dst   int
	Rect  Rect
	Color colors.Color
	Icon  Icon
	Font  Font
	X, Y  int
	Text  string
}

// commandList is an index-addressed record buffer with a fixed capacity.
// Jumps refer to records by index, so splicing never moves data.
type commandList struct {
	items []Command
}

func newCommandList(limit int) commandList {
	return commandList{items: make([]Command, 0, limit)}
}

func (l *commandList) push(c Command) (int, error) {
	if len(l.items) == cap(l.items) {
		return -1, &CapacityError{Resource: "command list", Limit: cap(l.items)}
	}
	l.items = append(l.items, c)
	return len(l.items) - 1, nil
}

func (l *commandList) reset() { l.items = l.items[:0] }

// pushCommand appends c and returns its index, or -1 once the frame has
// failed.
func (ctx *Context) pushCommand(c Command) int {
	if ctx.state != stateBuilding {
		ctx.fail(fmt.Errorf("push command: no frame in progress: %w", ErrFrameState))
		return -1
	}
	if ctx.err != nil {
		return -1
	}
	idx, err := ctx.commands.push(c)
	if err != nil {
		ctx.fail(err)
	}
	return idx
}

func (ctx *Context) pushJump(dst int) int {
	return ctx.pushCommand(Command{Type: CommandJump, Dst: dst})
}

// Len is the number of records in the current command list.
func (ctx *Context) Len() int { return len(ctx.commands.items) }

// Command returns the record at index i.
func (ctx *Context) Command(i int) *Command { return &ctx.commands.items[i] }

// NextCommand returns the index of the first non-jump record reached from
// i, following jumps. It returns -1 at the end of the list. Start a walk
// with NextCommand(0).
func (ctx *Context) NextCommand(i int) int {
	cmds := ctx.commands.items
	for i >= 0 && i < len(cmds) {
		if cmds[i].Type != CommandJump {
			return i
		}
		i = cmds[i].Dst
	}
	return -1
}

// Commands yields the frame's draw records in z-order, back to front.
// Valid after a successful End and until the next Begin.
func (ctx *Context) Commands() iter.Seq[*Command] {
	return func(yield func(*Command) bool) {
		for i := ctx.NextCommand(0); i >= 0; i = ctx.NextCommand(i + 1) {
			if !yield(&ctx.commands.items[i]) {
				return
			}
		}
	}
}

// ClipResult classifies a rect against the current clip.
type ClipResult uint8

const (
	ClipNone ClipResult = iota // fully visible
	ClipPart
	ClipAll // fully hidden
)

// clipIntersect is Intersect without the ok flag: a disjoint pair yields a
// zero-sized rect anchored inside both.
func clipIntersect(a, b Rect) Rect {
	x1 := max(a.X, b.X)
	y1 := max(a.Y, b.Y)
	x2 := max(x1, min(a.X+a.W, b.X+b.W))
	y2 := max(y1, min(a.Y+a.H, b.Y+b.H))
	return Rect{x1, y1, x2 - x1, y2 - y1}
}

// PushClip narrows the clip to r intersected with the current clip.
func (ctx *Context) PushClip(r Rect) error {
	if err := ctx.clipStack.push(clipIntersect(r, ctx.Clip())); err != nil {
		ctx.fail(err)
		return err
	}
	return nil
}

func (ctx *Context) PopClip() error {
	if err := ctx.clipStack.pop(); err != nil {
		ctx.fail(err)
		return err
	}
	return nil
}

// Clip is the active clip rect, Unclipped outside any container.
func (ctx *Context) Clip() Rect {
	if top := ctx.clipStack.top(); top != nil {
		return *top
	}
	return Unclipped
}

func (ctx *Context) CheckClip(r Rect) ClipResult {
	cr := ctx.Clip()
	if r.X > cr.X+cr.W || r.X+r.W < cr.X || r.Y > cr.Y+cr.H || r.Y+r.H < cr.Y {
		return ClipAll
	}
	if r.X >= cr.X && r.X+r.W <= cr.X+cr.W && r.Y >= cr.Y && r.Y+r.H <= cr.Y+cr.H {
		return ClipNone
	}
	return ClipPart
}

// SetClip emits a clip record.
func (ctx *Context) SetClip(r Rect) {
	ctx.pushCommand(Command{Type: CommandClip, Rect: r})
}

// DrawRect emits a filled rect, pre-clipped against the current clip.
func (ctx *Context) DrawRect(r Rect, c colors.Color) {
	r = clipIntersect(r, ctx.Clip())
	if r.W > 0 && r.H > 0 {
		ctx.pushCommand(Command{Type: CommandRect, Rect: r, Color: c})
	}
}

// DrawBox outlines r with four one-pixel rects.
func (ctx *Context) DrawBox(r Rect, c colors.Color) {
	ctx.DrawRect(Rect{r.X + 1, r.Y, r.W - 2, 1}, c)
	ctx.DrawRect(Rect{r.X + 1, r.Y + r.H - 1, r.W - 2, 1}, c)
	ctx.DrawRect(Rect{r.X, r.Y, 1, r.H}, c)
	ctx.DrawRect(Rect{r.X + r.W - 1, r.Y, 1, r.H}, c)
}

// DrawText emits s at (x, y). The string is copied into the frame arena.
// Partially clipped text is bracketed by clip records.
func (ctx *Context) DrawText(font Font, s string, x, y int, c colors.Color) {
	r := Rect{x, y, font.TextWidth(s), font.TextHeight()}
	clipped := ctx.CheckClip(r)
	if clipped == ClipAll {
		return
	}
	if clipped == ClipPart {
		ctx.SetClip(ctx.Clip())
	}
	if ctx.err == nil {
		owned, err := ctx.text.WriteString(s)
		if err != nil {
			ctx.fail(&CapacityError{Resource: "text arena", Limit: ctx.text.Cap()})
			return
		}
		ctx.pushCommand(Command{Type: CommandText, Font: font, Text: owned, X: x, Y: y, Color: c})
	}
	if clipped != ClipNone {
		ctx.SetClip(Unclipped)
	}
}

func (ctx *Context) DrawIcon(icon Icon, r Rect, c colors.Color) {
	clipped := ctx.CheckClip(r)
	if clipped == ClipAll {
		return
	}
	if clipped == ClipPart {
		ctx.SetClip(ctx.Clip())
	}
	ctx.pushCommand(Command{Type: CommandIcon, Icon: icon, Rect: r, Color: c})
	if clipped != ClipNone {
		ctx.SetClip(Unclipped)
	}
}
