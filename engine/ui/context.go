// Package ui is an immediate-mode UI engine. Application code describes the
// UI every frame between Begin and End; the engine derives widget identity
// from hashed labels, tracks hover/focus across frames, and emits a flat
// command list that a Surface replays in z-order.
//
// A Context is owned by one goroutine at a time. Nothing in this package
// allocates per frame once the context is built: every stack, pool and
// arena has a fixed bound set by Limits.
package ui

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/hubastard/xui/engine/scratch"
)

// Font measures text for layout. Supplied once at construction.
type Font interface {
	TextWidth(s string) int
	TextHeight() int
}

// fixedFont is used when no font is supplied: 8px advance, 16px lines.
type fixedFont struct{}

func (fixedFont) TextWidth(s string) int { return 8 * len(s) }
func (fixedFont) TextHeight() int        { return 16 }

// Limits are the fixed bounds of a context. Exceeding any of them makes the
// offending call fail with a *CapacityError and truncates the frame.
type Limits struct {
	Commands       int // records in the command list
	TextBytes      int // bytes of text referenced by commands in one frame
	RootList       int
	ContainerStack int
	ClipStack      int
	IDStack        int
	LayoutStack    int
	ContainerPool  int
	TreeNodePool   int
	InputText      int // bytes of text input accumulated per frame
	NumberEdit     int // bytes of the inline number editor
}

func DefaultLimits() Limits {
	return Limits{
		Commands:       4096,
		TextBytes:      256 * 1024,
		RootList:       32,
		ContainerStack: 32,
		ClipStack:      32,
		IDStack:        32,
		LayoutStack:    16,
		ContainerPool:  48,
		TreeNodePool:   48,
		InputText:      32,
		NumberEdit:     127,
	}
}

// maxWidths bounds the per-row width table of a layout.
const maxWidths = 16

// Frame counter and z-index are rebased when they reach these values.
const (
	defaultFrameLimit = 1 << 30
	defaultZLimit     = 1 << 30
)

type frameState uint8

const (
	stateIdle frameState = iota
	stateBuilding
	stateClosed
)

// Context is the whole engine state. Create it with New; it lives for the
// lifetime of the UI and is reused every frame.
type Context struct {
	// DrawFrame paints widget frames. Replace it to restyle every control.
	DrawFrame func(ctx *Context, r Rect, cid ColorID)

	font         Font
	style        Style
	limits       Limits
	logger       *slog.Logger
	panicOnError bool

	state frameState
	err   error

	hover        ID
	focus        ID
	lastID       ID
	updatedFocus bool
	lastRect     Rect
	lastZIndex   int
	frame        int
	frameLimit   int
	zLimit       int

	hoverRoot     *Container
	nextHoverRoot *Container
	scrollTarget  *Container

	numberEdit    ID
	numberEditBuf string

	commands commandList
	text     *scratch.Arena

	rootList       stack[*Container]
	containerStack stack[*Container]
	clipStack      stack[Rect]
	idStack        stack[ID]
	layoutStack    stack[layout]
	orphanLayout   layout
	orphanPanel    Container

	containerPool Pool
	containers    []Container
	treeNodePool  Pool

	mouseX, mouseY           int
	lastMouseX, lastMouseY   int
	mouseDeltaX, mouseDeltaY int
	scrollDeltaX             int
	scrollDeltaY             int
	mouseDown                MouseButton
	mousePressed             MouseButton
	mouseReleased            MouseButton
	keyDown                  Key
	keyPressed               Key
	inputText                []byte
}

// ContextOption configures New.
type ContextOption func(*Context)

func WithLimits(l Limits) ContextOption { return func(c *Context) { c.limits = l } }

func WithStyle(s Style) ContextOption { return func(c *Context) { c.style = s } }

// WithLogger reports discarded frames at Warn level.
func WithLogger(l *slog.Logger) ContextOption { return func(c *Context) { c.logger = l } }

// WithPanicOnError turns frame errors into panics (debug builds).
func WithPanicOnError() ContextOption { return func(c *Context) { c.panicOnError = true } }

// New allocates a context. All arenas are sized here and never grow.
func New(font Font, opts ...ContextOption) *Context {
	ctx := &Context{
		style:      DefaultStyle(),
		limits:     DefaultLimits(),
		frameLimit: defaultFrameLimit,
		zLimit:     defaultZLimit,
		DrawFrame:  drawFrame,
	}
	for _, opt := range opts {
		opt(ctx)
	}
	if font == nil {
		font = fixedFont{}
	}
	ctx.font = font

	l := ctx.limits
	ctx.commands = newCommandList(l.Commands)
	ctx.text = scratch.New(l.TextBytes)
	ctx.rootList = newStack[*Container]("root list", l.RootList)
	ctx.containerStack = newStack[*Container]("container", l.ContainerStack)
	ctx.clipStack = newStack[Rect]("clip", l.ClipStack)
	ctx.idStack = newStack[ID]("id", l.IDStack)
	ctx.layoutStack = newStack[layout]("layout", l.LayoutStack)
	ctx.containerPool = NewPool(l.ContainerPool)
	ctx.containers = make([]Container, l.ContainerPool)
	ctx.treeNodePool = NewPool(l.TreeNodePool)
	ctx.inputText = make([]byte, 0, l.InputText)
	return ctx
}

// Close releases the context. Any later Begin fails with ErrFrameState and
// widget calls record ErrFrameState instead of drawing.
func (ctx *Context) Close() {
	ctx.state = stateClosed
	ctx.hoverRoot, ctx.nextHoverRoot, ctx.scrollTarget = nil, nil, nil
	ctx.focus, ctx.hover = 0, 0
}

func (ctx *Context) Style() *Style { return &ctx.style }

// SetStyle swaps the style table. Call it between frames.
func (ctx *Context) SetStyle(s Style) { ctx.style = s }

// Font returns the style font, falling back to the context font.
func (ctx *Context) Font() Font {
	if ctx.style.Font != nil {
		return ctx.style.Font
	}
	return ctx.font
}

func (ctx *Context) Frame() int { return ctx.frame }

// Err returns the first error recorded in the current frame.
func (ctx *Context) Err() error { return ctx.err }

// fail records the first error of the frame. Later widget calls keep
// running but emit nothing, and End reports the error.
func (ctx *Context) fail(err error) {
	if err == nil || ctx.err != nil {
		return
	}
	ctx.err = err
}

// Begin starts a frame.
func (ctx *Context) Begin() error {
	switch ctx.state {
	case stateBuilding:
		return fmt.Errorf("begin: frame already building: %w", ErrFrameState)
	case stateClosed:
		return fmt.Errorf("begin: context closed: %w", ErrFrameState)
	}
	ctx.state = stateBuilding
	ctx.err = nil

	ctx.commands.reset()
	ctx.text.Reset()
	ctx.rootList.reset()
	ctx.containerStack.reset()
	ctx.clipStack.reset()
	ctx.idStack.reset()
	ctx.layoutStack.reset()

	// Entry jump, patched at End to the lowest root.
	ctx.pushJump(1)

	ctx.scrollTarget = nil
	ctx.hoverRoot = ctx.nextHoverRoot
	ctx.nextHoverRoot = nil
	ctx.mouseDeltaX = ctx.mouseX - ctx.lastMouseX
	ctx.mouseDeltaY = ctx.mouseY - ctx.lastMouseY
	ctx.frame++
	ctx.renormalize()
	return nil
}

// End closes the frame: checks scope balance, resolves focus and z-order,
// resets one-shot input and splices root command ranges in z-order.
// A non-nil error means the frame was discarded.
func (ctx *Context) End() error {
	if ctx.state != stateBuilding {
		return fmt.Errorf("end: no frame in progress: %w", ErrFrameState)
	}
	ctx.state = stateIdle

	errs := []error{ctx.err}
	errs = append(errs,
		ctx.containerStack.check(),
		ctx.clipStack.check(),
		ctx.idStack.check(),
		ctx.layoutStack.check(),
	)

	if ctx.scrollTarget != nil {
		ctx.scrollTarget.ScrollX += ctx.scrollDeltaX
		ctx.scrollTarget.ScrollY += ctx.scrollDeltaY
	}
	if !ctx.updatedFocus {
		ctx.focus = 0
	}
	ctx.updatedFocus = false

	if ctx.mousePressed != 0 && ctx.nextHoverRoot != nil &&
		ctx.nextHoverRoot.ZIndex < ctx.lastZIndex && ctx.nextHoverRoot.ZIndex >= 0 {
		ctx.BringToFront(ctx.nextHoverRoot)
	}

	ctx.keyPressed = 0
	ctx.inputText = ctx.inputText[:0]
	ctx.mousePressed = 0
	ctx.mouseReleased = 0
	ctx.scrollDeltaX = 0
	ctx.scrollDeltaY = 0
	ctx.lastMouseX = ctx.mouseX
	ctx.lastMouseY = ctx.mouseY

	err := errors.Join(errs...)
	if err != nil {
		ctx.discard()
		if ctx.logger != nil {
			ctx.logger.Warn("ui: frame discarded", "frame", ctx.frame, "err", err)
		}
		if ctx.panicOnError {
			panic(err)
		}
		return err
	}

	ctx.spliceRoots()
	return nil
}

// spliceRoots sorts the root list by z-index and links each root's tail jump
// to the next root's body, so traversal visits roots back to front.
func (ctx *Context) spliceRoots() {
	roots := ctx.rootList.items
	slices.SortStableFunc(roots, func(a, b *Container) int { return a.ZIndex - b.ZIndex })
	cmds := ctx.commands.items
	for i, c := range roots {
		if i == 0 {
			cmds[0].Dst = c.head + 1
		} else {
			cmds[roots[i-1].tail].Dst = c.head + 1
		}
		if i == len(roots)-1 {
			cmds[c.tail].Dst = len(cmds)
		}
	}
}

// discard drops every command of a failed frame, leaving an empty list.
func (ctx *Context) discard() {
	ctx.commands.reset()
	ctx.commands.items = append(ctx.commands.items, Command{Type: CommandJump, Dst: 1})
	ctx.rootList.reset()
	ctx.containerStack.reset()
	ctx.clipStack.reset()
	ctx.idStack.reset()
	ctx.layoutStack.reset()
}

// renormalize rebases the frame counter and z-index before they can grow
// without bound. Relative pool recency and z order are preserved.
func (ctx *Context) renormalize() {
	if ctx.frame >= ctx.frameLimit {
		offset := ctx.frameLimit / 2
		ctx.frame -= offset
		ctx.containerPool.rebase(offset)
		ctx.treeNodePool.rebase(offset)
	}
	if ctx.lastZIndex >= ctx.zLimit {
		// Rank live containers only; free slots drop to zero.
		order := make([]int, 0, len(ctx.containers))
		for i := range ctx.containers {
			if ctx.containerPool.items[i].ID != 0 {
				order = append(order, i)
			} else {
				ctx.containers[i].ZIndex = 0
			}
		}
		slices.SortStableFunc(order, func(a, b int) int {
			return ctx.containers[a].ZIndex - ctx.containers[b].ZIndex
		})
		for rank, i := range order {
			ctx.containers[i].ZIndex = rank + 1
		}
		ctx.lastZIndex = len(order)
	}
}

// SetFocus gives keyboard/mouse focus to id (0 clears it).
func (ctx *Context) SetFocus(id ID) {
	ctx.focus = id
	ctx.updatedFocus = true
}

func (ctx *Context) Focus() ID { return ctx.focus }
func (ctx *Context) Hover() ID { return ctx.hover }

// LastRect is the rect returned by the latest LayoutNext.
func (ctx *Context) LastRect() Rect { return ctx.lastRect }

// MousePos returns the current pointer position.
func (ctx *Context) MousePos() (x, y int) { return ctx.mouseX, ctx.mouseY }

// clamp keeps v within [lo, hi]; hi wins when lo > hi.
func clamp[T int | float64](v, lo, hi T) T {
	return min(hi, max(lo, v))
}
