package ui

import "fmt"

// Container is the retained state of a window, popup or panel. Slots live
// in a fixed array indexed by the container pool; the pointer stays valid
// for the lifetime of the context.
type Container struct {
	head, tail int // command indices of the root's head/tail jumps

	Rect     Rect
	Body     Rect
	ContentW int
	ContentH int
	ScrollX  int
	ScrollY  int
	ZIndex   int
	Open     bool
}

// getContainer finds or claims the container for id. A closed-by-default
// container is not created: nil is returned instead.
func (ctx *Context) getContainer(id ID, opt Option) *Container {
	if ctx.state == stateClosed {
		ctx.fail(fmt.Errorf("container: context closed: %w", ErrFrameState))
		return nil
	}
	if idx := ctx.containerPool.Get(id); idx >= 0 {
		if ctx.containers[idx].Open || opt&OptClosed == 0 {
			ctx.containerPool.Update(idx, ctx.frame)
		}
		return &ctx.containers[idx]
	}
	if opt&OptClosed != 0 {
		return nil
	}
	idx, err := ctx.containerPool.Init(id, ctx.frame)
	if err != nil {
		ctx.fail(err)
		return nil
	}
	c := &ctx.containers[idx]
	*c = Container{head: -1, tail: -1, Open: true}
	ctx.BringToFront(c)
	return c
}

// GetContainer returns the container named name, creating it if needed.
func (ctx *Context) GetContainer(name string) *Container {
	return ctx.getContainer(ctx.GetIDString(name), 0)
}

// CurrentContainer is the innermost open container, or nil.
func (ctx *Context) CurrentContainer() *Container {
	if top := ctx.containerStack.top(); top != nil {
		return *top
	}
	return nil
}

// BringToFront raises c above every other root.
func (ctx *Context) BringToFront(c *Container) {
	ctx.lastZIndex++
	c.ZIndex = ctx.lastZIndex
}

func (ctx *Context) pushContainer(c *Container) bool {
	if err := ctx.containerStack.push(c); err != nil {
		ctx.fail(err)
		return false
	}
	return true
}

func (ctx *Context) popContainer() {
	c := ctx.CurrentContainer()
	if c == nil {
		ctx.fail(&ScopeError{Stack: "container", Depth: -1})
		return
	}
	l := ctx.layout()
	c.ContentW = l.maxW - l.body.X
	c.ContentH = l.maxH - l.body.Y
	ctx.containerStack.pop()
	ctx.popLayout()
	ctx.PopID()
}

// inHoverRoot reports whether the innermost root container on the stack is
// the one under the mouse.
func (ctx *Context) inHoverRoot() bool {
	for i := ctx.containerStack.len() - 1; i >= 0; i-- {
		c := ctx.containerStack.items[i]
		if c == ctx.hoverRoot {
			return true
		}
		// Only roots have a head jump; stop at the first one.
		if c.head >= 0 {
			break
		}
	}
	return false
}

func (ctx *Context) beginRootContainer(c *Container) bool {
	if !ctx.pushContainer(c) {
		return false
	}
	if err := ctx.rootList.push(c); err != nil {
		ctx.fail(err)
		return false
	}
	c.head = ctx.pushJump(-1)
	// The mouse is over this root if it beats every root seen so far.
	if c.Rect.Contains(ctx.mouseX, ctx.mouseY) &&
		(ctx.nextHoverRoot == nil || c.ZIndex > ctx.nextHoverRoot.ZIndex) {
		ctx.nextHoverRoot = c
	}
	// Roots ignore the parent's clip.
	if err := ctx.clipStack.push(Unclipped); err != nil {
		ctx.fail(err)
	}
	return true
}

func (ctx *Context) endRootContainer() {
	c := ctx.CurrentContainer()
	if c == nil {
		ctx.fail(&ScopeError{Stack: "container", Depth: -1})
		return
	}
	c.tail = ctx.pushJump(-1)
	if c.head >= 0 {
		ctx.commands.items[c.head].Dst = ctx.Len()
	}
	ctx.PopClip()
	ctx.popContainer()
}
