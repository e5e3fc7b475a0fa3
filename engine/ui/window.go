package ui

// scrollbarY draws the vertical scrollbar of c when content overflows the
// body and keeps c.ScrollY within range.
func (ctx *Context) scrollbarY(c *Container, b Rect, height int) {
	maxScroll := height - b.H
	if maxScroll <= 0 || b.H <= 0 {
		c.ScrollY = 0
		return
	}
	id := ctx.GetIDString("!scrollbary")
	base := b
	base.X = b.X + b.W
	base.W = ctx.style.ScrollbarSize

	ctx.UpdateControl(id, base, 0)
	if ctx.focus == id && ctx.mouseDown == MouseLeft {
		c.ScrollY += ctx.mouseDeltaY * height / base.H
	}
	c.ScrollY = clamp(c.ScrollY, 0, maxScroll)

	ctx.DrawFrame(ctx, base, ColorScrollBase)
	thumb := base
	thumb.H = max(ctx.style.ThumbSize, base.H*b.H/height)
	thumb.Y += c.ScrollY * (base.H - thumb.H) / maxScroll
	ctx.DrawFrame(ctx, thumb, ColorScrollThumb)

	if ctx.MouseOver(b) {
		ctx.scrollTarget = c
	}
}

func (ctx *Context) scrollbarX(c *Container, b Rect, width int) {
	maxScroll := width - b.W
	if maxScroll <= 0 || b.W <= 0 {
		c.ScrollX = 0
		return
	}
	id := ctx.GetIDString("!scrollbarx")
	base := b
	base.Y = b.Y + b.H
	base.H = ctx.style.ScrollbarSize

	ctx.UpdateControl(id, base, 0)
	if ctx.focus == id && ctx.mouseDown == MouseLeft {
		c.ScrollX += ctx.mouseDeltaX * width / base.W
	}
	c.ScrollX = clamp(c.ScrollX, 0, maxScroll)

	ctx.DrawFrame(ctx, base, ColorScrollBase)
	thumb := base
	thumb.W = max(ctx.style.ThumbSize, base.W*b.W/width)
	thumb.X += c.ScrollX * (base.W - thumb.W) / maxScroll
	ctx.DrawFrame(ctx, thumb, ColorScrollThumb)

	if ctx.MouseOver(b) {
		ctx.scrollTarget = c
	}
}

// scrollbars reserves room for the scrollbars c needs, based on the content
// size measured last frame, and returns the remaining body.
func (ctx *Context) scrollbars(c *Container, body Rect) Rect {
	sz := ctx.style.ScrollbarSize
	width := c.ContentW + ctx.style.Padding*2
	height := c.ContentH + ctx.style.Padding*2
	ctx.PushClip(body)
	if height > c.Body.H {
		body.W -= sz
	}
	if width > c.Body.W {
		body.H -= sz
	}
	ctx.scrollbarY(c, body, height)
	ctx.scrollbarX(c, body, width)
	ctx.PopClip()
	return body
}

func (ctx *Context) pushContainerBody(c *Container, body Rect, opt Option) {
	if opt&OptNoScroll == 0 {
		body = ctx.scrollbars(c, body)
	}
	ctx.pushLayout(body.Expand(-ctx.style.Padding), c.ScrollX, c.ScrollY)
	c.Body = body
}

func (ctx *Context) BeginWindow(title string, r Rect) Result {
	return ctx.BeginWindowEx(title, r, 0)
}

// BeginWindowEx opens a movable root container. r is only used the first
// time the window is seen. It returns ResActive when the window is open;
// only then must the caller lay out its contents and call EndWindow.
func (ctx *Context) BeginWindowEx(title string, r Rect, opt Option) Result {
	id := ctx.GetIDString(title)
	c := ctx.getContainer(id, opt)
	if c == nil || !c.Open {
		return 0
	}
	if ctx.pushIDValue(id) != nil {
		return 0
	}

	if c.Rect.W == 0 {
		c.Rect = r
	}
	if !ctx.beginRootContainer(c) {
		return 0
	}
	body := c.Rect
	rect := c.Rect

	if opt&OptNoFrame == 0 {
		ctx.DrawFrame(ctx, rect, ColorWindow)
	}

	if opt&OptNoTitle == 0 {
		tr := rect
		tr.H = ctx.style.TitleHeight
		ctx.DrawFrame(ctx, tr, ColorTitleBG)

		tid := ctx.GetIDString("!title")
		ctx.UpdateControl(tid, tr, opt)
		ctx.DrawControlText(title, tr, ColorTitleText, opt)
		if tid == ctx.focus && ctx.mouseDown == MouseLeft {
			c.Rect.X += ctx.mouseDeltaX
			c.Rect.Y += ctx.mouseDeltaY
		}
		body.Y += tr.H
		body.H -= tr.H

		if opt&OptNoClose == 0 {
			cid := ctx.GetIDString("!close")
			cr := Rect{tr.X + tr.W - tr.H, tr.Y, tr.H, tr.H}
			ctx.DrawIcon(IconClose, cr, ctx.style.Colors[ColorTitleText])
			ctx.UpdateControl(cid, cr, opt)
			if ctx.mousePressed == MouseLeft && cid == ctx.focus {
				c.Open = false
			}
		}
	}

	ctx.pushContainerBody(c, body, opt)

	if opt&OptNoResize == 0 {
		sz := ctx.style.TitleHeight
		rid := ctx.GetIDString("!resize")
		gr := Rect{rect.X + rect.W - sz, rect.Y + rect.H - sz, sz, sz}
		ctx.UpdateControl(rid, gr, opt)
		if rid == ctx.focus && ctx.mouseDown == MouseLeft {
			c.Rect.W = max(96, c.Rect.W+ctx.mouseDeltaX)
			c.Rect.H = max(64, c.Rect.H+ctx.mouseDeltaY)
		}
	}

	if opt&OptAutoSize != 0 {
		lb := ctx.layout().body
		c.Rect.W = c.ContentW + (c.Rect.W - lb.W)
		c.Rect.H = c.ContentH + (c.Rect.H - lb.H)
	}

	// Popups close on any click outside them.
	if opt&OptPopup != 0 && ctx.mousePressed != 0 && ctx.hoverRoot != c {
		c.Open = false
	}

	ctx.PushClip(c.Body)
	return ResActive
}

func (ctx *Context) EndWindow() {
	ctx.PopClip()
	ctx.endRootContainer()
}

// OpenPopup opens the popup name at the mouse position, in front of
// everything else.
func (ctx *Context) OpenPopup(name string) {
	c := ctx.GetContainer(name)
	if c == nil {
		return
	}
	ctx.hoverRoot = c
	ctx.nextHoverRoot = c
	c.Rect = Rect{ctx.mouseX, ctx.mouseY, 1, 1}
	c.Open = true
	ctx.BringToFront(c)
}

// BeginPopup is an auto-sized, untitled window that exists only while open.
func (ctx *Context) BeginPopup(name string) Result {
	opt := OptPopup | OptAutoSize | OptNoResize | OptNoScroll | OptNoTitle | OptClosed
	return ctx.BeginWindowEx(name, Rect{}, opt)
}

func (ctx *Context) EndPopup() { ctx.EndWindow() }

func (ctx *Context) BeginPanel(name string) { ctx.BeginPanelEx(name, 0) }

// BeginPanelEx nests a scrollable region in the next layout cell. Panels
// always need a matching EndPanel.
func (ctx *Context) BeginPanelEx(name string, opt Option) {
	ctx.PushIDString(name)
	c := ctx.getContainer(ctx.lastID, opt)
	if c == nil {
		// Keep the stacks balanced for EndPanel.
		ctx.orphanPanel = Container{head: -1, tail: -1}
		c = &ctx.orphanPanel
	}
	c.Rect = ctx.LayoutNext()
	if opt&OptNoFrame == 0 {
		ctx.DrawFrame(ctx, c.Rect, ColorPanel)
	}
	ctx.pushContainer(c)
	ctx.pushContainerBody(c, c.Rect, opt)
	ctx.PushClip(c.Body)
}

func (ctx *Context) EndPanel() {
	ctx.PopClip()
	ctx.popContainer()
}
