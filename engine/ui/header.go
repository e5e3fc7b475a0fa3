package ui

// header is the collapsible row shared by Header and tree nodes. Expansion
// state lives in the tree-node pool: a node is "active" while it has a slot.
// OptExpanded inverts the meaning so a node can start open.
func (ctx *Context) header(label string, treeNode bool, opt Option) Result {
	id := ctx.GetIDString(label)
	idx := ctx.treeNodePool.Get(id)
	ctx.LayoutRow(0, -1)

	active := idx >= 0
	r := ctx.LayoutNext()
	ctx.UpdateControl(id, r, 0)

	if ctx.mousePressed == MouseLeft && ctx.focus == id {
		active = !active
	}

	switch {
	case idx >= 0 && active:
		ctx.treeNodePool.Update(idx, ctx.frame)
	case idx >= 0:
		ctx.treeNodePool.Reset(idx)
	case active:
		if _, err := ctx.treeNodePool.Init(id, ctx.frame); err != nil {
			ctx.fail(err)
		}
	}

	expanded := active
	if opt&OptExpanded != 0 {
		expanded = !active
	}

	if treeNode {
		if ctx.hover == id {
			ctx.DrawFrame(ctx, r, ColorButtonHover)
		}
	} else {
		ctx.DrawControlFrame(id, r, ColorButton, 0)
	}
	icon := IconCollapsed
	if expanded {
		icon = IconExpanded
	}
	ctx.DrawIcon(icon, Rect{r.X, r.Y, r.H, r.H}, ctx.style.Colors[ColorText])
	r.X += r.H - ctx.style.Padding
	r.W -= r.H - ctx.style.Padding
	ctx.DrawControlText(label, r, ColorText, 0)

	if expanded {
		return ResActive
	}
	return 0
}

func (ctx *Context) Header(label string) Result { return ctx.header(label, false, 0) }

// HeaderEx draws a full-width collapsible header; ResActive means expanded.
func (ctx *Context) HeaderEx(label string, opt Option) Result {
	return ctx.header(label, false, opt)
}

func (ctx *Context) BeginTreeNode(label string) Result { return ctx.BeginTreeNodeEx(label, 0) }

// BeginTreeNodeEx draws a tree node. When it returns ResActive the caller
// lays out the children and must call EndTreeNode.
func (ctx *Context) BeginTreeNodeEx(label string, opt Option) Result {
	res := ctx.header(label, true, opt)
	if res&ResActive != 0 {
		ctx.layout().indent += ctx.style.Indent
		ctx.pushIDValue(ctx.lastID)
	}
	return res
}

func (ctx *Context) EndTreeNode() {
	ctx.layout().indent -= ctx.style.Indent
	ctx.PopID()
}
