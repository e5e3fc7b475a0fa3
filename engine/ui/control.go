package ui

// drawFrame is the default frame painter: a fill plus a one-pixel border
// for everything except scroll and title bars.
func drawFrame(ctx *Context, r Rect, cid ColorID) {
	st := &ctx.style
	ctx.DrawRect(r, st.Colors[cid])
	if cid == ColorScrollBase || cid == ColorScrollThumb || cid == ColorTitleBG {
		return
	}
	if st.Colors[ColorBorder].A != 0 {
		ctx.DrawBox(r.Expand(1), st.Colors[ColorBorder])
	}
}

// MouseOver reports whether the mouse is over r, inside the current clip and
// within the root container under the mouse.
func (ctx *Context) MouseOver(r Rect) bool {
	return r.Contains(ctx.mouseX, ctx.mouseY) &&
		ctx.Clip().Contains(ctx.mouseX, ctx.mouseY) &&
		ctx.inHoverRoot()
}

// UpdateControl runs the shared hover/focus rules for the control id
// occupying r.
func (ctx *Context) UpdateControl(id ID, r Rect, opt Option) {
	mouseover := ctx.MouseOver(r)

	if ctx.focus == id {
		ctx.updatedFocus = true
	}
	if opt&OptNoInteract != 0 {
		return
	}
	if mouseover && ctx.mouseDown == 0 {
		ctx.hover = id
	}

	if ctx.focus == id {
		if ctx.mousePressed != 0 && !mouseover {
			ctx.SetFocus(0)
		}
		if ctx.mouseDown == 0 && opt&OptHoldFocus == 0 {
			ctx.SetFocus(0)
		}
	}

	if ctx.hover == id {
		if ctx.mousePressed != 0 {
			ctx.SetFocus(id)
		} else if !mouseover {
			ctx.hover = 0
		}
	}
}

// DrawControlFrame paints r in the base color of cid, shifted to the hover
// or focus variant for the control id.
func (ctx *Context) DrawControlFrame(id ID, r Rect, cid ColorID, opt Option) {
	if opt&OptNoFrame != 0 {
		return
	}
	switch {
	case ctx.focus == id:
		cid += 2
	case ctx.hover == id:
		cid++
	}
	ctx.DrawFrame(ctx, r, cid)
}

// DrawControlText draws s inside r with the alignment in opt, clipped to r.
func (ctx *Context) DrawControlText(s string, r Rect, cid ColorID, opt Option) {
	font := ctx.Font()
	tw := font.TextWidth(s)
	ctx.PushClip(r)
	y := r.Y + (r.H-font.TextHeight())/2
	var x int
	switch {
	case opt&OptAlignCenter != 0:
		x = r.X + (r.W-tw)/2
	case opt&OptAlignRight != 0:
		x = r.X + r.W - tw - ctx.style.Padding
	default:
		x = r.X + ctx.style.Padding
	}
	ctx.DrawText(font, s, x, y, ctx.style.Colors[cid])
	ctx.PopClip()
}
