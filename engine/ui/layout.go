package ui

import "math"

type nextKind uint8

const (
	nextNone nextKind = iota
	nextRelative
	nextAbsolute
)

// layout is a row cursor over a body rect. Items are placed left to right
// using the row's width table and wrap to a new row when the table is
// exhausted.
type layout struct {
	body       Rect
	next       Rect
	nextKind   nextKind
	posX, posY int
	sizeW      int
	sizeH      int
	maxW, maxH int
	widths     [maxWidths]int
	items      int
	itemIndex  int
	nextRow    int
	indent     int
}

func (ctx *Context) pushLayout(body Rect, scrollX, scrollY int) {
	l := layout{
		body: Rect{body.X - scrollX, body.Y - scrollY, body.W, body.H},
		maxW: math.MinInt32,
		maxH: math.MinInt32,
	}
	if err := ctx.layoutStack.push(l); err != nil {
		ctx.fail(err)
		return
	}
	ctx.layoutRow(1, []int{0}, 0)
}

func (ctx *Context) popLayout() {
	if err := ctx.layoutStack.pop(); err != nil {
		ctx.fail(err)
	}
}

// layout returns the active layout. Outside any container it records a
// scope error and hands back a throwaway layout so callers can proceed.
func (ctx *Context) layout() *layout {
	if top := ctx.layoutStack.top(); top != nil {
		return top
	}
	ctx.fail(&ScopeError{Stack: "layout", Depth: -1})
	ctx.orphanLayout = layout{}
	return &ctx.orphanLayout
}

// LayoutRow starts a row with one cell per width: 0 uses the style default,
// negative fills to the right edge minus its magnitude. height works the
// same way vertically. With no widths every cell takes a row of its own,
// sized by LayoutWidth.
func (ctx *Context) LayoutRow(height int, widths ...int) {
	ctx.layoutRow(len(widths), widths, height)
}

// layoutRow is LayoutRow with an explicit count; nil widths keeps the
// previous table.
func (ctx *Context) layoutRow(items int, widths []int, height int) {
	l := ctx.layout()
	if items > maxWidths {
		ctx.fail(&CapacityError{Resource: "layout widths", Limit: maxWidths})
		items = maxWidths
	}
	if widths != nil {
		copy(l.widths[:items], widths)
	}
	l.items = items
	l.posX = l.indent
	l.posY = l.nextRow
	l.sizeH = height
	l.itemIndex = 0
}

// LayoutWidth sets the width used when the row has no width table.
func (ctx *Context) LayoutWidth(w int) { ctx.layout().sizeW = w }

func (ctx *Context) LayoutHeight(h int) { ctx.layout().sizeH = h }

// LayoutSetNext overrides the next cell. Relative rects are offset by the
// layout body; absolute ones are used as-is.
func (ctx *Context) LayoutSetNext(r Rect, relative bool) {
	l := ctx.layout()
	l.next = r
	if relative {
		l.nextKind = nextRelative
	} else {
		l.nextKind = nextAbsolute
	}
}

// LayoutBeginColumn nests a layout inside the next cell.
func (ctx *Context) LayoutBeginColumn() {
	ctx.pushLayout(ctx.LayoutNext(), 0, 0)
}

// LayoutEndColumn folds the column's extent back into the parent.
func (ctx *Context) LayoutEndColumn() {
	if ctx.layoutStack.len() < 2 {
		ctx.fail(&ScopeError{Stack: "layout", Depth: -1})
		return
	}
	b := *ctx.layoutStack.top()
	ctx.popLayout()
	a := ctx.layout()
	a.posX = max(a.posX, b.posX+b.body.X-a.body.X)
	a.nextRow = max(a.nextRow, b.nextRow+b.body.Y-a.body.Y)
	a.maxW = max(a.maxW, b.maxW)
	a.maxH = max(a.maxH, b.maxH)
}

// LayoutNext returns the rect of the next cell and advances the cursor.
func (ctx *Context) LayoutNext() Rect {
	l := ctx.layout()
	st := &ctx.style
	var r Rect

	if l.nextKind != nextNone {
		kind := l.nextKind
		l.nextKind = nextNone
		r = l.next
		if kind == nextAbsolute {
			ctx.lastRect = r
			return r
		}
	} else {
		if l.itemIndex == l.items {
			ctx.layoutRow(l.items, nil, l.sizeH)
		}

		r.X = l.posX
		r.Y = l.posY
		if l.items > 0 {
			r.W = l.widths[l.itemIndex]
		} else {
			r.W = l.sizeW
		}
		r.H = l.sizeH
		if r.W == 0 {
			r.W = st.Width + st.Padding*2
		}
		if r.H == 0 {
			r.H = st.Height + st.Padding*2
		}
		if r.W < 0 {
			r.W += l.body.W - r.X + 1
		}
		if r.H < 0 {
			r.H += l.body.H - r.Y + 1
		}

		l.itemIndex++
	}

	l.posX += r.W + st.Spacing
	l.nextRow = max(l.nextRow, r.Y+r.H+st.Spacing)

	r.X += l.body.X
	r.Y += l.body.Y

	l.maxW = max(l.maxW, r.X+r.W)
	l.maxH = max(l.maxH, r.Y+r.H)

	ctx.lastRect = r
	return r
}
