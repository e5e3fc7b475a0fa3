package ui

import "encoding/binary"

// released reports a completed left click on id: the press started on the
// control and the button came up while still over it.
func (ctx *Context) released(id ID, r Rect, wasFocused bool) bool {
	return ctx.mouseReleased&MouseLeft != 0 &&
		(wasFocused || ctx.focus == id) &&
		ctx.MouseOver(r)
}

// Text draws s word-wrapped to the width of the current row.
func (ctx *Context) Text(s string) {
	font := ctx.Font()
	color := ctx.style.Colors[ColorText]
	ctx.LayoutBeginColumn()
	ctx.LayoutRow(font.TextHeight(), -1)
	p := 0
	for {
		r := ctx.LayoutNext()
		w := 0
		start, end := p, p
		for {
			word := p
			for p < len(s) && s[p] != ' ' && s[p] != '\n' {
				p++
			}
			w += font.TextWidth(s[word:p])
			if w > r.W && end != start {
				break
			}
			if p < len(s) {
				w += font.TextWidth(s[p : p+1])
			}
			end = p
			p++
			if end >= len(s) || s[end] == '\n' {
				break
			}
		}
		ctx.DrawText(font, s[start:end], r.X, r.Y, color)
		p = end + 1
		if end >= len(s) {
			break
		}
	}
	ctx.LayoutEndColumn()
}

// Label draws s in the next cell without any interaction.
func (ctx *Context) Label(s string) {
	ctx.DrawControlText(s, ctx.LayoutNext(), ColorText, 0)
}

func (ctx *Context) Button(label string) Result {
	return ctx.ButtonEx(label, IconNone, OptAlignCenter)
}

// ButtonEx draws a button showing label and/or icon. It reports ResSubmit
// on the frame the left button is released over it after being pressed on
// it. An unlabeled button is identified by its icon.
func (ctx *Context) ButtonEx(label string, icon Icon, opt Option) Result {
	var res Result
	var id ID
	if label != "" {
		id = ctx.GetIDString(label)
	} else {
		var b [4]byte
		binary.LittleEndian.PutUint32(b[:], uint32(icon))
		id = ctx.GetID(b[:])
	}
	r := ctx.LayoutNext()
	wasFocused := ctx.focus == id
	ctx.UpdateControl(id, r, opt)
	if ctx.released(id, r, wasFocused) {
		res |= ResSubmit
	}
	ctx.DrawControlFrame(id, r, ColorButton, opt)
	if label != "" {
		ctx.DrawControlText(label, r, ColorText, opt)
	}
	if icon != IconNone {
		ctx.DrawIcon(icon, r, ctx.style.Colors[ColorText])
	}
	return res
}

// Checkbox toggles *state on click release and reports ResChange.
func (ctx *Context) Checkbox(label string, state *bool) Result {
	var res Result
	id := ctx.GetIDString(label)
	r := ctx.LayoutNext()
	box := Rect{r.X, r.Y, r.H, r.H}
	wasFocused := ctx.focus == id
	ctx.UpdateControl(id, r, 0)
	if ctx.released(id, r, wasFocused) {
		res |= ResChange
		*state = !*state
	}
	ctx.DrawControlFrame(id, box, ColorBase, 0)
	if *state {
		ctx.DrawIcon(IconCheck, box, ctx.style.Colors[ColorText])
	}
	r = Rect{r.X + box.W, r.Y, r.W - box.W, r.H}
	ctx.DrawControlText(label, r, ColorText, 0)
	return res
}
