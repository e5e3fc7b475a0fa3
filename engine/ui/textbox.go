package ui

import (
	"math"
	"strconv"
	"unicode/utf8"
)

// TextboxRaw edits *buf in place while id holds focus. limit caps the byte
// length of *buf (0 for no cap). Typed text is appended, backspace removes
// the last rune and return submits.
func (ctx *Context) TextboxRaw(buf *string, limit int, id ID, r Rect, opt Option) Result {
	var res Result
	ctx.UpdateControl(id, r, opt|OptHoldFocus)

	if ctx.focus == id {
		if in := ctx.inputText; len(in) > 0 {
			n := len(in)
			if limit > 0 {
				n = min(n, limit-len(*buf))
			}
			if n > 0 {
				// Never split a rune at the cap.
				for n > 0 && n < len(in) && !utf8.RuneStart(in[n]) {
					n--
				}
				*buf += string(in[:n])
				res |= ResChange
			}
		}
		if ctx.keyPressed&KeyBackspace != 0 && len(*buf) > 0 {
			*buf = trimLastRune(*buf)
			res |= ResChange
		}
		if ctx.keyPressed&KeyReturn != 0 {
			ctx.SetFocus(0)
			res |= ResSubmit
		}
	}

	ctx.DrawControlFrame(id, r, ColorBase, opt)
	if ctx.focus == id {
		color := ctx.style.Colors[ColorText]
		font := ctx.Font()
		textw := font.TextWidth(*buf)
		texth := font.TextHeight()
		ofx := r.W - ctx.style.Padding - textw - 1
		textx := r.X + min(ofx, ctx.style.Padding)
		texty := r.Y + (r.H-texth)/2
		ctx.PushClip(r)
		ctx.DrawText(font, *buf, textx, texty, color)
		ctx.DrawRect(Rect{textx + textw, texty, 1, texth}, color)
		ctx.PopClip()
	} else {
		ctx.DrawControlText(*buf, r, ColorText, opt)
	}
	return res
}

// trimLastRune drops the final UTF-8 sequence of s. A malformed tail loses
// exactly one byte.
func trimLastRune(s string) string {
	_, size := utf8.DecodeLastRuneInString(s)
	return s[:len(s)-size]
}

func (ctx *Context) Textbox(name string, buf *string, limit int) Result {
	return ctx.TextboxEx(name, buf, limit, 0)
}

// TextboxEx is a textbox in the next layout cell, identified by name.
func (ctx *Context) TextboxEx(name string, buf *string, limit int, opt Option) Result {
	id := ctx.GetIDString(name)
	return ctx.TextboxRaw(buf, limit, id, ctx.LayoutNext(), opt)
}

// numberTextbox runs the inline editor of a numeric widget. Shift+click
// opens it; it reports true while the editor owns the widget. On commit an
// unparsable entry leaves *value untouched.
func (ctx *Context) numberTextbox(value *float64, r Rect, id ID) bool {
	if ctx.mousePressed == MouseLeft && ctx.keyDown&KeyShift != 0 && ctx.hover == id {
		ctx.numberEdit = id
		ctx.numberEditBuf = strconv.FormatFloat(*value, 'f', 2, 64)
	}
	if ctx.numberEdit != id {
		return false
	}
	res := ctx.TextboxRaw(&ctx.numberEditBuf, ctx.limits.NumberEdit, id, r, 0)
	if res&ResSubmit == 0 && ctx.focus == id {
		return true
	}
	if v, err := strconv.ParseFloat(ctx.numberEditBuf, 64); err == nil {
		*value = v
	}
	ctx.numberEdit = 0
	return false
}

// formatValue renders v with format into the frame arena.
func (ctx *Context) formatValue(format string, v float64) string {
	s, err := ctx.text.Formatf(format, v)
	if err != nil {
		ctx.fail(&CapacityError{Resource: "text arena", Limit: ctx.text.Cap()})
		return ""
	}
	return s
}

func (ctx *Context) Slider(name string, value *float64, low, high float64) Result {
	return ctx.SliderEx(name, value, low, high, 0, "%.2f", OptAlignCenter)
}

// SliderEx drags *value across [low, high]. A non-zero step snaps the value
// to the nearest multiple of step.
func (ctx *Context) SliderEx(name string, value *float64, low, high, step float64, format string, opt Option) Result {
	var res Result
	last := *value
	v := last
	id := ctx.GetIDString(name)
	base := ctx.LayoutNext()

	if ctx.numberTextbox(&v, base, id) {
		return res
	}

	ctx.UpdateControl(id, base, opt)

	if ctx.focus == id && (ctx.mouseDown|ctx.mousePressed) == MouseLeft && base.W > 0 {
		v = low + float64(ctx.mouseX-base.X)*(high-low)/float64(base.W)
		if step != 0 {
			v = math.Floor((v+step/2)/step) * step
		}
	}
	v = clamp(v, low, high)
	*value = v
	if last != v {
		res |= ResChange
	}

	ctx.DrawControlFrame(id, base, ColorBase, opt)
	w := ctx.style.ThumbSize
	x := 0
	if high != low {
		x = int((v - low) * float64(base.W-w) / (high - low))
	}
	ctx.DrawControlFrame(id, Rect{base.X + x, base.Y, w, base.H}, ColorButton, opt)
	ctx.DrawControlText(ctx.formatValue(format, v), base, ColorText, opt)
	return res
}

func (ctx *Context) Number(name string, value *float64, step float64) Result {
	return ctx.NumberEx(name, value, step, "%.2f", OptAlignCenter)
}

// NumberEx is a drag field: horizontal mouse motion while held changes
// *value by step per pixel.
func (ctx *Context) NumberEx(name string, value *float64, step float64, format string, opt Option) Result {
	var res Result
	id := ctx.GetIDString(name)
	base := ctx.LayoutNext()
	last := *value

	if ctx.numberTextbox(value, base, id) {
		return res
	}
	ctx.UpdateControl(id, base, opt)
	if ctx.focus == id && ctx.mouseDown == MouseLeft {
		*value += float64(ctx.mouseDeltaX) * step
	}
	if *value != last {
		res |= ResChange
	}
	ctx.DrawControlFrame(id, base, ColorBase, opt)
	ctx.DrawControlText(ctx.formatValue(format, *value), base, ColorText, opt)
	return res
}
