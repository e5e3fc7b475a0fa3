package ui

import (
	"math"
	"unicode/utf8"

	"github.com/hubastard/xui/engine/core"
)

// Input is fed between frames; the engine reads it during the next frame.

func (ctx *Context) InputMouseMove(x, y int) {
	ctx.mouseX, ctx.mouseY = x, y
}

func (ctx *Context) InputMouseDown(x, y int, b MouseButton) {
	ctx.InputMouseMove(x, y)
	ctx.mouseDown |= b
	ctx.mousePressed |= b
}

// InputMouseUp releases b. The release is visible to widgets for exactly
// one frame.
func (ctx *Context) InputMouseUp(x, y int, b MouseButton) {
	ctx.InputMouseMove(x, y)
	ctx.mouseDown &^= b
	ctx.mouseReleased |= b
}

// InputScroll accumulates a wheel delta in pixels; positive y scrolls
// content down.
func (ctx *Context) InputScroll(x, y int) {
	ctx.scrollDeltaX += x
	ctx.scrollDeltaY += y
}

func (ctx *Context) InputKeyDown(k Key) {
	ctx.keyPressed |= k
	ctx.keyDown |= k
}

func (ctx *Context) InputKeyUp(k Key) {
	ctx.keyDown &^= k
}

// InputText appends typed text for this frame. Text past the input limit is
// dropped at a rune boundary.
func (ctx *Context) InputText(s string) {
	room := cap(ctx.inputText) - len(ctx.inputText)
	if len(s) > room {
		n := room
		for n > 0 && !utf8.RuneStart(s[n]) {
			n--
		}
		s = s[:n]
	}
	ctx.inputText = append(ctx.inputText, s...)
}

// scrollStep is the pixel distance of one wheel notch.
const scrollStep = 30

// HandleEvent translates a host event into engine input. It reports whether
// the event was relevant to the UI.
func (ctx *Context) HandleEvent(ev core.Event) bool {
	switch e := ev.(type) {
	case core.EventMouseMove:
		ctx.InputMouseMove(int(e.X), int(e.Y))
	case core.EventMouseButton:
		b := mouseButton(e.Button)
		if b == 0 {
			return false
		}
		if e.Down {
			ctx.InputMouseDown(int(e.X), int(e.Y), b)
		} else {
			ctx.InputMouseUp(int(e.X), int(e.Y), b)
		}
	case core.EventScroll:
		ctx.InputScroll(int(math.Round(e.DX*scrollStep)), int(math.Round(-e.DY*scrollStep)))
	case core.EventKey:
		k := key(e.Key)
		if k == 0 {
			return false
		}
		if e.Down {
			ctx.InputKeyDown(k)
		} else {
			ctx.InputKeyUp(k)
		}
	case core.EventText:
		ctx.InputText(e.Text)
	default:
		return false
	}
	return true
}

func mouseButton(b core.MouseButton) MouseButton {
	switch b {
	case core.MouseLeft:
		return MouseLeft
	case core.MouseRight:
		return MouseRight
	case core.MouseMiddle:
		return MouseMiddle
	}
	return 0
}

func key(k core.Key) Key {
	switch k {
	case core.KeyLeftShift, core.KeyRightShift:
		return KeyShift
	case core.KeyLeftControl, core.KeyRightControl:
		return KeyCtrl
	case core.KeyLeftAlt, core.KeyRightAlt:
		return KeyAlt
	case core.KeyBackspace:
		return KeyBackspace
	case core.KeyEnter:
		return KeyReturn
	}
	return 0
}
