package ui

import (
	"fmt"
	"testing"

	"github.com/hubastard/xui/engine/colors"
)

func newTestContext(opts ...ContextOption) *Context {
	return New(fixedFont{}, opts...)
}

// runFrame builds one frame and fails the test if it does not close cleanly.
func runFrame(t *testing.T, ctx *Context, build func()) {
	t.Helper()
	if err := ctx.Begin(); err != nil {
		t.Fatalf("Begin: %v", err)
	}
	build()
	if err := ctx.End(); err != nil {
		t.Fatalf("End: %v", err)
	}
}

// inWindow wraps body in an untitled, fixed window.
func inWindow(ctx *Context, title string, r Rect, body func()) {
	if ctx.BeginWindowEx(title, r, OptNoTitle|OptNoResize) != 0 {
		body()
		ctx.EndWindow()
	}
}

func center(r Rect) (int, int) { return r.X + r.W/2, r.Y + r.H/2 }

// recorder is a Surface that logs every call.
type recorder struct {
	bounds Rect
	calls  []string
}

func (r *recorder) Bounds() Rect { return r.bounds }

func (r *recorder) SetClip(c Rect) {
	r.calls = append(r.calls, fmt.Sprintf("clip %v", c))
}

func (r *recorder) FillRect(rc Rect, c colors.Color) {
	r.calls = append(r.calls, fmt.Sprintf("rect %v", rc))
}

func (r *recorder) DrawText(f Font, s string, x, y int, c colors.Color) {
	r.calls = append(r.calls, fmt.Sprintf("text %q %d,%d", s, x, y))
}

func (r *recorder) DrawIcon(icon Icon, rc Rect, c colors.Color) {
	r.calls = append(r.calls, fmt.Sprintf("icon %d %v", icon, rc))
}

// texts returns the strings of every text command in traversal order.
func texts(ctx *Context) []string {
	var out []string
	for cmd := range ctx.Commands() {
		if cmd.Type == CommandText {
			out = append(out, cmd.Text)
		}
	}
	return out
}
