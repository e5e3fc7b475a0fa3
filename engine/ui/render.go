package ui

import "github.com/hubastard/xui/engine/colors"

// Surface is a draw target able to replay a frame's command list.
// Coordinates are in pixels, origin top-left.
type Surface interface {
	Bounds() Rect
	// SetClip restricts later draws to r, which is already intersected
	// with Bounds.
	SetClip(r Rect)
	FillRect(r Rect, c colors.Color)
	DrawText(f Font, s string, x, y int, c colors.Color)
	DrawIcon(icon Icon, r Rect, c colors.Color)
}

// Render replays the last completed frame onto s in z-order.
func (ctx *Context) Render(s Surface) {
	bounds := s.Bounds()
	s.SetClip(bounds)
	for cmd := range ctx.Commands() {
		switch cmd.Type {
		case CommandClip:
			r, ok := cmd.Rect.Intersect(bounds)
			if !ok {
				r = Rect{bounds.X, bounds.Y, 0, 0}
			}
			s.SetClip(r)
		case CommandRect:
			s.FillRect(cmd.Rect, cmd.Color)
		case CommandText:
			s.DrawText(cmd.Font, cmd.Text, cmd.X, cmd.Y, cmd.Color)
		case CommandIcon:
			s.DrawIcon(cmd.Icon, cmd.Rect, cmd.Color)
		}
	}
}
