package renderer2d

import "github.com/hubastard/xui/engine/ui"

// IconRects appends axis-aligned rects approximating icon inside r,
// centered. Every backend fills them with the icon color.
func IconRects(dst []ui.Rect, icon ui.Icon, r ui.Rect) []ui.Rect {
	n := min(r.W, r.H) * 6 / 10
	if n < 3 {
		return dst
	}
	x0 := r.X + (r.W-n)/2
	y0 := r.Y + (r.H-n)/2
	t := max(1, n/6)

	switch icon {
	case ui.IconClose:
		for i := 0; i+t <= n; i++ {
			dst = append(dst,
				ui.Rect{X: x0 + i, Y: y0 + i, W: t, H: t},
				ui.Rect{X: x0 + n - t - i, Y: y0 + i, W: t, H: t},
			)
		}
	case ui.IconCheck:
		// Short stroke down to the knee, then the long stroke up.
		knee := n / 3
		for i := 0; i <= knee; i++ {
			dst = append(dst, ui.Rect{X: x0 + i, Y: y0 + n/2 + i - t, W: t, H: t})
		}
		for i := 1; knee+i+t <= n; i++ {
			dst = append(dst, ui.Rect{X: x0 + knee + i, Y: y0 + n/2 + knee - i - t, W: t, H: t})
		}
	case ui.IconCollapsed:
		// Right-pointing triangle as shrinking columns.
		for i := 0; i < (n+1)/2; i++ {
			dst = append(dst, ui.Rect{X: x0 + n/4 + i, Y: y0 + i, W: 1, H: n - 2*i})
		}
	case ui.IconExpanded:
		// Down-pointing triangle as shrinking rows.
		for i := 0; i < (n+1)/2; i++ {
			dst = append(dst, ui.Rect{X: x0 + i, Y: y0 + n/4 + i, W: n - 2*i, H: 1})
		}
	}
	return dst
}
